package redis

import (
	"errors"
	"time"

	"github.com/unicmarket/goapi/base/ctx"
)

const (
	// Forever means the key is stored without an associated expire
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")

	// ErrNoTTL is returned when the key exists but has no associated expire
	ErrNoTTL = errors.New("redis key has no ttl")

	// ErrGapTime is returned when no pool is available to serve the command
	ErrGapTime = errors.New("redis pool unavailable")

	// ErrExpireNotExistOrTimeout is returned when EXPIRE could not set a timeout
	ErrExpireNotExistOrTimeout = errors.New("key does not exist or the timeout could not be set")
)

// Service abstracts the redis layer
type Service interface {
	// Get gets the value of key. Return ErrNotFound if the key does not exist.
	Get(context ctx.Ctx, key string) ([]byte, error)

	// Set sets key to hold value with expire. Use Forever to store without expire.
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// SetNX sets key to hold value only if key does not exist
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// Del removes the given keys, returning the number of keys removed
	Del(context ctx.Ctx, keys ...string) (int, error)

	// Expire sets a timeout on key
	Expire(context ctx.Ctx, key string, ttl time.Duration) error

	// TTL returns the remaining time to live of a key in seconds.
	// Return ErrNotFound if the key does not exist, ErrNoTTL if it has no expire.
	TTL(context ctx.Ctx, key string) (int, error)

	// Exists returns if the key exists
	Exists(context ctx.Ctx, key string) (bool, error)

	// Incr increments the number stored at key by one
	Incr(context ctx.Ctx, key string) (int64, error)

	// Incrby increments the number stored at key by val
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
}
