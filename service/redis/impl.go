package redis

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/base/metrics"
	"github.com/unicmarket/goapi/domain/keys"
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2

	// retTTLNoExpire is the return value of TTL when the key exists but has
	// no associated expire
	retTTLNoExpire = -1
)

var (
	delBatchSize = 100 // redis lab recommended
)

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// New redis pool
func New(name string, metrics metrics.Service, pools *Pools) Service {
	im := &redImpl{
		name:  name,
		met:   metrics,
		pools: pools,
	}

	return im
}

func (r *redImpl) getConn(command string) (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()
	var conn redis.Conn

	pool := r.getPool(command)
	if pool == nil {
		return nil, ErrGapTime
	}

	conn = pool.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}

	return conn, nil
}

func (r *redImpl) getPool(command string) *redis.Pool {
	return r.pools.Src
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn(commandName)
	if err != nil {
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// Closing conn explicitly asap improves redigo's performance,
	// bacause longer an connection is hold and not closed, the
	// pool need to handle more connections at the same time and
	// getConn time might burst.
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) Get(context ctx.Ctx, key string) (val []byte, err error) {
	tags := []string{
		"func", "get",
		"cluster", r.name,
		"prefix", keys.GetPrefix(key),
	}
	defer r.met.BumpTime("time", tags...).End()

	val, err = redis.Bytes(r.connDo(context, "GET", key))
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := []string{
		"func", "set",
		"cluster", r.name,
		"prefix", keys.GetPrefix(key),
	}
	defer r.met.BumpTime("time", tags...).End()
	if expire == Forever {
		r.met.BumpSum("ttl.forever", 1, tags...)
	} else {
		r.met.BumpAvg("ttl", expire.Seconds(), tags...)
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	if expire == Forever {
		_, err := r.connDo(context, "SET", key, val)
		if err != nil {
			context.WithField("err", err).Error("set redis failed")
		}
		return err
	}
	_, err := r.connDo(context, "SET", key, val, "PX", int(expire/time.Millisecond))
	if err != nil {
		context.WithField("err", err).Error("set redis failed")
	}
	return err
}

func (r *redImpl) SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := []string{"func", "setnx", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()
	if expire == Forever {
		r.met.BumpSum("ttl.forever", 1, tags...)
	} else {
		r.met.BumpAvg("ttl", expire.Seconds(), tags...)
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		_, err = redis.Bytes(r.connDo(context, "SET", key, val, "nx"))
	} else {
		_, err = redis.Bytes(r.connDo(context, "SET", key, val, "nx", "px", int(expire/time.Millisecond)))
	}

	return err
}

func (r *redImpl) Del(context ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, fmt.Errorf("length of keys is 0")
	}

	tags := []string{"func", "del", "cluster", r.name, "prefix", keys.GetPrefix(ks[0])}
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("elements", float64(len(ks)), tags...)

	affected := 0
	for i := 0; i < len(ks); i += delBatchSize {
		start := i
		end := i + delBatchSize
		if end > len(ks) {
			end = len(ks)
		}
		res, err := redis.Int(r.connDo(context, "DEL", redis.Args{}.AddFlat(ks[start:end])...))
		if err != nil {
			context.WithField("err", err).Error("DEL redis failed")
			return 0, err
		}
		affected += res
	}

	return affected, nil
}

func (r *redImpl) Expire(context ctx.Ctx, key string, ttl time.Duration) error {
	tags := []string{"func", "expire", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()
	if ttl == Forever {
		r.met.BumpSum("ttl.forever", 1, tags...)
	} else {
		r.met.BumpAvg("ttl", ttl.Seconds(), tags...)
	}

	if ttl == Forever {
		_, err := r.connDo(context, "PERSIST", key)
		if err != nil {
			context.WithField("err", err).Error("Expire PERSIST redis key failed")
		}
		return err
	}

	reply, err := r.connDo(context, "EXPIRE", key, int(ttl/time.Second))
	if err != nil {
		context.WithField("err", err).Error("Expire redis failed")
		return err
	}
	// Return value will be 0 if key does not exist or the timeout could not be set.
	if reply.(int64) != 1 {
		return ErrExpireNotExistOrTimeout
	}
	return nil
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int, error) {
	defer r.met.BumpTime("time", "func", "TTL", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()
	res, err := redis.Int(r.connDo(context, "TTL", key))
	if err != nil {
		context.WithField("err", err).Error("TTL redis failed")
		return 0, err
	}

	if res == retTTLNoKey {
		return res, ErrNotFound
	} else if res == retTTLNoExpire {
		return res, ErrNoTTL
	}
	return res, nil
}

// Exists Returns if the key exists.
func (r *redImpl) Exists(context ctx.Ctx, key string) (bool, error) {
	defer r.met.BumpTime("time", "func", "exists", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()
	res, err := redis.Bool(r.connDo(context, "Exists", key))
	if err != nil {
		context.WithField("err", err).Error("Exists redis failed")
	}
	return res, err
}

func (r *redImpl) Incr(context ctx.Ctx, key string) (int64, error) {
	defer r.met.BumpTime("time", "func", "incr", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()
	res, err := redis.Int64(r.connDo(context, "INCR", key))
	if err != nil {
		context.WithField("err", err).Error("INCR redis failed")
	}
	return res, err
}

func (r *redImpl) Incrby(context ctx.Ctx, key string, val int) (int64, error) {
	defer r.met.BumpTime("time", "func", "incrby", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()
	res, err := redis.Int64(r.connDo(context, "INCRBY", key, val))
	if err != nil {
		context.WithField("err", err).Error("INCRBY redis failed")
	}
	return res, err
}
