package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")

	tkn, err := u.SignToken(ctx, "alice.testnet")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	account, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "alice.testnet", account)
}

func TestSignAndParseRegistryToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")

	tkn, err := u.SignRegistryToken(ctx, "nft.testnet", "alice.testnet")
	assert.NoError(t, err)

	claims, err := u.ParseRegistryToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "nft.testnet", claims.Registry)
	assert.Equal(t, "alice.testnet", claims.Signer)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	ctx := ctx.Background()

	tkn, err := usecase.New("other-secret").SignToken(ctx, "alice.testnet")
	assert.NoError(t, err)

	_, err = usecase.New("jwt-secret").ParseToken(ctx, tkn)
	assert.Error(t, err)
}

func TestRegistryTokenIsNotAUserToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")

	tkn, err := u.SignToken(ctx, "alice.testnet")
	assert.NoError(t, err)

	claims, err := u.ParseRegistryToken(ctx, tkn)
	assert.NoError(t, err)
	// a user token carries no registry claim
	assert.Empty(t, claims.Registry)
}
