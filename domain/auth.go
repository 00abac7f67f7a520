package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/unicmarket/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Account string `json:"data"`
	jwt.StandardClaims
}

// RegistryClaims authenticates a cross-contract callback from an asset
// registry. Registry is the registry contract account; Signer is the account
// that initiated the top-level transaction on the registry side.
type RegistryClaims struct {
	Registry string `json:"registry"`
	Signer   string `json:"signer"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, account Account) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (account string, err error)

	SignRegistryToken(ctx ctx.Ctx, registry RegistryId, signer Account) (string, error)
	ParseRegistryToken(ctx ctx.Ctx, token string) (*RegistryClaims, error)
}
