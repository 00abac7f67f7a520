package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/domain"
)

type impl struct {
	jwtSecret []byte
}

func New(jwtSecret string) domain.AuthUsecase {
	return &impl{
		jwtSecret: []byte(jwtSecret),
	}
}

func (im *impl) SignToken(ctx ctx.Ctx, account domain.Account) (string, error) {
	claims := domain.JwtCustomClaims{
		Account: string(account),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, im.keyFunc)
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Account, nil
	}

	return "", domain.ErrInvalidToken
}

// SignRegistryToken issues the short-lived credential a registry attaches to
// its approval callbacks. Signer is the account that initiated the approval
// on the registry side.
func (im *impl) SignRegistryToken(ctx ctx.Ctx, registry domain.RegistryId, signer domain.Account) (string, error) {
	claims := domain.RegistryClaims{
		Registry: string(registry),
		Signer:   string(signer),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(5 * time.Minute).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseRegistryToken(ctx ctx.Ctx, str string) (*domain.RegistryClaims, error) {
	token, err := jwt.ParseWithClaims(str, &domain.RegistryClaims{}, im.keyFunc)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.RegistryClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, domain.ErrInvalidToken
}

func (im *impl) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
	}
	return im.jwtSecret, nil
}
