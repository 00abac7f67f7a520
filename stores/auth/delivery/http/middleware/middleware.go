package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/domain"
)

type AuthMiddleware struct {
	auth domain.AuthUsecase
}

func New(auth domain.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

// RequireRegistry admits only callbacks carrying a registry-issued token.
// The parsed claims end up under "registryClaims" for the handler.
func (m *AuthMiddleware) RequireRegistry() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateRegistryToken)
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if account, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Error("auth.ParseToken failed")
		return false, err
	} else {
		c.Set("account", domain.Account(account))
		return true, nil
	}
}

func (m *AuthMiddleware) validateRegistryToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	claims, err := m.auth.ParseRegistryToken(ctx, key)
	if err != nil {
		ctx.WithField("err", err).Error("auth.ParseRegistryToken failed")
		return false, err
	}
	if claims.Registry == "" || claims.Signer == "" {
		return false, domain.ErrInvalidToken
	}
	c.Set("registryClaims", claims)
	return true, nil
}
