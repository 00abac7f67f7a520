package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/base/delivery"
	"github.com/unicmarket/goapi/domain"
)

type authHandler struct {
	auth domain.AuthUsecase
}

func New(e *echo.Echo, auth domain.AuthUsecase) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
}

func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Account domain.Account `json:"account" validate:"required,account"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAccount)
	}

	if tkn, err := h.auth.SignToken(ctx, p.Account); err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}
