package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/base/delivery"
	"github.com/unicmarket/goapi/base/metrics"
	"github.com/unicmarket/goapi/domain"
	"github.com/unicmarket/goapi/domain/deposit"
	"github.com/unicmarket/goapi/domain/listing"
	"github.com/unicmarket/goapi/domain/settlement"
	"github.com/unicmarket/goapi/middleware"
	authMiddleware "github.com/unicmarket/goapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	listing    listing.Usecase
	settlement settlement.Usecase
	deposit    deposit.Usecase
}

func New(
	e *echo.Echo,
	listing listing.Usecase,
	settlement settlement.Usecase,
	deposit deposit.Usecase,
	authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("listing")

	h := &handler{listing, settlement, deposit}

	e.POST("/registry/approvals", h.createFromApproval, authMiddleware.RequireRegistry())

	gs := e.Group("/listings")

	gs.GET("/owner/:owner", h.getKeysByOwner, middleware.CacheHttp(30*time.Second))

	gs.GET("/registry/:registryId", h.getKeysByRegistry, middleware.CacheHttp(30*time.Second))

	g := e.Group("/listing/:registryId/:assetId")

	g.GET("", h.get)

	g.POST("/bid", h.bid, authMiddleware.Auth())

	g.POST("/purchase", h.purchase, authMiddleware.Auth())

	g.DELETE("", h.cancel, authMiddleware.Auth())

	gd := e.Group("/storage", authMiddleware.Auth())

	gd.GET("/deposit", h.getDeposit)

	gd.POST("/deposit", h.addDeposit)

	gd.POST("/withdraw", h.withdraw)
}

func (h *handler) createFromApproval(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	claims := c.Get("registryClaims").(*domain.RegistryClaims)

	type params struct {
		AssetId    domain.AssetId `json:"assetId"`
		Owner      domain.Account `json:"ownerId"`
		ApprovalId uint64         `json:"approvalId"`
		StartTime  *int64         `json:"startTime"`
		EndTime    *int64         `json:"endTime"`
		Msg        string         `json:"msg"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	met.BumpSum("approval.count", 1, "registry", claims.Registry)

	l, err := h.listing.Create(ctx, &listing.CreateRequest{
		Registry:   domain.RegistryId(claims.Registry),
		Signer:     domain.Account(claims.Signer),
		AssetId:    p.AssetId,
		Owner:      p.Owner,
		ApprovalId: p.ApprovalId,
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
		Msg:        p.Msg,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, l)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := bindId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.listing.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

func (h *handler) getKeysByOwner(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner domain.Account `param:"owner"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	keys, err := h.listing.GetKeysByOwner(ctx, p.Owner)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, keys)
}

func (h *handler) getKeysByRegistry(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		RegistryId domain.RegistryId `param:"registryId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	keys, err := h.listing.GetKeysByRegistry(ctx, p.RegistryId)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, keys)
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	bidder := c.Get("account").(domain.Account)

	id, err := bindId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type params struct {
		Amount domain.Amount `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	met.BumpSum("bid.count", 1, "registry", id.RegistryId.String())

	l, err := h.listing.PlaceBid(ctx, id, bidder, p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

func (h *handler) purchase(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	buyer := c.Get("account").(domain.Account)

	id, err := bindId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type params struct {
		Amount domain.Amount `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	met.BumpSum("purchase.count", 1, "registry", id.RegistryId.String())

	// the receipt comes back before the payout resolves; the outcome is
	// observable through the memo on the funds that eventually move
	receipt, err := h.settlement.InitiatePurchase(ctx, id, buyer, p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusAccepted, receipt)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("account").(domain.Account)

	id, err := bindId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type params struct {
		Amount domain.Amount `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	l, err := h.listing.Cancel(ctx, id, caller, p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

func (h *handler) getDeposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	account := c.Get("account").(domain.Account)

	d, err := h.deposit.Get(ctx, account)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, d)
}

func (h *handler) addDeposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	account := c.Get("account").(domain.Account)

	type params struct {
		Amount domain.Amount `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.deposit.Deposit(ctx, account, p.Amount); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, p.Amount)
}

func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	account := c.Get("account").(domain.Account)

	type params struct {
		Amount domain.Amount `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.deposit.Withdraw(ctx, account, p.Amount); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, p.Amount)
}

func bindId(c echo.Context) (listing.Id, error) {
	type params struct {
		RegistryId domain.RegistryId `param:"registryId"`
		AssetId    domain.AssetId    `param:"assetId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return listing.Id{}, domain.ErrBadParamInput
	}

	id := listing.Id{RegistryId: p.RegistryId, AssetId: p.AssetId}
	if err := id.Validate(); err != nil {
		return listing.Id{}, err
	}
	return id, nil
}

var badRequestErrs = []error{
	domain.ErrBadParamInput, domain.ErrInvalidJsonFormat, domain.ErrInvalidNumberFormat,
	domain.ErrAuctionNotStarted, domain.ErrAuctionEnded, domain.ErrAuctionNotOver,
	domain.ErrBidTooLow, domain.ErrBidBelowFeeFloor,
	domain.ErrAssetAlreadyClaimed, domain.ErrFundsAlreadyClaimed,
	domain.ErrInsufficientDeposit, domain.ErrInsufficientStorage, domain.ErrOneUnitRequired,
}

var forbiddenErrs = []error{
	domain.ErrNotListingOwner, domain.ErrSelfBid, domain.ErrNotAuctionWinner,
}

// statusOf maps rejection reasons to http codes. Not-found mapping happens
// inside MakeJsonResp already.
func statusOf(err error) int {
	for _, e := range forbiddenErrs {
		if errors.Is(err, e) {
			return http.StatusForbidden
		}
	}
	if errors.Is(err, domain.ErrConflict) {
		return http.StatusConflict
	}
	for _, e := range badRequestErrs {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
