package funds

import (
	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/domain"
)

// Transferer sends funds to an account. Transfers are fire and forget: the
// caller never observes completion and a transfer to a valid account is
// assumed to eventually succeed at the platform level, so there is no error
// to return.
type Transferer interface {
	Send(c ctx.Ctx, to domain.Account, amount domain.Amount)
}
