package settlement

import (
	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/domain"
	"github.com/unicmarket/goapi/domain/listing"
	"github.com/unicmarket/goapi/domain/registry"
)

// Outcome of the resolve step. Exactly one of the two happens per settlement.
type Outcome string

const (
	OutcomeDistributed Outcome = "distributed"
	OutcomeRefunded    Outcome = "refunded"
)

type Result struct {
	Outcome Outcome       `json:"outcome"`
	Amount  domain.Amount `json:"amount"`
}

// Receipt is returned by phase 1. The listing is already gone from the store
// when the caller sees it; Resolved delivers the phase-2 result once the
// registry's payout computation lands.
type Receipt struct {
	Memo     string        `json:"memo"`
	Price    domain.Amount `json:"price"`
	Resolved <-chan Result `json:"-"`
}

type Usecase interface {
	// InitiatePurchase removes the listing (terminal for the key) and issues
	// the asynchronous payout computation to the registry. It returns before
	// that computation completes.
	InitiatePurchase(c ctx.Ctx, id listing.Id, buyer domain.Account, attached domain.Amount) (*Receipt, error)

	// ResolvePurchase consumes the registry's response, or evidence of its
	// failure, and either distributes the payout or refunds the buyer in
	// full. It trusts nothing the registry sent back until it reconciles.
	ResolvePurchase(c ctx.Ctx, buyer domain.Account, price domain.Amount, payout *registry.Payout, callErr error) Result
}
