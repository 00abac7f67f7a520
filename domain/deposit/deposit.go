package deposit

import (
	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/domain"
)

// Deposit is the storage balance an account has paid toward keeping its
// listings in the store
type Deposit struct {
	Account domain.Account `json:"accountId" bson:"accountId"`
	Balance domain.Amount  `json:"balance" bson:"balance"`
}

type Repo interface {
	// Get returns a zero-balance deposit when the account never paid
	Get(c ctx.Ctx, account domain.Account) (*Deposit, error)

	// Credit adds to the paid balance, creating the entry when absent
	Credit(c ctx.Ctx, account domain.Account, amount domain.Amount) error

	// Debit subtracts from the paid balance. Underflow is rejected with
	// domain.ErrInsufficientDeposit and nothing is written.
	Debit(c ctx.Ctx, account domain.Account, amount domain.Amount) error
}

type Usecase interface {
	Get(c ctx.Ctx, account domain.Account) (*Deposit, error)
	Deposit(c ctx.Ctx, account domain.Account, amount domain.Amount) error
	Withdraw(c ctx.Ctx, account domain.Account, amount domain.Amount) error
}
