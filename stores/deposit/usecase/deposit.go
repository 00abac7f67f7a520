package usecase

import (
	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/base/log"
	"github.com/unicmarket/goapi/domain"
	"github.com/unicmarket/goapi/domain/deposit"
	"github.com/unicmarket/goapi/domain/funds"
)

type impl struct {
	deposit deposit.Repo
	funds   funds.Transferer
}

func New(repo deposit.Repo, funds funds.Transferer) deposit.Usecase {
	return &impl{
		deposit: repo,
		funds:   funds,
	}
}

func (im *impl) Get(c ctx.Ctx, account domain.Account) (*deposit.Deposit, error) {
	return im.deposit.Get(c, account)
}

func (im *impl) Deposit(c ctx.Ctx, account domain.Account, amount domain.Amount) error {
	if _, err := amount.BigInt(); err != nil {
		return err
	}
	return im.deposit.Credit(c, account, amount)
}

// Withdraw debits the paid balance and returns the funds to the account.
// The debit rejects underflow, so funds only move for a covered amount.
func (im *impl) Withdraw(c ctx.Ctx, account domain.Account, amount domain.Amount) error {
	if err := im.deposit.Debit(c, account, amount); err != nil {
		return err
	}
	im.funds.Send(c, account, amount)
	c.WithFields(log.Fields{
		"account": account,
		"amount":  amount.Display(),
	}).Info("storage deposit withdrawn")
	return nil
}
