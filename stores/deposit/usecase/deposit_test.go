package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/domain"
	mDeposit "github.com/unicmarket/goapi/domain/deposit/mocks"
	mFunds "github.com/unicmarket/goapi/domain/funds/mocks"
)

func TestWithdrawSendsAfterDebit(t *testing.T) {
	c := ctx.Background()
	repo := &mDeposit.Repo{}
	funds := &mFunds.Transferer{}
	im := New(repo, funds)

	repo.On("Debit", mock.Anything, domain.Account("alice.testnet"), domain.Amount("100")).Return(nil)
	funds.On("Send", mock.Anything, domain.Account("alice.testnet"), domain.Amount("100")).Return()

	assert.NoError(t, im.Withdraw(c, "alice.testnet", "100"))
	funds.AssertCalled(t, "Send", mock.Anything, domain.Account("alice.testnet"), domain.Amount("100"))
}

func TestWithdrawKeepsFundsOnUnderflow(t *testing.T) {
	c := ctx.Background()
	repo := &mDeposit.Repo{}
	funds := &mFunds.Transferer{}
	im := New(repo, funds)

	repo.On("Debit", mock.Anything, domain.Account("alice.testnet"), domain.Amount("100")).
		Return(domain.ErrInsufficientDeposit)

	assert.Equal(t, domain.ErrInsufficientDeposit, im.Withdraw(c, "alice.testnet", "100"))
	funds.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDepositRejectsMalformedAmount(t *testing.T) {
	c := ctx.Background()
	repo := &mDeposit.Repo{}
	im := New(repo, &mFunds.Transferer{})

	err := im.Deposit(c, "alice.testnet", "-5")
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
}
