package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/base/log"
	"github.com/unicmarket/goapi/domain"
	"github.com/unicmarket/goapi/domain/deposit"
	"github.com/unicmarket/goapi/service/query"
)

type depositImpl struct {
	q query.Mongo
}

func NewDeposit(q query.Mongo) deposit.Repo {
	return &depositImpl{q}
}

func (im *depositImpl) Get(c ctx.Ctx, account domain.Account) (*deposit.Deposit, error) {
	id := account.ToLower()
	// never paid reads as a zero balance
	res := &deposit.Deposit{
		Account: id,
		Balance: domain.Amount("0"),
	}
	if err := im.q.FindOne(c, domain.TableStorageDeposits, bson.M{"accountId": id}, res); err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"account": account,
			"err":     err,
		}).Error("find storage deposit failed")
		return nil, err
	}
	return res, nil
}

func (im *depositImpl) Credit(c ctx.Ctx, account domain.Account, amount domain.Amount) error {
	cur, err := im.Get(c, account)
	if err != nil {
		return err
	}
	balance, err := cur.Balance.CheckedAdd(amount)
	if err != nil {
		c.WithFields(log.Fields{
			"account": account,
			"amount":  amount,
			"err":     err,
		}).Error("credit storage deposit failed")
		return err
	}
	cur.Balance = balance
	return im.upsert(c, cur)
}

func (im *depositImpl) Debit(c ctx.Ctx, account domain.Account, amount domain.Amount) error {
	cur, err := im.Get(c, account)
	if err != nil {
		return err
	}
	balance, err := cur.Balance.CheckedSub(amount)
	if err != nil {
		c.WithFields(log.Fields{
			"account": account,
			"amount":  amount,
			"balance": cur.Balance,
		}).Warn("storage deposit underflow rejected")
		return domain.ErrInsufficientDeposit
	}
	cur.Balance = balance
	return im.upsert(c, cur)
}

func (im *depositImpl) upsert(c ctx.Ctx, d *deposit.Deposit) error {
	if err := im.q.Upsert(c, domain.TableStorageDeposits, bson.M{"accountId": d.Account}, d); err != nil {
		c.WithFields(log.Fields{
			"account": d.Account,
			"err":     err,
		}).Error("upsert storage deposit failed")
		return err
	}
	return nil
}
