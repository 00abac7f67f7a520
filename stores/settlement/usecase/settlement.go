package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/base/goroutine"
	"github.com/unicmarket/goapi/base/log"
	"github.com/unicmarket/goapi/domain"
	"github.com/unicmarket/goapi/domain/funds"
	"github.com/unicmarket/goapi/domain/listing"
	"github.com/unicmarket/goapi/domain/registry"
	"github.com/unicmarket/goapi/domain/settlement"
)

const payoutWorkers = 4

type SettlementUseCaseCfg struct {
	Listing  listing.Repo
	Registry registry.Client
	Funds    funds.Transferer

	// MaxLenPayout caps the number of distinct payout recipients honored in
	// one settlement
	MaxLenPayout uint32
}

type impl struct {
	listing      listing.Repo
	registry     registry.Client
	funds        funds.Transferer
	maxLenPayout uint32
}

func New(cfg *SettlementUseCaseCfg) settlement.Usecase {
	return &impl{
		listing:      cfg.Listing,
		registry:     cfg.Registry,
		funds:        cfg.Funds,
		maxLenPayout: cfg.MaxLenPayout,
	}
}

func (im *impl) InitiatePurchase(c ctx.Ctx, id listing.Id, buyer domain.Account, attached domain.Amount) (*settlement.Receipt, error) {
	l, err := im.listing.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if buyer.Equals(l.Owner) {
		return nil, domain.ErrSelfBid
	}
	if l.IsAssetClaimed {
		return nil, domain.ErrAssetAlreadyClaimed
	}
	if l.IsFundsClaimed {
		return nil, domain.ErrFundsAlreadyClaimed
	}

	// for an auction the escrowed price is the recorded leading bid; for a
	// fixed sale it is whatever the buyer attached, as long as it covers the
	// listed price
	price := l.Price
	if l.IsAuction() {
		if time.Now().UnixNano() <= l.EndTime {
			return nil, domain.ErrAuctionNotOver
		}
		if l.Leader == nil || !buyer.Equals(*l.Leader) {
			return nil, domain.ErrNotAuctionWinner
		}
	} else {
		price = attached
	}
	if cmp, err := attached.Cmp(l.Price); err != nil {
		return nil, err
	} else if cmp < 0 {
		return nil, domain.ErrInsufficientDeposit
	}

	// removing the listing before the payout call is what makes settlement
	// exactly-once: a replay finds the key absent and fails with not-found
	removed, err := im.listing.Remove(c, id)
	if err != nil {
		return nil, err
	}

	memoId, err := uuid.NewRandom()
	if err != nil {
		c.WithField("err", err).Error("uuid.NewRandom failed")
		return nil, err
	}
	memo := "payout from market " + memoId.String()

	buyer = buyer.ToLower()
	resolved := make(chan settlement.Result, 1)
	goroutine.RecoverableGo(func() {
		payout, callErr := im.registry.TransferPayout(c, removed.RegistryId, &registry.TransferPayoutRequest{
			Buyer:        buyer,
			AssetId:      removed.AssetId,
			ApprovalId:   removed.ApprovalId,
			Memo:         memo,
			Price:        price,
			MaxLenPayout: im.maxLenPayout,
		})
		resolved <- im.ResolvePurchase(c, buyer, price, payout, callErr)
		close(resolved)
	})

	c.WithFields(log.Fields{
		"key":   id.Key(),
		"buyer": buyer,
		"price": price.Display(),
		"memo":  memo,
	}).Info("purchase initiated")
	return &settlement.Receipt{
		Memo:     memo,
		Price:    price,
		Resolved: resolved,
	}, nil
}

func (im *impl) ResolvePurchase(c ctx.Ctx, buyer domain.Account, price domain.Amount, payout *registry.Payout, callErr error) settlement.Result {
	if callErr != nil {
		c.WithFields(log.Fields{
			"buyer": buyer,
			"err":   callErr,
		}).Warn("transfer payout call failed, refunding buyer")
		return im.refund(c, buyer, price)
	}
	if !im.reconcile(c, price, payout) {
		return im.refund(c, buyer, price)
	}

	b := goroutines.NewBatch(payoutWorkers, goroutines.WithBatchSize(len(payout.Payout)))
	defer b.Close()
	for to, amount := range payout.Payout {
		to, amount := to, amount
		b.Queue(func() (interface{}, error) {
			im.funds.Send(c, to, amount)
			return nil, nil
		})
	}
	b.QueueComplete()
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("payout send error result")
		}
	}

	c.WithFields(log.Fields{
		"buyer": buyer,
		"price": price.Display(),
	}).Info("payout distributed")
	return settlement.Result{Outcome: settlement.OutcomeDistributed, Amount: price}
}

// reconcile decides whether the registry's payout can be trusted: it must
// name between 1 and maxLenPayout recipients and its amounts must sum to the
// escrowed price, short by at most one unit of rounding loss
func (im *impl) reconcile(c ctx.Ctx, price domain.Amount, payout *registry.Payout) bool {
	if payout == nil || len(payout.Payout) == 0 {
		c.Warn("empty payout, refunding buyer")
		return false
	}
	if uint32(len(payout.Payout)) > im.maxLenPayout {
		c.WithField("recipients", len(payout.Payout)).Warn("payout over recipient cap, refunding buyer")
		return false
	}

	remainder := price
	for _, amount := range payout.Payout {
		var err error
		if remainder, err = remainder.CheckedSub(amount); err != nil {
			c.WithFields(log.Fields{
				"price": price,
				"err":   err,
			}).Warn("payout exceeds escrowed price, refunding buyer")
			return false
		}
	}
	if remainder != "0" && remainder != "1" {
		c.WithFields(log.Fields{
			"price":     price,
			"remainder": remainder,
		}).Warn("payout does not reconcile, refunding buyer")
		return false
	}
	return true
}

func (im *impl) refund(c ctx.Ctx, buyer domain.Account, price domain.Amount) settlement.Result {
	im.funds.Send(c, buyer, price)
	c.WithFields(log.Fields{
		"buyer": buyer,
		"price": price.Display(),
	}).Info("buyer refunded")
	return settlement.Result{Outcome: settlement.OutcomeRefunded, Amount: price}
}
