package usecase

import (
	"time"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/base/log"
	"github.com/unicmarket/goapi/domain"
	"github.com/unicmarket/goapi/domain/deposit"
	"github.com/unicmarket/goapi/domain/funds"
	"github.com/unicmarket/goapi/domain/listing"
)

// oneUnit is the exact attached deposit required to authorize a cancel
const oneUnit = domain.Amount("1")

type ListingUseCaseCfg struct {
	Listing listing.Repo
	Deposit deposit.Repo
	Funds   funds.Transferer

	// StoragePerListing is the storage cost one listing adds to its owner's
	// required paid balance
	StoragePerListing domain.Amount

	// EnrollmentFee is retained by the marketplace when refunding an outbid
	// leader. Bids below it are rejected outright so the refund can never
	// underflow.
	EnrollmentFee domain.Amount
}

type impl struct {
	listing           listing.Repo
	deposit           deposit.Repo
	funds             funds.Transferer
	storagePerListing domain.Amount
	enrollmentFee     domain.Amount
}

func New(cfg *ListingUseCaseCfg) listing.Usecase {
	return &impl{
		listing:           cfg.Listing,
		deposit:           cfg.Deposit,
		funds:             cfg.Funds,
		storagePerListing: cfg.StoragePerListing,
		enrollmentFee:     cfg.EnrollmentFee,
	}
}

func (im *impl) Create(c ctx.Ctx, req *listing.CreateRequest) (*listing.Listing, error) {
	// approvals must arrive from the registry itself, never from a regular
	// account calling the endpoint directly
	if req.Registry.String() == "" || req.Signer.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}
	if req.Signer.Equals(domain.Account(req.Registry)) {
		return nil, domain.ErrBadParamInput
	}
	// only the initiator of the approval may list their own asset
	if !req.Signer.Equals(req.Owner) {
		return nil, domain.ErrNotListingOwner
	}

	id := listing.Id{RegistryId: req.Registry, AssetId: req.AssetId}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	args, err := listing.ParseSaleArgs(req.Msg)
	if err != nil {
		c.WithFields(log.Fields{
			"key": id.Key(),
			"err": err,
		}).Warn("malformed approval msg")
		return nil, err
	}

	if _, err := im.listing.FindOne(c, id); err == nil {
		return nil, domain.ErrConflict
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	if err := im.checkStorage(c, req.Owner); err != nil {
		return nil, err
	}

	l := &listing.Listing{
		Owner:      req.Owner.ToLower(),
		ApprovalId: req.ApprovalId,
		RegistryId: req.Registry,
		AssetId:    req.AssetId,
		Kind:       listing.KindSale,
		Price:      args.Price,
		CreatedAt:  time.Now().UTC(),
	}

	if req.StartTime != nil || req.EndTime != nil {
		if req.StartTime == nil || req.EndTime == nil {
			return nil, domain.ErrBadParamInput
		}
		if *req.EndTime <= *req.StartTime {
			return nil, domain.ErrBadParamInput
		}
		l.Kind = listing.KindAuction
		l.StartTime = *req.StartTime * int64(time.Second)
		l.EndTime = *req.EndTime * int64(time.Second)
	}

	if err := im.listing.Insert(c, l); err != nil {
		return nil, err
	}

	c.WithFields(log.Fields{
		"key":   id.Key(),
		"owner": l.Owner,
		"kind":  l.Kind,
		"price": l.Price.Display(),
	}).Info("listing created")
	return l, nil
}

// checkStorage requires the owner's paid balance to cover every current
// listing plus the one being created
func (im *impl) checkStorage(c ctx.Ctx, owner domain.Account) error {
	count, err := im.listing.CountByOwner(c, owner)
	if err != nil {
		return err
	}
	required, err := im.storagePerListing.CheckedMul(int64(count) + 1)
	if err != nil {
		return err
	}
	paid, err := im.deposit.Get(c, owner)
	if err != nil {
		return err
	}
	if cmp, err := paid.Balance.Cmp(required); err != nil {
		return err
	} else if cmp < 0 {
		c.WithFields(log.Fields{
			"owner":    owner,
			"paid":     paid.Balance,
			"required": required,
		}).Warn("insufficient storage paid")
		return domain.ErrInsufficientStorage
	}
	return nil
}

func (im *impl) Get(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	return im.listing.FindOne(c, id)
}

func (im *impl) GetKeysByOwner(c ctx.Ctx, owner domain.Account) ([]string, error) {
	return im.listing.FindKeysByOwner(c, owner.ToLower())
}

func (im *impl) GetKeysByRegistry(c ctx.Ctx, registry domain.RegistryId) ([]string, error) {
	return im.listing.FindKeysByRegistry(c, registry)
}

func (im *impl) PlaceBid(c ctx.Ctx, id listing.Id, bidder domain.Account, attached domain.Amount) (*listing.Listing, error) {
	l, err := im.listing.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if !l.IsAuction() {
		return nil, domain.ErrBadParamInput
	}

	now := time.Now().UnixNano()
	if now <= l.StartTime {
		return nil, domain.ErrAuctionNotStarted
	}
	if now >= l.EndTime {
		return nil, domain.ErrAuctionEnded
	}
	if bidder.Equals(l.Owner) {
		return nil, domain.ErrSelfBid
	}

	if cmp, err := attached.Cmp(l.Price); err != nil {
		return nil, err
	} else if cmp <= 0 {
		return nil, domain.ErrBidTooLow
	}
	if cmp, err := attached.Cmp(im.enrollmentFee); err != nil {
		return nil, err
	} else if cmp < 0 {
		return nil, domain.ErrBidBelowFeeFloor
	}

	// return the previous leader's funds, minus the fee, before the new
	// leader is recorded. At most one bidder's funds stay in escrow.
	if l.Leader != nil {
		refund, err := l.Price.CheckedSub(im.enrollmentFee)
		if err != nil {
			c.WithFields(log.Fields{
				"key":   id.Key(),
				"price": l.Price,
				"err":   err,
			}).Error("outbid refund underflow")
			return nil, err
		}
		im.funds.Send(c, *l.Leader, refund)
	}

	bidder = bidder.ToLower()
	if err := im.listing.Patch(c, id, &listing.Patchable{Price: &attached, Leader: &bidder}); err != nil {
		return nil, err
	}

	l.Price = attached
	l.Leader = &bidder
	c.WithFields(log.Fields{
		"key":    id.Key(),
		"bidder": bidder,
		"price":  attached.Display(),
	}).Info("bid accepted")
	return l, nil
}

func (im *impl) Cancel(c ctx.Ctx, id listing.Id, caller domain.Account, attached domain.Amount) (*listing.Listing, error) {
	// exact one-unit deposit authorizes the cancel
	if cmp, err := attached.Cmp(oneUnit); err != nil || cmp != 0 {
		return nil, domain.ErrOneUnitRequired
	}

	l, err := im.listing.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if !caller.Equals(l.Owner) {
		return nil, domain.ErrNotListingOwner
	}

	if l.IsAuction() && l.Leader != nil {
		refund, err := l.Price.CheckedSub(im.enrollmentFee)
		if err != nil {
			c.WithFields(log.Fields{
				"key":   id.Key(),
				"price": l.Price,
				"err":   err,
			}).Error("cancel refund underflow")
			return nil, err
		}
		im.funds.Send(c, *l.Leader, refund)
	}

	removed, err := im.listing.Remove(c, id)
	if err != nil {
		return nil, err
	}

	c.WithFields(log.Fields{
		"key":   id.Key(),
		"owner": removed.Owner,
	}).Info("listing cancelled")
	return removed, nil
}
