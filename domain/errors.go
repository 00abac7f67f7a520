package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// request error
	ErrInvalidAccount = errors.New("Invalid account")
	ErrInvalidToken   = errors.New("Invalid token")

	// marketplace errors
	ErrNotListingOwner     = errors.New("must be listing owner")
	ErrSelfBid             = errors.New("cannot bid on your own listing")
	ErrAuctionNotStarted   = errors.New("this auction has not started")
	ErrAuctionEnded        = errors.New("this auction is already done")
	ErrAuctionNotOver      = errors.New("the auction is not over yet")
	ErrBidTooLow           = errors.New("price must be greater than current winner's price")
	ErrBidBelowFeeFloor    = errors.New("bid must cover the enrollment fee")
	ErrNotAuctionWinner    = errors.New("buyer is not the recorded winner")
	ErrAssetAlreadyClaimed = errors.New("asset is already claimed")
	ErrFundsAlreadyClaimed = errors.New("funds are already claimed")
	ErrInsufficientDeposit = errors.New("attached deposit is insufficient")
	ErrInsufficientStorage = errors.New("insufficient storage paid")
	ErrOneUnitRequired     = errors.New("requires attached deposit of exactly 1 unit")

	// ErrIndexCorrupted indicates a missing index entry for an existing
	// listing. All listing mutation goes through the indexed store, so this
	// must never happen; it is a bug, not a client error.
	ErrIndexCorrupted = errors.New("listing index corrupted")
)
