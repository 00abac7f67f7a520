package listing

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/domain"
)

// KeyDelimiter joins registry id and asset id into the primary listing key.
// Neither component may contain it; that is checked at intake and treated as
// a configuration defect.
const KeyDelimiter = "::"

type Kind string

const (
	KindSale    Kind = "sale"
	KindAuction Kind = "auction"
)

type Id struct {
	RegistryId domain.RegistryId `json:"registryId" bson:"registryId"`
	AssetId    domain.AssetId    `json:"assetId" bson:"assetId"`
}

func (id Id) Key() string {
	return string(id.RegistryId) + KeyDelimiter + string(id.AssetId)
}

func (id Id) Validate() error {
	if len(id.RegistryId) == 0 || len(id.AssetId) == 0 {
		return domain.ErrBadParamInput
	}
	if strings.Contains(string(id.RegistryId), KeyDelimiter) || strings.Contains(string(id.AssetId), KeyDelimiter) {
		return domain.ErrBadParamInput
	}
	return nil
}

// IdFromKey splits a primary listing key back into its id pair
func IdFromKey(key string) (Id, error) {
	parts := strings.SplitN(key, KeyDelimiter, 2)
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
		return Id{}, domain.ErrBadParamInput
	}
	return Id{RegistryId: domain.RegistryId(parts[0]), AssetId: domain.AssetId(parts[1])}, nil
}

// Listing is one sale or auction of one asset from one registry
type Listing struct {
	Owner      domain.Account    `json:"ownerId" bson:"ownerId"`
	ApprovalId uint64            `json:"approvalId" bson:"approvalId"`
	RegistryId domain.RegistryId `json:"registryId" bson:"registryId"`
	AssetId    domain.AssetId    `json:"assetId" bson:"assetId"`
	Kind       Kind              `json:"kind" bson:"kind"`
	Price      domain.Amount     `json:"price" bson:"price"`

	// auction only; unix nanos
	StartTime int64 `json:"startTime" bson:"startTime"`
	EndTime   int64 `json:"endTime" bson:"endTime"`

	Leader         *domain.Account `json:"leader" bson:"leader"`
	IsFundsClaimed bool            `json:"isFundsClaimed" bson:"isFundsClaimed"`
	IsAssetClaimed bool            `json:"isAssetClaimed" bson:"isAssetClaimed"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (l *Listing) ToId() Id {
	return Id{RegistryId: l.RegistryId, AssetId: l.AssetId}
}

func (l *Listing) IsAuction() bool {
	return l.Kind == KindAuction
}

// Patchable carries the fields a bid is allowed to mutate in place
type Patchable struct {
	Price  *domain.Amount  `json:"price" bson:"price,omitempty"`
	Leader *domain.Account `json:"leader" bson:"leader,omitempty"`
}

// SaleArgs is the structured descriptor carried in the msg field of a
// registry approval callback. For sales only price is set; auctions are
// recognized by the presence of start/end on the callback itself.
type SaleArgs struct {
	Price domain.Amount `json:"price"`
}

// ParseSaleArgs decodes the opaque msg payload. A malformed payload rejects
// the whole creation, no partial listing is ever written.
func ParseSaleArgs(msg string) (*SaleArgs, error) {
	args := &SaleArgs{}
	if err := json.Unmarshal([]byte(msg), args); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}
	if _, err := args.Price.BigInt(); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}
	return args, nil
}

// CreateRequest is an approval notification from an asset registry.
// Registry and Signer come from the authenticated callback token, the rest
// from the payload.
type CreateRequest struct {
	Registry   domain.RegistryId
	Signer     domain.Account
	AssetId    domain.AssetId
	Owner      domain.Account
	ApprovalId uint64
	// optional, unix seconds; both present makes the listing an auction
	StartTime *int64
	EndTime   *int64
	Msg       string
}

type Repo interface {
	// Insert writes the listing and adds its key to the owner and registry
	// index sets
	Insert(c ctx.Ctx, l *Listing) error

	// FindOne returns domain.ErrNotFound when the key is absent
	FindOne(c ctx.Ctx, id Id) (*Listing, error)

	// Patch mutates a listing in place (bid accept)
	Patch(c ctx.Ctx, id Id, patch *Patchable) error

	// Remove deletes the listing and drops its key from both index sets,
	// deleting an index entry outright when its set becomes empty. Returns
	// the removed listing. A primary hit with a missing index set is
	// domain.ErrIndexCorrupted.
	Remove(c ctx.Ctx, id Id) (*Listing, error)

	FindKeysByOwner(c ctx.Ctx, owner domain.Account) ([]string, error)
	FindKeysByRegistry(c ctx.Ctx, registry domain.RegistryId) ([]string, error)
	CountByOwner(c ctx.Ctx, owner domain.Account) (int, error)
}

type Usecase interface {
	// Create validates and records a listing from a registry approval
	// callback. No funds move at creation time.
	Create(c ctx.Ctx, req *CreateRequest) (*Listing, error)

	Get(c ctx.Ctx, id Id) (*Listing, error)
	GetKeysByOwner(c ctx.Ctx, owner domain.Account) ([]string, error)
	GetKeysByRegistry(c ctx.Ctx, registry domain.RegistryId) ([]string, error)

	// PlaceBid accepts an ascending bid on an open auction, refunding the
	// previous leader before the new leader is recorded
	PlaceBid(c ctx.Ctx, id Id, bidder domain.Account, attached domain.Amount) (*Listing, error)

	// Cancel removes a listing pre-settlement. Requires the owner and an
	// attached deposit of exactly one unit; refunds the current leader when
	// the listing is an auction with an active bid.
	Cancel(c ctx.Ctx, id Id, caller domain.Account, attached domain.Amount) (*Listing, error)
}
