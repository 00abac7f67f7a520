package registry

import (
	"net/http"
	"time"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/domain"
)

// Payout is the split of an escrowed price among recipients, as computed by
// the asset registry. It is untrusted input: the settlement coordinator
// reconciles it against the escrowed price before any funds move.
type Payout struct {
	Payout map[domain.Account]domain.Amount `json:"payout"`
}

// TransferPayoutRequest asks a registry to transfer the asset to the buyer
// and compute the payout split for the given price. MaxLenPayout caps the
// number of distinct recipients the market will honor.
type TransferPayoutRequest struct {
	Buyer        domain.Account `json:"receiverId"`
	AssetId      domain.AssetId `json:"tokenId"`
	ApprovalId   uint64         `json:"approvalId"`
	Memo         string         `json:"memo"`
	Price        domain.Amount  `json:"balance"`
	MaxLenPayout uint32         `json:"maxLenPayout"`
}

// Client calls back into an asset registry. TransferPayout initiates the
// asset transfer and returns the registry's payout computation; any failure
// of the call or an undecodable body surfaces as an error for the
// settlement coordinator's refund fallback.
type Client interface {
	TransferPayout(c ctx.Ctx, registry domain.RegistryId, req *TransferPayoutRequest) (*Payout, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Apikey     string
	// Endpoints maps a registry id to its callback base url
	Endpoints map[domain.RegistryId]string
}
