package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unicmarket/goapi/domain"
)

func TestIdKeyRoundTrip(t *testing.T) {
	id := Id{RegistryId: "nft.testnet", AssetId: "token-1"}
	assert.Equal(t, "nft.testnet::token-1", id.Key())

	got, err := IdFromKey(id.Key())
	assert.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = IdFromKey("no-delimiter")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	_, err = IdFromKey("::token-1")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestIdValidate(t *testing.T) {
	cases := []struct {
		name    string
		id      Id
		wantErr bool
	}{
		{
			name: "valid",
			id:   Id{RegistryId: "nft.testnet", AssetId: "token-1"},
		},
		{
			name:    "empty registry",
			id:      Id{AssetId: "token-1"},
			wantErr: true,
		},
		{
			name:    "empty asset",
			id:      Id{RegistryId: "nft.testnet"},
			wantErr: true,
		},
		{
			name:    "delimiter inside asset id",
			id:      Id{RegistryId: "nft.testnet", AssetId: "a::b"},
			wantErr: true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.id.Validate()
			if c.wantErr {
				assert.ErrorIs(t, err, domain.ErrBadParamInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseSaleArgs(t *testing.T) {
	args, err := ParseSaleArgs(`{"price":"1000000000000000000000000"}`)
	assert.NoError(t, err)
	assert.Equal(t, domain.Amount("1000000000000000000000000"), args.Price)

	_, err = ParseSaleArgs(`not json`)
	assert.ErrorIs(t, err, domain.ErrInvalidJsonFormat)

	_, err = ParseSaleArgs(`{"price":"-5"}`)
	assert.ErrorIs(t, err, domain.ErrInvalidJsonFormat)

	_, err = ParseSaleArgs(`{}`)
	assert.ErrorIs(t, err, domain.ErrInvalidJsonFormat)
}

func TestIsAuction(t *testing.T) {
	assert.True(t, (&Listing{Kind: KindAuction}).IsAuction())
	assert.False(t, (&Listing{Kind: KindSale}).IsAuction())
}
