package domain

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

// Table is a mongo collection name
type Table string

const (
	TableListings           Table = "listings"
	TableListingsByOwner    Table = "listings_by_owner"
	TableListingsByRegistry Table = "listings_by_registry"
	TableStorageDeposits    Table = "storage_deposits"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Account is an account id on the platform, e.g. "alice" or "market.alice"
type Account string

func (a Account) ToLower() Account {
	return Account(strings.ToLower(string(a)))
}

func (a Account) IsEmpty() bool {
	return len(a) == 0
}

func (a Account) Equals(b Account) bool {
	return a.ToLower() == b.ToLower()
}

// RegistryId is the account id of an asset registry contract
type RegistryId string

func (r RegistryId) String() string {
	return string(r)
}

// AssetId is the token id of an asset inside one registry
type AssetId string

func (i AssetId) String() string {
	return string(i)
}

// amountDecimals is the number of decimals of the smallest currency unit
const amountDecimals = 24

var maxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Amount is an unsigned 128-bit quantity in the smallest currency unit,
// carried as a decimal string so it serializes losslessly to json and bson
type Amount string

func (a Amount) String() string {
	return string(a)
}

// BigInt parses the amount. Negative, malformed, or wider than 128 bits is
// ErrInvalidNumberFormat.
func (a Amount) BigInt() (*big.Int, error) {
	i, ok := new(big.Int).SetString(string(a), 10)
	if !ok {
		return nil, xerrors.Errorf("parse amount %q: %w", string(a), ErrInvalidNumberFormat)
	}
	if i.Sign() < 0 || i.Cmp(maxAmount) > 0 {
		return nil, xerrors.Errorf("amount %q out of range: %w", string(a), ErrInvalidNumberFormat)
	}
	return i, nil
}

func AmountFromBigInt(i *big.Int) Amount {
	return Amount(i.String())
}

// Cmp compares two amounts numerically
func (a Amount) Cmp(b Amount) (int, error) {
	ai, err := a.BigInt()
	if err != nil {
		return 0, err
	}
	bi, err := b.BigInt()
	if err != nil {
		return 0, err
	}
	return ai.Cmp(bi), nil
}

// CheckedAdd returns a + b, or an error when the sum leaves the 128-bit range
func (a Amount) CheckedAdd(b Amount) (Amount, error) {
	ai, err := a.BigInt()
	if err != nil {
		return "", err
	}
	bi, err := b.BigInt()
	if err != nil {
		return "", err
	}
	res := new(big.Int).Add(ai, bi)
	if res.Cmp(maxAmount) > 0 {
		return "", xerrors.Errorf("%s + %s overflows: %w", a, b, ErrInvalidNumberFormat)
	}
	return AmountFromBigInt(res), nil
}

// CheckedMul returns a * n, or an error when the product leaves the 128-bit range
func (a Amount) CheckedMul(n int64) (Amount, error) {
	ai, err := a.BigInt()
	if err != nil {
		return "", err
	}
	res := new(big.Int).Mul(ai, big.NewInt(n))
	if res.Sign() < 0 || res.Cmp(maxAmount) > 0 {
		return "", xerrors.Errorf("%s * %d overflows: %w", a, n, ErrInvalidNumberFormat)
	}
	return AmountFromBigInt(res), nil
}

// CheckedSub returns a - b, or an error when the result would underflow.
// Underflow is never silently wrapped.
func (a Amount) CheckedSub(b Amount) (Amount, error) {
	ai, err := a.BigInt()
	if err != nil {
		return "", err
	}
	bi, err := b.BigInt()
	if err != nil {
		return "", err
	}
	res := new(big.Int).Sub(ai, bi)
	if res.Sign() < 0 {
		return "", xerrors.Errorf("%s - %s underflows: %w", a, b, ErrInvalidNumberFormat)
	}
	return AmountFromBigInt(res), nil
}

// Display renders the amount in whole currency units for logs and responses
func (a Amount) Display() string {
	d, err := decimal.NewFromString(string(a))
	if err != nil {
		return string(a)
	}
	return d.Shift(-amountDecimals).String()
}
