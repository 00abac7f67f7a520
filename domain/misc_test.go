package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountBigInt(t *testing.T) {
	cases := []struct {
		name    string
		amount  Amount
		wantErr bool
	}{
		{
			name:   "zero",
			amount: "0",
		},
		{
			name:   "max 128-bit value",
			amount: "340282366920938463463374607431768211455",
		},
		{
			name:    "one past the 128-bit range",
			amount:  "340282366920938463463374607431768211456",
			wantErr: true,
		},
		{
			name:    "negative",
			amount:  "-1",
			wantErr: true,
		},
		{
			name:    "not a number",
			amount:  "12a4",
			wantErr: true,
		},
		{
			name:    "empty",
			amount:  "",
			wantErr: true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.amount.BigInt()
			if c.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNumberFormat)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAmountCheckedArithmetic(t *testing.T) {
	sum, err := Amount("100").CheckedAdd("40")
	assert.NoError(t, err)
	assert.Equal(t, Amount("140"), sum)

	_, err = Amount("340282366920938463463374607431768211455").CheckedAdd("1")
	assert.ErrorIs(t, err, ErrInvalidNumberFormat)

	diff, err := Amount("100").CheckedSub("40")
	assert.NoError(t, err)
	assert.Equal(t, Amount("60"), diff)

	diff, err = Amount("100").CheckedSub("100")
	assert.NoError(t, err)
	assert.Equal(t, Amount("0"), diff)

	_, err = Amount("40").CheckedSub("100")
	assert.ErrorIs(t, err, ErrInvalidNumberFormat)

	product, err := Amount("10000000000000000000000").CheckedMul(5)
	assert.NoError(t, err)
	assert.Equal(t, Amount("50000000000000000000000"), product)

	_, err = Amount("340282366920938463463374607431768211455").CheckedMul(2)
	assert.ErrorIs(t, err, ErrInvalidNumberFormat)
}

func TestAmountCmp(t *testing.T) {
	got, err := Amount("2").Cmp("10")
	assert.NoError(t, err)
	assert.Equal(t, -1, got)

	got, err = Amount("10").Cmp("10")
	assert.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = Amount("bad").Cmp("10")
	assert.ErrorIs(t, err, ErrInvalidNumberFormat)
}

func TestAmountDisplay(t *testing.T) {
	assert.Equal(t, "1", Amount("1000000000000000000000000").Display())
	assert.Equal(t, "1.5", Amount("1500000000000000000000000").Display())
	assert.Equal(t, "0.000000000000000000000001", Amount("1").Display())
}

func TestAccountEquals(t *testing.T) {
	assert.True(t, Account("Alice").Equals("alice"))
	assert.False(t, Account("alice").Equals("bob"))
	assert.True(t, Account("").IsEmpty())
	assert.False(t, Account("alice").IsEmpty())
}
