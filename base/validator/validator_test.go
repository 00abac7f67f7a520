package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAccount() {
	tests := []struct {
		desc       string
		account    string
		expIsValid bool
	}{
		{
			desc:       "too short",
			account:    "a",
			expIsValid: false,
		},
		{
			desc:       "valid account - plain",
			account:    "alice",
			expIsValid: true,
		},
		{
			desc:       "valid account - subaccount",
			account:    "market.alice-01",
			expIsValid: true,
		},
		{
			desc:       "invalid account - uppercase",
			account:    "Alice",
			expIsValid: false,
		},
		{
			desc:       "invalid account - trailing separator",
			account:    "alice.",
			expIsValid: false,
		},
		{
			desc:       "invalid account - illegal char",
			account:    "alice!bob",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAccount(t.account), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
