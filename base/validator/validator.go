package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// account ids are lowercase alphanumeric segments separated by one of -_.
// with a total length of 2 to 64 characters
var accountRegexp = regexp.MustCompile(`^(([a-z\d]+[-_])*[a-z\d]+\.)*([a-z\d]+[-_])*[a-z\d]+$`)

// IsValidAccount returns is an account id valid or not
func IsValidAccount(account string) bool {
	if len(account) < 2 || len(account) > 64 {
		return false
	}
	return accountRegexp.MatchString(account)
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
