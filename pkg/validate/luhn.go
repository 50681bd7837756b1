package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn checks the payment reference check digit.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
