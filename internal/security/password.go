package security

import (
	"crypto/subtle"
	"errors"
)

var ErrPasswordMismatch = errors.New("password mismatch")

// CheckPassword compares a stored plaintext password with a submitted one.
// Equality is exact; the comparison time does not depend on where the inputs differ.
func CheckPassword(stored, plain string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) != 1 {
		return ErrPasswordMismatch
	}

	return nil
}
