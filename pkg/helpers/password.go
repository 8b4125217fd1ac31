package helpers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor. Raise it as hardware gets
// faster; existing hashes keep the cost they were created with.
const HashCost = bcrypt.DefaultCost

// HashPassword hashes the plain text password using bcrypt with a
// fresh random salt. The returned record embeds algorithm, cost and
// salt, so it is all the verifier needs.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), HashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt
// record. A mismatch is (false, nil); an error means the stored record
// itself is unusable.
func VerifyPassword(hash string, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
