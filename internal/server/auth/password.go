package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/permalist/internal/common"
)

// bcryptCost is the fixed work factor for password hashing.
const bcryptCost = 10

// HashPassword generates a salted one-way digest of password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", common.ErrorValidation
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// ComparePasswordAndHash validates the given cleartext password against the
// stored digest. bcrypt's comparison runs in time independent of where the
// mismatch occurs. A mismatch returns common.ErrorUnauthorized.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return common.ErrorUnauthorized
		}
		return err
	}
	return nil
}
