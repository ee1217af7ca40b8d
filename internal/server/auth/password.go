package auth

import (
	"errors"

	"github.com/dmitrijs2005/weatherhub/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the service has always used for stored
// hashes; raising it invalidates nothing but slows registration and login.
const bcryptCost = 8

// HashPassword transforms a plaintext password into a salted bcrypt hash.
// The plaintext is never stored.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a stored hash with a plaintext candidate.
// Returns common.ErrorInvalidCredentials on mismatch.
func CheckPassword(hash string, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return common.ErrorInvalidCredentials
		}
		return err
	}
	return nil
}
