package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when callers pass 0. Raising it
// makes brute-forcing stolen digests more expensive at the price of slower
// logins.
const DefaultCost = 12

// ErrMismatch reports that the password does not match the stored digest.
// Every other error from VerifyPassword is an infrastructure failure and must
// not be presented to clients as "invalid credentials".
var ErrMismatch = errors.New("cryptox: password does not match")

// HashPassword derives a salted bcrypt digest of password. The salt is
// generated per call, so hashing the same password twice yields different
// digests.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", fmt.Errorf("cryptox: cost %d out of range", cost)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword compares a plaintext password against a bcrypt digest.
// The underlying comparison is constant-time.
func VerifyPassword(password, digest string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		// Corrupt digest, unsupported version, etc.
		return fmt.Errorf("cryptox: verify password: %w", err)
	}
}
