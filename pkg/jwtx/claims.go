package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the lifetime of an access token. A token minted at
// login stays valid for this window and there is no refresh or revocation, so
// keep it in the order of a day, not weeks.
const DefaultAccessTokenTTL = 24 * time.Hour

// Claims are the access-token claims. The subject carries the user id; the
// username and email ride along so handlers can log and respond without an
// extra lookup, but authorization always re-resolves the user from storage.
type Claims struct {
	jwt.RegisteredClaims

	// Username for the authenticated user
	Username string `json:"username,omitempty"`

	// Email for the authenticated user
	Email string `json:"email,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for a login token.
func NewAccessClaims(
	userID, username, email string,
	issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Username: username,
		Email:    email,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryAt(time.Now().UTC())
}

// ValidateExpiryAt is ValidateExpiry against an explicit clock, which is what
// tests want when probing the boundary.
func (c *Claims) ValidateExpiryAt(now time.Time) error {
	// Check expired (exp)
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	// Check if a valid token isn't used before it is valid (nbf)
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
