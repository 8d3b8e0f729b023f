package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can mint signed access tokens.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a token string and gives you back the claims if it's
// legit. Verify only checks structure, signature and issuer; expiry is
// validated separately via Claims.ValidateExpiry so callers can tell a
// tampered token apart from a stale one.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// HS256 signs and verifies tokens with a shared symmetric secret. The secret
// is process-wide, read once at startup and never rotated while running.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 builds a combined signer/verifier. The secret must be non-empty;
// requiring it here keeps a missing configuration from silently producing
// forgeable tokens.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

func (h *HS256) Sign(c Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(h.secret)
}

func (h *HS256) Verify(raw string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return h.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// Expiry is checked by the caller via ValidateExpiry.
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return Claims{}, ErrInvalidSig
		}
		return Claims{}, ErrMalformed
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
