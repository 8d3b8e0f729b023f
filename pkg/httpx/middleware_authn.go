package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/pinwall/noticeboard/pkg/jwtx"
	"github.com/pinwall/noticeboard/pkg/slogx"
)

// ErrUserNotFound must be returned by UserResolver implementations when the
// claimed user id has no backing record. Any other error is treated as an
// infrastructure failure and answered with a 500.
var ErrUserNotFound = errors.New("httpx: user not found")

// UserResolver looks up the user a token claims to be. Keeping it an
// interface here avoids a dependency from pkg onto the storage layer.
type UserResolver interface {
	ResolveUser(ctx context.Context, userID string) (AuthUser, error)
}

// AuthnMiddleware guards a route with bearer-token authentication.
//
// The failure taxonomy is deliberate and tested: no token at all is 401,
// a malformed or tampered token is 403, a stale token is 403, and a valid
// token for a user that no longer exists is 401 again. A verified request
// proceeds with the AuthUser attached to its context.
func AuthnMiddleware(v jwtx.Verifier, users UserResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				ErrTokenRequired.Write(w)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				ErrTokenMalformed.Write(w)
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				ErrTokenExpired.Write(w)
				return
			}

			// Re-resolve the user so tokens for deleted accounts stop
			// working before they expire.
			user, err := users.ResolveUser(ctx, claims.Subject)
			switch {
			case errors.Is(err, ErrUserNotFound):
				ErrTokenUserGone.Write(w)
				return
			case err != nil:
				log.Error("user resolution failed", "user_id", claims.Subject, "err", err)
				ErrInternal.Write(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAuthUser(ctx, user)))
		})
	}
}
