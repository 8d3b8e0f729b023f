package httpx

import (
	"context"
	"time"
)

// AuthUser is the per-request projection of an authenticated user, attached
// to the context by AuthnMiddleware after the token has been verified and the
// user re-resolved. It never carries the password hash.
type AuthUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type ctxKey string

const ctxKeyAuthUser ctxKey = "auth_user"

// WithAuthUser attaches the authenticated user to the context.
func WithAuthUser(ctx context.Context, u AuthUser) context.Context {
	return context.WithValue(ctx, ctxKeyAuthUser, u)
}

// AuthUserFromContext returns the authenticated user, if any.
func AuthUserFromContext(ctx context.Context) (AuthUser, bool) {
	u, ok := ctx.Value(ctxKeyAuthUser).(AuthUser)
	return u, ok
}
