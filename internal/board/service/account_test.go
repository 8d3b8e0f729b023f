package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pinwall/noticeboard/internal/board/store"
	"github.com/pinwall/noticeboard/internal/board/store/drivers/sqlite"
	"github.com/pinwall/noticeboard/pkg/cryptox"
	"github.com/pinwall/noticeboard/pkg/jwtx"
)

func newAccountService(t *testing.T) (*AccountService, *jwtx.HS256) {
	t.Helper()

	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256([]byte("account-test-secret"), "noticeboard-test")
	require.NoError(t, err)

	return &AccountService{
		Store:    st,
		Signer:   signer,
		Issuer:   "noticeboard-test",
		HashCost: 4, // min bcrypt cost keeps tests quick
	}, signer
}

func TestSignupAndLogin(t *testing.T) {
	t.Parallel()

	svc, verifier := newAccountService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEqual(t, "secret1", user.PasswordHash)

	got, token, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "a@x.com", claims.Email)
	require.NoError(t, claims.ValidateExpiry())

	// Expiry window defaults to 24h.
	require.WithinDuration(t,
		time.Now().UTC().Add(jwtx.DefaultAccessTokenTTL),
		claims.ExpiresAt.Time, time.Minute)
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "different", "a@x.com", "secret2")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupDuplicateUsername(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "alice", "different@x.com", "secret2")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestSignupEmailCollisionTakesPrecedence(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	// Both identity fields collide; the email error wins.
	_, err = svc.Signup(ctx, "alice", "a@x.com", "secret2")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginBadCredentialsAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	_, _, errWrongPassword := svc.Login(ctx, "a@x.com", "wrong")
	_, _, errUnknownEmail := svc.Login(ctx, "nobody@x.com", "secret1")

	require.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
}

func TestLoginCorruptDigestIsNotInvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	// Corrupt the stored digest directly; login must now fail with an
	// infrastructure error, not a credentials error.
	require.NoError(t, svc.Store.Users().DeleteUser(ctx, user.ID))
	user.PasswordHash = "corrupted"
	require.NoError(t, svc.Store.Users().CreateUser(ctx, user))

	_, _, err = svc.Login(ctx, "a@x.com", "secret1")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestListUsersNewestFirst(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "first", "first@x.com", "secret1")
	require.NoError(t, err)
	_, err = svc.Signup(ctx, "second", "second@x.com", "secret1")
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "second", users[0].Username)
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, user.ID))
	_, err = svc.GetUserByID(ctx, user.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPasswordHashesAreSalted(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountService(t)
	ctx := context.Background()

	a, err := svc.Signup(ctx, "alice", "a@x.com", "same-password")
	require.NoError(t, err)
	b, err := svc.Signup(ctx, "bob", "b@x.com", "same-password")
	require.NoError(t, err)

	require.NotEqual(t, a.PasswordHash, b.PasswordHash)
	require.NoError(t, cryptox.VerifyPassword("same-password", a.PasswordHash))
	require.NoError(t, cryptox.VerifyPassword("same-password", b.PasswordHash))
}
