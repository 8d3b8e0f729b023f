package store

import (
	"context"
	"errors"

	"github.com/pinwall/noticeboard/internal/board/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Notices() Notices

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx for multi-step operations such as the signup uniqueness
	// check plus insert.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id. Used by the auth middleware to
	// re-resolve token subjects.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and the signup duplicate check.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByUsername is used during the signup duplicate check.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns all users ordered by creation date (newest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// DeleteUser removes a user. Outstanding tokens for the user become
	// unusable because the auth middleware re-resolves on every request.
	DeleteUser(ctx context.Context, id string) error

	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int64, error)
}

type Notices interface {
	// CreateNotice inserts a new notice (id is provided by app via ULID).
	CreateNotice(ctx context.Context, n domain.Notice) error

	// ListNotices returns all notices ordered by creation date (newest first).
	ListNotices(ctx context.Context) ([]domain.Notice, error)

	// GetNoticeByID returns a notice by id.
	GetNoticeByID(ctx context.Context, id string) (domain.Notice, error)

	// DeleteNotice removes a notice by id.
	DeleteNotice(ctx context.Context, id string) error
}
