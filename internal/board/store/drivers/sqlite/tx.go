package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pinwall/noticeboard/internal/board/store"
)

// txStore scopes the repos to a single transaction.
type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Users() store.Users     { return &usersRepo{q: t.tx} }
func (t *txStore) Notices() store.Notices { return &noticesRepo{q: t.tx} }

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) ApplyMigrations() error {
	return errors.New("sqlite: migrations cannot run inside a transaction")
}

func (t *txStore) Tx(context.Context) (store.Tx, error) {
	return nil, errors.New("sqlite: nested transactions are not supported")
}

func (t *txStore) WithTx(context.Context, func(tx store.Tx) error) error {
	return errors.New("sqlite: nested transactions are not supported")
}

func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(context.Context) error { return nil }
