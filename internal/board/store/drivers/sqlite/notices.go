package sqlite

import (
	"context"

	"github.com/pinwall/noticeboard/internal/board/domain"
	"github.com/pinwall/noticeboard/internal/board/store"
)

type noticesRepo struct {
	q querier
}

func (r *noticesRepo) CreateNotice(ctx context.Context, n domain.Notice) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO notices (id, title, content, created_at) VALUES (?, ?, ?, ?)`,
		n.ID, n.Title, n.Content, n.CreatedAt)
	return mapConflict(err)
}

func (r *noticesRepo) ListNotices(ctx context.Context) ([]domain.Notice, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, title, content, created_at FROM notices
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []domain.Notice
	for rows.Next() {
		var n domain.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

func (r *noticesRepo) GetNoticeByID(ctx context.Context, id string) (domain.Notice, error) {
	var n domain.Notice
	err := r.q.QueryRowContext(ctx,
		`SELECT id, title, content, created_at FROM notices WHERE id = ?`, id).
		Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt)
	if err != nil {
		return domain.Notice{}, mapNotFound(err)
	}
	return n, nil
}

func (r *noticesRepo) DeleteNotice(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM notices WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
