package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/pinwall/noticeboard/internal/board/domain"
	"github.com/pinwall/noticeboard/internal/board/store"
	"github.com/pinwall/noticeboard/pkg/idx"
	"github.com/pinwall/noticeboard/pkg/slogx"
)

// NoticeService owns the announcement lifecycle.
type NoticeService struct {
	Store store.Store
}

// Create stores a new notice and returns it.
func (s *NoticeService) Create(ctx context.Context, title, content string) (domain.Notice, error) {
	notice := domain.Notice{
		ID:        idx.New().String(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.Notices().CreateNotice(ctx, notice); err != nil {
		return domain.Notice{}, err
	}

	slogx.FromContext(ctx).Info("notice created", slog.String("notice_id", notice.ID))
	return notice, nil
}

// List returns all notices, newest first.
func (s *NoticeService) List(ctx context.Context) ([]domain.Notice, error) {
	return s.Store.Notices().ListNotices(ctx)
}

// Get returns a notice by id, or store.ErrNotFound.
func (s *NoticeService) Get(ctx context.Context, id string) (domain.Notice, error) {
	return s.Store.Notices().GetNoticeByID(ctx, id)
}

// Delete removes a notice and returns what was deleted, so the response can
// echo the id and title. Returns store.ErrNotFound when the notice is absent.
func (s *NoticeService) Delete(ctx context.Context, id string) (domain.Notice, error) {
	notice, err := s.Store.Notices().GetNoticeByID(ctx, id)
	if err != nil {
		return domain.Notice{}, err
	}

	if err := s.Store.Notices().DeleteNotice(ctx, id); err != nil {
		return domain.Notice{}, err
	}

	slogx.FromContext(ctx).Info("notice deleted", slog.String("notice_id", id))
	return notice, nil
}
