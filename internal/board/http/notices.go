package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pinwall/noticeboard/internal/board/service"
	"github.com/pinwall/noticeboard/internal/board/store"
	"github.com/pinwall/noticeboard/pkg/httpx"
	"github.com/pinwall/noticeboard/pkg/slogx"
)

var errNoticeNotFound = httpx.NewError(http.StatusNotFound,
	"Notice not found", "The requested notice does not exist")

// NoticesHandler serves the notice board endpoints. Reads are public,
// writes sit behind AuthnMiddleware.
type NoticesHandler struct {
	NoticeService *service.NoticeService
}

func (h *NoticesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req CreateNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errBadJSON.Write(w)
		return
	}

	if errs := req.Validate(); errs != nil {
		httpx.WriteValidationError(w, errs)
		return
	}

	notice, err := h.NoticeService.Create(ctx, req.Title, req.Content)
	if err != nil {
		log.Error("create notice failed", "err", err)
		httpx.ErrInternal.Write(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Notice created successfully",
		"notice":  toNoticePayload(notice),
	})
}

func (h *NoticesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	notices, err := h.NoticeService.List(ctx)
	if err != nil {
		log.Error("list notices failed", "err", err)
		httpx.ErrInternal.Write(w)
		return
	}

	payload := make([]noticePayload, 0, len(notices))
	for _, n := range notices {
		payload = append(payload, toNoticePayload(n))
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Notices retrieved successfully",
		"count":   len(payload),
		"notices": payload,
	})
}

func (h *NoticesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	notice, err := h.NoticeService.Get(ctx, r.PathValue("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		errNoticeNotFound.Write(w)
		return
	case err != nil:
		log.Error("get notice failed", "err", err)
		httpx.ErrInternal.Write(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Notice retrieved successfully",
		"notice":  toNoticePayload(notice),
	})
}

func (h *NoticesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	notice, err := h.NoticeService.Delete(ctx, r.PathValue("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.NewError(http.StatusNotFound, "Notice not found",
			"The notice you are trying to delete does not exist").Write(w)
		return
	case err != nil:
		log.Error("delete notice failed", "err", err)
		httpx.ErrInternal.Write(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Notice deleted successfully",
		"deletedNotice": map[string]string{
			"id":    notice.ID,
			"title": notice.Title,
		},
	})
}
