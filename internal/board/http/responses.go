package http

import (
	"time"

	"github.com/pinwall/noticeboard/internal/board/domain"
)

// userPayload is the only user shape that ever reaches a client. There is
// deliberately no password field to forget to blank out.
type userPayload struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserPayload(u domain.User) userPayload {
	return userPayload{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// loginUserPayload is the user shape in the login response, which omits the
// creation timestamp.
type loginUserPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type noticePayload struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func toNoticePayload(n domain.Notice) noticePayload {
	return noticePayload{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	}
}
