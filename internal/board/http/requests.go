package http

import (
	"regexp"
	"strings"
)

const requiredReason = "required"

var (
	reUsername = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	reEmail    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// SignupRequest is the POST /api/users body.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the signup fields. Returns a map of field names to error
// messages, or nil if all fields are valid. Validation is pure: it runs
// before any storage or hashing work.
func (r SignupRequest) Validate() map[string]string {
	errs := make(map[string]string)

	username := strings.TrimSpace(r.Username)
	switch {
	case username == "":
		errs["username"] = requiredReason
	case len(username) < 3 || len(username) > 30:
		errs["username"] = "must be 3-30 characters"
	case !reUsername.MatchString(username):
		errs["username"] = "must only contain a-z, A-Z, 0-9 or _"
	}

	email := strings.TrimSpace(r.Email)
	switch {
	case email == "":
		errs["email"] = requiredReason
	case !reEmail.MatchString(email):
		errs["email"] = "must be a valid email address"
	}

	switch {
	case r.Password == "":
		errs["password"] = requiredReason
	case len(r.Password) < 6:
		errs["password"] = "too short (min 6)"
	case len(r.Password) > 128:
		errs["password"] = "too long (max 128)"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// LoginRequest is the POST /api/users/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate only requires presence; anything beyond that is the credential
// check's job and must not leak which part was wrong.
func (r LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = requiredReason
	}
	if r.Password == "" {
		errs["password"] = requiredReason
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CreateNoticeRequest is the POST /api/notices body.
type CreateNoticeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r CreateNoticeRequest) Validate() map[string]string {
	errs := make(map[string]string)

	title := strings.TrimSpace(r.Title)
	switch {
	case title == "":
		errs["title"] = requiredReason
	case len(title) > 200:
		errs["title"] = "too long (max 200)"
	}

	content := strings.TrimSpace(r.Content)
	switch {
	case content == "":
		errs["content"] = requiredReason
	case len(content) > 5000:
		errs["content"] = "too long (max 5000)"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
