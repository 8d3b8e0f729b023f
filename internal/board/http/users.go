package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pinwall/noticeboard/internal/board/service"
	"github.com/pinwall/noticeboard/pkg/httpx"
	"github.com/pinwall/noticeboard/pkg/slogx"
)

var errBadJSON = httpx.NewError(http.StatusBadRequest,
	"Invalid request body", "Request body must be valid JSON")

// UsersHandler serves the account endpoints: signup, login and the
// authenticated user listing.
type UsersHandler struct {
	AccountService *service.AccountService
}

// HandleSignup creates a new user. Validation runs first, then the service
// performs the uniqueness check, hash and insert.
func (h *UsersHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errBadJSON.Write(w)
		return
	}

	if errs := req.Validate(); errs != nil {
		httpx.WriteValidationError(w, errs)
		return
	}

	user, err := h.AccountService.Signup(ctx, req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		httpx.NewError(http.StatusConflict, "User already exists", "Email already registered").Write(w)
		return
	case errors.Is(err, service.ErrUsernameTaken):
		httpx.NewError(http.StatusConflict, "User already exists", "Username already taken").Write(w)
		return
	case err != nil:
		log.Error("signup failed", "err", err)
		httpx.ErrInternal.Write(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    toUserPayload(user),
	})
}

// HandleLogin authenticates a user and responds with a bearer token.
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errBadJSON.Write(w)
		return
	}

	if errs := req.Validate(); errs != nil {
		httpx.WriteValidationError(w, errs)
		return
	}

	user, token, err := h.AccountService.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		// One body for unknown email and wrong password.
		httpx.ErrInvalidCredentials.Write(w)
		return
	case err != nil:
		log.Error("login failed", "err", err)
		httpx.ErrInternal.Write(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user": loginUserPayload{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

// HandleList returns all users. The route is wrapped in AuthnMiddleware, so
// by the time this runs the request context carries a verified user.
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.AccountService.ListUsers(ctx)
	if err != nil {
		log.Error("list users failed", "err", err)
		httpx.ErrInternal.Write(w)
		return
	}

	payload := make([]userPayload, 0, len(users))
	for _, u := range users {
		payload = append(payload, toUserPayload(u))
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Users retrieved successfully",
		"count":   len(payload),
		"users":   payload,
	})
}
