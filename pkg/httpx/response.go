package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for responses carrying tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// Error is the JSON error body every failing endpoint returns. Code is the
// short machine-friendly label, Message the human-readable one.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Write writes this Error to an HTTP response writer.
func (e *Error) Write(w http.ResponseWriter) {
	NoCache(w)
	WriteJSON(w, e.Status, e)
}

// NewError creates an Error with the given status code, label, and message.
func NewError(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

var (
	// ErrTokenRequired is returned when a protected route is hit with no
	// bearer token at all.
	ErrTokenRequired = &Error{
		Status:  http.StatusUnauthorized,
		Code:    "Access token required",
		Message: "Please provide a valid authentication token",
	}

	// ErrTokenMalformed is returned when the token fails the structure or
	// signature check.
	ErrTokenMalformed = &Error{
		Status:  http.StatusForbidden,
		Code:    "Invalid token",
		Message: "Token is malformed",
	}

	// ErrTokenExpired is returned for a well-signed token past its expiry.
	ErrTokenExpired = &Error{
		Status:  http.StatusForbidden,
		Code:    "Token expired",
		Message: "Please login again",
	}

	// ErrTokenUserGone is returned when the token verifies but the claimed
	// user no longer exists (deleted account holding a stale token).
	ErrTokenUserGone = &Error{
		Status:  http.StatusUnauthorized,
		Code:    "Invalid token",
		Message: "User not found",
	}

	// ErrInvalidCredentials is the single body for both unknown-email and
	// wrong-password logins, so responses don't reveal which emails are
	// registered.
	ErrInvalidCredentials = &Error{
		Status:  http.StatusUnauthorized,
		Code:    "Invalid credentials",
		Message: "Email or password is incorrect",
	}

	// ErrInternal is the catch-all for storage, hashing and signing
	// failures. Details stay in the logs.
	ErrInternal = &Error{
		Status:  http.StatusInternalServerError,
		Code:    "Internal server error",
		Message: "Something went wrong",
	}

	// ErrTooManyRequests is returned by the rate limit middleware.
	ErrTooManyRequests = &Error{
		Status:  http.StatusTooManyRequests,
		Code:    "Too many requests",
		Message: "Slow down and try again later",
	}
)

// ValidationError is the 400 body for request-shape failures: a field-to-
// message map produced by a request's Validate method.
type ValidationError struct {
	Code    string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"errors"`
}

// WriteValidationError reports field-level validation failures.
func WriteValidationError(w http.ResponseWriter, fields map[string]string) {
	WriteJSON(w, http.StatusBadRequest, ValidationError{
		Code:    "Validation failed",
		Message: "One or more fields are invalid",
		Fields:  fields,
	})
}
