package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupRequestValidate(t *testing.T) {
	valid := SignupRequest{Username: "alice_01", Email: "alice@example.com", Password: "sup3rsecret"}
	require.Nil(t, valid.Validate())

	tests := []struct {
		name  string
		mut   func(*SignupRequest)
		field string
	}{
		{"missing username", func(r *SignupRequest) { r.Username = "" }, "username"},
		{"whitespace username", func(r *SignupRequest) { r.Username = "   " }, "username"},
		{"short username", func(r *SignupRequest) { r.Username = "ab" }, "username"},
		{"long username", func(r *SignupRequest) { r.Username = strings.Repeat("a", 31) }, "username"},
		{"bad username chars", func(r *SignupRequest) { r.Username = "al ice!" }, "username"},
		{"missing email", func(r *SignupRequest) { r.Email = "" }, "email"},
		{"email without at", func(r *SignupRequest) { r.Email = "alice.example.com" }, "email"},
		{"email without domain dot", func(r *SignupRequest) { r.Email = "alice@example" }, "email"},
		{"missing password", func(r *SignupRequest) { r.Password = "" }, "password"},
		{"short password", func(r *SignupRequest) { r.Password = "12345" }, "password"},
		{"long password", func(r *SignupRequest) { r.Password = strings.Repeat("x", 129) }, "password"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mut(&req)

			errs := req.Validate()
			require.NotNil(t, errs)
			assert.Contains(t, errs, tc.field)
		})
	}
}

func TestSignupRequestValidateCollectsAllFields(t *testing.T) {
	errs := SignupRequest{}.Validate()
	require.Len(t, errs, 3)
	assert.Equal(t, requiredReason, errs["username"])
	assert.Equal(t, requiredReason, errs["email"])
	assert.Equal(t, requiredReason, errs["password"])
}

func TestLoginRequestValidate(t *testing.T) {
	require.Nil(t, LoginRequest{Email: "a@b.co", Password: "pw"}.Validate())

	// Login validation is presence-only. A bogus-looking email must pass
	// here and fail at the credential check instead.
	require.Nil(t, LoginRequest{Email: "not-an-email", Password: "pw"}.Validate())

	errs := LoginRequest{}.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, requiredReason, errs["email"])
	assert.Equal(t, requiredReason, errs["password"])
}

func TestCreateNoticeRequestValidate(t *testing.T) {
	valid := CreateNoticeRequest{Title: "Server maintenance", Content: "Down 2-3am."}
	require.Nil(t, valid.Validate())

	t.Run("missing fields", func(t *testing.T) {
		errs := CreateNoticeRequest{}.Validate()
		require.Len(t, errs, 2)
		assert.Equal(t, requiredReason, errs["title"])
		assert.Equal(t, requiredReason, errs["content"])
	})

	t.Run("whitespace only", func(t *testing.T) {
		errs := CreateNoticeRequest{Title: "  ", Content: "\n\t"}.Validate()
		require.Len(t, errs, 2)
	})

	t.Run("too long", func(t *testing.T) {
		errs := CreateNoticeRequest{
			Title:   strings.Repeat("t", 201),
			Content: strings.Repeat("c", 5001),
		}.Validate()
		require.Len(t, errs, 2)
		assert.Contains(t, errs["title"], "max 200")
		assert.Contains(t, errs["content"], "max 5000")
	})

	t.Run("at the limits", func(t *testing.T) {
		req := CreateNoticeRequest{
			Title:   strings.Repeat("t", 200),
			Content: strings.Repeat("c", 5000),
		}
		require.Nil(t, req.Validate())
	})
}
