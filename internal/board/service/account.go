package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pinwall/noticeboard/internal/board/domain"
	"github.com/pinwall/noticeboard/internal/board/store"
	"github.com/pinwall/noticeboard/pkg/cryptox"
	"github.com/pinwall/noticeboard/pkg/idx"
	"github.com/pinwall/noticeboard/pkg/jwtx"
	"github.com/pinwall/noticeboard/pkg/slogx"
)

var (
	// ErrEmailTaken and ErrUsernameTaken report signup identity collisions.
	// When both collide, email wins.
	ErrEmailTaken    = errors.New("service: email already registered")
	ErrUsernameTaken = errors.New("service: username already taken")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must not distinguish the two cases in their responses.
	ErrInvalidCredentials = errors.New("service: invalid credentials")
)

// AccountService orchestrates signup and login. The store and signer are
// injected so tests can run it against an in-memory database.
type AccountService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration // zero means jwtx.DefaultAccessTokenTTL
	HashCost int           // zero means cryptox.DefaultCost
}

// Signup registers a new user. The duplicate check and insert run in one
// transaction so two racing signups cannot both pass the check.
func (s *AccountService) Signup(ctx context.Context, username, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password, s.HashCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("signup: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByEmail(ctx, email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if _, err := tx.Users().GetUserByUsername(ctx, username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		return tx.Users().CreateUser(ctx, user)
	})
	if err != nil {
		return domain.User{}, err
	}

	log.Info("user created", slog.String("user_id", user.ID), slog.String("username", username))
	return user, nil
}

// Login authenticates by email and password and mints an access token.
// Unknown email and wrong password both return ErrInvalidCredentials;
// anything else is an infrastructure failure.
func (s *AccountService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", fmt.Errorf("login: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		// Corrupt digest or the like; not a bad password.
		return domain.User{}, "", fmt.Errorf("login: %w", err)
	}

	ttl := s.TokenTTL
	if ttl == 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(user.ID, user.Username, user.Email, s.Issuer, ttl, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("login: sign token: %w", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return user, token, nil
}

// GetUserByID fetches a user by id.
func (s *AccountService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// ListUsers returns all users, newest first.
func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// DeleteUser removes a user. Tokens the user already holds stop working on
// the next request because the auth middleware re-resolves the subject.
func (s *AccountService) DeleteUser(ctx context.Context, id string) error {
	return s.Store.Users().DeleteUser(ctx, id)
}
