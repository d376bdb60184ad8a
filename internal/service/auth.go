package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-builder/internal/domain"
)

// AuthService logs a scope in and out and hands out its bearer token.
// The session lives in the draft store under the same keys the mobile client
// uses, so a logout removes exactly what a login wrote.
type AuthService struct {
	api    AuthAPI
	drafts *DraftStore
	log    *slog.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(api AuthAPI, drafts *DraftStore, log *slog.Logger) *AuthService {
	return &AuthService{api: api, drafts: drafts, log: log}
}

// Login validates creds, authenticates against the backend, and stores the
// session for scope.
func (s *AuthService) Login(ctx context.Context, scope uuid.UUID, creds domain.Credentials) (domain.User, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := creds.Validate(); err != nil {
		return domain.User{}, err
	}

	sess, err := s.api.Login(ctx, creds)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}

	u := sess.User
	if u.Email == "" {
		u.Email = creds.Email
	}
	s.drafts.Set(ctx, scope, domain.KeyToken, sess.Token)
	s.drafts.setJSON(ctx, scope, domain.KeyUser, u)
	s.drafts.Set(ctx, scope, domain.KeyFirstName, u.FirstName)
	s.drafts.Set(ctx, scope, domain.KeyLastName, u.LastName)
	s.drafts.Set(ctx, scope, domain.KeyEmail, u.Email)

	s.log.InfoContext(ctx, "user logged in", "scope", scope, "email", u.Email)
	return u, nil
}

// Register validates r and creates the account on the backend.
// It does not log the new user in.
func (s *AuthService) Register(ctx context.Context, r domain.Registration) error {
	r.Email = strings.TrimSpace(r.Email)
	if err := r.Validate(); err != nil {
		return err
	}
	if err := s.api.Register(ctx, r); err != nil {
		return fmt.Errorf("service.AuthService.Register: %w", err)
	}
	return nil
}

// Logout removes the stored session. Logging out twice is not an error.
func (s *AuthService) Logout(ctx context.Context, scope uuid.UUID) {
	s.drafts.Remove(ctx, scope, domain.SessionKeys...)
}

// Token returns the scope's bearer token, or domain.ErrUnauthorized.
func (s *AuthService) Token(ctx context.Context, scope uuid.UUID) (string, error) {
	tok, ok := s.drafts.Get(ctx, scope, domain.KeyToken)
	if !ok || tok == "" {
		return "", domain.ErrUnauthorized
	}
	return tok, nil
}

// CurrentUser returns the logged-in user, or domain.ErrUnauthorized.
func (s *AuthService) CurrentUser(ctx context.Context, scope uuid.UUID) (domain.User, error) {
	if _, err := s.Token(ctx, scope); err != nil {
		return domain.User{}, err
	}
	var u domain.User
	if raw, ok := s.drafts.Get(ctx, scope, domain.KeyUser); ok {
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			return u, nil
		}
	}
	// Older sessions only carried the name fields.
	u.FirstName, _ = s.drafts.Get(ctx, scope, domain.KeyFirstName)
	u.LastName, _ = s.drafts.Get(ctx, scope, domain.KeyLastName)
	u.Email, _ = s.drafts.Get(ctx, scope, domain.KeyEmail)
	return u, nil
}
