package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-builder/internal/domain"
)

// SettingsService owns per-scope preferences: the colour theme and the
// personal details shown on the profile screen.
type SettingsService struct {
	drafts      *DraftStore
	defaultDark bool
}

// NewSettingsService constructs a SettingsService. defaultTheme is used for
// scopes that never chose one; anything but "dark" means light.
func NewSettingsService(drafts *DraftStore, defaultTheme string) *SettingsService {
	return &SettingsService{drafts: drafts, defaultDark: defaultTheme == domain.ThemeDark}
}

// Theme returns the scope's theme.
func (s *SettingsService) Theme(ctx context.Context, scope uuid.UUID) domain.Theme {
	v, ok := s.drafts.Get(ctx, scope, domain.KeyTheme)
	if !ok {
		return domain.NewTheme(s.defaultDark)
	}
	return domain.NewTheme(v == domain.ThemeDark)
}

// ToggleTheme flips between light and dark and persists the choice.
func (s *SettingsService) ToggleTheme(ctx context.Context, scope uuid.UUID) domain.Theme {
	next := domain.NewTheme(!s.Theme(ctx, scope).Dark)
	s.drafts.Set(ctx, scope, domain.KeyTheme, next.Name())
	return next
}

// SetTheme selects a theme by name.
func (s *SettingsService) SetTheme(ctx context.Context, scope uuid.UUID, name string) (domain.Theme, error) {
	switch name {
	case domain.ThemeLight, domain.ThemeDark:
	default:
		return domain.Theme{}, fmt.Errorf("%w: theme must be %q or %q", domain.ErrValidation, domain.ThemeLight, domain.ThemeDark)
	}
	s.drafts.Set(ctx, scope, domain.KeyTheme, name)
	return domain.NewTheme(name == domain.ThemeDark), nil
}

// Profile returns the stored personal details. Missing fields are empty.
func (s *SettingsService) Profile(ctx context.Context, scope uuid.UUID) domain.Profile {
	get := func(key string) string {
		v, _ := s.drafts.Get(ctx, scope, key)
		return v
	}
	return domain.Profile{
		FirstName: get(domain.KeyFirstName),
		LastName:  get(domain.KeyLastName),
		Email:     get(domain.KeyEmail),
		Phone:     get(domain.KeyPhone),
		Address:   get(domain.KeyAddress),
		Birthdate: get(domain.KeyBirthdate),
	}
}

// UpdateProfile stores the personal details. An empty email keeps the one
// stored at login.
func (s *SettingsService) UpdateProfile(ctx context.Context, scope uuid.UUID, p domain.Profile) (domain.Profile, error) {
	if strings.TrimSpace(p.FirstName) == "" {
		return domain.Profile{}, fmt.Errorf("%w: firstname is required", domain.ErrValidation)
	}
	p.Email = strings.TrimSpace(p.Email)
	if p.Email != "" {
		if !domain.ValidEmail(p.Email) {
			return domain.Profile{}, fmt.Errorf("%w: invalid email", domain.ErrValidation)
		}
		s.drafts.Set(ctx, scope, domain.KeyEmail, p.Email)
	}
	fields := []struct{ key, value string }{
		{domain.KeyFirstName, p.FirstName},
		{domain.KeyLastName, p.LastName},
		{domain.KeyPhone, p.Phone},
		{domain.KeyAddress, p.Address},
		{domain.KeyBirthdate, p.Birthdate},
	}
	for _, f := range fields {
		s.drafts.Set(ctx, scope, f.key, strings.TrimSpace(f.value))
	}
	return s.Profile(ctx, scope), nil
}
