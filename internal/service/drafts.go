package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/trip-builder/internal/domain"
	"github.com/pkordes/trip-builder/internal/repo"
)

// DraftStore is the resilient face of repo.DraftRepo.
// A failed read or write is logged and treated as "value absent" or a no-op:
// losing a draft is recoverable, so storage errors never reach the caller.
// Set and Remove report success so callers that must not show an unpersisted
// state (the selection manager) can fall back to what is durable.
// LoadSelection is the one strict read, for read-modify-write callers.
type DraftStore struct {
	repo repo.DraftRepo
	log  *slog.Logger
}

// NewDraftStore constructs a DraftStore over r, logging failures to log.
func NewDraftStore(r repo.DraftRepo, log *slog.Logger) *DraftStore {
	return &DraftStore{repo: r, log: log}
}

// Get returns the value under key and whether it was found.
func (s *DraftStore) Get(ctx context.Context, scope uuid.UUID, key string) (string, bool) {
	v, err := s.repo.Get(ctx, scope, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "draft read failed", "scope", scope, "key", key, "error", err)
		}
		return "", false
	}
	return v, true
}

// Set stores value under key. It returns false if the write failed.
func (s *DraftStore) Set(ctx context.Context, scope uuid.UUID, key, value string) bool {
	if err := s.repo.Set(ctx, scope, key, value); err != nil {
		s.log.WarnContext(ctx, "draft write failed", "scope", scope, "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes keys. It returns false if the delete failed.
func (s *DraftStore) Remove(ctx context.Context, scope uuid.UUID, keys ...string) bool {
	if err := s.repo.Delete(ctx, scope, keys...); err != nil {
		s.log.WarnContext(ctx, "draft delete failed", "scope", scope, "keys", keys, "error", err)
		return false
	}
	return true
}

// getJSON decodes the value under key into out. A corrupt value is logged
// and reported as absent.
func (s *DraftStore) getJSON(ctx context.Context, scope uuid.UUID, key string, out any) bool {
	raw, ok := s.Get(ctx, scope, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.WarnContext(ctx, "draft decode failed", "scope", scope, "key", key, "error", err)
		return false
	}
	return true
}

func (s *DraftStore) setJSON(ctx context.Context, scope uuid.UUID, key string, v any) bool {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.WarnContext(ctx, "draft encode failed", "scope", scope, "key", key, "error", err)
		return false
	}
	return s.Set(ctx, scope, key, string(b))
}

// Constraint returns the stored trip form, or the empty constraint.
func (s *DraftStore) Constraint(ctx context.Context, scope uuid.UUID) domain.Constraint {
	var c domain.Constraint
	if !s.getJSON(ctx, scope, domain.KeyProgramData, &c) {
		return domain.Constraint{}
	}
	return c
}

// SaveConstraint persists the trip form under programData.
func (s *DraftStore) SaveConstraint(ctx context.Context, scope uuid.UUID, c domain.Constraint) bool {
	return s.setJSON(ctx, scope, domain.KeyProgramData, c)
}

// Selection returns the stored selection, or an empty (non-nil) set.
func (s *DraftStore) Selection(ctx context.Context, scope uuid.UUID) domain.SelectionSet {
	sel, err := s.LoadSelection(ctx, scope)
	if err != nil {
		s.log.WarnContext(ctx, "draft read failed", "scope", scope, "key", domain.KeySavedPlaces, "error", err)
		return domain.SelectionSet{}
	}
	return sel
}

// LoadSelection returns the stored selection, empty when none is stored.
// A failed read or an undecodable value is returned as an error, not as
// the empty set.
func (s *DraftStore) LoadSelection(ctx context.Context, scope uuid.UUID) (domain.SelectionSet, error) {
	raw, err := s.repo.Get(ctx, scope, domain.KeySavedPlaces)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.SelectionSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("service.DraftStore.LoadSelection: %w", err)
	}
	var sel domain.SelectionSet
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		return nil, fmt.Errorf("service.DraftStore.LoadSelection: %w", err)
	}
	if sel == nil {
		sel = domain.SelectionSet{}
	}
	return sel, nil
}

// SaveSelection overwrites the whole persisted selection.
func (s *DraftStore) SaveSelection(ctx context.Context, scope uuid.UUID, sel domain.SelectionSet) bool {
	if sel == nil {
		sel = domain.SelectionSet{}
	}
	return s.setJSON(ctx, scope, domain.KeySavedPlaces, sel)
}

// Step returns the persisted wizard step, StepCreate when absent.
func (s *DraftStore) Step(ctx context.Context, scope uuid.UUID) domain.Step {
	v, _ := s.Get(ctx, scope, domain.KeyWizardStep)
	return domain.ParseStep(v)
}

// SaveStep persists the wizard step.
func (s *DraftStore) SaveStep(ctx context.Context, scope uuid.UUID, step domain.Step) bool {
	return s.Set(ctx, scope, domain.KeyWizardStep, string(step))
}

// ClearDraft removes the constraint and the selection together.
func (s *DraftStore) ClearDraft(ctx context.Context, scope uuid.UUID) bool {
	return s.Remove(ctx, scope, domain.KeyProgramData, domain.KeySavedPlaces)
}
