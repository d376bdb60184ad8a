package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-builder/internal/domain"
)

// SelectionService manages the set of places the user has picked.
// Every mutation overwrites the full persisted set before returning.
type SelectionService struct {
	drafts *DraftStore
	locks  scopeLocks
}

// NewSelectionService constructs a SelectionService over drafts.
func NewSelectionService(drafts *DraftStore) *SelectionService {
	return &SelectionService{drafts: drafts}
}

// Toggle removes place from the scope's selection if present, otherwise
// appends it, and persists the result. Toggles on one scope are serialized so
// the read and the write cannot interleave with another toggle.
//
// If the stored set cannot be read or decoded, Toggle fails without writing so
// the stored set is left as it was. If the write fails the previously
// persisted set is returned unchanged: the caller never sees a selection that
// is not durable.
func (s *SelectionService) Toggle(ctx context.Context, scope uuid.UUID, place domain.Place) (domain.SelectionSet, error) {
	if strings.TrimSpace(place.ID) == "" {
		return nil, fmt.Errorf("%w: place id is required", domain.ErrValidation)
	}

	unlock := s.locks.lock(scope)
	defer unlock()

	current, err := s.drafts.LoadSelection(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("service.SelectionService.Toggle: %w", err)
	}
	next := current.Toggle(place)
	if !s.drafts.SaveSelection(ctx, scope, next) {
		return current, nil
	}
	return next, nil
}

// Current returns the persisted selection, empty when none.
func (s *SelectionService) Current(ctx context.Context, scope uuid.UUID) domain.SelectionSet {
	return s.drafts.Selection(ctx, scope)
}

// Clear removes the persisted selection.
func (s *SelectionService) Clear(ctx context.Context, scope uuid.UUID) {
	unlock := s.locks.lock(scope)
	defer unlock()
	s.drafts.Remove(ctx, scope, domain.KeySavedPlaces)
}
