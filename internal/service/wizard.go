package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-builder/internal/domain"
	"github.com/pkordes/trip-builder/internal/filter"
)

// WizardView is the state of the three-step trip builder for one scope.
type WizardView struct {
	Step          domain.Step         `json:"step"`
	Constraint    domain.Constraint   `json:"constraint"`
	Selection     domain.SelectionSet `json:"selection"`
	Missing       []string            `json:"missing"`
	CanAdvance    bool                `json:"canAdvance"`
	SubmitEnabled bool                `json:"submitEnabled"`
}

// BrowseResult is what the place-selection step shows.
type BrowseResult struct {
	Places    []domain.Place      `json:"places"`
	Types     []string            `json:"types"`
	Selection domain.SelectionSet `json:"selection"`
}

// Review is the summary shown before submitting.
type Review struct {
	Constraint domain.Constraint   `json:"constraint"`
	Selection  domain.SelectionSet `json:"selection"`
	Itinerary  domain.Itinerary    `json:"itinerary"`
	Total      float64             `json:"total"`
}

// WizardService drives the Create → Next → Final flow.
// Mutations on one scope are serialized; the step is persisted alongside the
// drafts so a restarted process resumes where the user left off.
type WizardService struct {
	drafts    *DraftStore
	catalog   CatalogAPI
	selection *SelectionService
	itinerary *ItineraryService
	auth      TokenSource
	log       *slog.Logger
	locks     scopeLocks
}

// NewWizardService constructs a WizardService.
func NewWizardService(
	drafts *DraftStore,
	catalog CatalogAPI,
	selection *SelectionService,
	itinerary *ItineraryService,
	auth TokenSource,
	log *slog.Logger,
) *WizardService {
	return &WizardService{
		drafts:    drafts,
		catalog:   catalog,
		selection: selection,
		itinerary: itinerary,
		auth:      auth,
		log:       log,
	}
}

// Enter starts a fresh session: any previous form and selection are discarded
// and the wizard is placed on the Create step.
func (s *WizardService) Enter(ctx context.Context, scope uuid.UUID) WizardView {
	unlock := s.locks.lock(scope)
	defer unlock()

	s.drafts.ClearDraft(ctx, scope)
	s.drafts.SaveStep(ctx, scope, domain.StepCreate)
	return s.view(ctx, scope)
}

// View returns the current state without changing it.
func (s *WizardService) View(ctx context.Context, scope uuid.UUID) WizardView {
	return s.view(ctx, scope)
}

func (s *WizardService) view(ctx context.Context, scope uuid.UUID) WizardView {
	step := s.drafts.Step(ctx, scope)
	c := s.drafts.Constraint(ctx, scope)
	missing := c.Missing()
	if missing == nil {
		missing = []string{}
	}
	v := WizardView{
		Step:          step,
		Constraint:    c,
		Selection:     s.drafts.Selection(ctx, scope),
		Missing:       missing,
		SubmitEnabled: len(missing) == 0,
	}
	switch step {
	case domain.StepCreate:
		v.CanAdvance = len(missing) == 0
	case domain.StepNext:
		v.CanAdvance = true
	}
	return v
}

// UpdateConstraint replaces the trip form. Allowed only on the Create step.
func (s *WizardService) UpdateConstraint(ctx context.Context, scope uuid.UUID, c domain.Constraint) (WizardView, error) {
	unlock := s.locks.lock(scope)
	defer unlock()

	if err := s.drafts.Step(ctx, scope).Require(domain.StepCreate); err != nil {
		return WizardView{}, err
	}
	c.Amount = strings.TrimSpace(c.Amount)
	if err := c.Validate(); err != nil {
		return WizardView{}, err
	}
	s.drafts.SaveConstraint(ctx, scope, c)
	return s.view(ctx, scope), nil
}

// AdjustPeople applies a stepper change to the person count on the Create
// step. Changes that would leave 1..10 are ignored.
func (s *WizardService) AdjustPeople(ctx context.Context, scope uuid.UUID, delta int) (WizardView, error) {
	unlock := s.locks.lock(scope)
	defer unlock()

	if err := s.drafts.Step(ctx, scope).Require(domain.StepCreate); err != nil {
		return WizardView{}, err
	}
	c := s.drafts.Constraint(ctx, scope)
	if next := c.AdjustPeople(delta); next != c {
		s.drafts.SaveConstraint(ctx, scope, next)
	}
	return s.view(ctx, scope), nil
}

// Advance moves to the next step. Leaving Create requires a complete form.
func (s *WizardService) Advance(ctx context.Context, scope uuid.UUID) (WizardView, error) {
	unlock := s.locks.lock(scope)
	defer unlock()

	step := s.drafts.Step(ctx, scope)
	if step == domain.StepCreate {
		c := s.drafts.Constraint(ctx, scope)
		if missing := c.Missing(); len(missing) > 0 {
			return WizardView{}, fmt.Errorf("%w: missing %s", domain.ErrValidation, strings.Join(missing, ", "))
		}
		if err := c.Validate(); err != nil {
			return WizardView{}, err
		}
	}
	return s.move(ctx, scope, step, domain.EventAdvance)
}

// Back returns to the previous step. Nothing entered so far is discarded.
func (s *WizardService) Back(ctx context.Context, scope uuid.UUID) (WizardView, error) {
	unlock := s.locks.lock(scope)
	defer unlock()
	return s.move(ctx, scope, s.drafts.Step(ctx, scope), domain.EventBack)
}

func (s *WizardService) move(ctx context.Context, scope uuid.UUID, from domain.Step, e domain.Event) (WizardView, error) {
	to, err := from.Transition(e)
	if err != nil {
		return WizardView{}, err
	}
	s.drafts.SaveStep(ctx, scope, to)
	return s.view(ctx, scope), nil
}

// Browse lists the candidate places for the stored form on the Next step.
func (s *WizardService) Browse(ctx context.Context, scope uuid.UUID, typeFacet, search string) (BrowseResult, error) {
	if err := s.drafts.Step(ctx, scope).Require(domain.StepNext); err != nil {
		return BrowseResult{}, err
	}
	catalog, err := s.catalog.ListPlaces(ctx)
	if err != nil {
		return BrowseResult{}, fmt.Errorf("service.WizardService.Browse: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return BrowseResult{}, err
	}

	c := s.drafts.Constraint(ctx, scope)
	return BrowseResult{
		Places:    filter.Places(catalog, c, typeFacet, search),
		Types:     filter.AvailableTypes(filter.Places(catalog, c, filter.AllTypes, "")),
		Selection: s.drafts.Selection(ctx, scope),
	}, nil
}

// Toggle adds or removes a catalog place from the selection on the Next step.
func (s *WizardService) Toggle(ctx context.Context, scope uuid.UUID, placeID string) (domain.SelectionSet, error) {
	unlock := s.locks.lock(scope)
	defer unlock()

	if err := s.drafts.Step(ctx, scope).Require(domain.StepNext); err != nil {
		return nil, err
	}
	catalog, err := s.catalog.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.WizardService.Toggle: %w", err)
	}
	place, ok := filter.Lookup(catalog, placeID)
	if !ok {
		return nil, fmt.Errorf("%w: place %q", domain.ErrNotFound, placeID)
	}
	return s.selection.Toggle(ctx, scope, place)
}

// Review summarizes the itinerary on the Final step.
func (s *WizardService) Review(ctx context.Context, scope uuid.UUID) (Review, error) {
	if err := s.drafts.Step(ctx, scope).Require(domain.StepFinal); err != nil {
		return Review{}, err
	}
	sel := s.drafts.Selection(ctx, scope)
	return Review{
		Constraint: s.drafts.Constraint(ctx, scope),
		Selection:  sel,
		Itinerary:  s.itinerary.Preview(ctx, scope),
		Total:      sel.Total(),
	}, nil
}

// Submit sends the itinerary on the Final step. On success the drafts are
// gone and the wizard is back on Create; on failure everything is kept.
func (s *WizardService) Submit(ctx context.Context, scope uuid.UUID) (domain.Itinerary, error) {
	unlock := s.locks.lock(scope)
	defer unlock()

	if err := s.drafts.Step(ctx, scope).Require(domain.StepFinal); err != nil {
		return domain.Itinerary{}, err
	}
	tok, err := s.auth.Token(ctx, scope)
	if err != nil && !errors.Is(err, domain.ErrUnauthorized) {
		return domain.Itinerary{}, err
	}
	it, err := s.itinerary.Submit(ctx, scope, tok)
	if err != nil {
		return domain.Itinerary{}, err
	}
	s.drafts.SaveStep(ctx, scope, domain.StepCreate)
	return it, nil
}
