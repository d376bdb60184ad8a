package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/trip-builder/internal/client"
	"github.com/pkordes/trip-builder/internal/domain"
)

// SubmissionError reports a failed itinerary submission.
// Message is safe to show to the user; Err carries the cause.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Err == nil {
		return "submit itinerary: " + e.Message
	}
	return fmt.Sprintf("submit itinerary: %s: %v", e.Message, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

const submitFallbackMessage = "failed to save the program"

// ItineraryService combines the persisted trip form and selection into an
// itinerary and submits it to the remote backend.
type ItineraryService struct {
	drafts *DraftStore
	api    ProgramAPI
	log    *slog.Logger
}

// NewItineraryService constructs an ItineraryService.
func NewItineraryService(drafts *DraftStore, api ProgramAPI, log *slog.Logger) *ItineraryService {
	return &ItineraryService{drafts: drafts, api: api, log: log}
}

// Preview builds the itinerary that Submit would send, without sending it.
func (s *ItineraryService) Preview(ctx context.Context, scope uuid.UUID) domain.Itinerary {
	return domain.NewItinerary(s.drafts.Constraint(ctx, scope), s.drafts.Selection(ctx, scope))
}

// Submit sends the scope's itinerary using token for authorization.
//
// The constraint must be complete; an empty selection is accepted. The drafts
// are cleared only once the backend has accepted the program, so a failed
// submission can be retried without re-entering anything.
func (s *ItineraryService) Submit(ctx context.Context, scope uuid.UUID, token string) (domain.Itinerary, error) {
	if token == "" {
		return domain.Itinerary{}, &SubmissionError{Message: "login required", Err: domain.ErrUnauthorized}
	}

	c := s.drafts.Constraint(ctx, scope)
	if missing := c.Missing(); len(missing) > 0 {
		return domain.Itinerary{}, &SubmissionError{
			Message: fmt.Sprintf("trip details are incomplete: %v", missing),
			Err:     domain.ErrValidation,
		}
	}
	if err := c.Validate(); err != nil {
		return domain.Itinerary{}, &SubmissionError{Message: "trip details are invalid", Err: err}
	}

	it := domain.NewItinerary(c, s.drafts.Selection(ctx, scope))
	if err := s.api.CreateProgram(ctx, token, it); err != nil {
		s.log.WarnContext(ctx, "program submission failed", "scope", scope, "error", err)
		return domain.Itinerary{}, &SubmissionError{Message: submitMessage(err), Err: err}
	}

	s.drafts.ClearDraft(ctx, scope)
	s.log.InfoContext(ctx, "program submitted",
		"scope", scope,
		"destination", it.Locate,
		"places", len(it.Images),
	)
	return it, nil
}

func submitMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "the server took too long to respond"
	}
	return submitFallbackMessage
}
