package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-builder/internal/domain"
)

// TokenSource resolves a scope's bearer token.
type TokenSource interface {
	Token(ctx context.Context, scope uuid.UUID) (string, error)
}

// TripService lists and cancels the trips a user has submitted.
type TripService struct {
	api  ProgramAPI
	auth TokenSource
}

// NewTripService constructs a TripService.
func NewTripService(api ProgramAPI, auth TokenSource) *TripService {
	return &TripService{api: api, auth: auth}
}

// List returns the user's trips matching status, in backend order.
// Every returned trip has its status set. The result is never nil.
func (s *TripService) List(ctx context.Context, scope uuid.UUID, status domain.TripStatus) ([]domain.Trip, error) {
	tok, err := s.auth.Token(ctx, scope)
	if err != nil {
		return nil, err
	}
	all, err := s.api.ListPrograms(ctx, tok)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	out := make([]domain.Trip, 0, len(all))
	for _, t := range all {
		if t.Matches(status) {
			t.Status = t.CurrentStatus()
			out = append(out, t)
		}
	}
	return out, nil
}

// Delete removes a submitted trip.
func (s *TripService) Delete(ctx context.Context, scope uuid.UUID, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: trip id is required", domain.ErrValidation)
	}
	tok, err := s.auth.Token(ctx, scope)
	if err != nil {
		return err
	}
	if err := s.api.DeleteProgram(ctx, tok, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}
