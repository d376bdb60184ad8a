// Package service contains the business logic of the trip builder.
// Services validate inputs, enforce the wizard's rules, and orchestrate the
// draft store and the remote backend. No SQL and no HTTP handling lives here;
// services depend on repo.DraftRepo and on the small backend interfaces below.
package service

import (
	"context"

	"github.com/pkordes/trip-builder/internal/domain"
)

// CatalogAPI is the read-only part of the remote backend.
// Returned slices may be shared and must not be modified.
type CatalogAPI interface {
	ListPlaces(ctx context.Context) ([]domain.Place, error)
	ListReadyPrograms(ctx context.Context) ([]domain.ReadyProgram, error)
	ListHomeCategories(ctx context.Context) ([]domain.Category, error)
}

// ProgramAPI manages the user's submitted trips on the remote backend.
type ProgramAPI interface {
	CreateProgram(ctx context.Context, token string, it domain.Itinerary) error
	ListPrograms(ctx context.Context, token string) ([]domain.Trip, error)
	DeleteProgram(ctx context.Context, token, id string) error
}

// AuthAPI is the account part of the remote backend.
type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.Session, error)
	Register(ctx context.Context, r domain.Registration) error
}
