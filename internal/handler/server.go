// Package handler implements the HTTP API of the trip builder.
// All handlers are methods on Server. They are split into domain-specific
// files (wizard.go, trip.go, ...) but share the same Server struct so they can
// reach its dependencies. Routes mirror spec/openapi.yaml.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-builder/internal/domain"
	"github.com/pkordes/trip-builder/internal/middleware"
	"github.com/pkordes/trip-builder/internal/service"
)

// CatalogServicer serves the public catalogs.
type CatalogServicer interface {
	Places(ctx context.Context, search string) ([]domain.Place, error)
	Programs(ctx context.Context) ([]domain.ReadyProgram, error)
	Home(ctx context.Context) (domain.Home, error)
}

// AuthServicer manages a device's session.
type AuthServicer interface {
	Login(ctx context.Context, scope uuid.UUID, creds domain.Credentials) (domain.User, error)
	Register(ctx context.Context, r domain.Registration) error
	Logout(ctx context.Context, scope uuid.UUID)
	CurrentUser(ctx context.Context, scope uuid.UUID) (domain.User, error)
}

// WizardServicer drives the trip builder.
type WizardServicer interface {
	Enter(ctx context.Context, scope uuid.UUID) service.WizardView
	View(ctx context.Context, scope uuid.UUID) service.WizardView
	UpdateConstraint(ctx context.Context, scope uuid.UUID, c domain.Constraint) (service.WizardView, error)
	AdjustPeople(ctx context.Context, scope uuid.UUID, delta int) (service.WizardView, error)
	Advance(ctx context.Context, scope uuid.UUID) (service.WizardView, error)
	Back(ctx context.Context, scope uuid.UUID) (service.WizardView, error)
	Browse(ctx context.Context, scope uuid.UUID, typeFacet, search string) (service.BrowseResult, error)
	Toggle(ctx context.Context, scope uuid.UUID, placeID string) (domain.SelectionSet, error)
	Review(ctx context.Context, scope uuid.UUID) (service.Review, error)
	Submit(ctx context.Context, scope uuid.UUID) (domain.Itinerary, error)
}

// TripServicer lists and deletes submitted trips.
type TripServicer interface {
	List(ctx context.Context, scope uuid.UUID, status domain.TripStatus) ([]domain.Trip, error)
	Delete(ctx context.Context, scope uuid.UUID, id string) error
}

// SettingsServicer manages theme and profile.
type SettingsServicer interface {
	Theme(ctx context.Context, scope uuid.UUID) domain.Theme
	ToggleTheme(ctx context.Context, scope uuid.UUID) domain.Theme
	SetTheme(ctx context.Context, scope uuid.UUID, name string) (domain.Theme, error)
	Profile(ctx context.Context, scope uuid.UUID) domain.Profile
	UpdateProfile(ctx context.Context, scope uuid.UUID, p domain.Profile) (domain.Profile, error)
}

// ExportServicer flattens trips for export.
type ExportServicer interface {
	Export(ctx context.Context, scope uuid.UUID, status domain.TripStatus) ([]domain.ExportRow, error)
}

// Services groups the dependencies of Server. Nil members are allowed in
// tests that only exercise other routes.
type Services struct {
	Catalog  CatalogServicer
	Auth     AuthServicer
	Wizard   WizardServicer
	Trips    TripServicer
	Settings SettingsServicer
	Export   ExportServicer
}

// Server holds the handler dependencies.
type Server struct {
	svc Services
	log *slog.Logger
}

// NewServer constructs the Server.
func NewServer(svc Services, log *slog.Logger) *Server {
	return &Server{svc: svc, log: log}
}

// Routes returns the API router. Routes that read or write per-device state
// sit behind middleware.RequireDevice.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/places", s.ListPlaces)
	r.Get("/programs", s.ListPrograms)
	r.Get("/home", s.GetHome)
	r.Post("/auth/register", s.Register)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireDevice)

		r.Post("/auth/login", s.Login)
		r.Post("/auth/logout", s.Logout)
		r.Get("/auth/me", s.GetMe)

		r.Route("/wizard", func(r chi.Router) {
			r.Get("/", s.GetWizard)
			r.Post("/enter", s.EnterWizard)
			r.Put("/constraint", s.UpdateConstraint)
			r.Post("/people", s.AdjustPeople)
			r.Post("/advance", s.AdvanceWizard)
			r.Post("/back", s.BackWizard)
			r.Get("/places", s.BrowsePlaces)
			r.Post("/selection/{placeID}", s.TogglePlace)
			r.Get("/review", s.ReviewWizard)
			r.Post("/submit", s.SubmitWizard)
		})

		r.Get("/trips", s.ListTrips)
		r.Get("/trips/export", s.GetExport)
		r.Delete("/trips/{id}", s.DeleteTrip)

		r.Get("/settings/theme", s.GetTheme)
		r.Post("/settings/theme", s.SetTheme)
		r.Get("/settings/profile", s.GetProfile)
		r.Put("/settings/profile", s.UpdateProfile)
	})

	return r
}

// scope returns the device scope placed in the context by RequireDevice.
// Handlers registered outside that group must not call it.
func scope(r *http.Request) uuid.UUID {
	s, _ := middleware.ScopeFrom(r.Context())
	return s
}
