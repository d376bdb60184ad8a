// Package app builds the object graph shared by the API server and the
// tripctl command: draft storage, the remote client and every service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	bolt "go.etcd.io/bbolt"

	"github.com/pkordes/trip-builder/internal/client"
	"github.com/pkordes/trip-builder/internal/config"
	"github.com/pkordes/trip-builder/internal/handler"
	"github.com/pkordes/trip-builder/internal/repo"
	"github.com/pkordes/trip-builder/internal/service"
	"github.com/pkordes/trip-builder/migrations"
)

// Services holds one instance of each service.
type Services struct {
	Drafts    *service.DraftStore
	Catalog   *service.CatalogService
	Auth      *service.AuthService
	Selection *service.SelectionService
	Itinerary *service.ItineraryService
	Wizard    *service.WizardService
	Trips     *service.TripService
	Settings  *service.SettingsService
	Export    *service.ExportService
}

// Remote is everything the services need from the trip backend.
// *client.Client implements it.
type Remote interface {
	service.CatalogAPI
	service.ProgramAPI
	service.AuthAPI
}

var _ Remote = (*client.Client)(nil)

// NewServices wires the services over a draft backend and a remote API.
func NewServices(drafts repo.DraftRepo, api Remote, defaultTheme string, log *slog.Logger) *Services {
	store := service.NewDraftStore(drafts, log)
	auth := service.NewAuthService(api, store, log)
	selection := service.NewSelectionService(store)
	itinerary := service.NewItineraryService(store, api, log)
	trips := service.NewTripService(api, auth)

	return &Services{
		Drafts:    store,
		Catalog:   service.NewCatalogService(api),
		Auth:      auth,
		Selection: selection,
		Itinerary: itinerary,
		Wizard:    service.NewWizardService(store, api, selection, itinerary, auth, log),
		Trips:     trips,
		Settings:  service.NewSettingsService(store, defaultTheme),
		Export:    service.NewExportService(trips),
	}
}

// Handler exposes the services to the HTTP layer.
func (s *Services) Handler() handler.Services {
	return handler.Services{
		Catalog:  s.Catalog,
		Auth:     s.Auth,
		Wizard:   s.Wizard,
		Trips:    s.Trips,
		Settings: s.Settings,
		Export:   s.Export,
	}
}

// OpenDrafts opens the draft backend selected by cfg. The returned close
// function releases it and must be called once the caller is done.
func OpenDrafts(ctx context.Context, cfg config.Config, log *slog.Logger) (repo.DraftRepo, func(), error) {
	switch cfg.DraftBackend {
	case config.BackendPostgres:
		return openPostgres(ctx, cfg.DatabaseURL, log)
	default:
		return OpenBolt(cfg.DraftPath)
	}
}

// OpenBolt opens (or creates) a bbolt draft file, creating parent directories.
func OpenBolt(path string) (repo.DraftRepo, func(), error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, nil, fmt.Errorf("app.OpenBolt: %w", err)
		}
	}
	// A second process holding the file lock makes Open fail after the timeout
	// instead of blocking forever.
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, nil, fmt.Errorf("app.OpenBolt: %w", err)
	}
	return repo.NewBoltDraftRepo(db), func() { _ = db.Close() }, nil
}

func openPostgres(ctx context.Context, dsn string, log *slog.Logger) (repo.DraftRepo, func(), error) {
	// New does not connect; the Ping below does.
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("app.openPostgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("app.openPostgres: ping: %w", err)
	}

	if err := Migrate(ctx, pool, log); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return repo.NewDraftRepo(pool), pool.Close, nil
}

// Migrate applies every pending migration through goose.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("app.Migrate: create provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("app.Migrate: %w", err)
	}
	for _, r := range results {
		log.Info("migration applied", "version", r.Source.Version, "duration_ms", r.Duration.Milliseconds())
	}
	return nil
}
