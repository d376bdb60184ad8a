package service_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/trip-builder/internal/domain"
	"github.com/pkordes/trip-builder/internal/repo"
	"github.com/pkordes/trip-builder/internal/service"
)

// memDraftRepo is an in-memory repo.DraftRepo.
// Set the fail* fields to inject storage errors for a given key.
type memDraftRepo struct {
	mu   sync.Mutex
	data map[uuid.UUID]map[string]string

	failGet    func(key string) error
	failSet    func(key string) error
	failDelete func(keys []string) error
}

func newMemDraftRepo() *memDraftRepo {
	return &memDraftRepo{data: make(map[uuid.UUID]map[string]string)}
}

func (m *memDraftRepo) Get(_ context.Context, scope uuid.UUID, key string) (string, error) {
	if m.failGet != nil {
		if err := m.failGet(key); err != nil {
			return "", err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[scope][key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (m *memDraftRepo) Set(_ context.Context, scope uuid.UUID, key, value string) error {
	if m.failSet != nil {
		if err := m.failSet(key); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[scope] == nil {
		m.data[scope] = make(map[string]string)
	}
	m.data[scope][key] = value
	return nil
}

func (m *memDraftRepo) Delete(_ context.Context, scope uuid.UUID, keys ...string) error {
	if m.failDelete != nil {
		if err := m.failDelete(keys); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data[scope], k)
	}
	return nil
}

// has reports whether key is stored for scope, bypassing any injected faults.
func (m *memDraftRepo) has(scope uuid.UUID, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[scope][key]
	return ok
}

func (m *memDraftRepo) raw(scope uuid.UUID, key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[scope][key]
}

var _ repo.DraftRepo = (*memDraftRepo)(nil)

// mockCatalogAPI is a function-field test double for service.CatalogAPI.
type mockCatalogAPI struct {
	listPlaces        func(ctx context.Context) ([]domain.Place, error)
	listReadyPrograms func(ctx context.Context) ([]domain.ReadyProgram, error)
	listCategories    func(ctx context.Context) ([]domain.Category, error)
}

func (m *mockCatalogAPI) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	return m.listPlaces(ctx)
}
func (m *mockCatalogAPI) ListReadyPrograms(ctx context.Context) ([]domain.ReadyProgram, error) {
	return m.listReadyPrograms(ctx)
}
func (m *mockCatalogAPI) ListHomeCategories(ctx context.Context) ([]domain.Category, error) {
	return m.listCategories(ctx)
}

var _ service.CatalogAPI = (*mockCatalogAPI)(nil)

// mockProgramAPI is a function-field test double for service.ProgramAPI.
type mockProgramAPI struct {
	createProgram func(ctx context.Context, token string, it domain.Itinerary) error
	listPrograms  func(ctx context.Context, token string) ([]domain.Trip, error)
	deleteProgram func(ctx context.Context, token, id string) error
}

func (m *mockProgramAPI) CreateProgram(ctx context.Context, token string, it domain.Itinerary) error {
	return m.createProgram(ctx, token, it)
}
func (m *mockProgramAPI) ListPrograms(ctx context.Context, token string) ([]domain.Trip, error) {
	return m.listPrograms(ctx, token)
}
func (m *mockProgramAPI) DeleteProgram(ctx context.Context, token, id string) error {
	return m.deleteProgram(ctx, token, id)
}

var _ service.ProgramAPI = (*mockProgramAPI)(nil)

// mockAuthAPI is a function-field test double for service.AuthAPI.
type mockAuthAPI struct {
	login    func(ctx context.Context, creds domain.Credentials) (domain.Session, error)
	register func(ctx context.Context, r domain.Registration) error
}

func (m *mockAuthAPI) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	return m.login(ctx, creds)
}
func (m *mockAuthAPI) Register(ctx context.Context, r domain.Registration) error {
	return m.register(ctx, r)
}

var _ service.AuthAPI = (*mockAuthAPI)(nil)

// staticToken is a service.TokenSource that always returns the same answer.
type staticToken struct {
	token string
	err   error
}

func (s staticToken) Token(context.Context, uuid.UUID) (string, error) {
	return s.token, s.err
}

// ---- helpers ---------------------------------------------------------------

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// bufferLogger returns a logger writing JSON lines into the returned buffer.
func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func newDrafts() (*service.DraftStore, *memDraftRepo) {
	r := newMemDraftRepo()
	return service.NewDraftStore(r, discardLogger()), r
}

func completeConstraint() domain.Constraint {
	return domain.Constraint{
		People:      2,
		Amount:      "1500",
		Destination: "أسوان",
		Category:    domain.Categories[0],
	}
}

func testPlaces() []domain.Place {
	return []domain.Place{
		{ID: "p1", Name: "معبد فيلة", City: "أسوان", Type: "معالم", Categories: []string{domain.Categories[0]}, Price: 200, Image: "p1.jpg"},
		{ID: "p2", Name: "فندق النيل", City: "أسوان", Type: "فنادق", Categories: []string{domain.Categories[0]}, Price: 900, Image: "p2.jpg"},
		{ID: "p3", Name: "قلعة قايتباي", City: "الإسكندرية", Type: "معالم", Categories: []string{domain.Categories[0]}, Price: 60, Image: "p3.jpg"},
	}
}

func catalogOf(places []domain.Place) *mockCatalogAPI {
	return &mockCatalogAPI{
		listPlaces: func(context.Context) ([]domain.Place, error) { return places, nil },
	}
}
