package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-builder/internal/domain"
	"github.com/pkordes/trip-builder/internal/handler"
	"github.com/pkordes/trip-builder/internal/middleware"
	"github.com/pkordes/trip-builder/internal/service"
)

// mockWizard is a test double for handler.WizardServicer.
// Set only the method fields your test needs.
type mockWizard struct {
	enter            func(ctx context.Context, scope uuid.UUID) service.WizardView
	view             func(ctx context.Context, scope uuid.UUID) service.WizardView
	updateConstraint func(ctx context.Context, scope uuid.UUID, c domain.Constraint) (service.WizardView, error)
	adjustPeople     func(ctx context.Context, scope uuid.UUID, delta int) (service.WizardView, error)
	advance          func(ctx context.Context, scope uuid.UUID) (service.WizardView, error)
	back             func(ctx context.Context, scope uuid.UUID) (service.WizardView, error)
	browse           func(ctx context.Context, scope uuid.UUID, typeFacet, search string) (service.BrowseResult, error)
	toggle           func(ctx context.Context, scope uuid.UUID, placeID string) (domain.SelectionSet, error)
	review           func(ctx context.Context, scope uuid.UUID) (service.Review, error)
	submit           func(ctx context.Context, scope uuid.UUID) (domain.Itinerary, error)
}

func (m *mockWizard) Enter(ctx context.Context, s uuid.UUID) service.WizardView { return m.enter(ctx, s) }
func (m *mockWizard) View(ctx context.Context, s uuid.UUID) service.WizardView  { return m.view(ctx, s) }
func (m *mockWizard) UpdateConstraint(ctx context.Context, s uuid.UUID, c domain.Constraint) (service.WizardView, error) {
	return m.updateConstraint(ctx, s, c)
}
func (m *mockWizard) AdjustPeople(ctx context.Context, s uuid.UUID, d int) (service.WizardView, error) {
	return m.adjustPeople(ctx, s, d)
}
func (m *mockWizard) Advance(ctx context.Context, s uuid.UUID) (service.WizardView, error) {
	return m.advance(ctx, s)
}
func (m *mockWizard) Back(ctx context.Context, s uuid.UUID) (service.WizardView, error) {
	return m.back(ctx, s)
}
func (m *mockWizard) Browse(ctx context.Context, s uuid.UUID, typeFacet, search string) (service.BrowseResult, error) {
	return m.browse(ctx, s, typeFacet, search)
}
func (m *mockWizard) Toggle(ctx context.Context, s uuid.UUID, id string) (domain.SelectionSet, error) {
	return m.toggle(ctx, s, id)
}
func (m *mockWizard) Review(ctx context.Context, s uuid.UUID) (service.Review, error) {
	return m.review(ctx, s)
}
func (m *mockWizard) Submit(ctx context.Context, s uuid.UUID) (domain.Itinerary, error) {
	return m.submit(ctx, s)
}

var _ handler.WizardServicer = (*mockWizard)(nil)

type mockTrips struct {
	list   func(ctx context.Context, scope uuid.UUID, status domain.TripStatus) ([]domain.Trip, error)
	delete func(ctx context.Context, scope uuid.UUID, id string) error
}

func (m *mockTrips) List(ctx context.Context, s uuid.UUID, st domain.TripStatus) ([]domain.Trip, error) {
	return m.list(ctx, s, st)
}
func (m *mockTrips) Delete(ctx context.Context, s uuid.UUID, id string) error {
	return m.delete(ctx, s, id)
}

var _ handler.TripServicer = (*mockTrips)(nil)

type mockAuth struct {
	login       func(ctx context.Context, scope uuid.UUID, c domain.Credentials) (domain.User, error)
	register    func(ctx context.Context, r domain.Registration) error
	logout      func(ctx context.Context, scope uuid.UUID)
	currentUser func(ctx context.Context, scope uuid.UUID) (domain.User, error)
}

func (m *mockAuth) Login(ctx context.Context, s uuid.UUID, c domain.Credentials) (domain.User, error) {
	return m.login(ctx, s, c)
}
func (m *mockAuth) Register(ctx context.Context, r domain.Registration) error {
	return m.register(ctx, r)
}
func (m *mockAuth) Logout(ctx context.Context, s uuid.UUID) { m.logout(ctx, s) }
func (m *mockAuth) CurrentUser(ctx context.Context, s uuid.UUID) (domain.User, error) {
	return m.currentUser(ctx, s)
}

var _ handler.AuthServicer = (*mockAuth)(nil)

type mockCatalog struct {
	places   func(ctx context.Context, search string) ([]domain.Place, error)
	programs func(ctx context.Context) ([]domain.ReadyProgram, error)
	home     func(ctx context.Context) (domain.Home, error)
}

func (m *mockCatalog) Places(ctx context.Context, q string) ([]domain.Place, error) {
	return m.places(ctx, q)
}
func (m *mockCatalog) Programs(ctx context.Context) ([]domain.ReadyProgram, error) {
	return m.programs(ctx)
}
func (m *mockCatalog) Home(ctx context.Context) (domain.Home, error) { return m.home(ctx) }

var _ handler.CatalogServicer = (*mockCatalog)(nil)

type mockSettings struct {
	theme         func(ctx context.Context, scope uuid.UUID) domain.Theme
	toggleTheme   func(ctx context.Context, scope uuid.UUID) domain.Theme
	setTheme      func(ctx context.Context, scope uuid.UUID, name string) (domain.Theme, error)
	profile       func(ctx context.Context, scope uuid.UUID) domain.Profile
	updateProfile func(ctx context.Context, scope uuid.UUID, p domain.Profile) (domain.Profile, error)
}

func (m *mockSettings) Theme(ctx context.Context, s uuid.UUID) domain.Theme { return m.theme(ctx, s) }
func (m *mockSettings) ToggleTheme(ctx context.Context, s uuid.UUID) domain.Theme {
	return m.toggleTheme(ctx, s)
}
func (m *mockSettings) SetTheme(ctx context.Context, s uuid.UUID, n string) (domain.Theme, error) {
	return m.setTheme(ctx, s, n)
}
func (m *mockSettings) Profile(ctx context.Context, s uuid.UUID) domain.Profile {
	return m.profile(ctx, s)
}
func (m *mockSettings) UpdateProfile(ctx context.Context, s uuid.UUID, p domain.Profile) (domain.Profile, error) {
	return m.updateProfile(ctx, s, p)
}

var _ handler.SettingsServicer = (*mockSettings)(nil)

type mockExport struct {
	export func(ctx context.Context, scope uuid.UUID, status domain.TripStatus) ([]domain.ExportRow, error)
}

func (m *mockExport) Export(ctx context.Context, s uuid.UUID, st domain.TripStatus) ([]domain.ExportRow, error) {
	return m.export(ctx, s, st)
}

var _ handler.ExportServicer = (*mockExport)(nil)

// ---- helpers ---------------------------------------------------------------

var testDevice = uuid.MustParse("6f1c2a8e-4b7d-4e0a-9a3c-2d5e8f9b1c70")

// newHTTPHandler wires a Server with the given services the way main.go does.
func newHTTPHandler(svc handler.Services) http.Handler {
	return handler.NewServer(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Routes()
}

// do sends a request carrying the test device header and returns the recorder.
func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rdr)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.DeviceHeader, testDevice.String())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}
