package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/trip-builder/internal/domain"
)

// ---- fake backend ----

type fakeBackend struct {
	mu       sync.Mutex
	programs []domain.Trip
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reply := func(status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	switch r.Method + " " + r.URL.Path {
	case "GET /api/places":
		reply(http.StatusOK, []domain.Place{
			{ID: "p1", Name: "معبد فيلة", City: "أسوان", Type: "معالم", Categories: []string{"ثقافية"}, Price: 200},
			{ID: "p2", Name: "فندق النيل", City: "أسوان", Type: "فنادق", Categories: []string{"ثقافية"}, Price: 900},
		})
	case "GET /api/readyprogram":
		reply(http.StatusOK, []domain.ReadyProgram{{ID: "r1", Program: "رحلة النيل", Location: "أسوان", PersonNum: 4, Budget: 12000}})
	case "POST /api/login":
		reply(http.StatusOK, domain.Session{Token: "tok", User: domain.User{FirstName: "Mona", Email: "mona@example.com"}})
	case "POST /api/createprogram":
		var it domain.Itinerary
		_ = json.NewDecoder(r.Body).Decode(&it)
		f.mu.Lock()
		f.programs = append(f.programs, domain.Trip{ID: "t1", Status: domain.TripStatusUpcoming, Itinerary: it})
		f.mu.Unlock()
		reply(http.StatusCreated, map[string]string{})
	case "GET /api/createprogram":
		f.mu.Lock()
		defer f.mu.Unlock()
		reply(http.StatusOK, f.programs)
	default:
		reply(http.StatusNotFound, map[string]string{"message": "no route"})
	}
}

// ---- harness ----

type harness struct {
	t       *testing.T
	config  string
	api     string
	backend *fakeBackend
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	b := &fakeBackend{}
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)
	return &harness{
		t:       t,
		config:  filepath.Join(t.TempDir(), "tripctl.yaml"),
		api:     srv.URL,
		backend: b,
	}
}

// run executes one invocation and returns its stdout.
func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--config", h.config, "--api", h.api}, args...)
	err := run(context.Background(), full, &out, &errOut)
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, "tripctl %v", args)
	return out
}

// ---- tests ----

func TestConfig_CreatedOnFirstRunAndReused(t *testing.T) {
	h := newHarness(t)

	h.mustRun("theme")

	raw, err := os.ReadFile(h.config)
	require.NoError(t, err)
	var first cliConfig
	require.NoError(t, yaml.Unmarshal(raw, &first))
	_, err = uuid.Parse(first.Device)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(h.config), ".tripctl", "drafts.db"), first.DraftPath)

	h.mustRun("theme")

	again, err := loadCLIConfig(h.config)
	require.NoError(t, err)
	assert.Equal(t, first.Device, again.Device)
}

func TestConfig_RejectsBadDevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tripctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("device: not-a-uuid\n"), 0o600))

	_, err := loadCLIConfig(path)

	require.ErrorContains(t, err, "not a valid UUID")
}

func TestWizard_BuildAndSubmitTrip(t *testing.T) {
	h := newHarness(t)

	h.mustRun("login", "--email", "mona@example.com", "--password", "Secret#2024")
	assert.Contains(t, h.mustRun("wizard", "enter"), "step: create")

	out := h.mustRun("wizard", "constraint", "--people", "2", "--amount", "1500")
	assert.Contains(t, out, "missing: destination, category")
	out = h.mustRun("wizard", "constraint", "--destination", "أسوان", "--category", "ثقافية")
	assert.NotContains(t, out, "missing")
	assert.Contains(t, out, "people:      2", "earlier flags are kept")

	out = h.mustRun("wizard", "people", "up", "2")
	assert.Contains(t, out, "people:      4")

	assert.Contains(t, h.mustRun("wizard", "advance"), "step: next")

	out = h.mustRun("wizard", "browse")
	assert.Contains(t, out, "معبد فيلة")
	assert.Contains(t, out, "فندق النيل")

	out = h.mustRun("wizard", "toggle", "p1", "p2")
	assert.Contains(t, out, "1,100")

	h.mustRun("wizard", "advance")
	assert.Contains(t, h.mustRun("wizard", "review"), "معبد فيلة")
	assert.Contains(t, h.mustRun("wizard", "submit"), "trip saved")

	require.Len(t, h.backend.programs, 1)
	assert.Equal(t, 4, h.backend.programs[0].NumberOfPersons)
	assert.Contains(t, h.mustRun("wizard", "show"), "step: create")

	out = h.mustRun("trips", "list")
	assert.Contains(t, out, "t1")
	assert.Contains(t, out, "2nd فندق النيل")

	out = h.mustRun("trips", "export", "--format", "csv")
	assert.Contains(t, out, "trip_id,status,destination")
	assert.Contains(t, out, "t1,upcoming,أسوان,ثقافية,4,1500,2,فندق النيل,")
}

func TestWizard_WrongStepIsAnError(t *testing.T) {
	h := newHarness(t)
	h.mustRun("wizard", "enter")

	_, err := h.run("wizard", "toggle", "p1")

	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestWizard_SubmitNeedsLogin(t *testing.T) {
	h := newHarness(t)
	h.mustRun("wizard", "enter")
	h.mustRun("wizard", "constraint", "--people", "1", "--amount", "100", "--destination", "أسوان", "--category", "ثقافية")
	h.mustRun("wizard", "advance")
	h.mustRun("wizard", "advance")

	_, err := h.run("wizard", "submit")

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, h.backend.programs)
}

func TestTheme_TogglePersists(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.mustRun("theme"), "theme: light")
	assert.Contains(t, h.mustRun("theme", "toggle"), "theme: dark")
	assert.Contains(t, h.mustRun("theme"), "theme: dark")

	_, err := h.run("theme", "sepia")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestProfile_SetKeepsUnchangedFields(t *testing.T) {
	h := newHarness(t)

	h.mustRun("profile", "set", "--firstname", "Mona", "--phone", "0100")
	out := h.mustRun("profile", "set", "--address", "Aswan")

	assert.Contains(t, out, "Mona")
	assert.Contains(t, out, "phone:     0100")
	assert.Contains(t, out, "address:   Aswan")
}

func TestPrograms(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("programs")

	assert.Contains(t, out, "رحلة النيل")
	assert.Contains(t, out, "12,000 EGP")
}
