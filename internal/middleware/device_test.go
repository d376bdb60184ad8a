package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-builder/internal/middleware"
)

func TestRequireDevice_StoresScope(t *testing.T) {
	want := uuid.New()
	var got uuid.UUID
	h := middleware.RequireDevice(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = middleware.ScopeFrom(r.Context())
		require.True(t, ok)
	}))

	req := httptest.NewRequest(http.MethodGet, "/wizard", nil)
	req.Header.Set(middleware.DeviceHeader, want.String())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, got)
}

func TestRequireDevice_Rejects(t *testing.T) {
	for name, header := range map[string]string{
		"missing":  "",
		"not uuid": "phone-1",
		"nil uuid": uuid.Nil.String(),
	} {
		t.Run(name, func(t *testing.T) {
			h := middleware.RequireDevice(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not run")
			}))

			req := httptest.NewRequest(http.MethodGet, "/wizard", nil)
			if header != "" {
				req.Header.Set(middleware.DeviceHeader, header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "missing_device", body.Error.Code)
		})
	}
}

func TestScopeFrom_Absent(t *testing.T) {
	_, ok := middleware.ScopeFrom(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
