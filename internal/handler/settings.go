package handler

import (
	"net/http"

	"github.com/pkordes/trip-builder/internal/domain"
)

// GetTheme handles GET /settings/theme.
func (s *Server) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Settings.Theme(r.Context(), scope(r)))
}

// SetTheme handles POST /settings/theme. {"theme":"dark"} selects a theme;
// an empty body or an empty theme toggles.
func (s *Server) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Theme == "" {
		writeJSON(w, http.StatusOK, s.svc.Settings.ToggleTheme(r.Context(), scope(r)))
		return
	}
	th, err := s.svc.Settings.SetTheme(r.Context(), scope(r), req.Theme)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, th)
}

// GetProfile handles GET /settings/profile.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Settings.Profile(r.Context(), scope(r)))
}

// UpdateProfile handles PUT /settings/profile.
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var p domain.Profile
	if err := decodeJSON(r, &p); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := s.svc.Settings.UpdateProfile(r.Context(), scope(r), p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
