package handler

import (
	"net/http"
)

// ListPlaces handles GET /places?q=.
func (s *Server) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := s.svc.Catalog.Places(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, places)
}

// ListPrograms handles GET /programs.
func (s *Server) ListPrograms(w http.ResponseWriter, r *http.Request) {
	progs, err := s.svc.Catalog.Programs(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progs)
}

// GetHome handles GET /home.
func (s *Server) GetHome(w http.ResponseWriter, r *http.Request) {
	home, err := s.svc.Catalog.Home(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, home)
}
