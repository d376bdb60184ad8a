package handler

import (
	"net/http"

	"github.com/pkordes/trip-builder/internal/domain"
)

// Register handles POST /auth/register.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	err := s.svc.Auth.Register(r.Context(), domain.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		City:      req.City,
		Email:     req.Email,
		Password:  req.Password,
		Confirm:   req.ConfirmPassword,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// Login handles POST /auth/login.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		s.writeError(w, r, err)
		return
	}
	u, err := s.svc.Auth.Login(r.Context(), scope(r), creds)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Logout handles POST /auth/logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.svc.Auth.Logout(r.Context(), scope(r))
	w.WriteHeader(http.StatusNoContent)
}

// GetMe handles GET /auth/me.
func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	u, err := s.svc.Auth.CurrentUser(r.Context(), scope(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
