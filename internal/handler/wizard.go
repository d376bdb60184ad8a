package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/trip-builder/internal/domain"
	"github.com/pkordes/trip-builder/internal/service"
)

// GetWizard handles GET /wizard.
func (s *Server) GetWizard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Wizard.View(r.Context(), scope(r)))
}

// EnterWizard handles POST /wizard/enter. It discards any previous draft.
func (s *Server) EnterWizard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Wizard.Enter(r.Context(), scope(r)))
}

// UpdateConstraint handles PUT /wizard/constraint.
func (s *Server) UpdateConstraint(w http.ResponseWriter, r *http.Request) {
	var c domain.Constraint
	if err := decodeJSON(r, &c); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondView(w, r)(s.svc.Wizard.UpdateConstraint(r.Context(), scope(r), c))
}

// AdjustPeople handles POST /wizard/people.
func (s *Server) AdjustPeople(w http.ResponseWriter, r *http.Request) {
	var req PeopleRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondView(w, r)(s.svc.Wizard.AdjustPeople(r.Context(), scope(r), req.Delta))
}

// AdvanceWizard handles POST /wizard/advance.
func (s *Server) AdvanceWizard(w http.ResponseWriter, r *http.Request) {
	s.respondView(w, r)(s.svc.Wizard.Advance(r.Context(), scope(r)))
}

// BackWizard handles POST /wizard/back.
func (s *Server) BackWizard(w http.ResponseWriter, r *http.Request) {
	s.respondView(w, r)(s.svc.Wizard.Back(r.Context(), scope(r)))
}

func (s *Server) respondView(w http.ResponseWriter, r *http.Request) func(service.WizardView, error) {
	return func(v service.WizardView, err error) {
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// BrowsePlaces handles GET /wizard/places?type=&q=.
func (s *Server) BrowsePlaces(w http.ResponseWriter, r *http.Request) {
	var typeFacet, search string
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "type", q, &typeFacet); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestError(err.Error()))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "q", q, &search); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestError(err.Error()))
		return
	}

	res, err := s.svc.Wizard.Browse(r.Context(), scope(r), typeFacet, search)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// TogglePlace handles POST /wizard/selection/{placeID}.
func (s *Server) TogglePlace(w http.ResponseWriter, r *http.Request) {
	var placeID string
	err := runtime.BindStyledParameterWithOptions("simple", "placeID", chi.URLParam(r, "placeID"), &placeID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestError(err.Error()))
		return
	}

	sel, err := s.svc.Wizard.Toggle(r.Context(), scope(r), placeID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SelectionResponse{Selection: sel, Total: sel.Total()})
}

// ReviewWizard handles GET /wizard/review.
func (s *Server) ReviewWizard(w http.ResponseWriter, r *http.Request) {
	rev, err := s.svc.Wizard.Review(r.Context(), scope(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rev)
}

// SubmitWizard handles POST /wizard/submit.
func (s *Server) SubmitWizard(w http.ResponseWriter, r *http.Request) {
	it, err := s.svc.Wizard.Submit(r.Context(), scope(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, SubmitResponse{Itinerary: it})
}
