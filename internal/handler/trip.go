package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/trip-builder/internal/domain"
)

// ListTrips handles GET /trips.
// Supports ?status= (all, upcoming, completed, cancelled) and ?page= / ?limit=
// (defaults: page=1, limit=20, max=100). Pagination is applied locally because
// the backend returns the full list.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	status, page, limit, err := tripListParams(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestError(err.Error()))
		return
	}

	trips, err := s.svc.Trips.List(r.Context(), scope(r), status)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	params := domain.NewPaginationParams(page, limit)
	writeJSON(w, http.StatusOK, TripPage{
		Data: domain.Paginate(trips, params),
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: len(trips),
		},
	})
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestError(err.Error()))
		return
	}

	if err := s.svc.Trips.Delete(r.Context(), scope(r), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// tripListParams binds the query parameters shared by /trips and /trips/export.
func tripListParams(r *http.Request) (status domain.TripStatus, page, limit *int, err error) {
	q := r.URL.Query()
	var rawStatus string
	if err := runtime.BindQueryParameter("form", true, false, "status", q, &rawStatus); err != nil {
		return "", nil, nil, err
	}
	status, ok := domain.ParseTripStatus(rawStatus)
	if !ok {
		return "", nil, nil, fmt.Errorf("unknown status %q", rawStatus)
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", q, &page); err != nil {
		return "", nil, nil, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		return "", nil, nil, err
	}
	return status, page, limit, nil
}
