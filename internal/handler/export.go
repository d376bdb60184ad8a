package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/pkordes/trip-builder/internal/domain"
)

// GetExport handles GET /trips/export.
// It returns one row per itinerary place across the user's trips.
// ?format=csv selects CSV; the default is JSON. ?status= filters as on /trips.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	status, _, _, err := tripListParams(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestError(err.Error()))
		return
	}
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		writeJSON(w, http.StatusUnprocessableEntity, requestError("format must be json or csv"))
		return
	}

	rows, err := s.svc.Export.Export(r.Context(), scope(r), status)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if format == "csv" {
		writeCSV(w, rows)
		return
	}
	out := make([]ExportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, ExportRow(row))
	}
	writeJSON(w, http.StatusOK, out)
}

func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	//nolint:errcheck // bytes.Buffer writes do not fail.
	cw.Write(domain.ExportCSVHeader)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(r.CSVRecord())
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}
