package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pkordes/trip-builder/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the client may be gone; nothing useful to do.
	json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a single JSON value from the request body into dst.
// Malformed or missing bodies are reported as domain.ErrValidation; an
// oversized body keeps its *http.MaxBytesError.
func decodeJSON(r *http.Request, dst any) error {
	err := decodeBody(r, dst)
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: request body is required", domain.ErrValidation)
	}
	return err
}

// decodeOptionalJSON is decodeJSON that leaves dst untouched on an empty body.
func decodeOptionalJSON(r *http.Request, dst any) error {
	if err := decodeBody(r, dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// decodeBody returns io.EOF unchanged for an empty body.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return err
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return err
	}
	return fmt.Errorf("%w: invalid JSON body: %v", domain.ErrValidation, err)
}
