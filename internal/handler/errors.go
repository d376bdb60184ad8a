package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/trip-builder/internal/client"
	"github.com/pkordes/trip-builder/internal/domain"
	"github.com/pkordes/trip-builder/internal/service"
)

// writeError maps err onto a status code and an ErrorResponse.
// Sentinel errors are checked before *service.SubmissionError so a submission
// rejected for a missing login still answers 401.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, body)
}

func errorResponse(err error) (int, ErrorResponse) {
	var subErr *service.SubmissionError
	isSubmission := errors.As(err, &subErr)

	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge, errBody("body_too_large", "request body is too large")
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errBody("login_required", "login required")
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, errBody("validation_error", unwrapMessage(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, errBody("invalid_step", unwrapMessage(err, domain.ErrInvalidTransition))
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errBody("not_found", unwrapMessage(err, domain.ErrNotFound))
	case isSubmission:
		return http.StatusBadGateway, errBody("submission_failed", subErr.Message)
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, errBody("upstream_timeout", "the trip service took too long to respond")
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway, errBody("upstream_error", "the trip service is unavailable")
	}
	return http.StatusInternalServerError, errBody("internal_error", "internal error")
}

func errBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// requestError reports a request rejected before reaching a service
// (e.g. a malformed body or query parameter).
func requestError(message string) ErrorResponse {
	return errBody("validation_error", message)
}

// unwrapMessage extracts the human-readable detail that follows the sentinel
// in a wrapped error chain.
// e.g. "service.X: validation error: amount must be ..." → "amount must be ..."
func unwrapMessage(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return sentinel.Error()
}
