package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist (an absent draft key, an unknown place, a trip the
// remote backend does not know).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required constraint field, people out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned when no session token is stored for the scope,
// or the remote backend rejects the token. Callers send the user to login.
// Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("login required")

// ErrInvalidTransition is returned when a wizard operation is attempted from a
// step that does not allow it (e.g. submitting while still on Create).
// Handlers should map this to HTTP 409 Conflict.
var ErrInvalidTransition = errors.New("invalid wizard step")
