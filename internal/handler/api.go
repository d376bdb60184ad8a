package handler

import "github.com/pkordes/trip-builder/internal/domain"

// ErrorResponse is the envelope of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripPage is the body of GET /trips.
type TripPage struct {
	Data       []domain.Trip `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FirstName       string `json:"firstname"`
	LastName        string `json:"lastname"`
	City            string `json:"city"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// PeopleRequest is the body of POST /wizard/people.
type PeopleRequest struct {
	Delta int `json:"delta"`
}

// SelectionResponse is the body returned after a toggle.
type SelectionResponse struct {
	Selection domain.SelectionSet `json:"selection"`
	Total     float64             `json:"total"`
}

// SubmitResponse is the body of a successful POST /wizard/submit.
type SubmitResponse struct {
	Itinerary domain.Itinerary `json:"itinerary"`
}

// ThemeRequest is the body of POST /settings/theme. An empty theme toggles.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ExportRow is one line of GET /trips/export in JSON form.
type ExportRow struct {
	TripID          string `json:"trip_id"`
	Status          string `json:"status,omitempty"`
	Destination     string `json:"destination"`
	Category        string `json:"category"`
	NumberOfPersons int    `json:"number_of_persons"`
	Budget          string `json:"budget"`
	Position        int    `json:"position,omitempty"`
	PlaceName       string `json:"place_name,omitempty"`
	Image           string `json:"image,omitempty"`
}
