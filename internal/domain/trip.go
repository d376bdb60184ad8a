package domain

import "strings"

// PlaceSeparator joins place names in Itinerary.SelectedTripPlaces.
const PlaceSeparator = " -- "

// Itinerary is the submission payload for POST /api/createprogram.
// It is derived from a Constraint and a SelectionSet at submit time and is
// never persisted locally.
type Itinerary struct {
	NumberOfPersons    int      `json:"numberOfPersons"`
	Locate             string   `json:"locate"`
	Budget             string   `json:"budget"`
	TypeOfProgram      string   `json:"typeOfProgram"`
	SelectedTripPlaces string   `json:"selectedTripPlaces"`
	Images             []string `json:"images"`
}

// NewItinerary joins a constraint and a selection into a submission payload.
func NewItinerary(c Constraint, s SelectionSet) Itinerary {
	return Itinerary{
		NumberOfPersons:    c.People,
		Locate:             c.Destination,
		Budget:             strings.TrimSpace(c.Amount),
		TypeOfProgram:      c.Category,
		SelectedTripPlaces: strings.Join(s.Names(), PlaceSeparator),
		Images:             s.Images(),
	}
}

// TripStatus is the lifecycle state the remote backend reports for a trip.
type TripStatus string

const (
	TripStatusUpcoming  TripStatus = "upcoming"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// TripStatusAll is the list filter that matches every status.
const TripStatusAll TripStatus = "all"

// ParseTripStatus validates a status filter value. Empty means TripStatusAll.
func ParseTripStatus(s string) (TripStatus, bool) {
	switch TripStatus(s) {
	case "", TripStatusAll:
		return TripStatusAll, true
	case TripStatusUpcoming, TripStatusCompleted, TripStatusCancelled:
		return TripStatus(s), true
	}
	return "", false
}

// Trip is a submitted itinerary as owned by the remote backend.
type Trip struct {
	ID     string     `json:"_id"`
	Status TripStatus `json:"status,omitempty"`
	Itinerary
}

// Places splits SelectedTripPlaces back into individual place names.
func (t Trip) Places() []string {
	if t.SelectedTripPlaces == "" {
		return []string{}
	}
	return strings.Split(t.SelectedTripPlaces, PlaceSeparator)
}

// CurrentStatus returns the trip's status. A trip the backend sent without
// one is upcoming.
func (t Trip) CurrentStatus() TripStatus {
	if t.Status == "" {
		return TripStatusUpcoming
	}
	return t.Status
}

// Matches reports whether the trip passes the given status filter.
func (t Trip) Matches(status TripStatus) bool {
	return status == TripStatusAll || t.CurrentStatus() == status
}
