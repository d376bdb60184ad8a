package domain

import "strconv"

// ExportRow is a single row in the trips export.
// It is a flat, denormalized view: one row per place in a trip, with trip
// fields repeated for every place. Trips with no places yield one row with an
// empty place name.
type ExportRow struct {
	// Trip fields, repeated for every place on the trip.
	TripID          string `json:"trip_id"`
	Status          string `json:"status,omitempty"`
	Destination     string `json:"destination"`
	Category        string `json:"category"`
	NumberOfPersons int    `json:"number_of_persons"`
	Budget          string `json:"budget"`

	// Place fields.
	// Position is 1-based, 0 when the trip has no places.
	Position  int    `json:"position,omitempty"`
	PlaceName string `json:"place_name,omitempty"`
	// Image is the trip image at the same position, empty when the backend
	// sent fewer images than places.
	Image string `json:"image,omitempty"`
}

// ExportCSVHeader is the first row of every CSV export.
var ExportCSVHeader = []string{
	"trip_id", "status", "destination", "category", "number_of_persons",
	"budget", "position", "place_name", "image",
}

// CSVRecord encodes the row in ExportCSVHeader order.
// A zero position (trip without places) is written as an empty field.
func (r ExportRow) CSVRecord() []string {
	position := ""
	if r.Position > 0 {
		position = strconv.Itoa(r.Position)
	}
	return []string{
		r.TripID,
		r.Status,
		r.Destination,
		r.Category,
		strconv.Itoa(r.NumberOfPersons),
		r.Budget,
		position,
		r.PlaceName,
		r.Image,
	}
}
