package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/trip-builder/internal/domain"
)

// TripLister is the part of TripService the export needs.
type TripLister interface {
	List(ctx context.Context, scope uuid.UUID, status domain.TripStatus) ([]domain.Trip, error)
}

// ExportService flattens the user's trips into one row per itinerary place.
type ExportService struct {
	trips TripLister
}

// NewExportService constructs an ExportService.
func NewExportService(trips TripLister) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per place across all trips matching status.
// Trips with no places contribute one row with empty place fields.
func (s *ExportService) Export(ctx context.Context, scope uuid.UUID, status domain.TripStatus) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx, scope, status)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ExportRow, 0, len(trips))
	for _, t := range trips {
		base := domain.ExportRow{
			TripID:          t.ID,
			Status:          string(t.CurrentStatus()),
			Destination:     t.Locate,
			Category:        t.TypeOfProgram,
			NumberOfPersons: t.NumberOfPersons,
			Budget:          t.Budget,
		}
		places := t.Places()
		if len(places) == 0 {
			rows = append(rows, base)
			continue
		}
		for i, name := range places {
			row := base
			row.Position = i + 1
			row.PlaceName = name
			if i < len(t.Images) {
				row.Image = t.Images[i]
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}
