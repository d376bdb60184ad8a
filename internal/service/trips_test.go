package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-builder/internal/domain"
	"github.com/pkordes/trip-builder/internal/service"
)

func tripsAPI(trips ...domain.Trip) *mockProgramAPI {
	return &mockProgramAPI{
		listPrograms: func(_ context.Context, token string) ([]domain.Trip, error) {
			if token != "tok" {
				return nil, domain.ErrUnauthorized
			}
			return trips, nil
		},
	}
}

func TestTripService_List_FiltersByStatus(t *testing.T) {
	a := tripFixture("a", "")
	b := tripFixture("b", "")
	b.Status = domain.TripStatusCompleted
	c := tripFixture("c", "")
	c.Status = domain.TripStatusCancelled
	svc := service.NewTripService(tripsAPI(a, b, c), staticToken{token: "tok"})
	ctx := context.Background()

	tests := []struct {
		status domain.TripStatus
		want   []string
	}{
		{domain.TripStatusAll, []string{"a", "b", "c"}},
		{domain.TripStatusUpcoming, []string{"a"}},
		{domain.TripStatusCompleted, []string{"b"}},
		{domain.TripStatusCancelled, []string{"c"}},
	}
	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			got, err := svc.List(ctx, uuid.New(), tc.status)
			require.NoError(t, err)
			var ids []string
			for _, tr := range got {
				ids = append(ids, tr.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestTripService_List_MissingStatusIsUpcoming(t *testing.T) {
	a := tripFixture("a", "")
	a.Status = ""
	b := tripFixture("b", "")
	b.Status = domain.TripStatusCompleted
	svc := service.NewTripService(tripsAPI(a, b), staticToken{token: "tok"})

	got, err := svc.List(context.Background(), uuid.New(), domain.TripStatusUpcoming)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, domain.TripStatusUpcoming, got[0].Status)
}

func TestTripService_List_EmptyIsNotNil(t *testing.T) {
	svc := service.NewTripService(tripsAPI(), staticToken{token: "tok"})

	got, err := svc.List(context.Background(), uuid.New(), domain.TripStatusAll)

	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestTripService_List_LoggedOut(t *testing.T) {
	svc := service.NewTripService(&mockProgramAPI{}, staticToken{err: domain.ErrUnauthorized})

	_, err := svc.List(context.Background(), uuid.New(), domain.TripStatusAll)

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTripService_Delete(t *testing.T) {
	var gotToken, gotID string
	api := &mockProgramAPI{deleteProgram: func(_ context.Context, token, id string) error {
		gotToken, gotID = token, id
		return nil
	}}
	svc := service.NewTripService(api, staticToken{token: "tok"})

	require.NoError(t, svc.Delete(context.Background(), uuid.New(), "abc"))
	assert.Equal(t, "tok", gotToken)
	assert.Equal(t, "abc", gotID)
}

func TestTripService_Delete_Errors(t *testing.T) {
	api := &mockProgramAPI{deleteProgram: func(context.Context, string, string) error {
		return domain.ErrNotFound
	}}
	svc := service.NewTripService(api, staticToken{token: "tok"})
	ctx := context.Background()

	require.ErrorIs(t, svc.Delete(ctx, uuid.New(), " "), domain.ErrValidation)
	require.ErrorIs(t, svc.Delete(ctx, uuid.New(), "gone"), domain.ErrNotFound)
}
