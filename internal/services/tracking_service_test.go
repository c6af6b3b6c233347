package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/repository"
)

func newTrackingService(jitterMeters float64) *TrackingService {
	routeRepo := repository.NewRouteRepository(
		[]models.Route{
			{ID: "RT-1", Origin: "Colombo Fort", Destination: "Kandy", DepartureTime: "06:30", Duration: "3h 0m"},
			{ID: "RT-2", Origin: "Colombo Fort", Destination: "Galle", DepartureTime: "10:00", Duration: "2h 0m"},
		},
		[]models.RoutePath{
			{RouteID: "RT-1", OriginLat: 6.9344, OriginLng: 79.8428, DestinationLat: 7.2906, DestinationLng: 80.6337},
		},
	)
	return NewTrackingService(routeRepo, jitterMeters, testLogger())
}

func fixedClock(hour, minute int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 30, hour, minute, 0, 0, time.UTC)
	}
}

func TestPosition_MidTrip(t *testing.T) {
	svc := newTrackingService(0)
	svc.now = fixedClock(8, 0) // 90 of 180 minutes into the 06:30 departure

	pos, err := svc.Position("RT-1")
	require.NoError(t, err)

	assert.Equal(t, "RT-1", pos.RouteID)
	assert.InDelta(t, 50, pos.ProgressPercent, 0.5)

	// Halfway between the endpoints with jitter disabled
	assert.InDelta(t, (6.9344+7.2906)/2, pos.Latitude, 1e-6)
	assert.InDelta(t, (79.8428+80.6337)/2, pos.Longitude, 1e-6)

	assert.Greater(t, pos.SpeedKmh, 0.0)
	assert.Greater(t, pos.EtaMinutes, 0)
	assert.GreaterOrEqual(t, pos.BearingDeg, 0.0)
	assert.Less(t, pos.BearingDeg, 360.0)
}

func TestPosition_ProgressIsClamped(t *testing.T) {
	svc := newTrackingService(0)

	// Exactly at departure: clamped to the lower bound, never 0
	svc.now = fixedClock(6, 30)
	pos, err := svc.Position("RT-1")
	require.NoError(t, err)
	assert.InDelta(t, 2, pos.ProgressPercent, 0.5)
}

func TestPosition_WrapsOutsideSchedule(t *testing.T) {
	svc := newTrackingService(0)

	// 04:30 is before departure; elapsed wraps through the previous day
	svc.now = fixedClock(4, 30)
	pos, err := svc.Position("RT-1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pos.ProgressPercent, 2.0)
	assert.LessOrEqual(t, pos.ProgressPercent, 98.0)
}

func TestPosition_UnknownRoute(t *testing.T) {
	svc := newTrackingService(0)

	_, err := svc.Position("RT-404")
	assert.ErrorIs(t, err, repository.ErrRouteNotFound)
}

func TestPosition_RouteWithoutPath(t *testing.T) {
	svc := newTrackingService(0)

	_, err := svc.Position("RT-2")
	assert.ErrorIs(t, err, repository.ErrRoutePathNotFound)
}

func TestPosition_JitterStaysNearPath(t *testing.T) {
	svc := newTrackingService(150)
	svc.now = fixedClock(8, 0)

	exact := (6.9344 + 7.2906) / 2
	for i := 0; i < 20; i++ {
		pos, err := svc.Position("RT-1")
		require.NoError(t, err)
		// 150 m is about 0.00135 degrees
		assert.InDelta(t, exact, pos.Latitude, 0.002)
	}
}

func TestHaversineKm(t *testing.T) {
	// Colombo Fort to Kandy is roughly 96 km great-circle
	km := haversineKm(6.9344, 79.8428, 7.2906, 80.6337)
	assert.InDelta(t, 96, km, 5)

	assert.InDelta(t, 0, haversineKm(6.9, 79.8, 6.9, 79.8), 1e-9)
}

func TestBearingDeg(t *testing.T) {
	// Due north
	assert.InDelta(t, 0, bearingDeg(6.0, 80.0, 7.0, 80.0), 0.5)
	// Due east
	assert.InDelta(t, 90, bearingDeg(0.0, 80.0, 0.0, 81.0), 0.5)
	// Due south
	assert.InDelta(t, 180, bearingDeg(7.0, 80.0, 6.0, 80.0), 0.5)
}
