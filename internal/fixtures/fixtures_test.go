package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
	"github.com/Busmate-Lk/passenger-app-sub000/pkg/timeparse"
)

var knownBusTypes = []string{
	models.BusTypeNormal,
	models.BusTypeSemiLuxury,
	models.BusTypeLuxury,
	models.BusTypeExpressway,
}

func TestLoad(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, store.Routes())
	assert.NotEmpty(t, store.RoutePaths())
	assert.NotEmpty(t, store.Notifications())
}

func TestLoad_RouteRecordsAreWellFormed(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, route := range store.Routes() {
		require.NotEmpty(t, route.ID)
		assert.False(t, seen[route.ID], "duplicate route id %s", route.ID)
		seen[route.ID] = true

		assert.NotEmpty(t, route.Origin, route.ID)
		assert.NotEmpty(t, route.Destination, route.ID)
		assert.Greater(t, route.Price, 0, route.ID)
		assert.Contains(t, knownBusTypes, route.BusType, route.ID)

		_, err := timeparse.DurationMinutes(route.Duration)
		assert.NoError(t, err, "route %s duration %q", route.ID, route.Duration)

		_, err = timeparse.HourOf(route.DepartureTime)
		assert.NoError(t, err, "route %s departure %q", route.ID, route.DepartureTime)
	}
}

func TestLoad_EveryRouteHasAPath(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	paths := make(map[string]bool)
	for _, path := range store.RoutePaths() {
		paths[path.RouteID] = true

		assert.NotZero(t, path.OriginLat, path.RouteID)
		assert.NotZero(t, path.DestinationLng, path.RouteID)
	}

	for _, route := range store.Routes() {
		assert.True(t, paths[route.ID], "route %s has no map path", route.ID)
	}
}

func TestLoad_NotificationRecordsAreWellFormed(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, n := range store.Notifications() {
		require.NotEmpty(t, n.ID)
		assert.False(t, seen[n.ID], "duplicate notification id %s", n.ID)
		seen[n.ID] = true

		assert.NotEmpty(t, n.Title, n.ID)
		assert.NotEmpty(t, n.Category, n.ID)
	}
}
