// Package fixtures loads the static JSON data the app is served from. The
// fixture files are embedded into the binary and parsed once at startup;
// there is no backend behind them.
package fixtures

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
)

//go:embed routes.json
var routesJSON []byte

//go:embed route_paths.json
var routePathsJSON []byte

//go:embed notifications.json
var notificationsJSON []byte

// Store holds the parsed fixture collections. All accessors return the same
// backing slices; callers must treat them as read-only.
type Store struct {
	routes        []models.Route
	paths         []models.RoutePath
	notifications []models.Notification
}

// Load parses the embedded fixture files and validates basic invariants.
func Load() (*Store, error) {
	var routes []models.Route
	if err := json.Unmarshal(routesJSON, &routes); err != nil {
		return nil, fmt.Errorf("failed to parse routes fixture: %w", err)
	}

	seen := make(map[string]bool, len(routes))
	for _, route := range routes {
		if route.ID == "" {
			return nil, fmt.Errorf("routes fixture contains a record with no id")
		}
		if seen[route.ID] {
			return nil, fmt.Errorf("routes fixture contains duplicate id %q", route.ID)
		}
		seen[route.ID] = true
	}

	var paths []models.RoutePath
	if err := json.Unmarshal(routePathsJSON, &paths); err != nil {
		return nil, fmt.Errorf("failed to parse route paths fixture: %w", err)
	}

	var notifications []models.Notification
	if err := json.Unmarshal(notificationsJSON, &notifications); err != nil {
		return nil, fmt.Errorf("failed to parse notifications fixture: %w", err)
	}

	return &Store{
		routes:        routes,
		paths:         paths,
		notifications: notifications,
	}, nil
}

// Routes returns all route records in fixture order.
func (s *Store) Routes() []models.Route {
	return s.routes
}

// RoutePaths returns the map coordinates for every route.
func (s *Store) RoutePaths() []models.RoutePath {
	return s.paths
}

// Notifications returns the seeded notification list.
func (s *Store) Notifications() []models.Notification {
	return s.notifications
}
