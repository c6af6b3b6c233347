// Package repository provides the in-memory data access layer. Every
// repository is an explicit object handed to its consumers by dependency
// injection; state lives in process memory only and is seeded from the
// fixture store at startup.
package repository

import (
	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
)

// RouteRepository serves the read-only route collection and route map paths
type RouteRepository struct {
	routes  []models.Route
	byID    map[string]models.Route
	pathsBy map[string]models.RoutePath
}

// NewRouteRepository creates a route repository over the fixture collections
func NewRouteRepository(routes []models.Route, paths []models.RoutePath) *RouteRepository {
	byID := make(map[string]models.Route, len(routes))
	for _, route := range routes {
		byID[route.ID] = route
	}
	pathsBy := make(map[string]models.RoutePath, len(paths))
	for _, path := range paths {
		pathsBy[path.RouteID] = path
	}
	return &RouteRepository{
		routes:  routes,
		byID:    byID,
		pathsBy: pathsBy,
	}
}

// All returns every route record in fixture order. Callers must not mutate
// the returned slice.
func (r *RouteRepository) All() []models.Route {
	return r.routes
}

// GetByID returns the route with the given ID
func (r *RouteRepository) GetByID(id string) (*models.Route, error) {
	route, ok := r.byID[id]
	if !ok {
		return nil, ErrRouteNotFound
	}
	return &route, nil
}

// PathByRouteID returns the map coordinates for the route
func (r *RouteRepository) PathByRouteID(routeID string) (*models.RoutePath, error) {
	path, ok := r.pathsBy[routeID]
	if !ok {
		return nil, ErrRoutePathNotFound
	}
	return &path, nil
}
