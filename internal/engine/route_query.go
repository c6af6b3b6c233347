// Package engine implements the in-memory route search pipeline: a matching
// predicate over the route fixture set followed by a stable sort. The engine
// is a pure function of its inputs and is re-run synchronously on every
// keystroke or filter change.
package engine

import (
	"sort"
	"strings"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
	"github.com/Busmate-Lk/passenger-app-sub000/pkg/timeparse"
)

// RouteQueryEngine filters a route collection against a search query and
// orders the surviving set by the selected criterion.
type RouteQueryEngine struct{}

// NewRouteQueryEngine creates a new route query engine
func NewRouteQueryEngine() *RouteQueryEngine {
	return &RouteQueryEngine{}
}

// Query returns the routes matching the origin/destination pair and criteria,
// ordered by sortBy. The input slice is never mutated; an empty result is a
// valid outcome, not an error.
func (e *RouteQueryEngine) Query(
	routes []models.Route,
	origin string,
	destination string,
	criteria models.FilterCriteria,
	sortBy models.SortCriterion,
) []models.Route {
	matched := make([]models.Route, 0, len(routes))
	for _, route := range routes {
		if e.matches(&route, origin, destination, &criteria) {
			matched = append(matched, route)
		}
	}

	e.sortRoutes(matched, sortBy)
	return matched
}

// matches applies the six-part matching predicate; a route is included only
// when every part holds.
func (e *RouteQueryEngine) matches(
	route *models.Route,
	origin string,
	destination string,
	criteria *models.FilterCriteria,
) bool {
	// 1. Endpoint match: case-insensitive substring on both names
	if !containsFold(route.Origin, origin) || !containsFold(route.Destination, destination) {
		return false
	}

	// 2. Price within the inclusive range
	if route.Price < criteria.PriceRange[0] || route.Price > criteria.PriceRange[1] {
		return false
	}

	// 3. Bus type selection
	if !criteria.BusTypes.Matches(route.BusType) {
		return false
	}

	// 4. Operator allow-list
	if len(criteria.Operators) > 0 && !containsString(criteria.Operators, route.OperatorID) {
		return false
	}

	// 5. Required amenities: every tag must be present
	for _, tag := range criteria.Amenities {
		if !route.HasAmenity(tag) {
			return false
		}
	}

	// 6. Departure-time bucket
	if !criteria.Departure.Matches(departureHour(route.DepartureTime)) {
		return false
	}

	return true
}

// sortRoutes orders the matched routes in place. The sort is stable so routes
// that compare equal keep their fixture order.
func (e *RouteQueryEngine) sortRoutes(routes []models.Route, sortBy models.SortCriterion) {
	switch sortBy {
	case models.SortCheapest:
		sort.SliceStable(routes, func(i, j int) bool {
			return routes[i].Price < routes[j].Price
		})
	case models.SortFastest:
		sort.SliceStable(routes, func(i, j int) bool {
			return TripMinutes(routes[i].Duration) < TripMinutes(routes[j].Duration)
		})
	case models.SortHighestRated:
		sort.SliceStable(routes, func(i, j int) bool {
			return routes[i].Rating > routes[j].Rating
		})
	default:
		// SortDefault: preserve fixture order
	}
}

// TripMinutes converts a route duration string to total minutes for the
// fastest sort. A malformed duration is a fixture data-quality condition, not
// a runtime fault: it collapses to 0 minutes so the route sorts first and
// stays visible rather than being dropped or crashing the query.
func TripMinutes(duration string) int {
	minutes, err := timeparse.DurationMinutes(duration)
	if err != nil {
		return 0
	}
	return minutes
}

// departureHour extracts the hour from an "HH:MM" departure time. Malformed
// times fall back to hour 0, which lands in the night bucket.
func departureHour(clock string) int {
	hour, err := timeparse.HourOf(clock)
	if err != nil {
		return 0
	}
	return hour
}

// containsFold reports whether haystack contains needle, ignoring case.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
