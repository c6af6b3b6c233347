package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/engine"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/repository"
)

// SearchService handles business logic for route search
type SearchService struct {
	repo   *repository.RouteRepository
	engine *engine.RouteQueryEngine
	logger *logrus.Logger
}

// NewSearchService creates a new search service
func NewSearchService(repo *repository.RouteRepository, queryEngine *engine.RouteQueryEngine, logger *logrus.Logger) *SearchService {
	return &SearchService{
		repo:   repo,
		engine: queryEngine,
		logger: logger,
	}
}

// SearchRoutes runs the search pipeline over the route fixture set
func (s *SearchService) SearchRoutes(req *models.SearchRequest) (*models.SearchResponse, error) {
	startTime := time.Now()

	// Validate request and apply defaults
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"from":    req.From,
		"to":      req.To,
		"sort_by": req.SortBy,
	}).Info("Processing search request")

	// Run the filter/sort pipeline
	results := s.engine.Query(s.repo.All(), req.From, req.To, *req.Criteria, req.SortBy)
	if len(results) > req.Limit {
		results = results[:req.Limit]
	}

	response := &models.SearchResponse{
		Status:      "success",
		Results:     results,
		ResultCount: len(results),
	}

	// Empty result is a valid outcome; the app shows a no-results state
	if len(results) == 0 {
		response.Message = fmt.Sprintf(
			"No buses found from %s to %s. Try adjusting your filters or travel date.",
			req.From, req.To,
		)
	} else {
		response.Message = fmt.Sprintf(
			"Found %d bus(es) from %s to %s",
			len(results), req.From, req.To,
		)
	}

	response.SearchTimeMs = time.Since(startTime).Milliseconds()

	s.logger.WithFields(logrus.Fields{
		"from":        req.From,
		"to":          req.To,
		"results":     len(results),
		"response_ms": response.SearchTimeMs,
	}).Info("Search completed")

	return response, nil
}

// PopularRoutes returns frequently travelled route pairs for quick selection,
// counted from the fixture set
func (s *SearchService) PopularRoutes(limit int) []models.PopularRoute {
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	counts := make(map[[2]string]int)
	var order [][2]string
	for _, route := range s.repo.All() {
		pair := [2]string{route.Origin, route.Destination}
		if counts[pair] == 0 {
			order = append(order, pair)
		}
		counts[pair]++
	}

	popular := make([]models.PopularRoute, 0, len(order))
	for _, pair := range order {
		popular = append(popular, models.PopularRoute{
			From:       pair[0],
			To:         pair[1],
			RouteCount: counts[pair],
		})
	}

	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].RouteCount > popular[j].RouteCount
	})

	if len(popular) > limit {
		popular = popular[:limit]
	}
	return popular
}

// PlaceAutocomplete returns origin/destination suggestions for the search
// screen's typeahead. Terms shorter than two characters return nothing.
func (s *SearchService) PlaceAutocomplete(searchTerm string, limit int) []models.PlaceSuggestion {
	if len(searchTerm) < 2 {
		return []models.PlaceSuggestion{}
	}

	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	term := strings.ToLower(searchTerm)
	counts := make(map[string]int)
	var order []string
	add := func(name string) {
		if !strings.Contains(strings.ToLower(name), term) {
			return
		}
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}
	for _, route := range s.repo.All() {
		add(route.Origin)
		add(route.Destination)
	}

	suggestions := make([]models.PlaceSuggestion, 0, len(order))
	for _, name := range order {
		suggestions = append(suggestions, models.PlaceSuggestion{
			Name:       name,
			RouteCount: counts[name],
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].RouteCount > suggestions[j].RouteCount
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
