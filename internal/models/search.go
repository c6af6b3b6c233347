package models

// SearchRequest represents a passenger's route search query
type SearchRequest struct {
	From     string          `json:"from" binding:"required"` // Origin name (e.g., "Colombo Fort")
	To       string          `json:"to" binding:"required"`   // Destination name (e.g., "Kandy")
	Criteria *FilterCriteria `json:"criteria,omitempty"`      // Optional: filter modal state
	SortBy   SortCriterion   `json:"sort_by,omitempty"`       // Optional: result ordering
	Limit    int             `json:"limit,omitempty"`         // Optional: max results (default: 20)
}

// SearchResponse represents the search results returned to the passenger
type SearchResponse struct {
	Status       string  `json:"status"`  // "success" or "error"
	Message      string  `json:"message"` // Human-readable message
	Results      []Route `json:"results"`
	ResultCount  int     `json:"result_count"`
	SearchTimeMs int64   `json:"search_time_ms"`
}

// PopularRoute represents a frequently travelled route for quick selection
type PopularRoute struct {
	From       string `json:"from"`
	To         string `json:"to"`
	RouteCount int    `json:"route_count"` // Number of fixture routes on this pair
}

// PlaceSuggestion represents an origin/destination suggestion for autocomplete
type PlaceSuggestion struct {
	Name       string `json:"name"`
	RouteCount int    `json:"route_count"` // Number of routes touching this place
}

// Validate validates the search request and applies defaults
func (r *SearchRequest) Validate() error {
	if r.From == "" {
		return ErrInvalidInput("from location is required")
	}
	if r.To == "" {
		return ErrInvalidInput("to location is required")
	}

	if r.Criteria == nil {
		criteria := DefaultFilterCriteria()
		r.Criteria = &criteria
	}
	if r.Criteria.Passengers < 1 {
		return ErrInvalidInput("passenger count must be at least 1")
	}
	// An omitted price range deserializes to [0,0], which would filter out
	// every priced route; treat it as unbounded like the default criteria do.
	if r.Criteria.PriceRange == [2]int{0, 0} {
		r.Criteria.PriceRange[1] = MaxTicketPrice
	}
	if r.Criteria.PriceRange[0] > r.Criteria.PriceRange[1] {
		return ErrInvalidInput("price range minimum cannot exceed maximum")
	}

	if r.SortBy == "" {
		r.SortBy = SortDefault
	}
	switch r.SortBy {
	case SortDefault, SortCheapest, SortFastest, SortHighestRated:
	default:
		return ErrInvalidInput("unknown sort criterion: " + string(r.SortBy))
	}

	// Set default limit if not provided
	if r.Limit <= 0 {
		r.Limit = 20
	}
	// Cap maximum limit
	if r.Limit > 100 {
		r.Limit = 100
	}

	return nil
}

// ErrInvalidInput creates a validation error
func ErrInvalidInput(message string) error {
	return &ValidationError{Message: message}
}

// ValidationError represents a validation error
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
