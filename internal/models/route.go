// Package models defines the domain types shared across the service layers.
package models

// BusType values used in the route fixture set
const (
	BusTypeNormal     = "normal"
	BusTypeSemiLuxury = "semi_luxury"
	BusTypeLuxury     = "luxury"
	BusTypeExpressway = "expressway"
)

// Route represents one scheduled bus service between two places
type Route struct {
	ID             string   `json:"id"`
	Origin         string   `json:"origin"`
	Destination    string   `json:"destination"`
	DepartureTime  string   `json:"departure_time"` // 24h clock, "HH:MM"
	Duration       string   `json:"duration"`       // display format, "3h 15m"
	Price          int      `json:"price"`          // LKR per seat
	Rating         float64  `json:"rating"`
	BusType        string   `json:"bus_type"`
	OperatorID     string   `json:"operator_id"`
	OperatorName   string   `json:"operator_name"`
	Amenities      []string `json:"amenities"`
	AvailableSeats int      `json:"available_seats"`
	TotalSeats     int      `json:"total_seats"`
}

// HasAmenity reports whether the route offers the given amenity
func (r *Route) HasAmenity(amenity string) bool {
	for _, a := range r.Amenities {
		if a == amenity {
			return true
		}
	}
	return false
}
