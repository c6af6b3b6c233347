package models

import (
	"time"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/seatmap"
)

// SeatSessionView is the booking screen's snapshot of a seat-selection
// session: the full layout plus selection progress and pricing.
type SeatSessionView struct {
	SessionID      string         `json:"session_id"`
	RouteID        string         `json:"route_id"`
	TravelDate     string         `json:"travel_date,omitempty"`
	Passengers     int            `json:"passengers"`
	Seats          []seatmap.Seat `json:"seats"`
	SelectedSeats  []string       `json:"selected_seats"`
	TotalPrice     int            `json:"total_price"`
	IsComplete     bool           `json:"is_complete"`
	AvailableSeats int            `json:"available_seats"`
	CreatedAt      time.Time      `json:"created_at"`
}
