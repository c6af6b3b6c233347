package models

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus represents where a ticket sits relative to travel
type TicketStatus string

const (
	TicketStatusUpcoming  TicketStatus = "upcoming"
	TicketStatusCompleted TicketStatus = "completed"
	TicketStatusCancelled TicketStatus = "cancelled"
)

// Ticket is the passenger-facing view of a confirmed booking, joined with
// route details for display and e-ticket generation
type Ticket struct {
	ID            uuid.UUID    `json:"id"` // same as the booking ID
	PassengerID   string       `json:"passenger_id"`
	RouteID       string       `json:"route_id"`
	Origin        string       `json:"origin"`
	Destination   string       `json:"destination"`
	DepartureTime string       `json:"departure_time"`
	TravelDate    string       `json:"travel_date,omitempty"`
	OperatorName  string       `json:"operator_name"`
	BusType       string       `json:"bus_type"`
	SeatNumbers   []string     `json:"seat_numbers"`
	TotalFare     int          `json:"total_fare"`
	Status        TicketStatus `json:"status"`
	IssuedAt      time.Time    `json:"issued_at"`
}
