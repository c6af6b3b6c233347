package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a confirmed seat reservation on a route
type Booking struct {
	ID          uuid.UUID     `json:"id"`
	PassengerID string        `json:"passenger_id"`
	RouteID     string        `json:"route_id"`
	TravelDate  string        `json:"travel_date,omitempty"`
	SeatNumbers []string      `json:"seat_numbers"`
	TotalFare   int           `json:"total_fare"` // LKR
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// StartSessionRequest opens a seat-selection session for a route
type StartSessionRequest struct {
	RouteID    string `json:"route_id" binding:"required"`
	Passengers int    `json:"passengers" binding:"required,min=1"`
	TravelDate string `json:"travel_date"`
}
