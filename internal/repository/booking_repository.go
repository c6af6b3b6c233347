package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
)

// BookingRepository keeps confirmed bookings in memory
type BookingRepository struct {
	mu          sync.Mutex
	byID        map[uuid.UUID]models.Booking
	byPassenger map[string][]uuid.UUID
}

// NewBookingRepository creates a booking repository
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{
		byID:        make(map[uuid.UUID]models.Booking),
		byPassenger: make(map[string][]uuid.UUID),
	}
}

// Create stores a new booking
func (r *BookingRepository) Create(booking models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[booking.ID] = booking
	r.byPassenger[booking.PassengerID] = append(r.byPassenger[booking.PassengerID], booking.ID)
}

// GetByID returns the booking with the given ID
func (r *BookingRepository) GetByID(id uuid.UUID) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &booking, nil
}

// ListByPassenger returns the passenger's bookings, newest first
func (r *BookingRepository) ListByPassenger(passengerID string) []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.byPassenger[passengerID]
	bookings := make([]models.Booking, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		bookings = append(bookings, r.byID[ids[i]])
	}
	return bookings
}

// Cancel marks the booking cancelled. Returns the updated booking.
func (r *BookingRepository) Cancel(id uuid.UUID) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	booking.Status = models.BookingStatusCancelled
	r.byID[id] = booking
	return &booking, nil
}
