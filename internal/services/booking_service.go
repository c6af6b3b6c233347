package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/repository"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/seatmap"
)

var (
	// ErrSessionNotFound indicates no seat-selection session exists with the given ID
	ErrSessionNotFound = errors.New("seat selection session not found")

	// ErrSelectionIncomplete indicates confirm was called before one seat per
	// passenger was selected
	ErrSelectionIncomplete = errors.New("seat selection is not complete")
)

// seatSession pairs a seat map with the booking context it was opened for.
// Sessions live only in memory and are discarded on confirm or abandon.
type seatSession struct {
	id          uuid.UUID
	passengerID string
	routeID     string
	travelDate  string
	seatMap     *seatmap.SeatMap
	createdAt   time.Time
}

// BookingService manages seat-selection sessions and confirms them into
// bookings, debiting the passenger's wallet
type BookingService struct {
	routeRepo   *repository.RouteRepository
	bookingRepo *repository.BookingRepository
	walletRepo  *repository.WalletRepository
	template    seatmap.LayoutTemplate
	logger      *logrus.Logger

	// mu guards sessions and every stored seat map. Each operation holds it
	// from lookup through mutation so a confirm cannot race a toggle, an
	// abandon, or a second confirm on the same session.
	mu       sync.Mutex
	sessions map[uuid.UUID]*seatSession
}

// NewBookingService creates a new booking service
func NewBookingService(
	routeRepo *repository.RouteRepository,
	bookingRepo *repository.BookingRepository,
	walletRepo *repository.WalletRepository,
	template seatmap.LayoutTemplate,
	logger *logrus.Logger,
) *BookingService {
	return &BookingService{
		routeRepo:   routeRepo,
		bookingRepo: bookingRepo,
		walletRepo:  walletRepo,
		template:    template,
		logger:      logger,
		sessions:    make(map[uuid.UUID]*seatSession),
	}
}

// StartSession opens a seat-selection session for a route
func (s *BookingService) StartSession(passengerID string, req *models.StartSessionRequest) (*models.SeatSessionView, error) {
	route, err := s.routeRepo.GetByID(req.RouteID)
	if err != nil {
		return nil, err
	}

	seatMap, err := seatmap.New(s.template, req.Passengers)
	if err != nil {
		return nil, models.ErrInvalidInput(err.Error())
	}

	session := &seatSession{
		id:          uuid.New(),
		passengerID: passengerID,
		routeID:     route.ID,
		travelDate:  req.TravelDate,
		seatMap:     seatMap,
		createdAt:   time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	view := s.view(session)
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"session_id": session.id,
		"route_id":   route.ID,
		"passengers": req.Passengers,
	}).Info("Seat selection session started")

	return view, nil
}

// GetSession returns the current snapshot of a session
func (s *BookingService) GetSession(sessionID uuid.UUID) (*models.SeatSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.view(session), nil
}

// ToggleSeat toggles a seat in the session's selection. The returned flag
// reports whether the selection changed; blocked seats and the capacity bound
// are silent no-ops per the seat map contract.
func (s *BookingService) ToggleSeat(sessionID uuid.UUID, seatID string) (*models.SeatSessionView, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, false, ErrSessionNotFound
	}

	changed := session.seatMap.Select(seatID)
	if !changed {
		s.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"seat_id":    seatID,
		}).Debug("Seat toggle was a no-op")
	}

	return s.view(session), changed, nil
}

// Confirm turns a complete selection into a booking, debiting the wallet.
// The session is discarded on success, so a concurrent second confirm of the
// same session fails with ErrSessionNotFound instead of charging twice.
func (s *BookingService) Confirm(sessionID uuid.UUID) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if !session.seatMap.IsComplete() {
		return nil, ErrSelectionIncomplete
	}

	route, err := s.routeRepo.GetByID(session.routeID)
	if err != nil {
		return nil, err
	}

	seatNumbers := session.seatMap.SelectedIDs()
	totalFare := session.seatMap.TotalPrice()

	description := fmt.Sprintf("Booking %s → %s, seats %s",
		route.Origin, route.Destination, strings.Join(seatNumbers, ", "))
	if _, _, err := s.walletRepo.Debit(session.passengerID, totalFare, description); err != nil {
		return nil, fmt.Errorf("failed to charge wallet: %w", err)
	}

	booking := models.Booking{
		ID:          session.id,
		PassengerID: session.passengerID,
		RouteID:     session.routeID,
		TravelDate:  session.travelDate,
		SeatNumbers: seatNumbers,
		TotalFare:   totalFare,
		Status:      models.BookingStatusConfirmed,
		CreatedAt:   time.Now(),
	}
	s.bookingRepo.Create(booking)
	delete(s.sessions, session.id)

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"route_id":   booking.RouteID,
		"seats":      seatNumbers,
		"total_fare": totalFare,
	}).Info("Booking confirmed")

	return &booking, nil
}

// Abandon discards a session without booking
func (s *BookingService) Abandon(sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// view builds the booking screen snapshot. Callers must hold s.mu.
func (s *BookingService) view(session *seatSession) *models.SeatSessionView {
	return &models.SeatSessionView{
		SessionID:      session.id.String(),
		RouteID:        session.routeID,
		TravelDate:     session.travelDate,
		Passengers:     session.seatMap.PassengerCount(),
		Seats:          session.seatMap.Seats(),
		SelectedSeats:  session.seatMap.SelectedIDs(),
		TotalPrice:     session.seatMap.TotalPrice(),
		IsComplete:     session.seatMap.IsComplete(),
		AvailableSeats: session.seatMap.AvailableCount(),
		CreatedAt:      session.createdAt,
	}
}
