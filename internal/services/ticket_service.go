package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"github.com/sirupsen/logrus"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/repository"
)

// ErrTicketNotCancellable indicates the ticket is already cancelled or the
// travel date has passed
var ErrTicketNotCancellable = errors.New("ticket can no longer be cancelled")

// TicketService builds passenger-facing tickets from bookings, handles
// cancellation and generates e-ticket PDFs
type TicketService struct {
	bookingRepo *repository.BookingRepository
	routeRepo   *repository.RouteRepository
	walletRepo  *repository.WalletRepository
	logger      *logrus.Logger
}

// NewTicketService creates a new ticket service
func NewTicketService(
	bookingRepo *repository.BookingRepository,
	routeRepo *repository.RouteRepository,
	walletRepo *repository.WalletRepository,
	logger *logrus.Logger,
) *TicketService {
	return &TicketService{
		bookingRepo: bookingRepo,
		routeRepo:   routeRepo,
		walletRepo:  walletRepo,
		logger:      logger,
	}
}

// Tickets returns the passenger's tickets, newest first
func (s *TicketService) Tickets(passengerID string) []models.Ticket {
	bookings := s.bookingRepo.ListByPassenger(passengerID)
	tickets := make([]models.Ticket, 0, len(bookings))
	for _, booking := range bookings {
		ticket, err := s.buildTicket(&booking)
		if err != nil {
			s.logger.WithError(err).WithField("booking_id", booking.ID).Warn("Skipping ticket with missing route")
			continue
		}
		tickets = append(tickets, *ticket)
	}
	return tickets
}

// TicketByID returns one ticket
func (s *TicketService) TicketByID(id uuid.UUID) (*models.Ticket, error) {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.buildTicket(booking)
}

// Cancel cancels an upcoming ticket and refunds the full fare to the
// passenger's wallet. Completed and already-cancelled tickets are refused.
func (s *TicketService) Cancel(id uuid.UUID) (*models.Ticket, error) {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	ticket, err := s.buildTicket(booking)
	if err != nil {
		return nil, err
	}
	if ticket.Status != models.TicketStatusUpcoming {
		return nil, ErrTicketNotCancellable
	}

	cancelled, err := s.bookingRepo.Cancel(id)
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Refund for cancelled booking %s → %s", ticket.Origin, ticket.Destination)
	wallet, _ := s.walletRepo.Credit(booking.PassengerID, booking.TotalFare, description)

	s.logger.WithFields(logrus.Fields{
		"booking_id": id,
		"refund":     booking.TotalFare,
		"balance":    wallet.Balance,
	}).Info("Ticket cancelled and fare refunded")

	return s.buildTicket(cancelled)
}

// TicketPDF renders the e-ticket as a PDF and returns the bytes plus a
// suggested filename
func (s *TicketService) TicketPDF(id uuid.UUID) ([]byte, string, error) {
	ticket, err := s.TicketByID(id)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Busmate E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUSMATE E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ticket No      : %s", ticket.ID),
		fmt.Sprintf("Route          : %s -> %s", ticket.Origin, ticket.Destination),
		fmt.Sprintf("Departure      : %s", ticket.DepartureTime),
		fmt.Sprintf("Travel Date    : %s", valueOr(ticket.TravelDate, "-")),
		fmt.Sprintf("Operator       : %s (%s)", ticket.OperatorName, ticket.BusType),
		fmt.Sprintf("Seats          : %s", strings.Join(ticket.SeatNumbers, ", ")),
		fmt.Sprintf("Total Fare     : Rs. %d.00", ticket.TotalFare),
		fmt.Sprintf("Status         : %s", ticket.Status),
		fmt.Sprintf("Issued         : %s", ticket.IssuedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Present this ticket with a valid ID when boarding.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render e-ticket PDF: %w", err)
	}

	filename := fmt.Sprintf("eticket-%s.pdf", ticket.ID)
	return buf.Bytes(), filename, nil
}

// buildTicket joins a booking with its route for display
func (s *TicketService) buildTicket(booking *models.Booking) (*models.Ticket, error) {
	route, err := s.routeRepo.GetByID(booking.RouteID)
	if err != nil {
		return nil, err
	}

	status := models.TicketStatusUpcoming
	switch {
	case booking.Status == models.BookingStatusCancelled:
		status = models.TicketStatusCancelled
	case booking.TravelDate != "" && booking.TravelDate < time.Now().Format("2006-01-02"):
		status = models.TicketStatusCompleted
	}

	return &models.Ticket{
		ID:            booking.ID,
		PassengerID:   booking.PassengerID,
		RouteID:       route.ID,
		Origin:        route.Origin,
		Destination:   route.Destination,
		DepartureTime: route.DepartureTime,
		TravelDate:    booking.TravelDate,
		OperatorName:  route.OperatorName,
		BusType:       route.BusType,
		SeatNumbers:   booking.SeatNumbers,
		TotalFare:     booking.TotalFare,
		Status:        status,
		IssuedAt:      booking.CreatedAt,
	}, nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
