package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/repository"
)

func newTicketFixture() (*TicketService, *repository.BookingRepository, *repository.WalletRepository) {
	routeRepo := repository.NewRouteRepository([]models.Route{
		{ID: "RT-1", Origin: "Colombo Fort", Destination: "Kandy", DepartureTime: "06:30", Duration: "3h 15m", BusType: "luxury", OperatorName: "SLTB Express"},
	}, nil)
	bookingRepo := repository.NewBookingRepository()
	walletRepo := repository.NewWalletRepository(2500)
	return NewTicketService(bookingRepo, routeRepo, walletRepo, testLogger()), bookingRepo, walletRepo
}

func seedBooking(repo *repository.BookingRepository, travelDate string, status models.BookingStatus) models.Booking {
	booking := models.Booking{
		ID:          uuid.New(),
		PassengerID: "guest",
		RouteID:     "RT-1",
		TravelDate:  travelDate,
		SeatNumbers: []string{"C1", "C2"},
		TotalFare:   2400,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	repo.Create(booking)
	return booking
}

func TestTicketByID_JoinsRouteDetails(t *testing.T) {
	svc, bookingRepo, _ := newTicketFixture()
	booking := seedBooking(bookingRepo, "2030-01-15", models.BookingStatusConfirmed)

	ticket, err := svc.TicketByID(booking.ID)
	require.NoError(t, err)

	assert.Equal(t, booking.ID, ticket.ID)
	assert.Equal(t, "Colombo Fort", ticket.Origin)
	assert.Equal(t, "Kandy", ticket.Destination)
	assert.Equal(t, "06:30", ticket.DepartureTime)
	assert.Equal(t, "SLTB Express", ticket.OperatorName)
	assert.Equal(t, []string{"C1", "C2"}, ticket.SeatNumbers)
	assert.Equal(t, 2400, ticket.TotalFare)
	assert.Equal(t, models.TicketStatusUpcoming, ticket.Status)
}

func TestTicketByID_StatusDerivation(t *testing.T) {
	svc, bookingRepo, _ := newTicketFixture()

	past := seedBooking(bookingRepo, "2020-01-01", models.BookingStatusConfirmed)
	cancelled := seedBooking(bookingRepo, "2030-01-01", models.BookingStatusCancelled)

	ticket, err := svc.TicketByID(past.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusCompleted, ticket.Status)

	ticket, err = svc.TicketByID(cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusCancelled, ticket.Status)
}

func TestTicketByID_NotFound(t *testing.T) {
	svc, _, _ := newTicketFixture()

	_, err := svc.TicketByID(uuid.New())
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}

func TestTickets_NewestFirst(t *testing.T) {
	svc, bookingRepo, _ := newTicketFixture()

	first := seedBooking(bookingRepo, "2030-01-01", models.BookingStatusConfirmed)
	second := seedBooking(bookingRepo, "2030-02-01", models.BookingStatusConfirmed)

	tickets := svc.Tickets("guest")
	require.Len(t, tickets, 2)
	assert.Equal(t, second.ID, tickets[0].ID)
	assert.Equal(t, first.ID, tickets[1].ID)

	assert.Empty(t, svc.Tickets("someone-else"))
}

func TestTicketPDF(t *testing.T) {
	svc, bookingRepo, _ := newTicketFixture()
	booking := seedBooking(bookingRepo, "2030-01-15", models.BookingStatusConfirmed)

	data, filename, err := svc.TicketPDF(booking.ID)
	require.NoError(t, err)

	assert.Equal(t, "eticket-"+booking.ID.String()+".pdf", filename)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
}

func TestTicketPDF_NotFound(t *testing.T) {
	svc, _, _ := newTicketFixture()

	_, _, err := svc.TicketPDF(uuid.New())
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}

func TestCancel_RefundsFare(t *testing.T) {
	svc, bookingRepo, walletRepo := newTicketFixture()
	booking := seedBooking(bookingRepo, "2030-01-15", models.BookingStatusConfirmed)

	ticket, err := svc.Cancel(booking.ID)
	require.NoError(t, err)

	assert.Equal(t, models.TicketStatusCancelled, ticket.Status)
	assert.Equal(t, 2500+2400, walletRepo.Get("guest").Balance)

	history := walletRepo.Transactions("guest")
	require.NotEmpty(t, history)
	assert.Equal(t, models.TransactionCredit, history[0].Type)
	assert.Equal(t, 2400, history[0].Amount)
	assert.Contains(t, history[0].Description, "Refund")

	// The booking itself is marked cancelled
	stored, err := bookingRepo.GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)
}

func TestCancel_RefusesSecondCancel(t *testing.T) {
	svc, bookingRepo, walletRepo := newTicketFixture()
	booking := seedBooking(bookingRepo, "2030-01-15", models.BookingStatusConfirmed)

	_, err := svc.Cancel(booking.ID)
	require.NoError(t, err)

	_, err = svc.Cancel(booking.ID)
	assert.ErrorIs(t, err, ErrTicketNotCancellable)

	// No double refund
	assert.Equal(t, 2500+2400, walletRepo.Get("guest").Balance)
}

func TestCancel_RefusesCompletedTicket(t *testing.T) {
	svc, bookingRepo, walletRepo := newTicketFixture()
	booking := seedBooking(bookingRepo, "2020-01-01", models.BookingStatusConfirmed)

	_, err := svc.Cancel(booking.ID)
	assert.ErrorIs(t, err, ErrTicketNotCancellable)
	assert.Equal(t, 2500, walletRepo.Get("guest").Balance)
}

func TestCancel_NotFound(t *testing.T) {
	svc, _, _ := newTicketFixture()

	_, err := svc.Cancel(uuid.New())
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}
