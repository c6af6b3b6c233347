// Package seatmap maintains the fixed seat layout of a bus and the
// passenger's in-progress seat selection for one booking session.
package seatmap

import "fmt"

// SeatClass describes the physical position of a seat within its row.
type SeatClass string

const (
	ClassWindow SeatClass = "window"
	ClassAisle  SeatClass = "aisle"
	ClassMiddle SeatClass = "middle"
)

// SeatStatus is the closed set of seat states shown on the booking screen.
// Occupied and reserved seats are immutable for the session. Priority seats
// are selectable but carry an accessibility advisory.
type SeatStatus string

const (
	StatusAvailable SeatStatus = "available"
	StatusOccupied  SeatStatus = "occupied"
	StatusReserved  SeatStatus = "reserved"
	StatusPriority  SeatStatus = "priority"
	StatusSelected  SeatStatus = "selected"
)

// DriverSeatID identifies the driver pseudo-seat. It is always occupied and
// never selectable.
const DriverSeatID = "DR"

// Seat represents one seat in the generated layout
type Seat struct {
	ID     string     `json:"id"`
	Number string     `json:"number"`
	Row    int        `json:"row"`
	Class  SeatClass  `json:"class"`
	Status SeatStatus `json:"status"`
	Price  int        `json:"price"` // LKR
}

// LayoutTemplate describes a bus layout: row counts, per-row seat counts and
// price tiers. Templates are fixed constants, not user-configurable.
type LayoutTemplate struct {
	Name             string
	RegularRows      int // rows of 4 seats in a 2+2 configuration
	RegularSeatPrice int
	RearRowSeats     int // single rear bench row
	RearSeatPrice    int
	// Pre-assigned seat IDs; everything else starts available.
	Occupied []string
	Reserved []string
	Priority []string
}

// DefaultTemplate is the standard 41-seat long-distance coach: nine 2+2 rows
// plus a five-seat rear bench, with a fixed exclusion list standing in for
// server-assigned seat states.
func DefaultTemplate() LayoutTemplate {
	return LayoutTemplate{
		Name:             "standard-coach-41",
		RegularRows:      9,
		RegularSeatPrice: 1200,
		RearRowSeats:     5,
		RearSeatPrice:    950,
		Occupied:         []string{"A2", "B1", "C3", "E4", "G1", "J3"},
		Reserved:         []string{"B4", "F2", "H3"},
		Priority:         []string{"A1", "A4"},
	}
}

// TotalSeats returns the passenger seat count for the template, excluding
// the driver pseudo-seat.
func (t LayoutTemplate) TotalSeats() int {
	return t.RegularRows*4 + t.RearRowSeats
}

// Generate builds the seat list for the template. Generation is deterministic:
// the same template always yields the same layout. The driver pseudo-seat is
// first, then regular rows front to back, then the rear bench.
func (t LayoutTemplate) Generate() []Seat {
	seats := make([]Seat, 0, t.TotalSeats()+1)

	seats = append(seats, Seat{
		ID:     DriverSeatID,
		Number: DriverSeatID,
		Row:    0,
		Class:  ClassAisle,
		Status: StatusOccupied,
	})

	// Regular rows: positions 1 and 4 are window, 2 and 3 are aisle.
	for row := 1; row <= t.RegularRows; row++ {
		label := rowLabel(row)
		for pos := 1; pos <= 4; pos++ {
			class := ClassAisle
			if pos == 1 || pos == 4 {
				class = ClassWindow
			}
			id := fmt.Sprintf("%s%d", label, pos)
			seats = append(seats, Seat{
				ID:     id,
				Number: id,
				Row:    row,
				Class:  class,
				Status: t.initialStatus(id),
				Price:  t.RegularSeatPrice,
			})
		}
	}

	// Rear bench: windows at both ends, middle seats between.
	rearRow := t.RegularRows + 1
	label := rowLabel(rearRow)
	for pos := 1; pos <= t.RearRowSeats; pos++ {
		class := ClassMiddle
		if pos == 1 || pos == t.RearRowSeats {
			class = ClassWindow
		}
		id := fmt.Sprintf("%s%d", label, pos)
		seats = append(seats, Seat{
			ID:     id,
			Number: id,
			Row:    rearRow,
			Class:  class,
			Status: t.initialStatus(id),
			Price:  t.RearSeatPrice,
		})
	}

	return seats
}

// initialStatus resolves a seat's starting status from the exclusion lists.
func (t LayoutTemplate) initialStatus(seatID string) SeatStatus {
	for _, id := range t.Occupied {
		if id == seatID {
			return StatusOccupied
		}
	}
	for _, id := range t.Reserved {
		if id == seatID {
			return StatusReserved
		}
	}
	for _, id := range t.Priority {
		if id == seatID {
			return StatusPriority
		}
	}
	return StatusAvailable
}

// rowLabel converts a row number to an alphabetic label (1->A, 2->B, etc.)
func rowLabel(row int) string {
	if row <= 0 {
		return "A"
	}
	if row <= 26 {
		return string(rune('A' + row - 1))
	}
	first := (row - 1) / 26
	second := (row - 1) % 26
	return string(rune('A'+first-1)) + string(rune('A'+second))
}
