package seatmap

import "fmt"

// SeatMap holds the generated layout and the passenger's in-progress
// selection for one booking session. It is owned by a single session and is
// discarded with it; nothing is persisted.
type SeatMap struct {
	seats          []Seat
	index          map[string]int
	selection      []string // ordered seat IDs
	passengerCount int
}

// New generates a seat map from the template for the given passenger count.
func New(template LayoutTemplate, passengerCount int) (*SeatMap, error) {
	if passengerCount < 1 {
		return nil, fmt.Errorf("passenger count must be at least 1, got %d", passengerCount)
	}

	seats := template.Generate()
	index := make(map[string]int, len(seats))
	for i, seat := range seats {
		index[seat.ID] = i
	}

	return &SeatMap{
		seats:          seats,
		index:          index,
		selection:      []string{},
		passengerCount: passengerCount,
	}, nil
}

// Select toggles the seat with the given ID and reports whether the selection
// changed. All failure modes are silent no-ops: unknown IDs, the driver
// pseudo-seat, occupied and reserved seats, and selecting past the passenger
// count. Priority seats toggle like available ones.
func (m *SeatMap) Select(seatID string) bool {
	i, ok := m.index[seatID]
	if !ok || seatID == DriverSeatID {
		return false
	}

	switch m.seats[i].Status {
	case StatusOccupied, StatusReserved:
		return false
	}

	if pos := m.selectionIndex(seatID); pos >= 0 {
		m.selection = append(m.selection[:pos], m.selection[pos+1:]...)
		return true
	}

	if len(m.selection) >= m.passengerCount {
		return false // capacity reached; UI surfaces this as a soft hint
	}

	m.selection = append(m.selection, seatID)
	return true
}

// IsSelected reports whether the seat is in the current selection set.
func (m *SeatMap) IsSelected(seatID string) bool {
	return m.selectionIndex(seatID) >= 0
}

// SelectedIDs returns the selected seat IDs in selection order.
func (m *SeatMap) SelectedIDs() []string {
	ids := make([]string, len(m.selection))
	copy(ids, m.selection)
	return ids
}

// Selected returns the selected seats in selection order, with status set to
// selected for display.
func (m *SeatMap) Selected() []Seat {
	seats := make([]Seat, 0, len(m.selection))
	for _, id := range m.selection {
		seat := m.seats[m.index[id]]
		seat.Status = StatusSelected
		seats = append(seats, seat)
	}
	return seats
}

// Seats returns a display copy of the full layout. Seats in the selection set
// are reported as selected; all others keep their generated status.
func (m *SeatMap) Seats() []Seat {
	seats := make([]Seat, len(m.seats))
	copy(seats, m.seats)
	for _, id := range m.selection {
		seats[m.index[id]].Status = StatusSelected
	}
	return seats
}

// TotalPrice returns the sum of the selected seats' prices.
func (m *SeatMap) TotalPrice() int {
	total := 0
	for _, id := range m.selection {
		total += m.seats[m.index[id]].Price
	}
	return total
}

// IsComplete reports whether the selection has one seat per passenger. It
// gates the continue-to-payment action on the booking screen.
func (m *SeatMap) IsComplete() bool {
	return len(m.selection) == m.passengerCount
}

// PassengerCount returns the capacity bound for the selection set.
func (m *SeatMap) PassengerCount() int {
	return m.passengerCount
}

// AvailableCount returns the number of seats a passenger could still select,
// counting priority seats and excluding the current selection.
func (m *SeatMap) AvailableCount() int {
	count := 0
	for _, seat := range m.seats {
		if seat.ID == DriverSeatID {
			continue
		}
		if seat.Status == StatusAvailable || seat.Status == StatusPriority {
			if !m.IsSelected(seat.ID) {
				count++
			}
		}
	}
	return count
}

func (m *SeatMap) selectionIndex(seatID string) int {
	for i, id := range m.selection {
		if id == seatID {
			return i
		}
	}
	return -1
}
