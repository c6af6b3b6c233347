package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMap(t *testing.T, passengers int) *SeatMap {
	t.Helper()
	m, err := New(DefaultTemplate(), passengers)
	require.NoError(t, err)
	return m
}

func seatByID(t *testing.T, seats []Seat, id string) Seat {
	t.Helper()
	for _, s := range seats {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("seat %s not found", id)
	return Seat{}
}

func TestNew_RejectsNonPositivePassengerCount(t *testing.T) {
	_, err := New(DefaultTemplate(), 0)
	assert.Error(t, err)

	_, err = New(DefaultTemplate(), -3)
	assert.Error(t, err)
}

func TestGenerate_LayoutShape(t *testing.T) {
	template := DefaultTemplate()
	seats := template.Generate()

	// 9 rows of 4 plus a 5-seat rear bench, plus the driver pseudo-seat
	assert.Equal(t, 41, template.TotalSeats())
	require.Len(t, seats, 42)

	assert.Equal(t, DriverSeatID, seats[0].ID)
	assert.Equal(t, StatusOccupied, seats[0].Status)

	// Window/aisle assignment in a regular row
	assert.Equal(t, ClassWindow, seatByID(t, seats, "A1").Class)
	assert.Equal(t, ClassAisle, seatByID(t, seats, "A2").Class)
	assert.Equal(t, ClassAisle, seatByID(t, seats, "A3").Class)
	assert.Equal(t, ClassWindow, seatByID(t, seats, "A4").Class)

	// Rear bench: windows at the ends, middles between
	assert.Equal(t, ClassWindow, seatByID(t, seats, "J1").Class)
	assert.Equal(t, ClassMiddle, seatByID(t, seats, "J2").Class)
	assert.Equal(t, ClassMiddle, seatByID(t, seats, "J3").Class)
	assert.Equal(t, ClassMiddle, seatByID(t, seats, "J4").Class)
	assert.Equal(t, ClassWindow, seatByID(t, seats, "J5").Class)

	// Price tiers
	assert.Equal(t, 1200, seatByID(t, seats, "E2").Price)
	assert.Equal(t, 950, seatByID(t, seats, "J4").Price)
}

func TestGenerate_IsDeterministic(t *testing.T) {
	template := DefaultTemplate()
	assert.Equal(t, template.Generate(), template.Generate())
}

func TestGenerate_ExclusionLists(t *testing.T) {
	seats := DefaultTemplate().Generate()

	for _, id := range []string{"A2", "B1", "C3", "E4", "G1", "J3"} {
		assert.Equal(t, StatusOccupied, seatByID(t, seats, id).Status, id)
	}
	for _, id := range []string{"B4", "F2", "H3"} {
		assert.Equal(t, StatusReserved, seatByID(t, seats, id).Status, id)
	}
	for _, id := range []string{"A1", "A4"} {
		assert.Equal(t, StatusPriority, seatByID(t, seats, id).Status, id)
	}
	assert.Equal(t, StatusAvailable, seatByID(t, seats, "D1").Status)
}

func TestSelect_ToggleSemantics(t *testing.T) {
	m := newMap(t, 2)

	assert.True(t, m.Select("C1"))
	assert.True(t, m.IsSelected("C1"))
	assert.Equal(t, []string{"C1"}, m.SelectedIDs())

	// Second toggle deselects
	assert.True(t, m.Select("C1"))
	assert.False(t, m.IsSelected("C1"))
	assert.Empty(t, m.SelectedIDs())
}

func TestSelect_BlockedSeatsAreNoOps(t *testing.T) {
	m := newMap(t, 4)

	assert.False(t, m.Select("A2"), "occupied")
	assert.False(t, m.Select("B4"), "reserved")
	assert.False(t, m.Select(DriverSeatID), "driver")
	assert.False(t, m.Select("Z9"), "unknown seat")
	assert.Empty(t, m.SelectedIDs())
}

func TestSelect_CapacityBound(t *testing.T) {
	m := newMap(t, 2)

	assert.True(t, m.Select("A1"))
	assert.True(t, m.Select("A4"))
	require.True(t, m.IsComplete())

	// Third seat is silently refused; selection unchanged
	assert.False(t, m.Select("B2"))
	assert.Equal(t, []string{"A1", "A4"}, m.SelectedIDs())

	// Deselecting reopens capacity
	assert.True(t, m.Select("A1"))
	assert.False(t, m.IsComplete())
	assert.True(t, m.Select("B2"))
	assert.Equal(t, []string{"A4", "B2"}, m.SelectedIDs())
}

func TestSelect_PrioritySeatsAreSelectable(t *testing.T) {
	m := newMap(t, 1)

	assert.True(t, m.Select("A1"))
	assert.Equal(t, StatusSelected, seatByID(t, m.Seats(), "A1").Status)

	// Deselecting restores priority, not available
	assert.True(t, m.Select("A1"))
	assert.Equal(t, StatusPriority, seatByID(t, m.Seats(), "A1").Status)
}

func TestSeats_SelectionOverlayDoesNotLeak(t *testing.T) {
	m := newMap(t, 2)
	m.Select("D2")

	// The display copy shows the overlay
	assert.Equal(t, StatusSelected, seatByID(t, m.Seats(), "D2").Status)

	// Mutating the copy does not touch the map
	seats := m.Seats()
	for i := range seats {
		seats[i].Status = StatusOccupied
	}
	assert.True(t, m.Select("D2"))
	assert.False(t, m.IsSelected("D2"))
}

func TestTotalPrice(t *testing.T) {
	m := newMap(t, 3)

	m.Select("C1") // regular, 1200
	m.Select("J2") // rear bench, 950
	assert.Equal(t, 2150, m.TotalPrice())

	m.Select("C1")
	assert.Equal(t, 950, m.TotalPrice())

	m.Select("J2")
	assert.Equal(t, 0, m.TotalPrice())
}

func TestSelected_ReturnsSelectionOrder(t *testing.T) {
	m := newMap(t, 3)
	m.Select("H1")
	m.Select("B2")
	m.Select("J5")

	selected := m.Selected()
	require.Len(t, selected, 3)
	assert.Equal(t, "H1", selected[0].ID)
	assert.Equal(t, "B2", selected[1].ID)
	assert.Equal(t, "J5", selected[2].ID)
	for _, s := range selected {
		assert.Equal(t, StatusSelected, s.Status)
	}
}

func TestAvailableCount(t *testing.T) {
	m := newMap(t, 2)

	// 41 passenger seats minus 6 occupied minus 3 reserved
	assert.Equal(t, 32, m.AvailableCount())

	m.Select("A1")
	assert.Equal(t, 31, m.AvailableCount())

	m.Select("A1")
	assert.Equal(t, 32, m.AvailableCount())
}

func TestTwoPassengerScenario(t *testing.T) {
	m := newMap(t, 2)

	require.True(t, m.Select("A1"))
	require.True(t, m.Select("A4"))

	assert.True(t, m.IsComplete())
	assert.Equal(t, []string{"A1", "A4"}, m.SelectedIDs())
	assert.Equal(t, 2400, m.TotalPrice())

	// Any further selection is a no-op until a seat is released
	assert.False(t, m.Select("C2"))
	assert.Equal(t, []string{"A1", "A4"}, m.SelectedIDs())
}

func TestRowLabel(t *testing.T) {
	assert.Equal(t, "A", rowLabel(1))
	assert.Equal(t, "J", rowLabel(10))
	assert.Equal(t, "Z", rowLabel(26))
	assert.Equal(t, "AA", rowLabel(27))
}
