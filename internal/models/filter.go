package models

// MaxTicketPrice is the upper bound of the price filter slider, in LKR
const MaxTicketPrice = 100000

// TimeBucket is a named window of departure hours used by the filter modal
type TimeBucket string

const (
	BucketMorning   TimeBucket = "morning"   // 06:00 - 11:59
	BucketAfternoon TimeBucket = "afternoon" // 12:00 - 16:59
	BucketEvening   TimeBucket = "evening"   // 17:00 - 20:59
	BucketNight     TimeBucket = "night"     // 21:00 - 05:59
)

// Contains reports whether the given hour of day falls inside the bucket.
// The night bucket wraps around midnight.
func (b TimeBucket) Contains(hour int) bool {
	switch b {
	case BucketMorning:
		return hour >= 6 && hour < 12
	case BucketAfternoon:
		return hour >= 12 && hour < 17
	case BucketEvening:
		return hour >= 17 && hour < 21
	case BucketNight:
		return hour >= 21 || hour < 6
	}
	return false
}

// TimeBucketSelection is the departure-time filter state. Any matches every
// departure; an empty bucket list behaves the same way.
type TimeBucketSelection struct {
	Any     bool         `json:"any"`
	Buckets []TimeBucket `json:"buckets,omitempty"`
}

// AnyDepartureTime selects every departure time
func AnyDepartureTime() TimeBucketSelection {
	return TimeBucketSelection{Any: true}
}

// DepartureBuckets selects departures within the given buckets
func DepartureBuckets(buckets ...TimeBucket) TimeBucketSelection {
	return TimeBucketSelection{Buckets: buckets}
}

// Matches reports whether a departure at the given hour passes the filter
func (s TimeBucketSelection) Matches(hour int) bool {
	if s.Any || len(s.Buckets) == 0 {
		return true
	}
	for _, bucket := range s.Buckets {
		if bucket.Contains(hour) {
			return true
		}
	}
	return false
}

// BusTypeSelection is the bus-type filter state. All matches every type; an
// empty type list behaves the same way.
type BusTypeSelection struct {
	All   bool     `json:"all"`
	Types []string `json:"types,omitempty"`
}

// AllBusTypes selects every bus type
func AllBusTypes() BusTypeSelection {
	return BusTypeSelection{All: true}
}

// SelectedBusTypes selects only the given bus types
func SelectedBusTypes(types ...string) BusTypeSelection {
	return BusTypeSelection{Types: types}
}

// Matches reports whether the bus type passes the filter
func (s BusTypeSelection) Matches(busType string) bool {
	if s.All || len(s.Types) == 0 {
		return true
	}
	for _, t := range s.Types {
		if t == busType {
			return true
		}
	}
	return false
}

// FilterCriteria mirrors the filter modal state on the search screen
type FilterCriteria struct {
	PriceRange [2]int              `json:"price_range"` // [min, max], inclusive, LKR
	Departure  TimeBucketSelection `json:"departure"`
	BusTypes   BusTypeSelection    `json:"bus_types"`
	Operators  []string            `json:"operators,omitempty"` // operator IDs; empty means no restriction
	Amenities  []string            `json:"amenities,omitempty"` // every listed amenity is required
	TravelDate string              `json:"travel_date,omitempty"`
	ReturnDate string              `json:"return_date,omitempty"`
	Passengers int                 `json:"passengers"`
}

// DefaultFilterCriteria returns the filter state the search screen opens with
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		PriceRange: [2]int{0, MaxTicketPrice},
		Departure:  AnyDepartureTime(),
		BusTypes:   AllBusTypes(),
		Passengers: 1,
	}
}

// SortCriterion selects the ordering of search results
type SortCriterion string

const (
	SortDefault      SortCriterion = "default"
	SortCheapest     SortCriterion = "cheapest"
	SortFastest      SortCriterion = "fastest"
	SortHighestRated SortCriterion = "highest_rated"
)
