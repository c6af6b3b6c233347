package models

import "time"

// RoutePath holds the map coordinates for a route's endpoints. Loaded from
// the fixture set alongside the routes themselves.
type RoutePath struct {
	RouteID        string  `json:"route_id"`
	OriginLat      float64 `json:"origin_lat"`
	OriginLng      float64 `json:"origin_lng"`
	DestinationLat float64 `json:"destination_lat"`
	DestinationLng float64 `json:"destination_lng"`
}

// BusPosition is a synthetic live-tracking snapshot for the map screen.
// Positions are interpolated and jittered, never sourced from a real bus.
type BusPosition struct {
	RouteID         string    `json:"route_id"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	BearingDeg      float64   `json:"bearing_deg"`
	SpeedKmh        float64   `json:"speed_kmh"`
	ProgressPercent float64   `json:"progress_percent"`
	DistanceLeftKm  float64   `json:"distance_left_km"`
	EtaMinutes      int       `json:"eta_minutes"`
	UpdatedAt       time.Time `json:"updated_at"`
}
