package services

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/golang/geo/s2"
	"github.com/sirupsen/logrus"

	"github.com/Busmate-Lk/passenger-app-sub000/internal/engine"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/models"
	"github.com/Busmate-Lk/passenger-app-sub000/internal/repository"
)

// earthRadiusMeters is the mean Earth radius used for great-circle math
const earthRadiusMeters = 6371000.0

// metersPerDegree approximates one degree of latitude for jitter conversion
const metersPerDegree = 111320.0

// TrackingService produces synthetic live-tracking snapshots for the map
// screen. Positions are interpolated along the route's endpoint coordinates
// from the departure clock, then jittered; nothing here reflects a real bus.
type TrackingService struct {
	routeRepo    *repository.RouteRepository
	jitterMeters float64
	logger       *logrus.Logger

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewTrackingService creates a new tracking service
func NewTrackingService(routeRepo *repository.RouteRepository, jitterMeters float64, logger *logrus.Logger) *TrackingService {
	return &TrackingService{
		routeRepo:    routeRepo,
		jitterMeters: jitterMeters,
		logger:       logger,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		now:          time.Now,
	}
}

// Position returns the simulated position of the bus serving the route
func (s *TrackingService) Position(routeID string) (*models.BusPosition, error) {
	route, err := s.routeRepo.GetByID(routeID)
	if err != nil {
		return nil, err
	}
	path, err := s.routeRepo.PathByRouteID(routeID)
	if err != nil {
		return nil, err
	}

	durationMin := engine.TripMinutes(route.Duration)
	if durationMin <= 0 {
		durationMin = 60
	}

	progress := s.tripProgress(route.DepartureTime, durationMin)

	totalKm := haversineKm(path.OriginLat, path.OriginLng, path.DestinationLat, path.DestinationLng)
	lat := path.OriginLat + (path.DestinationLat-path.OriginLat)*progress
	lng := path.OriginLng + (path.DestinationLng-path.OriginLng)*progress

	s.mu.Lock()
	lat += s.jitterDegrees()
	lng += s.jitterDegrees()
	s.mu.Unlock()

	remainingKm := totalKm * (1 - progress)
	speedKmh := totalKm / (float64(durationMin) / 60)
	etaMinutes := 0
	if speedKmh > 0 {
		etaMinutes = int(math.Round(remainingKm / speedKmh * 60))
	}

	return &models.BusPosition{
		RouteID:         routeID,
		Latitude:        lat,
		Longitude:       lng,
		BearingDeg:      bearingDeg(path.OriginLat, path.OriginLng, path.DestinationLat, path.DestinationLng),
		SpeedKmh:        speedKmh,
		ProgressPercent: math.Round(progress * 100),
		DistanceLeftKm:  math.Round(remainingKm*10) / 10,
		EtaMinutes:      etaMinutes,
		UpdatedAt:       s.now(),
	}, nil
}

// tripProgress maps the wall clock onto a [0.02, 0.98] fraction of the trip.
// Outside the scheduled window the trip wraps around, so the map screen
// always has a bus to draw.
func (s *TrackingService) tripProgress(departure string, durationMin int) float64 {
	dep, err := time.Parse("15:04", departure)
	if err != nil {
		dep = time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	now := s.now()
	minutesNow := now.Hour()*60 + now.Minute()
	minutesDep := dep.Hour()*60 + dep.Minute()

	elapsed := minutesNow - minutesDep
	for elapsed < 0 {
		elapsed += 24 * 60
	}
	elapsed = elapsed % durationMin

	progress := float64(elapsed) / float64(durationMin)
	return math.Min(0.98, math.Max(0.02, progress))
}

func (s *TrackingService) jitterDegrees() float64 {
	if s.jitterMeters <= 0 {
		return 0
	}
	return (s.rng.Float64()*2 - 1) * s.jitterMeters / metersPerDegree
}

// haversineKm returns the great-circle distance between two points in km
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * earthRadiusMeters / 1000
}

// bearingDeg returns the initial bearing from point 1 to point 2 in degrees,
// where 0 is North and 90 is East
func bearingDeg(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lonDiff := (lon2 - lon1) * math.Pi / 180

	y := math.Sin(lonDiff) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) - math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(lonDiff)
	bearing := math.Atan2(y, x) * 180 / math.Pi

	return math.Mod(bearing+360, 360)
}
