package impl

import (
	"context"
	"math"

	"ridingcourse/config"
	"ridingcourse/internal/deeplink"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Average speeds used when the config does not override the car speed.
const (
	defaultCarSpeedKmh  = 40.0
	defaultBikeSpeedKmh = 15.0
	defaultWalkSpeedKmh = 4.5
)

type routingService struct {
	speeds map[deeplink.Modality]float64
}

// NewRoutingService creates the straight-line route estimator.
func NewRoutingService(cfg *config.Config) usecase.RoutingUsecase {
	carSpeed := defaultCarSpeedKmh
	if cfg != nil && cfg.Routing != nil && cfg.Routing.DefaultSpeedKmh > 0 {
		carSpeed = cfg.Routing.DefaultSpeedKmh
	}

	return &routingService{
		speeds: map[deeplink.Modality]float64{
			deeplink.ModalityCar:  carSpeed,
			deeplink.ModalityBike: defaultBikeSpeedKmh,
			deeplink.ModalityWalk: defaultWalkSpeedKmh,
		},
	}
}

// EstimatePath returns zero distance for fewer than two points.
func (s *routingService) EstimatePath(ctx context.Context, points []usecase.Coordinate, modality deeplink.Modality) (*usecase.PathEstimate, error) {
	speed, ok := s.speeds[modality]
	if !ok {
		speed = s.speeds[deeplink.ModalityCar]
	}

	line := make(orb.LineString, 0, len(points))
	for _, p := range points {
		if !isValidCoordinate(p) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("point coordinates out of range")
		}
		line = append(line, orb.Point{p.Lng, p.Lat})
	}

	distanceKm := 0.0
	if len(line) >= 2 {
		distanceKm = geo.LengthHaversine(line) / 1000
	}

	return &usecase.PathEstimate{
		DistanceKm:  math.Round(distanceKm*100) / 100,
		DurationMin: int(math.Round(distanceKm / speed * 60)),
		SpeedKmh:    speed,
	}, nil
}

// isValidCoordinate checks if a coordinate is within valid geographic bounds (Earth)
func isValidCoordinate(coord usecase.Coordinate) bool {
	// Reject NaN or infinities early
	if math.IsNaN(coord.Lat) || math.IsNaN(coord.Lng) ||
		math.IsInf(coord.Lat, 0) || math.IsInf(coord.Lng, 0) {
		return false
	}

	return coord.Lat >= -90 && coord.Lat <= 90 &&
		coord.Lng >= -180 && coord.Lng <= 180
}
