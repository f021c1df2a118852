package usecase

import (
	"context"

	"ridingcourse/internal/deeplink"
)

// Coordinate represents a geographic coordinate
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PathEstimate is the straight-line estimate of a route through its points.
type PathEstimate struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
	SpeedKmh    float64 `json:"speed_kmh"`
}

// RoutingUsecase estimates length and travel time of an ordered point list.
type RoutingUsecase interface {
	// EstimatePath sums the haversine legs between consecutive points and derives
	// a duration from the modality's average speed.
	EstimatePath(ctx context.Context, points []Coordinate, modality deeplink.Modality) (*PathEstimate, error)
}
