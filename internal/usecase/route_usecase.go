package usecase

import (
	"context"

	"ridingcourse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// RoutePointInput is one point of a submitted route.
type RoutePointInput struct {
	Lat  float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng  float64 `json:"lng" validate:"gte=-180,lte=180"`
	Name string  `json:"name" validate:"max=200"`
	Type string  `json:"type" validate:"omitempty,oneof=start waypoint dest"`
}

// CreateRouteInput defines a new route.
type CreateRouteInput struct {
	Title           string            `json:"title" validate:"required,max=200"`
	Summary         string            `json:"summary" validate:"max=1000"`
	Region1         string            `json:"region1" validate:"max=100"`
	Region2         string            `json:"region2" validate:"max=100"`
	LengthKm        *float64          `json:"length_km" validate:"omitempty,gte=0"`
	DurationMin     *int              `json:"duration_min" validate:"omitempty,gte=0"`
	StarsScenery    int               `json:"stars_scenery" validate:"omitempty,min=1,max=5"`
	StarsDifficulty int               `json:"stars_difficulty" validate:"omitempty,min=1,max=5"`
	Surface         string            `json:"surface" validate:"omitempty,oneof=unknown good rough"`
	Traffic         string            `json:"traffic" validate:"omitempty,oneof=unknown low medium high"`
	Speedbump       int               `json:"speedbump" validate:"min=0,max=5"`
	Enforcement     int               `json:"enforcement" validate:"min=0,max=5"`
	Signal          int               `json:"signal" validate:"min=0,max=5"`
	TagsBitmask     int64             `json:"tags_bitmask" validate:"gte=0"`
	OpenURL         string            `json:"open_url" validate:"required,max=2048"`
	NmapURL         string            `json:"nmap_url" validate:"max=2048"`
	Modality        string            `json:"modality" validate:"omitempty,oneof=car walk bike"`
	Points          []RoutePointInput `json:"points" validate:"max=100,dive"`
}

// UpdateRouteInput is a partial update; nil fields are left unchanged.
// Points replaces every stored point when not nil.
type UpdateRouteInput struct {
	Title           *string            `json:"title" validate:"omitempty,min=1,max=200"`
	Summary         *string            `json:"summary" validate:"omitempty,max=1000"`
	Region1         *string            `json:"region1" validate:"omitempty,max=100"`
	Region2         *string            `json:"region2" validate:"omitempty,max=100"`
	LengthKm        *float64           `json:"length_km" validate:"omitempty,gte=0"`
	DurationMin     *int               `json:"duration_min" validate:"omitempty,gte=0"`
	StarsScenery    *int               `json:"stars_scenery" validate:"omitempty,min=1,max=5"`
	StarsDifficulty *int               `json:"stars_difficulty" validate:"omitempty,min=1,max=5"`
	Surface         *string            `json:"surface" validate:"omitempty,oneof=unknown good rough"`
	Traffic         *string            `json:"traffic" validate:"omitempty,oneof=unknown low medium high"`
	Speedbump       *int               `json:"speedbump" validate:"omitempty,min=0,max=5"`
	Enforcement     *int               `json:"enforcement" validate:"omitempty,min=0,max=5"`
	Signal          *int               `json:"signal" validate:"omitempty,min=0,max=5"`
	TagsBitmask     *int64             `json:"tags_bitmask" validate:"omitempty,gte=0"`
	OpenURL         *string            `json:"open_url" validate:"omitempty,min=1,max=2048"`
	NmapURL         *string            `json:"nmap_url" validate:"omitempty,max=2048"`
	Points          *[]RoutePointInput `json:"points" validate:"omitempty,max=100,dive"`
}

// ListRoutesInput filters and pages a route listing.
type ListRoutesInput struct {
	Region1 string `query:"region1"`
	Tag     int64  `query:"tag"`
	Sort    string `query:"sort" validate:"omitempty,oneof=latest popular comments opens"`
	Limit   int    `query:"limit" validate:"gte=0,lte=100"`
	Offset  int    `query:"offset" validate:"gte=0"`
}

// TrackOpenInput describes the client that opened a route.
type TrackOpenInput struct {
	UserAgent string
	Referrer  string
	Platform  string `json:"platform" validate:"max=32"`
}

// LikeOutput is the like state after a like or unlike.
type LikeOutput struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// RouteUsecase defines route operations. userID is the caller; mutations other than
// create require it to be the route's author.
type RouteUsecase interface {
	CreateRoute(ctx context.Context, authorID *uuid.UUID, input *CreateRouteInput) (*entity.Route, error)
	ListRoutes(ctx context.Context, input *ListRoutesInput) ([]*entity.Route, error)
	GetRoute(ctx context.Context, routeID uuid.UUID) (*entity.Route, error)
	UpdateRoute(ctx context.Context, userID, routeID uuid.UUID, input *UpdateRouteInput) (*entity.Route, error)
	DeleteRoute(ctx context.Context, userID, routeID uuid.UUID) error

	LikeRoute(ctx context.Context, userID, routeID uuid.UUID) (*LikeOutput, error)
	UnlikeRoute(ctx context.Context, userID, routeID uuid.UUID) (*LikeOutput, error)
	IsRouteLiked(ctx context.Context, userID, routeID uuid.UUID) (bool, error)

	// TrackOpen records the open and returns the new open count. Event publishing is best effort.
	TrackOpen(ctx context.Context, userID *uuid.UUID, routeID uuid.UUID, input *TrackOpenInput) (int, error)

	// RouteQRCode renders the route's share link as a PNG.
	RouteQRCode(ctx context.Context, routeID uuid.UUID) ([]byte, error)

	// RouteGeoJSON exports the ordered points as one LineString plus a Point per point.
	RouteGeoJSON(ctx context.Context, routeID uuid.UUID) (*geojson.FeatureCollection, error)
}
