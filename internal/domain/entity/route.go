package entity

import (
	"time"

	"github.com/google/uuid"
)

// Surface describes the road surface of a route.
type Surface string

const (
	SurfaceUnknown Surface = "unknown"
	SurfaceGood    Surface = "good"
	SurfaceRough   Surface = "rough"
)

// IsValid reports whether s is a known surface.
func (s Surface) IsValid() bool {
	switch s {
	case SurfaceUnknown, SurfaceGood, SurfaceRough:
		return true
	default:
		return false
	}
}

// Traffic describes how busy a route usually is.
type Traffic string

const (
	TrafficUnknown Traffic = "unknown"
	TrafficLow     Traffic = "low"
	TrafficMedium  Traffic = "medium"
	TrafficHigh    Traffic = "high"
)

// IsValid reports whether t is a known traffic level.
func (t Traffic) IsValid() bool {
	switch t {
	case TrafficUnknown, TrafficLow, TrafficMedium, TrafficHigh:
		return true
	default:
		return false
	}
}

// PointType tags the role of a point along a route.
type PointType string

const (
	PointStart    PointType = "start"
	PointWaypoint PointType = "waypoint"
	PointDest     PointType = "dest"
)

// RoutePoint is one ordered point of a stored route.
type RoutePoint struct {
	Seq  int // 0-based position in traversal order.
	Lat  float64
	Lng  float64
	Name string
	Type PointType
}

// Route is a shared riding course.
type Route struct {
	ID       uuid.UUID
	AuthorID *uuid.UUID // nil for anonymous submissions.

	Title   string
	Summary string
	Region1 string // Province or metropolitan city.
	Region2 string // District.

	LengthKm    *float64
	DurationMin *int

	StarsScenery    int
	StarsDifficulty int
	Surface         Surface
	Traffic         Traffic
	Speedbump       int
	Enforcement     int
	Signal          int
	TagsBitmask     int64

	OpenURL string
	NmapURL string

	LikeCount    int
	CommentCount int
	OpenCount    int

	Points []RoutePoint

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether userID authored the route.
func (r *Route) IsOwnedBy(userID uuid.UUID) bool {
	return r.AuthorID != nil && *r.AuthorID == userID
}

// ShareLink returns the link a QR code should encode: the canonical nmap link when present.
func (r *Route) ShareLink() string {
	if r.NmapURL != "" {
		return r.NmapURL
	}

	return r.OpenURL
}

// RouteSort orders route listings.
type RouteSort string

const (
	RouteSortLatest   RouteSort = "latest"
	RouteSortPopular  RouteSort = "popular"
	RouteSortComments RouteSort = "comments"
	RouteSortOpens    RouteSort = "opens"
)

// RouteFilter selects routes for a listing.
type RouteFilter struct {
	Region1 string
	// Tag keeps routes sharing at least one bit with it; zero disables the filter.
	Tag    int64
	Sort   RouteSort
	Limit  int
	Offset int
}

// CounterField names a denormalized counter on a route.
type CounterField string

const (
	CounterLikes    CounterField = "like_count"
	CounterComments CounterField = "comment_count"
	CounterOpens    CounterField = "open_count"
)

// RouteOpenEvent records one "open in map app" action.
type RouteOpenEvent struct {
	ID        uuid.UUID
	RouteID   uuid.UUID
	UserID    *uuid.UUID
	UserAgent string
	Referrer  string
	Platform  string
	CreatedAt time.Time
}

// RouteDailyOpens is the number of opens of a route from one platform on one UTC day.
type RouteDailyOpens struct {
	RouteID  uuid.UUID
	Day      time.Time // Midnight UTC.
	Platform string
	Opens    int
}
