package repository

import (
	"context"

	"ridingcourse/internal/domain/entity"
	"ridingcourse/internal/errors"

	"github.com/google/uuid"
)

// ErrRouteNotFound is returned when a route does not exist.
var ErrRouteNotFound = errors.New("route not found")

// RouteRepository persists routes with their ordered points, likes and open events.
type RouteRepository interface {
	// Create stores the route and its points. Points are saved in slice order.
	Create(ctx context.Context, route *entity.Route) error

	// FindByID returns the route with points ordered by seq.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)

	// Exists reports whether the route exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// List returns routes without points.
	List(ctx context.Context, filter entity.RouteFilter) ([]*entity.Route, error)

	// Update saves scalar fields; when replacePoints is true the stored points are replaced by route.Points.
	Update(ctx context.Context, route *entity.Route, replacePoints bool) error

	// Delete removes the route and everything attached to it.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementCounter adds delta to a counter, never going below zero, and returns the new value.
	IncrementCounter(ctx context.Context, id uuid.UUID, field entity.CounterField, delta int) (int, error)

	// AddLike records a like. It reports false when the user already liked the route.
	AddLike(ctx context.Context, routeID, userID uuid.UUID) (bool, error)

	// RemoveLike deletes a like. It reports false when there was none.
	RemoveLike(ctx context.Context, routeID, userID uuid.UUID) (bool, error)

	// HasLike reports whether the user liked the route.
	HasLike(ctx context.Context, routeID, userID uuid.UUID) (bool, error)

	// CreateOpenEvent stores an open event.
	CreateOpenEvent(ctx context.Context, event *entity.RouteOpenEvent) error
}
