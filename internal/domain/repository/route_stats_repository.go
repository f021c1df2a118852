package repository

import (
	"context"
	"time"

	"ridingcourse/internal/domain/entity"

	"github.com/google/uuid"
)

// RouteStatsRepository maintains the per-day open rollup derived from route open events.
type RouteStatsRepository interface {
	// RefreshDailyOpens recounts the open events of one route, platform and UTC day,
	// stores the total and returns it. Running it twice for the same day is harmless.
	RefreshDailyOpens(ctx context.Context, routeID uuid.UUID, day time.Time, platform string) (int, error)

	// ListDailyOpens returns the rollup rows from since onwards, oldest first.
	ListDailyOpens(ctx context.Context, routeID uuid.UUID, since time.Time) ([]*entity.RouteDailyOpens, error)
}
