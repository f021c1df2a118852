package usecase

import (
	"context"

	"ridingcourse/internal/domain/entity"
	"ridingcourse/internal/domain/service"

	"github.com/google/uuid"
)

type DailyOpensInput struct {
	Days int `query:"days" validate:"gte=0,lte=90"`
}

type RouteStatsUsecase interface {
	// RecordOpened folds a delivered RouteOpenedEvent into the daily rollup and returns the day's total
	// for the event's platform.
	RecordOpened(ctx context.Context, event *service.RouteOpenedEvent) (int, error)

	DailyOpens(ctx context.Context, routeID uuid.UUID, input *DailyOpensInput) ([]*entity.RouteDailyOpens, error)
}
