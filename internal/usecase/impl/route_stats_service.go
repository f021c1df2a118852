package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "ridingcourse/internal/delivery/context"
	"ridingcourse/internal/domain/entity"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/repository"
	"ridingcourse/internal/domain/service"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultStatsDays = 30
	unknownPlatform  = "unknown"
)

type routeStatsService struct {
	routeRepo repository.RouteRepository
	statsRepo repository.RouteStatsRepository
	logger    *slog.Logger
	now       func() time.Time
}

// RouteStatsServiceParams holds dependencies for RouteStatsService, injected by Fx.
type RouteStatsServiceParams struct {
	fx.In

	RouteRepo repository.RouteRepository
	StatsRepo repository.RouteStatsRepository
	Logger    *slog.Logger
}

// NewRouteStatsService creates the route statistics usecase.
func NewRouteStatsService(params RouteStatsServiceParams) usecase.RouteStatsUsecase {
	return &routeStatsService{
		routeRepo: params.RouteRepo,
		statsRepo: params.StatsRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *routeStatsService) RecordOpened(ctx context.Context, event *service.RouteOpenedEvent) (int, error) {
	routeID, err := uuid.Parse(event.RouteID)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid route_id: " + event.RouteID)
	}

	// Events can outlive their route; a deleted route must not get new rollup rows.
	if err := ensureRouteExists(ctx, srv.routeRepo, routeID); err != nil {
		return 0, err
	}

	openedAt := event.OpenedAt
	if openedAt.IsZero() {
		openedAt = srv.now()
	}

	// same normalization TrackOpen applies before storing the event
	platform := strings.ToLower(strings.TrimSpace(event.Platform))

	opens, err := srv.statsRepo.RefreshDailyOpens(ctx, routeID, openedAt, platform)
	if err != nil {
		return 0, errors.Wrap(err, "failed to refresh daily opens")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Route open recorded",
		slog.String("route_id", routeID.String()),
		slog.String("platform", platformLabel(platform)),
		slog.Int("day_opens", opens),
	)

	return opens, nil
}

// DailyOpens returns the last input.Days UTC days of opens, today included.
func (srv *routeStatsService) DailyOpens(ctx context.Context, routeID uuid.UUID, input *usecase.DailyOpensInput) ([]*entity.RouteDailyOpens, error) {
	days := input.Days
	if days <= 0 {
		days = defaultStatsDays
	}

	if err := ensureRouteExists(ctx, srv.routeRepo, routeID); err != nil {
		return nil, err
	}

	since := srv.now().UTC().AddDate(0, 0, -(days - 1))
	rows, err := srv.statsRepo.ListDailyOpens(ctx, routeID, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list daily opens")
	}

	for _, row := range rows {
		row.Platform = platformLabel(row.Platform)
	}

	return rows, nil
}

func platformLabel(platform string) string {
	if platform == "" {
		return unknownPlatform
	}

	return platform
}
