package postgres

import (
	"context"
	"time"

	"ridingcourse/internal/domain/entity"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/repository"
	"ridingcourse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type routeStatsRepository struct {
	db *gorm.DB
}

// NewRouteStatsRepository is the constructor for routeStatsRepository.
func NewRouteStatsRepository(db *gorm.DB) repository.RouteStatsRepository {
	return &routeStatsRepository{db: db}
}

// RefreshDailyOpens counts from route_open_events instead of adding one, so a redelivered
// event leaves the total unchanged.
func (repo *routeStatsRepository) RefreshDailyOpens(ctx context.Context, routeID uuid.UUID, day time.Time, platform string) (int, error) {
	start := truncateDay(day)
	end := start.AddDate(0, 0, 1)

	db := repo.db.WithContext(ctx)

	var opens int64
	err := db.Model(&model.RouteOpenEventModel{}).
		Where("route_id = ? AND platform = ? AND created_at >= ? AND created_at < ?", routeID, platform, start, end).
		Count(&opens).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count route opens")
	}

	row := &model.RouteDailyOpensModel{
		RouteID:  routeID,
		Day:      start,
		Platform: platform,
		Opens:    int(opens),
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "route_id"}, {Name: "day"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{"opens", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to store daily route opens")
	}

	return int(opens), nil
}

func (repo *routeStatsRepository) ListDailyOpens(ctx context.Context, routeID uuid.UUID, since time.Time) ([]*entity.RouteDailyOpens, error) {
	var rows []model.RouteDailyOpensModel
	err := repo.db.WithContext(ctx).
		Where("route_id = ? AND day >= ?", routeID, truncateDay(since)).
		Order("day ASC, platform ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list daily route opens")
	}

	result := make([]*entity.RouteDailyOpens, len(rows))
	for i, row := range rows {
		result[i] = &entity.RouteDailyOpens{
			RouteID:  row.RouteID,
			Day:      truncateDay(row.Day),
			Platform: row.Platform,
			Opens:    row.Opens,
		}
	}

	return result, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
