package postgres

import (
	"context"
	"testing"
	"time"

	"ridingcourse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func insertOpenEvent(t *testing.T, db *gorm.DB, routeID uuid.UUID, platform string, at time.Time) {
	t.Helper()

	require.NoError(t, db.Create(&model.RouteOpenEventModel{
		RouteID:   routeID,
		Platform:  platform,
		CreatedAt: at.UTC(),
	}).Error)
}

func TestRouteStatsRepository_RefreshDailyOpens(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	route := createTestRoute(t, db, nil, nil)
	repo := NewRouteStatsRepository(db)

	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	insertOpenEvent(t, db, route.ID, "ios", day.Add(1*time.Hour))
	insertOpenEvent(t, db, route.ID, "ios", day.Add(23*time.Hour))
	insertOpenEvent(t, db, route.ID, "android", day.Add(2*time.Hour))
	insertOpenEvent(t, db, route.ID, "ios", day.Add(24*time.Hour))

	opens, err := repo.RefreshDailyOpens(ctx, route.ID, day.Add(5*time.Hour), "ios")
	require.NoError(t, err)
	assert.Equal(t, 2, opens)

	// Recounting is idempotent.
	opens, err = repo.RefreshDailyOpens(ctx, route.ID, day, "ios")
	require.NoError(t, err)
	assert.Equal(t, 2, opens)

	insertOpenEvent(t, db, route.ID, "ios", day.Add(3*time.Hour))
	opens, err = repo.RefreshDailyOpens(ctx, route.ID, day, "ios")
	require.NoError(t, err)
	assert.Equal(t, 3, opens)

	_, err = repo.RefreshDailyOpens(ctx, route.ID, day, "android")
	require.NoError(t, err)
	_, err = repo.RefreshDailyOpens(ctx, route.ID, day.AddDate(0, 0, 1), "ios")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.RouteDailyOpensModel{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestRouteStatsRepository_ListDailyOpens(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	route := createTestRoute(t, db, nil, nil)
	other := createTestRoute(t, db, nil, nil)
	repo := NewRouteStatsRepository(db)

	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, at := range []time.Time{day, day.AddDate(0, 0, 1), day.AddDate(0, 0, 2)} {
		for range i + 1 {
			insertOpenEvent(t, db, route.ID, "web", at.Add(time.Hour))
		}
		_, err := repo.RefreshDailyOpens(ctx, route.ID, at, "web")
		require.NoError(t, err)
	}
	insertOpenEvent(t, db, other.ID, "web", day.Add(time.Hour))
	_, err := repo.RefreshDailyOpens(ctx, other.ID, day, "web")
	require.NoError(t, err)

	rows, err := repo.ListDailyOpens(ctx, route.ID, day.AddDate(0, 0, 1).Add(6*time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.True(t, rows[0].Day.Equal(day.AddDate(0, 0, 1)))
	assert.Equal(t, 2, rows[0].Opens)
	assert.True(t, rows[1].Day.Equal(day.AddDate(0, 0, 2)))
	assert.Equal(t, 3, rows[1].Opens)
	assert.Equal(t, route.ID, rows[1].RouteID)
}
