package postgres

import (
	"context"
	"testing"

	"ridingcourse/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a migrated in-memory SQLite database. A single connection keeps
// every query on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, DisplayName: "rider"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func createTestRoute(t *testing.T, db *gorm.DB, authorID *uuid.UUID, mutate func(*entity.Route)) *entity.Route {
	t.Helper()

	route := &entity.Route{
		AuthorID:        authorID,
		Title:           "북악 스카이웨이",
		Region1:         "서울",
		StarsScenery:    4,
		StarsDifficulty: 2,
		OpenURL:         "nmap://route/car?dlat=37.6&dlng=126.98",
		NmapURL:         "nmap://route/car?dlat=37.6&dlng=126.98&appname=com.ridingcourse.app",
		Points: []entity.RoutePoint{
			{Lat: 37.58, Lng: 126.97, Name: "출발", Type: entity.PointStart},
			{Lat: 37.6, Lng: 126.98, Name: "팔각정", Type: entity.PointDest},
		},
	}
	if mutate != nil {
		mutate(route)
	}
	require.NoError(t, NewRouteRepository(db).Create(context.Background(), route))

	return route
}
