package postgres

import (
	"context"

	"ridingcourse/internal/domain/entity"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/repository"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository is the constructor for bookmarkRepository.
func NewBookmarkRepository(db *gorm.DB) repository.BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (repo *bookmarkRepository) Add(ctx context.Context, bookmark *entity.Bookmark) (bool, error) {
	bookmarkM := &model.BookmarkModel{RouteID: bookmark.RouteID, UserID: bookmark.UserID}
	result := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(bookmarkM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add bookmark")
	}
	bookmark.CreatedAt = bookmarkM.CreatedAt

	return result.RowsAffected > 0, nil
}

func (repo *bookmarkRepository) Remove(ctx context.Context, routeID, userID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("route_id = ? AND user_id = ?", routeID, userID).
		Delete(&model.BookmarkModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove bookmark")
	}

	return result.RowsAffected > 0, nil
}

func (repo *bookmarkRepository) Exists(ctx context.Context, routeID, userID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.BookmarkModel{}).
		Where("route_id = ? AND user_id = ?", routeID, userID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check bookmark")
	}

	return count > 0, nil
}

func (repo *bookmarkRepository) ListRoutes(ctx context.Context, userID uuid.UUID) ([]*entity.Route, error) {
	var routeModels []*model.RouteModel
	err := repo.db.WithContext(ctx).
		Model(&model.RouteModel{}).
		Joins("JOIN bookmarks b ON b.route_id = routes.id").
		Where("b.user_id = ?", userID).
		Order("b.created_at DESC").
		Find(&routeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarked routes")
	}

	return toRouteDomains(routeModels), nil
}
