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
)

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

func (repo *photoRepository) Create(ctx context.Context, photo *entity.RoutePhoto) error {
	photoM := &model.RoutePhotoModel{
		ID:          photo.ID,
		RouteID:     photo.RouteID,
		AuthorID:    photo.AuthorID,
		Key:         photo.Key,
		URL:         photo.URL,
		ContentType: photo.ContentType,
		SizeBytes:   photo.SizeBytes,
	}
	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create route photo")
	}

	photo.ID = photoM.ID
	photo.CreatedAt = photoM.CreatedAt

	return nil
}

func (repo *photoRepository) ListByRoute(ctx context.Context, routeID uuid.UUID) ([]*entity.RoutePhoto, error) {
	var photoModels []*model.RoutePhotoModel
	err := repo.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("created_at ASC").
		Find(&photoModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list route photos")
	}

	photos := make([]*entity.RoutePhoto, 0, len(photoModels))
	for _, m := range photoModels {
		photos = append(photos, &entity.RoutePhoto{
			ID:          m.ID,
			RouteID:     m.RouteID,
			AuthorID:    m.AuthorID,
			Key:         m.Key,
			URL:         m.URL,
			ContentType: m.ContentType,
			SizeBytes:   m.SizeBytes,
			CreatedAt:   m.CreatedAt,
		})
	}

	return photos, nil
}
