package usecase

import (
	"context"

	"ridingcourse/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadPhotoInput is an uploaded image.
type UploadPhotoInput struct {
	ContentType string
	Data        []byte
}

// PhotoUsecase attaches images to routes.
type PhotoUsecase interface {
	UploadPhoto(ctx context.Context, authorID *uuid.UUID, routeID uuid.UUID, input *UploadPhotoInput) (*entity.RoutePhoto, error)
	ListPhotos(ctx context.Context, routeID uuid.UUID) ([]*entity.RoutePhoto, error)
	// OpenPhoto returns the stored bytes and content type of an object key.
	OpenPhoto(ctx context.Context, key string) ([]byte, string, error)
}
