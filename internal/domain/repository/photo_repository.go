package repository

import (
	"context"

	"ridingcourse/internal/domain/entity"

	"github.com/google/uuid"
)

// PhotoRepository persists route photo metadata. The image bytes live in blob storage.
type PhotoRepository interface {
	Create(ctx context.Context, photo *entity.RoutePhoto) error

	// ListByRoute returns photos oldest first.
	ListByRoute(ctx context.Context, routeID uuid.UUID) ([]*entity.RoutePhoto, error)
}
