package usecase

import (
	"context"

	"ridingcourse/internal/domain/entity"

	"github.com/google/uuid"
)

// BookmarkUsecase defines bookmark operations. Add and Remove are idempotent.
type BookmarkUsecase interface {
	AddBookmark(ctx context.Context, userID, routeID uuid.UUID) error
	RemoveBookmark(ctx context.Context, userID, routeID uuid.UUID) error
	IsBookmarked(ctx context.Context, userID, routeID uuid.UUID) (bool, error)
	ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*entity.Route, error)
}
