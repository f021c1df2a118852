package repository

import (
	"context"

	"ridingcourse/internal/domain/entity"

	"github.com/google/uuid"
)

// BookmarkRepository persists user bookmarks.
type BookmarkRepository interface {
	// Add is idempotent and reports whether a new bookmark was stored.
	Add(ctx context.Context, bookmark *entity.Bookmark) (bool, error)

	// Remove is idempotent and reports whether a bookmark was deleted.
	Remove(ctx context.Context, routeID, userID uuid.UUID) (bool, error)

	Exists(ctx context.Context, routeID, userID uuid.UUID) (bool, error)

	// ListRoutes returns the routes a user bookmarked, most recently bookmarked first.
	ListRoutes(ctx context.Context, userID uuid.UUID) ([]*entity.Route, error)
}
