package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark marks a route saved by a user. A user bookmarks a route at most once.
type Bookmark struct {
	RouteID   uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}
