package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoutePhoto is an image attached to a route and kept in blob storage.
type RoutePhoto struct {
	ID          uuid.UUID
	RouteID     uuid.UUID
	AuthorID    *uuid.UUID
	Key         string // Object key inside the bucket.
	URL         string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}
