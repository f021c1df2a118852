package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user comment on a route.
type Comment struct {
	ID        uuid.UUID
	RouteID   uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	CreatedAt time.Time

	// LikeCount and LikedByMe are computed per listing.
	LikeCount int
	LikedByMe bool
}

// CommentSort orders a comment listing.
type CommentSort string

const (
	CommentSortRecent CommentSort = "recent"
	CommentSortLikes  CommentSort = "likes"
)
