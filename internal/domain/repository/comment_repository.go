package repository

import (
	"context"

	"ridingcourse/internal/domain/entity"
	"ridingcourse/internal/errors"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment does not exist.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository persists comments and comment likes.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ListByRoute returns the comments of a route with LikeCount filled in.
	// LikedByMe is filled in when viewerID is not nil.
	ListByRoute(ctx context.Context, routeID uuid.UUID, sort entity.CommentSort, viewerID *uuid.UUID) ([]*entity.Comment, error)

	// AddLike reports false when the user already liked the comment.
	AddLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error)

	// RemoveLike reports false when there was no like.
	RemoveLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error)

	HasLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error)

	CountLikes(ctx context.Context, commentID uuid.UUID) (int, error)
}
