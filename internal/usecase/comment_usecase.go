package usecase

import (
	"context"

	"ridingcourse/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput is a new comment body.
type CreateCommentInput struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// CommentUsecase defines comment and comment-like operations.
type CommentUsecase interface {
	// ListComments fills LikedByMe when viewerID is not nil.
	ListComments(ctx context.Context, routeID uuid.UUID, sort entity.CommentSort, viewerID *uuid.UUID) ([]*entity.Comment, error)
	CreateComment(ctx context.Context, authorID, routeID uuid.UUID, input *CreateCommentInput) (*entity.Comment, error)

	LikeComment(ctx context.Context, userID, commentID uuid.UUID) (*LikeOutput, error)
	UnlikeComment(ctx context.Context, userID, commentID uuid.UUID) (*LikeOutput, error)
	IsCommentLiked(ctx context.Context, userID, commentID uuid.UUID) (bool, error)
}
