package handler

import (
	"context"

	"ridingcourse/internal/usecase"

	"github.com/google/uuid"
)

// likeFunc is the shape shared by the like and unlike usecase methods.
type likeFunc func(ctx context.Context, userID, targetID uuid.UUID) (*usecase.LikeOutput, error)
