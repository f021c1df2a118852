package handler

import (
	"net/http"

	"ridingcourse/internal/delivery/api/middleware"
	"ridingcourse/internal/delivery/api/response"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/entity"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
}

type CommentHandler struct {
	commentUC usecase.CommentUsecase
}

func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{commentUC: params.CommentUC}
}

// List returns a route's comments; liked_by_me is filled for a signed-in viewer.
func (h *CommentHandler) List(c echo.Context) error {
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	sort := entity.CommentSort(c.QueryParam("sort"))
	switch sort {
	case "", entity.CommentSortRecent, entity.CommentSortLikes:
	default:
		return domainerrors.ErrValidationFailed.WithDetails("sort must be one of: recent likes")
	}

	comments, err := h.commentUC.ListComments(c.Request().Context(), routeID, sort, middleware.GetOptionalUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*CommentView, len(comments))
	for i, cm := range comments {
		views[i] = toCommentView(cm)
	}

	return response.Success(c, http.StatusOK, views)
}

func (h *CommentHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateCommentInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	comment, err := h.commentUC.CreateComment(c.Request().Context(), userID, routeID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCommentView(comment))
}

func (h *CommentHandler) Like(c echo.Context) error {
	return h.toggleLike(c, h.commentUC.LikeComment)
}

func (h *CommentHandler) Unlike(c echo.Context) error {
	return h.toggleLike(c, h.commentUC.UnlikeComment)
}

func (h *CommentHandler) toggleLike(c echo.Context, toggle likeFunc) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	commentID, err := pathID(c)
	if err != nil {
		return err
	}

	output, err := toggle(c.Request().Context(), userID, commentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *CommentHandler) Liked(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	commentID, err := pathID(c)
	if err != nil {
		return err
	}

	liked, err := h.commentUC.IsCommentLiked(c.Request().Context(), userID, commentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"liked": liked})
}
