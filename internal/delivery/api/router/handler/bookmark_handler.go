package handler

import (
	"net/http"

	"ridingcourse/internal/delivery/api/middleware"
	"ridingcourse/internal/delivery/api/response"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookmarkHandlerParams holds dependencies for BookmarkHandler, injected by Fx.
type BookmarkHandlerParams struct {
	fx.In

	BookmarkUC usecase.BookmarkUsecase
}

// BookmarkHandler serves the signed-in user's bookmarks. Every route requires authentication.
type BookmarkHandler struct {
	bookmarkUC usecase.BookmarkUsecase
}

func NewBookmarkHandler(params BookmarkHandlerParams) *BookmarkHandler {
	return &BookmarkHandler{bookmarkUC: params.BookmarkUC}
}

func (h *BookmarkHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	routes, err := h.bookmarkUC.ListBookmarks(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRouteViews(routes))
}

func (h *BookmarkHandler) Add(c echo.Context) error {
	userID, routeID, err := h.params(c)
	if err != nil {
		return err
	}

	if err := h.bookmarkUC.AddBookmark(c.Request().Context(), userID, routeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"bookmarked": true})
}

func (h *BookmarkHandler) Remove(c echo.Context) error {
	userID, routeID, err := h.params(c)
	if err != nil {
		return err
	}

	if err := h.bookmarkUC.RemoveBookmark(c.Request().Context(), userID, routeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"bookmarked": false})
}

func (h *BookmarkHandler) Status(c echo.Context) error {
	userID, routeID, err := h.params(c)
	if err != nil {
		return err
	}

	bookmarked, err := h.bookmarkUC.IsBookmarked(c.Request().Context(), userID, routeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"bookmarked": bookmarked})
}

func (h *BookmarkHandler) params(c echo.Context) (userID, routeID uuid.UUID, err error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUnauthorized
	}
	routeID, err = pathID(c)

	return userID, routeID, err
}
