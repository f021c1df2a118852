package handler

import (
	"net/http"
	"testing"

	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/entity"
	mockUsecase "ridingcourse/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBookmarkHandler(t *testing.T) {
	userID := uuid.New()
	routeID := uuid.New()
	bookmarkUC := mockUsecase.NewMockBookmarkUsecase(t)
	h := NewBookmarkHandler(BookmarkHandlerParams{BookmarkUC: bookmarkUC})

	e := newTestEcho()
	user := asUser(userID)
	e.GET("/bookmarks", h.List, user)
	e.GET("/bookmarks/route/:id", h.Status, user)
	e.POST("/bookmarks/route/:id", h.Add, user)
	e.DELETE("/bookmarks/route/:id", h.Remove, user)
	e.GET("/anonymous/bookmarks/route/:id", h.Status)

	bookmarkUC.EXPECT().AddBookmark(mock.Anything, userID, routeID).Return(nil)
	bookmarkUC.EXPECT().IsBookmarked(mock.Anything, userID, routeID).Return(true, nil)
	bookmarkUC.EXPECT().RemoveBookmark(mock.Anything, userID, routeID).Return(nil)
	bookmarkUC.EXPECT().ListBookmarks(mock.Anything, userID).Return([]*entity.Route{{ID: routeID}}, nil)

	target := "/bookmarks/route/" + routeID.String()

	rec := doJSON(e, http.MethodPost, target, "")
	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, map[string]bool{"bookmarked": true}, decodeData[map[string]bool](t, rec))

	rec = doJSON(e, http.MethodGet, target, "")
	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, map[string]bool{"bookmarked": true}, decodeData[map[string]bool](t, rec))

	rec = doJSON(e, http.MethodGet, "/bookmarks", "")
	assertStatus(t, rec, http.StatusOK)
	views := decodeData[[]RouteView](t, rec)
	assert.Len(t, views, 1)
	assert.Equal(t, routeID, views[0].ID)

	rec = doJSON(e, http.MethodDelete, target, "")
	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, map[string]bool{"bookmarked": false}, decodeData[map[string]bool](t, rec))

	rec = doJSON(e, http.MethodGet, "/anonymous/bookmarks/route/"+routeID.String(), "")
	assertStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, domainerrors.ErrUnauthorized.ErrorCode(), decodeErrorCode(t, rec))
}

func TestBookmarkHandler_MissingRoute(t *testing.T) {
	userID := uuid.New()
	routeID := uuid.New()
	bookmarkUC := mockUsecase.NewMockBookmarkUsecase(t)
	h := NewBookmarkHandler(BookmarkHandlerParams{BookmarkUC: bookmarkUC})

	e := newTestEcho()
	e.POST("/bookmarks/route/:id", h.Add, asUser(userID))
	bookmarkUC.EXPECT().AddBookmark(mock.Anything, userID, routeID).Return(domainerrors.ErrRouteNotFound)

	rec := doJSON(e, http.MethodPost, "/bookmarks/route/"+routeID.String(), "")

	assertStatus(t, rec, http.StatusNotFound)
}
