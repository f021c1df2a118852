package handler

import (
	"net/http"
	"testing"

	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/entity"
	mockUsecase "ridingcourse/internal/mocks/usecase"
	"ridingcourse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommentHandlerEcho(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockCommentUsecase) {
	commentUC := mockUsecase.NewMockCommentUsecase(t)
	h := NewCommentHandler(CommentHandlerParams{CommentUC: commentUC})
	user := asUser(userID)

	e := newTestEcho()
	e.GET("/comments/route/:id", h.List)
	e.GET("/me/comments/route/:id", h.List, user)
	e.POST("/comments/route/:id", h.Create)
	e.POST("/me/comments/route/:id", h.Create, user)
	e.POST("/me/comments/:id/like", h.Like, user)
	e.POST("/me/comments/:id/unlike", h.Unlike, user)
	e.GET("/me/comments/:id/liked", h.Liked, user)

	return e, commentUC
}

func TestCommentHandler_List(t *testing.T) {
	t.Run("anonymous viewer", func(t *testing.T) {
		e, commentUC := newCommentHandlerEcho(t, uuid.New())
		routeID := uuid.New()
		commentUC.EXPECT().
			ListComments(mock.Anything, routeID, entity.CommentSort(""), (*uuid.UUID)(nil)).
			Return([]*entity.Comment{{ID: uuid.New(), Content: "좋아요", LikeCount: 2}}, nil)

		rec := doJSON(e, http.MethodGet, "/comments/route/"+routeID.String(), "")

		assertStatus(t, rec, http.StatusOK)
		views := decodeData[[]CommentView](t, rec)
		require.Len(t, views, 1)
		assert.Equal(t, 2, views[0].LikeCount)
		assert.False(t, views[0].LikedByMe)
	})

	t.Run("signed-in viewer sorted by likes", func(t *testing.T) {
		userID := uuid.New()
		e, commentUC := newCommentHandlerEcho(t, userID)
		routeID := uuid.New()
		commentUC.EXPECT().
			ListComments(mock.Anything, routeID, entity.CommentSortLikes, &userID).
			Return([]*entity.Comment{{ID: uuid.New(), LikedByMe: true}}, nil)

		rec := doJSON(e, http.MethodGet, "/me/comments/route/"+routeID.String()+"?sort=likes", "")

		assertStatus(t, rec, http.StatusOK)
		assert.True(t, decodeData[[]CommentView](t, rec)[0].LikedByMe)
	})

	t.Run("unknown sort", func(t *testing.T) {
		e, _ := newCommentHandlerEcho(t, uuid.New())

		rec := doJSON(e, http.MethodGet, "/comments/route/"+uuid.NewString()+"?sort=oldest", "")

		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestCommentHandler_Create(t *testing.T) {
	t.Run("requires a user", func(t *testing.T) {
		e, _ := newCommentHandlerEcho(t, uuid.New())

		rec := doJSON(e, http.MethodPost, "/comments/route/"+uuid.NewString(), `{"content":"hi"}`)

		assertStatus(t, rec, http.StatusUnauthorized)
	})

	t.Run("created", func(t *testing.T) {
		userID := uuid.New()
		e, commentUC := newCommentHandlerEcho(t, userID)
		routeID := uuid.New()
		commentUC.EXPECT().
			CreateComment(mock.Anything, userID, routeID, &usecase.CreateCommentInput{Content: "노면 좋아요"}).
			Return(&entity.Comment{ID: uuid.New(), RouteID: routeID, AuthorID: userID, Content: "노면 좋아요"}, nil)

		rec := doJSON(e, http.MethodPost, "/me/comments/route/"+routeID.String(), `{"content":"노면 좋아요"}`)

		assertStatus(t, rec, http.StatusCreated)
		assert.Equal(t, userID, decodeData[CommentView](t, rec).AuthorID)
	})

	t.Run("empty content", func(t *testing.T) {
		e, _ := newCommentHandlerEcho(t, uuid.New())

		rec := doJSON(e, http.MethodPost, "/me/comments/route/"+uuid.NewString(), `{"content":""}`)

		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestCommentHandler_Likes(t *testing.T) {
	userID := uuid.New()
	e, commentUC := newCommentHandlerEcho(t, userID)
	commentID := uuid.New()

	commentUC.EXPECT().LikeComment(mock.Anything, userID, commentID).Return(&usecase.LikeOutput{Liked: true, LikeCount: 1}, nil)
	commentUC.EXPECT().UnlikeComment(mock.Anything, userID, commentID).Return(nil, domainerrors.ErrCommentNotFound)
	commentUC.EXPECT().IsCommentLiked(mock.Anything, userID, commentID).Return(false, nil)

	rec := doJSON(e, http.MethodPost, "/me/comments/"+commentID.String()+"/like", "")
	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, 1, decodeData[usecase.LikeOutput](t, rec).LikeCount)

	rec = doJSON(e, http.MethodPost, "/me/comments/"+commentID.String()+"/unlike", "")
	assertStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, domainerrors.ErrCommentNotFound.ErrorCode(), decodeErrorCode(t, rec))

	rec = doJSON(e, http.MethodGet, "/me/comments/"+commentID.String()+"/liked", "")
	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, map[string]bool{"liked": false}, decodeData[map[string]bool](t, rec))
}
