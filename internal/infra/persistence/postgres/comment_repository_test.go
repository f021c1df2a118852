package postgres

import (
	"context"
	"testing"

	"ridingcourse/internal/domain/entity"
	"ridingcourse/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListByRoute(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCommentRepository(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	route := createTestRoute(t, db, nil, nil)
	other := createTestRoute(t, db, nil, nil)

	older := &entity.Comment{RouteID: route.ID, AuthorID: alice.ID, Content: "older"}
	require.NoError(t, repo.Create(ctx, older))
	newer := &entity.Comment{RouteID: route.ID, AuthorID: bob.ID, Content: "newer"}
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, &entity.Comment{RouteID: other.ID, AuthorID: bob.ID, Content: "elsewhere"}))

	_, err := repo.AddLike(ctx, older.ID, alice.ID)
	require.NoError(t, err)
	_, err = repo.AddLike(ctx, older.ID, bob.ID)
	require.NoError(t, err)

	recent, err := repo.ListByRoute(ctx, route.ID, entity.CommentSortRecent, nil)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "newer", recent[0].Content)
	assert.Equal(t, 2, recent[1].LikeCount)
	assert.False(t, recent[1].LikedByMe)

	byLikes, err := repo.ListByRoute(ctx, route.ID, entity.CommentSortLikes, &alice.ID)
	require.NoError(t, err)
	require.Len(t, byLikes, 2)
	assert.Equal(t, "older", byLikes[0].Content)
	assert.True(t, byLikes[0].LikedByMe)
	assert.False(t, byLikes[1].LikedByMe)
	assert.Equal(t, 0, byLikes[1].LikeCount)
}

func TestCommentRepository_Likes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCommentRepository(db)
	user := createTestUser(t, db, "user@example.com")
	route := createTestRoute(t, db, nil, nil)
	comment := &entity.Comment{RouteID: route.ID, AuthorID: user.ID, Content: "hi"}
	require.NoError(t, repo.Create(ctx, comment))

	created, err := repo.AddLike(ctx, comment.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, created)
	created, err = repo.AddLike(ctx, comment.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, created)

	count, err := repo.CountLikes(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	liked, err := repo.HasLike(ctx, comment.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	removed, err := repo.RemoveLike(ctx, comment.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	count, err = repo.CountLikes(ctx, comment.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCommentRepository_FindByID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCommentRepository(db)

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)

	user := createTestUser(t, db, "user@example.com")
	route := createTestRoute(t, db, nil, nil)
	comment := &entity.Comment{RouteID: route.ID, AuthorID: user.ID, Content: "hello"}
	require.NoError(t, repo.Create(ctx, comment))

	found, err := repo.FindByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", found.Content)
	assert.Equal(t, route.ID, found.RouteID)
}
