package postgres

import (
	"context"
	"testing"

	"ridingcourse/internal/domain/entity"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/repository"
	"ridingcourse/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := &entity.User{Email: "  Rider@Example.com ", DisplayName: "라이더"}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, "rider@example.com", user.Email)

	found, err := repo.FindByEmail(ctx, "RIDER@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "라이더", byID.DisplayName)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "dup@example.com", DisplayName: "a"}))
	err := repo.Create(ctx, &entity.User{Email: "dup@example.com", DisplayName: "b"})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "USER_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestAuthRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db, "auth@example.com")
	repo := NewAuthRepository(db)

	auth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderEmail,
		ProviderUserID: user.Email,
		PasswordHash:   "hash",
	}
	require.NoError(t, repo.CreateAuthentication(ctx, auth))

	found, err := repo.FindAuthentication(ctx, entity.ProviderEmail, "auth@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.FindAuthentication(ctx, entity.ProviderEmail, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)
}
