package impl

import (
	"bytes"
	"context"
	"testing"

	"ridingcourse/config"
	"ridingcourse/internal/domain/entity"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/service"
	mockRepo "ridingcourse/internal/mocks/repository"
	mockService "ridingcourse/internal/mocks/service"
	"ridingcourse/internal/usecase"
	"ridingcourse/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type photoServiceFixtures struct {
	service   usecase.PhotoUsecase
	routeRepo *mockRepo.MockRouteRepository
	photoRepo *mockRepo.MockPhotoRepository
	storage   *mockService.MockPhotoStorage
}

func createTestPhotoService(t *testing.T, maxBytes int64) photoServiceFixtures {
	fixtures := photoServiceFixtures{
		routeRepo: mockRepo.NewMockRouteRepository(t),
		photoRepo: mockRepo.NewMockPhotoRepository(t),
		storage:   mockService.NewMockPhotoStorage(t),
	}

	fixtures.service = NewPhotoService(PhotoServiceParams{
		RouteRepo: fixtures.routeRepo,
		PhotoRepo: fixtures.photoRepo,
		Storage:   fixtures.storage,
		Config:    &config.Config{Storage: &config.StorageConfig{MaxPhotoBytes: maxBytes}},
		Logger:    discardLogger(),
	})

	return fixtures
}

func TestPhotoService_UploadPhoto(t *testing.T) {
	fx := createTestPhotoService(t, 1024)
	ctx := context.Background()
	routeID := uuid.New()
	authorID := uuid.New()
	data := []byte("\x89PNG fake image")
	key := "routes/" + routeID.String() + "/" + util.ContentChecksum(data) + ".png"

	fx.routeRepo.EXPECT().Exists(ctx, routeID).Return(true, nil)
	fx.storage.EXPECT().Upload(ctx, key, "image/png", data).Return("/media/"+key, nil)
	fx.photoRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.RoutePhoto) bool {
			return p.Key == key && p.SizeBytes == int64(len(data)) && *p.AuthorID == authorID
		})).
		Return(nil)

	photo, err := fx.service.UploadPhoto(ctx, &authorID, routeID, &usecase.UploadPhotoInput{ContentType: "image/png", Data: data})
	require.NoError(t, err)
	assert.Equal(t, "/media/"+key, photo.URL)
}

func TestPhotoService_UploadPhoto_Rejects(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		data        []byte
		code        string
	}{
		{name: "not an image", contentType: "application/pdf", data: []byte("%PDF"), code: "PHOTO_INVALID_TYPE"},
		{name: "empty", contentType: "image/jpeg", data: nil, code: "VALIDATION_FAILED"},
		{name: "too large", contentType: "image/jpeg", data: bytes.Repeat([]byte{1}, 2048), code: "PHOTO_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPhotoService(t, 1024)

			_, err := fx.service.UploadPhoto(context.Background(), nil, uuid.New(), &usecase.UploadPhotoInput{
				ContentType: tt.contentType,
				Data:        tt.data,
			})
			requireAppError(t, err, tt.code)
		})
	}
}

func TestPhotoService_UploadPhoto_StorageFailure(t *testing.T) {
	fx := createTestPhotoService(t, 0)
	ctx := context.Background()
	routeID := uuid.New()

	fx.routeRepo.EXPECT().Exists(ctx, routeID).Return(true, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, "image/webp", mock.Anything).Return("", errors.New("bucket unavailable"))

	_, err := fx.service.UploadPhoto(ctx, nil, routeID, &usecase.UploadPhotoInput{ContentType: "image/webp", Data: []byte("x")})
	requireAppError(t, err, "PHOTO_UPLOAD_FAILED")
}

func TestPhotoService_OpenPhoto(t *testing.T) {
	fx := createTestPhotoService(t, 0)
	ctx := context.Background()

	fx.storage.EXPECT().Download(ctx, "routes/a/b.png").Return([]byte("img"), "image/png", nil)
	fx.storage.EXPECT().Download(ctx, "routes/a/missing.png").Return(nil, "", service.ErrObjectNotFound)

	data, contentType, err := fx.service.OpenPhoto(ctx, "routes/a/b.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), data)
	assert.Equal(t, "image/png", contentType)

	_, _, err = fx.service.OpenPhoto(ctx, "routes/a/missing.png")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	for _, key := range []string{"secrets/key", "routes/../secrets"} {
		_, _, err = fx.service.OpenPhoto(ctx, key)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound, key)
	}
}
