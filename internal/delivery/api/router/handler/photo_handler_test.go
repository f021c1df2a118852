package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
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

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newPhotoHandlerEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockPhotoUsecase) {
	photoUC := mockUsecase.NewMockPhotoUsecase(t)
	h := NewPhotoHandler(PhotoHandlerParams{PhotoUC: photoUC})

	e := newTestEcho()
	e.POST("/routes/:id/photos", h.Upload)
	e.GET("/routes/:id/photos", h.List)
	e.GET("/media/*", h.Media)

	return e, photoUC
}

func multipartRequest(t *testing.T, target, field string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, "photo.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestPhotoHandler_Upload(t *testing.T) {
	e, photoUC := newPhotoHandlerEcho(t)
	routeID := uuid.New()

	// CreateFormFile labels the part application/octet-stream, so the type is sniffed.
	photoUC.EXPECT().
		UploadPhoto(mock.Anything, (*uuid.UUID)(nil), routeID, &usecase.UploadPhotoInput{ContentType: "image/png", Data: pngHeader}).
		Return(&entity.RoutePhoto{ID: uuid.New(), RouteID: routeID, URL: "/media/routes/x.png", ContentType: "image/png"}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartRequest(t, "/routes/"+routeID.String()+"/photos", photoFormField, pngHeader))

	assertStatus(t, rec, http.StatusCreated)
	view := decodeData[PhotoView](t, rec)
	assert.Equal(t, "/media/routes/x.png", view.URL)
	assert.Equal(t, routeID, view.RouteID)
}

func TestPhotoHandler_UploadMissingFile(t *testing.T) {
	e, _ := newPhotoHandlerEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartRequest(t, "/routes/"+uuid.NewString()+"/photos", "image", pngHeader))

	assertStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeErrorCode(t, rec))
}

func TestPhotoHandler_UploadRejected(t *testing.T) {
	e, photoUC := newPhotoHandlerEcho(t)
	photoUC.EXPECT().UploadPhoto(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrPhotoInvalidType)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartRequest(t, "/routes/"+uuid.NewString()+"/photos", photoFormField, []byte("plain text")))

	assert.Equal(t, domainerrors.ErrPhotoInvalidType.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrPhotoInvalidType.ErrorCode(), decodeErrorCode(t, rec))
}

func TestPhotoHandler_List(t *testing.T) {
	e, photoUC := newPhotoHandlerEcho(t)
	routeID := uuid.New()
	photoUC.EXPECT().ListPhotos(mock.Anything, routeID).Return([]*entity.RoutePhoto{{ID: uuid.New()}}, nil)

	rec := doJSON(e, http.MethodGet, "/routes/"+routeID.String()+"/photos", "")

	assertStatus(t, rec, http.StatusOK)
	assert.Len(t, decodeData[[]PhotoView](t, rec), 1)
}

func TestPhotoHandler_Media(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, photoUC := newPhotoHandlerEcho(t)
		photoUC.EXPECT().OpenPhoto(mock.Anything, "routes/abc/def.png").Return(pngHeader, "image/png", nil)

		rec := doJSON(e, http.MethodGet, "/media/routes/abc/def.png", "")

		assertStatus(t, rec, http.StatusOK)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, pngHeader, rec.Body.Bytes())
	})

	t.Run("missing", func(t *testing.T) {
		e, photoUC := newPhotoHandlerEcho(t)
		photoUC.EXPECT().OpenPhoto(mock.Anything, "routes/nope.png").Return(nil, "", domainerrors.ErrNotFound)

		rec := doJSON(e, http.MethodGet, "/media/routes/nope.png", "")

		assertStatus(t, rec, http.StatusNotFound)
	})
}
