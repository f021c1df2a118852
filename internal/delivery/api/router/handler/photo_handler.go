package handler

import (
	"io"
	"net/http"
	"strings"

	"ridingcourse/internal/delivery/api/middleware"
	"ridingcourse/internal/delivery/api/response"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const photoFormField = "file"

// PhotoHandlerParams holds dependencies for PhotoHandler, injected by Fx.
type PhotoHandlerParams struct {
	fx.In

	PhotoUC usecase.PhotoUsecase
}

// PhotoHandler serves route photo uploads and the /media passthrough.
type PhotoHandler struct {
	photoUC usecase.PhotoUsecase
}

func NewPhotoHandler(params PhotoHandlerParams) *PhotoHandler {
	return &PhotoHandler{photoUC: params.PhotoUC}
}

// Upload handles a multipart upload in the "file" field.
func (h *PhotoHandler) Upload(c echo.Context) error {
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile(photoFormField)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("multipart field \"file\" is required")
	}

	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "read uploaded file")
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}
	// drop parameters such as "; charset=binary"
	contentType = strings.TrimSpace(strings.Split(contentType, ";")[0])

	photo, err := h.photoUC.UploadPhoto(c.Request().Context(), middleware.GetOptionalUserID(c), routeID, &usecase.UploadPhotoInput{
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPhotoView(photo))
}

func (h *PhotoHandler) List(c echo.Context) error {
	routeID, err := pathID(c)
	if err != nil {
		return err
	}

	photos, err := h.photoUC.ListPhotos(c.Request().Context(), routeID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*PhotoView, len(photos))
	for i, p := range photos {
		views[i] = toPhotoView(p)
	}

	return response.Success(c, http.StatusOK, views)
}

// Media streams a stored object addressed by the wildcard path.
func (h *PhotoHandler) Media(c echo.Context) error {
	data, contentType, err := h.photoUC.OpenPhoto(c.Request().Context(), c.Param("*"))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=31536000, immutable")

	return c.Blob(http.StatusOK, contentType, data)
}
