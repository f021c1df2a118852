package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ridingcourse/config"
	deliverycontext "ridingcourse/internal/delivery/context"
	"ridingcourse/internal/domain/entity"
	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/repository"
	"ridingcourse/internal/domain/service"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/usecase"
	"ridingcourse/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultMaxPhotoBytes = 10 << 20

type photoService struct {
	routeRepo repository.RouteRepository
	photoRepo repository.PhotoRepository
	storage   service.PhotoStorage
	maxBytes  int64
	logger    *slog.Logger
}

// PhotoServiceParams holds dependencies for PhotoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	RouteRepo repository.RouteRepository
	PhotoRepo repository.PhotoRepository
	Storage   service.PhotoStorage
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPhotoService creates the photo usecase.
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	maxBytes := int64(defaultMaxPhotoBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxPhotoBytes > 0 {
		maxBytes = params.Config.Storage.MaxPhotoBytes
	}

	return &photoService{
		routeRepo: params.RouteRepo,
		photoRepo: params.PhotoRepo,
		storage:   params.Storage,
		maxBytes:  maxBytes,
		logger:    params.Logger,
	}
}

func (srv *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadPhoto stores the image under routes/{routeID}/{sha256}.{ext}, so re-uploading
// the same bytes overwrites the same object.
func (srv *photoService) UploadPhoto(ctx context.Context, authorID *uuid.UUID, routeID uuid.UUID, input *usecase.UploadPhotoInput) (*entity.RoutePhoto, error) {
	if !strings.HasPrefix(strings.ToLower(input.ContentType), "image/") {
		return nil, domainerrors.ErrPhotoInvalidType.WithDetails(input.ContentType)
	}
	size := int64(len(input.Data))
	if size == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty file")
	}
	if size > srv.maxBytes {
		return nil, domainerrors.ErrPhotoTooLarge.WithDetails(
			fmt.Sprintf("%s exceeds the %s limit", util.FormatBytes(size), util.FormatBytes(srv.maxBytes)),
		)
	}

	if err := ensureRouteExists(ctx, srv.routeRepo, routeID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("routes/%s/%s.%s", routeID, util.ContentChecksum(input.Data), util.ImageExtension(input.ContentType))

	url, err := srv.storage.Upload(ctx, key, input.ContentType, input.Data)
	if err != nil {
		srv.log(ctx).Error("Failed to upload photo", slog.String("key", key), slog.Any("error", err))

		return nil, domainerrors.ErrPhotoUploadFailed.WrapMessage(err.Error())
	}

	photo := &entity.RoutePhoto{
		RouteID:     routeID,
		AuthorID:    authorID,
		Key:         key,
		URL:         url,
		ContentType: input.ContentType,
		SizeBytes:   size,
	}
	if err := srv.photoRepo.Create(ctx, photo); err != nil {
		return nil, errors.Wrap(err, "failed to save photo")
	}

	srv.log(ctx).Info("Photo uploaded", slog.Any("routeID", routeID), slog.String("key", key), slog.Int64("size", size))

	return photo, nil
}

func (srv *photoService) ListPhotos(ctx context.Context, routeID uuid.UUID) ([]*entity.RoutePhoto, error) {
	if err := ensureRouteExists(ctx, srv.routeRepo, routeID); err != nil {
		return nil, err
	}

	photos, err := srv.photoRepo.ListByRoute(ctx, routeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list photos")
	}

	return photos, nil
}

func (srv *photoService) OpenPhoto(ctx context.Context, key string) ([]byte, string, error) {
	if !strings.HasPrefix(key, "routes/") || strings.Contains(key, "..") {
		return nil, "", domainerrors.ErrNotFound
	}

	data, contentType, err := srv.storage.Download(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, "", domainerrors.ErrNotFound
		}

		return nil, "", errors.Wrap(err, "failed to read photo")
	}

	return data, contentType, nil
}
