// Package storage keeps route photos in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"ridingcourse/config"
	"ridingcourse/internal/domain/service"
	"ridingcourse/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// MediaPathPrefix is where the HTTP server exposes bucket objects when no public base URL is configured.
const MediaPathPrefix = "/media/"

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// StorageParams holds dependencies for PhotoStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPhotoStorage opens the bucket named by storage.bucketUrl.
func NewPhotoStorage(params StorageParams) (service.PhotoStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Photo storage initialized", slog.String("bucket_url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, cfg.PublicBaseURL), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.PhotoStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *blobStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	return s.publicURL(key), nil
}

func (s *blobStorage) Download(ctx context.Context, key string) ([]byte, string, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrObjectNotFound
		}

		return nil, "", errors.WithStack(err)
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	return data, attrs.ContentType, nil
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return MediaPathPrefix + key
	}

	return s.publicBaseURL + "/" + key
}

// Module provides the photo storage.
var Module = fx.Options(
	fx.Provide(NewPhotoStorage),
)
