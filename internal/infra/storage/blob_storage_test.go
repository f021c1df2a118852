package storage

import (
	"context"
	"testing"

	"ridingcourse/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_UploadAndDownload(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorage(bucket, "")
	ctx := context.Background()

	url, err := store.Upload(ctx, "routes/r1/abc.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/media/routes/r1/abc.png", url)

	data, contentType, err := store.Download(ctx, "routes/r1/abc.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, "image/png", contentType)
}

func TestBlobStorage_PublicBaseURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorage(bucket, "https://cdn.example.com/photos/")

	url, err := store.Upload(context.Background(), "routes/r1/abc.jpg", "image/jpeg", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photos/routes/r1/abc.jpg", url)
}

func TestBlobStorage_DownloadMissing(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	_, _, err := NewBlobStorage(bucket, "").Download(context.Background(), "nope")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
}
