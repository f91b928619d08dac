// Package storage keeps quote attachments in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"bartile/config"
	domainerrors "bartile/internal/domain/errors"
	"bartile/internal/domain/service"
	"bartile/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

const attachmentDir = "quotes"

type blobStorage struct {
	bucket            *blob.Bucket
	publicBaseURL     string
	keyPrefix         string
	maxSize           int64
	allowedExtensions []string
	logger            *slog.Logger
}

// Params holds dependencies for the blob storage provider.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewFileStorage opens the configured bucket and closes it on shutdown.
func NewFileStorage(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Attachment bucket opened", slog.String("url", cfg.BucketURL))

	storage := NewBlobStorage(bucket, cfg, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, cfg *config.StorageConfig, logger *slog.Logger) service.FileStorage {
	allowed := make([]string, 0, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed = append(allowed, ext)
	}

	return &blobStorage{
		bucket:            bucket,
		publicBaseURL:     strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		keyPrefix:         strings.Trim(cfg.KeyPrefix, "/"),
		maxSize:           cfg.MaxUploadSize,
		allowedExtensions: allowed,
		logger:            logger,
	}
}

// Upload stores r under a random key that keeps the original extension.
func (s *blobStorage) Upload(ctx context.Context, filename, contentType string, r io.Reader) (*service.StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(s.allowedExtensions, ext) {
		return nil, domainerrors.ErrUploadRejected.WithDetails("file type " + ext + " is not accepted")
	}

	key := path.Join(s.keyPrefix, attachmentDir, uuid.NewString()+ext)

	// Cancelling the writer's context before Close discards the partial object.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    map[string]string{"filename": filepath.Base(filename)},
	})
	if err != nil {
		return nil, domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	var src io.Reader = r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}

	n, err := io.Copy(w, src)
	if err != nil {
		cancel()
		_ = w.Close()

		return nil, domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}
	if s.maxSize > 0 && n > s.maxSize {
		cancel()
		_ = w.Close()

		return nil, domainerrors.ErrUploadRejected.WithDetails("file exceeds the " + util.FormatBytes(s.maxSize) + " upload limit")
	}

	if err := w.Close(); err != nil {
		return nil, domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	s.logger.InfoContext(ctx, "Attachment stored",
		slog.String("key", key),
		slog.Int64("size", n))

	return &service.StoredFile{
		Key:  key,
		URL:  s.urlFor(key),
		Size: n,
	}, nil
}

// Delete removes a stored object; a missing object is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if isNotFound(err) {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// Close releases the bucket.
func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *blobStorage) urlFor(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + key
}
