package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/grishaff/LuminaShare/internal/config"
	"github.com/grishaff/LuminaShare/internal/logger"
	"google.golang.org/api/option"
)

// GCSStorage writes images to a Google Cloud Storage bucket.
type GCSStorage struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
}

func NewGCSStorage(ctx context.Context, cfg *config.Config) (*GCSStorage, error) {
	if cfg.GCSBucket == "" {
		return nil, fmt.Errorf("missing env var GCS_BUCKET")
	}

	var opts []option.ClientOption
	if cfg.GCSCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCSCredentialsFile))
	}
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCSStorage{
		client:        client,
		bucket:        cfg.GCSBucket,
		publicBaseURL: strings.TrimRight(cfg.GCSPublicBaseURL, "/"),
	}, nil
}

// UploadImage stores the image under a random key and returns its public URL.
func (s *GCSStorage) UploadImage(ctx context.Context, file io.Reader, contentType string) (string, error) {
	key := objectKey(contentType)

	// Cancelling the writer's context abandons the upload; Close would commit it
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=31536000"

	if _, err := io.Copy(w, file); err != nil {
		cancel()
		return "", fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s: %w", key, err)
	}
	logger.Debug("Uploaded gs://%s/%s", s.bucket, key)

	return s.PublicURL(key), nil
}

func (s *GCSStorage) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, key)
}

func (s *GCSStorage) Close() error {
	return s.client.Close()
}

func objectKey(contentType string) string {
	return "announcements/" + uuid.NewString() + imageExtensions[contentType]
}
