package services

import (
	"context"
	"fmt"
	"io"

	"github.com/grishaff/LuminaShare/internal/config"
)

// ImageStorage stores announcement images and returns their public URL.
type ImageStorage interface {
	UploadImage(ctx context.Context, file io.Reader, contentType string) (string, error)
}

// NewImageStorage picks the backend configured by STORAGE_PROVIDER.
func NewImageStorage(ctx context.Context, cfg *config.Config) (ImageStorage, error) {
	switch cfg.StorageProvider {
	case config.StorageCloudinary:
		s, err := NewCloudinaryService(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageGCS:
		s, err := NewGCSStorage(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.StorageProvider)
	}
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// IsAllowedImage reports whether contentType is an accepted image type.
func IsAllowedImage(contentType string) bool {
	_, ok := imageExtensions[contentType]
	return ok
}
