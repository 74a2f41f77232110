package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/grishaff/LuminaShare/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestIsAllowedImage(t *testing.T) {
	assert.True(t, IsAllowedImage("image/png"))
	assert.True(t, IsAllowedImage("image/jpeg"))
	assert.False(t, IsAllowedImage("application/pdf"))
	assert.False(t, IsAllowedImage(""))
}

func TestObjectKey(t *testing.T) {
	key := objectKey("image/png")
	assert.True(t, strings.HasPrefix(key, "announcements/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.NotEqual(t, key, objectKey("image/png"))
}

func TestGCSStorage_PublicURL(t *testing.T) {
	s := &GCSStorage{bucket: "lumina", publicBaseURL: "https://cdn.example.com"}
	assert.Equal(t, "https://cdn.example.com/lumina/announcements/a.jpg", s.PublicURL("announcements/a.jpg"))
}

func TestNewImageStorage_MissingSettings(t *testing.T) {
	_, err := NewImageStorage(context.Background(), &config.Config{StorageProvider: config.StorageCloudinary})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cloudinary configuration is missing")

	_, err = NewImageStorage(context.Background(), &config.Config{StorageProvider: config.StorageGCS})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GCS_BUCKET")

	_, err = NewImageStorage(context.Background(), &config.Config{StorageProvider: "ftp"})
	assert.Error(t, err)
}

func TestNewCloudinaryService(t *testing.T) {
	s, err := NewCloudinaryService(&config.Config{
		CloudinaryCloudName: "demo",
		CloudinaryAPIKey:    "key",
		CloudinaryAPISecret: "secret",
		CloudinaryFolder:    "luminashare/announcements",
	})
	require.NoError(t, err)
	assert.Equal(t, "luminashare/announcements", s.folder)
	assert.Equal(t, "demo", s.cld.Config.Cloud.CloudName)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("client went away")
}

func TestGCSStorage_UploadImage_ReadErrorCreatesNoObject(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"x","bucket":"lumina"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	client, err := storage.NewClient(ctx,
		option.WithEndpoint(srv.URL+"/storage/v1/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	defer client.Close()

	s := &GCSStorage{client: client, bucket: "lumina", publicBaseURL: srv.URL}
	url, err := s.UploadImage(ctx, failingReader{}, "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client went away")
	assert.Empty(t, url)
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
}
