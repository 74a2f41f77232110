package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const (
	StorageCloudinary = "cloudinary"
	StorageGCS        = "gcs"
)

type Config struct {
	Port    string `env:"PORT,default=8080"`
	URL     string `env:"URL,default=http://localhost:8080"`
	LogMode string `env:"LOG_MODE,default=dev"`

	// DATABASE_URL prend le dessus sur les champs DB_* s'il est défini
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST,default=localhost"`
	DBPort      string `env:"DB_PORT,default=5432"`
	DBUser      string `env:"DB_USER,default=postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME,default=luminashare"`
	DBSSLMode   string `env:"DB_SSLMODE,default=disable"`

	StorageProvider string `env:"STORAGE_PROVIDER,default=cloudinary"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `env:"CLOUDINARY_FOLDER,default=luminashare/announcements"`

	GCSBucket          string `env:"GCS_BUCKET"`
	GCSPublicBaseURL   string `env:"GCS_PUBLIC_BASE_URL,default=https://storage.googleapis.com"`
	GCSCredentialsFile string `env:"GCS_CREDENTIALS_FILE"`

	RankingLimit         int    `env:"RANKING_LIMIT,default=100"`
	RankingAnonymousName string `env:"RANKING_ANONYMOUS_NAME,default=Anonymous"`

	UploadMaxBytes int64  `env:"UPLOAD_MAX_BYTES,default=5242880"`
	CORSOrigin     string `env:"CORS_ORIGIN,default=*"`
}

// LoadConfig charge un éventuel fichier .env puis lit les variables d'environnement
func LoadConfig(envFiles ...string) (*Config, error) {
	// .env est optionnel: en production tout vient de l'environnement
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate vérifie la cohérence de la configuration
func (c *Config) Validate() error {
	switch c.StorageProvider {
	case StorageCloudinary, StorageGCS:
	default:
		return fmt.Errorf("unknown STORAGE_PROVIDER %q (expected %q or %q)", c.StorageProvider, StorageCloudinary, StorageGCS)
	}
	if c.RankingLimit <= 0 {
		return fmt.Errorf("RANKING_LIMIT must be positive, got %d", c.RankingLimit)
	}
	if c.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive, got %d", c.UploadMaxBytes)
	}
	return nil
}

// DSN retourne la chaîne de connexion PostgreSQL
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + strings.TrimPrefix(c.DBName, "/"),
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}
