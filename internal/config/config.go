package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"

	envcfg "github.com/Skotchmaster/pitipaw_catalog/pkg/config"
)

const (
	DefaultPort         = 5000
	DefaultDatabaseURL  = "mongodb://localhost:27017/pitipaw"
	DefaultDatabaseName = "pitipaw"
	DefaultUploadDir    = "static/uploads"
	DefaultMaxFileSize  = 10 * 1024 * 1024
	MultipartOverhead   = 1024 * 1024

	StorageDisk  = "disk"
	StorageMinio = "minio"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:8000",
	"http://127.0.0.1:8000",
}

type Config struct {
	ServiceName string
	Environment string
	LogLevel    string

	Port int

	DatabaseURL  string
	DatabaseName string

	AllowedOrigins []string

	StorageBackend string
	UploadDir      string
	MaxFileSize    int64
	MaxRequestSize int64

	Minio MinioConfig

	KafkaBrokers []string
	KafkaTopic   string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("env_file_error", "error", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	maxFile := envcfg.EnvInt64Default("MAX_FILE_SIZE", DefaultMaxFileSize)

	cfg := Config{
		ServiceName: envcfg.EnvDefault("SERVICE_NAME", "pitipaw-catalog"),
		Environment: envcfg.EnvDefault("ENVIRONMENT", "development"),
		LogLevel:    envcfg.EnvDefault("LOG_LEVEL", "info"),

		Port: envcfg.EnvIntDefault("PORT", DefaultPort),

		DatabaseURL:  envcfg.EnvFirst(DefaultDatabaseURL, "DATABASE_URL", "MONGO_URI", "MONGO_URI_LOCAL"),
		DatabaseName: envcfg.EnvDefault("MONGO_DATABASE", DefaultDatabaseName),

		AllowedOrigins: envcfg.CSV(envcfg.EnvDefault("CORS_ALLOWED_ORIGINS", "")),

		StorageBackend: envcfg.EnvDefault("STORAGE_BACKEND", StorageDisk),
		UploadDir:      envcfg.EnvDefault("UPLOAD_DIR", DefaultUploadDir),
		MaxFileSize:    maxFile,
		MaxRequestSize: envcfg.EnvInt64Default("MAX_REQUEST_SIZE", maxFile+MultipartOverhead),

		Minio: MinioConfig{
			Endpoint:  envcfg.EnvDefault("MINIO_ENDPOINT", ""),
			AccessKey: envcfg.EnvDefault("MINIO_ACCESS_KEY", ""),
			SecretKey: envcfg.EnvDefault("MINIO_SECRET_KEY", ""),
			Bucket:    envcfg.EnvDefault("MINIO_BUCKET", "uploads"),
			UseSSL:    envcfg.EnvBoolDefault("MINIO_USE_SSL", false),
		},

		KafkaBrokers: envcfg.CSV(envcfg.EnvDefault("KAFKA_BROKERS", "")),
		KafkaTopic:   envcfg.EnvDefault("KAFKA_TOPIC", "catalog_events"),
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = append([]string(nil), defaultOrigins...)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		cfg.Port = DefaultPort
	}
	if cfg.MaxRequestSize < cfg.MaxFileSize {
		cfg.MaxRequestSize = cfg.MaxFileSize + MultipartOverhead
	}

	switch cfg.StorageBackend {
	case StorageDisk:
	case StorageMinio:
		if err := envcfg.RequireNonEmpty(
			cfg.Minio.Endpoint, "MINIO_ENDPOINT",
			cfg.Minio.AccessKey, "MINIO_ACCESS_KEY",
			cfg.Minio.SecretKey, "MINIO_SECRET_KEY",
		); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, errors.New("STORAGE_BACKEND must be disk or minio")
	}

	return cfg, nil
}

// EventsEnabled reports whether a Kafka broker list was configured.
func (c Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
