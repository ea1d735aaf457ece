package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Skotchmaster/pitipaw_catalog/internal/config"
	"github.com/Skotchmaster/pitipaw_catalog/internal/events"
	"github.com/Skotchmaster/pitipaw_catalog/internal/httpserver"
	"github.com/Skotchmaster/pitipaw_catalog/internal/repo"
	"github.com/Skotchmaster/pitipaw_catalog/internal/service"
	"github.com/Skotchmaster/pitipaw_catalog/internal/storage"
)

// App holds everything built once at startup and shared by all requests.
type App struct {
	Store     repo.Store
	Files     storage.FileStore
	Publisher events.Publisher

	Catalog *service.CatalogService
	Admins  *service.AdminService
	Images  *service.ImageService
	System  *service.SystemService

	maxRequestSize int64
}

// Build opens the store, ensures its schema and wires the services.
func Build(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	store, err := repo.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close(context.Background())
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	files, err := openFiles(cfg)
	if err != nil {
		_ = store.Close(context.Background())
		return nil, err
	}

	var pub events.Publisher = events.Nop{}
	if cfg.EventsEnabled() {
		kp, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			_ = store.Close(context.Background())
			return nil, fmt.Errorf("kafka publisher: %w", err)
		}
		pub = kp
		logger.Info("events_enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	return New(store, files, pub, cfg.MaxFileSize, cfg.MaxRequestSize), nil
}

// New wires services over already-open backends.
func New(store repo.Store, files storage.FileStore, pub events.Publisher, maxFileSize, maxRequestSize int64) *App {
	return &App{
		Store:     store,
		Files:     files,
		Publisher: pub,

		Catalog: &service.CatalogService{Repo: store, Events: pub},
		Admins:  &service.AdminService{Repo: store, Events: pub},
		Images:  &service.ImageService{Store: files, MaxFileSize: maxFileSize},
		System:  &service.SystemService{Counts: store, DB: store},

		maxRequestSize: maxRequestSize,
	}
}

func openFiles(cfg config.Config) (storage.FileStore, error) {
	switch cfg.StorageBackend {
	case config.StorageMinio:
		s, err := storage.NewMinioStore(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
		if err != nil {
			return nil, fmt.Errorf("minio store: %w", err)
		}
		return s, nil
	default:
		s, err := storage.NewDiskStore(cfg.UploadDir)
		if err != nil {
			return nil, fmt.Errorf("disk store: %w", err)
		}
		return s, nil
	}
}

// Deps returns the HTTP handlers for httpserver.Register.
func (a *App) Deps() *httpserver.Deps {
	return &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Svc: a.Catalog},
		AdminHandler:   &httpserver.AdminHTTP{Svc: a.Admins},
		UploadHandler:  &httpserver.UploadHTTP{Svc: a.Images, MaxRequestSize: a.maxRequestSize},
		SystemHandler:  &httpserver.SystemHTTP{Svc: a.System},
	}
}

// Close releases the publisher and the store.
func (a *App) Close(ctx context.Context) error {
	return errors.Join(a.Publisher.Close(), a.Store.Close(ctx))
}
