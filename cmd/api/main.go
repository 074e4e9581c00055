package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/afrovibz/product-images-go/internal/cache"
	"github.com/afrovibz/product-images-go/internal/codec"
	"github.com/afrovibz/product-images-go/internal/config"
	"github.com/afrovibz/product-images-go/internal/db"
	"github.com/afrovibz/product-images-go/internal/handler/api"
	"github.com/afrovibz/product-images-go/internal/logger"
	cMiddleware "github.com/afrovibz/product-images-go/internal/middleware"
	"github.com/afrovibz/product-images-go/internal/port"
	"github.com/afrovibz/product-images-go/internal/ratelimit"
	"github.com/afrovibz/product-images-go/internal/renderer"
	"github.com/afrovibz/product-images-go/internal/repository/mariadb"
	"github.com/afrovibz/product-images-go/internal/storage"
	"github.com/afrovibz/product-images-go/internal/task"
	imagesSvc "github.com/afrovibz/product-images-go/internal/usecase/images"
	msuuid "github.com/afrovibz/product-images-go/internal/uuid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx, cfg.JWTSecret)

	strg := initStorage(ctx, cfg)
	initBucket(ctx, strg, cfg.Bucket)

	imageRepo := mariadb.NewImageRepository(database.DB)
	var ca port.Cache
	var dispatcher port.TaskDispatcher
	var limiter port.RateLimiter
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		limiter = ratelimit.NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, imagesSvc.RateLimitPerWindow, imagesSvc.RateLimitWindow)
		logger.Info(ctx, "✅  Redis enabled for caching and rate limiting")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		limiter = ratelimit.NewMemoryLimiter(imagesSvc.RateLimitPerWindow, imagesSvc.RateLimitWindow)
		logger.Warn(ctx, "⚠️  Redis not configured: caching is disabled, rate limiting is per-instance")
	}

	uploaderSvc := imagesSvc.NewImageUploader(imageRepo, strg, codec.NewCodec(), limiter, ca, dispatcher, msuuid.NewUUID, cfg.Bucket, cfg.TempDir)
	r.With(cMiddleware.WithProductID()).
		Post("/products/{productID}/images", api.UploadImagesHandler(uploaderSvc))

	listerSvc := imagesSvc.NewImageLister(imageRepo, strg, cfg.Bucket)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(cMiddleware.WithProductID()).
		Get("/products/{productID}/images", api.GetImagesHandler(rendererSvc, listerSvc))

	reordererSvc := imagesSvc.NewImageReorderer(imageRepo, ca)
	r.With(cMiddleware.WithProductID()).
		Put("/products/{productID}/images", api.ReorderImagesHandler(reordererSvc))

	deleterSvc := imagesSvc.NewImageDeleter(imageRepo, ca, strg, cfg.Bucket)
	r.With(cMiddleware.WithProductID()).
		Delete("/products/{productID}/images", api.DeleteImageHandler(deleterSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context, jwtSecret string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithAdminAuth(jwtSecret))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBucket(ctx context.Context, strg port.Storage, bucket string) {
	if err := strg.InitBucket(bucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", bucket, err)
		os.Exit(1)
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
