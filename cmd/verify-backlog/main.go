package main

import (
	"context"
	"log"

	"github.com/afrovibz/product-images-go/internal/config"
	"github.com/afrovibz/product-images-go/internal/db"
	"github.com/afrovibz/product-images-go/internal/port"
	"github.com/afrovibz/product-images-go/internal/repository/mariadb"
	"github.com/afrovibz/product-images-go/internal/task"
	imagesSvc "github.com/afrovibz/product-images-go/internal/usecase/images"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌  Configuration error: %v", err)
	}

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("DB close error: %v", err)
		}
	}()

	dispatcher := initDispatcher(cfg)
	repo := mariadb.NewImageRepository(database.DB)

	verifier := imagesSvc.NewBacklogVerifier(repo, dispatcher)
	if err := verifier.VerifyBacklog(context.Background()); err != nil {
		log.Fatalf("❌  Backlog verification failed: %v", err)
	}
	log.Println("✅  Backlog verification completed")
}

func initDb(cfg *config.Settings) *db.Database {
	log.Println("initialising database...")
	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		log.Fatalf("❌  Failed to connect to db: %v", err)
	}
	return database
}

func initDispatcher(cfg *config.Settings) port.TaskDispatcher {
	if cfg.RedisAddr == "" {
		log.Fatalf("❌  Redis not configured: this command requires a running Redis instance")
	}
	return task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
}
