package main

import (
	"context"
	"log"
	"time"

	"github.com/safar/go-sql-shop/internal/config"
	"github.com/safar/go-sql-shop/internal/database"
	"github.com/safar/go-sql-shop/internal/logging"
	"go.uber.org/zap"
)

// Creates the tables without starting the server:
//
//	go run scripts/init_schema.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	logger, err := logging.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Build logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewConnection(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("Connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		logger.Fatal("Ensure schema", zap.Error(err))
	}

	logger.Info("Schema is up to date")
}
