// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/infrastructure/database/postgres"
	"github.com/your-org/storefront/internal/infrastructure/database/redis"
	"github.com/your-org/storefront/internal/infrastructure/gateway/fakestore"
	"github.com/your-org/storefront/internal/interfaces/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Logging.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logrus.SetLevel(level)
	}

	logrus.WithFields(logrus.Fields{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Infof("Starting %s", cfg.App.Name)

	// Connect to database
	db, err := postgres.NewConnection(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := db.Health(); err != nil {
		logrus.Fatalf("Database health check failed: %v", err)
	}
	if err := redisClient.Health(); err != nil {
		logrus.Fatalf("Redis health check failed: %v", err)
	}

	// Run database migrations
	migration := postgres.NewMigration(db.GetDB())

	if err := migration.RunAutoMigrations(); err != nil {
		logrus.Fatalf("Database migration failed: %v", err)
	}
	if err := migration.CreateIndexes(); err != nil {
		logrus.Warnf("Index creation failed: %v", err)
	}

	// Remote catalog/cart backend
	gateway := fakestore.NewClient(cfg)

	server := http.NewServer(cfg, db, redisClient, gateway)

	go func() {
		if err := server.Start(); err != nil {
			logrus.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logrus.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logrus.Info("Server shutdown completed")
}
