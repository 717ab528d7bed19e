package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/mercadito/catalog-service/docs"
	"github.com/mercadito/catalog-service/internal/api"
	"github.com/mercadito/catalog-service/internal/infrastructure/config"
	mongodb "github.com/mercadito/catalog-service/internal/infrastructure/db/mongo"
	redisdb "github.com/mercadito/catalog-service/internal/infrastructure/db/redis"
	"github.com/mercadito/catalog-service/pkg/logger"
)

// @title                      Catalog Service API
// @version                    1.0
// @description                Role-gated directory of accounts, categories and products.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		logg.Fatal().Err(err).Msg("index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()

	tokenTTL, err := time.ParseDuration(cfg.TokenTTL)
	if err != nil {
		logg.Fatal().Err(err).Str("token_ttl", cfg.TokenTTL).Msg("invalid TOKEN_TTL")
	}

	e := api.NewRouter(db, rdb, logg, api.Options{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  tokenTTL,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			logg.Info().Err(err).Msg("http server stopped")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logg.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("shutdown failed")
	}
}
