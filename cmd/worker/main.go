package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/minatoaquaMK2/LightRAG/internal/config"
	red "github.com/minatoaquaMK2/LightRAG/internal/redis"
	"github.com/minatoaquaMK2/LightRAG/internal/setup"
	"github.com/minatoaquaMK2/LightRAG/internal/setup/logger"
	"github.com/minatoaquaMK2/LightRAG/internal/stream"
	"github.com/minatoaquaMK2/LightRAG/internal/stream/redis"
	"github.com/minatoaquaMK2/LightRAG/internal/watcher"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	lgr := logger.New(cfg.LogLevel)
	log.Logger = lgr

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &lgr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	streamCfg := &stream.StreamConfig{
		Provider: os.Getenv("STREAM_PROVIDER"),
		RedisConfig: redis.NewRedisStreamConfig(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.Stream,
			cfg.Redis.Group,
			cfg.Redis.Consumer,
		),
	}

	consumer, err := stream.NewStreamConsumer(ctx, streamCfg, deps.Service, &lgr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream consumer")
	}

	// Setup consumer
	if err := consumer.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup consumer")
	}

	// Start consumer
	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			lgr.Error().Err(err).Msg("Consumer stopped with error")
		}
	}()

	// Optional input-directory watcher feeding the same stream.
	if cfg.Ingest.InputDir != "" {
		client, err := red.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis for watcher")
		}

		publisher := redis.NewPublisher(client, cfg.Redis.Stream)

		w, err := watcher.New(publisher, "./output", cfg.Ingest.Extensions, &lgr)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create watcher")
		}
		defer w.Stop()

		go func() {
			if err := w.Watch(ctx, cfg.Ingest.InputDir); err != nil && !errors.Is(err, context.Canceled) {
				lgr.Error().Err(err).Msg("Watcher stopped with error")
			}
		}()
	}

	// Wait for context to be done
	<-ctx.Done()
	log.Info().Msg("Shutting down...")

	log.Info().Msg("Worker stopped")
}
