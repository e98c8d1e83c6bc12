package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/minatoaquaMK2/LightRAG/internal/config"
	"github.com/minatoaquaMK2/LightRAG/internal/multimodal"
	red "github.com/minatoaquaMK2/LightRAG/internal/redis"
	"github.com/minatoaquaMK2/LightRAG/internal/stream/redis"
	"github.com/rs/zerolog/log"
)

func main() {
	filePath := flag.String("file", "", "Path to the document to process")
	outputDir := flag.String("output", "./output", "Output directory for processed content")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: enqueue -file <path> [-output <dir>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*filePath, *outputDir); err != nil {
		log.Error().Err(err).Msg("enqueue failed")
		os.Exit(1)
	}
}

func run(filePath, outputDir string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, 3)
	if err != nil {
		return err
	}
	defer client.Close()

	job := multimodal.ProcessJob{
		JobID:     uuid.NewString(),
		FilePath:  filePath,
		OutputDir: outputDir,
	}

	id, err := redis.NewPublisher(client, cfg.Redis.Stream).Publish(ctx, job)
	if err != nil {
		return err
	}

	log.Info().Str("stream", cfg.Redis.Stream).Str("id", id).Str("job_id", job.JobID).Msg("Published successfully!")
	return nil
}
