package setup

import (
	"context"
	"time"

	"github.com/minatoaquaMK2/LightRAG/internal/auth"
	"github.com/minatoaquaMK2/LightRAG/internal/config"
	"github.com/minatoaquaMK2/LightRAG/internal/engine"
	"github.com/minatoaquaMK2/LightRAG/internal/engine/engineclient"
	"github.com/minatoaquaMK2/LightRAG/internal/multimodal"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Engine  engine.Engine
	Service *multimodal.Service
	Guard   *auth.Guard
	Logger  *zerolog.Logger
}

// Wire builds the dependency graph shared by all binaries: the engine
// client, the multimodal service on top of it, and the auth guard.
func Wire(_ context.Context, cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	eng := engineclient.NewClient(engineclient.Config{
		BaseURL:             cfg.Engine.BaseURL,
		APIKey:              cfg.Engine.APIKey,
		Timeout:             time.Duration(cfg.Engine.TimeoutSeconds) * time.Second,
		MaxIdleConns:        cfg.Engine.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Engine.MaxIdleConnsPerHost,
	})

	service := multimodal.NewService(eng, logger)
	guard := auth.NewGuard(cfg.APIKey, cfg.TokenSecret)

	return &Dependencies{
		Engine:  eng,
		Service: service,
		Guard:   guard,
		Logger:  logger,
	}, nil
}
