package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minatoaquaMK2/LightRAG/internal/multimodal"
	"github.com/redis/go-redis/v9"
)

// Publisher puts document jobs onto the worker stream.
type Publisher struct {
	client *redis.Client
	stream string
}

func NewPublisher(client *redis.Client, stream string) *Publisher {
	return &Publisher{
		client: client,
		stream: stream,
	}
}

func (p *Publisher) Publish(ctx context.Context, job multimodal.ProcessJob) (string, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to encode job: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{"payload": string(payload)},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to publish job: %w", err)
	}

	return id, nil
}
