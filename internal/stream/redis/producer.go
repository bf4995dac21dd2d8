package redis

import (
	"context"

	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	"github.com/redis/go-redis/v9"
)

// Publish appends a solve request to stream and returns the entry id.
func Publish(ctx context.Context, client *redis.Client, stream string, req models.SolveRequest) (string, error) {
	values, err := encodePayload(req)
	if err != nil {
		return "", err
	}

	return client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: values,
	}).Result()
}
