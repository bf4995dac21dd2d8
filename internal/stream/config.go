package stream

import "github.com/povarna/generative-ai-agents/schematic-agent/internal/stream/redis"

type StreamConfig struct {
	Provider    string // redis only for now
	RedisConfig *redis.RedisStreamConfig
}
