package redis

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	"github.com/redis/go-redis/v9"
)

const payloadField = "payload"

var ErrMissingPayload = errors.New("missing payload field")

func decodeRequest(msg redis.XMessage) (models.SolveRequest, error) {
	var req models.SolveRequest

	payload, ok := msg.Values[payloadField].(string)
	if !ok {
		return req, ErrMissingPayload
	}

	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return req, fmt.Errorf("decode payload: %w", err)
	}

	// Fall back to the stream entry id so results can be correlated.
	if req.EventID == "" {
		req.EventID = msg.ID
	}
	return req, nil
}

func encodePayload(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return map[string]any{payloadField: string(data)}, nil
}
