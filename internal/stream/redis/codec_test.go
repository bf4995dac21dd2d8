package redis

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	"github.com/redis/go-redis/v9"
)

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name        string
		msg         redis.XMessage
		wantEventID string
		wantErr     bool
	}{
		{
			name: "valid payload",
			msg: redis.XMessage{ID: "1-0", Values: map[string]any{
				"payload": `{"event_id":"evt-1","schematic":"12*3"}`,
			}},
			wantEventID: "evt-1",
		},
		{
			name: "event id falls back to entry id",
			msg: redis.XMessage{ID: "2-0", Values: map[string]any{
				"payload": `{"schematic":"12*3"}`,
			}},
			wantEventID: "2-0",
		},
		{
			name:    "missing payload",
			msg:     redis.XMessage{ID: "3-0", Values: map[string]any{"other": "x"}},
			wantErr: true,
		},
		{
			name:    "invalid json",
			msg:     redis.XMessage{ID: "4-0", Values: map[string]any{"payload": `{"event_id":`}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := decodeRequest(tt.msg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.EventID != tt.wantEventID {
				t.Errorf("expected event id %s, got %s", tt.wantEventID, req.EventID)
			}
		})
	}
}

func TestDecodeRequest_MissingPayloadSentinel(t *testing.T) {
	_, err := decodeRequest(redis.XMessage{ID: "5-0", Values: map[string]any{}})
	if !errors.Is(err, ErrMissingPayload) {
		t.Errorf("expected ErrMissingPayload, got %v", err)
	}
}

func TestEncodePayload(t *testing.T) {
	values, err := encodePayload(models.SolveResult{ID: "evt-1", Status: models.StatusSolved})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload, ok := values["payload"].(string)
	if !ok {
		t.Fatalf("expected string payload, got %T", values["payload"])
	}

	var result models.SolveResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("payload is not valid json: %v", err)
	}
	if result.ID != "evt-1" || result.Status != models.StatusSolved {
		t.Errorf("unexpected result: %+v", result)
	}
}
