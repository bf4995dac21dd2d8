package models

import (
	"time"
)

type Status string

const (
	StatusSolved  Status = "solved"
	StatusInvalid Status = "invalid"
	StatusFailed  Status = "failed"
)

// Input message

type SolveRequest struct {
	EventID   string `json:"event_id"`
	Source    string `json:"source,omitempty"`
	Schematic string `json:"schematic"`
}

// Normalized internal object
type SolveContext struct {
	RequestID string    `json:"request_id" jsonschema:"required,description=Unique request identifier"`
	Source    string    `json:"source,omitempty" jsonschema:"description=Where the schematic came from"`
	Schematic string    `json:"schematic" jsonschema:"required,description=Raw schematic text, one grid row per line"`
	CreatedAt time.Time `json:"created_at" jsonschema:"description=Time when the solve context was created"`
}

// One reducer's output
type PartResult struct {
	Name     string        `json:"name"`
	Answer   uint32        `json:"answer"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

type SolveResult struct {
	ID      string       `json:"id"`
	Status  Status       `json:"status"`
	Reason  string       `json:"reason,omitempty"`
	Rows    int          `json:"rows"`
	Columns int          `json:"columns"`
	Parts   []PartResult `json:"parts"`
}

// Answer returns the answer recorded for the named part.
func (r SolveResult) Answer(name string) (uint32, bool) {
	for _, p := range r.Parts {
		if p.Name == name && p.Error == "" {
			return p.Answer, true
		}
	}
	return 0, false
}

func NewSolveContext(req SolveRequest) SolveContext {
	return SolveContext{
		RequestID: req.EventID,
		Source:    req.Source,
		Schematic: req.Schematic,
		CreatedAt: time.Now(),
	}
}
