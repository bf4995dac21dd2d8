package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Summary tallies results by status and totals the answers per part.
type Summary struct {
	Records     int               `json:"records"`
	Solved      int               `json:"solved"`
	Invalid     int               `json:"invalid"`
	Failed      int               `json:"failed"`
	PartAnswers map[string]uint64 `json:"part_answers"`
}

func NewSummary() *Summary {
	return &Summary{PartAnswers: map[string]uint64{}}
}

func (s *Summary) Add(result models.SolveResult) {
	s.Records++
	switch result.Status {
	case models.StatusSolved:
		s.Solved++
	case models.StatusInvalid:
		s.Invalid++
	default:
		s.Failed++
	}

	for _, part := range result.Parts {
		if part.Error == "" {
			s.PartAnswers[part.Name] += uint64(part.Answer)
		}
	}
}

type Writer struct {
	out     io.Writer
	format  string
	encoder *json.Encoder
	summary *Summary
	logger  *zerolog.Logger
}

func NewWriter(out io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	switch format {
	case FormatJSONL, FormatSummary:
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	return &Writer{
		out:     out,
		format:  format,
		encoder: json.NewEncoder(out),
		summary: NewSummary(),
		logger:  logger,
	}, nil
}

func (w *Writer) Write(result models.SolveResult) error {
	w.summary.Add(result)

	if w.format == FormatJSONL {
		return w.encoder.Encode(result)
	}
	return nil
}

func (w *Writer) Summary() *Summary {
	return w.summary
}

// Close flushes the summary when the writer runs in summary format.
func (w *Writer) Close() error {
	if w.format != FormatSummary {
		return nil
	}

	w.logger.Debug().Int("records", w.summary.Records).Msg("writing summary")
	return WriteSummary(w.out, w.summary)
}

func WriteSummary(out io.Writer, summary *Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
