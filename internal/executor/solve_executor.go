package executor

import (
	"context"

	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/schematic"
	"github.com/rs/zerolog"
)

// ReducerRunner runs every configured part against a grid
type ReducerRunner interface {
	Run(ctx context.Context, grid *schematic.Grid) []models.PartResult
}

type Executor struct {
	runner ReducerRunner
	logger *zerolog.Logger
}

func NewExecutor(runner ReducerRunner, logger *zerolog.Logger) *Executor {
	return &Executor{
		runner: runner,
		logger: logger,
	}
}

func (e *Executor) Execute(ctx context.Context, solveCtx models.SolveContext) models.SolveResult {
	id := solveCtx.RequestID
	e.logger.Info().Str("requestID", id).Msg("starting solve")

	result := models.SolveResult{
		ID:    id,
		Parts: []models.PartResult{},
	}

	grid, err := schematic.Parse(solveCtx.Schematic)
	if err != nil {
		e.logger.Warn().Err(err).Str("requestID", id).Msg("schematic rejected")
		result.Status = models.StatusInvalid
		result.Reason = err.Error()
		return result
	}

	result.Rows = grid.Height()
	result.Columns = grid.Width()
	result.Parts = append(result.Parts, e.runner.Run(ctx, grid)...)
	result.Status = statusOf(result.Parts)

	e.logger.
		Info().
		Str("requestID", id).
		Str("status", string(result.Status)).
		Int("parts", len(result.Parts)).
		Msg("solve complete")
	return result
}

func statusOf(parts []models.PartResult) models.Status {
	for _, p := range parts {
		if p.Error != "" {
			return models.StatusFailed
		}
	}
	return models.StatusSolved
}
