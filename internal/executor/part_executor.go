package executor

import (
	"context"
	"errors"

	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/parts"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/schematic"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . ReducerRunner,PartFactory,Reducer

// Reducer is what a PartFactory hands out
type Reducer = parts.Reducer

type PartFactory interface {
	Get(partName string) (parts.Reducer, error)
}

type PartExecutor struct {
	parts  PartFactory
	logger *zerolog.Logger
}

func NewPartExecutor(parts PartFactory, logger *zerolog.Logger) *PartExecutor {
	return &PartExecutor{
		parts:  parts,
		logger: logger,
	}
}

var ErrPartNotFound = parts.ErrPartNotFound

func (e *PartExecutor) Execute(ctx context.Context, partName string, solveCtx models.SolveContext) (models.SolveResult, error) {
	id := solveCtx.RequestID
	e.logger.Info().Str("requestID", id).Str("part", partName).Msg("starting solve")

	result := models.SolveResult{
		ID:    id,
		Parts: []models.PartResult{},
	}

	reducer, err := e.parts.Get(partName)
	if err != nil {
		e.logger.Error().Err(err).Str("part", partName).Msg("Part not found")
		if errors.Is(err, parts.ErrPartNotFound) {
			return result, ErrPartNotFound
		}
		return result, err
	}

	grid, err := schematic.Parse(solveCtx.Schematic)
	if err != nil {
		e.logger.Warn().Err(err).Str("requestID", id).Msg("schematic rejected")
		result.Status = models.StatusInvalid
		result.Reason = err.Error()
		return result, nil
	}

	result.Rows = grid.Height()
	result.Columns = grid.Width()

	result.Parts = append(result.Parts, parts.Apply(ctx, reducer, grid))
	result.Status = statusOf(result.Parts)

	return result, nil
}
