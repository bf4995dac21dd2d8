package parts

import (
	"context"
	"errors"

	"github.com/povarna/generative-ai-agents/schematic-agent/internal/schematic"
)

const (
	PartOne = "part_one"
	PartTwo = "part_two"
)

var ErrPartNotFound = errors.New("part not found")

// Reducer folds a whole schematic into a single answer.
type Reducer interface {
	Name() string
	Reduce(ctx context.Context, grid *schematic.Grid) (uint32, error)
}

// PartNumbers sums every number touching a symbol.
type PartNumbers struct{}

func NewPartNumbers() *PartNumbers {
	return &PartNumbers{}
}

func (p *PartNumbers) Name() string {
	return PartOne
}

func (p *PartNumbers) Reduce(ctx context.Context, grid *schematic.Grid) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return grid.PartNumberSum(), nil
}

// GearRatios sums the ratios of every gear. With more than one worker the
// rows are scanned concurrently.
type GearRatios struct {
	Workers int
}

func NewGearRatios(workers int) *GearRatios {
	return &GearRatios{Workers: workers}
}

func (g *GearRatios) Name() string {
	return PartTwo
}

func (g *GearRatios) Reduce(ctx context.Context, grid *schematic.Grid) (uint32, error) {
	if g.Workers > 1 {
		return schematic.ParallelGearRatioSum(ctx, grid, g.Workers)
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return grid.GearRatioSum(), nil
}

// New builds the reducer registered under name.
func New(name string, workers int) (Reducer, error) {
	switch name {
	case PartOne:
		return NewPartNumbers(), nil
	case PartTwo:
		return NewGearRatios(workers), nil
	default:
		return nil, ErrPartNotFound
	}
}
