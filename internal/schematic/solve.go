package schematic

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PartNumberSum drives a Locator over every cell and sums the runs that touch
// a symbol. Each run is counted once.
func (g *Grid) PartNumberSum() uint32 {
	locator := NewLocator(g)

	var sum uint32
	for row := range g.Height() {
		for col := range g.width {
			n, ok := locator.ScanFrom(row, col)
			if ok && n.Adjacent {
				sum += n.Value
			}
		}
	}
	return sum
}

func (g *Grid) GearRatioSum() uint32 {
	var sum uint32
	for row := range g.Height() {
		sum += g.rowGearRatioSum(row)
	}
	return sum
}

// ParallelGearRatioSum computes GearRatioSum with rows spread over at most
// workers goroutines.
func ParallelGearRatioSum(ctx context.Context, g *Grid, workers int) (uint32, error) {
	if workers < 1 {
		workers = 1
	}

	partials := make([]uint32, g.Height())

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for row := range g.Height() {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partials[row] = g.rowGearRatioSum(row)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return 0, err
	}

	var sum uint32
	for _, p := range partials {
		sum += p
	}
	return sum, nil
}

// SumAdjacentPartNumbers solves part one for raw text. It reports false when
// the text does not form a usable grid.
func SumAdjacentPartNumbers(input string) (uint32, bool) {
	grid, err := Parse(input)
	if err != nil {
		return 0, false
	}
	return grid.PartNumberSum(), true
}

// SumGearRatios solves part two for raw text. It reports false when the text
// does not form a usable grid.
func SumGearRatios(input string) (uint32, bool) {
	grid, err := Parse(input)
	if err != nil {
		return 0, false
	}
	return grid.GearRatioSum(), true
}
