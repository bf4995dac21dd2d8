package parts

import (
	"context"
	"sync"
	"time"

	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/schematic"
)

type Runner struct {
	Reducers []Reducer
}

func NewRunner(reducers []Reducer) *Runner {
	return &Runner{
		Reducers: reducers,
	}
}

// Run applies every reducer to the grid. Results keep the reducer order.
func (r *Runner) Run(ctx context.Context, grid *schematic.Grid) []models.PartResult {
	results := make([]models.PartResult, len(r.Reducers))
	var wg sync.WaitGroup

	for i, reducer := range r.Reducers {
		wg.Add(1)
		go func(i int, red Reducer) {
			defer wg.Done()
			results[i] = Apply(ctx, red, grid)
		}(i, reducer)
	}

	wg.Wait()

	return results
}

// Apply runs one reducer and records its answer, error and duration.
func Apply(ctx context.Context, reducer Reducer, grid *schematic.Grid) models.PartResult {
	start := time.Now()
	answer, err := reducer.Reduce(ctx, grid)

	result := models.PartResult{
		Name:     reducer.Name(),
		Answer:   answer,
		Duration: time.Since(start),
	}
	if err != nil {
		result.Answer = 0
		result.Error = err.Error()
	}
	return result
}
