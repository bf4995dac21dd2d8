package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/povarna/generative-ai-agents/schematic-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	"github.com/rs/zerolog"
)

type Processor struct {
	executor *executor.Executor
	workers  int
	logger   *zerolog.Logger
}

func NewProcessor(exec *executor.Executor, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		executor: exec,
		workers:  workers,
		logger:   logger,
	}
}

// Process solves the records on a pool of workers. Results arrive in
// completion order.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan models.SolveResult {
	jobs := make(chan InputRecord)
	results := make(chan models.SolveResult, p.workers)

	var wg sync.WaitGroup
	for w := range p.workers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for record := range jobs {
				result := p.solve(ctx, record)
				p.logger.Debug().
					Int("worker", id).
					Str("id", result.ID).
					Str("status", string(result.Status)).
					Msg("record processed")
				results <- result
			}
		}(w)
	}

	go func() {
		defer close(jobs)
		for _, record := range records {
			select {
			case jobs <- record:
			case <-ctx.Done():
				p.logger.Warn().Msg("Processing cancelled, skipping remaining records")
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (p *Processor) solve(ctx context.Context, record InputRecord) models.SolveResult {
	if record.Error != nil {
		return models.SolveResult{
			ID:     fmt.Sprintf("line-%d", record.LineNumber),
			Status: models.StatusInvalid,
			Reason: record.Error.Error(),
			Parts:  []models.PartResult{},
		}
	}
	return p.executor.Execute(ctx, models.NewSolveContext(record.Request))
}
