package parts

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/schematic-agent/internal/config"
	"github.com/rs/zerolog"
)

// Pool builds the set of reducers described by the solver configuration
type Pool struct {
	logger *zerolog.Logger
}

func NewPool(logger *zerolog.Logger) *Pool {
	return &Pool{
		logger: logger,
	}
}

func (p *Pool) BuildFromConfig(cfg *config.SolverConfig) ([]Reducer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("solver config is nil")
	}

	var reducers []Reducer

	for _, partCfg := range cfg.Parts.Reducers {
		if !partCfg.Enabled {
			p.logger.Info().
				Str("part", partCfg.Name).
				Msg("part disabled in config, skipping")
			continue
		}

		reducer, err := New(partCfg.Name, partCfg.Workers)
		if err != nil {
			return nil, fmt.Errorf("failed to create part %s: %w", partCfg.Name, err)
		}

		reducers = append(reducers, reducer)

		p.logger.Info().
			Str("part", partCfg.Name).
			Int("workers", partCfg.Workers).
			Msg("part created successfully")
	}

	if len(reducers) == 0 {
		return nil, fmt.Errorf("no enabled parts found in config")
	}

	p.logger.Info().
		Int("total_parts", len(reducers)).
		Msg("part pool built successfully")

	return reducers, nil
}
