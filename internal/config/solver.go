package config

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const defaultConfigPath = "configs/solver.yaml"

func LoadSolverConfig() (*SolverConfig, error) {
	path := os.Getenv("SOLVER_CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseSolverConfig(data)
}

func ParseSolverConfig(data []byte) (*SolverConfig, error) {
	var cfg SolverConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *SolverConfig) {
	if cfg.Parts.DefaultWorkers == 0 {
		cfg.Parts.DefaultWorkers = 1
	}
	for i := range cfg.Parts.Reducers {
		if cfg.Parts.Reducers[i].Workers == 0 {
			cfg.Parts.Reducers[i].Workers = cfg.Parts.DefaultWorkers
		}
	}
}

func (c *SolverConfig) Validate() error {
	if len(c.Parts.Reducers) == 0 {
		return errors.New("no reducers configured")
	}

	if c.Parts.DefaultWorkers < 0 {
		return fmt.Errorf("default_workers must not be negative, got %d", c.Parts.DefaultWorkers)
	}

	seen := make(map[string]bool)
	for i, part := range c.Parts.Reducers {
		if part.Name == "" {
			return fmt.Errorf("reducer %d has no name", i)
		}
		if seen[part.Name] {
			return fmt.Errorf("reducer %s configured twice", part.Name)
		}
		seen[part.Name] = true

		if part.Workers < 0 {
			return fmt.Errorf("reducer %s: workers must not be negative, got %d", part.Name, part.Workers)
		}
	}

	return nil
}
