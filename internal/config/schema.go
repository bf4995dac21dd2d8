package config

// SolverConfig represents the complete solver configuration
type SolverConfig struct {
	Parts PartsConfig `yaml:"parts"`
}

// PartsConfig lists the reducers run against every schematic
type PartsConfig struct {
	DefaultWorkers int          `yaml:"default_workers"`
	Reducers       []PartConfig `yaml:"reducers"`
}

type PartConfig struct {
	Name        string `yaml:"name"`
	Enabled     bool   `yaml:"enabled"`
	Description string `yaml:"description"`
	Workers     int    `yaml:"workers"`
}
