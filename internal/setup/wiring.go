package setup

import (
	"fmt"
	"os"
	"strconv"

	"github.com/povarna/generative-ai-agents/schematic-agent/internal/config"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/parts"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel      string
	APIPort       string
	RedisAddr     string
	RedisPassword string
	// GearWorkers overrides the part_two workers from the YAML config when > 0
	GearWorkers int
}

type Dependencies struct {
	Executor     *executor.Executor
	PartExecutor *executor.PartExecutor
	Logger       *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		APIPort:       getEnv("SCHEMATIC_API_PORT", "18083"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		GearWorkers:   getEnvInt("GEAR_WORKERS", 0),
	}
}

func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	// Load parts configuration from YAML
	solverConfig, err := config.LoadSolverConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load solver config: %w", err)
	}

	return WireFromSolverConfig(cfg, solverConfig, logger)
}

func WireFromSolverConfig(cfg *Config, solverConfig *config.SolverConfig, logger *zerolog.Logger) (*Dependencies, error) {
	if cfg.GearWorkers > 0 {
		for i := range solverConfig.Parts.Reducers {
			if solverConfig.Parts.Reducers[i].Name == parts.PartTwo {
				solverConfig.Parts.Reducers[i].Workers = cfg.GearWorkers
			}
		}
	}

	pool := parts.NewPool(logger)
	reducers, err := pool.BuildFromConfig(solverConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build parts from config: %w", err)
	}

	runner := parts.NewRunner(reducers)
	factory := parts.NewFactory(reducers)

	return &Dependencies{
		Executor:     executor.NewExecutor(runner, logger),
		PartExecutor: executor.NewPartExecutor(factory, logger),
		Logger:       logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
