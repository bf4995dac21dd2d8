package setup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/povarna/generative-ai-agents/schematic-agent/internal/config"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SCHEMATIC_API_PORT", "")
	t.Setenv("GEAR_WORKERS", "not-a-number")

	cfg := LoadConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %s", cfg.LogLevel)
	}
	if cfg.APIPort != "18083" {
		t.Errorf("expected port 18083, got %s", cfg.APIPort)
	}
	if cfg.GearWorkers != 0 {
		t.Errorf("expected 0 gear workers, got %d", cfg.GearWorkers)
	}
}

func TestWire(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "solver.yaml")
	content := `parts:
  reducers:
    - name: part_one
      enabled: true
    - name: part_two
      enabled: true
      workers: 2
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("SOLVER_CONFIG_PATH", configPath)

	deps, err := Wire(&Config{GearWorkers: 3}, newTestLogger())
	if err != nil {
		t.Fatalf("Wire() failed: %v", err)
	}

	result := deps.Executor.Execute(context.Background(), models.SolveContext{
		RequestID: "wire-001",
		Schematic: "467..114..\n...*......\n..35..633.",
	})

	if result.Status != models.StatusSolved {
		t.Fatalf("expected status solved, got %s (%s)", result.Status, result.Reason)
	}
	if answer, _ := result.Answer("part_one"); answer != 467+35 {
		t.Errorf("expected part_one %d, got %d", 467+35, answer)
	}
	if answer, _ := result.Answer("part_two"); answer != 467*35 {
		t.Errorf("expected part_two %d, got %d", 467*35, answer)
	}
}

func TestWireFromSolverConfig_NoEnabledParts(t *testing.T) {
	solverConfig := &config.SolverConfig{Parts: config.PartsConfig{Reducers: []config.PartConfig{
		{Name: "part_one", Enabled: false},
	}}}

	if _, err := WireFromSolverConfig(&Config{}, solverConfig, newTestLogger()); err == nil {
		t.Error("expected error when no parts are enabled")
	}
}
