package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadSolverConfig_Success(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "solver.yaml")

	configContent := `parts:
  default_workers: 2

  reducers:
    - name: part_one
      enabled: true
      description: "Sum of part numbers"

    - name: part_two
      enabled: false
      description: "Sum of gear ratios"
      workers: 8
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("SOLVER_CONFIG_PATH", configPath)

	cfg, err := LoadSolverConfig()
	if err != nil {
		t.Fatalf("LoadSolverConfig() failed: %v", err)
	}

	if len(cfg.Parts.Reducers) != 2 {
		t.Fatalf("Expected 2 reducers, got %d", len(cfg.Parts.Reducers))
	}

	partOne := cfg.Parts.Reducers[0]
	if partOne.Name != "part_one" {
		t.Errorf("Expected reducer name 'part_one', got '%s'", partOne.Name)
	}
	if !partOne.Enabled {
		t.Error("Expected part_one to be enabled")
	}
	// Inherits default_workers
	if partOne.Workers != 2 {
		t.Errorf("Expected part_one workers=2, got %d", partOne.Workers)
	}

	partTwo := cfg.Parts.Reducers[1]
	if partTwo.Enabled {
		t.Error("Expected part_two to be disabled")
	}
	if partTwo.Workers != 8 {
		t.Errorf("Expected part_two workers=8, got %d", partTwo.Workers)
	}
}

func TestLoadSolverConfig_FileNotFound(t *testing.T) {
	t.Setenv("SOLVER_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := LoadSolverConfig(); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestParseSolverConfig_Defaults(t *testing.T) {
	cfg, err := ParseSolverConfig([]byte(`parts:
  reducers:
    - name: part_one
      enabled: true
`))
	if err != nil {
		t.Fatalf("ParseSolverConfig() failed: %v", err)
	}

	if cfg.Parts.DefaultWorkers != 1 {
		t.Errorf("Expected default_workers=1, got %d", cfg.Parts.DefaultWorkers)
	}
	if cfg.Parts.Reducers[0].Workers != 1 {
		t.Errorf("Expected workers=1, got %d", cfg.Parts.Reducers[0].Workers)
	}
}

func TestParseSolverConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "parts: [",
			wantErr: "yaml",
		},
		{
			name:    "no reducers",
			content: "parts:\n  default_workers: 1\n",
			wantErr: "no reducers",
		},
		{
			name:    "missing name",
			content: "parts:\n  reducers:\n    - enabled: true\n",
			wantErr: "no name",
		},
		{
			name:    "duplicate name",
			content: "parts:\n  reducers:\n    - name: part_one\n    - name: part_one\n",
			wantErr: "configured twice",
		},
		{
			name:    "negative workers",
			content: "parts:\n  reducers:\n    - name: part_two\n      workers: -2\n",
			wantErr: "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSolverConfig([]byte(tt.content))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}
