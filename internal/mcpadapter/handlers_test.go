package mcpadapter

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/schematic-agent/internal/config"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/setup"
	"github.com/rs/zerolog"
)

const example = "467..114..\n...*......\n..35..633.\n......#...\n617*......\n.....+.58.\n..592.....\n......755.\n...$.*....\n.664.598.."

func testDependencies(t *testing.T) *setup.Dependencies {
	t.Helper()

	logger := zerolog.Nop()
	deps, err := setup.WireFromSolverConfig(&setup.Config{}, &config.SolverConfig{Parts: config.PartsConfig{
		Reducers: []config.PartConfig{
			{Name: "part_one", Enabled: true, Workers: 1},
			{Name: "part_two", Enabled: true, Workers: 1},
		},
	}}, &logger)
	if err != nil {
		t.Fatalf("Failed to wire dependencies: %v", err)
	}
	return deps
}

func TestSolve(t *testing.T) {
	deps := testDependencies(t)

	_, result, err := NewSolveHandler(deps.Executor)(context.Background(), nil, SolveInput{
		EventID:   "mcp-001",
		Schematic: example,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Status != models.StatusSolved {
		t.Errorf("expected status solved, got %s", result.Status)
	}
	if answer, _ := result.Answer("part_one"); answer != 4361 {
		t.Errorf("expected part_one 4361, got %d", answer)
	}
	if answer, _ := result.Answer("part_two"); answer != 467835 {
		t.Errorf("expected part_two 467835, got %d", answer)
	}
}

func TestSolvePart(t *testing.T) {
	deps := testDependencies(t)
	handler := NewSolvePartHandler(deps.PartExecutor)

	_, result, err := handler(context.Background(), nil, SolvePartInput{
		EventID:   "mcp-002",
		Schematic: example,
		PartName:  "part_two",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer, ok := result.Answer("part_two"); !ok || answer != 467835 {
		t.Errorf("expected part_two 467835, got %d", answer)
	}

	_, _, err = handler(context.Background(), nil, SolvePartInput{
		EventID:   "mcp-003",
		Schematic: example,
		PartName:  "part_three",
	})
	if !errors.Is(err, executor.ErrPartNotFound) {
		t.Errorf("expected ErrPartNotFound, got %v", err)
	}
}

func TestNewServer(t *testing.T) {
	deps := testDependencies(t)
	if NewServer(deps.Executor, deps.PartExecutor) == nil {
		t.Fatal("expected a server")
	}
}
