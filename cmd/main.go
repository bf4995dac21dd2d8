package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/parts"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var inputFile = flag.String("inputFile", "input.txt", "Relative path to the input file")
var part = flag.String("part", "all", "Part to solve: all, part_one or part_two")

func main() {
	flag.Parse()

	// Load env
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using environment variables")
	}

	cfg := setup.LoadConfig()

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, cfg.LogLevel)
	appLogger := log.Logger

	deps, err := setup.Wire(cfg, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	bytes, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", *inputFile).Msg("Unable to read the input file")
	}

	solveCtx := models.NewSolveContext(models.SolveRequest{
		EventID:   *inputFile,
		Source:    "cli",
		Schematic: string(bytes),
	})

	ctx := context.Background()

	var result models.SolveResult
	if *part == "all" {
		result = deps.Executor.Execute(ctx, solveCtx)
	} else {
		result, err = deps.PartExecutor.Execute(ctx, *part, solveCtx)
		if err != nil {
			log.Fatal().Err(err).Str("part", *part).Msg("Unable to solve part")
		}
	}

	if result.Status == models.StatusInvalid {
		log.Fatal().Str("reason", result.Reason).Msg("Invalid schematic")
	}

	for _, p := range result.Parts {
		if p.Error != "" {
			log.Error().Str("part", p.Name).Str("error", p.Error).Msg("Part failed")
			continue
		}
		fmt.Printf("AoC2023, Day3, %s solution is: %d\n", label(p.Name), p.Answer)
	}
}

func label(name string) string {
	switch name {
	case parts.PartOne:
		return "Part1"
	case parts.PartTwo:
		return "Part2"
	default:
		return name
	}
}
