package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	red "github.com/povarna/generative-ai-agents/schematic-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	data := flag.String("d", "", "Inline JSON SolveRequest")
	file := flag.String("file", "", "Schematic file to publish as a SolveRequest")
	stream := flag.String("stream", "schematic-requests", "Stream name")
	flag.Parse()

	if *data == "" && *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>' | producer -file <schematic.txt>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	req, err := buildRequest(*data, *file)
	if err != nil {
		log.Error().Err(err).Msg("invalid request")
		os.Exit(1)
	}

	if err := run(req, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func buildRequest(data, file string) (models.SolveRequest, error) {
	var req models.SolveRequest
	if data != "" {
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			return req, err
		}
		return req, nil
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return req, err
	}

	req.EventID = fmt.Sprintf("%s-%d", filepath.Base(file), time.Now().UnixNano())
	req.Source = file
	req.Schematic = string(content)
	return req, nil
}

func run(req models.SolveRequest, stream string) error {
	_ = godotenv.Load()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 3)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := redis.Publish(ctx, client, stream, req)
	if err != nil {
		return err
	}

	log.Info().Str("stream", stream).Str("id", id).Str("event_id", req.EventID).Msg("Published successfully!")
	return nil
}
