package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/api"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/config"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/setup"
	"github.com/rs/zerolog"
)

const example = "467..114..\n...*......\n..35..633.\n......#...\n617*......\n.....+.58.\n..592.....\n......755.\n...$.*....\n.664.598.."

func setupTestAPI(t *testing.T) *restful.Container {
	t.Helper()

	logger := zerolog.Nop()
	solverConfig := &config.SolverConfig{Parts: config.PartsConfig{
		DefaultWorkers: 1,
		Reducers: []config.PartConfig{
			{Name: "part_one", Enabled: true, Workers: 1},
			{Name: "part_two", Enabled: true, Workers: 2},
		},
	}}

	deps, err := setup.WireFromSolverConfig(&setup.Config{}, solverConfig, &logger)
	if err != nil {
		t.Fatalf("Failed to wire dependencies: %v", err)
	}

	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, api.NewHandler(deps.Executor, deps.PartExecutor, &logger))
	api.RegisterOpenAPI(container)
	return container
}

func postJSON(t *testing.T, container *restful.Container, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)
	return recorder
}

func TestAPI_Health(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response.Status)
	}
}

func TestAPI_Solve(t *testing.T) {
	container := setupTestAPI(t)

	recorder := postJSON(t, container, "/api/v1/solve", models.SolveRequest{
		EventID:   "api-001",
		Schematic: example,
	})

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var result models.SolveResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if result.ID != "api-001" {
		t.Errorf("Expected id api-001, got %s", result.ID)
	}
	if result.Status != models.StatusSolved {
		t.Errorf("Expected status solved, got %s", result.Status)
	}
	if answer, _ := result.Answer("part_one"); answer != 4361 {
		t.Errorf("Expected part_one 4361, got %d", answer)
	}
	if answer, _ := result.Answer("part_two"); answer != 467835 {
		t.Errorf("Expected part_two 467835, got %d", answer)
	}
}

func TestAPI_Solve_EmptySchematic(t *testing.T) {
	container := setupTestAPI(t)

	recorder := postJSON(t, container, "/api/v1/solve", models.SolveRequest{EventID: "api-002"})

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	var result models.SolveResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if result.Status != models.StatusInvalid {
		t.Errorf("Expected status invalid, got %s", result.Status)
	}
}

func TestAPI_Solve_BadRequest(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader([]byte(`{"event_id":`)))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", recorder.Code)
	}
}

func TestAPI_SolvePart(t *testing.T) {
	container := setupTestAPI(t)

	tests := []struct {
		name       string
		partName   string
		wantStatus int
		wantAnswer uint32
	}{
		{name: "part one", partName: "part_one", wantStatus: http.StatusOK, wantAnswer: 4361},
		{name: "part two", partName: "part_two", wantStatus: http.StatusOK, wantAnswer: 467835},
		{name: "unknown part", partName: "part_three", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, container, "/api/v1/solve/part/"+tt.partName, models.SolveRequest{
				EventID:   "api-003",
				Schematic: example,
			})

			if recorder.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d", tt.wantStatus, recorder.Code)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var result models.SolveResult
			if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if len(result.Parts) != 1 {
				t.Fatalf("Expected 1 part, got %d", len(result.Parts))
			}
			if result.Parts[0].Answer != tt.wantAnswer {
				t.Errorf("Expected answer %d, got %d", tt.wantAnswer, result.Parts[0].Answer)
			}
		})
	}
}

func TestAPI_OpenAPI(t *testing.T) {
	container := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/openapi.json", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &doc); err != nil {
		t.Fatalf("Failed to parse openapi document: %v", err)
	}
	if doc.Info.Title != "Schematic Agent API" {
		t.Errorf("Expected title 'Schematic Agent API', got '%s'", doc.Info.Title)
	}
	if _, ok := doc.Paths["/api/v1/solve"]; !ok {
		t.Error("Expected /api/v1/solve in openapi paths")
	}
}
