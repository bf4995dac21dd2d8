package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
	"github.com/rs/zerolog"
)

type Handler struct {
	executor     *executor.Executor
	partExecutor *executor.PartExecutor
	logger       *zerolog.Logger
}

func NewHandler(executor *executor.Executor, partExecutor *executor.PartExecutor, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor:     executor,
		partExecutor: partExecutor,
		logger:       logger,
	}
}

// POST /api/v1/solve
// Body: SolveRequest
// Returns: SolveResult
func (h *Handler) Solve(req *restful.Request, resp *restful.Response) {
	var solveRequest models.SolveRequest
	if err := req.ReadEntity(&solveRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("event_id", solveRequest.EventID).
		Str("source", solveRequest.Source).
		Int("bytes", len(solveRequest.Schematic)).
		Msg("Start solve")

	result := h.executor.Execute(req.Request.Context(), models.NewSolveContext(solveRequest))

	h.logger.Info().
		Str("event_id", result.ID).
		Str("status", string(result.Status)).
		Msg("Solve complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/solve/part/{part_name}
func (h *Handler) SolvePart(req *restful.Request, resp *restful.Response) {
	partName := req.PathParameter("part_name")

	var solveRequest models.SolveRequest
	if err := req.ReadEntity(&solveRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("event_id", solveRequest.EventID).
		Str("part_name", partName).
		Msg("Start solve")

	result, err := h.partExecutor.Execute(req.Request.Context(), partName, models.NewSolveContext(solveRequest))
	if err != nil {
		if errors.Is(err, executor.ErrPartNotFound) {
			middleware.HandleError(resp, err, http.StatusNotFound)
			return
		}
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Str("part_name", partName).
		Str("event_id", result.ID).
		Str("status", string(result.Status)).
		Msg("Solve complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
