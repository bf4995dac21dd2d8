package mcpadapter

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/schematic-agent/internal/models"
)

// SolveInput is the MCP tool input schema for solving every enabled part.
type SolveInput struct {
	EventID   string `json:"event_id" jsonschema:"unique event identifier"`
	Schematic string `json:"schematic" jsonschema:"raw schematic text, one grid row per line"`
	Source    string `json:"source,omitempty" jsonschema:"optional name of the schematic source"`
}

// SolvePartInput is the MCP tool input schema for solving a single part.
type SolvePartInput struct {
	EventID   string `json:"event_id" jsonschema:"unique event identifier"`
	Schematic string `json:"schematic" jsonschema:"raw schematic text, one grid row per line"`
	Source    string `json:"source,omitempty" jsonschema:"optional name of the schematic source"`
	PartName  string `json:"part_name" jsonschema:"part name: part_one or part_two"`
}

// NewSolveHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewSolveHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
		return Solve(ctx, exec, req, input)
	}
}

// Solve runs every enabled part and returns the result.
func Solve(
	ctx context.Context,
	exec *executor.Executor,
	req *mcp.CallToolRequest,
	input SolveInput,
) (*mcp.CallToolResult, models.SolveResult, error) {
	solveCtx := models.SolveContext{
		RequestID: input.EventID,
		Source:    input.Source,
		Schematic: input.Schematic,
		CreatedAt: time.Now(),
	}

	result := exec.Execute(ctx, solveCtx)
	return nil, result, nil
}

// NewSolvePartHandler returns a tool handler for single part solving.
// Pass the returned function to mcp.AddTool.
func NewSolvePartHandler(partExec *executor.PartExecutor) func(context.Context, *mcp.CallToolRequest, SolvePartInput) (*mcp.CallToolResult, models.SolveResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SolvePartInput) (*mcp.CallToolResult, models.SolveResult, error) {
		return SolvePart(ctx, partExec, req, input)
	}
}

// SolvePart runs a single part and returns the result.
func SolvePart(
	ctx context.Context,
	partExec *executor.PartExecutor,
	req *mcp.CallToolRequest,
	input SolvePartInput,
) (*mcp.CallToolResult, models.SolveResult, error) {
	solveCtx := models.SolveContext{
		RequestID: input.EventID,
		Source:    input.Source,
		Schematic: input.Schematic,
		CreatedAt: time.Now(),
	}

	result, err := partExec.Execute(ctx, input.PartName, solveCtx)

	return nil, result, err
}

// NewServer registers the solve tools on a fresh MCP server.
func NewServer(exec *executor.Executor, partExec *executor.PartExecutor) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "schematic-agent",
			Version: "1.0.0",
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve_schematic",
		Description: "Sum the part numbers touching a symbol and the gear ratios of '*' cells touching exactly two numbers",
	}, NewSolveHandler(exec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve_schematic_part",
		Description: "Solve a single part (part_one: part numbers, part_two: gear ratios) for a schematic",
	}, NewSolvePartHandler(partExec))

	return server
}
