package runtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/codex-k8s/ai-tools/internal/dsl"
	"github.com/codex-k8s/ai-tools/internal/protocol"
	"github.com/codex-k8s/ai-tools/internal/tool"
)

// ToolOutput is the structured MCP result of a tool execution.
type ToolOutput struct {
	// Success selects the populated variant.
	Success bool `json:"success"`
	// Data is the tool payload on success.
	Data any `json:"data,omitempty"`
	// Error is the failure message.
	Error string `json:"error,omitempty"`
	// Metadata describes how the result was produced.
	Metadata *protocol.Metadata `json:"metadata,omitempty"`
}

// Builder constructs an MCP server exposing every known tool.
type Builder struct {
	// Runner executes tool calls.
	Runner *Runner
}

// Build creates an MCP server with one tool per catalog entry.
func (b Builder) Build(cfg *dsl.Config) (*mcp.Server, error) {
	if b.Runner == nil {
		return nil, fmt.Errorf("runner is nil")
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
	}, nil)

	for _, info := range b.Runner.Catalog() {
		b.addTool(server, info)
	}
	return server, nil
}

func (b Builder) addTool(server *mcp.Server, info tool.Info) {
	name := string(info.Name)
	mcpTool := &mcp.Tool{
		Name:        name,
		Title:       info.DisplayName,
		Description: info.Description,
		InputSchema: tool.InputSchema(name),
	}

	mcp.AddTool(server, mcpTool, func(ctx context.Context, _ *mcp.CallToolRequest, input map[string]any) (*mcp.CallToolResult, ToolOutput, error) {
		result, err := b.Runner.Run(ctx, Call{ToolName: name, Inputs: stringInputs(input)})
		if err != nil {
			return nil, ToolOutput{}, err
		}
		out, err := toToolOutput(result)
		if err != nil {
			return nil, ToolOutput{}, err
		}
		return nil, out, nil
	})
}

func toToolOutput(result protocol.ExecutionResult) (ToolOutput, error) {
	out := ToolOutput{Success: result.Success, Error: result.Error, Metadata: result.Metadata}
	if len(result.Data) > 0 {
		if err := json.Unmarshal(result.Data, &out.Data); err != nil {
			return ToolOutput{}, fmt.Errorf("decode result data: %w", err)
		}
	}
	return out, nil
}

func stringInputs(input map[string]any) map[string]string {
	out := make(map[string]string, len(input))
	for key, value := range input {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			out[key] = v
		default:
			out[key] = fmt.Sprint(v)
		}
	}
	return out
}
