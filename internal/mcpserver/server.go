// Package mcpserver exposes the operation registry over the Model Context
// Protocol on stdio.
//
// This is the boundary between the dispatch core and the wire: every
// registered definition is advertised as an MCP tool with its declared
// schema, and every tools/call is delegated to the Dispatcher, which always
// yields a well-formed success or failure result.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/calebhays/devdesk/internal/dispatch"
)

const serverName = "devdesk"

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server and registers every definition from the
// registry. Descriptors are advertised with their raw declared JSON schema so
// the caller validates against the same shape the dispatcher does.
func New(reg *dispatch.Registry, disp *dispatch.Dispatcher) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		serverName,
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	for _, def := range reg.List() {
		raw, err := json.Marshal(def.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("marshal schema for %s: %w", def.Name, err)
		}
		tool := mcp.NewToolWithRawSchema(def.Name, def.Description, raw)
		s.AddTool(tool, callHandler(disp, def.Name))
	}
	return s, nil
}

// callHandler bridges one MCP tools/call to the dispatcher. Dispatch failures
// become MCP error results, never transport errors: the caller always
// receives a response.
func callHandler(disp *dispatch.Dispatcher, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := json.Marshal(req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		res := disp.Invoke(ctx, name, args)
		if !res.OK {
			return mcp.NewToolResultError(fmt.Sprintf("%s: %s", res.Kind, res.Message)), nil
		}
		return mcp.NewToolResultText(res.Payload), nil
	}
}

// ServeStdio serves the single stdio client until ctx is cancelled.
func ServeStdio(ctx context.Context, s *server.MCPServer) error {
	return server.NewStdioServer(s).Listen(ctx, os.Stdin, os.Stdout)
}
