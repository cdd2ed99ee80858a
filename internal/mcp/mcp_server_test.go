package mcp_test

import (
	"context"
	"testing"

	"github.com/Texasdada13/apptriage/internal/contract"
	mcp_internal "github.com/Texasdada13/apptriage/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{}

	// Create a dummy manager, though we shouldn't hit it because we test validation errors
	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("assess_portfolio missing inventory_path", func(t *testing.T) {
		tool := s.GetTool("assess_portfolio")
		require.NotNil(t, tool, "Tool assess_portfolio should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "assess_portfolio",
				Arguments: map[string]any{
					"inventory_path": "", // Missing required
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "inventory_path is required")
	})

	t.Run("assess_portfolio invalid min_score", func(t *testing.T) {
		tool := s.GetTool("assess_portfolio")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "assess_portfolio",
				Arguments: map[string]any{
					"inventory_path": "portfolio.csv",
					"min_score":      150.0, // Invalid
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "min_score must be between 0 and 100")
	})

	t.Run("get_quadrant_matrix missing inventory_path", func(t *testing.T) {
		tool := s.GetTool("get_quadrant_matrix")
		require.NotNil(t, tool, "Tool get_quadrant_matrix should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_quadrant_matrix",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "inventory_path is required")
	})

	t.Run("get_portfolio_summary missing inventory file", func(t *testing.T) {
		tool := s.GetTool("get_portfolio_summary")
		require.NotNil(t, tool, "Tool get_portfolio_summary should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_portfolio_summary",
				Arguments: map[string]any{
					"inventory_path": "/nonexistent/portfolio.csv",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "A missing inventory file should surface as a tool error")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "assessment failed")
	})
}
