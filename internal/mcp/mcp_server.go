// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Apptriage MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Apptriage Portfolio Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: assess_portfolio ---
	s.AddTool(mcp.NewTool("assess_portfolio",
		mcp.WithDescription("Score an application portfolio inventory and return ranked results with quadrant placements and action recommendations."),
		mcp.WithString("inventory_path", mcp.Description("Path to the inventory file (.csv or .json).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
		mcp.WithNumber("min_score", mcp.Description("Only return applications with a composite score at or above this value (0-100).")),
	), h.handleAssessPortfolio)

	// --- 2. Tool: get_quadrant_matrix ---
	s.AddTool(mcp.NewTool("get_quadrant_matrix",
		mcp.WithDescription("Score an application portfolio and return the applications grouped by TIME quadrant (Invest, Tolerate, Migrate, Eliminate)."),
		mcp.WithString("inventory_path", mcp.Description("Path to the inventory file (.csv or .json).")),
	), h.handleGetQuadrantMatrix)

	// --- 3. Tool: get_portfolio_summary ---
	s.AddTool(mcp.NewTool("get_portfolio_summary",
		mcp.WithDescription("Score an application portfolio and return aggregate statistics: action counts, quadrant counts, total cost and average scores."),
		mcp.WithString("inventory_path", mcp.Description("Path to the inventory file (.csv or .json).")),
	), h.handleGetPortfolioSummary)

	return s
}

// StartMCPServer starts the Apptriage MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
