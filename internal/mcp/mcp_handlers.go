package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Texasdada13/apptriage/core"
	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/Texasdada13/apptriage/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// applyRequestConfig overlays per-request parameters on a clone of the base config.
func (h *toolHandler) applyRequestConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("inventory_path", ""); p != "" {
		cfg.InventoryPath = p
	}
	if cfg.InventoryPath == "" {
		return nil, fmt.Errorf("inventory_path is required")
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	if m := request.GetFloat("min_score", -1); m >= 0 {
		if m > 100 {
			return nil, fmt.Errorf("min_score must be between 0 and 100")
		}
		cfg.MinScore = m
	}
	return cfg, nil
}

func (h *toolHandler) handleAssessPortfolio(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyRequestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid assessment parameters: %v", err)), nil
	}

	output, err := core.GetAssessmentResults(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("assessment failed: %v", err)), nil
	}

	filtered := core.FilterByMinScore(output.Results, cfg.MinScore)
	ranked := core.RankResults(filtered, cfg.ResultLimit)
	enriched := schema.EnrichResults(ranked)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetQuadrantMatrix(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyRequestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid assessment parameters: %v", err)), nil
	}

	output, err := core.GetAssessmentResults(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("assessment failed: %v", err)), nil
	}

	matrix := make(map[schema.QuadrantCategory][]schema.AppResult, len(schema.AllQuadrants))
	for _, q := range schema.AllQuadrants {
		matrix[q] = []schema.AppResult{}
	}
	for _, r := range output.Results {
		matrix[r.Quadrant] = append(matrix[r.Quadrant], r)
	}
	jsonData, _ := json.MarshalIndent(matrix, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPortfolioSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyRequestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid assessment parameters: %v", err)), nil
	}

	output, err := core.GetAssessmentResults(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("assessment failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(output.Summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
