package cmd

import (
	"github.com/Texasdada13/apptriage/core"
	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/spf13/cobra"
)

// assessCmd performs the full portfolio assessment.
var assessCmd = &cobra.Command{
	Use:   "assess <inventory-path>",
	Short: "Score every application and rank them by composite score.",
	Long: `Score every application in the inventory and rank them by composite score.

Normalizes raw cost and usage figures, combines all seven scoring dimensions
into a composite score, and derives a retention score per application, helping you:
- Identify which applications deserve continued investment
- Find expensive applications that deliver little business value
- Spot security liabilities hiding behind high-value systems
- Locate redundant applications that are consolidation candidates

Each application also gets a recommended action (Retain, Maintain, Tolerate,
Migrate, Consolidate, Retire) with a rationale citing the numbers behind it.

Examples:
  # Assess a portfolio from a CSV inventory
  apptriage assess portfolio.csv

  # Show the top 10 applications with detailed columns
  apptriage assess portfolio.csv --limit 10 --detail

  # Include the per-dimension score breakdown
  apptriage assess portfolio.csv --detail --explain

  # Only show applications scoring at least 50
  apptriage assess portfolio.csv --min-score 50

  # Export findings to CSV for tracking
  apptriage assess portfolio.csv --output csv --output-file scores.csv

  # Record this run in the snapshot store
  apptriage assess portfolio.csv --snapshot-backend sqlite`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAssess(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run portfolio assessment", err)
		}
	},
}
