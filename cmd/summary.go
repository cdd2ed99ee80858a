package cmd

import (
	"github.com/Texasdada13/apptriage/core"
	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd aggregates portfolio-level statistics.
var summaryCmd = &cobra.Command{
	Use:   "summary <inventory-path>",
	Short: "Show portfolio-level statistics for an inventory.",
	Long: `Aggregate the assessment into portfolio-level statistics.

Reports:
- Total applications assessed and records rejected during loading
- Total annual cost across the portfolio
- Average composite and retention scores
- Count of applications per quadrant
- Count of applications per recommended action
- Number of applications flagged as redundant

Use this for a one-screen health check before drilling into
individual applications with 'assess' or 'quadrants'.

Examples:
  # Portfolio health check
  apptriage summary portfolio.csv

  # Machine-readable summary for dashboards
  apptriage summary portfolio.csv --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run portfolio summary", err)
		}
	},
}
