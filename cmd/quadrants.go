package cmd

import (
	"github.com/Texasdada13/apptriage/core"
	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/spf13/cobra"
)

// quadrantsCmd places applications on the business value vs technical quality matrix.
var quadrantsCmd = &cobra.Command{
	Use:   "quadrants <inventory-path>",
	Short: "Place applications on the business value vs technical quality matrix.",
	Long: `Classify each application into one of four strategic quadrants.

The two axes are derived from the scoring dimensions:
- Business value axis: business value, usage and strategic fit
- Technical quality axis: tech health, security, strategic fit and cost

Quadrants:
  Invest    - high business value, high technical quality
  Tolerate  - low business value, high technical quality
  Migrate   - high business value, low technical quality
  Eliminate - low business value, low technical quality

Each placement comes with a rationale citing the axis values, so the
classification can be defended in a portfolio review.

Examples:
  # Show the quadrant matrix for a portfolio
  apptriage quadrants portfolio.csv

  # Include per-application rationale
  apptriage quadrants portfolio.csv --detail

  # Export placements for a slide deck
  apptriage quadrants portfolio.csv --output csv --output-file quadrants.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteQuadrants(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run quadrant classification", err)
		}
	},
}
