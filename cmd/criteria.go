package cmd

import (
	"github.com/Texasdada13/apptriage/core"
	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/spf13/cobra"
)

// criteriaCmd prints the active scoring criteria.
var criteriaCmd = &cobra.Command{
	Use:   "criteria",
	Short: "Print the active scoring weights, thresholds and recommendation rules.",
	Long: `Print the scoring criteria the engine is currently configured with.

Shows:
- The composite score weights and formula
- The business value and technical quality axis weights
- The quadrant and recommendation thresholds
- The ordered recommendation rules (first match wins)

Custom weights, thresholds and ceilings from a config file are reflected
here, so this is the fastest way to verify an override took effect.

Examples:
  # Show the default criteria
  apptriage criteria

  # Verify a custom config file
  apptriage criteria --config ./finance.yaml`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCriteria(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot print scoring criteria", err)
		}
	},
}
