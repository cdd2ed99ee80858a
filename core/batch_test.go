package core

import (
	"testing"

	"github.com/Texasdada13/apptriage/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAssessPortfolioBoundaryScenarios runs the documented end-to-end
// scenarios through the full batch pipeline.
func TestAssessPortfolioBoundaryScenarios(t *testing.T) {
	t.Run("invest-grade application", func(t *testing.T) {
		cfg := DefaultEngineConfig()
		records := []schema.Application{
			{
				Name:          "crm",
				BusinessValue: 9,
				TechHealth:    7,
				Cost:          50000,
				Usage:         850,
				Security:      8,
				StrategicFit:  9,
				Redundancy:    0,
			},
		}

		output, err := AssessPortfolio(records, cfg, 4)
		require.NoError(t, err)
		require.Len(t, output.Results, 1)

		result := output.Results[0]
		assert.InDelta(t, 8.3333, result.CostScore, 0.001)
		assert.InDelta(t, 8.5, result.UsageScore, 0.001)
		assert.InDelta(t, 83.75, result.CompositeScore, 0.01)
		assert.Equal(t, schema.InvestQuadrant, result.Quadrant)
		// Strategic fit and business value both exceed 8, so Retain
		// upgrades to Invest.
		assert.Equal(t, schema.InvestAction, result.Action)
	})

	t.Run("retire-grade application", func(t *testing.T) {
		// A tighter cost ceiling keeps the cheap-but-useless app from being
		// rescued by its cost score.
		cfg := DefaultEngineConfig()
		cfg.MaxCost = 12000

		records := []schema.Application{
			{
				Name:          "fax-gw",
				BusinessValue: 3,
				TechHealth:    2,
				Cost:          10000,
				Usage:         5,
				Security:      6,
				StrategicFit:  2,
				Redundancy:    0,
			},
		}

		output, err := AssessPortfolio(records, cfg, 1)
		require.NoError(t, err)
		require.Len(t, output.Results, 1)

		result := output.Results[0]
		assert.Less(t, result.CompositeScore, 30.0)
		assert.Equal(t, schema.RetireAction, result.Action)
		assert.Equal(t, schema.EliminateQuadrant, result.Quadrant)
	})
}

// TestAssessPortfolioInvalidConfig ensures a bad configuration aborts the
// run before any record is scored.
func TestAssessPortfolioInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *EngineConfig)
	}{
		{
			name: "weights do not sum to one",
			mutate: func(cfg *EngineConfig) {
				cfg.CompositeWeights[schema.WeightBusinessValue] = 0.5
			},
		},
		{
			name: "negative weight",
			mutate: func(cfg *EngineConfig) {
				cfg.CompositeWeights[schema.WeightCost] = -0.15
				cfg.CompositeWeights[schema.WeightBusinessValue] = 0.55
			},
		},
		{
			name: "zero cost ceiling",
			mutate: func(cfg *EngineConfig) {
				cfg.MaxCost = 0
			},
		},
		{
			name: "negative usage ceiling",
			mutate: func(cfg *EngineConfig) {
				cfg.MaxUsage = -100
			},
		},
		{
			name: "threshold out of range",
			mutate: func(cfg *EngineConfig) {
				cfg.Thresholds.BusinessValue = 11
			},
		},
	}

	records := []schema.Application{
		{Name: "crm", BusinessValue: 9, TechHealth: 7, Security: 8, StrategicFit: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEngineConfig()
			tt.mutate(&cfg)

			output, err := AssessPortfolio(records, cfg, 2)
			require.Error(t, err)
			assert.Nil(t, output)

			var cfgErr *ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

// TestAssessPortfolioPartialFailure ensures one bad record never aborts the
// batch.
func TestAssessPortfolioPartialFailure(t *testing.T) {
	cfg := DefaultEngineConfig()
	records := []schema.Application{
		{Name: "good-1", BusinessValue: 8, TechHealth: 7, Cost: 10000, Usage: 400, Security: 7, StrategicFit: 6},
		{Name: "bad-rating", BusinessValue: 15, TechHealth: 7, Security: 7, StrategicFit: 6},
		{Name: "good-2", BusinessValue: 5, TechHealth: 5, Cost: 90000, Usage: 100, Security: 6, StrategicFit: 4},
		{Name: "bad-redundancy", BusinessValue: 5, TechHealth: 5, Security: 6, StrategicFit: 4, Redundancy: 3},
		{Name: "", BusinessValue: 5, TechHealth: 5, Security: 6, StrategicFit: 4},
	}

	output, err := AssessPortfolio(records, cfg, 3)
	require.NoError(t, err)

	assert.Len(t, output.Results, 2)
	assert.Len(t, output.Rejected, 3)
	assert.Equal(t, 2, output.Summary.TotalApplications)
	assert.Equal(t, 3, output.Summary.RejectedRecords)

	rejectedNames := make(map[string]string)
	for _, r := range output.Rejected {
		rejectedNames[r.Name] = r.Reason
	}
	assert.Contains(t, rejectedNames["bad-rating"], "business_value")
	assert.Contains(t, rejectedNames["bad-redundancy"], "redundancy")
}

// TestAssessPortfolioEmptyBatch checks the zero-summary contract.
func TestAssessPortfolioEmptyBatch(t *testing.T) {
	output, err := AssessPortfolio(nil, DefaultEngineConfig(), 4)
	require.NoError(t, err)

	assert.Empty(t, output.Results)
	assert.Empty(t, output.Rejected)
	assert.Equal(t, 0, output.Summary.TotalApplications)
	assert.Equal(t, 0, output.Summary.RejectedRecords)
	assert.Zero(t, output.Summary.TotalCost)
	assert.Zero(t, output.Summary.AverageComposite)
	assert.Zero(t, output.Summary.RedundantCount)
}

// TestAssessPortfolioWorkerCounts checks order-independence across worker
// pool sizes.
func TestAssessPortfolioWorkerCounts(t *testing.T) {
	cfg := DefaultEngineConfig()
	records := make([]schema.Application, 0, 20)
	for i := range 20 {
		records = append(records, schema.Application{
			Name:          string(rune('a' + i)),
			BusinessValue: float64(i % 11),
			TechHealth:    float64((i * 3) % 11),
			Cost:          float64(i) * 15000,
			Usage:         float64(i) * 40,
			Security:      float64((i * 7) % 11),
			StrategicFit:  float64((i * 5) % 11),
		})
	}

	baseline, err := AssessPortfolio(records, cfg, 1)
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 8} {
		output, err := AssessPortfolio(records, cfg, workers)
		require.NoError(t, err)
		assert.Equal(t, baseline.Summary, output.Summary, "workers=%d", workers)
		assert.ElementsMatch(t, baseline.Results, output.Results, "workers=%d", workers)
	}
}

// TestSummarize validates the aggregate statistics.
func TestSummarize(t *testing.T) {
	results := []schema.AppResult{
		{
			Application:    schema.Application{Name: "a", Cost: 10000, Redundancy: 1},
			CompositeScore: 80, RetentionScore: 85,
			Quadrant: schema.InvestQuadrant, Action: schema.ConsolidateAction,
		},
		{
			Application:    schema.Application{Name: "b", Cost: 30000},
			CompositeScore: 40, RetentionScore: 45,
			Quadrant: schema.EliminateQuadrant, Action: schema.TolerateAction,
		},
	}
	rejected := []schema.RejectedRecord{{Name: "c", Reason: "cost must be non-negative"}}

	summary := Summarize(results, rejected)
	assert.Equal(t, 2, summary.TotalApplications)
	assert.Equal(t, 1, summary.RejectedRecords)
	assert.InDelta(t, 40000.0, summary.TotalCost, 0.001)
	assert.InDelta(t, 60.0, summary.AverageComposite, 0.001)
	assert.InDelta(t, 65.0, summary.AverageRetention, 0.001)
	assert.Equal(t, 1, summary.RedundantCount)
	assert.Equal(t, 1, summary.QuadrantCounts[schema.InvestQuadrant])
	assert.Equal(t, 1, summary.QuadrantCounts[schema.EliminateQuadrant])
	assert.Equal(t, 0, summary.QuadrantCounts[schema.MigrateQuadrant])
	assert.Equal(t, 1, summary.ActionCounts[schema.ConsolidateAction])
}
