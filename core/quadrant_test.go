package core

import (
	"testing"

	"github.com/Texasdada13/apptriage/schema"
	"github.com/stretchr/testify/assert"
)

// TestComputeAxis validates the weighted axis calculation.
func TestComputeAxis(t *testing.T) {
	cfg := DefaultEngineConfig()

	t.Run("business value axis", func(t *testing.T) {
		app := schema.Application{BusinessValue: 9, StrategicFit: 9}
		// 9*0.5 + 8.5*0.2 + 9*0.3 = 8.9
		axis := computeAxis(&app, 0, 8.5, cfg.BusinessWeights)
		assert.InDelta(t, 8.9, axis, 0.001)
	})

	t.Run("technical quality axis", func(t *testing.T) {
		app := schema.Application{TechHealth: 7, Security: 8, StrategicFit: 9}
		// 7*0.4 + 8*0.3 + 9*0.2 + 8.3333*0.1 = 7.8333
		axis := computeAxis(&app, 8.3333, 0, cfg.TechnicalWeights)
		assert.InDelta(t, 7.8333, axis, 0.001)
	})

	t.Run("axis stays within 0-10", func(t *testing.T) {
		app := schema.Application{BusinessValue: 10, TechHealth: 10, Security: 10, StrategicFit: 10}
		assert.LessOrEqual(t, computeAxis(&app, 10, 10, cfg.BusinessWeights), 10.0)
		assert.GreaterOrEqual(t, computeAxis(&schema.Application{}, 0, 0, cfg.TechnicalWeights), 0.0)
	})
}

// TestClassifyQuadrant covers the base threshold mapping on all four
// quadrants.
func TestClassifyQuadrant(t *testing.T) {
	thresholds := DefaultEngineConfig().Thresholds

	tests := []struct {
		name     string
		bvAxis   float64
		tqAxis   float64
		expected schema.QuadrantCategory
	}{
		{
			name:     "high value high quality",
			bvAxis:   8.0,
			tqAxis:   7.5,
			expected: schema.InvestQuadrant,
		},
		{
			name:     "high value low quality",
			bvAxis:   8.0,
			tqAxis:   3.0,
			expected: schema.TolerateQuadrant,
		},
		{
			name:     "low value high quality",
			bvAxis:   4.0,
			tqAxis:   7.5,
			expected: schema.MigrateQuadrant,
		},
		{
			name:     "low value low quality",
			bvAxis:   3.0,
			tqAxis:   2.0,
			expected: schema.EliminateQuadrant,
		},
		{
			name:     "thresholds are inclusive",
			bvAxis:   6.0,
			tqAxis:   6.0,
			expected: schema.InvestQuadrant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := schema.Application{Name: "app", BusinessValue: 5, TechHealth: 5}
			quadrant, rationale := classifyQuadrant(&app, tt.bvAxis, tt.tqAxis, thresholds)
			assert.Equal(t, tt.expected, quadrant)
			assert.NotEmpty(t, rationale)
		})
	}
}

// TestClassifyQuadrantCriticalOverride checks that a business-critical app
// with poor tech health moves from Tolerate to Migrate.
func TestClassifyQuadrantCriticalOverride(t *testing.T) {
	thresholds := DefaultEngineConfig().Thresholds

	t.Run("override fires", func(t *testing.T) {
		app := schema.Application{Name: "erp", BusinessValue: 9, TechHealth: 3}
		quadrant, rationale := classifyQuadrant(&app, 8.0, 3.0, thresholds)
		assert.Equal(t, schema.MigrateQuadrant, quadrant)
		assert.Contains(t, rationale, "9.0")
		assert.Contains(t, rationale, "3.0")
		assert.Contains(t, rationale, "reclassified")
	})

	t.Run("business value at threshold does not fire", func(t *testing.T) {
		app := schema.Application{Name: "erp", BusinessValue: 8, TechHealth: 3}
		quadrant, _ := classifyQuadrant(&app, 8.0, 3.0, thresholds)
		assert.Equal(t, schema.TolerateQuadrant, quadrant)
	})

	t.Run("tech health at threshold does not fire", func(t *testing.T) {
		app := schema.Application{Name: "erp", BusinessValue: 9, TechHealth: 4}
		quadrant, _ := classifyQuadrant(&app, 8.0, 3.0, thresholds)
		assert.Equal(t, schema.TolerateQuadrant, quadrant)
	})

	t.Run("override runs before redundancy steer", func(t *testing.T) {
		app := schema.Application{Name: "erp", BusinessValue: 9, TechHealth: 3, Redundancy: 1}
		quadrant, rationale := classifyQuadrant(&app, 8.0, 3.0, thresholds)
		assert.Equal(t, schema.MigrateQuadrant, quadrant)
		assert.Contains(t, rationale, "reclassified")
	})
}

// TestClassifyQuadrantRedundancySteer checks that redundant apps are steered
// out of Invest and Tolerate.
func TestClassifyQuadrantRedundancySteer(t *testing.T) {
	thresholds := DefaultEngineConfig().Thresholds

	t.Run("steers from Invest", func(t *testing.T) {
		app := schema.Application{Name: "wiki-a", BusinessValue: 7, TechHealth: 8, Redundancy: 1}
		quadrant, rationale := classifyQuadrant(&app, 8.0, 8.0, thresholds)
		assert.Equal(t, schema.MigrateQuadrant, quadrant)
		assert.Contains(t, rationale, "Invest")
	})

	t.Run("steers from Tolerate", func(t *testing.T) {
		app := schema.Application{Name: "wiki-b", BusinessValue: 7, TechHealth: 5, Redundancy: 1}
		quadrant, rationale := classifyQuadrant(&app, 8.0, 3.0, thresholds)
		assert.Equal(t, schema.MigrateQuadrant, quadrant)
		assert.Contains(t, rationale, "Tolerate")
	})

	t.Run("leaves Eliminate alone", func(t *testing.T) {
		app := schema.Application{Name: "wiki-c", BusinessValue: 2, TechHealth: 2, Redundancy: 1}
		quadrant, _ := classifyQuadrant(&app, 3.0, 3.0, thresholds)
		assert.Equal(t, schema.EliminateQuadrant, quadrant)
	})
}
