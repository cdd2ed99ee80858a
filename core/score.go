package core

import (
	"github.com/Texasdada13/apptriage/schema"
)

// dimensionValues returns each dimension's normalized 0-10 value for an
// application. Redundancy inverts: a non-redundant app contributes 10, a
// redundant one 0.
func dimensionValues(app *schema.Application, costScore, usageScore float64) map[schema.WeightKey]float64 {
	return map[schema.WeightKey]float64{
		schema.WeightBusinessValue: app.BusinessValue,
		schema.WeightTechHealth:    app.TechHealth,
		schema.WeightCost:          costScore,
		schema.WeightUsage:         usageScore,
		schema.WeightSecurity:      app.Security,
		schema.WeightStrategicFit:  app.StrategicFit,
		schema.WeightRedundancy:    10.0 * (1.0 - float64(app.Redundancy)),
	}
}

// computeCompositeScore calculates an application's composite score (0-100)
// as the weighted sum of its normalized dimensions, scaled by 10. The
// breakdown records each dimension's contribution in points out of 100 for
// explain output.
func computeCompositeScore(app *schema.Application, costScore, usageScore float64, weights map[schema.WeightKey]float64) (float64, map[schema.WeightKey]float64) {
	dims := dimensionValues(app, costScore, usageScore)

	breakdown := make(map[schema.WeightKey]float64, len(weights))
	var raw float64
	for key, w := range weights {
		contrib := dims[key] * w
		breakdown[key] = contrib * 10.0
		raw += contrib
	}

	// Clamp for numerical safety; with valid weights the sum already lands
	// in [0,10].
	score := clamp(raw*10.0, 0, 100)
	return score, breakdown
}

// computeRetentionScore blends the composite score with an unweighted
// average of business value, tech health and security. It surfaces
// applications that are critical, healthy and secure even when cost or low
// strategic fit drags their composite score down.
func computeRetentionScore(app *schema.Application, compositeScore float64) float64 {
	criticality := (app.BusinessValue + app.TechHealth + app.Security) / 3.0
	return clamp(0.5*compositeScore+0.5*(10.0*criticality), 0, 100)
}
