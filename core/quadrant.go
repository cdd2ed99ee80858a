package core

import (
	"fmt"

	"github.com/Texasdada13/apptriage/schema"
)

// computeAxis calculates a 0-10 strategic positioning axis as the weighted
// sum of the application's normalized dimensions under the given axis
// weights.
func computeAxis(app *schema.Application, costScore, usageScore float64, weights map[schema.WeightKey]float64) float64 {
	dims := dimensionValues(app, costScore, usageScore)
	var axis float64
	for key, w := range weights {
		axis += dims[key] * w
	}
	return clamp(axis, 0, 10)
}

// classifyQuadrant maps the (business-value axis, technical-quality axis)
// pair to a TIME quadrant and generates the placement rationale.
//
// Override rules run before the base threshold mapping:
//   - A business-critical app with poor tech health is reclassified from
//     Tolerate to Migrate: it needs active remediation, not passive
//     tolerance.
//   - A redundant app nominally placed in Invest or Tolerate is steered to
//     Migrate. The quadrant is informational for redundant apps; the action
//     engine owns the final Consolidate label.
func classifyQuadrant(app *schema.Application, bvAxis, tqAxis float64, thresholds Thresholds) (schema.QuadrantCategory, string) {
	highBV := bvAxis >= thresholds.BusinessValue
	highTQ := tqAxis >= thresholds.TechnicalQuality

	var base schema.QuadrantCategory
	switch {
	case highBV && highTQ:
		base = schema.InvestQuadrant
	case highBV && !highTQ:
		base = schema.TolerateQuadrant
	case !highBV && highTQ:
		base = schema.MigrateQuadrant
	default:
		base = schema.EliminateQuadrant
	}

	if base == schema.TolerateQuadrant &&
		app.BusinessValue > thresholds.CriticalBusinessValue &&
		app.TechHealth < thresholds.PoorTechHealth {
		rationale := fmt.Sprintf(
			"Business value %.1f > %.1f with tech health %.1f < %.1f: critical but broken, reclassified from Tolerate to Migrate",
			app.BusinessValue, thresholds.CriticalBusinessValue, app.TechHealth, thresholds.PoorTechHealth)
		return schema.MigrateQuadrant, rationale
	}

	if app.Redundancy == 1 && (base == schema.InvestQuadrant || base == schema.TolerateQuadrant) {
		rationale := fmt.Sprintf(
			"Redundant functionality exists elsewhere: steered from %s to Migrate pending consolidation", base)
		return schema.MigrateQuadrant, rationale
	}

	rationale := fmt.Sprintf(
		"Business value axis %.1f %s %.1f and technical quality axis %.1f %s %.1f -> %s",
		bvAxis, comparator(highBV), thresholds.BusinessValue,
		tqAxis, comparator(highTQ), thresholds.TechnicalQuality, base)
	return base, rationale
}

func comparator(atOrAbove bool) string {
	if atOrAbove {
		return ">="
	}
	return "<"
}
