package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/Texasdada13/apptriage/schema"
)

// formatWeights formats weights for display in formulas.
func formatWeights(weights map[string]float64, factorKeys []string) string {
	var parts []string
	for _, key := range factorKeys {
		if weight, ok := weights[key]; ok && weight > 0 {
			parts = append(parts, fmt.Sprintf("%.2f*%s", weight, key))
		}
	}
	return strings.Join(parts, "+")
}

// displayWeights converts an active weight map to display form.
func displayWeights(active map[schema.WeightKey]float64) map[string]float64 {
	weights := make(map[string]float64, len(active))
	for k, v := range active {
		weights[string(k)] = v
	}
	return weights
}

// buildCriteriaRenderModel constructs the complete render model with the
// active weights, thresholds and recommendation rules.
func buildCriteriaRenderModel(cfg *contract.Config) *schema.CriteriaRenderModel {
	sets := []struct {
		name    string
		purpose string
		active  map[schema.WeightKey]float64
		keys    []schema.WeightKey
	}{
		{
			name:    string(schema.CompositeWeights),
			purpose: "Overall application health - weighted blend of all seven dimensions",
			active:  cfg.CompositeWeights,
			keys: []schema.WeightKey{
				schema.WeightBusinessValue, schema.WeightTechHealth, schema.WeightCost,
				schema.WeightUsage, schema.WeightSecurity, schema.WeightStrategicFit,
				schema.WeightRedundancy,
			},
		},
		{
			name:    string(schema.BusinessAxisWeights),
			purpose: "Strategic positioning - how much the business leans on the application",
			active:  cfg.BusinessWeights,
			keys: []schema.WeightKey{
				schema.WeightBusinessValue, schema.WeightUsage, schema.WeightStrategicFit,
			},
		},
		{
			name:    string(schema.TechnicalAxisWeights),
			purpose: "Technical quality - how well the application is built and run",
			active:  cfg.TechnicalWeights,
			keys: []schema.WeightKey{
				schema.WeightTechHealth, schema.WeightSecurity, schema.WeightStrategicFit,
				schema.WeightCost,
			},
		},
	}

	weightSets := make([]schema.CriteriaWeightSet, len(sets))
	for i, set := range sets {
		factors := make([]string, len(set.keys))
		factorKeys := make([]string, len(set.keys))
		for j, key := range set.keys {
			factors[j] = string(key)
			factorKeys[j] = string(key)
		}
		weights := displayWeights(set.active)
		weightSets[i] = schema.CriteriaWeightSet{
			Name:       set.name,
			Purpose:    set.purpose,
			Factors:    factors,
			FactorKeys: factorKeys,
			Weights:    weights,
			Formula:    formatWeights(weights, factorKeys),
		}
	}

	rules := []schema.CriteriaRule{
		{Order: 1, Name: "security gap", Condition: fmt.Sprintf("security < %.1f and business_value > 7", cfg.PoorSecurity), Action: string(schema.ImmediateAction)},
		{Order: 2, Name: "redundant", Condition: "redundancy = 1", Action: string(schema.ConsolidateAction)},
		{Order: 3, Name: "migration candidate", Condition: fmt.Sprintf("(business_value >= %.1f and tech_health < %.1f) or (strategic_fit >= 8 and composite < 50)", cfg.CriticalBusinessValue, cfg.PoorTechHealth), Action: string(schema.MigrateAction)},
		{Order: 4, Name: "healthy", Condition: "composite >= 70 (Invest when strategic_fit >= 8 and business_value >= 8)", Action: string(schema.RetainAction)},
		{Order: 5, Name: "adequate", Condition: "50 <= composite < 70", Action: string(schema.MaintainAction)},
		{Order: 6, Name: "marginal", Condition: "30 <= composite < 50", Action: string(schema.TolerateAction)},
		{Order: 7, Name: "failing", Condition: "composite < 30", Action: string(schema.RetireAction)},
	}

	return &schema.CriteriaRenderModel{
		Title:       "Apptriage Scoring Criteria",
		Description: "All scores = weighted sum of normalized dimensions. Rules match in order; first match wins.",
		WeightSets:  weightSets,
		Thresholds: map[string]float64{
			"business_value_threshold":    cfg.BusinessValueThreshold,
			"technical_quality_threshold": cfg.TechnicalQualityThreshold,
			"critical_business_value":     cfg.CriticalBusinessValue,
			"poor_tech_health":            cfg.PoorTechHealth,
			"poor_security":               cfg.PoorSecurity,
		},
		Rules: rules,
	}
}

// PrintCriteriaDefinitions displays the formal definitions of the weight
// sets, thresholds and recommendation rules. This is a static display that
// does not load an inventory.
func PrintCriteriaDefinitions(cfg *contract.Config) error {
	renderModel := buildCriteriaRenderModel(cfg)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return printCriteriaCSV(renderModel, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printCriteriaText(w, renderModel)
		}, "Wrote text")
	}
}

// printCriteriaText displays criteria in human-readable text format.
func printCriteriaText(w io.Writer, renderModel *schema.CriteriaRenderModel) error {
	if _, err := fmt.Fprintf(w, "📊 %s\n", renderModel.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "===========================\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", renderModel.Description); err != nil {
		return err
	}

	for _, set := range renderModel.WeightSets {
		if _, err := fmt.Fprintf(w, "%s: %s\n", strings.ToUpper(set.Name), set.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Factors: %s\n", strings.Join(set.Factors, ", ")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: Score = %s\n\n", set.Formula); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "🎯 Thresholds\n"); err != nil {
		return err
	}
	thresholdNames := []string{
		"business_value_threshold",
		"technical_quality_threshold",
		"critical_business_value",
		"poor_tech_health",
		"poor_security",
	}
	for _, name := range thresholdNames {
		if _, err := fmt.Fprintf(w, "   %s = %.1f\n", name, renderModel.Thresholds[name]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n⚖️  Recommendation Rules (first match wins)\n"); err != nil {
		return err
	}
	for _, rule := range renderModel.Rules {
		if _, err := fmt.Fprintf(w, "   %d. %s: %s -> %s\n", rule.Order, rule.Name, rule.Condition, rule.Action); err != nil {
			return err
		}
	}
	return nil
}

// printCriteriaCSV displays the rule table in CSV format.
func printCriteriaCSV(renderModel *schema.CriteriaRenderModel, cfg *contract.Config) error {
	header := []string{"order", "rule", "condition", "action"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, rule := range renderModel.Rules {
				rec := []string{
					strconv.Itoa(rule.Order),
					rule.Name,
					rule.Condition,
					rule.Action,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}
