package core

import (
	"context"
	"time"

	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/Texasdada13/apptriage/internal/loader"
	"github.com/Texasdada13/apptriage/internal/outwriter"
	"github.com/Texasdada13/apptriage/schema"
)

// ExecutorFunc defines the function signature for executing different assessment views.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// EngineConfigFromContract builds the immutable engine configuration from the
// resolved runtime config.
func EngineConfigFromContract(cfg *contract.Config) EngineConfig {
	return EngineConfig{
		CompositeWeights: cfg.CompositeWeights,
		BusinessWeights:  cfg.BusinessWeights,
		TechnicalWeights: cfg.TechnicalWeights,
		Thresholds: Thresholds{
			BusinessValue:         cfg.BusinessValueThreshold,
			TechnicalQuality:      cfg.TechnicalQualityThreshold,
			CriticalBusinessValue: cfg.CriticalBusinessValue,
			PoorTechHealth:        cfg.PoorTechHealth,
			PoorSecurity:          cfg.PoorSecurity,
		},
		MaxCost:  cfg.MaxCost,
		MaxUsage: cfg.MaxUsage,
	}
}

// GetAssessmentResults loads the inventory and scores every record without
// printing anything. It is the shared pipeline behind the assess, quadrants
// and summary views, and the entry point for MCP tool handlers.
func GetAssessmentResults(cfg *contract.Config, mgr contract.StoreManager) (*schema.BatchOutput, error) {
	source, err := loader.NewSource(cfg.InventoryPath)
	if err != nil {
		return nil, err
	}
	records, malformed, err := source.Load()
	if err != nil {
		return nil, err
	}

	engineCfg := EngineConfigFromContract(cfg)
	start := time.Now()
	output, err := AssessPortfolio(records, engineCfg, cfg.Workers)
	if err != nil {
		return nil, err
	}

	// Rows the loader could not parse count as rejected alongside the
	// rows the engine refused to score.
	if len(malformed) > 0 {
		output.Rejected = append(malformed, output.Rejected...)
		output.Summary = Summarize(output.Results, output.Rejected)
	}

	recordSnapshot(cfg, mgr, output, start)
	return output, nil
}

// recordSnapshot persists the run and per-application scores when a snapshot
// backend is configured. Persistence failures are warnings, never fatal to
// the assessment itself.
func recordSnapshot(cfg *contract.Config, mgr contract.StoreManager, output *schema.BatchOutput, start time.Time) {
	if mgr == nil || cfg.SnapshotBackend == schema.NoneBackend {
		return
	}
	store := mgr.GetSnapshotStore()
	if store == nil {
		return
	}

	runID, err := store.BeginRun(start, snapshotConfigParams(cfg))
	if err != nil {
		contract.LogWarn("snapshot begin run", err)
		return
	}
	for _, r := range output.Results {
		rec := schema.AppScoreRecord{
			RunID:                runID,
			AppName:              r.Name,
			AssessmentTime:       start,
			CompositeScore:       r.CompositeScore,
			RetentionScore:       r.RetentionScore,
			BusinessValueAxis:    r.BusinessValueAxis,
			TechnicalQualityAxis: r.TechnicalQualityAxis,
			AnnualCost:           r.Cost,
			Quadrant:             string(r.Quadrant),
			Action:               string(r.Action),
			Rationale:            r.ActionRationale,
		}
		if err := store.RecordAppScore(runID, rec); err != nil {
			contract.LogWarn("snapshot record score", err)
			return
		}
	}
	if err := store.EndRun(runID, time.Now(), len(output.Results), len(output.Rejected)); err != nil {
		contract.LogWarn("snapshot end run", err)
	}
}

// snapshotConfigParams captures the parameters that shaped a run so that
// stored scores can be interpreted later.
func snapshotConfigParams(cfg *contract.Config) map[string]any {
	weights := make(map[string]float64, len(cfg.CompositeWeights))
	for key, w := range cfg.CompositeWeights {
		weights[string(key)] = w
	}
	return map[string]any{
		"composite_weights":           weights,
		"business_value_threshold":    cfg.BusinessValueThreshold,
		"technical_quality_threshold": cfg.TechnicalQualityThreshold,
		"max_cost":                    cfg.MaxCost,
		"max_usage":                   cfg.MaxUsage,
	}
}

// ExecuteAssess runs the full portfolio assessment and prints a ranked
// results view. It serves as the main entry point for the 'assess' command.
func ExecuteAssess(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	output, err := GetAssessmentResults(cfg, mgr)
	if err != nil {
		return err
	}
	filtered := FilterByMinScore(output.Results, cfg.MinScore)
	ranked := RankResults(filtered, cfg.ResultLimit)
	duration := time.Since(start)
	return outwriter.PrintAssessResults(schema.EnrichResults(ranked), output, cfg, duration)
}

// ExecuteQuadrants runs the assessment and prints the quadrant placement
// view. It serves as the main entry point for the 'quadrants' command.
func ExecuteQuadrants(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	output, err := GetAssessmentResults(cfg, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintQuadrantResults(output, cfg, duration)
}

// ExecuteSummary runs the assessment and prints portfolio-level statistics.
// It serves as the main entry point for the 'summary' command.
func ExecuteSummary(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	output, err := GetAssessmentResults(cfg, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintSummaryResults(output, cfg, duration)
}

// ExecuteCriteria displays the formal definitions of the scoring criteria,
// weight sets and decision thresholds. This is a static display that does
// not load an inventory.
func ExecuteCriteria(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	return outwriter.PrintCriteriaDefinitions(cfg)
}
