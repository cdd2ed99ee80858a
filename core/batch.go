package core

import (
	"sync"

	"github.com/Texasdada13/apptriage/schema"
)

// AssessApplication runs the full decision pipeline for a single validated
// record: normalization, composite and retention scoring, quadrant
// classification and action recommendation. It is a pure function of the
// record and the configuration.
func AssessApplication(app schema.Application, cfg EngineConfig) schema.AppResult {
	costScore := normalizeCost(app.Cost, cfg.MaxCost)
	usageScore := normalizeUsage(app.Usage, cfg.MaxUsage)

	composite, breakdown := computeCompositeScore(&app, costScore, usageScore, cfg.CompositeWeights)
	retention := computeRetentionScore(&app, composite)

	bvAxis := computeAxis(&app, costScore, usageScore, cfg.BusinessWeights)
	tqAxis := computeAxis(&app, costScore, usageScore, cfg.TechnicalWeights)
	quadrant, quadrantRationale := classifyQuadrant(&app, bvAxis, tqAxis, cfg.Thresholds)

	action, actionRationale := recommendAction(&app, composite, retention, cfg.Thresholds)

	return schema.AppResult{
		Application:          app,
		CostScore:            costScore,
		UsageScore:           usageScore,
		CompositeScore:       composite,
		RetentionScore:       retention,
		BusinessValueAxis:    bvAxis,
		TechnicalQualityAxis: tqAxis,
		Quadrant:             quadrant,
		QuadrantRationale:    quadrantRationale,
		Action:               action,
		ActionRationale:      actionRationale,
		Breakdown:            breakdown,
	}
}

// assessOutcome carries one worker's result: either an annotated record or
// a validation rejection.
type assessOutcome struct {
	result   schema.AppResult
	rejected *schema.RejectedRecord
}

// AssessPortfolio applies the decision pipeline to every record using a
// worker pool and aggregates the portfolio summary. The configuration is
// validated once before any record is scored; a malformed record is flagged
// and skipped without aborting the batch.
func AssessPortfolio(records []schema.Application, cfg EngineConfig, workers int) (*schema.BatchOutput, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	recordCh := make(chan schema.Application, len(records))
	outcomeCh := make(chan assessOutcome, len(records))
	var wg sync.WaitGroup

	// Records share nothing: each worker reads the snapshotted config and
	// writes only its own outcome.
	for range workers {
		wg.Go(func() {
			for app := range recordCh {
				if err := app.Validate(); err != nil {
					outcomeCh <- assessOutcome{rejected: &schema.RejectedRecord{
						Name:   app.Name,
						Reason: err.Error(),
					}}
					continue
				}
				outcomeCh <- assessOutcome{result: AssessApplication(app, cfg)}
			}
		})
	}

	for _, app := range records {
		recordCh <- app
	}
	close(recordCh)

	wg.Wait()
	close(outcomeCh)

	results := make([]schema.AppResult, 0, len(records))
	var rejected []schema.RejectedRecord
	for out := range outcomeCh {
		if out.rejected != nil {
			rejected = append(rejected, *out.rejected)
			continue
		}
		results = append(results, out.result)
	}

	return &schema.BatchOutput{
		Results:  results,
		Rejected: rejected,
		Summary:  Summarize(results, rejected),
	}, nil
}

// Summarize computes the portfolio-level statistics for a set of annotated
// records. An empty record set yields a zero summary, never an error.
func Summarize(results []schema.AppResult, rejected []schema.RejectedRecord) *schema.PortfolioSummary {
	summary := schema.NewPortfolioSummary()
	summary.TotalApplications = len(results)
	summary.RejectedRecords = len(rejected)

	if len(results) == 0 {
		return summary
	}

	var totalComposite, totalRetention float64
	for _, r := range results {
		summary.ActionCounts[r.Action]++
		summary.QuadrantCounts[r.Quadrant]++
		summary.TotalCost += r.Cost
		totalComposite += r.CompositeScore
		totalRetention += r.RetentionScore
		if r.Redundancy == 1 {
			summary.RedundantCount++
		}
	}
	summary.AverageComposite = totalComposite / float64(len(results))
	summary.AverageRetention = totalRetention / float64(len(results))

	return summary
}
