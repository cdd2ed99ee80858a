// Package parquet provides data structures and functions for exporting
// assessment data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Texasdada13/apptriage/schema"
	"github.com/parquet-go/parquet-go"
)

// AssessmentRun represents a single portfolio assessment run with metadata.
// This struct maps to the apptriage_assessment_runs database table.
type AssessmentRun struct {
	// RunID is the unique identifier for this assessment run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the assessment began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the assessment completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the assessment run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalApps is the number of applications scored in this run
	TotalApps int32 `parquet:"total_apps,snappy"`

	// RejectedRecords is the number of input records that failed validation
	RejectedRecords int32 `parquet:"rejected_records,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// AppScore represents the scores and decisions for a single application in
// an assessment. This struct maps to the apptriage_app_scores database table.
type AppScore struct {
	// RunID references the parent assessment run
	RunID int64 `parquet:"run_id,snappy"`

	// AppName is the unique application name from the inventory
	AppName string `parquet:"app_name,snappy"`

	// AssessmentTime is when this application was scored
	AssessmentTime time.Time `parquet:"assessment_time,snappy"`

	// CompositeScore is the weighted overall health score (0-100)
	CompositeScore float64 `parquet:"composite_score,snappy"`

	// RetentionScore blends composite health with criticality (0-100)
	RetentionScore float64 `parquet:"retention_score,snappy"`

	// BusinessValueAxis is the strategic positioning axis (0-10)
	BusinessValueAxis float64 `parquet:"business_value_axis,snappy"`

	// TechnicalQualityAxis is the technical quality axis (0-10)
	TechnicalQualityAxis float64 `parquet:"technical_quality_axis,snappy"`

	// AnnualCost is the raw annual cost from the inventory
	AnnualCost float64 `parquet:"annual_cost,snappy"`

	// Quadrant is the assigned placement (Invest, Tolerate, Migrate, Eliminate)
	Quadrant string `parquet:"quadrant,snappy"`

	// Action is the recommended action label
	Action string `parquet:"action,snappy"`

	// Rationale explains which rule drove the recommendation
	Rationale string `parquet:"rationale,snappy"`
}

// WriteAssessmentRunsParquet writes a slice of AssessmentRun structs to a Parquet file.
func WriteAssessmentRunsParquet(data []AssessmentRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the AssessmentRun struct tags
	writer := parquet.NewGenericWriter[AssessmentRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteAppScoresParquet writes a slice of AppScore structs to a Parquet file.
func WriteAppScoresParquet(data []AppScore, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the AppScore struct tags
	writer := parquet.NewGenericWriter[AppScore](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteAppScores streams AppScore rows to an already-open writer.
func WriteAppScores(w io.Writer, data []AppScore) error {
	writer := parquet.NewGenericWriter[AppScore](w)
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet stream: %w", err)
	}
	return writer.Close()
}

// ConvertAssessmentRunRecords converts schema.AssessmentRunRecord to AssessmentRun for Parquet export.
func ConvertAssessmentRunRecords(records []schema.AssessmentRunRecord) []AssessmentRun {
	result := make([]AssessmentRun, len(records))
	for i, record := range records {
		result[i] = AssessmentRun{
			RunID:           record.RunID,
			StartTime:       record.StartTime,
			EndTime:         record.EndTime,
			RunDurationMs:   record.RunDurationMs,
			TotalApps:       record.TotalApps,
			RejectedRecords: record.RejectedRecords,
			ConfigParams:    record.ConfigParams,
		}
	}
	return result
}

// ConvertAppScoreRecords converts schema.AppScoreRecord to AppScore for Parquet export.
func ConvertAppScoreRecords(records []schema.AppScoreRecord) []AppScore {
	result := make([]AppScore, len(records))
	for i, record := range records {
		result[i] = AppScore{
			RunID:                record.RunID,
			AppName:              record.AppName,
			AssessmentTime:       record.AssessmentTime,
			CompositeScore:       record.CompositeScore,
			RetentionScore:       record.RetentionScore,
			BusinessValueAxis:    record.BusinessValueAxis,
			TechnicalQualityAxis: record.TechnicalQualityAxis,
			AnnualCost:           record.AnnualCost,
			Quadrant:             record.Quadrant,
			Action:               record.Action,
			Rationale:            record.Rationale,
		}
	}
	return result
}

// ConvertAppResults converts live assessment results to AppScore rows for
// direct Parquet output without a snapshot store.
func ConvertAppResults(results []schema.AppResult, assessedAt time.Time) []AppScore {
	rows := make([]AppScore, len(results))
	for i, r := range results {
		rows[i] = AppScore{
			RunID:                0, // no persisted run backs a direct export
			AppName:              r.Name,
			AssessmentTime:       assessedAt,
			CompositeScore:       r.CompositeScore,
			RetentionScore:       r.RetentionScore,
			BusinessValueAxis:    r.BusinessValueAxis,
			TechnicalQualityAxis: r.TechnicalQualityAxis,
			AnnualCost:           r.Cost,
			Quadrant:             string(r.Quadrant),
			Action:               string(r.Action),
			Rationale:            r.ActionRationale,
		}
	}
	return rows
}
