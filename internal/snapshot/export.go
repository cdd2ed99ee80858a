package snapshot

import (
	"errors"
	"fmt"

	"github.com/Texasdada13/apptriage/internal/parquet"
)

// ExecuteSnapshotExport performs the actual export of snapshot data to Parquet files.
func ExecuteSnapshotExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the snapshot store
	store := Manager.GetSnapshotStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get snapshot status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no snapshot data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total assessment runs: %d\n", status.TotalRuns)
	fmt.Printf("Total score records: %d\n", status.TableSizes[appScoresTable])

	// Retrieve all assessment runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve assessment runs: %w", err)
	}

	// Retrieve all application scores
	scores, err := store.GetAllAppScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve app scores: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertAssessmentRunRecords(runs)
	parquetScores := parquet.ConvertAppScoreRecords(scores)

	// Write assessment runs to Parquet
	runsFile := outputFile + ".assessment_runs.parquet"
	if err := parquet.WriteAssessmentRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write assessment runs: %w", err)
	}
	fmt.Printf("Exported %d assessment runs to: %s\n", len(parquetRuns), runsFile)

	// Write application scores to Parquet
	scoresFile := outputFile + ".app_scores.parquet"
	if err := parquet.WriteAppScoresParquet(parquetScores, scoresFile); err != nil {
		return fmt.Errorf("failed to write app scores: %w", err)
	}
	fmt.Printf("Exported %d score records to: %s\n", len(parquetScores), scoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
