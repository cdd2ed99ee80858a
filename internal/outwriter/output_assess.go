package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/Texasdada13/apptriage/internal/parquet"
	"github.com/Texasdada13/apptriage/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintAssessResults outputs the ranked assessment results, dispatching based
// on the output format configured.
func PrintAssessResults(ranked []schema.EnrichedAppResult, output *schema.BatchOutput, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeAssessJSONResults(ranked, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeAssessCSVResults(ranked, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeAssessParquetResults(ranked, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAssessTable(ranked, output, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeAssessJSONResults handles opening the file and calling the JSON writer.
func writeAssessJSONResults(ranked []schema.EnrichedAppResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, ranked)
	}, "Wrote JSON")
}

// writeAssessCSVResults handles opening the file and calling the CSV writer.
func writeAssessCSVResults(ranked []schema.EnrichedAppResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"name",
		"composite_score",
		"retention_score",
		"label",
		"business_value_axis",
		"technical_quality_axis",
		"quadrant",
		"action",
		"cost",
		"usage",
		"action_rationale",
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, r := range ranked {
				rec := []string{
					strconv.Itoa(r.Rank),
					r.Name,
					fmtFloat(r.CompositeScore),
					fmtFloat(r.RetentionScore),
					r.Label,
					fmtFloat(r.BusinessValueAxis),
					fmtFloat(r.TechnicalQualityAxis),
					string(r.Quadrant),
					string(r.Action),
					fmt.Sprintf("%.2f", r.Cost),
					fmt.Sprintf("%.2f", r.Usage),
					r.ActionRationale,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeAssessParquetResults writes the ranked results to a Parquet file.
// Parquet is a binary columnar format, so an output file is required.
func writeAssessParquetResults(ranked []schema.EnrichedAppResult, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	results := make([]schema.AppResult, len(ranked))
	for i, r := range ranked {
		results[i] = r.AppResult
	}
	rows := parquet.ConvertAppResults(results, time.Now())
	if err := parquet.WriteAppScoresParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// writeAssessTable generates and writes the human-readable table.
func writeAssessTable(ranked []schema.EnrichedAppResult, output *schema.BatchOutput, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Name", "Composite", "Retention", "Quadrant", "Action"}
	if cfg.Detail {
		headers = append(headers, "BVAxis", "TQAxis", "Cost", "Usage", "Label")
	}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, r := range ranked {
		quadrant := string(r.Quadrant)
		action := string(r.Action)
		if cfg.UseColors {
			quadrant = contract.GetColorQuadrant(r.Quadrant)
			action = contract.GetColorAction(r.Action)
		}
		row := []string{
			strconv.Itoa(r.Rank),
			contract.TruncateName(r.Name, getMaxTableNameWidth(cfg)),
			fmtFloat(r.CompositeScore),
			fmtFloat(r.RetentionScore),
			quadrant,
			action,
		}
		if cfg.Detail {
			label := r.Label
			if cfg.UseColors {
				label = contract.GetColorLabel(r.CompositeScore)
			}
			row = append(
				row,
				fmtFloat(r.BusinessValueAxis),
				fmtFloat(r.TechnicalQualityAxis),
				fmt.Sprintf("%.0f", r.Cost),
				fmt.Sprintf("%.0f", r.Usage),
				label,
			)
		}
		if cfg.Explain {
			result := r.AppResult
			row = append(row, formatTopDimensionBreakdown(&result))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	summary := output.Summary
	if _, err := fmt.Fprintf(writer, "Showing top %d of %d applications (rejected: %d, total cost: %.2f)\n",
		len(ranked), summary.TotalApplications, summary.RejectedRecords, summary.TotalCost); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Assessment completed in %v with %d workers. Snapshot backend: %s\n",
		duration, cfg.Workers, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}
