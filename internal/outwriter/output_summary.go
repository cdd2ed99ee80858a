package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/Texasdada13/apptriage/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSummaryResults outputs portfolio-level statistics, dispatching based
// on the output format configured.
func PrintSummaryResults(output *schema.BatchOutput, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, output.Summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		if err := writeSummaryCSVResults(output.Summary, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(output, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeSummaryCSVResults writes summary statistics as metric/value rows.
func writeSummaryCSVResults(summary *schema.PortfolioSummary, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"metric", "value"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			rows := [][]string{
				{"total_applications", strconv.Itoa(summary.TotalApplications)},
				{"rejected_records", strconv.Itoa(summary.RejectedRecords)},
				{"total_cost", fmt.Sprintf("%.2f", summary.TotalCost)},
				{"average_composite", fmtFloat(summary.AverageComposite)},
				{"average_retention", fmtFloat(summary.AverageRetention)},
				{"redundant_count", strconv.Itoa(summary.RedundantCount)},
			}
			for _, q := range schema.AllQuadrants {
				rows = append(rows, []string{
					"quadrant_" + string(q),
					strconv.Itoa(summary.QuadrantCounts[q]),
				})
			}
			for _, a := range schema.AllActionLabels {
				rows = append(rows, []string{
					"action_" + string(a),
					strconv.Itoa(summary.ActionCounts[a]),
				})
			}
			for _, row := range rows {
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeSummaryTable generates and writes the human-readable summary view.
func writeSummaryTable(output *schema.BatchOutput, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	summary := output.Summary

	if _, err := fmt.Fprintf(writer, "Portfolio: %d applications, %d rejected, total cost %.2f\n",
		summary.TotalApplications, summary.RejectedRecords, summary.TotalCost); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Averages: composite %s, retention %s. Redundant applications: %d\n",
		fmtFloat(summary.AverageComposite), fmtFloat(summary.AverageRetention), summary.RedundantCount); err != nil {
		return err
	}

	quadrantTable := tablewriter.NewWriter(writer)
	quadrantTable.Header([]string{"Quadrant", "Count"})
	quadrantTable.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})
	var quadrantData [][]string
	for _, q := range schema.AllQuadrants {
		name := string(q)
		if cfg.UseColors {
			name = contract.GetColorQuadrant(q)
		}
		quadrantData = append(quadrantData, []string{name, strconv.Itoa(summary.QuadrantCounts[q])})
	}
	if err := quadrantTable.Bulk(quadrantData); err != nil {
		return err
	}
	if err := quadrantTable.Render(); err != nil {
		return err
	}

	actionTable := tablewriter.NewWriter(writer)
	actionTable.Header([]string{"Action", "Count"})
	actionTable.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})
	var actionData [][]string
	for _, a := range schema.AllActionLabels {
		name := string(a)
		if cfg.UseColors {
			name = contract.GetColorAction(a)
		}
		actionData = append(actionData, []string{name, strconv.Itoa(summary.ActionCounts[a])})
	}
	if err := actionTable.Bulk(actionData); err != nil {
		return err
	}
	if err := actionTable.Render(); err != nil {
		return err
	}

	// Rejected rows are listed so a bad inventory line never fails silently
	for _, rej := range output.Rejected {
		if rej.Name == "" {
			if _, err := fmt.Fprintf(writer, "Rejected line %d: %s\n", rej.Line, rej.Reason); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(writer, "Rejected line %d (%s): %s\n", rej.Line, rej.Name, rej.Reason); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Assessment completed in %v with %d workers. Snapshot backend: %s\n",
		duration, cfg.Workers, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}
