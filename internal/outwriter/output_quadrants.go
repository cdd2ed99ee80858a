package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/Texasdada13/apptriage/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// quadrantMembership holds one quadrant and its member applications for JSON output.
type quadrantMembership struct {
	Quadrant     schema.QuadrantCategory `json:"quadrant"`
	Count        int                     `json:"count"`
	Applications []schema.AppResult      `json:"applications"`
}

// groupByQuadrant partitions results into display order, sorting each group
// by composite score descending with name as tie-break.
func groupByQuadrant(results []schema.AppResult) []quadrantMembership {
	groups := make(map[schema.QuadrantCategory][]schema.AppResult, len(schema.AllQuadrants))
	for _, r := range results {
		groups[r.Quadrant] = append(groups[r.Quadrant], r)
	}
	memberships := make([]quadrantMembership, 0, len(schema.AllQuadrants))
	for _, q := range schema.AllQuadrants {
		members := groups[q]
		sort.Slice(members, func(i, j int) bool {
			if members[i].CompositeScore != members[j].CompositeScore {
				return members[i].CompositeScore > members[j].CompositeScore
			}
			return members[i].Name < members[j].Name
		})
		memberships = append(memberships, quadrantMembership{
			Quadrant:     q,
			Count:        len(members),
			Applications: members,
		})
	}
	return memberships
}

// PrintQuadrantResults outputs the quadrant placement view, dispatching based
// on the output format configured.
func PrintQuadrantResults(output *schema.BatchOutput, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	memberships := groupByQuadrant(output.Results)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, memberships)
		}, "Wrote JSON")
	case schema.CSVOut:
		if err := writeQuadrantCSVResults(memberships, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeQuadrantTable(memberships, output, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeQuadrantCSVResults writes quadrant placements in CSV format.
func writeQuadrantCSVResults(memberships []quadrantMembership, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{
		"quadrant",
		"name",
		"business_value_axis",
		"technical_quality_axis",
		"composite_score",
		"quadrant_rationale",
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, m := range memberships {
				for _, r := range m.Applications {
					rec := []string{
						string(m.Quadrant),
						r.Name,
						fmtFloat(r.BusinessValueAxis),
						fmtFloat(r.TechnicalQualityAxis),
						fmtFloat(r.CompositeScore),
						r.QuadrantRationale,
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeQuadrantTable generates and writes the human-readable quadrant view.
func writeQuadrantTable(memberships []quadrantMembership, output *schema.BatchOutput, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	// Distribution header line before the per-app table
	if _, err := fmt.Fprintf(writer, "Quadrant distribution:"); err != nil {
		return err
	}
	for _, m := range memberships {
		name := string(m.Quadrant)
		if cfg.UseColors {
			name = contract.GetColorQuadrant(m.Quadrant)
		}
		if _, err := fmt.Fprintf(writer, " %s=%d", name, m.Count); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(writer); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	headers := []string{"Quadrant", "Name", "BVAxis", "TQAxis", "Composite"}
	if cfg.Detail {
		headers = append(headers, "Rationale")
	}
	table.Header(headers)
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, m := range memberships {
		for _, r := range m.Applications {
			quadrant := string(m.Quadrant)
			if cfg.UseColors {
				quadrant = contract.GetColorQuadrant(m.Quadrant)
			}
			row := []string{
				quadrant,
				contract.TruncateName(r.Name, getMaxTableNameWidth(cfg)),
				fmtFloat(r.BusinessValueAxis),
				fmtFloat(r.TechnicalQualityAxis),
				fmtFloat(r.CompositeScore),
			}
			if cfg.Detail {
				row = append(row, r.QuadrantRationale)
			}
			data = append(data, row)
		}
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	summary := output.Summary
	if _, err := fmt.Fprintf(writer, "Placed %d applications (rejected: %d)\n",
		summary.TotalApplications, summary.RejectedRecords); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Assessment completed in %v with %d workers. Snapshot backend: %s\n",
		duration, cfg.Workers, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}
