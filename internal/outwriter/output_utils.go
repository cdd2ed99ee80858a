package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/Texasdada13/apptriage/schema"
	"golang.org/x/term"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

const (
	dimensionContribMinimum = 0.5
	topNDimensions          = 3
)

// formatTopDimensionBreakdown computes the top 3 dimensions that contribute
// to the composite score.
func formatTopDimensionBreakdown(r *schema.AppResult) string {
	type dimensionContrib struct {
		Name  string
		Value float64
	}
	var dims []dimensionContrib

	for k, v := range r.Breakdown {
		// Only include meaningful contributions
		if v >= dimensionContribMinimum {
			dims = append(dims, dimensionContrib{
				Name:  string(k),
				Value: v,
			})
		}
	}

	if len(dims) == 0 {
		return "Not applicable"
	}

	// Highest absolute contribution first. Redundancy can be penalizing,
	// so compare magnitudes rather than signed values.
	sort.Slice(dims, func(i, j int) bool {
		return math.Abs(dims[i].Value) > math.Abs(dims[j].Value)
	})

	var parts []string
	limit := min(len(dims), topNDimensions)
	for i := range limit {
		parts = append(parts, dims[i].Name)
	}
	return strings.Join(parts, " > ")
}

// getMaxTableNameWidth calculates the maximum width for application names in
// table output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 45 // Rank + Composite + Retention + Quadrant + Action with borders/padding

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 45 // All detail columns (Cost + Usage + BVAxis + TQAxis + Label) with formatting
	}

	// Add explain column
	if cfg.Explain {
		baseWidth += 30 // Explain column with formatting
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 15

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable name width
		return 15
	}
	if available > 50 {
		// Maximum name width to prevent overly wide tables
		return 50
	}
	return available
}
