package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Texasdada13/apptriage/schema"
)

// Required CSV header columns, in any order.
var csvColumns = []string{
	"name",
	"business_value",
	"tech_health",
	"cost",
	"usage",
	"security",
	"strategic_fit",
	"redundancy",
}

// csvSource loads an inventory from a CSV file with a required header row.
type csvSource struct {
	path string
}

// Load reads the CSV file, validating each row independently. A malformed
// row is reported as rejected and the rest of the file still loads.
func (s *csvSource) Load() ([]schema.Application, []schema.RejectedRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("open inventory: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	// Rows with a wrong field count are handled per-row below.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read inventory header: %w", err)
	}
	index, err := mapHeader(header)
	if err != nil {
		return nil, nil, err
	}

	var records []schema.Application
	var rejected []schema.RejectedRecord
	line := 1 // header was line 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rejected = append(rejected, schema.RejectedRecord{
				Line:   line,
				Reason: fmt.Sprintf("malformed row: %v", err),
			})
			continue
		}
		app, err := parseRow(row, index)
		if err != nil {
			rejected = append(rejected, schema.RejectedRecord{
				Line:   line,
				Name:   fieldOrEmpty(row, index["name"]),
				Reason: err.Error(),
			})
			continue
		}
		records = append(records, app)
	}
	return records, rejected, nil
}

// mapHeader resolves column positions by name. Every required column must
// be present exactly once.
func mapHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("inventory header: duplicate column %q", name)
		}
		index[name] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("inventory header: missing column %q", col)
		}
	}
	return index, nil
}

// parseRow converts one CSV row into a validated Application.
func parseRow(row []string, index map[string]int) (schema.Application, error) {
	get := func(col string) (string, error) {
		i := index[col]
		if i >= len(row) {
			return "", fmt.Errorf("missing value for column %q", col)
		}
		return strings.TrimSpace(row[i]), nil
	}
	getFloat := func(col string) (float64, error) {
		raw, err := get(col)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("column %q: invalid number %q", col, raw)
		}
		return v, nil
	}

	name, err := get("name")
	if err != nil {
		return schema.Application{}, err
	}
	values := make(map[string]float64, len(csvColumns)-2)
	for _, col := range csvColumns[1 : len(csvColumns)-1] {
		values[col], err = getFloat(col)
		if err != nil {
			return schema.Application{}, err
		}
	}
	rawRed, err := get("redundancy")
	if err != nil {
		return schema.Application{}, err
	}
	redundancy, err := strconv.Atoi(rawRed)
	if err != nil {
		return schema.Application{}, fmt.Errorf("column %q: invalid integer %q", "redundancy", rawRed)
	}

	return schema.NewApplication(
		name,
		values["business_value"],
		values["tech_health"],
		values["cost"],
		values["usage"],
		values["security"],
		values["strategic_fit"],
		redundancy,
	)
}

func fieldOrEmpty(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}
