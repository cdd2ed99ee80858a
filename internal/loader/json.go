package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Texasdada13/apptriage/schema"
)

// jsonSource loads an inventory from a JSON array of application objects.
type jsonSource struct {
	path string
}

// Load decodes the JSON array and range-validates each record. A record
// that fails validation is reported as rejected and the rest still load.
func (s *jsonSource) Load() ([]schema.Application, []schema.RejectedRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("read inventory: %w", err)
	}

	var raw []schema.Application
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse inventory: %w", err)
	}

	var records []schema.Application
	var rejected []schema.RejectedRecord
	for i, app := range raw {
		if err := app.Validate(); err != nil {
			rejected = append(rejected, schema.RejectedRecord{
				Line:   i + 1, // element position, the file has no line mapping
				Name:   app.Name,
				Reason: err.Error(),
			})
			continue
		}
		records = append(records, app)
	}
	return records, rejected, nil
}
