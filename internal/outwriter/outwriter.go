// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/Texasdada13/apptriage/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAssessment prints ranked assessment results using the configured output format.
func (ow *OutWriter) WriteAssessment(ranked []schema.EnrichedAppResult, output *schema.BatchOutput, cfg *contract.Config, duration time.Duration) error {
	return PrintAssessResults(ranked, output, cfg, duration)
}

// WriteQuadrants prints the quadrant placement view using the configured output format.
func (ow *OutWriter) WriteQuadrants(output *schema.BatchOutput, cfg *contract.Config, duration time.Duration) error {
	return PrintQuadrantResults(output, cfg, duration)
}

// WriteSummary prints portfolio-level statistics using the configured output format.
func (ow *OutWriter) WriteSummary(output *schema.BatchOutput, cfg *contract.Config, duration time.Duration) error {
	return PrintSummaryResults(output, cfg, duration)
}

// WriteCriteria prints scoring criteria definitions using the configured output format.
func (ow *OutWriter) WriteCriteria(cfg *contract.Config) error {
	return PrintCriteriaDefinitions(cfg)
}
