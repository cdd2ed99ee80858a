package schema

// PortfolioSummary aggregates portfolio-level statistics for one assessment
// run. It tolerates an empty record set: all counts stay zero.
type PortfolioSummary struct {
	TotalApplications int                      `json:"total_applications"` // Scored records
	RejectedRecords   int                      `json:"rejected_records"`   // Records excluded by validation
	ActionCounts      map[ActionLabel]int      `json:"action_counts"`
	QuadrantCounts    map[QuadrantCategory]int `json:"quadrant_counts"`
	TotalCost         float64                  `json:"total_cost"`
	AverageComposite  float64                  `json:"average_composite"`
	AverageRetention  float64                  `json:"average_retention"`
	RedundantCount    int                      `json:"redundant_count"`
}

// NewPortfolioSummary returns a summary with all count maps initialized so
// every label and quadrant appears in output even at zero.
func NewPortfolioSummary() *PortfolioSummary {
	s := &PortfolioSummary{
		ActionCounts:   make(map[ActionLabel]int, len(AllActionLabels)),
		QuadrantCounts: make(map[QuadrantCategory]int, len(AllQuadrants)),
	}
	for _, label := range AllActionLabels {
		s.ActionCounts[label] = 0
	}
	for _, q := range AllQuadrants {
		s.QuadrantCounts[q] = 0
	}
	return s
}

// BatchOutput is the complete result of one assessment run: every annotated
// record, every rejected record, and the portfolio summary.
type BatchOutput struct {
	Results  []AppResult       `json:"results"`
	Rejected []RejectedRecord  `json:"rejected,omitempty"`
	Summary  *PortfolioSummary `json:"summary"`
}
