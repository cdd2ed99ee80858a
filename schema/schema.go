// Package schema has configs, models and constants for all parts of apptriage.
package schema

import "fmt"

// Application represents the raw portfolio record for a single application.
// The seven attributes are supplied by the caller and validated at
// construction time via NewApplication.
type Application struct {
	Name          string  `json:"name"`           // Unique application name/identifier
	BusinessValue float64 `json:"business_value"` // Subjective importance to the organization (0-10)
	TechHealth    float64 `json:"tech_health"`    // Maintainability/technical condition (0-10)
	Cost          float64 `json:"cost"`           // Annual cost, non-negative currency amount
	Usage         float64 `json:"usage"`          // Active users/transactions, non-negative count
	Security      float64 `json:"security"`       // Security posture rating (0-10)
	StrategicFit  float64 `json:"strategic_fit"`  // Alignment with strategic direction (0-10)
	Redundancy    int     `json:"redundancy"`     // 1 if equivalent functionality exists elsewhere, else 0
}

// AppResult is an Application annotated with every derived value the
// decision engine computes. Once built it is immutable and handed to the
// batch orchestrator as-is.
type AppResult struct {
	Application

	CostScore      float64 `json:"cost_score"`      // Normalized cost projection (0-10, lower cost is higher)
	UsageScore     float64 `json:"usage_score"`     // Normalized usage projection (0-10)
	CompositeScore float64 `json:"composite_score"` // Weighted combination of all dimensions (0-100)
	RetentionScore float64 `json:"retention_score"` // Blend of composite and criticality average (0-100)

	BusinessValueAxis    float64 `json:"business_value_axis"`    // Strategic positioning axis (0-10)
	TechnicalQualityAxis float64 `json:"technical_quality_axis"` // Technical quality axis (0-10)

	Quadrant          QuadrantCategory `json:"quadrant"`           // TIME quadrant placement
	QuadrantRationale string           `json:"quadrant_rationale"` // Which axes drove the placement

	Action          ActionLabel `json:"action"`           // Discrete action recommendation
	ActionRationale string      `json:"action_rationale"` // Which rule fired and why

	// Breakdown holds each dimension's contribution to the composite score
	// (in points out of 100) for explain output.
	Breakdown map[WeightKey]float64 `json:"breakdown,omitempty"`
}

// RejectedRecord describes an input record that failed validation and was
// excluded from scoring. The batch continues without it.
type RejectedRecord struct {
	Line   int    `json:"line,omitempty"` // Source line in the inventory file, if known
	Name   string `json:"name"`           // Application name, if one was parsed
	Reason string `json:"reason"`         // Human-readable validation failure
}

// validate checks every raw attribute against its allowed range.
func (a *Application) validate() error {
	if a.Name == "" {
		return fmt.Errorf("application name is required")
	}
	ratings := []struct {
		field string
		value float64
	}{
		{"business_value", a.BusinessValue},
		{"tech_health", a.TechHealth},
		{"security", a.Security},
		{"strategic_fit", a.StrategicFit},
	}
	for _, r := range ratings {
		if r.value < 0 || r.value > 10 {
			return fmt.Errorf("%s must be between 0 and 10 (got %.2f)", r.field, r.value)
		}
	}
	if a.Cost < 0 {
		return fmt.Errorf("cost must be non-negative (got %.2f)", a.Cost)
	}
	if a.Usage < 0 {
		return fmt.Errorf("usage must be non-negative (got %.2f)", a.Usage)
	}
	if a.Redundancy != 0 && a.Redundancy != 1 {
		return fmt.Errorf("redundancy must be 0 or 1 (got %d)", a.Redundancy)
	}
	return nil
}

// NewApplication builds a validated Application record. Range violations are
// reported here, before the record ever reaches the scoring logic.
func NewApplication(name string, businessValue, techHealth, cost, usage, security, strategicFit float64, redundancy int) (Application, error) {
	app := Application{
		Name:          name,
		BusinessValue: businessValue,
		TechHealth:    techHealth,
		Cost:          cost,
		Usage:         usage,
		Security:      security,
		StrategicFit:  strategicFit,
		Redundancy:    redundancy,
	}
	if err := app.validate(); err != nil {
		return Application{}, err
	}
	return app, nil
}

// Validate re-runs range validation on an already-constructed record.
// Loaders that unmarshal records directly (e.g. JSON) use this instead of
// the field-by-field factory.
func (a *Application) Validate() error {
	return a.validate()
}
