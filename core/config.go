// Package core has the decision engine: normalization, scoring, quadrant
// classification, action recommendation and batch orchestration.
package core

import (
	"fmt"
	"math"

	"github.com/Texasdada13/apptriage/schema"
)

// weightSumTolerance is the allowed deviation when validating that a weight
// set sums to 1.0.
const weightSumTolerance = 0.001

// Thresholds holds the threshold values for quadrant placement and the
// override rules.
type Thresholds struct {
	BusinessValue         float64 // Minimum business-value axis for Invest/Tolerate
	TechnicalQuality      float64 // Minimum technical-quality axis for Invest/Migrate
	CriticalBusinessValue float64 // Above this, an app counts as business-critical
	PoorTechHealth        float64 // Below this, an app counts as technically broken
	PoorSecurity          float64 // Below this, an app counts as a security gap
}

// EngineConfig is the immutable configuration for one assessment run. It is
// validated once up front and passed by value into every engine call, so
// concurrent batches with different configs never interfere.
type EngineConfig struct {
	CompositeWeights map[schema.WeightKey]float64
	BusinessWeights  map[schema.WeightKey]float64
	TechnicalWeights map[schema.WeightKey]float64
	Thresholds       Thresholds
	MaxCost          float64
	MaxUsage         float64
}

// ConfigError reports an invalid engine configuration. It is fatal to the
// run and raised before any record is scored.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "engine config: " + e.Msg
}

// RecordError reports a single malformed record. The offending record is
// excluded from scoring; the batch continues.
type RecordError struct {
	Name string
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %q: %v", e.Name, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// DefaultEngineConfig returns the built-in defaults: the documented weight
// sets, thresholds, and normalization ceilings.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		CompositeWeights: schema.GetDefaultWeights(schema.CompositeWeights),
		BusinessWeights:  schema.GetDefaultWeights(schema.BusinessAxisWeights),
		TechnicalWeights: schema.GetDefaultWeights(schema.TechnicalAxisWeights),
		Thresholds: Thresholds{
			BusinessValue:         schema.DefaultBusinessValueThreshold,
			TechnicalQuality:      schema.DefaultTechnicalQualityThreshold,
			CriticalBusinessValue: schema.DefaultCriticalBusinessValue,
			PoorTechHealth:        schema.DefaultPoorTechHealth,
			PoorSecurity:          schema.DefaultPoorSecurity,
		},
		MaxCost:  schema.DefaultMaxCost,
		MaxUsage: schema.DefaultMaxUsage,
	}
}

// Validate checks every weight set, threshold and ceiling. It must be called
// before any record is scored; a failure aborts the whole run.
func (c EngineConfig) Validate() error {
	sets := []struct {
		name    schema.WeightSet
		weights map[schema.WeightKey]float64
	}{
		{schema.CompositeWeights, c.CompositeWeights},
		{schema.BusinessAxisWeights, c.BusinessWeights},
		{schema.TechnicalAxisWeights, c.TechnicalWeights},
	}
	for _, set := range sets {
		if len(set.weights) == 0 {
			return &ConfigError{Msg: fmt.Sprintf("weight set %s is empty", set.name)}
		}
		var sum float64
		for key, w := range set.weights {
			if w < 0 {
				return &ConfigError{Msg: fmt.Sprintf("weight set %s: weight %s is negative (%.3f)", set.name, key, w)}
			}
			sum += w
		}
		if math.Abs(sum-1.0) > weightSumTolerance {
			return &ConfigError{Msg: fmt.Sprintf("weight set %s must sum to 1.0, got %.3f", set.name, sum)}
		}
	}

	if c.MaxCost <= 0 {
		return &ConfigError{Msg: fmt.Sprintf("max_cost ceiling must be positive, got %.2f", c.MaxCost)}
	}
	if c.MaxUsage <= 0 {
		return &ConfigError{Msg: fmt.Sprintf("max_usage ceiling must be positive, got %.2f", c.MaxUsage)}
	}

	t := c.Thresholds
	axes := []struct {
		name  string
		value float64
	}{
		{"business_value_threshold", t.BusinessValue},
		{"technical_quality_threshold", t.TechnicalQuality},
		{"critical_business_value", t.CriticalBusinessValue},
		{"poor_tech_health", t.PoorTechHealth},
		{"poor_security", t.PoorSecurity},
	}
	for _, a := range axes {
		if a.value < 0 || a.value > 10 {
			return &ConfigError{Msg: fmt.Sprintf("%s must be between 0 and 10, got %.2f", a.name, a.value)}
		}
	}

	return nil
}
