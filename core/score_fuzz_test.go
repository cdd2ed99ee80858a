package core

import (
	"testing"

	"github.com/Texasdada13/apptriage/schema"
)

// FuzzAssessApplication fuzzes the full single-record pipeline with random
// attribute values. Validated or not, a record must never produce a score
// outside the documented ranges or a panic.
func FuzzAssessApplication(f *testing.F) {
	seeds := []schema.Application{
		{
			Name:          "crm",
			BusinessValue: 9,
			TechHealth:    7,
			Cost:          50000,
			Usage:         850,
			Security:      8,
			StrategicFit:  9,
			Redundancy:    0,
		},
		{
			Name: "empty", // edge case
		},
		{
			Name:          "redundant",
			BusinessValue: 7,
			TechHealth:    8,
			Cost:          120000,
			Usage:         300,
			Security:      6,
			StrategicFit:  5,
			Redundancy:    1,
		},
	}
	for _, seed := range seeds {
		f.Add(seed.Name, seed.BusinessValue, seed.TechHealth, seed.Cost,
			seed.Usage, seed.Security, seed.StrategicFit, seed.Redundancy)
	}

	cfg := DefaultEngineConfig()

	f.Fuzz(func(t *testing.T,
		name string,
		businessValue float64,
		techHealth float64,
		cost float64,
		usage float64,
		security float64,
		strategicFit float64,
		redundancy int,
	) {
		app := schema.Application{
			Name:          name,
			BusinessValue: businessValue,
			TechHealth:    techHealth,
			Cost:          cost,
			Usage:         usage,
			Security:      security,
			StrategicFit:  strategicFit,
			Redundancy:    redundancy,
		}
		// Only validated records reach the engine in production.
		if err := app.Validate(); err != nil {
			t.Skip()
		}

		result := AssessApplication(app, cfg)
		if result.CompositeScore < 0 || result.CompositeScore > 100 {
			t.Errorf("composite score out of range: %f", result.CompositeScore)
		}
		if result.RetentionScore < 0 || result.RetentionScore > 100 {
			t.Errorf("retention score out of range: %f", result.RetentionScore)
		}
		if result.BusinessValueAxis < 0 || result.BusinessValueAxis > 10 {
			t.Errorf("business value axis out of range: %f", result.BusinessValueAxis)
		}
		if result.TechnicalQualityAxis < 0 || result.TechnicalQualityAxis > 10 {
			t.Errorf("technical quality axis out of range: %f", result.TechnicalQualityAxis)
		}
	})
}

// FuzzNormalize fuzzes the normalization helpers with arbitrary values and
// ceilings.
func FuzzNormalize(f *testing.F) {
	f.Add(50000.0, 300000.0)
	f.Add(0.0, 1.0)
	f.Add(1e12, 1.0)
	f.Add(-5.0, 1000.0)

	f.Fuzz(func(t *testing.T, value float64, ceiling float64) {
		if ceiling <= 0 {
			t.Skip() // rejected at config validation
		}
		if value < 0 {
			t.Skip() // rejected at record validation
		}
		costScore := normalizeCost(value, ceiling)
		if costScore < 0 || costScore > 10 {
			t.Errorf("cost score out of range: %f", costScore)
		}
		usageScore := normalizeUsage(value, ceiling)
		if usageScore < 0 || usageScore > 10 {
			t.Errorf("usage score out of range: %f", usageScore)
		}
	})
}
