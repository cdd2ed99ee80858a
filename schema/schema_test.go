package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewApplication tests the validating factory.
func TestNewApplication(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		app, err := NewApplication("crm", 9, 7, 50000, 850, 8, 9, 0)
		require.NoError(t, err)
		assert.Equal(t, "crm", app.Name)
		assert.InDelta(t, 9.0, app.BusinessValue, 0.001)
		assert.Equal(t, 0, app.Redundancy)
	})

	t.Run("boundary ratings are valid", func(t *testing.T) {
		_, err := NewApplication("edge", 0, 10, 0, 0, 0, 10, 1)
		assert.NoError(t, err)
	})

	tests := []struct {
		name          string
		appName       string
		businessValue float64
		techHealth    float64
		cost          float64
		usage         float64
		security      float64
		strategicFit  float64
		redundancy    int
		wantErr       string
	}{
		{
			name:    "missing name",
			appName: "", businessValue: 5, techHealth: 5, security: 5, strategicFit: 5,
			wantErr: "name is required",
		},
		{
			name:    "business value above range",
			appName: "a", businessValue: 10.5, techHealth: 5, security: 5, strategicFit: 5,
			wantErr: "business_value",
		},
		{
			name:    "negative tech health",
			appName: "a", businessValue: 5, techHealth: -1, security: 5, strategicFit: 5,
			wantErr: "tech_health",
		},
		{
			name:    "negative cost",
			appName: "a", businessValue: 5, techHealth: 5, cost: -100, security: 5, strategicFit: 5,
			wantErr: "cost",
		},
		{
			name:    "negative usage",
			appName: "a", businessValue: 5, techHealth: 5, usage: -1, security: 5, strategicFit: 5,
			wantErr: "usage",
		},
		{
			name:    "security above range",
			appName: "a", businessValue: 5, techHealth: 5, security: 11, strategicFit: 5,
			wantErr: "security",
		},
		{
			name:    "redundancy not a flag",
			appName: "a", businessValue: 5, techHealth: 5, security: 5, strategicFit: 5, redundancy: 2,
			wantErr: "redundancy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewApplication(tt.appName, tt.businessValue, tt.techHealth,
				tt.cost, tt.usage, tt.security, tt.strategicFit, tt.redundancy)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestApplicationValidate covers the exported re-validation path used by the
// JSON loader.
func TestApplicationValidate(t *testing.T) {
	app := Application{Name: "crm", BusinessValue: 9, TechHealth: 7, Security: 8, StrategicFit: 9}
	assert.NoError(t, app.Validate())

	app.StrategicFit = 12
	assert.Error(t, app.Validate())
}
