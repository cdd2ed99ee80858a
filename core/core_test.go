package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/Texasdada13/apptriage/internal/snapshot"
	"github.com/Texasdada13/apptriage/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testInventoryCSV = `name,business_value,tech_health,cost,usage,security,strategic_fit,redundancy
crm,9,7,50000,850,8,9,0
legacy-wiki,3,2,10000,5,6,2,0
`

// execTestConfig resolves a full runtime config against a temp inventory
// and directs output to a scratch file so tests stay quiet.
func execTestConfig(t *testing.T) *contract.Config {
	t.Helper()
	tmpDir := t.TempDir()
	invPath := filepath.Join(tmpDir, "portfolio.csv")
	require.NoError(t, os.WriteFile(invPath, []byte(testInventoryCSV), 0o644))

	cfg := &contract.Config{}
	input := &contract.ConfigRawInput{
		InventoryPathStr: invPath,
		Limit:            contract.DefaultResultLimit,
		Workers:          2,
		Precision:        1,
		Output:           "json",
		OutputFile:       filepath.Join(tmpDir, "out.json"),
		Color:            "no",
	}
	require.NoError(t, contract.ProcessAndValidate(cfg, input))
	return cfg
}

// TestGetAssessmentResults tests the shared assessment pipeline.
func TestGetAssessmentResults(t *testing.T) {
	cfg := execTestConfig(t)

	output, err := GetAssessmentResults(cfg, nil)
	require.NoError(t, err)
	assert.Len(t, output.Results, 2)
	assert.Empty(t, output.Rejected)
	assert.Equal(t, 2, output.Summary.TotalApplications)
}

// TestGetAssessmentResultsRecordsSnapshot verifies that a configured backend
// receives the run and one score row per application.
func TestGetAssessmentResultsRecordsSnapshot(t *testing.T) {
	cfg := execTestConfig(t)
	cfg.SnapshotBackend = schema.SQLiteBackend

	mockStore := &snapshot.MockSnapshotStore{}
	mockStore.On("BeginRun", mock.Anything, mock.Anything).Return(int64(7), nil)
	mockStore.On("RecordAppScore", int64(7), mock.Anything).Return(nil).Twice()
	mockStore.On("EndRun", int64(7), mock.Anything, 2, 0).Return(nil)

	mockMgr := &snapshot.MockStoreManager{}
	mockMgr.On("GetSnapshotStore").Return(mockStore)

	output, err := GetAssessmentResults(cfg, mockMgr)
	require.NoError(t, err)
	assert.Len(t, output.Results, 2)

	mockMgr.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

// TestGetAssessmentResultsNoneBackendSkipsStore verifies that the store is
// never touched when snapshot tracking is disabled.
func TestGetAssessmentResultsNoneBackendSkipsStore(t *testing.T) {
	cfg := execTestConfig(t)
	cfg.SnapshotBackend = schema.NoneBackend

	mockMgr := &snapshot.MockStoreManager{}

	_, err := GetAssessmentResults(cfg, mockMgr)
	require.NoError(t, err)

	mockMgr.AssertNotCalled(t, "GetSnapshotStore")
}

// TestGetAssessmentResultsMissingInventory tests the load failure path.
func TestGetAssessmentResultsMissingInventory(t *testing.T) {
	cfg := execTestConfig(t)
	cfg.InventoryPath = filepath.Join(t.TempDir(), "nope.csv")

	_, err := GetAssessmentResults(cfg, nil)
	assert.Error(t, err)
}

// TestExecuteAssess tests the main assessment entry point.
func TestExecuteAssess(t *testing.T) {
	ctx := context.Background()
	cfg := execTestConfig(t)

	err := ExecuteAssess(ctx, cfg, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "crm")
}

// TestExecuteQuadrants tests the quadrant view entry point.
func TestExecuteQuadrants(t *testing.T) {
	ctx := context.Background()
	cfg := execTestConfig(t)

	err := ExecuteQuadrants(ctx, cfg, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Invest")
}

// TestExecuteSummary tests the summary view entry point.
func TestExecuteSummary(t *testing.T) {
	ctx := context.Background()
	cfg := execTestConfig(t)

	err := ExecuteSummary(ctx, cfg, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

// TestExecuteCriteria tests the static criteria display.
func TestExecuteCriteria(t *testing.T) {
	ctx := context.Background()
	cfg := execTestConfig(t)

	err := ExecuteCriteria(ctx, cfg, nil)
	assert.NoError(t, err)
}

// TestEngineConfigFromContract verifies the runtime config maps onto the
// engine config field for field.
func TestEngineConfigFromContract(t *testing.T) {
	cfg := execTestConfig(t)

	engineCfg := EngineConfigFromContract(cfg)
	assert.Equal(t, cfg.CompositeWeights, engineCfg.CompositeWeights)
	assert.Equal(t, cfg.BusinessValueThreshold, engineCfg.Thresholds.BusinessValue)
	assert.Equal(t, cfg.PoorSecurity, engineCfg.Thresholds.PoorSecurity)
	assert.Equal(t, cfg.MaxCost, engineCfg.MaxCost)
	assert.Equal(t, cfg.MaxUsage, engineCfg.MaxUsage)
	assert.NoError(t, engineCfg.Validate())
}
