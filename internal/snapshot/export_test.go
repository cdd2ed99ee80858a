package snapshot

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Texasdada13/apptriage/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTestStore points the global manager at a fresh SQLite store.
func initTestStore(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "export.db")
	initOnce = sync.Once{}
	closeOnce = sync.Once{}
	require.NoError(t, InitStores(schema.SQLiteBackend, dbPath))
	t.Cleanup(func() {
		CloseStores()
		initOnce = sync.Once{}
		closeOnce = sync.Once{}
	})
}

func TestExecuteSnapshotExport(t *testing.T) {
	initTestStore(t)

	store := Manager.GetSnapshotStore()
	start := time.Now().UTC()
	runID, err := store.BeginRun(start, map[string]any{"workers": 2})
	require.NoError(t, err)
	require.NoError(t, store.RecordAppScore(runID, schema.AppScoreRecord{
		RunID:                runID,
		AppName:              "crm",
		AssessmentTime:       start,
		CompositeScore:       83.75,
		RetentionScore:       81.9,
		BusinessValueAxis:    8.9,
		TechnicalQualityAxis: 7.83,
		AnnualCost:           50000,
		Quadrant:             "Invest",
		Action:               "Invest",
		Rationale:            "strong on both axes",
	}))
	require.NoError(t, store.EndRun(runID, start.Add(time.Second), 1, 0))

	outputPrefix := filepath.Join(t.TempDir(), "export")
	require.NoError(t, ExecuteSnapshotExport(outputPrefix))

	for _, suffix := range []string{".assessment_runs.parquet", ".app_scores.parquet"} {
		info, err := os.Stat(outputPrefix + suffix)
		require.NoError(t, err, "export file %s should exist", suffix)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestExecuteSnapshotExportRequiresOutputFile(t *testing.T) {
	err := ExecuteSnapshotExport("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file is required")
}

func TestExecuteSnapshotExportNoData(t *testing.T) {
	initTestStore(t)

	err := ExecuteSnapshotExport(filepath.Join(t.TempDir(), "export"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no snapshot data found")
}
