// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/Texasdada13/apptriage/schema"
)

// SnapshotStore defines the interface for tracking assessment runs and
// storing historical per-application scores.
type SnapshotStore interface {
	// BeginRun creates a new assessment run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the assessment run with completion data
	EndRun(runID int64, endTime time.Time, totalApps, rejectedRecords int) error

	// RecordAppScore stores the scores for a single application
	RecordAppScore(runID int64, record schema.AppScoreRecord) error

	// GetAllRuns returns every stored assessment run
	GetAllRuns() ([]schema.AssessmentRunRecord, error)

	// GetAllAppScores returns every stored application score row
	GetAllAppScores() ([]schema.AppScoreRecord, error)

	// GetStatus returns status information about the snapshot store
	GetStatus() (schema.SnapshotStatus, error)

	// Close closes the underlying connection
	Close() error
}

// StoreManager defines the interface for accessing the snapshot store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetSnapshotStore() SnapshotStore
}

// RecordSource defines the interface for loading a portfolio inventory.
// This allows the core logic to be tested without touching the filesystem.
type RecordSource interface {
	// Load reads all records from the source, returning validated records
	// plus the rejected rows that failed validation.
	Load() ([]schema.Application, []schema.RejectedRecord, error)
}
