package snapshot

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/Texasdada13/apptriage/schema"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetSnapshotStore implements the StoreManager interface.
func (m *MockStoreManager) GetSnapshotStore() contract.SnapshotStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SnapshotStore)
	return store
}

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ contract.SnapshotStore = &MockSnapshotStore{} // Compile-time check

// BeginRun implements the SnapshotStore interface.
func (m *MockSnapshotStore) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the SnapshotStore interface.
func (m *MockSnapshotStore) EndRun(runID int64, endTime time.Time, totalApps, rejectedRecords int) error {
	args := m.Called(runID, endTime, totalApps, rejectedRecords)
	return args.Error(0)
}

// RecordAppScore implements the SnapshotStore interface.
func (m *MockSnapshotStore) RecordAppScore(runID int64, record schema.AppScoreRecord) error {
	args := m.Called(runID, record)
	return args.Error(0)
}

// GetAllRuns implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetAllRuns() ([]schema.AssessmentRunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.AssessmentRunRecord)
	return runs, args.Error(1)
}

// GetAllAppScores implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetAllAppScores() ([]schema.AppScoreRecord, error) {
	args := m.Called()
	scores, _ := args.Get(0).([]schema.AppScoreRecord)
	return scores, args.Error(1)
}

// GetStatus implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetStatus() (schema.SnapshotStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.SnapshotStatus), args.Error(1)
}

// Close implements the SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
