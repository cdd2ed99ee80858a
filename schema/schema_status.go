package schema

import "time"

// SnapshotStatus represents the status of the snapshot store.
type SnapshotStatus struct {
	Backend         string           `json:"backend"`
	Connected       bool             `json:"connected"`
	TotalRuns       int              `json:"total_runs"`
	LastRunID       int64            `json:"last_run_id"`
	LastRunTime     time.Time        `json:"last_run_time"`
	OldestRunTime   time.Time        `json:"oldest_run_time"`
	TotalAppsScored int              `json:"total_apps_scored"`
	TableSizes      map[string]int64 `json:"table_sizes"`
}
