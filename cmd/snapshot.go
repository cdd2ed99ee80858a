package cmd

import (
	"fmt"

	"github.com/Texasdada13/apptriage/internal/contract"
	"github.com/Texasdada13/apptriage/internal/snapshot"
	"github.com/Texasdada13/apptriage/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotSetup loads minimal configuration needed for snapshot operations.
// This is used by commands that need store access without full shared setup.
func snapshotSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backendStr := viper.GetString("snapshot-backend")
	connStr := viper.GetString("snapshot-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config
	if err := snapshot.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize snapshot store: %w", err)
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// snapshotSetupWrapper wraps snapshotSetup to provide PreRunE for snapshot commands.
func snapshotSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotSetup()
}

// snapshotMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func snapshotMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backendStr := viper.GetString("snapshot-backend")
	connStr := viper.GetString("snapshot-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetSnapshotDBFilePath()
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr

	return nil
}

// snapshotMigrateSetupWrapper wraps snapshotMigrateSetup to provide PreRunE for migrate command.
func snapshotMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotMigrateSetup()
}

// snapshotCmd focused on snapshot data management.
//
// Note: Snapshot subcommands use minimal initialization (snapshotSetup) instead of
// the full sharedSetup used by assessment commands. This avoids inventory loading
// and complex config processing for simple snapshot operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage historical assessment tracking and exports",
	Long: `Manage historical assessment data used for trend tracking and reporting.

When enabled, apptriage tracks every assessment run, storing:
- Run metadata (timestamp, configuration, duration)
- Per-application scores, quadrants and recommended actions
- Annual cost figures for spend trending

This enables longitudinal analysis, trend detection, and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show snapshot tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  apptriage snapshot status

  # Export for analysis in pandas/DuckDB
  apptriage snapshot export --output-file snapshot-data.parquet`,
}

// snapshotClearCmd clears the snapshot data.
var snapshotClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical assessment tracking data",
	Long: `Delete all stored assessment runs and application score history.

This removes:
- All assessment run metadata
- Historical application scores, quadrants and actions
- Annual cost figures for every recorded run

WARNING: This action cannot be undone. Consider exporting data first.

Use this when:
- Resetting trend tracking
- Database storage is full
- Starting fresh assessment history
- Testing snapshot features

Examples:
  # Export before clearing
  apptriage snapshot export --output-file backup.parquet
  apptriage snapshot clear

  # Clear and start fresh
  apptriage snapshot clear`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := snapshot.ClearSnapshots(cfg.SnapshotBackend, contract.GetSnapshotDBFilePath(), cfg.SnapshotDBConnect); err != nil {
			contract.LogFatal("Failed to clear snapshot data", err)
		}
		fmt.Println("Snapshot data cleared successfully.")
	},
}

// snapshotStatusCmd shows snapshot status.
var snapshotStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot tracking statistics and connection details",
	Long: `Show detailed information about historical assessment tracking.

Displays:
- Backend type and connection status
- Total number of assessment runs stored
- Last and oldest assessment run timestamps
- Total applications scored across all runs
- Database table sizes

Use this to:
- Verify snapshot tracking is enabled and working
- Monitor data accumulation over time
- Check database connection health
- Estimate storage requirements

Examples:
  # Check snapshot tracking status
  apptriage snapshot status`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := snapshot.Manager.GetSnapshotStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		snapshot.PrintSnapshotStatus(status)
	},
}

// snapshotExportCmd exports snapshot data to Parquet files.
var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export historical data to Parquet for BI tools and analytics",
	Long: `Export all stored assessment data to Parquet format for use with analytics tools.

Exports two datasets:
- Assessment runs - metadata about each assessment execution
- Application scores - per-application scores, quadrants and actions

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Schema evolution for future data additions
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Use cases:
- Trend analysis across multiple runs
- Custom dashboards and visualizations
- Spend and retention reporting over time
- Executive reporting and KPIs

Examples:
  # Export all data
  apptriage snapshot export --output-file apptriage-data.parquet

  # Use with DuckDB for analysis
  apptriage snapshot export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.assessment_runs.parquet') LIMIT 10"`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := snapshot.ExecuteSnapshotExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export snapshot data", err)
		}
	},
}

// snapshotMigrateCmd runs database migrations for the snapshot store.
var snapshotMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the snapshot tracking store.

Migrations allow:
- Upgrading to new schema versions when apptriage is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed
- Testing new features on specific schema versions

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  apptriage snapshot migrate

  # Migrate to specific version
  apptriage snapshot migrate --target-version 2

  # Rollback to previous version
  apptriage snapshot migrate --target-version 0`,
	PreRunE: snapshotMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := snapshot.MigrateSnapshots(cfg.SnapshotBackend, cfg.SnapshotDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
