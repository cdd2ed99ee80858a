// Package main provides a performance benchmarking tool for the apptriage CLI.
// It measures execution times across different inventory sizes and command types,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - apptriage binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where synthetic inventory files are generated
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-snapshot average, cold run and average of warm runs).
type BenchmarkResult struct {
	Inventory      string
	Command        string
	NoSnapshotTime string
	ColdTime       string
	WarmTime       string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir        string
	Timeout        time.Duration
	Workers        int
	NoSnapshotRuns int
	SnapshotRuns   int
	InventorySizes []int
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:        workDir,
		Timeout:        5 * time.Minute,
		Workers:        8,
		NoSnapshotRuns: 3,
		SnapshotRuns:   4,
		InventorySizes: []int{1000, 10000, 100000, 500000},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	inventories, err := generateInventories(config)
	if err != nil {
		fmt.Printf("Failed to generate inventories: %v\n", err)
		os.Exit(1)
	}

	// Clear stale snapshot data before timing anything
	fmt.Printf("Clearing snapshots...\n")
	clearCmd := exec.Command("apptriage", "snapshot", "clear", "--snapshot-backend", "sqlite")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear snapshots: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Snapshots cleared successfully\n")
	}

	results := runBenchmarks(config, inventories)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the apptriage binary and work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("apptriage"); err != nil {
		return fmt.Errorf("apptriage binary not found in PATH")
	}

	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work directory %s: %w", config.WorkDir, err)
	}

	return nil
}

// generateInventories writes one synthetic CSV inventory per configured size
// and returns a map from a human-readable label to the file path.
func generateInventories(config BenchmarkConfig) (map[string]string, error) {
	rng := rand.New(rand.NewSource(42))
	inventories := make(map[string]string, len(config.InventorySizes))

	for _, size := range config.InventorySizes {
		label := fmt.Sprintf("%dk", size/1000)
		if size < 1000 {
			label = strconv.Itoa(size)
		}
		path := filepath.Join(config.WorkDir, fmt.Sprintf("inventory_%s.csv", label))

		fmt.Printf("Generating %d-record inventory at %s\n", size, path)
		file, err := os.Create(path)
		if err != nil {
			return nil, err
		}

		writer := csv.NewWriter(file)
		header := []string{"name", "business_value", "tech_health", "cost", "usage", "security", "strategic_fit", "redundancy"}
		if err := writer.Write(header); err != nil {
			_ = file.Close()
			return nil, err
		}
		for i := 0; i < size; i++ {
			redundancy := "0"
			if rng.Intn(10) == 0 {
				redundancy = "1"
			}
			row := []string{
				fmt.Sprintf("app-%06d", i),
				fmt.Sprintf("%.1f", rng.Float64()*10),
				fmt.Sprintf("%.1f", rng.Float64()*10),
				fmt.Sprintf("%.0f", rng.Float64()*300000),
				fmt.Sprintf("%.0f", rng.Float64()*1000),
				fmt.Sprintf("%.1f", rng.Float64()*10),
				fmt.Sprintf("%.1f", rng.Float64()*10),
				redundancy,
			}
			if err := writer.Write(row); err != nil {
				_ = file.Close()
				return nil, err
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			_ = file.Close()
			return nil, err
		}
		if err := file.Close(); err != nil {
			return nil, err
		}

		inventories[label] = path
	}

	return inventories, nil
}

// runBenchmarks executes all benchmark tests across generated inventories
func runBenchmarks(config BenchmarkConfig, inventories map[string]string) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d inventories, %v timeout, %d workers, no-snapshot: %d runs, snapshot: %d runs\n",
		len(inventories), config.Timeout, config.Workers, config.NoSnapshotRuns, config.SnapshotRuns)

	for _, size := range config.InventorySizes {
		label := fmt.Sprintf("%dk", size/1000)
		if size < 1000 {
			label = strconv.Itoa(size)
		}
		path := inventories[label]
		fmt.Printf("Benchmarking %s inventory\n", label)

		for _, command := range []string{"assess", "quadrants", "summary"} {
			result := runBenchmarkSuite(config, label, path, command)
			results = append(results, result)
		}
	}

	return results
}

// runBenchmarkSuite runs both no-snapshot and snapshot benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, label, inventoryPath, command string) BenchmarkResult {
	fmt.Printf("Running %s on %s inventory\n", command, label)

	runPhase := func(backend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, inventoryPath, command, backend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-snapshot runs
	_, noSnapshotAvg := runPhase("none", config.NoSnapshotRuns, "No-snapshot")

	// Phase 2: Snapshot runs
	coldTime, warmAvg := runPhase("sqlite", config.SnapshotRuns, "Snapshot")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-snapshot average: %s, Cold time: %s, Warm average: %s\n", noSnapshotAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Inventory:      label,
		Command:        command,
		NoSnapshotTime: noSnapshotAvg,
		ColdTime:       coldTimeStr,
		WarmTime:       warmAvg,
	}
}

// runBenchmark executes an apptriage command multiple times with the specified snapshot backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, inventoryPath, command, backend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{
		command, inventoryPath,
		"--snapshot-backend", backend,
		"--workers", strconv.Itoa(config.Workers),
		"--color", "no",
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("apptriage", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Assessment completed in") &&
		strings.Contains(outputStr, "workers")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/apptriage_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"inventory", "cmd", "no_snapshot_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{result.Inventory, result.Command, result.NoSnapshotTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "assess", "Assess:")
	printCommandSummary(results, "quadrants", "Quadrants:")
	printCommandSummary(results, "summary", "Summary:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-6s: No-snapshot: %s, Cold: %s, Warm: %s\n", result.Inventory, result.NoSnapshotTime, result.ColdTime, result.WarmTime)
		}
	}
}
