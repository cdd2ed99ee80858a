package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/Texasdada13/apptriage/schema"
)

// Color variables for console output.
var (
	InvestColor    = color.New(color.FgGreen, color.Bold)  // healthy, keep funding
	TolerateColor  = color.New(color.FgCyan)               // acceptable, low priority
	MigrateColor   = color.New(color.FgYellow, color.Bold) // needs replatforming attention
	EliminateColor = color.New(color.FgRed, color.Bold)    // candidate for removal
	ImmediateColor = color.New(color.FgRed, color.Bold)    // security gap, act now
	ExcellentColor = color.New(color.FgGreen, color.Bold)
	GoodColor      = color.New(color.FgCyan)
	FairColor      = color.New(color.FgYellow)
	PoorColor      = color.New(color.FgRed)
)

// GetColorLabel returns a colored health label for console output (table).
// It uses schema.GetPlainLabel to determine the string, then applies the
// matching color.
func GetColorLabel(score float64) string {
	text := schema.GetPlainLabel(score)

	switch text {
	case schema.ExcellentLabel:
		return ExcellentColor.Sprint(text)
	case schema.GoodLabel:
		return GoodColor.Sprint(text)
	case schema.FairLabel:
		return FairColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// GetColorQuadrant returns a colored quadrant name for console output.
func GetColorQuadrant(q schema.QuadrantCategory) string {
	switch q {
	case schema.InvestQuadrant:
		return InvestColor.Sprint(string(q))
	case schema.TolerateQuadrant:
		return TolerateColor.Sprint(string(q))
	case schema.MigrateQuadrant:
		return MigrateColor.Sprint(string(q))
	default: // Eliminate
		return EliminateColor.Sprint(string(q))
	}
}

// GetColorAction returns a colored action label for console output.
func GetColorAction(a schema.ActionLabel) string {
	switch a {
	case schema.ImmediateAction:
		return ImmediateColor.Sprint(string(a))
	case schema.RetireAction, schema.ConsolidateAction:
		return EliminateColor.Sprint(string(a))
	case schema.MigrateAction, schema.TolerateAction:
		return MigrateColor.Sprint(string(a))
	case schema.InvestAction:
		return InvestColor.Sprint(string(a))
	default: // Retain, Maintain
		return TolerateColor.Sprint(string(a))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".apptriage_snapshots.db"
	}
	return filepath.Join(homeDir, ".apptriage_snapshots.db")
}

// TruncateName truncates an application name to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is space for both the "..." and at least one
// character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
