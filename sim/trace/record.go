// Package trace provides append-only event logging for simulation runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Level classifies a log record for presentation layers.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
)

// Record captures a single simulation event at a given clock tick.
type Record struct {
	Tick    int64
	Message string
	Level   Level
}
