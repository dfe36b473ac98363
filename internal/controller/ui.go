// Package controller provides output adapters for displaying generation progress and corpus stats.
package controller

import (
	m "github.com/mouse-blink/bufsafe/internal/model"
)

// RunInfo describes a generation run before it starts.
type RunInfo struct {
	OutDir   m.Path
	Count    int
	Seed     int64
	Threads  int
	TautOnly bool
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeGenerate StartMode = iota
	ModeStats
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithGenerateMode sets the UI to generation progress mode.
func WithGenerateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGenerate
	}
}

// WithStatsMode sets the UI to corpus stats mode.
func WithStatsMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeStats
	}
}

// UI defines the interface for reporting generation progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayRunInfo(info RunInfo)
	DisplayGeneratedInfo(generated, total int)
	DisplayWrittenInfo(instance m.Instance)
	DisplaySummary(summary m.Summary, err error) error
	DisplayPreview(instance m.Instance) error
	DisplayStats(md m.Metadata, err error) error
}
