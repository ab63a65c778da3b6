// Package controller provides output adapters for displaying curves and
// scaling results.
package controller

import (
	m "github.com/mouse-blink/scalist/internal/model"
)

// CurveInfo summarizes one curve of a scene for display.
type CurveInfo struct {
	Name     string
	Keys     int
	Selected int
	First    float64
	Last     float64
}

// SceneInfo summarizes one scene file for display.
type SceneInfo struct {
	Path        m.Path
	CurrentTime float64
	Curves      []CurveInfo
}

// ScaleResult is the per-scene outcome of a scale invocation.
type ScaleResult struct {
	Path    m.Path
	Request m.ScaleRequest
	Commits m.CommitSet
	Curves  int
	// Rejected marks a recoverable precondition failure: the selection was
	// too small for the pivot, nothing was written.
	Rejected bool
}

// UI defines the interface for displaying scenes and scaling results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayScenes(infos []SceneInfo) error
	// DisplayCommits shows the moves an operation would write (dry run).
	DisplayCommits(results []ScaleResult) error
	DisplayResults(results []ScaleResult) error
	DisplayWarning(msg string)
}
