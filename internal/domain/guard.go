// Package domain contains the core keyframe scaling logic.
package domain

import (
	"errors"

	m "github.com/mouse-blink/scalist/internal/model"
)

// ErrInsufficientSelection is the one recoverable precondition failure:
// the user has not selected enough keyframes for the requested pivot.
// It is surfaced as a warning, never as a fatal error.
var ErrInsufficientSelection = errors.New("select at least 2 keyframes")

// minSelectionSize is the default number of selected samples an operation
// needs before a pivot is well defined.
const minSelectionSize = 2

// ValidateSelection checks that the selection is sufficient for the requested
// pivot strategy. It is a pure precondition check with no side effects.
//
// A few pivots are well defined on a single keyframe (they don't derive the
// pivot from a second sample), so those accept a selection of one.
func ValidateSelection(sel m.Selection, strategy m.PivotStrategy) error {
	size := sel.Size()

	if size >= minSelectionSize {
		return nil
	}

	if size >= 1 && singleSampleOK(strategy) {
		return nil
	}

	return ErrInsufficientSelection
}

func singleSampleOK(strategy m.PivotStrategy) bool {
	switch strategy {
	case m.PivotZeroValue, m.PivotCurrentTime, m.PivotFlipZeroValue:
		return true
	default:
		return false
	}
}
