package model

import "fmt"

// Axis selects which component of a keyframe a scale operation moves.
type Axis int

// Available Axis values.
const (
	AxisValue Axis = iota
	AxisTime
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisTime {
		return "time"
	}

	return "value"
}

// Grouping selects how the pivot is computed across curves.
type Grouping int

const (
	// GroupUnified computes one pivot from the whole selection.
	GroupUnified Grouping = iota
	// GroupPerCurve recomputes the pivot independently for each curve's
	// selected subset.
	GroupPerCurve
)

// String returns the grouping name.
func (g Grouping) String() string {
	if g == GroupPerCurve {
		return "per-curve"
	}

	return "unified"
}

// PivotStrategy enumerates the ways a pivot can be derived from a selection.
// Every valid strategy is statically enumerable; dispatch on an out-of-range
// value is an integration fault, not a user error.
type PivotStrategy int

// Available PivotStrategy values.
const (
	PivotZeroValue PivotStrategy = iota
	PivotHighestValue
	PivotLowestValue
	PivotMiddleValue
	PivotFirstValue
	PivotLastSelectedValue
	PivotFlipCurveValue
	PivotFlipZeroValue
	PivotFirstTime
	PivotLastTime
	PivotCurrentTime
	PivotLastSelectedTime
)

// pivotStrategyNames maps strategies to their canonical CLI/UI names.
var pivotStrategyNames = map[PivotStrategy]string{
	PivotZeroValue:         "zero-value",
	PivotHighestValue:      "highest-value",
	PivotLowestValue:       "lowest-value",
	PivotMiddleValue:       "middle-value",
	PivotFirstValue:        "first-value",
	PivotLastSelectedValue: "last-selected-value",
	PivotFlipCurveValue:    "flip-curve-value",
	PivotFlipZeroValue:     "flip-zero-value",
	PivotFirstTime:         "first-time",
	PivotLastTime:          "last-time",
	PivotCurrentTime:       "current-time",
	PivotLastSelectedTime:  "last-selected-time",
}

// PivotStrategies lists every strategy in display order.
func PivotStrategies() []PivotStrategy {
	return []PivotStrategy{
		PivotMiddleValue,
		PivotHighestValue,
		PivotLowestValue,
		PivotZeroValue,
		PivotFirstValue,
		PivotLastSelectedValue,
		PivotFlipCurveValue,
		PivotFlipZeroValue,
		PivotFirstTime,
		PivotLastTime,
		PivotCurrentTime,
		PivotLastSelectedTime,
	}
}

// String returns the canonical strategy name.
func (p PivotStrategy) String() string {
	if name, ok := pivotStrategyNames[p]; ok {
		return name
	}

	return fmt.Sprintf("pivot(%d)", int(p))
}

// Axis returns the axis the strategy's pivot lives on.
func (p PivotStrategy) Axis() Axis {
	switch p {
	case PivotFirstTime, PivotLastTime, PivotCurrentTime, PivotLastSelectedTime:
		return AxisTime
	default:
		return AxisValue
	}
}

// ParsePivotStrategy resolves a canonical strategy name.
func ParsePivotStrategy(name string) (PivotStrategy, error) {
	for strategy, n := range pivotStrategyNames {
		if n == name {
			return strategy, nil
		}
	}

	return 0, fmt.Errorf("unknown pivot strategy %q", name)
}

// ScaleRequest fully determines one scaling operation. Constructed once per
// user action; never persisted.
type ScaleRequest struct {
	Strategy PivotStrategy
	Factor   float64
	Grouping Grouping
}

// Axis returns the operation axis, derived from the pivot strategy.
func (r ScaleRequest) Axis() Axis {
	return r.Strategy.Axis()
}

// Move repositions one existing keyframe. Curve and Time identify the key in
// the host store; New is the key's new value or new time depending on the
// commit set's axis.
type Move struct {
	Curve string
	Time  float64
	New   float64
}

// CommitSet is the ordered batch of moves one operation writes back through
// the host store. Order matters: the host applies moves one at a time, and
// per-curve time scaling from a last-time pivot relies on pivot-outward
// ordering to keep curves time-sorted at every intermediate step.
type CommitSet struct {
	Axis  Axis
	Moves []Move
}
