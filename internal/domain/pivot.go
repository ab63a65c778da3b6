package domain

import (
	"fmt"

	m "github.com/mouse-blink/scalist/internal/model"
)

// PivotResult is the outcome of resolving a pivot strategy: the pivot scalar
// and the effective scale factor. Flip strategies force the factor to -1
// here, as an explicit return value rather than hidden state.
type PivotResult struct {
	Pivot  float64
	Factor float64
}

// pivotScope is the slice of the selection a single pivot is computed from:
// the whole selection in unified mode, one curve's subset in per-curve mode.
// Host state travels with it so resolution stays pure.
type pivotScope struct {
	samples      []m.Sample
	currentTime  float64
	lastSelected *m.SelectedSample
}

// resolvePivot computes the pivot for the given strategy over the scope.
// An out-of-range strategy is an integration fault and fails loudly.
func resolvePivot(strategy m.PivotStrategy, factor float64, scope pivotScope) (PivotResult, error) {
	if len(scope.samples) == 0 {
		return PivotResult{}, fmt.Errorf("empty pivot scope for strategy %s", strategy)
	}

	switch strategy {
	case m.PivotZeroValue:
		return PivotResult{Pivot: 0, Factor: factor}, nil

	case m.PivotHighestValue:
		return PivotResult{Pivot: maxValue(scope.samples), Factor: factor}, nil

	case m.PivotLowestValue:
		return PivotResult{Pivot: minValue(scope.samples), Factor: factor}, nil

	case m.PivotMiddleValue:
		return PivotResult{Pivot: middleValue(scope.samples), Factor: factor}, nil

	case m.PivotFirstValue:
		return PivotResult{Pivot: earliestSample(scope.samples).Value, Factor: factor}, nil

	case m.PivotLastSelectedValue:
		last, err := scope.requireLastSelected(strategy)
		if err != nil {
			return PivotResult{}, err
		}

		return PivotResult{Pivot: last.Sample.Value, Factor: factor}, nil

	case m.PivotFlipCurveValue:
		return PivotResult{Pivot: middleValue(scope.samples), Factor: -1}, nil

	case m.PivotFlipZeroValue:
		return PivotResult{Pivot: 0, Factor: -1}, nil

	case m.PivotFirstTime:
		return PivotResult{Pivot: earliestSample(scope.samples).Time, Factor: factor}, nil

	case m.PivotLastTime:
		return PivotResult{Pivot: latestSample(scope.samples).Time, Factor: factor}, nil

	case m.PivotCurrentTime:
		return PivotResult{Pivot: scope.currentTime, Factor: factor}, nil

	case m.PivotLastSelectedTime:
		last, err := scope.requireLastSelected(strategy)
		if err != nil {
			return PivotResult{}, err
		}

		return PivotResult{Pivot: last.Sample.Time, Factor: factor}, nil
	}

	return PivotResult{}, fmt.Errorf("unknown pivot strategy %d", int(strategy))
}

func (s pivotScope) requireLastSelected(strategy m.PivotStrategy) (*m.SelectedSample, error) {
	if s.lastSelected == nil {
		return nil, fmt.Errorf("strategy %s requires a host-tracked last selected key", strategy)
	}

	return s.lastSelected, nil
}

// earliestSample returns the sample with the smallest time. Within one curve
// samples are already ascending, but a unified scope spans curves.
func earliestSample(samples []m.Sample) m.Sample {
	earliest := samples[0]
	for _, sample := range samples[1:] {
		if sample.Time < earliest.Time {
			earliest = sample
		}
	}

	return earliest
}

func latestSample(samples []m.Sample) m.Sample {
	latest := samples[0]
	for _, sample := range samples[1:] {
		if sample.Time > latest.Time {
			latest = sample
		}
	}

	return latest
}

func maxValue(samples []m.Sample) float64 {
	max := samples[0].Value
	for _, sample := range samples[1:] {
		if sample.Value > max {
			max = sample.Value
		}
	}

	return max
}

func minValue(samples []m.Sample) float64 {
	min := samples[0].Value
	for _, sample := range samples[1:] {
		if sample.Value < min {
			min = sample.Value
		}
	}

	return min
}

func middleValue(samples []m.Sample) float64 {
	return (maxValue(samples) + minValue(samples)) / 2
}
