package domain

import (
	"fmt"

	m "github.com/mouse-blink/scalist/internal/model"
)

// Engine computes the commit set for one scaling operation. It is pure: it
// reads only the selection snapshot it is given and never talks to the host.
type Engine interface {
	ApplyScale(sel m.Selection, req m.ScaleRequest) (m.CommitSet, error)
}

type engine struct{}

// NewEngine creates a new Engine instance.
func NewEngine() Engine {
	return &engine{}
}

// ApplyScale resolves the pivot(s) for the request and returns the ordered
// batch of moves the host should apply. Scaling never creates or deletes
// keys; a factor of 1.0 yields moves that put every key back where it is.
func (e *engine) ApplyScale(sel m.Selection, req m.ScaleRequest) (m.CommitSet, error) {
	switch {
	case req.Axis() == m.AxisValue && req.Grouping == m.GroupUnified:
		return e.scaleValueUnified(sel, req)
	case req.Axis() == m.AxisValue && req.Grouping == m.GroupPerCurve:
		return e.scaleValuePerCurve(sel, req)
	case req.Axis() == m.AxisTime && req.Grouping == m.GroupUnified:
		return e.scaleTimeUnified(sel, req)
	case req.Axis() == m.AxisTime && req.Grouping == m.GroupPerCurve:
		return e.scaleTimePerCurve(sel, req)
	}

	return m.CommitSet{}, fmt.Errorf("unknown operating mode (%s, %s)", req.Axis(), req.Grouping)
}

// scaleValueUnified scales every selected key's value around one pivot
// computed from the whole selection.
func (e *engine) scaleValueUnified(sel m.Selection, req m.ScaleRequest) (m.CommitSet, error) {
	res, err := resolvePivot(req.Strategy, req.Factor, unifiedScope(sel))
	if err != nil {
		return m.CommitSet{}, err
	}

	commits := m.CommitSet{Axis: m.AxisValue}

	for _, cs := range sel.Curves {
		for _, sample := range cs.Samples {
			commits.Moves = append(commits.Moves, m.Move{
				Curve: cs.Curve,
				Time:  sample.Time,
				New:   scaleAround(res.Pivot, sample.Value, res.Factor),
			})
		}
	}

	return commits, nil
}

// scaleValuePerCurve recomputes the pivot from each curve's selected subset,
// so one curve's reference point never leaks into another's transform.
func (e *engine) scaleValuePerCurve(sel m.Selection, req m.ScaleRequest) (m.CommitSet, error) {
	commits := m.CommitSet{Axis: m.AxisValue}

	for _, cs := range sel.Curves {
		res, err := resolvePivot(req.Strategy, req.Factor, curveScope(sel, cs))
		if err != nil {
			return m.CommitSet{}, err
		}

		for _, sample := range cs.Samples {
			commits.Moves = append(commits.Moves, m.Move{
				Curve: cs.Curve,
				Time:  sample.Time,
				New:   scaleAround(res.Pivot, sample.Value, res.Factor),
			})
		}
	}

	return commits, nil
}

// scaleTimeUnified scales every selected key's time around one pivot computed
// from the whole selection's times. The host snaps the results to whole
// frames afterwards.
func (e *engine) scaleTimeUnified(sel m.Selection, req m.ScaleRequest) (m.CommitSet, error) {
	res, err := resolvePivot(req.Strategy, req.Factor, unifiedScope(sel))
	if err != nil {
		return m.CommitSet{}, err
	}

	commits := m.CommitSet{Axis: m.AxisTime}

	for _, cs := range sel.Curves {
		for _, sample := range cs.Samples {
			commits.Moves = append(commits.Moves, m.Move{
				Curve: cs.Curve,
				Time:  sample.Time,
				New:   scaleAround(res.Pivot, sample.Time, res.Factor),
			})
		}
	}

	return commits, nil
}

// scaleTimePerCurve scales each curve's selected keys in time around a
// curve-local pivot.
//
// When the pivot is the last selected time, keys are emitted nearest-first
// from the pivot, moving backward in time. Applying them front-to-back with a
// factor above 1 can push an early key's new time past a later key that has
// not moved yet, corrupting the curve's time order mid-batch; walking outward
// from the pivot can never cross an unscaled key.
func (e *engine) scaleTimePerCurve(sel m.Selection, req m.ScaleRequest) (m.CommitSet, error) {
	commits := m.CommitSet{Axis: m.AxisTime}

	for _, cs := range sel.Curves {
		res, err := resolvePivot(req.Strategy, req.Factor, curveScope(sel, cs))
		if err != nil {
			return m.CommitSet{}, err
		}

		if req.Strategy == m.PivotLastTime {
			for i := len(cs.Samples) - 1; i >= 0; i-- {
				commits.Moves = append(commits.Moves, m.Move{
					Curve: cs.Curve,
					Time:  cs.Samples[i].Time,
					New:   scaleAround(res.Pivot, cs.Samples[i].Time, res.Factor),
				})
			}

			continue
		}

		for _, sample := range cs.Samples {
			commits.Moves = append(commits.Moves, m.Move{
				Curve: cs.Curve,
				Time:  sample.Time,
				New:   scaleAround(res.Pivot, sample.Time, res.Factor),
			})
		}
	}

	return commits, nil
}

// scaleAround repositions v around the pivot by the given factor.
func scaleAround(pivot, v, factor float64) float64 {
	return pivot + (v-pivot)*factor
}

func unifiedScope(sel m.Selection) pivotScope {
	return pivotScope{
		samples:      sel.Samples(),
		currentTime:  sel.CurrentTime,
		lastSelected: sel.LastSelected,
	}
}

func curveScope(sel m.Selection, cs m.CurveSelection) pivotScope {
	return pivotScope{
		samples:      cs.Samples,
		currentTime:  sel.CurrentTime,
		lastSelected: sel.LastSelected,
	}
}
