package adapter

import (
	"fmt"
	"math"
	"sort"

	m "github.com/mouse-blink/scalist/internal/model"
)

// timeEpsilon is the tolerance for matching a keyframe by its frame position.
const timeEpsilon = 1e-9

// SceneHost implements Host over an in-memory scene document.
type SceneHost struct {
	scene *m.Scene
}

// NewSceneHost creates a Host backed by the given scene document. The scene
// is mutated in place by write calls.
func NewSceneHost(scene *m.Scene) *SceneHost {
	return &SceneHost{scene: scene}
}

// ReadSelection snapshots the selected keys of every curve, grouped per curve
// and ascending by time, together with the playback cursor and the last
// selected key.
func (h *SceneHost) ReadSelection() (m.Selection, error) {
	sel := m.Selection{CurrentTime: h.scene.CurrentTime}

	for _, curve := range h.scene.Curves {
		var samples []m.Sample

		for _, key := range curve.Keys {
			if key.Selected {
				samples = append(samples, m.Sample{Time: key.Time, Value: key.Value})
			}
		}

		if len(samples) == 0 {
			continue
		}

		sort.Slice(samples, func(i, j int) bool { return samples[i].Time < samples[j].Time })

		sel.Curves = append(sel.Curves, m.CurveSelection{Curve: curve.Name, Samples: samples})
	}

	sel.LastSelected = h.resolveLastSelected()

	return sel, nil
}

// resolveLastSelected looks the scene's lastSelected reference up in the
// curve store. A stale reference yields nil rather than an error; strategies
// that need it fail when they reach for it.
func (h *SceneHost) resolveLastSelected() *m.SelectedSample {
	ref := h.scene.LastSelected
	if ref == nil {
		return nil
	}

	curve := h.findCurve(ref.Curve)
	if curve == nil {
		return nil
	}

	for _, key := range curve.Keys {
		if sameTime(key.Time, ref.Time) {
			return &m.SelectedSample{
				Curve:  ref.Curve,
				Sample: m.Sample{Time: key.Time, Value: key.Value},
			}
		}
	}

	return nil
}

// WriteScaledValues applies a value-axis commit set in one batch.
func (h *SceneHost) WriteScaledValues(commits m.CommitSet) error {
	if commits.Axis != m.AxisValue {
		return fmt.Errorf("value write got %s-axis commits", commits.Axis)
	}

	for _, move := range commits.Moves {
		key, err := h.findKey(move.Curve, move.Time)
		if err != nil {
			return err
		}

		key.Value = move.New
	}

	return nil
}

// WriteScaledTimes applies a time-axis commit set move by move, preserving
// the commit order. Keys are resolved against their pre-write positions up
// front, so a move landing on another key's original frame cannot hijack a
// later lookup.
func (h *SceneHost) WriteScaledTimes(commits m.CommitSet) error {
	if commits.Axis != m.AxisTime {
		return fmt.Errorf("time write got %s-axis commits", commits.Axis)
	}

	keys := make([]*m.Keyframe, len(commits.Moves))

	for i, move := range commits.Moves {
		key, err := h.findKey(move.Curve, move.Time)
		if err != nil {
			return err
		}

		keys[i] = key
	}

	for i, move := range commits.Moves {
		h.retargetLastSelected(move.Curve, keys[i].Time, move.New)
		keys[i].Time = move.New
	}

	for _, name := range affectedCurves(commits) {
		if curve := h.findCurve(name); curve != nil {
			sortKeys(curve)
		}
	}

	return nil
}

// SnapToIntegerFrames rounds every selected key on the affected curves to the
// nearest whole frame and coalesces keys that land on the same frame, keeping
// the last one. Snapping an already snapped curve is a no-op.
func (h *SceneHost) SnapToIntegerFrames(commits m.CommitSet) error {
	for _, name := range affectedCurves(commits) {
		curve := h.findCurve(name)
		if curve == nil {
			return fmt.Errorf("unknown curve %q", name)
		}

		for i := range curve.Keys {
			if !curve.Keys[i].Selected {
				continue
			}

			snapped := math.Round(curve.Keys[i].Time)
			h.retargetLastSelected(name, curve.Keys[i].Time, snapped)
			curve.Keys[i].Time = snapped
		}

		sortKeys(curve)
		coalesceSameFrame(curve)
	}

	return nil
}

// Scene returns the underlying document, for saving after an operation.
func (h *SceneHost) Scene() *m.Scene {
	return h.scene
}

func (h *SceneHost) findCurve(name string) *m.Curve {
	for i := range h.scene.Curves {
		if h.scene.Curves[i].Name == name {
			return &h.scene.Curves[i]
		}
	}

	return nil
}

func (h *SceneHost) findKey(curveName string, time float64) (*m.Keyframe, error) {
	curve := h.findCurve(curveName)
	if curve == nil {
		return nil, fmt.Errorf("unknown curve %q", curveName)
	}

	for i := range curve.Keys {
		if sameTime(curve.Keys[i].Time, time) {
			return &curve.Keys[i], nil
		}
	}

	return nil, fmt.Errorf("no key at frame %v on curve %q", time, curveName)
}

// retargetLastSelected keeps the lastSelected reference pointing at the same
// key when that key moves to a new frame.
func (h *SceneHost) retargetLastSelected(curveName string, oldTime, newTime float64) {
	ref := h.scene.LastSelected
	if ref == nil || ref.Curve != curveName || !sameTime(ref.Time, oldTime) {
		return
	}

	ref.Time = newTime
}

// affectedCurves returns the distinct curve names in the commit set, in first
// occurrence order.
func affectedCurves(commits m.CommitSet) []string {
	seen := make(map[string]bool)

	var names []string

	for _, move := range commits.Moves {
		if !seen[move.Curve] {
			seen[move.Curve] = true

			names = append(names, move.Curve)
		}
	}

	return names
}

func sortKeys(curve *m.Curve) {
	sort.SliceStable(curve.Keys, func(i, j int) bool {
		return curve.Keys[i].Time < curve.Keys[j].Time
	})
}

// coalesceSameFrame drops keys sharing a frame with a later key. The keys are
// already sorted, so equal frames are adjacent and the stable sort keeps the
// later-written key last.
func coalesceSameFrame(curve *m.Curve) {
	if len(curve.Keys) < 2 {
		return
	}

	kept := curve.Keys[:0]

	for i := range curve.Keys {
		if i+1 < len(curve.Keys) && sameTime(curve.Keys[i].Time, curve.Keys[i+1].Time) {
			continue
		}

		kept = append(kept, curve.Keys[i])
	}

	curve.Keys = kept
}

func sameTime(a, b float64) bool {
	return math.Abs(a-b) < timeEpsilon
}
