package model

// Sample is one selected (time, value) pair inside a selection snapshot.
// Immutable once captured; the host mutates its own keys, never the snapshot.
type Sample struct {
	Time  float64
	Value float64
}

// SelectedSample is the host-tracked "most recent click": a sample together
// with the curve it belongs to.
type SelectedSample struct {
	Curve  string
	Sample Sample
}

// CurveSelection holds the selected samples of a single curve, ascending by
// time.
type CurveSelection struct {
	Curve   string
	Samples []Sample
}

// Selection is the snapshot a scaling operation works on. It is captured once
// at the start of the operation and carries the host state pivot strategies
// need, so pivot resolution never calls back into the host.
type Selection struct {
	Curves       []CurveSelection
	CurrentTime  float64
	LastSelected *SelectedSample
}

// Size returns the total number of selected samples across all curves.
func (s Selection) Size() int {
	size := 0
	for _, cs := range s.Curves {
		size += len(cs.Samples)
	}

	return size
}

// Samples returns every selected sample across all curves, curve by curve in
// snapshot order.
func (s Selection) Samples() []Sample {
	samples := make([]Sample, 0, s.Size())
	for _, cs := range s.Curves {
		samples = append(samples, cs.Samples...)
	}

	return samples
}
