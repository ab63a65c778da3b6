// Package model defines the data structures for keyframe scaling.
package model

// Path represents a file system path.
type Path string

// Keyframe is a single key on a curve as stored in a scene document.
type Keyframe struct {
	Time     float64 `yaml:"time"`
	Value    float64 `yaml:"value"`
	Selected bool    `yaml:"selected,omitempty"`
}

// Curve is a named animation curve: an ordered sequence of keyframes,
// ascending by time.
type Curve struct {
	Name string     `yaml:"name"`
	Keys []Keyframe `yaml:"keys"`
}

// SampleRef identifies one keyframe on one curve by its current time.
type SampleRef struct {
	Curve string  `yaml:"curve"`
	Time  float64 `yaml:"time"`
}

// Scene is the host document: every curve the host owns plus the host state
// pivot strategies depend on (playback cursor, most recent click).
type Scene struct {
	CurrentTime  float64    `yaml:"currentTime"`
	Curves       []Curve    `yaml:"curves"`
	LastSelected *SampleRef `yaml:"lastSelected,omitempty"`
}

// SelectedCount returns the number of selected keys across all curves.
func (s *Scene) SelectedCount() int {
	count := 0

	for _, curve := range s.Curves {
		for _, key := range curve.Keys {
			if key.Selected {
				count++
			}
		}
	}

	return count
}
