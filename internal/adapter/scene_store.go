package adapter

import (
	"fmt"
	"os"
	"sort"

	m "github.com/mouse-blink/scalist/internal/model"
	"gopkg.in/yaml.v3"
)

const sceneFileMode = 0o644

// SceneStore loads and saves scene documents.
type SceneStore interface {
	Load(path m.Path) (*m.Scene, error)
	Save(path m.Path, scene *m.Scene) error
}

type yamlSceneStore struct{}

// NewSceneStore constructs a SceneStore reading and writing YAML scene files.
func NewSceneStore() SceneStore {
	return &yamlSceneStore{}
}

func (s *yamlSceneStore) Load(path m.Path) (*m.Scene, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}

	var scene m.Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}

	if err := validateScene(&scene); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", path, err)
	}

	// Curves are ordered by time on disk too, but don't trust input files.
	for i := range scene.Curves {
		keys := scene.Curves[i].Keys
		sort.SliceStable(keys, func(a, b int) bool { return keys[a].Time < keys[b].Time })
	}

	return &scene, nil
}

func (s *yamlSceneStore) Save(path m.Path, scene *m.Scene) error {
	data, err := yaml.Marshal(scene)
	if err != nil {
		return fmt.Errorf("failed to encode scene %s: %w", path, err)
	}

	if err := os.WriteFile(string(path), data, sceneFileMode); err != nil {
		return fmt.Errorf("failed to write scene %s: %w", path, err)
	}

	return nil
}

func validateScene(scene *m.Scene) error {
	seen := make(map[string]bool)

	for _, curve := range scene.Curves {
		if curve.Name == "" {
			return fmt.Errorf("curve with empty name")
		}

		if seen[curve.Name] {
			return fmt.Errorf("duplicate curve %q", curve.Name)
		}

		seen[curve.Name] = true
	}

	return nil
}
