package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a room spec from a YAML file.
func Load(path string) (*RoomSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var spec RoomSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return &spec, nil
}

// LoadProject loads a room spec from a project directory.
// It looks for room.yaml in the given directory.
func LoadProject(projectDir string) (*RoomSpec, error) {
	specPath := filepath.Join(projectDir, "room.yaml")
	return Load(specPath)
}
