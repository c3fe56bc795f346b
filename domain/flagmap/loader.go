package flagmap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// yamlMapping is the YAML structure for flag-map definitions.
type yamlMapping struct {
	Tool         string            `yaml:"tool"`
	Flags        map[string]string `yaml:"flags"`
	Orientations map[string]string `yaml:"orientations"`
}

// Loader handles loading flag-map definitions from various sources.
type Loader struct {
	registry *Registry
}

// NewLoader creates a new loader that populates the given registry.
func NewLoader(registry *Registry) *Loader {
	return &Loader{registry: registry}
}

// LoadFromFS loads flag-map definitions from an embedded or real
// filesystem. It expects YAML files in a "flagmaps" subdirectory.
func (l *Loader) LoadFromFS(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, "flagmaps")
	if err != nil {
		return fmt.Errorf("failed to read flagmaps directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}

		data, err := fs.ReadFile(fsys, "flagmaps/"+entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read flag map %s: %w", entry.Name(), err)
		}
		if err := l.loadBytes(data, entry.Name()); err != nil {
			return err
		}
	}

	return nil
}

// LoadOverride loads a single user-provided flag-map file, replacing any
// previously registered mapping for the same tool. A missing file is not
// an error; the embedded definition simply stays in effect.
func (l *Loader) LoadOverride(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read flag map override %s: %w", path, err)
	}
	return l.loadBytes(data, path)
}

func (l *Loader) loadBytes(data []byte, source string) error {
	var def yamlMapping
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("failed to parse flag map %s: %w", source, err)
	}
	if def.Tool == "" {
		return fmt.Errorf("flag map %s has no tool name", source)
	}

	l.registry.Register(&Mapping{
		Tool:         def.Tool,
		Flags:        def.Flags,
		Orientations: def.Orientations,
	})
	return nil
}
