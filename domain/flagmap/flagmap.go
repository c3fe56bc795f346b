// Package flagmap holds the mapping from option keys to the external
// tool's command-line flags. The mapping is data, not code: it is loaded
// from YAML so a change in the tool's CLI surface is an edit to a
// definition file rather than a rebuild.
package flagmap

import (
	"fmt"
	"strings"
	"sync"
)

// Mapping describes the command-line surface of one external tool.
type Mapping struct {
	// Tool is the name the mapping is registered under (e.g. "scrcpy").
	Tool string

	// Flags maps an option key to a flag template. Templates may contain
	// a single %v placeholder for the option value; templates without a
	// placeholder are plain toggles.
	Flags map[string]string

	// Orientations maps a display label (e.g. "90°") to the numeric
	// value the tool expects.
	Orientations map[string]string
}

// Flag returns the toggle flag for an option key.
// The second return value is false if the key is not mapped.
func (m *Mapping) Flag(key string) (string, bool) {
	tmpl, ok := m.Flags[key]
	if !ok || tmpl == "" {
		return "", false
	}
	return tmpl, true
}

// Format renders the flag for an option key with its value applied.
// The second return value is false if the key is not mapped.
func (m *Mapping) Format(key string, value any) (string, bool) {
	tmpl, ok := m.Flags[key]
	if !ok || tmpl == "" {
		return "", false
	}
	if !strings.Contains(tmpl, "%v") {
		return tmpl, true
	}
	return fmt.Sprintf(tmpl, value), true
}

// Orientation resolves a display label to the tool's numeric value.
// The second return value is false for unmapped labels (including the
// "Default" sentinel), which suppresses the flag.
func (m *Mapping) Orientation(label string) (string, bool) {
	v, ok := m.Orientations[label]
	return v, ok
}

// Registry manages flag mappings and provides lookup by tool name.
type Registry struct {
	mappings map[string]*Mapping
	mu       sync.RWMutex
}

// NewRegistry creates a new empty flag-map registry.
func NewRegistry() *Registry {
	return &Registry{
		mappings: make(map[string]*Mapping),
	}
}

// Register adds a mapping to the registry.
// If a mapping for the same tool exists, it is replaced; this is how a
// user-provided override shadows the embedded definition.
func (r *Registry) Register(m *Mapping) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mappings[m.Tool] = m
}

// Get retrieves a mapping by tool name.
// Returns nil if not found.
func (r *Registry) Get(tool string) *Mapping {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mappings[tool]
}

// List returns all registered tool names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.mappings))
	for name := range r.mappings {
		names = append(names, name)
	}
	return names
}

// Count returns the number of registered mappings.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.mappings)
}
