// Package registry provides a global registry of named donut presets.
// Presets register themselves in init() functions, allowing the CLI to
// discover and build them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-donut/internal/config"
)

// Factory returns a fresh configuration for a preset.
type Factory func() config.DonutConfig

// PresetInfo contains metadata about a registered preset.
type PresetInfo struct {
	Name  string
	Title string
}

type preset struct {
	title   string
	factory Factory
}

var (
	presets = make(map[string]preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Typically called from an init() function.
// Panics if a preset with the same name is already registered.
func Register(name, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[name]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", name))
	}
	presets[name] = preset{title: title, factory: f}
}

// List returns information about all registered presets, sorted by name.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(presets))
	for name, p := range presets {
		result = append(result, PresetInfo{
			Name:  name,
			Title: p.title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create returns a new configuration for the named preset.
// Returns an error if the preset is not registered.
func Create(name string) (config.DonutConfig, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[name]
	if !ok {
		return config.DonutConfig{}, fmt.Errorf("registry: unknown preset %q", name)
	}

	return p.factory(), nil
}

// Exists checks if a preset with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[name]
	return ok
}
