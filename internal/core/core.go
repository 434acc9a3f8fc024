// Package core tracks which core the front-end reports in its header: the
// configured system core and a transient override set when content is
// loaded from the file browser.
package core

import (
	"path/filepath"
	"strings"

	"github.com/atomicstack/menuctl/internal/menu"
)

// Definition describes a core and the file extensions it can load.
type Definition struct {
	Name       string
	Version    string
	Extensions []string
}

// Handles reports whether the definition accepts path by extension.
func (d Definition) Handles(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return false
	}
	for _, candidate := range d.Extensions {
		if strings.TrimPrefix(strings.ToLower(candidate), ".") == ext {
			return true
		}
	}
	return false
}

// Registry is an ordered set of core definitions.
type Registry struct {
	defs []Definition
}

// NewRegistry copies defs into a registry. Earlier definitions win ties.
func NewRegistry(defs []Definition) *Registry {
	return &Registry{defs: append([]Definition(nil), defs...)}
}

// Definitions returns the registered cores.
func (r *Registry) Definitions() []Definition {
	if r == nil {
		return nil
	}
	return r.defs
}

// Match returns the first core that handles path.
func (r *Registry) Match(path string) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	for _, def := range r.defs {
		if def.Handles(path) {
			return def, true
		}
	}
	return Definition{}, false
}

// State implements menu.CoreSource.
type State struct {
	system   menu.CoreInfo
	override menu.CoreInfo
	loaded   string
	active   bool
	registry *Registry
}

// NewState returns a state reporting system until something is loaded.
func NewState(system menu.CoreInfo, registry *Registry) *State {
	return &State{system: system, registry: registry}
}

// MenuCoreInfo returns the transient override.
func (s *State) MenuCoreInfo() (menu.CoreInfo, bool) {
	if s == nil || !s.active {
		return menu.CoreInfo{}, false
	}
	return s.override, true
}

// SystemCoreInfo returns the configured core.
func (s *State) SystemCoreInfo() menu.CoreInfo {
	if s == nil {
		return menu.CoreInfo{}
	}
	return s.system
}

// Load sets the override to the core matching path. It reports false and
// leaves the state untouched when no core handles the file.
func (s *State) Load(path string) (menu.CoreInfo, bool) {
	if s == nil {
		return menu.CoreInfo{}, false
	}
	def, ok := s.registry.Match(path)
	if !ok {
		return menu.CoreInfo{}, false
	}
	s.override = menu.CoreInfo{Name: def.Name, Version: def.Version}
	s.loaded = path
	s.active = true
	return s.override, true
}

// Loaded returns the path of the file that set the override.
func (s *State) Loaded() string {
	if s == nil {
		return ""
	}
	return s.loaded
}

// Unload clears the override.
func (s *State) Unload() {
	if s == nil {
		return
	}
	s.override = menu.CoreInfo{}
	s.loaded = ""
	s.active = false
}
