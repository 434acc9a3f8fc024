package settings

import (
	"errors"
	"fmt"
	"sort"

	"github.com/atomicstack/menuctl/internal/logging/events"
)

// Flags select which settings New includes.
type Flags uint

const (
	FlagAdvanced Flags = 1 << iota

	FlagBasic Flags = 0
	FlagAll         = FlagAdvanced
)

// Setting names.
const (
	ShowCoreName     = "menu_show_core_name"
	ShowFooter       = "menu_show_footer"
	Wraparound       = "menu_navigation_wraparound"
	ShowHidden       = "browser_show_hidden"
	DirectoriesFirst = "browser_directories_first"
	SizeUnits        = "browser_size_units"
)

// Group titles.
const (
	GroupMenu    = "Menu"
	GroupBrowser = "File Browser"
)

// Size unit options for SizeUnits.
const (
	UnitsSI    = "si"
	UnitsIEC   = "iec"
	UnitsBytes = "bytes"
)

// Group is a titled collection of settings.
type Group struct {
	Name     string
	Settings []*Setting
}

// Tree holds every setting, grouped for display.
type Tree struct {
	groups []*Group
	index  map[string]*Setting
}

type definition struct {
	group    string
	name     string
	label    string
	kind     Kind
	advanced bool
	options  []string
	def      string
}

var definitions = []definition{
	{group: GroupMenu, name: ShowCoreName, label: "Show Core Name", kind: KindBool, def: "true"},
	{group: GroupMenu, name: ShowFooter, label: "Show Key Hints", kind: KindBool, def: "false"},
	{group: GroupMenu, name: Wraparound, label: "Navigation Wraparound", kind: KindBool, def: "true"},
	{group: GroupBrowser, name: ShowHidden, label: "Show Hidden Files", kind: KindBool, def: "false"},
	{group: GroupBrowser, name: DirectoriesFirst, label: "Directories First", kind: KindBool, def: "true"},
	{group: GroupBrowser, name: SizeUnits, label: "Size Units", kind: KindEnum, advanced: true,
		options: []string{UnitsSI, UnitsIEC, UnitsBytes}, def: UnitsSI},
}

// New builds a tree with default values. Advanced settings are included
// only when flags carries FlagAdvanced.
func New(flags Flags) *Tree {
	t := &Tree{index: make(map[string]*Setting, len(definitions))}
	groups := make(map[string]*Group)
	for _, def := range definitions {
		if def.advanced && flags&FlagAdvanced == 0 {
			continue
		}
		s := &Setting{
			Name:     def.name,
			Label:    def.label,
			Group:    def.group,
			Kind:     def.kind,
			Advanced: def.advanced,
			Options:  append([]string(nil), def.options...),
			def:      def.def,
		}
		s.Reset()
		g, ok := groups[def.group]
		if !ok {
			g = &Group{Name: def.group}
			groups[def.group] = g
			t.groups = append(t.groups, g)
		}
		g.Settings = append(g.Settings, s)
		t.index[s.Name] = s
	}
	return t
}

// Free drops every setting. The tree is empty afterwards.
func (t *Tree) Free() {
	if t == nil {
		return
	}
	t.groups = nil
	t.index = nil
}

// Groups returns the groups in display order.
func (t *Tree) Groups() []*Group {
	if t == nil {
		return nil
	}
	return t.groups
}

// Group finds a group by title.
func (t *Tree) Group(name string) (*Group, bool) {
	if t == nil {
		return nil, false
	}
	for _, g := range t.groups {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// Lookup finds a setting by name.
func (t *Tree) Lookup(name string) (*Setting, bool) {
	if t == nil || t.index == nil {
		return nil, false
	}
	s, ok := t.index[name]
	return s, ok
}

// Bool reports a boolean setting, false when it does not exist.
func (t *Tree) Bool(name string) bool {
	s, ok := t.Lookup(name)
	if !ok {
		return false
	}
	return s.Bool()
}

// String returns the canonical value of a setting, empty when unknown.
func (t *Tree) String(name string) string {
	s, ok := t.Lookup(name)
	if !ok {
		return ""
	}
	return s.Value()
}

// Set parses and stores value for the named setting.
func (t *Tree) Set(name, value string) error {
	s, ok := t.Lookup(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownSetting)
	}
	if err := s.Set(value); err != nil {
		return err
	}
	events.Setting.Change(name, s.Value())
	return nil
}

// Apply sets every value in values, reporting all failures together.
func (t *Tree) Apply(values map[string]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	var errs []error
	for _, name := range names {
		if err := t.Set(name, values[name]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Cycle steps the named setting by delta, toggling booleans.
func (t *Tree) Cycle(name string, delta int, wrap bool) (bool, error) {
	s, ok := t.Lookup(name)
	if !ok {
		return false, fmt.Errorf("%s: %w", name, ErrUnknownSetting)
	}
	if !s.Cycle(delta, wrap) {
		return false, nil
	}
	events.Setting.Change(name, s.Value())
	return true, nil
}

// SetOption selects option idx of the named enum setting.
func (t *Tree) SetOption(name string, idx int) error {
	s, ok := t.Lookup(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownSetting)
	}
	if err := s.SetOption(idx); err != nil {
		return err
	}
	events.Setting.Change(name, s.Value())
	return nil
}

// Values returns the canonical value of every setting, keyed by name.
func (t *Tree) Values() map[string]string {
	if t == nil {
		return nil
	}
	out := make(map[string]string, len(t.index))
	for name, s := range t.index {
		out[name] = s.Value()
	}
	return out
}
