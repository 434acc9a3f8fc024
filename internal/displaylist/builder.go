package displaylist

import (
	"errors"
	"fmt"

	"github.com/atomicstack/menuctl/internal/browser"
	"github.com/atomicstack/menuctl/internal/core"
	"github.com/atomicstack/menuctl/internal/menu"
	"github.com/atomicstack/menuctl/internal/settings"
)

// Labels of the fixed screens and main menu entries.
const (
	MainMenuLabel    = "Main Menu"
	LoadContentLabel = "Load Content"
	UnloadCoreLabel  = "Unload Core"
	SettingsLabel    = "Settings"
	InformationLabel = "Information"
	QuitLabel        = "Quit"
)

var (
	ErrQuit       = errors.New("quit requested")
	ErrEmptyStack = errors.New("menu stack is empty")
	ErrNoCore     = errors.New("no core handles this file")
)

// Options configures a Builder.
type Options struct {
	Root    string
	Version string
	Core    *core.State
}

// Builder implements menu.Binder and rebuilds the selection buffer.
type Builder struct {
	entries *menu.Entries
	root    string
	version string
	core    *core.State

	listings map[string][]browser.Item
	stale    map[string]bool
	message  string
}

// New returns a builder browsing from opts.Root.
func New(opts Options) *Builder {
	return &Builder{
		root:     opts.Root,
		version:  opts.Version,
		core:     opts.Core,
		listings: make(map[string][]browser.Item),
		stale:    make(map[string]bool),
	}
}

// Root returns the directory Load Content opens.
func (b *Builder) Root() string {
	return b.root
}

// Init attaches the builder to e and pushes the main menu as the root of
// the stack.
func (b *Builder) Init(e *menu.Entries) {
	b.entries = e
	e.Push(e.MenuStack(), "", MainMenuLabel, menu.TypeRoot, 0, 0)
	e.SetRefresh(false)
}

// Build clears the selection buffer and refills it for the top of the stack.
// When the top screen is a directory whose listing has not been loaded yet,
// the buffer is left empty and the directory is returned so the caller can
// load it with SetListing. A stale listing is still shown, and its directory
// is returned as well.
func (b *Builder) Build(e *menu.Entries) (string, error) {
	top, ok := e.LastStack()
	if !ok {
		return "", ErrEmptyStack
	}
	list := e.SelectionBuffer()
	list.Clear()

	switch top.Type {
	case menu.TypeRoot:
		b.buildMain(e, list)
	case menu.TypeDirectory:
		items, ok := b.listings[top.Path]
		if !ok {
			return top.Path, nil
		}
		b.buildDirectory(e, list, items)
		if b.stale[top.Path] {
			return top.Path, nil
		}
	case menu.TypeSettings:
		for i, g := range e.Settings().Groups() {
			e.Push(list, g.Name, g.Name, menu.TypeSettingsGroup, 0, i)
		}
	case menu.TypeSettingsGroup:
		group, ok := e.Settings().Group(top.Label)
		if !ok {
			return "", fmt.Errorf("settings group %q: %w", top.Label, settings.ErrUnknownSetting)
		}
		for i, s := range group.Settings {
			e.Push(list, s.Name, s.Label, menu.TypeSetting, 0, i)
		}
	case menu.TypeSettingPicker:
		s, ok := e.Settings().Lookup(top.Path)
		if !ok {
			return "", fmt.Errorf("%s: %w", top.Path, settings.ErrUnknownSetting)
		}
		for i, opt := range s.Options {
			e.Push(list, opt, opt, menu.TypeSettingOption, 0, i)
		}
	case menu.TypeInfo:
		b.buildInfo(e, list)
	}
	return "", nil
}

// SetListing stores the items of dir for the next Build.
func (b *Builder) SetListing(dir string, items []browser.Item) {
	b.listings[dir] = items
	delete(b.stale, dir)
}

// Listing returns the cached items of dir.
func (b *Builder) Listing(dir string) ([]browser.Item, bool) {
	items, ok := b.listings[dir]
	return items, ok
}

// Invalidate marks every cached listing for reload.
func (b *Builder) Invalidate() {
	for dir := range b.listings {
		b.stale[dir] = true
	}
}

// MarkStale keeps the cached listing of dir on screen but has the next
// Build ask for it to be reloaded.
func (b *Builder) MarkStale(dir string) {
	if _, ok := b.listings[dir]; ok {
		b.stale[dir] = true
	}
}

// Stale reports whether the listing of dir is waiting for a reload.
func (b *Builder) Stale(dir string) bool {
	return b.stale[dir]
}

func (b *Builder) tree() *settings.Tree {
	return b.entries.Settings()
}

// TakeMessage returns and clears the status message left by the last action.
func (b *Builder) TakeMessage() string {
	msg := b.message
	b.message = ""
	return msg
}

// BrowserOptions reads the listing options from the settings tree.
func BrowserOptions(tree *settings.Tree) browser.Options {
	return browser.Options{
		ShowHidden:       tree.Bool(settings.ShowHidden),
		DirectoriesFirst: tree.Bool(settings.DirectoriesFirst),
	}
}

func (b *Builder) buildMain(e *menu.Entries, list *menu.List) {
	e.Push(list, b.root, LoadContentLabel, menu.TypeDirectory, 0, 0)
	if _, ok := b.core.MenuCoreInfo(); ok {
		e.Push(list, "", UnloadCoreLabel, menu.TypePlain, 0, 1)
	}
	e.Push(list, "", SettingsLabel, menu.TypeSettings, 0, 2)
	e.Push(list, "", InformationLabel, menu.TypeInfo, 0, 3)
	e.Push(list, "", QuitLabel, menu.TypePlain, 0, 4)
	// plain entries sort by label, not by their empty path
	for i := 0; i < list.Size(); i++ {
		rec, _ := list.At(i)
		list.SetAltAt(i, rec.Label)
	}
}

func (b *Builder) buildDirectory(e *menu.Entries, list *menu.List, items []browser.Item) {
	for i, item := range items {
		typ := menu.TypeFile
		if item.Dir {
			typ = menu.TypeDirectory
		}
		e.Push(list, item.Path, item.Name, typ, 0, i)
		list.SetAltAt(list.Size()-1, item.Name)
	}
}

func (b *Builder) buildInfo(e *menu.Entries, list *menu.List) {
	name := menu.NoCoreLabel
	version := ""
	if info, ok := b.core.MenuCoreInfo(); ok {
		name, version = info.Name, info.Version
	} else if sys := b.core.SystemCoreInfo(); sys.Name != "" {
		name, version = sys.Name, sys.Version
	}
	lines := []struct{ label, value string }{
		{"Version", b.version},
		{"Core", name},
		{"Core Version", version},
		{"Content", b.core.Loaded()},
		{"Browser Root", b.root},
	}
	for i, line := range lines {
		e.Push(list, line.value, line.label, menu.TypeInfo, 0, i)
		list.SetAltAt(list.Size()-1, line.label)
	}
}

// enter pushes a new screen, saving the cursor so it can be restored.
func enter(e *menu.Entries, path, label string, typ menu.Type, entryIdx int) {
	nav := e.Navigator()
	cursor, _ := nav.Selection()
	e.Push(e.MenuStack(), path, label, typ, cursor, entryIdx)
	nav.Clear(true)
	e.SetRefresh(false)
}
