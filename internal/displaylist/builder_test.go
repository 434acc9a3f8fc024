package displaylist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/menuctl/internal/browser"
	"github.com/atomicstack/menuctl/internal/core"
	"github.com/atomicstack/menuctl/internal/menu"
	"github.com/atomicstack/menuctl/internal/navigation"
	"github.com/atomicstack/menuctl/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	entries *menu.Entries
	builder *Builder
	nav     *navigation.Navigation
	core    *core.State
}

func newFixture(t *testing.T, root string) *fixture {
	t.Helper()
	registry := core.NewRegistry([]core.Definition{
		{Name: "Snes9x", Version: "1.60", Extensions: []string{"sfc"}},
	})
	state := core.NewState(menu.CoreInfo{}, registry)
	b := New(Options{Root: root, Version: "0.1", Core: state})
	nav := navigation.New()
	e, err := menu.New(menu.Options{Binder: b, Navigator: nav, Core: state, Version: "0.1"})
	require.NoError(t, err)
	e.NewSettings(settings.FlagAll)
	b.Init(e)
	f := &fixture{entries: e, builder: b, nav: nav, core: state}
	f.rebuild(t)
	return f
}

// rebuild mirrors the UI refresh cycle, loading directories synchronously.
func (f *fixture) rebuild(t *testing.T) {
	t.Helper()
	require.True(t, f.entries.NeedsRefresh())
	dir, err := f.builder.Build(f.entries)
	require.NoError(t, err)
	if dir != "" {
		items, err := browser.Load(dir, BrowserOptions(f.entries.Settings()))
		require.NoError(t, err)
		f.builder.SetListing(dir, items)
		_, err = f.builder.Build(f.entries)
		require.NoError(t, err)
	}
	f.entries.Refresh(f.entries.SelectionBuffer())
	f.entries.UnsetRefresh(false)
}

func (f *fixture) labels() []string {
	var out []string
	for i := 0; i < f.entries.Size(); i++ {
		out = append(out, f.entries.Get(i).Label)
	}
	return out
}

func (f *fixture) indexOf(t *testing.T, label string) int {
	t.Helper()
	for i, l := range f.labels() {
		if l == label {
			return i
		}
	}
	t.Fatalf("entry %q not found in %v", label, f.labels())
	return -1
}

func (f *fixture) ok(t *testing.T, label string) error {
	t.Helper()
	idx := f.indexOf(t, label)
	f.nav.SetSelection(idx)
	return f.entries.OK(idx)
}

func (f *fixture) title(t *testing.T) string {
	t.Helper()
	title, err := f.entries.Title(0)
	require.NoError(t, err)
	return title
}

func TestMainMenu(t *testing.T) {
	f := newFixture(t, t.TempDir())
	assert.Equal(t, []string{LoadContentLabel, SettingsLabel, InformationLabel, QuitLabel}, f.labels())
	assert.Equal(t, MainMenuLabel, f.title(t))
	assert.False(t, f.entries.ShowBack())
	assert.ErrorIs(t, f.ok(t, QuitLabel), ErrQuit)
}

func TestSettingsToggle(t *testing.T) {
	f := newFixture(t, t.TempDir())
	require.NoError(t, f.ok(t, SettingsLabel))
	f.rebuild(t)
	assert.Equal(t, []string{settings.GroupMenu, settings.GroupBrowser}, f.labels())
	assert.Equal(t, SettingsLabel, f.title(t))

	require.NoError(t, f.ok(t, settings.GroupMenu))
	f.rebuild(t)
	assert.Equal(t, "Settings > Menu", f.title(t))

	idx := f.indexOf(t, "Show Key Hints")
	assert.Equal(t, "OFF", f.entries.Get(idx).Value)
	require.NoError(t, f.entries.OK(idx))
	assert.Equal(t, "ON", f.entries.Get(idx).Value)
	require.NoError(t, f.entries.Left(idx))
	assert.False(t, f.entries.Settings().Bool(settings.ShowFooter))
	assert.Equal(t, "Show Key Hints: OFF", f.builder.TakeMessage())
	assert.Empty(t, f.builder.TakeMessage())
}

func TestOptionPickerReturnsToGroup(t *testing.T) {
	f := newFixture(t, t.TempDir())
	require.NoError(t, f.ok(t, SettingsLabel))
	f.rebuild(t)
	require.NoError(t, f.ok(t, settings.GroupBrowser))
	f.rebuild(t)

	units := f.indexOf(t, "Size Units")
	require.NoError(t, f.ok(t, "Size Units"))
	f.rebuild(t)
	assert.Equal(t, 4, f.entries.StackSize())
	assert.Equal(t, "Settings > Size Units", f.title(t))
	assert.Equal(t, []string{settings.UnitsSI, settings.UnitsIEC, settings.UnitsBytes}, f.labels())
	assert.Equal(t, "*", f.entries.Get(0).Value)
	assert.Equal(t, "", f.entries.Get(1).Value)

	require.NoError(t, f.entries.Right(0))
	sel, _ := f.nav.Selection()
	assert.Equal(t, 1, sel)

	require.NoError(t, f.entries.OK(1))
	assert.Equal(t, settings.UnitsIEC, f.entries.Settings().String(settings.SizeUnits))
	top, _ := f.entries.LastStack()
	assert.Equal(t, settings.GroupBrowser, top.Label)
	assert.Equal(t, 3, f.entries.StackSize())
	sel, _ = f.nav.Selection()
	assert.Equal(t, units, sel)

	f.rebuild(t)
	assert.Equal(t, "IEC", f.entries.Get(units).Value)
}

func TestDirectoryBrowsing(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "roms"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "roms", "mario.sfc"), make([]byte, 2048), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hi"), 0o644))

	f := newFixture(t, root)
	assert.Equal(t, root, f.entries.Get(0).Path)
	require.NoError(t, f.ok(t, LoadContentLabel))
	f.rebuild(t)
	assert.Equal(t, []string{"roms", "notes.txt"}, f.labels())
	assert.Equal(t, LoadContentLabel+": "+root, f.title(t))
	assert.Equal(t, "DIR", f.entries.Get(0).Value)
	assert.Equal(t, "2 B", f.entries.Get(1).Value)

	assert.ErrorIs(t, f.ok(t, "notes.txt"), ErrNoCore)

	require.NoError(t, f.ok(t, "roms"))
	f.rebuild(t)
	assert.Equal(t, 3, f.entries.StackSize())
	assert.Equal(t, "2.0 kB", f.entries.Get(0).Value)

	require.NoError(t, f.ok(t, "mario.sfc"))
	assert.Equal(t, 1, f.entries.StackSize())
	assert.Contains(t, f.builder.TakeMessage(), "Snes9x")
	info, ok := f.core.MenuCoreInfo()
	require.True(t, ok)
	assert.Equal(t, "Snes9x", info.Name)
	sel, _ := f.nav.Selection()
	assert.Equal(t, 0, sel, "cursor restored to Load Content")

	f.rebuild(t)
	assert.Equal(t, []string{LoadContentLabel, UnloadCoreLabel, SettingsLabel, InformationLabel, QuitLabel}, f.labels())
	require.NoError(t, f.ok(t, UnloadCoreLabel))
	f.rebuild(t)
	assert.NotContains(t, f.labels(), UnloadCoreLabel)
}

func TestDeletedFileClampsCursor(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), nil, 0o644))
	}
	f := newFixture(t, root)
	require.NoError(t, f.ok(t, LoadContentLabel))
	f.rebuild(t)
	f.nav.SetSelection(2)

	require.NoError(t, os.Remove(filepath.Join(root, "c.txt")))
	items, err := browser.Load(root, BrowserOptions(f.entries.Settings()))
	require.NoError(t, err)
	f.builder.SetListing(root, items)
	f.entries.SetRefresh(false)
	f.rebuild(t)

	assert.Equal(t, []string{"a.txt", "b.txt"}, f.labels())
	sel, _ := f.nav.Selection()
	assert.Equal(t, 1, sel)
}

func TestPopRestoresCursor(t *testing.T) {
	f := newFixture(t, t.TempDir())
	require.NoError(t, f.ok(t, InformationLabel))
	f.rebuild(t)
	assert.Equal(t, InformationLabel, f.title(t))
	assert.Equal(t, "0.1", f.entries.Get(f.indexOf(t, "Version")).Value)
	assert.Equal(t, menu.NoCoreLabel, f.entries.Get(f.indexOf(t, "Core")).Value)
	assert.ErrorIs(t, f.ok(t, "Version"), menu.ErrNoAction)

	ptr, ok := f.entries.PopStack()
	require.True(t, ok)
	f.nav.SetSelection(ptr)
	f.rebuild(t)
	sel, _ := f.nav.Selection()
	assert.Equal(t, f.indexOf(t, InformationLabel), sel)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "1.0 kB", formatSize(1000, settings.UnitsSI))
	assert.Equal(t, "1.0 KiB", formatSize(1024, settings.UnitsIEC))
	assert.Equal(t, "1,024 B", formatSize(1024, settings.UnitsBytes))
	assert.Equal(t, "0 B", formatSize(-5, ""))
}

func TestStaleListingStaysUntilReloaded(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), nil, 0o644))
	}
	f := newFixture(t, root)
	require.NoError(t, f.ok(t, LoadContentLabel))
	f.rebuild(t)

	f.builder.MarkStale(root)
	f.builder.MarkStale(filepath.Join(root, "missing"))
	assert.True(t, f.builder.Stale(root))
	assert.False(t, f.builder.Stale(filepath.Join(root, "missing")))

	f.entries.SetRefresh(false)
	dir, err := f.builder.Build(f.entries)
	require.NoError(t, err)
	assert.Equal(t, root, dir)
	assert.Equal(t, 2, f.entries.SelectionBuffer().Size(), "stale listing still built")

	f.builder.SetListing(root, nil)
	assert.False(t, f.builder.Stale(root))
}
