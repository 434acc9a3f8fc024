package displaylist

import (
	"fmt"
	"strings"

	"github.com/atomicstack/menuctl/internal/menu"
	"github.com/atomicstack/menuctl/internal/settings"
	"github.com/dustin/go-humanize"
)

// Bind assigns the actions of a freshly pushed record according to its type.
// The same bundle serves the record whether it sits on the stack, where the
// title is used, or in the selection buffer, where the value and the
// OK/Left/Right handlers are.
func (b *Builder) Bind(list *menu.List, path, label string, typ menu.Type, idx int, actions *menu.Actions) {
	switch typ {
	case menu.TypeRoot:
		actions.GetTitle = staticTitle(MainMenuLabel)
	case menu.TypeDirectory:
		actions.GetTitle = directoryTitle
		actions.GetValue = b.directoryValue
		actions.OK = b.openDirectory
	case menu.TypeFile:
		actions.GetValue = b.fileValue
		actions.OK = b.loadFile
	case menu.TypeSettings:
		actions.GetTitle = staticTitle(SettingsLabel)
		actions.OK = openScreen
	case menu.TypeSettingsGroup:
		actions.GetTitle = prefixedTitle(SettingsLabel)
		actions.OK = openScreen
	case menu.TypeSetting:
		actions.GetValue = b.settingValue
		actions.OK = b.settingOK
		actions.Left = b.settingStep(-1)
		actions.Right = b.settingStep(1)
	case menu.TypeSettingPicker:
		actions.GetTitle = prefixedTitle(SettingsLabel)
	case menu.TypeSettingOption:
		actions.GetValue = b.optionValue
		actions.OK = b.commitOption
		actions.Left = b.pickerStep(-1)
		actions.Right = b.pickerStep(1)
	case menu.TypeInfo:
		actions.GetTitle = staticTitle(InformationLabel)
		actions.GetValue = infoValue
		actions.OK = openInfo
	case menu.TypePlain:
		actions.OK = b.plainOK
	}
}

func staticTitle(title string) menu.TitleFunc {
	return func(string, string, menu.Type) (string, error) {
		return title, nil
	}
}

func prefixedTitle(prefix string) menu.TitleFunc {
	return func(_ string, label string, _ menu.Type) (string, error) {
		return prefix + " > " + label, nil
	}
}

func directoryTitle(path, _ string, _ menu.Type) (string, error) {
	return LoadContentLabel + ": " + path, nil
}

func (b *Builder) directoryValue(_ *menu.List, _ int, menuLabel string, rec menu.Record, entry *menu.Entry) {
	if menuLabel == MainMenuLabel {
		entry.Path = b.root
		return
	}
	entry.Path = rec.Path
	entry.Value = "DIR"
}

func (b *Builder) fileValue(_ *menu.List, _ int, menuLabel string, rec menu.Record, entry *menu.Entry) {
	entry.Path = rec.Path
	items, ok := b.listings[menuLabel]
	if !ok || rec.EntryIdx < 0 || rec.EntryIdx >= len(items) {
		return
	}
	entry.Value = formatSize(items[rec.EntryIdx].Size, b.tree().String(settings.SizeUnits))
}

func (b *Builder) settingValue(_ *menu.List, _ int, _ string, rec menu.Record, entry *menu.Entry) {
	entry.Path = rec.Path
	if s, ok := b.tree().Lookup(rec.Path); ok {
		entry.Value = s.Display()
	}
}

func (b *Builder) optionValue(_ *menu.List, _ int, _ string, rec menu.Record, entry *menu.Entry) {
	entry.Spacing = 2
	top, _ := b.entries.LastStack()
	if s, ok := b.tree().Lookup(top.Path); ok && s.Option() == rec.EntryIdx {
		entry.Value = "*"
	}
}

func infoValue(_ *menu.List, _ int, _ string, rec menu.Record, entry *menu.Entry) {
	entry.Value = rec.Path
}

func formatSize(size int64, units string) string {
	if size < 0 {
		size = 0
	}
	switch units {
	case settings.UnitsIEC:
		return humanize.IBytes(uint64(size))
	case settings.UnitsBytes:
		return humanize.Comma(size) + " B"
	}
	return humanize.Bytes(uint64(size))
}

// openScreen pushes the screen the entry names.
func openScreen(e *menu.Entries, idx int, rec menu.Record) error {
	enter(e, rec.Path, rec.Label, rec.Type, idx)
	return nil
}

// openInfo opens the information screen from the main menu. The lines of
// the information screen itself do nothing.
func openInfo(e *menu.Entries, idx int, rec menu.Record) error {
	if top, ok := e.LastStack(); ok && top.Type == menu.TypeInfo {
		return menu.ErrNoAction
	}
	return openScreen(e, idx, rec)
}

func (b *Builder) openDirectory(e *menu.Entries, idx int, rec menu.Record) error {
	dir := rec.Path
	if dir == "" {
		dir = b.root
	}
	// the absolute path is the label so FlushStack can find a directory
	enter(e, dir, dir, menu.TypeDirectory, idx)
	return nil
}

func (b *Builder) loadFile(e *menu.Entries, _ int, rec menu.Record) error {
	info, ok := b.core.Load(rec.Path)
	if !ok {
		return fmt.Errorf("%s: %w", rec.Label, ErrNoCore)
	}
	b.message = fmt.Sprintf("Loaded %s with %s", rec.Label, strings.TrimSpace(info.Name+" "+info.Version))
	e.FlushStack("", menu.TypeRoot)
	return nil
}

func (b *Builder) plainOK(e *menu.Entries, _ int, rec menu.Record) error {
	switch rec.Label {
	case QuitLabel:
		return ErrQuit
	case UnloadCoreLabel:
		b.core.Unload()
		b.message = "Core unloaded"
		e.SetRefresh(false)
		return nil
	}
	return menu.ErrNoAction
}

func (b *Builder) settingOK(e *menu.Entries, idx int, rec menu.Record) error {
	tree := e.Settings()
	s, ok := tree.Lookup(rec.Path)
	if !ok {
		return fmt.Errorf("%s: %w", rec.Path, settings.ErrUnknownSetting)
	}
	if s.Kind == settings.KindEnum {
		enter(e, s.Name, s.Label, menu.TypeSettingPicker, idx)
		return nil
	}
	if _, err := tree.Cycle(s.Name, 1, true); err != nil {
		return err
	}
	b.settingChanged(e, s)
	return nil
}

func (b *Builder) settingStep(delta int) menu.ActionFunc {
	return func(e *menu.Entries, _ int, rec menu.Record) error {
		tree := e.Settings()
		changed, err := tree.Cycle(rec.Path, delta, tree.Bool(settings.Wraparound))
		if err != nil || !changed {
			return err
		}
		s, _ := tree.Lookup(rec.Path)
		b.settingChanged(e, s)
		return nil
	}
}

// commitOption stores the picked option and returns to the group that owns
// the setting.
func (b *Builder) commitOption(e *menu.Entries, idx int, rec menu.Record) error {
	top, ok := e.LastStack()
	if !ok || top.Type != menu.TypeSettingPicker {
		return menu.ErrNoAction
	}
	tree := e.Settings()
	if err := tree.SetOption(top.Path, rec.EntryIdx); err != nil {
		return err
	}
	s, _ := tree.Lookup(top.Path)
	b.settingChanged(e, s)
	e.FlushStack(s.Group, menu.TypePlain)
	return nil
}

// pickerStep moves the cursor between options without committing.
func (b *Builder) pickerStep(delta int) menu.ActionFunc {
	return func(e *menu.Entries, idx int, _ menu.Record) error {
		nav := e.Navigator()
		next := idx + delta
		if next < 0 || next >= e.Size() {
			return nil
		}
		nav.SetSelection(next)
		nav.ScrollToSelection()
		return nil
	}
}

func (b *Builder) settingChanged(e *menu.Entries, s *settings.Setting) {
	if s == nil {
		return
	}
	b.message = fmt.Sprintf("%s: %s", s.Label, s.Display())
	switch s.Name {
	case settings.ShowHidden, settings.DirectoriesFirst:
		b.Invalidate()
	}
}
