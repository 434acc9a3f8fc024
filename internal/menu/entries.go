package menu

import (
	"errors"

	"github.com/atomicstack/menuctl/internal/logging/events"
	"github.com/atomicstack/menuctl/internal/settings"
	"github.com/muesli/reflow/truncate"
)

// Column limits applied to the display fields filled by Get.
const (
	EntryLabelLimit = 255
	EntryValueLimit = 255
	EntryPathLimit  = 255
)

var (
	ErrNoNavigator       = errors.New("menu: navigator is required")
	ErrNoTitle           = errors.New("menu: no title available")
	ErrCoreTitleDisabled = errors.New("menu: core name display is disabled")
	ErrNoAction          = errors.New("menu: entry has no action")
)

// Options wires the collaborators of an Entries handle.
type Options struct {
	Driver    Driver
	Binder    Binder
	Navigator Navigator
	Core      CoreSource
	Version   string
}

// Entries is the handle through which the front-end reaches the menu stack,
// the selection buffer, the refresh flags and the settings tree.
type Entries struct {
	needRefresh        bool
	nonblockingRefresh bool
	start              int

	list     *MenuList
	settings *settings.Tree
	nav      Navigator
	core     CoreSource
	version  string
}

// New constructs an Entries handle with an empty menu list.
func New(opts Options) (*Entries, error) {
	if opts.Navigator == nil {
		return nil, ErrNoNavigator
	}
	e := &Entries{
		nav:     opts.Navigator,
		core:    opts.Core,
		version: opts.Version,
	}
	e.list = NewMenuList(opts.Driver, opts.Binder, opts.Navigator, e)
	return e, nil
}

// Close frees the settings tree and the menu list.
func (e *Entries) Close() {
	if e == nil {
		return
	}
	e.FreeSettings()
	e.list.Close()
	e.list = nil
}

// MenuList returns the underlying menu list.
func (e *Entries) MenuList() *MenuList {
	if e == nil {
		return nil
	}
	return e.list
}

// Navigator returns the navigation collaborator.
func (e *Entries) Navigator() Navigator {
	if e == nil {
		return nil
	}
	return e.nav
}

// NewSettings replaces the settings tree with a fresh one built from flags.
func (e *Entries) NewSettings(flags settings.Flags) *settings.Tree {
	if e == nil {
		return nil
	}
	e.FreeSettings()
	e.settings = settings.New(flags)
	return e.settings
}

// FreeSettings releases the settings tree.
func (e *Entries) FreeSettings() {
	if e == nil || e.settings == nil {
		return
	}
	e.settings.Free()
	e.settings = nil
}

// Settings returns the settings tree, or nil before NewSettings.
func (e *Entries) Settings() *settings.Tree {
	if e == nil {
		return nil
	}
	return e.settings
}

// SetStart sets the first visible index of the entry list.
func (e *Entries) SetStart(i int) {
	if e != nil {
		e.start = i
	}
}

// Start returns the first visible index of the entry list.
func (e *Entries) Start() int {
	if e == nil {
		return 0
	}
	return e.start
}

// End returns one past the last index of the entry list.
func (e *Entries) End() int {
	return e.Size()
}

// Size reports the selection buffer size.
func (e *Entries) Size() int {
	if e == nil {
		return 0
	}
	return e.list.Size()
}

// StackSize reports the number of open screens.
func (e *Entries) StackSize() int {
	if e == nil {
		return 0
	}
	return e.list.StackSize()
}

// MenuStack returns the stack list.
func (e *Entries) MenuStack() *List {
	if e == nil {
		return nil
	}
	return e.list.Stack()
}

// SelectionBuffer returns the entries of the current screen.
func (e *Entries) SelectionBuffer() *List {
	if e == nil {
		return nil
	}
	return e.list.Selection()
}

// Push appends a record to list.
func (e *Entries) Push(list *List, path, label string, typ Type, stackPtr, entryIdx int) {
	if list == nil {
		return
	}
	list.Push(path, label, typ, stackPtr, entryIdx)
	if e != nil && list == e.MenuStack() {
		events.Stack.Push(label, typ.String(), stackPtr)
	}
}

// LastStack returns the record of the screen on top of the stack.
func (e *Entries) LastStack() (Record, bool) {
	if e == nil {
		return Record{}, false
	}
	return e.list.LastStack()
}

// LastStackActions returns the action bundle of the top screen.
func (e *Entries) LastStackActions() *Actions {
	if e == nil {
		return nil
	}
	return e.MenuStack().LastActions()
}

// PopStack closes the top screen, returning the cursor it saved.
func (e *Entries) PopStack() (int, bool) {
	if e == nil {
		return 0, false
	}
	return e.list.PopStack()
}

// FlushStack closes screens until one labelled needle, or of finalType when
// needle is empty, is on top.
func (e *Entries) FlushStack(needle string, finalType Type) {
	if e == nil {
		return
	}
	e.list.FlushStack(needle, finalType)
}

// ShowBack reports whether at least one screen sits above the root.
func (e *Entries) ShowBack() bool {
	return e.StackSize() > 1
}

// Get resolves the selection buffer entry at idx into display fields.
func (e *Entries) Get(idx int) Entry {
	entry := Entry{Idx: idx}
	if e == nil {
		return entry
	}
	menuLabel := ""
	if top, ok := e.LastStack(); ok {
		menuLabel = top.Label
	}
	selection := e.SelectionBuffer()
	rec, _ := selection.At(idx)
	entry.Type = rec.Type
	entry.EntryIdx = rec.EntryIdx
	if actions := selection.ActionsAt(idx); actions != nil && actions.GetValue != nil {
		actions.GetValue(selection, idx, menuLabel, rec, &entry)
		entry.Value = clip(entry.Value, EntryValueLimit)
		entry.Path = clip(entry.Path, EntryPathLimit)
	}
	entry.Idx = idx
	entry.Label = ""
	if rec.Label != "" {
		entry.Label = clip(rec.Label, EntryLabelLimit)
	}
	return entry
}

// Title formats the name of the current screen. ErrNoTitle is returned when
// the top screen carries no action bundle.
func (e *Entries) Title(limit int) (string, error) {
	actions := e.LastStackActions()
	if actions == nil {
		return "", ErrNoTitle
	}
	if actions.GetTitle == nil {
		return "", nil
	}
	top, _ := e.LastStack()
	title, err := actions.GetTitle(top.Path, top.Label, top.Type)
	return clip(title, limit), err
}

// OK activates the selection buffer entry at idx.
func (e *Entries) OK(idx int) error {
	return e.dispatch(idx, func(a *Actions) ActionFunc { return a.OK })
}

// Left adjusts the selection buffer entry at idx downwards.
func (e *Entries) Left(idx int) error {
	return e.dispatch(idx, func(a *Actions) ActionFunc { return a.Left })
}

// Right adjusts the selection buffer entry at idx upwards.
func (e *Entries) Right(idx int) error {
	return e.dispatch(idx, func(a *Actions) ActionFunc { return a.Right })
}

func (e *Entries) dispatch(idx int, pick func(*Actions) ActionFunc) error {
	selection := e.SelectionBuffer()
	actions := selection.ActionsAt(idx)
	if actions == nil {
		return ErrNoAction
	}
	fn := pick(actions)
	if fn == nil {
		return ErrNoAction
	}
	rec, _ := selection.At(idx)
	return fn(e, idx, rec)
}

// NeedsRefresh reports a pending blocking refresh that no nonblocking
// refresh is currently deferring.
func (e *Entries) NeedsRefresh() bool {
	if e == nil || e.nonblockingRefresh {
		return false
	}
	return e.needRefresh
}

// SetRefresh raises the blocking or the nonblocking refresh flag.
func (e *Entries) SetRefresh(nonblocking bool) {
	if e == nil {
		return
	}
	if nonblocking {
		e.nonblockingRefresh = true
	} else {
		e.needRefresh = true
	}
}

// UnsetRefresh lowers the blocking or the nonblocking refresh flag.
func (e *Entries) UnsetRefresh(nonblocking bool) {
	if e == nil {
		return
	}
	if nonblocking {
		e.nonblockingRefresh = false
	} else {
		e.needRefresh = false
	}
}

// Refresh rebuilds the scroll indices for list and keeps the cursor inside
// the selection buffer, which may have shrunk since the last refresh.
func (e *Entries) Refresh(list *List) {
	if e == nil || e.list == nil || list == nil {
		return
	}
	selection, ok := e.nav.Selection()
	if !ok {
		return
	}
	BuildScrollIndices(list, e.nav)

	size := e.list.Size()
	switch {
	case size > 0 && selection >= size:
		e.nav.SetSelection(size - 1)
		e.nav.ScrollToSelection()
		events.Refresh.Clamp(selection, size-1)
	case size == 0:
		e.nav.Clear(true)
	}
	events.Refresh.Rebuild(size)
}

func clip(s string, limit int) string {
	if limit <= 0 || s == "" {
		return s
	}
	return truncate.String(s, uint(limit))
}
