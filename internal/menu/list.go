package menu

import "github.com/atomicstack/menuctl/internal/logging/events"

type refreshMarker interface {
	SetRefresh(nonblocking bool)
}

// MenuList owns the menu stack and the selection buffer of the screen on
// top of it.
type MenuList struct {
	stack     *List
	selection *List
	driver    Driver
	nav       Navigator
	refresh   refreshMarker
}

// NewMenuList allocates an empty stack and selection buffer.
func NewMenuList(driver Driver, binder Binder, nav Navigator, refresh refreshMarker) *MenuList {
	if driver == nil {
		driver = NopDriver{}
	}
	return &MenuList{
		stack:     NewList(driver, binder),
		selection: NewList(driver, binder),
		driver:    driver,
		nav:       nav,
		refresh:   refresh,
	}
}

// Close releases both lists. Safe to call more than once.
func (m *MenuList) Close() {
	if m == nil {
		return
	}
	m.stack.free()
	m.selection.free()
	m.stack = nil
	m.selection = nil
}

// Size reports the selection buffer size.
func (m *MenuList) Size() int {
	if m == nil {
		return 0
	}
	return m.selection.Size()
}

// StackSize reports the number of open screens.
func (m *MenuList) StackSize() int {
	if m == nil {
		return 0
	}
	return m.stack.Size()
}

// Stack exposes the menu stack.
func (m *MenuList) Stack() *List {
	if m == nil {
		return nil
	}
	return m.stack
}

// Selection exposes the selection buffer.
func (m *MenuList) Selection() *List {
	if m == nil {
		return nil
	}
	return m.selection
}

// LastStack returns the record on top of the stack.
func (m *MenuList) LastStack() (Record, bool) {
	if m == nil {
		return Record{}, false
	}
	return m.stack.Last()
}

// PopStack closes the top screen and returns the cursor it saved. The root
// screen is never popped.
func (m *MenuList) PopStack() (int, bool) {
	if m == nil || m.StackSize() <= 1 {
		return 0, false
	}
	m.driver.ListCache(ListPlain, 0)
	top, _ := m.stack.Last()
	ptr, ok := m.stack.Pop()
	if !ok {
		return 0, false
	}
	if m.refresh != nil {
		m.refresh.SetRefresh(false)
	}
	events.Stack.Pop(top.Label, top.Type.String(), ptr)
	return ptr, true
}

// FlushStack pops screens until the top one is labelled needle, or when
// needle is empty, until the top one has finalType. It stops at the root.
func (m *MenuList) FlushStack(needle string, finalType Type) {
	if m == nil {
		return
	}
	if m.refresh != nil {
		m.refresh.SetRefresh(false)
	}
	events.Stack.Flush(needle, finalType.String())
	top, _ := m.stack.Last()
	for !flushStopped(needle, top, finalType) {
		ptr, ok := m.PopStack()
		if !ok {
			return
		}
		if m.nav != nil {
			m.nav.SetSelection(ptr)
		}
		top, _ = m.stack.Last()
	}
}

func flushStopped(needle string, top Record, finalType Type) bool {
	if needle != "" {
		return top.Label == needle
	}
	return top.Type == finalType
}
