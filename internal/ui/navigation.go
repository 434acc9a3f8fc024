package ui

import (
	"errors"

	"github.com/atomicstack/menuctl/internal/displaylist"
	"github.com/atomicstack/menuctl/internal/logging"
	"github.com/atomicstack/menuctl/internal/logging/events"
	"github.com/atomicstack/menuctl/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.searching {
		return m.handleSearchKey(keyMsg)
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "backspace":
		m.popScreen()
	case "~":
		m.returnToRoot()
	case "/":
		return m.openSearch()
	case "enter":
		return m.dispatch("ok", m.entries.OK)
	case "left":
		return m.dispatch("left", m.entries.Left)
	case "right":
		return m.dispatch("right", m.entries.Right)
	case "up", "k":
		m.moveCursor(m.nav.Decrement(m.entries.Size(), m.wraparound()))
	case "down", "j":
		m.moveCursor(m.nav.Increment(m.entries.Size(), m.wraparound()))
	case "pgup":
		m.moveCursor(m.nav.PageUp(m.entries.Size(), m.maxVisibleItems()))
	case "pgdown":
		m.moveCursor(m.nav.PageDown(m.entries.Size(), m.maxVisibleItems()))
	case "home":
		m.moveCursor(m.nav.Home(m.entries.Size()))
	case "end":
		m.moveCursor(m.nav.End(m.entries.Size()))
	case "[":
		m.jump("up", m.nav.DescendAlphabet(m.entries.Size()))
	case "]":
		m.jump("down", m.nav.AscendAlphabet(m.entries.Size()))
	}
	return nil
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if m.entries.StackSize() <= 1 {
		return tea.Quit
	}
	m.popScreen()
	return nil
}

// popScreen closes the top screen and restores the cursor it was opened
// from.
func (m *Model) popScreen() {
	ptr, ok := m.entries.PopStack()
	if !ok {
		return
	}
	m.nav.SetSelection(ptr)
	m.nav.ScrollToSelection()
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) returnToRoot() {
	if m.entries.StackSize() <= 1 {
		return
	}
	m.entries.FlushStack("", menu.TypeRoot)
	m.nav.ScrollToSelection()
	m.errMsg = ""
	m.forceClearInfo()
}

// dispatch runs an entry action on the cursor row. Quit requests end the
// program and entries without the action are ignored.
func (m *Model) dispatch(name string, action func(int) error) tea.Cmd {
	if m.loading || m.entries.Size() == 0 {
		return nil
	}
	idx, ok := m.nav.Selection()
	if !ok {
		return nil
	}
	entry := m.cache.entry(m.entries, idx)
	events.UI.MenuEnter(m.menuLabel(), entry.Label+":"+name, entry.Type.String(), idx)
	err := action(idx)
	m.cache.invalidate()
	switch {
	case errors.Is(err, displaylist.ErrQuit):
		return tea.Quit
	case errors.Is(err, menu.ErrNoAction):
		return nil
	case err != nil:
		logging.Error(err)
		events.Action.Error(err)
		m.errMsg = err.Error()
		return nil
	}
	m.errMsg = ""
	info := m.builder.TakeMessage()
	events.Action.Success(info)
	if info != "" && m.verbose {
		m.setInfo(info)
	}
	return nil
}

func (m *Model) moveCursor(moved bool) {
	if !moved {
		return
	}
	cursor, _ := m.nav.Selection()
	events.UI.MenuCursor(m.menuLabel(), cursor)
	m.syncViewport()
}

func (m *Model) jump(direction string, moved bool) {
	if !moved {
		return
	}
	cursor, _ := m.nav.Selection()
	events.UI.Jump(m.menuLabel(), direction, cursor)
	m.syncViewport()
}
