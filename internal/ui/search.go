package ui

import (
	"github.com/atomicstack/menuctl/internal/logging/events"
	"github.com/atomicstack/menuctl/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// openSearch shows the search prompt. Rebuilds requested while it is open
// are deferred through the nonblocking refresh flag.
func (m *Model) openSearch() tea.Cmd {
	if m.searching || m.entries.Size() == 0 {
		return nil
	}
	m.searching = true
	m.search.Reset()
	m.entries.SetRefresh(true)
	events.Search.Open(m.menuLabel())
	return m.search.Focus()
}

func (m *Model) closeSearch() {
	if !m.searching {
		return
	}
	m.searching = false
	m.search.Blur()
	m.search.Reset()
	m.entries.UnsetRefresh(true)
	events.Search.Close(m.menuLabel())
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.closeSearch()
		return tea.Quit
	case "esc", "enter":
		m.closeSearch()
		return nil
	case "up":
		m.moveCursor(m.nav.Decrement(m.entries.Size(), m.wraparound()))
		return nil
	case "down":
		m.moveCursor(m.nav.Increment(m.entries.Size(), m.wraparound()))
		return nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if query := m.search.Value(); query != before {
		m.applySearch(query)
	}
	return cmd
}

// applySearch moves the cursor to the entry that best matches query.
func (m *Model) applySearch(query string) {
	selection := m.entries.SelectionBuffer()
	candidates := make([]state.Candidate, 0, selection.Size())
	for i := 0; i < selection.Size(); i++ {
		rec, _ := selection.At(i)
		candidates = append(candidates, state.Candidate{Label: rec.Label, Path: rec.Path})
	}
	match := state.BestMatchIndex(candidates, query)
	events.Search.Query(m.menuLabel(), query, match)
	if match < 0 {
		return
	}
	m.nav.SetSelection(match)
	m.nav.ScrollToSelection()
	m.syncViewport()
}
