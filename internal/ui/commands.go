package ui

import (
	"github.com/atomicstack/menuctl/internal/browser"
	"github.com/atomicstack/menuctl/internal/displaylist"
	"github.com/atomicstack/menuctl/internal/logging"
	"github.com/atomicstack/menuctl/internal/logging/events"
	"github.com/atomicstack/menuctl/internal/menu"
	"github.com/atomicstack/menuctl/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// directoryLoadedMsg carries a listing read off the update loop.
type directoryLoadedMsg struct {
	dir   string
	items []browser.Item
	err   error
}

func (m *Model) loadDirectoryCmd(dir string) tea.Cmd {
	opts := displaylist.BrowserOptions(m.entries.Settings())
	m.loading = true
	m.pendingDir = dir
	return m.bus.Execute(command.Request{
		ID:    "browser:load",
		Label: dir,
		Run: func() tea.Msg {
			items, err := browser.Load(dir, opts)
			return directoryLoadedMsg{dir: dir, items: items, err: err}
		},
	})
}

func (m *Model) handleDirectoryLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(directoryLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.dir == m.pendingDir {
		m.loading = false
		m.pendingDir = ""
	}
	if loaded.err != nil {
		logging.Error(loaded.err)
		m.errMsg = loaded.err.Error()
	}
	// an unreadable directory is cached empty so it is not retried on
	// every refresh
	m.builder.SetListing(loaded.dir, loaded.items)
	if top, ok := m.entries.LastStack(); ok && top.Type == menu.TypeDirectory && top.Path == loaded.dir {
		m.entries.SetRefresh(false)
		if m.searching {
			events.Refresh.Deferred("search")
		}
	}
	return nil
}
