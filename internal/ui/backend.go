package ui

import (
	"path/filepath"

	"github.com/atomicstack/menuctl/internal/backend"
	"github.com/atomicstack/menuctl/internal/logging/events"
	"github.com/atomicstack/menuctl/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent reloads a changed directory when it is the screen on
// top of the stack and marks its cached listing stale otherwise.
func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if evt.Err != nil {
		events.Backend.Error(evt.Err)
		m.backendLastErr = evt.Err.Error()
		return nil
	}
	m.backendLastErr = ""
	dir := filepath.Clean(evt.Dir)
	top, ok := m.entries.LastStack()
	if !ok || top.Type != menu.TypeDirectory || filepath.Clean(top.Path) != dir {
		m.builder.MarkStale(dir)
		return nil
	}
	if m.loading && m.pendingDir == dir {
		return nil
	}
	return m.loadDirectoryCmd(top.Path)
}
