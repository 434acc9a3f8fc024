package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/menuctl/internal/backend"
	"github.com/atomicstack/menuctl/internal/core"
	"github.com/atomicstack/menuctl/internal/displaylist"
	"github.com/atomicstack/menuctl/internal/logging"
	"github.com/atomicstack/menuctl/internal/logging/events"
	"github.com/atomicstack/menuctl/internal/menu"
	"github.com/atomicstack/menuctl/internal/navigation"
	"github.com/atomicstack/menuctl/internal/settings"
	"github.com/atomicstack/menuctl/internal/theme"
	"github.com/atomicstack/menuctl/internal/ui/command"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Root         string
	Version      string
	Core         *core.State
	Settings     map[string]string
	SettingFlags settings.Flags
	Watcher      *backend.Watcher
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	CursorBlink  bool
}

// Model implements the Bubble Tea model for the menu.
type Model struct {
	entries *menu.Entries
	builder *displaylist.Builder
	nav     *navigation.Navigation
	cache   *renderCache
	core    *core.State

	loading     bool
	pendingDir  string
	pushPending bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	verbose     bool

	backend        *backend.Watcher
	backendLastErr string

	search    textinput.Model
	searching bool

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
}

// NewModel builds the menu state, applies configured setting values and
// pushes the main menu.
func NewModel(opts Options) (*Model, error) {
	nav := navigation.New()
	cache := newRenderCache()
	builder := displaylist.New(displaylist.Options{
		Root:    opts.Root,
		Version: opts.Version,
		Core:    opts.Core,
	})
	entries, err := menu.New(menu.Options{
		Driver:    cache,
		Binder:    builder,
		Navigator: nav,
		Core:      opts.Core,
		Version:   opts.Version,
	})
	if err != nil {
		return nil, err
	}
	m := &Model{
		entries: entries,
		builder: builder,
		nav:     nav,
		cache:   cache,
		core:    opts.Core,
		backend: opts.Watcher,
		verbose: opts.Verbose,
		bus:     command.New(),
	}
	tree := entries.NewSettings(opts.SettingFlags)
	if err := tree.Apply(opts.Settings); err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
	}
	if opts.ShowFooter {
		_ = tree.Set(settings.ShowFooter, "true")
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search"
	if styles.SearchPrompt != nil {
		search.PromptStyle = styles.SearchPrompt.Copy()
	}
	if styles.Search != nil {
		search.TextStyle = styles.Search.Copy()
	}
	if styles.SearchPlaceholder != nil {
		search.PlaceholderStyle = styles.SearchPlaceholder.Copy()
	}
	if styles.Cursor != nil {
		search.Cursor.Style = styles.Cursor.Copy()
	}
	if !opts.CursorBlink {
		search.Cursor.SetMode(cursor.CursorStatic)
	}
	m.search = search

	builder.Init(entries)
	m.registerHandlers()
	return m, nil
}

// Entries exposes the menu state.
func (m *Model) Entries() *menu.Entries {
	return m.entries
}

// Close releases the menu state.
func (m *Model) Close() {
	events.App.Stop(m.entries.StackSize())
	m.entries.Close()
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.syncRefresh(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	} else if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(directoryLoadedMsg{}): m.handleDirectoryLoadedMsg,
		reflect.TypeOf(backendEventMsg{}):    m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):     m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.syncRefresh(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// syncRefresh rebuilds the selection buffer when the menu asks for it and
// returns the command that loads a directory listing the rebuild is missing.
func (m *Model) syncRefresh() tea.Cmd {
	if !m.entries.NeedsRefresh() {
		m.syncViewport()
		return nil
	}
	m.entries.UnsetRefresh(false)
	dir, err := m.builder.Build(m.entries)
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
	}
	pushed := m.nav.PendingPush()
	if dir != "" && m.entries.Size() == 0 {
		// the cursor restored by a push or pop waits for the listing
		m.pushPending = m.pushPending || pushed
	} else {
		m.pushPending = false
		m.entries.Refresh(m.entries.SelectionBuffer())
	}
	m.watchTop()
	m.syncViewport()
	if dir == "" || (m.loading && m.pendingDir == dir) {
		return nil
	}
	return m.loadDirectoryCmd(dir)
}

func (m *Model) watchTop() {
	if m.backend == nil {
		return
	}
	top, ok := m.entries.LastStack()
	if !ok || top.Type != menu.TypeDirectory {
		return
	}
	if err := m.backend.Watch(top.Path); err != nil {
		events.Backend.Error(err)
		m.backendLastErr = err.Error()
	}
}

func (m *Model) syncViewport() {
	if m.awaitingListing() {
		return
	}
	m.nav.TakeScrollRequest()
	m.nav.EnsureVisible(m.entries.Size(), m.maxVisibleItems())
}

// awaitingListing reports whether the screen is empty because its
// directory listing has not arrived yet.
func (m *Model) awaitingListing() bool {
	return (m.loading || m.pushPending) && m.entries.Size() == 0
}

func (m *Model) wraparound() bool {
	return m.entries.Settings().Bool(settings.Wraparound)
}

func (m *Model) showFooter() bool {
	return m.entries.Settings().Bool(settings.ShowFooter)
}

func (m *Model) menuLabel() string {
	top, _ := m.entries.LastStack()
	return top.Label
}
