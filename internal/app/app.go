package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/menuctl/internal/backend"
	"github.com/atomicstack/menuctl/internal/core"
	"github.com/atomicstack/menuctl/internal/menu"
	"github.com/atomicstack/menuctl/internal/settings"
	"github.com/atomicstack/menuctl/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const watchInterval = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Root       string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Advanced   bool
	Version    string
	Core       menu.CoreInfo
	Cores      []core.Definition
	Settings   map[string]string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	watcher, err := backend.NewWatcher(watchInterval)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop()

	flags := settings.FlagBasic
	if cfg.Advanced {
		flags = settings.FlagAll
	}
	model, err := ui.NewModel(ui.Options{
		Root:         cfg.Root,
		Version:      cfg.Version,
		Core:         core.NewState(cfg.Core, core.NewRegistry(cfg.Cores)),
		Settings:     cfg.Settings,
		SettingFlags: flags,
		Watcher:      watcher,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		CursorBlink:  true,
	})
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
