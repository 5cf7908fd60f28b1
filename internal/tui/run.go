// Package tui runs the desktop as a Bubble Tea program.
package tui

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/1broseidon/xpdesk/internal/config"
	"github.com/1broseidon/xpdesk/internal/desktop"
	"github.com/1broseidon/xpdesk/internal/ipc"
	"github.com/1broseidon/xpdesk/internal/logging"
)

// RunOptions configures Run.
type RunOptions struct {
	// ConfigPath overrides the default config location.
	ConfigPath string
	// NoIPC skips the control socket even when the config enables it.
	NoIPC bool
}

func requireTTY() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("xpdesk requires an interactive terminal (stdin/stdout must be TTYs)")
	}
	return nil
}

func resolveConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return config.DefaultConfigPath()
}

// Run starts the desktop and blocks until the user quits.
func Run(opts RunOptions) error {
	if err := requireTTY(); err != nil {
		return err
	}
	path, err := resolveConfigPath(opts.ConfigPath)
	if err != nil {
		return err
	}
	res, err := config.LoadFromPath(path)
	if err != nil {
		return err
	}
	cfg := res.Config

	logger, err := logging.NewLogger(cfg.LogConfig())
	if err != nil {
		return err
	}
	defer logger.Close()

	// The alt screen owns the terminal; process messages go to the log file.
	log.SetOutput(logger)
	defer log.SetOutput(os.Stderr)

	lipgloss.SetColorProfile(termenv.EnvColorProfile())

	viewport := cfg.HeadlessViewport()
	if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		viewport = newGrid(cfg.CellSize()).viewport(cols, rows)
	}
	store := desktop.NewStore(viewport, logger)

	m := newModel(Options{
		Config:     cfg,
		ConfigPath: path,
		Logger:     logger,
		Store:      store,
	})
	p := tea.NewProgram(m, programOptions(cfg)...)

	// Dispatches from the IPC goroutines must not block on the program loop.
	store.Subscribe(func(desktop.Msg, desktop.Result) {
		go p.Send(storeChangedMsg{})
	})

	if cfg.IPC.Enabled && !opts.NoIPC {
		reload := func() error {
			res, err := config.LoadFromPath(path)
			if err != nil {
				return err
			}
			go p.Send(configLoadedMsg{cfg: res.Config})
			return nil
		}
		srv, err := ipc.NewServer(store, reload, logger)
		if err != nil {
			return err
		}
		if err := srv.Start(); err != nil {
			if !errors.Is(err, ipc.ErrSessionRunning) {
				return err
			}
			log.Printf("IPC disabled: %v", err)
		} else {
			defer srv.Stop()
		}
	}

	if cfg.WatchConfig {
		stop, err := watchConfig(path, p.Send)
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			defer stop()
		}
	}

	_, err = p.Run()
	return err
}

func programOptions(cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.MouseMode == "cell" {
		return append(opts, tea.WithMouseCellMotion())
	}
	return append(opts, tea.WithMouseAllMotion())
}

// editorModel hosts the settings editor on its own, for `config edit`.
type editorModel struct {
	settings Settings
	width    int
	height   int
}

func (e editorModel) Init() tea.Cmd {
	return nil
}

func (e editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		if !e.settings.Active() {
			return e, e.settings.Start(e.width)
		}
		return e, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return e, tea.Quit
		}
	case settingsSavedMsg:
		return e, nil
	}

	wasActive := e.settings.Active()
	var cmd tea.Cmd
	e.settings, cmd = e.settings.Update(msg)
	if wasActive && !e.settings.Active() {
		return e, tea.Quit
	}
	return e, cmd
}

func (e editorModel) View() string {
	if e.width == 0 || e.height == 0 {
		return ""
	}
	return e.settings.View(e.width, e.height)
}

// RunSettings edits the config at path (default location when empty) and
// calls reload after a successful save. reload may be nil.
func RunSettings(path string, reload func() error) error {
	if err := requireTTY(); err != nil {
		return err
	}
	path, err := resolveConfigPath(path)
	if err != nil {
		return err
	}
	res, err := config.LoadFromPath(path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(editorModel{settings: NewSettings(res.Config, path, reload)}, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
