package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/xpdesk/internal/config"
)

// settingsSavedMsg carries the config written by the settings editor.
type settingsSavedMsg struct {
	cfg *config.Config
}

// Settings edits the desktop configuration in a huh form, then shows the
// pending change as a diff before writing it.
type Settings struct {
	path     string
	original *config.Config
	draft    *config.Config
	reload   func() error

	editing bool
	form    *huh.Form
	save    SaveOverlay

	// Form-bound values (strings for huh, converted on submit)
	fTheme      string
	fMouseMode  string
	fLogLevel   string
	fCellWidth  string
	fCellHeight string
	fViewportW  string
	fViewportH  string
	fClockTick  string
	fPreloader  string
	fIconDelay  string
	fAssetsDir  string
	fOwnerName  string
	fOwnerEmail string
	fOwnerLink  string
	fIPC        bool
	fWatch      bool
}

// NewSettings creates an editor for cfg that saves to path. reload runs
// after a successful save and may be nil.
func NewSettings(cfg *config.Config, path string, reload func() error) Settings {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Settings{path: path, original: cloneConfig(cfg), reload: reload}
}

// Active reports whether the editor or its save overlay is showing.
func (s Settings) Active() bool {
	return s.editing || s.save.Active()
}

// SetConfig replaces the baseline the diff is computed against.
func (s *Settings) SetConfig(cfg *config.Config) {
	if cfg != nil && !s.Active() {
		s.original = cloneConfig(cfg)
	}
}

// Start opens the form seeded from the baseline config.
func (s *Settings) Start(width int) tea.Cmd {
	cfg := s.original
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s.fTheme = cfg.Theme
	s.fMouseMode = cfg.MouseMode
	s.fLogLevel = cfg.LogLevel
	s.fCellWidth = strconv.Itoa(cfg.CellWidth)
	s.fCellHeight = strconv.Itoa(cfg.CellHeight)
	s.fViewportW = strconv.Itoa(cfg.Viewport.Width)
	s.fViewportH = strconv.Itoa(cfg.Viewport.Height)
	s.fClockTick = strconv.Itoa(cfg.Timers.ClockTickMS)
	s.fPreloader = strconv.Itoa(cfg.Timers.PreloaderMS)
	s.fIconDelay = strconv.Itoa(cfg.Timers.IconOpenDelayMS)
	s.fAssetsDir = cfg.AssetsDir
	s.fOwnerName = cfg.Owner.Name
	s.fOwnerEmail = cfg.Owner.Email
	s.fOwnerLink = cfg.Owner.LinkedIn
	s.fIPC = cfg.IPC.Enabled
	s.fWatch = cfg.WatchConfig

	w := max(40, width-8)

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("theme").
				Title("Theme").
				Options(huh.NewOptions("luna", "classic")...).
				Value(&s.fTheme),
			huh.NewSelect[string]().
				Key("mouse_mode").
				Title("Mouse Mode").
				Description("all reports motion without a button held").
				Options(huh.NewOptions("all", "cell")...).
				Value(&s.fMouseMode),
			huh.NewSelect[string]().
				Key("log_level").
				Title("Log Level").
				Options(huh.NewOptions("debug", "info", "warning", "error")...).
				Value(&s.fLogLevel),
			huh.NewConfirm().
				Key("ipc").
				Title("Control Socket").
				Description("Serve xpdesk window commands while running").
				Value(&s.fIPC),
			huh.NewConfirm().
				Key("watch_config").
				Title("Watch Config").
				Description("Reload when the config file changes").
				Value(&s.fWatch),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("cell_width").
				Title("Cell Width").
				Description("Virtual pixels per terminal column").
				Validate(positiveInt).
				Value(&s.fCellWidth),
			huh.NewInput().
				Key("cell_height").
				Title("Cell Height").
				Description("Virtual pixels per terminal row").
				Validate(positiveInt).
				Value(&s.fCellHeight),
			huh.NewInput().
				Key("viewport_width").
				Title("Headless Viewport Width").
				Validate(positiveInt).
				Value(&s.fViewportW),
			huh.NewInput().
				Key("viewport_height").
				Title("Headless Viewport Height").
				Validate(positiveInt).
				Value(&s.fViewportH),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("clock_tick_ms").
				Title("Clock Tick (ms)").
				Validate(positiveInt).
				Value(&s.fClockTick),
			huh.NewInput().
				Key("preloader_ms").
				Title("Preloader (ms)").
				Validate(nonNegativeInt).
				Value(&s.fPreloader),
			huh.NewInput().
				Key("icon_open_delay_ms").
				Title("Icon Open Delay (ms)").
				Validate(nonNegativeInt).
				Value(&s.fIconDelay),
			huh.NewInput().
				Key("assets_dir").
				Title("Assets Directory").
				Description("Icons and screenshots; empty uses placeholders").
				Value(&s.fAssetsDir),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("owner_name").
				Title("Owner Name").
				Value(&s.fOwnerName),
			huh.NewInput().
				Key("owner_email").
				Title("Owner Email").
				Value(&s.fOwnerEmail),
			huh.NewInput().
				Key("owner_linkedin").
				Title("Owner LinkedIn").
				Value(&s.fOwnerLink),
		),
	).WithWidth(w).WithShowHelp(true).WithShowErrors(true)

	s.editing = true
	return s.form.Init()
}

func positiveInt(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a whole number > 0")
	}
	return nil
}

func nonNegativeInt(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return fmt.Errorf("must be a whole number >= 0")
	}
	return nil
}

// applyForm copies the form values onto a clone of the baseline.
func (s *Settings) applyForm() *config.Config {
	cfg := cloneConfig(s.original)
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	atoi := func(v string, dst *int) {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}

	if s.fTheme != "" {
		cfg.Theme = s.fTheme
	}
	if s.fMouseMode != "" {
		cfg.MouseMode = s.fMouseMode
	}
	if s.fLogLevel != "" {
		cfg.LogLevel = s.fLogLevel
	}
	atoi(s.fCellWidth, &cfg.CellWidth)
	atoi(s.fCellHeight, &cfg.CellHeight)
	atoi(s.fViewportW, &cfg.Viewport.Width)
	atoi(s.fViewportH, &cfg.Viewport.Height)
	atoi(s.fClockTick, &cfg.Timers.ClockTickMS)
	atoi(s.fPreloader, &cfg.Timers.PreloaderMS)
	atoi(s.fIconDelay, &cfg.Timers.IconOpenDelayMS)
	cfg.AssetsDir = strings.TrimSpace(s.fAssetsDir)
	cfg.Owner.Name = strings.TrimSpace(s.fOwnerName)
	cfg.Owner.Email = strings.TrimSpace(s.fOwnerEmail)
	cfg.Owner.LinkedIn = strings.TrimSpace(s.fOwnerLink)
	cfg.IPC.Enabled = s.fIPC
	cfg.WatchConfig = s.fWatch
	return cfg
}

// Update routes input to the form or to the save overlay.
func (s Settings) Update(msg tea.Msg) (Settings, tea.Cmd) {
	if s.save.Active() {
		prev := s.save.phase
		s.save = s.save.Update(msg, s.draft, s.path, s.reload)
		if prev == savePreview && s.save.SaveSucceeded() {
			s.original = cloneConfig(s.draft)
			saved := cloneConfig(s.draft)
			return s, func() tea.Msg { return settingsSavedMsg{cfg: saved} }
		}
		return s, nil
	}
	if !s.editing {
		return s, nil
	}

	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		s.editing = false
		s.form = nil
		return s, nil
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	switch s.form.State {
	case huh.StateCompleted:
		s.draft = s.applyForm()
		s.editing = false
		s.form = nil
		s.save.Show(s.original, s.draft)
		return s, nil
	case huh.StateAborted:
		s.editing = false
		s.form = nil
		return s, nil
	}
	return s, cmd
}

// View renders the editor centered in a width×height area.
func (s Settings) View(width, height int) string {
	if s.save.Active() {
		return s.save.View(width, height)
	}
	if !s.editing || s.form == nil {
		return ""
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("62")).
		Bold(true).
		Render("Desktop Settings") +
		lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("  (esc to cancel)")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Render(header + "\n\n" + s.form.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
