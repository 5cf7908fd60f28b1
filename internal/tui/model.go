package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/xpdesk/internal/assets"
	"github.com/1broseidon/xpdesk/internal/config"
	"github.com/1broseidon/xpdesk/internal/desktop"
	"github.com/1broseidon/xpdesk/internal/dialog"
	"github.com/1broseidon/xpdesk/internal/drag"
	"github.com/1broseidon/xpdesk/internal/explorer"
	"github.com/1broseidon/xpdesk/internal/geometry"
	"github.com/1broseidon/xpdesk/internal/logging"
	"github.com/1broseidon/xpdesk/internal/pointer"
	"github.com/1broseidon/xpdesk/internal/startmenu"
)

const statusTimeout = 3 * time.Second

// Messages driving the desktop besides terminal input.
type (
	clockTickMsg     time.Time
	preloaderDoneMsg struct{}
	storeChangedMsg  struct{}
	reloadConfigMsg  struct{}
	configLoadedMsg  struct{ cfg *config.Config }
	iconOpenMsg      struct {
		seq  int
		name string
	}
	statusClearMsg struct{ seq int }
)

// windowTarget adapts one registry window to drag.Target. Every call goes
// through the store so IPC changes are seen mid-drag.
type windowTarget struct {
	store *desktop.Store
	id    string
}

func (t windowTarget) Bounds() geometry.Rect {
	w, ok := t.store.Window(t.id)
	if !ok {
		return geometry.Rect{}
	}
	size, _ := t.store.RenderSize(t.id)
	return geometry.RectAt(w.Position, size)
}

func (t windowTarget) Active() bool {
	w, ok := t.store.Window(t.id)
	return ok && w.IsActive
}

func (t windowTarget) Activate() {
	t.store.Dispatch(desktop.ActivateMsg{ID: t.id})
}

func (t windowTarget) MoveTo(p geometry.Point) {
	t.store.Dispatch(desktop.MoveMsg{ID: t.id, Position: p})
}

// windowView is the UI state attached to one open window. Explorer windows
// also own a navigator and their dialogs.
type windowView struct {
	id        string
	tracker   *drag.Tracker
	nav       *explorer.Navigator
	presenter *dialog.Presenter
	scroll    map[explorer.Kind]int
}

func (v *windowView) explorer() bool {
	return v.nav != nil
}

// Options configures a desktop model.
type Options struct {
	Config     *config.Config
	ConfigPath string
	Logger     *logging.Logger
	// Store is shared with the IPC server; nil creates a private one.
	Store    *desktop.Store
	Launcher dialog.Launcher
	Now      func() time.Time
}

type model struct {
	cfg        *config.Config
	configPath string
	logger     *logging.Logger
	store      *desktop.Store
	doc        *pointer.Document
	menu       *startmenu.Menu
	assets     *assets.Resolver
	renderer   *dialog.Renderer
	launcher   dialog.Launcher
	theme      Theme
	keys       KeyMap
	help       help.Model
	showHelp   bool
	settings   Settings

	grid   grid
	width  int
	height int

	windows      map[string]*windowView
	selectedIcon int
	iconSeq      int
	startPressed bool
	loading      bool
	now          func() time.Time
	clock        time.Time
	status       string
	statusSeq    int
}

func newModel(opts Options) *model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	launcher := opts.Launcher
	if launcher == nil {
		launcher = dialog.SystemLauncher{}
	}
	store := opts.Store
	if store == nil {
		store = desktop.NewStore(cfg.HeadlessViewport(), opts.Logger)
	}
	doc := pointer.NewDocument()

	m := &model{
		configPath:   opts.ConfigPath,
		logger:       opts.Logger,
		store:        store,
		doc:          doc,
		menu:         startmenu.New(doc),
		launcher:     launcher,
		keys:         Keys,
		help:         help.New(),
		windows:      make(map[string]*windowView),
		selectedIcon: -1,
		now:          now,
		clock:        now(),
		loading:      cfg.Timers.PreloaderMS > 0,
	}
	m.settings = NewSettings(cfg, opts.ConfigPath, nil)
	m.setConfig(cfg)
	m.syncWindows()
	return m
}

// setConfig applies everything derived from cfg.
func (m *model) setConfig(cfg *config.Config) {
	m.cfg = cfg
	m.grid = newGrid(cfg.CellSize())
	m.theme = ThemeFor(cfg.Theme)
	m.renderer = dialog.NewRenderer(m.theme.Markdown, cfg.OwnerInfo())
	m.assets = assets.NewResolver(cfg.GetAssetsDir(), m.logger)
	m.settings.SetConfig(cfg)
}

// viewport is the pixel size of the terminal, or the headless fallback
// before the first size report.
func (m *model) viewport() geometry.Size {
	if m.width > 0 && m.height > 0 {
		return m.grid.viewport(m.width, m.height)
	}
	return m.cfg.HeadlessViewport()
}

// cellsize returns the terminal size in cells for the current viewport.
func (m *model) cellsize() (cols, rows int) {
	if m.width > 0 && m.height > 0 {
		return m.width, m.height
	}
	vp := m.viewport()
	return m.grid.cols(vp.Width), m.grid.rows(vp.Height)
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.clockTick()}
	if m.loading {
		cmds = append(cmds, tea.Tick(m.cfg.Timers.Preloader(), func(time.Time) tea.Msg {
			return preloaderDoneMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

func (m *model) clockTick() tea.Cmd {
	return tea.Tick(m.cfg.Timers.ClockTick(), func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.syncWindows()
	return m, cmd
}

func (m *model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil

	case clockTickMsg:
		m.clock = m.now()
		return m.clockTick()

	case preloaderDoneMsg:
		m.loading = false
		return nil

	case iconOpenMsg:
		if msg.seq != m.iconSeq || m.selectedIcon < 0 {
			return nil
		}
		m.store.Dispatch(desktop.OpenMsg{Name: msg.name})
		m.selectedIcon = -1
		return nil

	case storeChangedMsg:
		return nil

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return nil

	case reloadConfigMsg:
		return m.reloadConfig()

	case configLoadedMsg:
		m.applyConfig(msg.cfg)
		return nil

	case settingsSavedMsg:
		m.applyConfig(msg.cfg)
		return m.setStatus("Settings saved")
	}

	if m.settings.Active() {
		if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+c" {
			return tea.Quit
		}
		if _, ok := msg.(tea.MouseMsg); ok {
			return nil
		}
		var cmd tea.Cmd
		m.settings, cmd = m.settings.Update(msg)
		return cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.loading {
			return nil
		}
		return m.handleMouse(msg)
	}
	return nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Settings):
		return m.settings.Start(m.width)
	case key.Matches(msg, m.keys.Esc):
		m.escape()
	}
	return nil
}

// escape closes the topmost transient surface: the image preview, then the
// top dialog of the active window, then the start menu.
func (m *model) escape() {
	if v := m.previewView(); v != nil {
		v.presenter.ClosePreview()
		return
	}
	snap := m.store.Snapshot()
	if v, ok := m.windows[snap.ActiveID]; ok && v.explorer() {
		if top, ok := v.presenter.Top(); ok {
			v.presenter.Close(top.Kind)
			return
		}
	}
	m.menu.Close()
}

func (m *model) resize(width, height int) {
	m.width = width
	m.height = height
	vp := m.viewport()
	m.store.Dispatch(desktop.ResizeMsg{Viewport: vp})
	m.menu.SetViewport(vp)
	for _, v := range m.windows {
		v.tracker.SetViewport(vp)
		if v.presenter != nil {
			v.presenter.SetViewport(vp)
		}
	}
	m.help.Width = width
	m.doc.Dispatch(pointer.Event{Kind: pointer.EventResize, Viewport: vp})
}

// syncWindows creates views for new windows and tears down views whose
// window has closed.
func (m *model) syncWindows() {
	snap := m.store.Snapshot()
	live := make(map[string]bool, len(snap.Windows))
	for _, w := range snap.Windows {
		live[w.ID] = true
		if _, ok := m.windows[w.ID]; ok {
			continue
		}
		v := &windowView{id: w.ID, tracker: drag.NewTracker(m.doc)}
		if w.Title == desktop.ExplorerTitle {
			v.nav = explorer.NewNavigator(m.logger)
			v.presenter = dialog.NewPresenter(m.doc, m.logger)
			v.scroll = make(map[explorer.Kind]int)
		}
		m.windows[w.ID] = v
	}
	for id, v := range m.windows {
		if live[id] {
			continue
		}
		v.tracker.Cancel()
		if v.presenter != nil {
			v.presenter.CloseAll()
		}
		delete(m.windows, id)
	}
}

// previewView returns the explorer window whose image preview is showing.
func (m *model) previewView() *windowView {
	for _, v := range m.windows {
		if !v.explorer() {
			continue
		}
		if _, ok := v.presenter.Preview(); ok {
			return v
		}
	}
	return nil
}

func (m *model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.setConfig(cfg)
	m.logger.Log(logging.ActionConfigReload, m.configPath, map[string]interface{}{
		"theme": cfg.Theme,
		"tick":  cfg.Timers.ClockTick().String(),
	})
	if m.width > 0 && m.height > 0 {
		m.resize(m.width, m.height)
	}
}

func (m *model) reloadConfig() tea.Cmd {
	res, err := loadConfig(m.configPath)
	if err != nil {
		return m.setStatus("Config error: " + err.Error())
	}
	m.applyConfig(res.Config)
	return m.setStatus("Config reloaded")
}

// loadConfig reads path, or the default config location when path is empty.
func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.LoadWithSources()
	}
	return config.LoadFromPath(path)
}

// setStatus shows a notification balloon above the tray for a few seconds.
func (m *model) setStatus(s string) tea.Cmd {
	m.statusSeq++
	m.status = s
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
