package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/1broseidon/xpdesk/internal/config"
	"github.com/1broseidon/xpdesk/internal/desktop"
	"github.com/1broseidon/xpdesk/internal/dialog"
	"github.com/1broseidon/xpdesk/internal/explorer"
	"github.com/1broseidon/xpdesk/internal/geometry"
	"github.com/1broseidon/xpdesk/internal/startmenu"
)

type fakeLauncher struct {
	opened []string
	copied []string
}

func (f *fakeLauncher) OpenURL(url string) error {
	f.opened = append(f.opened, url)
	return nil
}

func (f *fakeLauncher) CopyText(text string) error {
	f.copied = append(f.copied, text)
	return nil
}

var testNow = time.Date(2026, 10, 18, 13, 5, 0, 0, time.UTC)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Timers.PreloaderMS = 0
	cfg.AssetsDir = "/nonexistent"
	return cfg
}

// newTestModel returns a 128×40 desktop, a 1280×800 viewport at the
// default cell size.
func newTestModel(t *testing.T, cfg *config.Config) (*model, *fakeLauncher) {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	launcher := &fakeLauncher{}
	m := newModel(Options{
		Config:     cfg,
		ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
		Launcher:   launcher,
		Now:        func() time.Time { return testNow },
	})
	m.Update(tea.WindowSizeMsg{Width: 128, Height: 40})
	return m, launcher
}

func mouse(m *model, action tea.MouseAction, p geometry.Point) tea.Cmd {
	_, cmd := m.Update(tea.MouseMsg{X: p.X, Y: p.Y, Action: action, Button: tea.MouseButtonLeft})
	return cmd
}

func click(m *model, p geometry.Point) tea.Cmd {
	cmd := mouse(m, tea.MouseActionPress, p)
	mouse(m, tea.MouseActionRelease, p)
	return cmd
}

func center(r geometry.Rect) geometry.Point {
	return geometry.Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func openExplorer(t *testing.T, m *model) (desktop.WindowState, *windowView) {
	t.Helper()
	res := m.store.Dispatch(desktop.OpenMsg{Name: desktop.ExplorerTitle})
	m.Update(storeChangedMsg{})
	w, ok := m.store.Window(res.ID)
	if !ok {
		t.Fatalf("window %s not in store", res.ID)
	}
	v, ok := m.windows[res.ID]
	if !ok || !v.explorer() {
		t.Fatalf("no explorer view for %s", res.ID)
	}
	return w, v
}

func explorerLayoutFor(m *model, w desktop.WindowState) (geometry.Rect, explorerLayout) {
	r := m.windowCells(w, m.viewport())
	return r, layoutExplorer(contentRect(r))
}

func TestModel_ResizeSetsViewport(t *testing.T) {
	m, _ := newTestModel(t, nil)
	got := m.store.Snapshot().Viewport
	if got != (geometry.Size{Width: 1280, Height: 800}) {
		t.Fatalf("viewport = %+v, want 1280x800", got)
	}

	m.Update(tea.WindowSizeMsg{Width: 64, Height: 20})
	if got := m.store.Snapshot().Viewport; got != (geometry.Size{Width: 640, Height: 400}) {
		t.Fatalf("viewport after resize = %+v, want 640x400", got)
	}
}

func TestModel_IconOpensAfterDelay(t *testing.T) {
	m, _ := newTestModel(t, nil)
	icon := m.grid.iconCells()[1] // My Computer

	cmd := click(m, center(icon))
	if cmd == nil {
		t.Fatalf("expected a delayed open command")
	}
	if m.selectedIcon != 1 {
		t.Fatalf("selectedIcon = %d, want 1", m.selectedIcon)
	}
	if n := len(m.store.Snapshot().Windows); n != 0 {
		t.Fatalf("window opened before the delay: %d windows", n)
	}

	m.Update(iconOpenMsg{seq: m.iconSeq, name: "My Computer"})
	snap := m.store.Snapshot()
	if len(snap.Windows) != 1 || snap.Windows[0].Title != "My Computer" {
		t.Fatalf("windows = %+v", snap.Windows)
	}
	if m.selectedIcon != -1 {
		t.Fatalf("selection not cleared after open")
	}
}

func TestModel_IconOpenWithoutDelay(t *testing.T) {
	cfg := testConfig()
	cfg.Timers.IconOpenDelayMS = 0
	m, _ := newTestModel(t, cfg)

	cmd := click(m, center(m.grid.iconCells()[1]))
	if cmd == nil {
		t.Fatalf("expected an open command")
	}
	m.Update(cmd())
	if n := len(m.store.Snapshot().Windows); n != 1 {
		t.Fatalf("windows = %d, want 1", n)
	}
}

func TestModel_StaleIconOpenIgnored(t *testing.T) {
	m, _ := newTestModel(t, nil)
	icon := center(m.grid.iconCells()[1])

	click(m, icon)
	stale := m.iconSeq
	click(m, icon)

	m.Update(iconOpenMsg{seq: stale, name: "My Computer"})
	if n := len(m.store.Snapshot().Windows); n != 0 {
		t.Fatalf("stale open created %d windows", n)
	}
	m.Update(iconOpenMsg{seq: m.iconSeq, name: "My Computer"})
	if n := len(m.store.Snapshot().Windows); n != 1 {
		t.Fatalf("windows = %d, want 1", n)
	}
}

func TestModel_DecorativeIconsDoNothing(t *testing.T) {
	m, _ := newTestModel(t, nil)
	for i, icon := range desktop.Icons {
		if icon.Openable() {
			continue
		}
		t.Run(icon.Name, func(t *testing.T) {
			if cmd := click(m, center(m.grid.iconCells()[i])); cmd != nil {
				t.Fatalf("decorative icon returned a command")
			}
			if m.selectedIcon != -1 {
				t.Fatalf("decorative icon selected")
			}
		})
	}
}

func TestModel_DragTitleBar(t *testing.T) {
	m, _ := newTestModel(t, nil)
	w, _ := openExplorer(t, m)
	r := m.windowCells(w, m.viewport())

	press := geometry.Point{X: r.X + 10, Y: r.Y}
	mouse(m, tea.MouseActionPress, press)
	mouse(m, tea.MouseActionMotion, geometry.Point{X: press.X + 20, Y: press.Y + 5})
	mouse(m, tea.MouseActionRelease, geometry.Point{X: press.X + 20, Y: press.Y + 5})

	got, _ := m.store.Window(w.ID)
	want := geometry.Point{X: w.Position.X + 200, Y: w.Position.Y + 100}
	if got.Position != want {
		t.Fatalf("position = %+v, want %+v", got.Position, want)
	}
	if n := m.doc.TotalListeners(); n != 0 {
		t.Fatalf("%d listeners left after release", n)
	}

	// Motion after release does nothing.
	mouse(m, tea.MouseActionMotion, geometry.Point{X: 0, Y: 0})
	if after, _ := m.store.Window(w.ID); after.Position != want {
		t.Fatalf("moved after release: %+v", after.Position)
	}
}

func TestModel_DragClampsToViewport(t *testing.T) {
	m, _ := newTestModel(t, nil)
	w, _ := openExplorer(t, m)
	r := m.windowCells(w, m.viewport())

	mouse(m, tea.MouseActionPress, geometry.Point{X: r.X + 10, Y: r.Y})
	mouse(m, tea.MouseActionMotion, geometry.Point{X: 127, Y: 39})
	mouse(m, tea.MouseActionRelease, geometry.Point{X: 127, Y: 39})

	got, _ := m.store.Window(w.ID)
	want := geometry.Point{X: 1280 - 800, Y: 800 - 600}
	if got.Position != want {
		t.Fatalf("position = %+v, want %+v", got.Position, want)
	}
}

func TestModel_ContentPressDoesNotDrag(t *testing.T) {
	m, _ := newTestModel(t, nil)
	first := m.store.Dispatch(desktop.OpenMsg{Name: "Notes"})
	second := m.store.Dispatch(desktop.OpenMsg{Name: "Paint"})
	m.Update(storeChangedMsg{})

	w, _ := m.store.Window(first.ID)
	r := m.windowCells(w, m.viewport())
	// The lower window is only exposed at its top-left corner.
	p := geometry.Point{X: r.X + 1, Y: r.Y + 1}
	mouse(m, tea.MouseActionPress, p)
	mouse(m, tea.MouseActionMotion, geometry.Point{X: p.X + 5, Y: p.Y + 5})
	mouse(m, tea.MouseActionRelease, geometry.Point{X: p.X + 5, Y: p.Y + 5})

	snap := m.store.Snapshot()
	if snap.ActiveID != first.ID {
		t.Fatalf("active = %s, want %s (second was %s)", snap.ActiveID, first.ID, second.ID)
	}
	if got, _ := m.store.Window(first.ID); got.Position != w.Position {
		t.Fatalf("content press moved the window to %+v", got.Position)
	}
}

func TestModel_CloseButton(t *testing.T) {
	m, _ := newTestModel(t, nil)
	w, v := openExplorer(t, m)
	m.openDialog(v, explorer.KindAbout)

	_, _, closeBtn := titleButtons(m.windowCells(w, m.viewport()))
	// The dialog backdrop is in the way until it is dismissed.
	click(m, geometry.Point{X: 0, Y: 0})
	click(m, center(closeBtn))

	if n := len(m.store.Snapshot().Windows); n != 0 {
		t.Fatalf("windows = %d after close", n)
	}
	if _, ok := m.windows[w.ID]; ok {
		t.Fatalf("view not torn down")
	}
	if n := m.doc.TotalListeners(); n != 0 {
		t.Fatalf("%d listeners leaked", n)
	}
}

func TestModel_ExplorerNavigation(t *testing.T) {
	m, _ := newTestModel(t, nil)
	w, v := openExplorer(t, m)
	_, l := explorerLayoutFor(m, w)

	entries := v.nav.Entries()
	work := -1
	for i, e := range entries {
		if e.Name == "Work" {
			work = i
		}
	}
	if work < 0 {
		t.Fatalf("no Work folder in %+v", entries)
	}

	click(m, center(l.tile(work)))
	if got := v.nav.Path(); got != `C:\Work` {
		t.Fatalf("path = %q, want C:\\Work", got)
	}

	click(m, center(l.back))
	if got := v.nav.Path(); got != `C:\` {
		t.Fatalf("path after back = %q", got)
	}
}

func TestModel_FileOpensCenteredDialog(t *testing.T) {
	m, _ := newTestModel(t, nil)
	w, v := openExplorer(t, m)
	_, l := explorerLayoutFor(m, w)

	click(m, center(l.tile(0))) // About.txt
	inst, ok := v.presenter.Get(explorer.KindAbout)
	if !ok {
		t.Fatalf("About dialog not open")
	}
	if inst.Size.Width != 400 {
		t.Fatalf("dialog width = %d, want 400", inst.Size.Width)
	}
	if want := geometry.Center(inst.Size, m.viewport()); inst.Position != want {
		t.Fatalf("dialog at %+v, want %+v", inst.Position, want)
	}
	if v.nav.Selected() != "About.txt" {
		t.Fatalf("selected = %q", v.nav.Selected())
	}

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "About - Notepad") {
		t.Fatalf("view missing dialog title")
	}

	// Backdrop press closes the dialog without touching the explorer.
	click(m, geometry.Point{X: 0, Y: 0})
	if v.presenter.IsOpen(explorer.KindAbout) {
		t.Fatalf("backdrop press did not close the dialog")
	}
}

func TestModel_DialogDrag(t *testing.T) {
	m, _ := newTestModel(t, nil)
	_, v := openExplorer(t, m)
	m.openDialog(v, explorer.KindContact)
	inst, _ := v.presenter.Get(explorer.KindContact)
	start := inst.Position
	r := m.grid.cells(inst.Bounds())

	press := geometry.Point{X: r.X + 2, Y: r.Y}
	mouse(m, tea.MouseActionPress, press)
	if !inst.Dragging() {
		t.Fatalf("title bar press did not start a drag")
	}
	mouse(m, tea.MouseActionMotion, geometry.Point{X: press.X - 3, Y: press.Y + 1})
	mouse(m, tea.MouseActionRelease, geometry.Point{X: press.X - 3, Y: press.Y + 1})

	want := geometry.Point{X: start.X - 30, Y: start.Y + 20}
	if inst.Position != want {
		t.Fatalf("dialog at %+v, want %+v", inst.Position, want)
	}
	if inst.Dragging() {
		t.Fatalf("still dragging after release")
	}
}

func TestModel_DialogButtonsDoNotDrag(t *testing.T) {
	for _, name := range []string{"minimize", "maximize"} {
		t.Run(name, func(t *testing.T) {
			m, _ := newTestModel(t, nil)
			_, v := openExplorer(t, m)
			m.openDialog(v, explorer.KindAbout)
			inst, _ := v.presenter.Get(explorer.KindAbout)
			start := inst.Position

			minimize, maximize, _ := titleButtons(m.grid.cells(inst.Bounds()))
			btn := minimize
			if name == "maximize" {
				btn = maximize
			}
			press := center(btn)
			mouse(m, tea.MouseActionPress, press)
			if inst.Dragging() {
				t.Fatalf("%s press started a drag", name)
			}
			mouse(m, tea.MouseActionMotion, geometry.Point{X: press.X - 3, Y: press.Y + 2})
			mouse(m, tea.MouseActionRelease, geometry.Point{X: press.X - 3, Y: press.Y + 2})

			if inst.Position != start {
				t.Fatalf("dialog moved to %+v, want %+v", inst.Position, start)
			}
			if _, ok := v.presenter.Get(explorer.KindAbout); !ok {
				t.Fatalf("%s press closed the dialog", name)
			}
			if n := m.doc.TotalListeners(); n != 0 {
				t.Fatalf("%d listeners after %s press", n, name)
			}
		})
	}
}

func TestModel_DialogLinkUsesLauncher(t *testing.T) {
	m, launcher := newTestModel(t, nil)
	_, v := openExplorer(t, m)
	m.openDialog(v, explorer.KindContact)
	inst, _ := v.presenter.Get(explorer.KindContact)
	body := dialogBody(m.grid.cells(inst.Bounds()))

	rendered := m.renderer.Render(explorer.KindContact, body.Width)
	line := -1
	for i := range rendered.Lines {
		if a, ok := rendered.ActionAt(i); ok && a.Kind == dialog.ActionLink && a.Link.Kind == explorer.LinkEmail {
			line = i
			break
		}
	}
	if line < 0 {
		t.Fatalf("no e-mail link in contact body")
	}

	v.scroll[explorer.KindContact] = line
	click(m, geometry.Point{X: body.X + 1, Y: body.Y})

	if len(launcher.copied) != 1 || launcher.copied[0] != explorer.DefaultOwner.Email {
		t.Fatalf("copied = %v", launcher.copied)
	}
	if !strings.Contains(m.status, explorer.DefaultOwner.Email) {
		t.Fatalf("status = %q", m.status)
	}
}

func TestModel_PreviewConsumesClicks(t *testing.T) {
	m, _ := newTestModel(t, nil)
	_, v := openExplorer(t, m)
	v.presenter.OpenPreview(explorer.Image{Src: "/london/1.png", Alt: "London 1"})

	area, closeBtn := previewLayout(128, 40)
	click(m, center(area))
	if _, ok := v.presenter.Preview(); !ok {
		t.Fatalf("press on the image closed the preview")
	}
	if n := len(m.store.Snapshot().Windows); n != 1 {
		t.Fatalf("preview let a press through")
	}

	click(m, center(closeBtn))
	if _, ok := v.presenter.Preview(); ok {
		t.Fatalf("close button did not close the preview")
	}
}

func TestModel_StartMenu(t *testing.T) {
	m, _ := newTestModel(t, nil)
	vp := m.viewport()
	start := center(startButton(m.grid.taskbar(vp)))

	click(m, start)
	if !m.menu.IsOpen() {
		t.Fatalf("start button did not open the menu")
	}
	click(m, start)
	if m.menu.IsOpen() {
		t.Fatalf("second start press did not close the menu")
	}

	click(m, start)
	click(m, geometry.Point{X: 100, Y: 2})
	if m.menu.IsOpen() {
		t.Fatalf("outside click did not close the menu")
	}
	if n := m.doc.TotalListeners(); n != 0 {
		t.Fatalf("%d listeners left with the menu closed", n)
	}

	click(m, start)
	item := -1
	for i, it := range startmenu.Items {
		if it.Name == desktop.ExplorerTitle {
			item = i
		}
	}
	p := center(m.grid.cells(startmenu.ItemRect(item, vp)))
	mouse(m, tea.MouseActionMotion, p)
	if _, hovered, ok := m.menu.Hovered(); !ok || hovered != item {
		t.Fatalf("hovered = %d, want %d", hovered, item)
	}
	click(m, p)
	if m.menu.IsOpen() {
		t.Fatalf("menu still open after selecting %s", desktop.ExplorerTitle)
	}
	snap := m.store.Snapshot()
	if len(snap.Windows) != 1 || snap.Windows[0].Title != desktop.ExplorerTitle {
		t.Fatalf("windows = %+v", snap.Windows)
	}
}

func TestModel_TaskbarActivates(t *testing.T) {
	m, _ := newTestModel(t, nil)
	first := m.store.Dispatch(desktop.OpenMsg{Name: "Notes"})
	m.store.Dispatch(desktop.OpenMsg{Name: "Paint"})
	m.Update(storeChangedMsg{})

	buttons := taskButtons(m.grid.taskbar(m.viewport()), 2)
	if len(buttons) != 2 {
		t.Fatalf("task buttons = %d", len(buttons))
	}
	click(m, center(buttons[0]))
	if got := m.store.Snapshot().ActiveID; got != first.ID {
		t.Fatalf("active = %s, want %s", got, first.ID)
	}
}

func TestModel_EscapeOrder(t *testing.T) {
	m, _ := newTestModel(t, nil)
	_, v := openExplorer(t, m)
	m.openDialog(v, explorer.KindAbout)
	v.presenter.OpenPreview(explorer.Image{Src: "/bus/1.png", Alt: "FirstBus 1"})
	m.menu.Open(m.viewport())

	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m.Update(esc)
	if _, ok := v.presenter.Preview(); ok {
		t.Fatalf("esc did not close the preview first")
	}
	if !v.presenter.IsOpen(explorer.KindAbout) || !m.menu.IsOpen() {
		t.Fatalf("esc closed more than the preview")
	}

	m.Update(esc)
	if v.presenter.IsOpen(explorer.KindAbout) {
		t.Fatalf("esc did not close the dialog")
	}

	m.Update(esc)
	if m.menu.IsOpen() {
		t.Fatalf("esc did not close the menu")
	}
}

func TestModel_Keys(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.showHelp {
		t.Fatalf("? did not show help")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}

func TestModel_SettingsOverlayBlocksMouse(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	if !m.settings.Active() {
		t.Fatalf("ctrl+e did not open settings")
	}

	click(m, center(m.grid.iconCells()[1]))
	if m.selectedIcon != -1 {
		t.Fatalf("mouse reached the desktop under the settings overlay")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.settings.Active() {
		t.Fatalf("esc did not close settings")
	}
}

func TestModel_PreloaderBlocksInput(t *testing.T) {
	cfg := testConfig()
	cfg.Timers.PreloaderMS = 2000
	m, _ := newTestModel(t, cfg)
	if !m.loading {
		t.Fatalf("expected preloader")
	}
	if !strings.Contains(m.View(), "Loading") {
		t.Fatalf("preloader view missing")
	}

	click(m, center(m.grid.iconCells()[1]))
	if m.selectedIcon != -1 {
		t.Fatalf("press reached the desktop during the preloader")
	}

	m.Update(preloaderDoneMsg{})
	if m.loading {
		t.Fatalf("preloader still showing")
	}
}

func TestModel_ClockTick(t *testing.T) {
	m, _ := newTestModel(t, nil)
	later := testNow.Add(time.Hour)
	m.now = func() time.Time { return later }

	_, cmd := m.Update(clockTickMsg(later))
	if cmd == nil {
		t.Fatalf("clock tick not rescheduled")
	}
	if !strings.Contains(ansi.Strip(m.View()), "2:05 PM") {
		t.Fatalf("taskbar clock not updated")
	}
}

func TestModel_ApplyConfig(t *testing.T) {
	m, _ := newTestModel(t, nil)
	cfg := testConfig()
	cfg.Theme = "classic"
	cfg.CellWidth = 8
	cfg.Owner.Name = "Ada Lovelace"

	m.Update(settingsSavedMsg{cfg: cfg})
	if m.theme.Name != "classic" {
		t.Fatalf("theme = %q", m.theme.Name)
	}
	if got := m.store.Snapshot().Viewport.Width; got != 128*8 {
		t.Fatalf("viewport width = %d, want %d", got, 128*8)
	}
	if m.renderer.Owner().Name != "Ada Lovelace" {
		t.Fatalf("owner = %q", m.renderer.Owner().Name)
	}
	if m.status == "" {
		t.Fatalf("no status after save")
	}
}

func TestModel_StoreChangesFromOutside(t *testing.T) {
	m, _ := newTestModel(t, nil)
	res := m.store.Dispatch(desktop.OpenMsg{Name: desktop.ExplorerTitle})
	m.Update(storeChangedMsg{})
	if _, ok := m.windows[res.ID]; !ok {
		t.Fatalf("view not created for %s", res.ID)
	}

	m.store.Dispatch(desktop.CloseMsg{ID: res.ID})
	m.Update(storeChangedMsg{})
	if _, ok := m.windows[res.ID]; ok {
		t.Fatalf("view kept for closed window")
	}
}

func TestModel_ViewShowsDesktop(t *testing.T) {
	m, _ := newTestModel(t, nil)
	openExplorer(t, m)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 40 {
		t.Fatalf("view has %d lines, want 40", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 128 {
			t.Fatalf("line %d is %d cells wide", i, w)
		}
	}

	text := ansi.Strip(view)
	for _, want := range []string{"start", "1:05 PM", "My Computer", "About.txt", `C:\`} {
		if !strings.Contains(text, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
