package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/xpdesk/internal/desktop"
	"github.com/1broseidon/xpdesk/internal/dialog"
	"github.com/1broseidon/xpdesk/internal/drag"
	"github.com/1broseidon/xpdesk/internal/explorer"
	"github.com/1broseidon/xpdesk/internal/geometry"
	"github.com/1broseidon/xpdesk/internal/pointer"
	"github.com/1broseidon/xpdesk/internal/startmenu"
)

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	p := geometry.Point{X: msg.X, Y: msg.Y}
	px := m.grid.pixel(msg.X, msg.Y)
	vp := m.viewport()

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress {
			m.wheel(p, msg.Button)
		}
		return nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.doc.Dispatch(pointer.Event{Kind: pointer.EventMove, Pos: px, Viewport: vp})
		if m.menu.IsOpen() {
			m.menu.Hover(m.grid.menuItemAt(p, vp))
		}
		return nil
	case tea.MouseActionRelease:
		m.startPressed = false
		m.doc.Dispatch(pointer.Event{Kind: pointer.EventRelease, Pos: px, Viewport: vp})
		return nil
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		return m.press(p, px, vp)
	}
	return nil
}

// press routes a left press top-down through the paint layers.
func (m *model) press(p, px geometry.Point, vp geometry.Size) tea.Cmd {
	if v := m.previewView(); v != nil {
		cols, rows := m.cellsize()
		img, closeBtn := previewLayout(cols, rows)
		if closeBtn.Contains(p) || !img.Contains(p) {
			v.presenter.ClosePreview()
		}
		return nil
	}

	if m.menu.IsOpen() && m.grid.cells(startmenu.Bounds(vp)).Contains(p) {
		return m.pressMenu(p, vp)
	}

	bar := m.grid.taskbar(vp)
	if startButton(bar).Contains(p) {
		m.startPressed = true
		m.menu.Toggle(vp)
		return nil
	}

	m.doc.Dispatch(pointer.Event{Kind: pointer.EventClick, Pos: px, Viewport: vp})

	if bar.Contains(p) {
		m.pressTaskbar(p, bar)
		return nil
	}

	snap := m.store.Snapshot()
	stack := snap.Stack()
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		v, ok := m.windows[w.ID]
		if !ok {
			continue
		}
		if v.explorer() && v.presenter.Len() > 0 {
			return m.pressDialogs(v, w, p, px, vp)
		}
		r := m.windowCells(w, snap.Viewport)
		if r.Contains(p) {
			return m.pressWindow(v, w, r, p, px, vp)
		}
	}

	return m.pressDesktop(p)
}

func (m *model) pressMenu(p geometry.Point, vp geometry.Size) tea.Cmd {
	if i := m.grid.menuItemAt(p, vp); i >= 0 {
		if name, ok := m.menu.Select(i); ok {
			m.store.Dispatch(desktop.OpenMsg{Name: name})
		}
		return nil
	}
	if a := m.grid.menuFooterAt(p, vp); a != startmenu.FooterNone {
		m.menu.Footer(a)
		return m.setStatus(a.String())
	}
	return nil
}

func (m *model) pressTaskbar(p geometry.Point, bar geometry.Rect) {
	snap := m.store.Snapshot()
	for i, r := range taskButtons(bar, len(snap.Windows)) {
		if r.Contains(p) {
			m.store.Dispatch(desktop.ActivateMsg{ID: snap.Windows[i].ID})
			return
		}
	}
}

// windowCells is the cell rectangle a window is drawn in.
func (m *model) windowCells(w desktop.WindowState, vp geometry.Size) geometry.Rect {
	return m.grid.cells(geometry.RectAt(w.Position, geometry.RenderSize(w.Size, vp)))
}

func (m *model) pressWindow(v *windowView, w desktop.WindowState, r geometry.Rect, p, px geometry.Point, vp geometry.Size) tea.Cmd {
	target := windowTarget{store: m.store, id: w.ID}
	minimize, maximize, closeBtn := titleButtons(r)
	switch {
	case closeBtn.Contains(p):
		v.tracker.Cancel()
		m.store.Dispatch(desktop.CloseMsg{ID: w.ID})
	case minimize.Contains(p), maximize.Contains(p):
		v.tracker.Press(target, drag.RegionButton, px, vp)
	case titleBar(r).Contains(p):
		v.tracker.Press(target, drag.RegionTitleBar, px, vp)
	default:
		v.tracker.Press(target, drag.RegionContent, px, vp)
		if v.explorer() {
			m.pressExplorer(v, contentRect(r), p)
		}
	}
	return nil
}

func (m *model) pressExplorer(v *windowView, content geometry.Rect, p geometry.Point) {
	l := layoutExplorer(content)
	if l.back.Contains(p) {
		v.nav.NavigateUp()
		return
	}
	entries := v.nav.Entries()
	i := l.tileAt(p, len(entries))
	if i < 0 {
		return
	}
	if k, ok := v.nav.Select(entries[i].Name); ok {
		m.openDialog(v, k)
	}
}

// measureDialog returns the pixel size dialog k is mounted with: its fixed
// width, and a height fitting the rendered body up to 80% of the rows.
func (m *model) measureDialog(k explorer.Kind) geometry.Size {
	cols := max(8, m.grid.cols(dialog.Width(k, m.viewport())))
	body := m.renderer.Render(k, cols-4)
	_, rows := m.cellsize()
	maxBody := max(1, rows*4/5-titleRows-1)
	h := titleRows + min(max(1, body.Height()), maxBody) + 1
	return geometry.Size{Width: cols * m.grid.cell.Width, Height: h * m.grid.cell.Height}
}

func (m *model) openDialog(v *windowView, k explorer.Kind) {
	if v.presenter.Open(k, m.measureDialog(k), m.viewport()) {
		v.scroll[k] = 0
	}
}

// pressDialogs handles a press while v has dialogs open. The top dialog's
// backdrop covers everything painted below it, so a press outside every
// dialog closes the top one.
func (m *model) pressDialogs(v *windowView, w desktop.WindowState, p, px geometry.Point, vp geometry.Size) tea.Cmd {
	if !w.IsActive {
		m.store.Dispatch(desktop.ActivateMsg{ID: w.ID})
	}
	stack := v.presenter.Stack()
	for i := len(stack) - 1; i >= 0; i-- {
		inst := stack[i]
		r := m.grid.cells(inst.Bounds())
		if !r.Contains(p) {
			continue
		}
		minimize, maximize, closeBtn := titleButtons(r)
		switch {
		case closeBtn.Contains(p):
			v.presenter.Close(inst.Kind)
		case minimize.Contains(p), maximize.Contains(p):
			v.presenter.Press(inst.Kind, drag.RegionButton, px, vp)
		case titleBar(r).Contains(p):
			v.presenter.Press(inst.Kind, drag.RegionTitleBar, px, vp)
		default:
			v.presenter.Press(inst.Kind, drag.RegionContent, px, vp)
			return m.pressDialogBody(v, inst.Kind, dialogBody(r), p)
		}
		return nil
	}
	if top, ok := v.presenter.Top(); ok {
		v.presenter.Close(top.Kind)
	}
	return nil
}

func (m *model) pressDialogBody(v *windowView, k explorer.Kind, body geometry.Rect, p geometry.Point) tea.Cmd {
	if !body.Contains(p) {
		return nil
	}
	line := v.scroll[k] + p.Y - body.Y
	a, ok := m.renderer.Render(k, body.Width).ActionAt(line)
	if !ok {
		return nil
	}
	switch a.Kind {
	case dialog.ActionImage:
		v.presenter.OpenPreview(a.Image)
		return nil
	default:
		if err := dialog.Follow(m.launcher, a.Link); err != nil {
			return m.setStatus(err.Error())
		}
		if a.Link.Kind == explorer.LinkEmail {
			return m.setStatus(fmt.Sprintf("Copied %s", a.Link.Target))
		}
		return m.setStatus(fmt.Sprintf("Opening %s", a.Link.Label))
	}
}

const wheelStep = 3

// wheel scrolls the body of the topmost dialog under p.
func (m *model) wheel(p geometry.Point, button tea.MouseButton) {
	if m.previewView() != nil {
		return
	}
	snap := m.store.Snapshot()
	stack := snap.Stack()
	for i := len(stack) - 1; i >= 0; i-- {
		v, ok := m.windows[stack[i].ID]
		if !ok || !v.explorer() || v.presenter.Len() == 0 {
			continue
		}
		dialogs := v.presenter.Stack()
		for j := len(dialogs) - 1; j >= 0; j-- {
			body := dialogBody(m.grid.cells(dialogs[j].Bounds()))
			if !body.Contains(p) {
				continue
			}
			k := dialogs[j].Kind
			lines := m.renderer.Render(k, body.Width).Height()
			off := v.scroll[k]
			switch button {
			case tea.MouseButtonWheelUp:
				off -= wheelStep
			case tea.MouseButtonWheelDown:
				off += wheelStep
			}
			v.scroll[k] = max(0, min(off, lines-body.Height))
			return
		}
		return
	}
}

func (m *model) pressDesktop(p geometry.Point) tea.Cmd {
	i := m.grid.iconAt(p)
	if i < 0 {
		return nil
	}
	icon := desktop.Icons[i]
	if !icon.Openable() {
		return nil
	}
	m.selectedIcon = i
	m.iconSeq++
	seq, name := m.iconSeq, icon.Name
	open := func(time.Time) tea.Msg { return iconOpenMsg{seq: seq, name: name} }
	if d := m.cfg.Timers.IconOpenDelay(); d > 0 {
		return tea.Tick(d, open)
	}
	return func() tea.Msg { return open(time.Time{}) }
}
