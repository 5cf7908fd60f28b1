package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/1broseidon/xpdesk/internal/clock"
	"github.com/1broseidon/xpdesk/internal/desktop"
	"github.com/1broseidon/xpdesk/internal/dialog"
	"github.com/1broseidon/xpdesk/internal/geometry"
	"github.com/1broseidon/xpdesk/internal/startmenu"
)

// label renders plain text left-aligned in exactly w cells.
func label(style lipgloss.Style, s string, w int) string {
	if w <= 0 {
		return ""
	}
	return style.Render(runewidth.FillRight(runewidth.Truncate(s, w, "…"), w))
}

// centered renders plain text centered in exactly w cells.
func centered(style lipgloss.Style, s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, w, "…")
	pad := w - runewidth.StringWidth(s)
	return style.Render(strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2))
}

// fill returns a w×h block of blank cells in style.
func fill(style lipgloss.Style, w, h int) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	line := style.Render(strings.Repeat(" ", w))
	out := make([]string, h)
	for i := range out {
		out[i] = line
	}
	return out
}

func (m *model) View() string {
	cols, rows := m.width, m.height
	if cols <= 0 || rows <= 0 {
		return ""
	}
	if m.loading {
		return m.viewPreloader(cols, rows)
	}

	c := newCanvas(cols, rows, " ")
	c.place(fill(m.theme.Desktop, cols, rows), 0, 0)
	m.drawIcons(c)

	snap := m.store.Snapshot()
	for _, w := range snap.Stack() {
		v := m.windows[w.ID]
		m.drawWindow(c, v, w, snap.Viewport)
		if v != nil && v.explorer() {
			stack := v.presenter.Stack()
			for i, inst := range stack {
				m.drawDialog(c, v, inst, i == len(stack)-1)
			}
		}
	}

	vp := m.viewport()
	m.drawTaskbar(c, snap, vp)
	if m.menu.IsOpen() {
		m.drawMenu(c, vp)
	}
	if v := m.previewView(); v != nil {
		m.drawPreview(c, v)
	}
	if m.status != "" {
		m.drawBalloon(c, vp)
	}
	if m.showHelp {
		h := strings.Split(m.theme.Help.Render(m.help.View(m.keys)), "\n")
		c.place(h, 1, m.grid.taskbar(vp).Y-len(h))
	}

	out := c.String()
	if m.settings.Active() {
		out = Overlay(m.settings.View(cols, rows), out, 0, 0)
	}
	return out
}

func (m *model) viewPreloader(cols, rows int) string {
	splash := m.theme.Preloader.Render("xpdesk\n\nLoading...")
	return lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, splash,
		lipgloss.WithWhitespaceBackground(m.theme.Preloader.GetBackground()))
}

func (m *model) drawIcons(c *canvas) {
	for i, r := range m.grid.iconCells() {
		icon := desktop.Icons[i]
		artRows := max(0, r.Height-1)
		artCols := min(r.Width, artRows*2)
		c.place(m.assets.Image(icon.Asset, icon.Name, artCols, artRows), r.X+(r.Width-artCols)/2, r.Y)

		style := m.theme.IconLabel
		if i == m.selectedIcon {
			style = m.theme.IconSelected
		}
		c.place([]string{centered(style, icon.Name, r.Width)}, r.X, r.Y+r.Height-1)
	}
}

// drawFrame paints a title bar with buttons, side borders and a bottom
// border around a blank content area.
func (m *model) drawFrame(c *canvas, r geometry.Rect, title string, active bool, bg lipgloss.Style, buttons bool) {
	titleStyle, border := m.theme.TitleInactive, m.theme.BorderIdle
	if active {
		titleStyle, border = m.theme.TitleActive, m.theme.BorderActive
	}

	c.place([]string{label(titleStyle, " "+title, r.Width)}, r.X, r.Y)
	minimize, maximize, closeBtn := titleButtons(r)
	if buttons {
		c.place([]string{m.theme.Button.Render(" _ ")}, minimize.X, minimize.Y)
		c.place([]string{m.theme.Button.Render(" □ ")}, maximize.X, maximize.Y)
	}
	c.place([]string{m.theme.CloseButton.Render(" ✕ ")}, closeBtn.X, closeBtn.Y)

	inner := contentRect(r)
	side := border.Render("│")
	blank := bg.Render(strings.Repeat(" ", inner.Width))
	lines := make([]string, 0, inner.Height+1)
	for i := 0; i < inner.Height; i++ {
		lines = append(lines, side+blank+side)
	}
	if r.Height > titleRows {
		lines = append(lines, border.Render("└"+strings.Repeat("─", max(0, r.Width-2))+"┘"))
	}
	c.place(lines, r.X, r.Y+titleRows)
}

func (m *model) drawWindow(c *canvas, v *windowView, w desktop.WindowState, vp geometry.Size) {
	r := m.windowCells(w, vp)
	if r.Width < 2 || r.Height < 1 {
		return
	}
	explorerWin := v != nil && v.explorer()
	bg := m.theme.Chrome
	if explorerWin {
		bg = m.theme.Window
	}
	m.drawFrame(c, r, w.Title, w.IsActive, bg, true)

	inner := contentRect(r)
	if explorerWin {
		m.drawExplorer(c, v, inner)
		return
	}
	if inner.Height > 1 {
		c.place([]string{label(bg, " This is the "+w.Title+" window content.", inner.Width)}, inner.X, inner.Y+1)
	}
}

var (
	explorerMenu  = " File  Edit  View  Favorites  Tools  Help"
	sidebarGroups = []struct {
		head  string
		links []string
	}{
		{"File and Folder Tasks", []string{"Make a new folder", "Publish this folder", "Share this folder"}},
		{"Other Places", []string{"Documents", "My Documents", "Shared Documents", "My Computer", "My Network Places"}},
	}
)

func (m *model) drawExplorer(c *canvas, v *windowView, inner geometry.Rect) {
	if inner.Height < 1 || inner.Width < 1 {
		return
	}
	l := layoutExplorer(inner)
	chrome := m.theme.Chrome

	bars := []string{
		label(chrome, explorerMenu, l.menuBar.Width),
		label(chrome, "", l.toolbar.Width),
		m.addressBar(v.nav.Path(), l.address.Width),
	}
	c.place(bars[:min(len(bars), inner.Height)], inner.X, inner.Y)
	if inner.Height > 1 {
		c.place([]string{m.theme.ChromeButton.Render("[◄ Back]")}, l.back.X, l.back.Y)
		rest := l.toolbar.Width - backWidth - 2
		c.place([]string{label(chrome, " [Forward ►]  [Search]  [Folders]", rest)}, l.back.X+backWidth, l.back.Y)
	}

	if l.sidebar.Width > 0 && l.sidebar.Height > 0 {
		c.place(m.sidebar(l.sidebar.Width, l.sidebar.Height), l.sidebar.X, l.sidebar.Y)
	}

	entries := v.nav.Entries()
	bottom := l.entries.Y + l.entries.Height
	for i, e := range entries {
		t := l.tile(i)
		if t.Y+t.Height > bottom {
			break
		}
		style := m.theme.Entry
		if e.Name == v.nav.Selected() {
			style = m.theme.EntrySelected
		}
		c.place(fill(style, t.Width, t.Height), t.X, t.Y)
		c.place(m.assets.Image(e.Asset(), e.Kind.String(), tileIconCols, tileIconRows), t.X+(t.Width-tileIconCols)/2, t.Y)
		first, second := splitLabel(e.Name, t.Width)
		c.place([]string{centered(style, first, t.Width), centered(style, second, t.Width)}, t.X, t.Y+tileIconRows)
	}
}

func (m *model) addressBar(path string, w int) string {
	const prefix, goBtn = " Address ", " Go "
	field := w - len(prefix) - len(goBtn)
	if field < 4 {
		return label(m.theme.Address, " "+path, w)
	}
	return label(m.theme.Chrome, prefix, len(prefix)) +
		label(m.theme.Address, " "+path, field) +
		label(m.theme.ChromeButton, goBtn, len(goBtn))
}

func (m *model) sidebar(w, h int) []string {
	bg := m.theme.Sidebar.Render(" ")
	row := func(style lipgloss.Style, s string) string {
		return bg + label(style, s, w-2) + bg
	}
	lines := []string{m.theme.Sidebar.Render(strings.Repeat(" ", w))}
	for _, g := range sidebarGroups {
		lines = append(lines, row(m.theme.SidebarHead, " "+g.head))
		for _, link := range g.links {
			lines = append(lines, row(m.theme.SidebarLink, "  "+link))
		}
		lines = append(lines, m.theme.Sidebar.Render(strings.Repeat(" ", w)))
	}
	for len(lines) < h {
		lines = append(lines, m.theme.Sidebar.Render(strings.Repeat(" ", w)))
	}
	return lines[:h]
}

// splitLabel breaks name over two lines of at most w cells, preferring a
// space as the break point.
func splitLabel(name string, w int) (string, string) {
	if runewidth.StringWidth(name) <= w {
		return name, ""
	}
	first := runewidth.Truncate(name, w, "")
	if i := strings.LastIndex(first, " "); i > 0 {
		first = first[:i]
	}
	rest := strings.TrimSpace(strings.TrimPrefix(name, first))
	return first, runewidth.Truncate(rest, w, "…")
}

func (m *model) drawDialog(c *canvas, v *windowView, inst *dialog.Instance, top bool) {
	r := m.grid.cells(inst.Bounds())
	if r.Width < 5 || r.Height < 2 {
		return
	}
	m.drawFrame(c, r, inst.Kind.Title(), top, m.theme.Dialog, false)

	body := dialogBody(r)
	rendered := m.renderer.Render(inst.Kind, body.Width)
	off := v.scroll[inst.Kind]
	lines := make([]string, 0, body.Height)
	for i := 0; i < body.Height; i++ {
		n := off + i
		if n >= rendered.Height() {
			break
		}
		style := m.theme.Dialog
		if _, ok := rendered.ActionAt(n); ok {
			style = m.theme.DialogLink
		}
		lines = append(lines, style.Render(fitLine(rendered.Lines[n], body.Width)))
	}
	c.place(lines, body.X, body.Y)

	if rendered.Height() > body.Height {
		more := m.theme.BorderIdle
		if off > 0 {
			c.place([]string{more.Render("▲")}, r.X+r.Width-1, body.Y)
		}
		if off+body.Height < rendered.Height() {
			c.place([]string{more.Render("▼")}, r.X+r.Width-1, body.Y+body.Height-1)
		}
	}
}

func (m *model) drawTaskbar(c *canvas, snap desktop.Snapshot, vp geometry.Size) {
	bar := m.grid.taskbar(vp)
	c.place(fill(m.theme.Taskbar, bar.Width, bar.Height), bar.X, bar.Y)

	start := m.theme.StartButton
	if m.menu.IsOpen() || m.startPressed {
		start = m.theme.StartPressed
	}
	sb := startButton(bar)
	c.place([]string{centered(start, "start", sb.Width)}, sb.X, sb.Y)

	for i, r := range taskButtons(bar, len(snap.Windows)) {
		w := snap.Windows[i]
		style := m.theme.TaskIdle
		if w.IsActive {
			style = m.theme.TaskActive
		}
		c.place([]string{label(style, " "+w.Title, r.Width)}, r.X, r.Y)
	}

	t := tray(bar)
	c.place([]string{centered(m.theme.Tray, clock.Format(m.clock), t.Width)}, t.X, t.Y)
}

func (m *model) drawMenu(c *canvas, vp geometry.Size) {
	b := m.grid.cells(startmenu.Bounds(vp))
	header := m.grid.cells(geometry.Rect{X: 0, Y: startmenu.Bounds(vp).Y, Width: startmenu.Width, Height: startmenu.HeaderHeight})
	footerTop := m.grid.cells(startmenu.FooterRect(startmenu.FooterLogOff, vp)).Y
	itemsCols := m.grid.cells(startmenu.ItemRect(0, vp)).Width

	c.place(fill(m.theme.MenuHeader, b.Width, header.Height), b.X, b.Y)
	if header.Height > 0 {
		c.place([]string{label(m.theme.MenuHeader, "  "+m.renderer.Owner().Name, b.Width)}, b.X, b.Y+header.Height/2)
	}

	bodyY := b.Y + header.Height
	bodyH := max(0, footerTop-bodyY)
	c.place(fill(m.theme.MenuItems, itemsCols, bodyH), b.X, bodyY)
	c.place(fill(m.theme.MenuPane, b.Width-itemsCols, bodyH), b.X+itemsCols, bodyY)

	c.place([]string{label(m.theme.MenuGroup, " Programs", itemsCols)}, b.X, bodyY)
	_, hovered, _ := m.menu.Hovered()
	for i, item := range startmenu.Items {
		r := m.grid.cells(startmenu.ItemRect(i, vp))
		style := m.theme.MenuItems
		if i == hovered {
			style = m.theme.MenuHover
		}
		c.place([]string{label(style, "  "+item.Name, r.Width)}, r.X, r.Y)
		if i == startmenu.ProgramsCount-1 {
			c.place([]string{m.theme.MenuItems.Render(" " + strings.Repeat("─", max(0, r.Width-2)) + " ")}, r.X, r.Y+r.Height)
		}
	}

	if item, _, ok := m.menu.Hovered(); ok {
		w := b.Width - itemsCols
		pane := m.theme.MenuPane.Width(w).Padding(1, 1).Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(item.Name),
			"",
			item.Description,
		))
		lines := strings.Split(pane, "\n")
		c.place(lines[:min(len(lines), bodyH)], b.X+itemsCols, bodyY)
	}

	footerH := b.Y + b.Height - footerTop
	c.place(fill(m.theme.MenuFooter, b.Width, footerH), b.X, footerTop)
	for _, a := range []startmenu.FooterAction{startmenu.FooterLogOff, startmenu.FooterTurnOff} {
		r := m.grid.cells(startmenu.FooterRect(a, vp))
		c.place([]string{label(m.theme.MenuFooter, " "+a.String(), r.Width)}, r.X, r.Y+r.Height/2)
	}
}

func (m *model) drawPreview(c *canvas, v *windowView) {
	img, ok := v.presenter.Preview()
	if !ok {
		return
	}
	cols, rows := m.width, m.height
	c.place(fill(m.theme.PreviewShade, cols, rows), 0, 0)
	area, closeBtn := previewLayout(cols, rows)
	c.place(m.assets.Image(img.Src, img.Alt, area.Width, area.Height), area.X, area.Y)
	if caption := area.Y + area.Height; caption < rows {
		c.place([]string{centered(m.theme.PreviewShade, img.Alt, area.Width)}, area.X, caption)
	}
	c.place([]string{m.theme.CloseButton.Render(" ✕ ")}, closeBtn.X, closeBtn.Y)
}

func (m *model) drawBalloon(c *canvas, vp geometry.Size) {
	text := " " + m.status + " "
	w := min(c.width-2, runewidth.StringWidth(text))
	if w <= 0 {
		return
	}
	bar := m.grid.taskbar(vp)
	c.place([]string{label(m.theme.Help, text, w)}, c.width-w-1, bar.Y-1)
}
