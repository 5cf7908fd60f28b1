package tui

import (
	"github.com/1broseidon/xpdesk/internal/desktop"
	"github.com/1broseidon/xpdesk/internal/geometry"
	"github.com/1broseidon/xpdesk/internal/startmenu"
)

// grid maps virtual pixels to terminal cells.
type grid struct {
	cell geometry.Size
}

func newGrid(cell geometry.Size) grid {
	if cell.Width <= 0 {
		cell.Width = 1
	}
	if cell.Height <= 0 {
		cell.Height = 1
	}
	return grid{cell: cell}
}

// viewport is the pixel size of a cols×rows terminal.
func (g grid) viewport(cols, rows int) geometry.Size {
	return geometry.Size{Width: cols * g.cell.Width, Height: rows * g.cell.Height}
}

// pixel converts a cell coordinate to pixels.
func (g grid) pixel(x, y int) geometry.Point {
	return geometry.Point{X: x * g.cell.Width, Y: y * g.cell.Height}
}

func round(px, unit int) int {
	if px < 0 {
		return -((-px + unit/2) / unit)
	}
	return (px + unit/2) / unit
}

// cells converts a pixel rectangle to the cells it is drawn on. Both edges
// round to the nearest cell boundary; a non-empty rectangle covers at least
// one cell.
func (g grid) cells(r geometry.Rect) geometry.Rect {
	x0 := round(r.X, g.cell.Width)
	y0 := round(r.Y, g.cell.Height)
	x1 := round(r.X+r.Width, g.cell.Width)
	y1 := round(r.Y+r.Height, g.cell.Height)
	out := geometry.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
	if r.Width > 0 && out.Width < 1 {
		out.Width = 1
	}
	if r.Height > 0 && out.Height < 1 {
		out.Height = 1
	}
	return out
}

// cols converts a pixel width to whole cells.
func (g grid) cols(px int) int {
	return px / g.cell.Width
}

// rows converts a pixel height to whole cells.
func (g grid) rows(px int) int {
	return px / g.cell.Height
}

// Window chrome, in cells relative to the window rectangle.
const (
	titleRows   = 1
	buttonWidth = 3
)

// titleButtons returns the minimize, maximize and close buttons of a
// window or dialog title bar.
func titleButtons(r geometry.Rect) (minimize, maximize, closeBtn geometry.Rect) {
	right := r.X + r.Width - 1
	closeBtn = geometry.Rect{X: right - buttonWidth, Y: r.Y, Width: buttonWidth, Height: titleRows}
	maximize = geometry.Rect{X: closeBtn.X - buttonWidth - 1, Y: r.Y, Width: buttonWidth, Height: titleRows}
	minimize = geometry.Rect{X: maximize.X - buttonWidth - 1, Y: r.Y, Width: buttonWidth, Height: titleRows}
	return minimize, maximize, closeBtn
}

// titleBar is the draggable strip of a window or dialog.
func titleBar(r geometry.Rect) geometry.Rect {
	return geometry.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: titleRows}
}

// contentRect is the area inside a frame's side and bottom borders.
func contentRect(r geometry.Rect) geometry.Rect {
	return geometry.Rect{
		X:      r.X + 1,
		Y:      r.Y + titleRows,
		Width:  max(0, r.Width-2),
		Height: max(0, r.Height-titleRows-1),
	}
}

// Explorer layout inside a window's content rectangle.
const (
	explorerBarRows = 3
	sidebarWidth    = 24
	sidebarMinWidth = 60
	tileWidth       = 20
	tileHeight      = 4
	tileRowGap      = 1
	tileIconCols    = 4
	tileIconRows    = 2
	backWidth       = 8
)

type explorerLayout struct {
	menuBar  geometry.Rect
	toolbar  geometry.Rect
	back     geometry.Rect
	address  geometry.Rect
	sidebar  geometry.Rect
	entries  geometry.Rect
	tileCols int
}

func layoutExplorer(c geometry.Rect) explorerLayout {
	l := explorerLayout{
		menuBar: geometry.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: 1},
		toolbar: geometry.Rect{X: c.X, Y: c.Y + 1, Width: c.Width, Height: 1},
		back:    geometry.Rect{X: c.X + 1, Y: c.Y + 1, Width: backWidth, Height: 1},
		address: geometry.Rect{X: c.X, Y: c.Y + 2, Width: c.Width, Height: 1},
	}
	body := geometry.Rect{X: c.X, Y: c.Y + explorerBarRows, Width: c.Width, Height: max(0, c.Height-explorerBarRows)}
	side := 0
	if c.Width >= sidebarMinWidth {
		side = sidebarWidth
	}
	l.sidebar = geometry.Rect{X: body.X, Y: body.Y, Width: side, Height: body.Height}
	l.entries = geometry.Rect{
		X:      body.X + side + 1,
		Y:      body.Y + 1,
		Width:  max(0, body.Width-side-2),
		Height: max(0, body.Height-1),
	}
	l.tileCols = max(1, l.entries.Width/tileWidth)
	return l
}

// tile returns the rectangle of the i-th entry.
func (l explorerLayout) tile(i int) geometry.Rect {
	col := i % l.tileCols
	row := i / l.tileCols
	return geometry.Rect{
		X:      l.entries.X + col*tileWidth,
		Y:      l.entries.Y + row*(tileHeight+tileRowGap),
		Width:  tileWidth - 1,
		Height: tileHeight,
	}
}

// tileAt returns the entry index under p among n entries, or -1.
func (l explorerLayout) tileAt(p geometry.Point, n int) int {
	for i := 0; i < n; i++ {
		t := l.tile(i)
		if t.Y+t.Height > l.entries.Y+l.entries.Height {
			break
		}
		if t.Contains(p) {
			return i
		}
	}
	return -1
}

// taskbar returns the taskbar row.
func (g grid) taskbar(viewport geometry.Size) geometry.Rect {
	return g.cells(geometry.Rect{
		X:      0,
		Y:      viewport.Height - startmenu.TaskbarHeight,
		Width:  viewport.Width,
		Height: startmenu.TaskbarHeight,
	})
}

const (
	startButtonWidth = 9
	taskButtonMin    = 12
	taskButtonMax    = 20
	trayWidth        = 10
)

// startButton is the rectangle of the start button.
func startButton(bar geometry.Rect) geometry.Rect {
	return geometry.Rect{X: bar.X, Y: bar.Y, Width: startButtonWidth, Height: bar.Height}
}

// tray is the clock area at the right end of the taskbar.
func tray(bar geometry.Rect) geometry.Rect {
	return geometry.Rect{X: bar.X + bar.Width - trayWidth, Y: bar.Y, Width: trayWidth, Height: bar.Height}
}

// taskButtons lays out one button per window between the start button and
// the tray. Buttons shrink to taskButtonMin and are dropped when even that
// does not fit.
func taskButtons(bar geometry.Rect, n int) []geometry.Rect {
	if n == 0 {
		return nil
	}
	x0 := bar.X + startButtonWidth + 1
	avail := tray(bar).X - 1 - x0
	if avail < taskButtonMin {
		return nil
	}
	w := min(taskButtonMax, max(taskButtonMin, avail/n-1))
	fit := min(n, (avail+1)/(w+1))
	out := make([]geometry.Rect, fit)
	for i := range out {
		out[i] = geometry.Rect{X: x0 + i*(w+1), Y: bar.Y, Width: w, Height: bar.Height}
	}
	return out
}

// iconCells returns the cell rectangles of the desktop icons.
func (g grid) iconCells() []geometry.Rect {
	bounds := desktop.IconBounds()
	out := make([]geometry.Rect, len(bounds))
	for i, b := range bounds {
		out[i] = g.cells(b)
	}
	return out
}

// iconAt returns the catalog index of the icon drawn under p, or -1.
func (g grid) iconAt(p geometry.Point) int {
	for i, r := range g.iconCells() {
		if r.Contains(p) {
			return i
		}
	}
	return -1
}

// menuItemAt returns the start menu item drawn under p, or -1.
func (g grid) menuItemAt(p geometry.Point, viewport geometry.Size) int {
	for i := range startmenu.Items {
		if g.cells(startmenu.ItemRect(i, viewport)).Contains(p) {
			return i
		}
	}
	return -1
}

// menuFooterAt returns the start menu footer button drawn under p.
func (g grid) menuFooterAt(p geometry.Point, viewport geometry.Size) startmenu.FooterAction {
	for _, a := range []startmenu.FooterAction{startmenu.FooterLogOff, startmenu.FooterTurnOff} {
		if g.cells(startmenu.FooterRect(a, viewport)).Contains(p) {
			return a
		}
	}
	return startmenu.FooterNone
}

// previewLayout returns the image area and close button of the full-screen
// image preview.
func previewLayout(cols, rows int) (image, closeBtn geometry.Rect) {
	w := max(1, cols*9/10)
	h := max(1, rows*9/10-2)
	image = geometry.Rect{X: (cols - w) / 2, Y: (rows - h) / 2, Width: w, Height: h}
	closeBtn = geometry.Rect{X: max(0, cols-4), Y: 0, Width: 3, Height: 1}
	return image, closeBtn
}

// dialogBody is the area a dialog's body lines are drawn in: inside the
// borders with one column of padding on each side.
func dialogBody(r geometry.Rect) geometry.Rect {
	return geometry.Rect{
		X:      r.X + 2,
		Y:      r.Y + titleRows,
		Width:  max(0, r.Width-4),
		Height: max(0, r.Height-titleRows-1),
	}
}
