package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const escReset = "\x1b[0m"

// canvas is a fixed-size frame of styled lines that blocks are composited
// onto, back to front.
type canvas struct {
	width  int
	height int
	lines  []string
}

// newCanvas fills a width×height frame with fill, which must render exactly
// one cell wide.
func newCanvas(width, height int, fill string) *canvas {
	row := strings.Repeat(fill, max(0, width))
	lines := make([]string, max(0, height))
	for i := range lines {
		lines[i] = row
	}
	return &canvas{width: width, height: height, lines: lines}
}

// place draws block with its top-left corner at (x, y). Cells outside the
// canvas are clipped; cells the block does not cover keep the background.
func (c *canvas) place(block []string, x, y int) {
	for i, fg := range block {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		c.lines[row] = overlayLine(c.lines[row], fg, x, c.width)
	}
}

// String joins the frame.
func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// Overlay composites fg onto bg with its top-left corner at (x, y). Both are
// newline-separated blocks; fg is clipped to bg's extent.
func Overlay(fg, bg string, x, y int) string {
	if fg == "" {
		return bg
	}
	bgLines := strings.Split(bg, "\n")
	width := 0
	for _, l := range bgLines {
		width = max(width, ansi.StringWidth(l))
	}
	c := &canvas{width: width, height: len(bgLines), lines: bgLines}
	c.place(strings.Split(fg, "\n"), x, y)
	return c.String()
}

// overlayLine writes fg over bg starting at column x, never extending the
// line past width.
func overlayLine(bg, fg string, x, width int) string {
	if x < 0 {
		fg = ansi.TruncateLeft(fg, -x, "")
		x = 0
	}
	if x >= width {
		return bg
	}
	fg = ansi.Truncate(fg, width-x, "")
	fw := ansi.StringWidth(fg)
	if fw == 0 {
		return bg
	}

	left := ansi.Truncate(bg, x, "")
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}
	right := ""
	if bw := ansi.StringWidth(bg); bw > x+fw {
		right = ansi.TruncateLeft(bg, x+fw, "")
	}

	var sb strings.Builder
	sb.Grow(len(left) + len(fg) + len(right) + 2*len(escReset))
	sb.WriteString(left)
	sb.WriteString(escReset)
	sb.WriteString(fg)
	sb.WriteString(escReset)
	sb.WriteString(right)
	return sb.String()
}

// fitLine pads or truncates s to exactly width cells.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	switch {
	case w > width:
		return ansi.Truncate(s, width, "")
	case w < width:
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
