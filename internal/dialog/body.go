package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/skip2/go-qrcode"

	"github.com/1broseidon/xpdesk/internal/explorer"
)

// ActionKind says what clicking a body line does.
type ActionKind int

const (
	ActionLink ActionKind = iota
	ActionImage
)

// Action is attached to one clickable body line.
type Action struct {
	Kind  ActionKind
	Link  explorer.Link
	Image explorer.Image
}

// Body is a dialog's rendered content.
type Body struct {
	Lines   []string
	actions map[int]Action
}

// Height is the number of rendered lines.
func (b Body) Height() int {
	return len(b.Lines)
}

// Width is the widest rendered line in cells.
func (b Body) Width() int {
	w := 0
	for _, l := range b.Lines {
		w = max(w, ansi.StringWidth(l))
	}
	return w
}

// ActionAt returns the action on line, if any.
func (b Body) ActionAt(line int) (Action, bool) {
	a, ok := b.actions[line]
	return a, ok
}

// Renderer renders dialog bodies with glamour and caches them per kind and
// width.
type Renderer struct {
	style string
	owner explorer.Owner
	cache map[cacheKey]Body
}

type cacheKey struct {
	kind explorer.Kind
	cols int
}

// NewRenderer creates a renderer using a glamour standard style ("light",
// "dark", "notty").
func NewRenderer(style string, owner explorer.Owner) *Renderer {
	if style == "" {
		style = "light"
	}
	return &Renderer{style: style, owner: owner.WithDefaults(), cache: make(map[cacheKey]Body)}
}

// Owner returns the owner the content is rendered for.
func (r *Renderer) Owner() explorer.Owner {
	return r.owner
}

// Render lays out dialog k for a body cols cells wide.
func (r *Renderer) Render(k explorer.Kind, cols int) Body {
	if cols < 1 {
		cols = 1
	}
	key := cacheKey{kind: k, cols: cols}
	if b, ok := r.cache[key]; ok {
		return b
	}

	content := explorer.ContentFor(k, r.owner)
	text := content
	text.Links = nil
	text.Images = nil

	b := Body{actions: make(map[int]Action)}
	b.Lines = r.markdown(text.Markdown(), cols)

	for _, l := range content.Links {
		b.actions[len(b.Lines)] = Action{Kind: ActionLink, Link: l}
		b.Lines = append(b.Lines, ansi.Truncate(linkLabel(l), cols, "…"))
	}
	if k == explorer.KindContact {
		if qr := qrLines(r.owner.LinkedIn); len(qr) > 0 {
			b.Lines = append(b.Lines, "")
			for _, l := range qr {
				b.Lines = append(b.Lines, ansi.Truncate(l, cols, ""))
			}
		}
	}
	if len(content.Images) > 0 {
		b.Lines = append(b.Lines, "")
	}
	for _, img := range content.Images {
		b.actions[len(b.Lines)] = Action{Kind: ActionImage, Image: img}
		b.Lines = append(b.Lines, ansi.Truncate("▣ "+img.Alt, cols, "…"))
	}

	r.cache[key] = b
	return b
}

func linkLabel(l explorer.Link) string {
	if l.Kind == explorer.LinkEmail {
		return fmt.Sprintf("[ %s ]", l.Label)
	}
	return fmt.Sprintf("[ %s ] %s", l.Label, l.Target)
}

func (r *Renderer) markdown(md string, cols int) []string {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(cols),
	)
	var out string
	if err == nil {
		out, err = tr.Render(md)
	}
	if err != nil {
		out = md
	}
	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(strings.TrimRight(l, " "), cols, "")
	}
	return lines
}

// qrBorder is the quiet zone go-qrcode draws around a symbol; one module of
// it is kept.
const qrBorder = 4

func qrLines(content string) []string {
	if content == "" {
		return nil
	}
	q, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return nil
	}
	bitmap := q.Bitmap()
	if trim := qrBorder - 1; len(bitmap) > 2*trim {
		bitmap = bitmap[trim : len(bitmap)-trim]
		for i := range bitmap {
			bitmap[i] = bitmap[i][trim : len(bitmap[i])-trim]
		}
	}

	var out []string
	for y := 0; y < len(bitmap); y += 2 {
		var sb strings.Builder
		for x := range bitmap[y] {
			top := bitmap[y][x]
			bottom := y+1 < len(bitmap) && bitmap[y+1][x]
			switch {
			case top && bottom:
				sb.WriteString("█")
			case top:
				sb.WriteString("▀")
			case bottom:
				sb.WriteString("▄")
			default:
				sb.WriteString(" ")
			}
		}
		out = append(out, sb.String())
	}
	return out
}
