// Package assets turns the desktop's image assets into terminal art.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"

	"github.com/1broseidon/xpdesk/internal/logging"
)

// Resolver loads images relative to an assets directory and renders them as
// half-block art. A missing or undecodable asset degrades to a placeholder;
// Image never fails.
type Resolver struct {
	dir    string
	logger *logging.Logger

	mu     sync.Mutex
	cache  map[cacheKey][]string
	warned map[string]bool
}

type cacheKey struct {
	src        string
	cols, rows int
}

// NewResolver creates a resolver rooted at dir. An empty dir renders every
// asset as a placeholder. logger may be nil.
func NewResolver(dir string, logger *logging.Logger) *Resolver {
	return &Resolver{
		dir:    dir,
		logger: logger,
		cache:  make(map[cacheKey][]string),
		warned: make(map[string]bool),
	}
}

// Image renders src into exactly rows lines of cols cells.
func (r *Resolver) Image(src, alt string, cols, rows int) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	key := cacheKey{src: src, cols: cols, rows: rows}

	r.mu.Lock()
	defer r.mu.Unlock()
	if lines, ok := r.cache[key]; ok {
		return lines
	}

	img, err := r.load(src)
	var lines []string
	if err != nil {
		r.warn(src, err)
		lines = Placeholder(alt, cols, rows)
	} else {
		lines = halfBlocks(img, cols, rows)
	}
	r.cache[key] = lines
	return lines
}

// Path maps an asset src ("/icons/my-computer.png") to a file under the
// assets directory.
func (r *Resolver) Path(src string) (string, error) {
	if r.dir == "" {
		return "", fmt.Errorf("no assets directory configured")
	}
	rel := filepath.FromSlash(strings.TrimPrefix(src, "/"))
	full := filepath.Join(r.dir, rel)
	root := filepath.Clean(r.dir) + string(filepath.Separator)
	if !strings.HasPrefix(full, root) {
		return "", fmt.Errorf("asset %q escapes %s", src, r.dir)
	}
	return full, nil
}

func (r *Resolver) load(src string) (image.Image, error) {
	path, err := r.Path(src)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func (r *Resolver) warn(src string, err error) {
	if r.warned[src] {
		return
	}
	r.warned[src] = true
	r.logger.Log(logging.ActionAssetFallback, src, map[string]interface{}{"error": err.Error()})
}

func halfBlocks(img image.Image, cols, rows int) []string {
	fit := imaging.Fit(img, cols, rows*2, imaging.Lanczos)
	b := fit.Bounds()

	var lines []string
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex(fit.At(x, y))))
			if y+1 < b.Max.Y {
				style = style.Background(lipgloss.Color(hex(fit.At(x, y+1))))
			}
			sb.WriteString(style.Render("▀"))
		}
		lines = append(lines, sb.String())
	}
	placed := lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
	return strings.Split(placed, "\n")
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

var placeholderStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Background(lipgloss.Color("254"))

// Placeholder is the stand-in for an asset that cannot be shown.
func Placeholder(alt string, cols, rows int) []string {
	if alt == "" {
		alt = "image"
	}
	label := lipgloss.NewStyle().MaxWidth(cols).Render(alt)
	box := lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, label,
		lipgloss.WithWhitespaceBackground(lipgloss.Color("254")))
	lines := strings.Split(box, "\n")
	for i, l := range lines {
		lines[i] = placeholderStyle.Render(l)
	}
	return lines
}
