// Package desktop owns the window registry: which windows are open, which one
// is active, and where each sits on the viewport.
package desktop

import (
	"fmt"

	"github.com/1broseidon/xpdesk/internal/geometry"
)

// ExplorerTitle is the window that hosts the file explorer.
const ExplorerTitle = "My Computer"

const (
	staggerOrigin = 100
	staggerStep   = 20
)

var (
	explorerSize = geometry.Size{Width: 800, Height: 600}
	defaultSize  = geometry.Size{Width: 500, Height: 400}
)

// WindowState is one open window.
type WindowState struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	IsActive bool           `json:"is_active"`
	Position geometry.Point `json:"position"`
	Size     geometry.Size  `json:"size"`
}

// Bounds returns the stored rectangle (unclamped render size).
func (w WindowState) Bounds() geometry.Rect {
	return geometry.RectAt(w.Position, w.Size)
}

// SizeFor returns the size a window of the given name opens with.
func SizeFor(name string) geometry.Size {
	if name == ExplorerTitle {
		return explorerSize
	}
	return defaultSize
}

// Registry is an insertion-ordered set of windows. At most one window is
// active, and none exactly when the registry is empty. Every operation is a
// no-op for an unknown id. Registry is not safe for concurrent use; Store
// wraps it for that.
type Registry struct {
	order    []string
	windows  map[string]*WindowState
	counter  int
	viewport geometry.Size
}

// NewRegistry creates an empty registry for the given viewport.
func NewRegistry(viewport geometry.Size) *Registry {
	return &Registry{
		windows:  make(map[string]*WindowState),
		viewport: viewport,
	}
}

// Viewport returns the viewport used for clamping.
func (r *Registry) Viewport() geometry.Size {
	return r.viewport
}

// SetViewport records a new viewport and re-clamps every window. It returns
// the ids whose position changed.
func (r *Registry) SetViewport(viewport geometry.Size) []string {
	r.viewport = viewport
	var moved []string
	for _, id := range r.order {
		w := r.windows[id]
		clamped := geometry.Clamp(w.Position, w.Size, viewport)
		if clamped != w.Position {
			w.Position = clamped
			moved = append(moved, id)
		}
	}
	return moved
}

// Open creates a window and makes it the only active one. The position is
// staggered by the number of open windows and clamped to the viewport.
func (r *Registry) Open(name string) string {
	id := fmt.Sprintf("window-%s-%d", name, r.counter)
	r.counter++

	for _, w := range r.windows {
		w.IsActive = false
	}

	size := SizeFor(name)
	offset := staggerOrigin + len(r.order)*staggerStep
	pos := geometry.Clamp(geometry.Point{X: offset, Y: offset}, size, r.viewport)

	r.windows[id] = &WindowState{
		ID:       id,
		Title:    name,
		IsActive: true,
		Position: pos,
		Size:     size,
	}
	r.order = append(r.order, id)
	return id
}

// Close removes a window. The last remaining window by insertion order
// becomes active.
func (r *Registry) Close(id string) bool {
	if _, ok := r.windows[id]; !ok {
		return false
	}
	delete(r.windows, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	for _, w := range r.windows {
		w.IsActive = false
	}
	if n := len(r.order); n > 0 {
		r.windows[r.order[n-1]].IsActive = true
	}
	return true
}

// Activate makes id the only active window.
func (r *Registry) Activate(id string) bool {
	target, ok := r.windows[id]
	if !ok {
		return false
	}
	for _, w := range r.windows {
		w.IsActive = false
	}
	target.IsActive = true
	return true
}

// UpdatePosition stores pos, clamped against the window's stored size.
func (r *Registry) UpdatePosition(id string, pos geometry.Point) bool {
	w, ok := r.windows[id]
	if !ok {
		return false
	}
	w.Position = geometry.Clamp(pos, w.Size, r.viewport)
	return true
}

// Get returns a copy of the window with the given id.
func (r *Registry) Get(id string) (WindowState, bool) {
	w, ok := r.windows[id]
	if !ok {
		return WindowState{}, false
	}
	return *w, true
}

// Windows returns copies of all windows in insertion order.
func (r *Registry) Windows() []WindowState {
	out := make([]WindowState, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.windows[id])
	}
	return out
}

// ActiveID returns the active window id, or "" when none is active.
func (r *Registry) ActiveID() string {
	for _, id := range r.order {
		if r.windows[id].IsActive {
			return id
		}
	}
	return ""
}

// Len returns the number of open windows.
func (r *Registry) Len() int {
	return len(r.order)
}

// RenderSize returns the viewport-capped size a window is drawn at.
func (r *Registry) RenderSize(id string) (geometry.Size, bool) {
	w, ok := r.windows[id]
	if !ok {
		return geometry.Size{}, false
	}
	return geometry.RenderSize(w.Size, r.viewport), true
}
