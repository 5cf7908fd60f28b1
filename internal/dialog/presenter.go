// Package dialog presents the Notepad-style dialogs raised from explorer
// files, plus the full-screen image preview that sits above them.
package dialog

import (
	"github.com/1broseidon/xpdesk/internal/drag"
	"github.com/1broseidon/xpdesk/internal/explorer"
	"github.com/1broseidon/xpdesk/internal/geometry"
	"github.com/1broseidon/xpdesk/internal/logging"
	"github.com/1broseidon/xpdesk/internal/pointer"
)

const (
	narrowWidth  = 400
	wideWidth    = 600
	widthPercent = 90
)

// Width returns the dialog width for k, capped at 90% of the viewport.
func Width(k explorer.Kind, viewport geometry.Size) int {
	w := wideWidth
	if k == explorer.KindAbout || k == explorer.KindContact {
		w = narrowWidth
	}
	return geometry.CapWidth(w, viewport, widthPercent)
}

// Instance is one mounted dialog. It exists only while the dialog is open,
// so every open starts centered with a fresh drag tracker.
type Instance struct {
	Kind     explorer.Kind
	Position geometry.Point
	Size     geometry.Size

	presenter *Presenter
	tracker   *drag.Tracker
}

// Bounds implements drag.Target.
func (d *Instance) Bounds() geometry.Rect {
	return geometry.RectAt(d.Position, d.Size)
}

// Active reports whether d is the top of the stack.
func (d *Instance) Active() bool {
	top, ok := d.presenter.Top()
	return ok && top == d
}

// Activate raises d to the top of the stack.
func (d *Instance) Activate() {
	d.presenter.Raise(d.Kind)
}

// MoveTo implements drag.Target.
func (d *Instance) MoveTo(p geometry.Point) {
	d.Position = p
}

// Dragging reports whether the dialog is following the pointer.
func (d *Instance) Dragging() bool {
	return d.tracker.Dragging()
}

// Presenter tracks the dialogs of one explorer window. Each kind has its own
// open flag; any number of kinds may be open and stacked at once.
type Presenter struct {
	doc     *pointer.Document
	logger  *logging.Logger
	open    map[explorer.Kind]*Instance
	stack   []explorer.Kind
	preview *explorer.Image
}

// NewPresenter creates a presenter whose dialogs drag on doc. logger may be
// nil.
func NewPresenter(doc *pointer.Document, logger *logging.Logger) *Presenter {
	return &Presenter{
		doc:    doc,
		logger: logger,
		open:   make(map[explorer.Kind]*Instance),
	}
}

// IsOpen reports the open flag for k.
func (p *Presenter) IsOpen(k explorer.Kind) bool {
	_, ok := p.open[k]
	return ok
}

// Open mounts k centered on the viewport from its measured size and pushes
// it on top. Opening an already open dialog changes nothing.
func (p *Presenter) Open(k explorer.Kind, measured, viewport geometry.Size) bool {
	if !k.Valid() || p.IsOpen(k) {
		return false
	}
	inst := &Instance{
		Kind:      k,
		Position:  geometry.Center(measured, viewport),
		Size:      measured,
		presenter: p,
		tracker:   drag.NewTracker(p.doc),
	}
	p.open[k] = inst
	p.stack = append(p.stack, k)
	p.logger.Log(logging.ActionDialogOpen, k.String(), map[string]interface{}{
		"x": inst.Position.X,
		"y": inst.Position.Y,
	})
	return true
}

// Close unmounts k and discards its drag state.
func (p *Presenter) Close(k explorer.Kind) bool {
	inst, ok := p.open[k]
	if !ok {
		return false
	}
	inst.tracker.Cancel()
	delete(p.open, k)
	p.removeFromStack(k)
	p.logger.Log(logging.ActionDialogClose, k.String(), nil)
	return true
}

// CloseAll unmounts every dialog and the preview.
func (p *Presenter) CloseAll() {
	for len(p.stack) > 0 {
		p.Close(p.stack[len(p.stack)-1])
	}
	p.preview = nil
}

// Raise moves k to the top of the stack.
func (p *Presenter) Raise(k explorer.Kind) {
	if !p.IsOpen(k) {
		return
	}
	p.removeFromStack(k)
	p.stack = append(p.stack, k)
}

func (p *Presenter) removeFromStack(k explorer.Kind) {
	for i, existing := range p.stack {
		if existing == k {
			p.stack = append(p.stack[:i], p.stack[i+1:]...)
			return
		}
	}
}

// Get returns the mounted instance of k.
func (p *Presenter) Get(k explorer.Kind) (*Instance, bool) {
	inst, ok := p.open[k]
	return inst, ok
}

// Top returns the dialog on top of the stack.
func (p *Presenter) Top() (*Instance, bool) {
	if len(p.stack) == 0 {
		return nil, false
	}
	return p.open[p.stack[len(p.stack)-1]], true
}

// Stack returns the mounted dialogs bottom to top.
func (p *Presenter) Stack() []*Instance {
	out := make([]*Instance, 0, len(p.stack))
	for _, k := range p.stack {
		out = append(out, p.open[k])
	}
	return out
}

// Len returns the number of open dialogs.
func (p *Presenter) Len() int {
	return len(p.stack)
}

// Press routes a pointer press on dialog k to its drag tracker. The dialog
// is raised first; only the title bar starts a drag.
func (p *Presenter) Press(k explorer.Kind, region drag.Region, at geometry.Point, viewport geometry.Size) bool {
	inst, ok := p.open[k]
	if !ok {
		return false
	}
	return inst.tracker.Press(inst, region, at, viewport)
}

// SetViewport updates the clamp bounds of any dialog being dragged.
func (p *Presenter) SetViewport(viewport geometry.Size) {
	for _, inst := range p.open {
		inst.tracker.SetViewport(viewport)
	}
}

// OpenPreview shows img above all dialogs.
func (p *Presenter) OpenPreview(img explorer.Image) {
	p.preview = &img
}

// ClosePreview hides the image preview.
func (p *Presenter) ClosePreview() {
	p.preview = nil
}

// Preview returns the image being previewed.
func (p *Presenter) Preview() (explorer.Image, bool) {
	if p.preview == nil {
		return explorer.Image{}, false
	}
	return *p.preview, true
}
