package drag

import (
	"github.com/1broseidon/xpdesk/internal/geometry"
	"github.com/1broseidon/xpdesk/internal/pointer"
)

// Phase represents the current phase of a drag
type Phase int

const (
	// PhaseIdle means no drag is in progress
	PhaseIdle Phase = iota
	// PhaseDragging means the element follows the pointer until release
	PhaseDragging
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Region classifies where inside an element a press landed.
type Region int

const (
	// RegionTitleBar is the draggable chrome.
	RegionTitleBar Region = iota
	// RegionButton is a control inside the chrome (close, minimize).
	RegionButton
	// RegionContent is the element body.
	RegionContent
)

func (r Region) String() string {
	switch r {
	case RegionTitleBar:
		return "titlebar"
	case RegionButton:
		return "button"
	case RegionContent:
		return "content"
	default:
		return "unknown"
	}
}

// Target is an element that can be dragged. Bounds reports the current origin
// and the size used for viewport clamping.
type Target interface {
	Bounds() geometry.Rect
	Active() bool
	Activate()
	MoveTo(geometry.Point)
}

// Tracker is the drag state machine shared by windows and dialogs. Move and
// release listeners live on the document only while a drag is in progress.
type Tracker struct {
	doc      *pointer.Document
	phase    Phase
	target   Target
	offset   geometry.Point
	viewport geometry.Size

	moveID    pointer.ListenerID
	releaseID pointer.ListenerID
}

// NewTracker creates an idle tracker bound to doc.
func NewTracker(doc *pointer.Document) *Tracker {
	return &Tracker{doc: doc, phase: PhaseIdle}
}

// Phase returns the current phase.
func (t *Tracker) Phase() Phase {
	return t.phase
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool {
	return t.phase == PhaseDragging
}

// Offset returns the pointer offset captured when the drag started.
func (t *Tracker) Offset() geometry.Point {
	return t.offset
}

// Press handles a pointer press on target. An inactive target is activated
// first. Only presses in the title bar start a drag; the return value reports
// whether one started.
func (t *Tracker) Press(target Target, region Region, at geometry.Point, viewport geometry.Size) bool {
	if target == nil {
		return false
	}
	if !target.Active() {
		target.Activate()
	}
	if region != RegionTitleBar {
		return false
	}
	if t.phase == PhaseDragging {
		t.detach()
	}

	t.target = target
	t.offset = at.Sub(target.Bounds().Min())
	t.viewport = viewport
	t.phase = PhaseDragging
	t.moveID = t.doc.AddListener(pointer.EventMove, t.handleMove)
	t.releaseID = t.doc.AddListener(pointer.EventRelease, t.handleRelease)
	return true
}

// SetViewport updates the clamp bounds mid-drag.
func (t *Tracker) SetViewport(viewport geometry.Size) {
	t.viewport = viewport
}

// Cancel ends a drag without a release and detaches its listeners.
func (t *Tracker) Cancel() {
	if t.phase != PhaseDragging {
		return
	}
	t.detach()
}

func (t *Tracker) handleMove(ev pointer.Event) {
	if t.phase != PhaseDragging || t.target == nil {
		return
	}
	size := t.target.Bounds().Size()
	t.target.MoveTo(geometry.Clamp(ev.Pos.Sub(t.offset), size, t.viewport))
}

func (t *Tracker) handleRelease(pointer.Event) {
	t.detach()
}

func (t *Tracker) detach() {
	t.doc.RemoveListener(t.moveID)
	t.doc.RemoveListener(t.releaseID)
	t.moveID = 0
	t.releaseID = 0
	t.target = nil
	t.offset = geometry.Point{}
	t.phase = PhaseIdle
}
