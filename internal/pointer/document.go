// Package pointer holds document-level pointer listeners. Components attach
// listeners only while their state needs them and detach on exit, so the
// listener count doubles as a leak check.
package pointer

import "github.com/1broseidon/xpdesk/internal/geometry"

// EventKind identifies a document-level event.
type EventKind int

const (
	EventMove EventKind = iota
	EventRelease
	EventClick
	EventResize
	eventKindCount // sentinel for iteration
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventRelease:
		return "release"
	case EventClick:
		return "click"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is delivered to document listeners. Pos is in virtual pixels;
// Viewport is only set for EventResize.
type Event struct {
	Kind     EventKind
	Pos      geometry.Point
	Viewport geometry.Size
}

// Handler receives a dispatched event.
type Handler func(Event)

// ListenerID identifies an attached listener. Zero is never issued.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn Handler
}

// Document is the listener registry for one desktop. It is driven from the
// UI event loop and is not safe for concurrent use.
type Document struct {
	next      ListenerID
	listeners [eventKindCount][]listener
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddListener attaches h for events of the given kind.
func (d *Document) AddListener(kind EventKind, h Handler) ListenerID {
	if kind < 0 || kind >= eventKindCount || h == nil {
		return 0
	}
	d.next++
	d.listeners[kind] = append(d.listeners[kind], listener{id: d.next, fn: h})
	return d.next
}

// RemoveListener detaches a listener. Unknown ids are ignored.
func (d *Document) RemoveListener(id ListenerID) bool {
	if id == 0 {
		return false
	}
	for kind := range d.listeners {
		for i, l := range d.listeners[kind] {
			if l.id == id {
				d.listeners[kind] = append(d.listeners[kind][:i], d.listeners[kind][i+1:]...)
				return true
			}
		}
	}
	return false
}

// ListenerCount returns the number of listeners attached for kind.
func (d *Document) ListenerCount(kind EventKind) int {
	if kind < 0 || kind >= eventKindCount {
		return 0
	}
	return len(d.listeners[kind])
}

// TotalListeners returns the number of listeners across all kinds.
func (d *Document) TotalListeners() int {
	n := 0
	for kind := range d.listeners {
		n += len(d.listeners[kind])
	}
	return n
}

// Dispatch delivers ev to every listener of its kind and returns how many ran.
// Handlers may attach or detach listeners while being dispatched; the set
// captured at dispatch time is the one that runs.
func (d *Document) Dispatch(ev Event) int {
	if ev.Kind < 0 || ev.Kind >= eventKindCount {
		return 0
	}
	snapshot := append([]listener(nil), d.listeners[ev.Kind]...)
	for _, l := range snapshot {
		l.fn(ev)
	}
	return len(snapshot)
}
