package pointer

import (
	"testing"

	"github.com/1broseidon/xpdesk/internal/geometry"
)

func TestDocument_AddRemove(t *testing.T) {
	d := NewDocument()
	id := d.AddListener(EventClick, func(Event) {})
	if id == 0 {
		t.Fatal("expected non-zero listener id")
	}
	if got := d.ListenerCount(EventClick); got != 1 {
		t.Fatalf("ListenerCount(click) = %d, want 1", got)
	}
	if !d.RemoveListener(id) {
		t.Fatal("RemoveListener returned false for attached listener")
	}
	if d.RemoveListener(id) {
		t.Fatal("second RemoveListener should report false")
	}
	if got := d.TotalListeners(); got != 0 {
		t.Fatalf("TotalListeners = %d, want 0", got)
	}
}

func TestDocument_DispatchOnlyMatchingKind(t *testing.T) {
	d := NewDocument()
	var moves, clicks int
	d.AddListener(EventMove, func(Event) { moves++ })
	d.AddListener(EventClick, func(Event) { clicks++ })

	if n := d.Dispatch(Event{Kind: EventMove, Pos: geometry.Point{X: 1, Y: 2}}); n != 1 {
		t.Fatalf("Dispatch ran %d handlers, want 1", n)
	}
	if moves != 1 || clicks != 0 {
		t.Fatalf("moves=%d clicks=%d", moves, clicks)
	}
}

func TestDocument_HandlerMayDetachItself(t *testing.T) {
	d := NewDocument()
	var id ListenerID
	calls := 0
	id = d.AddListener(EventRelease, func(Event) {
		calls++
		d.RemoveListener(id)
	})
	d.AddListener(EventRelease, func(Event) { calls++ })

	d.Dispatch(Event{Kind: EventRelease})
	if calls != 2 {
		t.Fatalf("expected both handlers to run, got %d", calls)
	}
	if got := d.ListenerCount(EventRelease); got != 1 {
		t.Fatalf("ListenerCount(release) = %d, want 1", got)
	}
}

func TestDocument_InvalidKind(t *testing.T) {
	d := NewDocument()
	if id := d.AddListener(EventKind(42), func(Event) {}); id != 0 {
		t.Fatalf("expected 0 id for invalid kind, got %d", id)
	}
	if n := d.Dispatch(Event{Kind: EventKind(-1)}); n != 0 {
		t.Fatalf("Dispatch invalid kind ran %d handlers", n)
	}
}
