package desktop

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/1broseidon/xpdesk/internal/geometry"
)

var testViewport = geometry.Size{Width: 1280, Height: 800}

func activeCount(ws []WindowState) int {
	n := 0
	for _, w := range ws {
		if w.IsActive {
			n++
		}
	}
	return n
}

func TestRegistry_OpenStaggersAndActivates(t *testing.T) {
	r := NewRegistry(testViewport)

	first := r.Open("My Computer")
	if first != "window-My Computer-0" {
		t.Fatalf("first id = %q", first)
	}
	w, _ := r.Get(first)
	if w.Position != (geometry.Point{X: 100, Y: 100}) || w.Size != (geometry.Size{Width: 800, Height: 600}) {
		t.Fatalf("first window = %+v", w)
	}

	second := r.Open("Notes")
	w2, _ := r.Get(second)
	if w2.Position != (geometry.Point{X: 120, Y: 120}) || w2.Size != (geometry.Size{Width: 500, Height: 400}) {
		t.Fatalf("second window = %+v", w2)
	}
	if r.ActiveID() != second {
		t.Fatalf("active = %q, want %q", r.ActiveID(), second)
	}
	if n := activeCount(r.Windows()); n != 1 {
		t.Fatalf("active count = %d", n)
	}
}

func TestRegistry_OpenClampsToSmallViewport(t *testing.T) {
	r := NewRegistry(geometry.Size{Width: 600, Height: 500})
	id := r.Open("My Computer")
	w, _ := r.Get(id)
	if w.Position != (geometry.Point{}) {
		t.Fatalf("oversized window must pin to origin, got %v", w.Position)
	}

	id = r.Open("Notes")
	w, _ = r.Get(id)
	if w.Position != (geometry.Point{X: 100, Y: 100}) {
		t.Fatalf("position = %v, want clamp to (100,100)", w.Position)
	}
}

func TestRegistry_IDsNeverReused(t *testing.T) {
	r := NewRegistry(testViewport)
	a := r.Open("A")
	r.Close(a)
	b := r.Open("A")
	if a == b {
		t.Fatalf("id %q reused", a)
	}
	if b != "window-A-1" {
		t.Fatalf("second id = %q", b)
	}
}

func TestRegistry_ClosePromotesLastRemaining(t *testing.T) {
	r := NewRegistry(testViewport)
	a := r.Open("A")
	b := r.Open("B")
	c := r.Open("C")

	r.Activate(a)
	r.Close(a)
	if r.ActiveID() != c {
		t.Fatalf("active = %q, want last remaining %q", r.ActiveID(), c)
	}

	r.Close(c)
	if r.ActiveID() != b {
		t.Fatalf("active = %q, want %q", r.ActiveID(), b)
	}

	r.Close(b)
	if r.Len() != 0 || r.ActiveID() != "" {
		t.Fatalf("empty registry must have no active window, len=%d active=%q", r.Len(), r.ActiveID())
	}
}

func TestRegistry_UnknownIDsAreNoOps(t *testing.T) {
	r := NewRegistry(testViewport)
	a := r.Open("A")
	before := r.Windows()

	if r.Close("missing") {
		t.Fatal("Close(missing) reported a change")
	}
	if r.Activate("missing") {
		t.Fatal("Activate(missing) reported a change")
	}
	if r.UpdatePosition("missing", geometry.Point{X: 5}) {
		t.Fatal("UpdatePosition(missing) reported a change")
	}
	if !reflect.DeepEqual(before, r.Windows()) {
		t.Fatalf("state changed: %+v -> %+v", before, r.Windows())
	}
	if r.ActiveID() != a {
		t.Fatalf("active = %q", r.ActiveID())
	}
}

func TestRegistry_ActivateKeepsOrder(t *testing.T) {
	r := NewRegistry(testViewport)
	a := r.Open("A")
	b := r.Open("B")
	r.Activate(a)

	ws := r.Windows()
	if ws[0].ID != a || ws[1].ID != b {
		t.Fatalf("insertion order changed: %v, %v", ws[0].ID, ws[1].ID)
	}
	if !ws[0].IsActive || ws[1].IsActive {
		t.Fatalf("activation flags = %v, %v", ws[0].IsActive, ws[1].IsActive)
	}
}

func TestRegistry_UpdatePositionClamps(t *testing.T) {
	r := NewRegistry(testViewport)
	id := r.Open("Notes")

	tests := []struct {
		name string
		in   geometry.Point
		want geometry.Point
	}{
		{"inside", geometry.Point{X: 300, Y: 200}, geometry.Point{X: 300, Y: 200}},
		{"negative", geometry.Point{X: -50, Y: -1}, geometry.Point{X: 0, Y: 0}},
		{"past edge", geometry.Point{X: 2000, Y: 2000}, geometry.Point{X: 780, Y: 400}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.UpdatePosition(id, tt.in)
			w, _ := r.Get(id)
			if w.Position != tt.want {
				t.Fatalf("position = %v, want %v", w.Position, tt.want)
			}
		})
	}
}

func TestRegistry_SetViewportReclamps(t *testing.T) {
	r := NewRegistry(testViewport)
	id := r.Open("Notes")
	r.UpdatePosition(id, geometry.Point{X: 700, Y: 380})

	moved := r.SetViewport(geometry.Size{Width: 800, Height: 600})
	if len(moved) != 1 || moved[0] != id {
		t.Fatalf("moved = %v", moved)
	}
	w, _ := r.Get(id)
	if w.Position != (geometry.Point{X: 300, Y: 200}) {
		t.Fatalf("position = %v", w.Position)
	}
}

func TestRegistry_RenderSizeDoesNotMutate(t *testing.T) {
	r := NewRegistry(geometry.Size{Width: 600, Height: 500})
	id := r.Open("My Computer")

	got, ok := r.RenderSize(id)
	if !ok {
		t.Fatal("RenderSize not found")
	}
	if got != (geometry.Size{Width: 540, Height: 400}) {
		t.Fatalf("render size = %v", got)
	}
	w, _ := r.Get(id)
	if w.Size != (geometry.Size{Width: 800, Height: 600}) {
		t.Fatalf("stored size mutated: %v", w.Size)
	}
}

func TestRegistry_SingleActiveAcrossSequences(t *testing.T) {
	names := []string{"My Computer", "Notes", "Paint", "Solitaire"}
	for seed := int64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			r := NewRegistry(testViewport)
			var ids []string
			pick := func() string {
				// Unknown ids must be harmless no-ops.
				if len(ids) == 0 || rng.Intn(5) == 0 {
					return "window-missing-99"
				}
				return ids[rng.Intn(len(ids))]
			}

			for step := 0; step < 200; step++ {
				var op string
				switch rng.Intn(5) {
				case 0, 1:
					ids = append(ids, r.Open(names[rng.Intn(len(names))]))
					op = "open"
				case 2:
					r.Close(pick())
					op = "close"
				case 3:
					id := pick()
					if r.Activate(id) && r.ActiveID() != id {
						t.Fatalf("step %d: activate %s left %s active", step, id, r.ActiveID())
					}
					op = "activate"
				default:
					r.UpdatePosition(pick(), geometry.Point{X: rng.Intn(3000) - 1000, Y: rng.Intn(2000) - 500})
					op = "move"
				}

				ws := r.Windows()
				if n := activeCount(ws); n > 1 {
					t.Fatalf("step %d (%s): %d active windows", step, op, n)
				}
				if (r.ActiveID() == "") != (r.Len() == 0) {
					t.Fatalf("step %d (%s): active=%q with %d windows", step, op, r.ActiveID(), r.Len())
				}
				if len(ws) != r.Len() {
					t.Fatalf("step %d (%s): Windows()=%d, Len()=%d", step, op, len(ws), r.Len())
				}
			}
		})
	}
}
