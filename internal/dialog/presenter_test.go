package dialog

import (
	"testing"

	"github.com/1broseidon/xpdesk/internal/drag"
	"github.com/1broseidon/xpdesk/internal/explorer"
	"github.com/1broseidon/xpdesk/internal/geometry"
	"github.com/1broseidon/xpdesk/internal/pointer"
)

var viewport = geometry.Size{Width: 1000, Height: 800}

func TestWidth(t *testing.T) {
	tests := []struct {
		kind     explorer.Kind
		viewport geometry.Size
		want     int
	}{
		{explorer.KindAbout, viewport, 400},
		{explorer.KindContact, viewport, 400},
		{explorer.KindFirstBus, viewport, 600},
		{explorer.KindLondonConsultants, geometry.Size{Width: 500, Height: 800}, 450},
		{explorer.KindAbout, geometry.Size{Width: 300, Height: 800}, 270},
	}
	for _, tt := range tests {
		if got := Width(tt.kind, tt.viewport); got != tt.want {
			t.Errorf("Width(%v, %v) = %d, want %d", tt.kind, tt.viewport, got, tt.want)
		}
	}
}

func TestPresenter_OpenCentersAndStacks(t *testing.T) {
	p := NewPresenter(pointer.NewDocument(), nil)

	if !p.Open(explorer.KindAbout, geometry.Size{Width: 400, Height: 200}, viewport) {
		t.Fatal("first open failed")
	}
	about, _ := p.Get(explorer.KindAbout)
	if about.Position != (geometry.Point{X: 300, Y: 300}) {
		t.Fatalf("about position = %v", about.Position)
	}

	p.Open(explorer.KindContact, geometry.Size{Width: 400, Height: 400}, viewport)
	if p.Len() != 2 || !p.IsOpen(explorer.KindAbout) {
		t.Fatal("opening one dialog must not close another")
	}
	top, _ := p.Top()
	if top.Kind != explorer.KindContact {
		t.Fatalf("top = %v", top.Kind)
	}
}

func TestPresenter_OpenTwiceIsNoOp(t *testing.T) {
	p := NewPresenter(pointer.NewDocument(), nil)
	p.Open(explorer.KindAbout, geometry.Size{Width: 400, Height: 200}, viewport)
	about, _ := p.Get(explorer.KindAbout)
	about.MoveTo(geometry.Point{X: 10, Y: 10})

	if p.Open(explorer.KindAbout, geometry.Size{Width: 400, Height: 200}, viewport) {
		t.Fatal("second open reported a change")
	}
	if about.Position != (geometry.Point{X: 10, Y: 10}) || p.Len() != 1 {
		t.Fatalf("second open recentered or duplicated: %v len=%d", about.Position, p.Len())
	}
}

func TestPresenter_CenterNeverNegative(t *testing.T) {
	p := NewPresenter(pointer.NewDocument(), nil)
	p.Open(explorer.KindFirstBus, geometry.Size{Width: 600, Height: 1200}, viewport)
	inst, _ := p.Get(explorer.KindFirstBus)
	if inst.Position != (geometry.Point{X: 200, Y: 0}) {
		t.Fatalf("position = %v", inst.Position)
	}
}

func TestPresenter_InvalidKind(t *testing.T) {
	p := NewPresenter(pointer.NewDocument(), nil)
	if p.Open(explorer.KindNone, geometry.Size{Width: 1, Height: 1}, viewport) {
		t.Fatal("KindNone must not open")
	}
	if p.Close(explorer.KindAbout) {
		t.Fatal("closing a closed dialog reported a change")
	}
}

func TestPresenter_DragAndClose(t *testing.T) {
	doc := pointer.NewDocument()
	p := NewPresenter(doc, nil)
	p.Open(explorer.KindAbout, geometry.Size{Width: 400, Height: 200}, viewport)
	p.Open(explorer.KindContact, geometry.Size{Width: 400, Height: 200}, viewport)

	about, _ := p.Get(explorer.KindAbout)
	grab := about.Position.Add(geometry.Point{X: 20, Y: 5})
	if !p.Press(explorer.KindAbout, drag.RegionTitleBar, grab, viewport) {
		t.Fatal("title bar press should drag")
	}
	if top, _ := p.Top(); top.Kind != explorer.KindAbout {
		t.Fatalf("press should raise About, top = %v", top.Kind)
	}

	doc.Dispatch(pointer.Event{Kind: pointer.EventMove, Pos: geometry.Point{X: 5000, Y: -40}})
	if about.Position != (geometry.Point{X: 600, Y: 0}) {
		t.Fatalf("dragged position = %v", about.Position)
	}

	p.Close(explorer.KindAbout)
	if doc.TotalListeners() != 0 {
		t.Fatalf("close left %d listeners", doc.TotalListeners())
	}
	if p.IsOpen(explorer.KindAbout) || p.Len() != 1 {
		t.Fatal("About should be closed")
	}
}

func TestPresenter_ButtonPressDoesNotDrag(t *testing.T) {
	doc := pointer.NewDocument()
	p := NewPresenter(doc, nil)
	p.Open(explorer.KindAbout, geometry.Size{Width: 400, Height: 200}, viewport)
	if p.Press(explorer.KindAbout, drag.RegionButton, geometry.Point{X: 680, Y: 305}, viewport) {
		t.Fatal("button press must not drag")
	}
	if doc.TotalListeners() != 0 {
		t.Fatalf("listeners = %d", doc.TotalListeners())
	}
}

func TestPresenter_Preview(t *testing.T) {
	p := NewPresenter(pointer.NewDocument(), nil)
	if _, ok := p.Preview(); ok {
		t.Fatal("no preview expected")
	}
	img := explorer.Image{Src: "/projects/bus1.png", Alt: "FirstBus Screenshot 1"}
	p.OpenPreview(img)
	if got, ok := p.Preview(); !ok || got != img {
		t.Fatalf("preview = %+v, %v", got, ok)
	}
	p.ClosePreview()
	if _, ok := p.Preview(); ok {
		t.Fatal("preview should be closed")
	}
}

func TestPresenter_CloseAll(t *testing.T) {
	doc := pointer.NewDocument()
	p := NewPresenter(doc, nil)
	for _, k := range explorer.Kinds() {
		p.Open(k, geometry.Size{Width: 100, Height: 100}, viewport)
	}
	p.OpenPreview(explorer.Image{Src: "x"})
	p.CloseAll()
	if p.Len() != 0 {
		t.Fatalf("len = %d", p.Len())
	}
	if _, ok := p.Preview(); ok {
		t.Fatal("preview should be closed")
	}
}
