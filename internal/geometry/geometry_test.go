package geometry

import "testing"

func TestClamp(t *testing.T) {
	viewport := Size{Width: 1000, Height: 700}
	size := Size{Width: 500, Height: 400}

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{X: 100, Y: 120}, Point{X: 100, Y: 120}},
		{"negative", Point{X: -50, Y: -1}, Point{X: 0, Y: 0}},
		{"oversized", Point{X: 5000, Y: 9000}, Point{X: 500, Y: 300}},
		{"edge", Point{X: 500, Y: 300}, Point{X: 500, Y: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.in, size, viewport); got != tt.want {
				t.Fatalf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClamp_ElementLargerThanViewport(t *testing.T) {
	got := Clamp(Point{X: 40, Y: 40}, Size{Width: 800, Height: 600}, Size{Width: 640, Height: 480})
	if got != (Point{}) {
		t.Fatalf("expected origin when element exceeds viewport, got %v", got)
	}
}

func TestRenderSize(t *testing.T) {
	size := Size{Width: 800, Height: 600}

	got := RenderSize(size, Size{Width: 2000, Height: 1000})
	if got != size {
		t.Fatalf("large viewport: got %v, want %v", got, size)
	}

	got = RenderSize(size, Size{Width: 600, Height: 500})
	if got != (Size{Width: 540, Height: 400}) {
		t.Fatalf("small viewport: got %v", got)
	}
	if size.Width != 800 || size.Height != 600 {
		t.Fatalf("input mutated: %v", size)
	}

	if got := RenderSize(size, Size{}); got != size {
		t.Fatalf("unknown viewport: got %v", got)
	}
}

func TestCenter(t *testing.T) {
	got := Center(Size{Width: 400, Height: 200}, Size{Width: 1000, Height: 600})
	if got != (Point{X: 300, Y: 200}) {
		t.Fatalf("Center = %v", got)
	}
	got = Center(Size{Width: 1400, Height: 200}, Size{Width: 1000, Height: 600})
	if got.X != 0 {
		t.Fatalf("Center should not go negative, got %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 5, Height: 5}
	if !r.Contains(Point{X: 10, Y: 10}) {
		t.Fatal("expected top-left corner inside")
	}
	if r.Contains(Point{X: 15, Y: 12}) {
		t.Fatal("right edge should be exclusive")
	}
	if r.Contains(Point{X: 12, Y: 15}) {
		t.Fatal("bottom edge should be exclusive")
	}
}

func TestColumn(t *testing.T) {
	rects := Column(3, Point{X: 16, Y: 16}, Size{Width: 70, Height: 80}, 24)
	if len(rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(rects))
	}
	if rects[2].Y != 16+2*(80+24) {
		t.Fatalf("rects[2].Y = %d", rects[2].Y)
	}
	if Column(0, Point{}, Size{}, 0) != nil {
		t.Fatal("expected nil for n=0")
	}
}
