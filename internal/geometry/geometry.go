package geometry

// Point is a position in virtual pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width/height pair in virtual pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents an element's position and size
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectAt builds a Rect from an origin and a size.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rect dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Clamp confines pos so that an element of the given size stays inside the
// viewport. Each axis lands in [0, max(0, viewport-size)].
func Clamp(pos Point, size, viewport Size) Point {
	return Point{
		X: clampAxis(pos.X, viewport.Width-size.Width),
		Y: clampAxis(pos.Y, viewport.Height-size.Height),
	}
}

func clampAxis(v, upper int) int {
	if upper < 0 {
		upper = 0
	}
	if v > upper {
		v = upper
	}
	if v < 0 {
		v = 0
	}
	return v
}

// RenderSize caps size to 90% of the viewport width and 80% of its height.
// The input is returned unchanged when the viewport is unknown.
func RenderSize(size, viewport Size) Size {
	if viewport.Empty() {
		return size
	}
	return Size{
		Width:  min(size.Width, viewport.Width*9/10),
		Height: min(size.Height, viewport.Height*8/10),
	}
}

// CapWidth limits width to percent of the viewport width.
func CapWidth(width int, viewport Size, percent int) int {
	if viewport.Width <= 0 {
		return width
	}
	return min(width, viewport.Width*percent/100)
}

// Center returns the origin that centers an element of the given size in the
// viewport, never negative.
func Center(size, viewport Size) Point {
	return Point{
		X: max(0, (viewport.Width-size.Width)/2),
		Y: max(0, (viewport.Height-size.Height)/2),
	}
}

// Column lays out n equally sized cells top to bottom starting at origin with
// gap pixels between them.
func Column(n int, origin Point, cell Size, gap int) []Rect {
	if n <= 0 {
		return nil
	}
	out := make([]Rect, n)
	for i := 0; i < n; i++ {
		out[i] = Rect{
			X:      origin.X,
			Y:      origin.Y + i*(cell.Height+gap),
			Width:  cell.Width,
			Height: cell.Height,
		}
	}
	return out
}
