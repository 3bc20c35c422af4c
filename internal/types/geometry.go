// internal/types/geometry.go
package types

// Point is a cell coordinate on the terminal screen. X is the column, Y the row.
type Point struct {
	X int
	Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is a screen region. W and H are in cells; an empty Rect has W or H <= 0.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// ClampBox keeps a box of size w x h with top-left corner p inside r.
// When the box is larger than r it is pinned to r's top-left corner.
func (r Rect) ClampBox(p Point, w, h int) Point {
	maxX := r.X + r.W - w
	maxY := r.Y + r.H - h
	if p.X > maxX {
		p.X = maxX
	}
	if p.Y > maxY {
		p.Y = maxY
	}
	if p.X < r.X {
		p.X = r.X
	}
	if p.Y < r.Y {
		p.Y = r.Y
	}
	return p
}
