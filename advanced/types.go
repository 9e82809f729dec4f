package advanced

import "fmt"

// Coordinates are integers. Every predicate works on exact integer differences
// and only promotes to float64 for the final products in AreaSign.
type Point struct {
	X int
	Y int
}

// A Vertex is a node of the polygon ring. Next and previous neighbors are
// handles into the owning Polygon's arena rather than pointers, so relinking
// during clipping is a matter of rewriting two integers.
type Vertex struct {
	Point
	// Is the vertex currently an ear? Only meaningful after InitEars.
	Ear bool
	// Opaque identifier carried through cloning. Triangles are reported in
	// terms of labels.
	Label int

	next, prev int
}

// A triangle is reported as the labels of the three vertices, in the order
// they sat in the ring when the ear was clipped: (prev, ear, next).
type Triangle struct {
	A, B, C int
}

type TriangleList []Triangle

func (t Triangle) Labels() [3]int {
	return [3]int{t.A, t.B, t.C}
}

func (t Triangle) String() string {
	return fmt.Sprintf("[%d,%d,%d]", t.A, t.B, t.C)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
