package advanced

import (
	"github.com/pkg/errors"
)

// Polygon is a circular doubly linked list of vertices stored in an arena.
// Vertex handles are indexes into the arena. Clipping unlinks a vertex from
// the ring but leaves its slot in place, so a handle stays valid for the life
// of the polygon even though a clipped vertex must never be followed again.
//
// The vertices must wind counterclockwise. Nothing here re-orients them.
type Polygon struct {
	vertices []Vertex
	anchor   int
	n        int
}

// Build a ring from points in order, labelling each vertex with its 1-based
// position. The anchor is the first point.
func NewPolygon(points []Point) *Polygon {
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = i + 1
	}
	return NewLabeledPolygon(points, labels)
}

// Like NewPolygon, but with caller supplied labels. The label slice must be
// the same length as the point slice.
func NewLabeledPolygon(points []Point, labels []int) *Polygon {
	if len(labels) != len(points) {
		panic("label count does not match point count")
	}
	n := len(points)
	poly := &Polygon{vertices: make([]Vertex, n), n: n}
	for i, p := range points {
		poly.vertices[i] = Vertex{
			Point: p,
			Label: labels[i],
			next:  CircularIndex(i+1, n),
			prev:  CircularIndex(i-1, n),
		}
	}
	return poly
}

// Number of live vertices in the ring.
func (p *Polygon) Len() int {
	return p.n
}

func (p *Polygon) Anchor() int {
	return p.anchor
}

func (p *Polygon) Vertex(h int) *Vertex {
	return &p.vertices[h]
}

func (p *Polygon) Next(h int) int {
	return p.vertices[h].next
}

func (p *Polygon) Prev(h int) int {
	return p.vertices[h].prev
}

func (p *Polygon) point(h int) Point {
	return p.vertices[h].Point
}

// Visit every live vertex once, starting at the anchor and following next
// links.
func (p *Polygon) Walk(fn func(h int, v *Vertex)) {
	if p.n == 0 {
		return
	}
	h := p.anchor
	for {
		fn(h, &p.vertices[h])
		h = p.vertices[h].next
		if h == p.anchor {
			return
		}
	}
}

// The live points in ring order, starting at the anchor.
func (p *Polygon) Points() []Point {
	points := make([]Point, 0, p.n)
	p.Walk(func(_ int, v *Vertex) {
		points = append(points, v.Point)
	})
	return points
}

// The live labels in ring order, starting at the anchor.
func (p *Polygon) Labels() []int {
	labels := make([]int, 0, p.n)
	p.Walk(func(_ int, v *Vertex) {
		labels = append(labels, v.Label)
	})
	return labels
}

// Find the coordinates of the live vertex carrying the label.
func (p *Polygon) Lookup(label int) (Point, bool) {
	var (
		found Point
		ok    bool
	)
	p.Walk(func(_ int, v *Vertex) {
		if !ok && v.Label == label {
			found, ok = v.Point, true
		}
	})
	return found, ok
}

// Unlink a vertex from the ring and move the anchor to its successor. The
// removed vertex keeps its stale links.
func (p *Polygon) remove(h int) {
	prev, next := p.vertices[h].prev, p.vertices[h].next
	p.vertices[prev].next = next
	p.vertices[next].prev = prev
	p.anchor = next
	p.n--
}

// Clone produces an independent ring containing only the live vertices, with
// the same coordinates, ear flags and labels, in the same traversal order. The
// clone's anchor corresponds to this polygon's anchor. Cloning nil gives an
// empty ring.
func (p *Polygon) Clone() *Polygon {
	if p == nil {
		return &Polygon{}
	}
	clone := &Polygon{vertices: make([]Vertex, 0, p.n), n: p.n}
	p.Walk(func(_ int, v *Vertex) {
		i := len(clone.vertices)
		clone.vertices = append(clone.vertices, Vertex{
			Point: v.Point,
			Ear:   v.Ear,
			Label: v.Label,
			next:  CircularIndex(i+1, p.n),
			prev:  CircularIndex(i-1, p.n),
		})
	})
	return clone
}

func ClonePolygon(p *Polygon) *Polygon {
	return p.Clone()
}

// A new polygon with the same vertices and labels in the opposite winding.
// The anchor is kept.
func (p *Polygon) Reverse() *Polygon {
	points := p.Points()
	labels := p.Labels()
	n := len(points)
	for i := 1; i < n-i; i++ {
		points[i], points[n-i] = points[n-i], points[i]
		labels[i], labels[n-i] = labels[n-i], labels[i]
	}
	return NewLabeledPolygon(points, labels)
}

// Twice the signed area of the polygon, by the shoelace formula. Positive for
// counterclockwise rings.
func (p *Polygon) SignedArea2() int {
	area := 0
	p.Walk(func(h int, v *Vertex) {
		next := p.point(v.next)
		area += v.X*next.Y - next.X*v.Y
	})
	return area
}

func (p *Polygon) IsCCW() bool {
	return p.SignedArea2() > 0
}

// Check the ring invariants: links agree in both directions, following next
// links n times returns to the anchor, and no two live vertices share
// coordinates.
func (p *Polygon) Validate() error {
	if p.n < 3 {
		return errors.Wrapf(ErrDegenerate, "ring has %d vertices", p.n)
	}
	seen := make(map[Point]int, p.n)
	h := p.anchor
	for i := 0; i < p.n; i++ {
		v := &p.vertices[h]
		if p.vertices[v.next].prev != h {
			return errors.Errorf("vertex %d: next.prev does not point back", v.Label)
		}
		if p.vertices[v.prev].next != h {
			return errors.Errorf("vertex %d: prev.next does not point back", v.Label)
		}
		if other, ok := seen[v.Point]; ok {
			return errors.Errorf("vertices %d and %d share coordinates %v", other, v.Label, v.Point)
		}
		seen[v.Point] = v.Label
		h = v.next
		if h == p.anchor && i != p.n-1 {
			return errors.Errorf("ring closes after %d vertices, expected %d", i+1, p.n)
		}
	}
	if h != p.anchor {
		return errors.Errorf("ring does not close after %d vertices", p.n)
	}
	return nil
}

// Winding rule point-in-polygon. This is provided primarily for testing, so
// that a triangulation can be checked by sampling.
func (p *Polygon) ContainsPointByEvenOdd(x, y float64) bool {
	return p.CrossingCount(x, y)%2 == 1
}

// Count the edges crossed by a ray from (x, y) toward +X.
func (p *Polygon) CrossingCount(x, y float64) int {
	crossingCount := 0
	p.Walk(func(_ int, v *Vertex) {
		ax, ay := float64(v.X), float64(v.Y)
		next := p.point(v.next)
		bx, by := float64(next.X), float64(next.Y)
		if (ay > y) == (by > y) {
			return
		}
		crossX := ax + (y-ay)*(bx-ax)/(by-ay)
		if x < crossX {
			crossingCount++
		}
	})
	return crossingCount
}
