package advanced

// Geometric predicates for ear clipping, in the style of O'Rourke's
// "Computational Geometry in C". All of them are pure functions of
// coordinates, except the ring predicates at the bottom, which also follow the
// neighbor links of a Polygon.

// Orientation of a point relative to a directed line.
type Orientation int

const (
	Clockwise Orientation = iota - 1
	Collinear
	CounterClockwise
)

var orientationLabels = [3]string{"Clockwise", "Collinear", "CounterClockwise"}

func (o Orientation) String() string {
	return orientationLabels[int(o+1)]
}

// Twice the signed area of triangle abc. Positive when abc winds
// counterclockwise.
func Area2(a, b, c Point) int {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// Sign of Area2, computed with float64 products. Anything inside (-0.5, 0.5)
// is Collinear. For coordinates too large for float64 to multiply exactly this
// can disagree with the sign of Area2.
func AreaSign(a, b, c Point) Orientation {
	a1 := float64(b.X-a.X) * float64(c.Y-a.Y)
	a2 := float64(c.X-a.X) * float64(b.Y-a.Y)
	area2 := a1 - a2

	if area2 > 0.5 {
		return CounterClockwise
	}
	if area2 < -0.5 {
		return Clockwise
	}
	return Collinear
}

// Is c strictly left of the directed line a->b?
func Left(a, b, c Point) bool {
	return AreaSign(a, b, c) > 0
}

// Is c left of or on the directed line a->b?
func LeftOn(a, b, c Point) bool {
	return AreaSign(a, b, c) >= 0
}

func IsCollinear(a, b, c Point) bool {
	return AreaSign(a, b, c) == Collinear
}

// Does c lie on the closed segment ab? The range test uses X unless ab is
// vertical, in which case it uses Y.
func Between(a, b, c Point) bool {
	if !IsCollinear(a, b, c) {
		return false
	}

	if a.X != b.X {
		return (a.X <= c.X && c.X <= b.X) || (a.X >= c.X && c.X >= b.X)
	}
	return (a.Y <= c.Y && c.Y <= b.Y) || (a.Y >= c.Y && c.Y >= b.Y)
}

// Do ab and cd cross at a single point interior to both? Any collinear triple
// rules this out.
func ProperIntersect(a, b, c, d Point) bool {
	if IsCollinear(a, b, c) || IsCollinear(a, b, d) || IsCollinear(c, d, a) || IsCollinear(c, d, b) {
		return false
	}
	return (Left(a, b, c) != Left(a, b, d)) && (Left(c, d, a) != Left(c, d, b))
}

// Do the closed segments ab and cd share any point? Touching at an endpoint
// and collinear overlap both count.
func SegmentsIntersect(a, b, c, d Point) bool {
	if ProperIntersect(a, b, c, d) {
		return true
	}
	return Between(a, b, c) || Between(a, b, d) || Between(c, d, a) || Between(c, d, b)
}

// Does the segment from vertex a to vertex b leave a into the interior of the
// polygon? That is, does it lie inside the cone formed at a by its two
// neighbors?
func (p *Polygon) InCone(a, b int) bool {
	pa, pb := p.point(a), p.point(b)
	a0 := p.point(p.Prev(a))
	a1 := p.point(p.Next(a))

	// Convex vertex: b must be strictly inside both half planes
	if LeftOn(pa, a1, a0) {
		return Left(pa, pb, a0) && Left(pb, pa, a1)
	}
	// Reflex vertex: b must not be in the exterior cone
	return !(LeftOn(pa, pb, a1) && Left(pb, pa, a0))
}

// Does the segment between vertices a and b cross no edge of the polygon,
// ignoring the edges incident to a or b?
func (p *Polygon) Diagonalie(a, b int) bool {
	pa, pb := p.point(a), p.point(b)
	c := p.anchor
	for {
		c1 := p.Next(c)
		if c != a && c1 != a && c != b && c1 != b && SegmentsIntersect(pa, pb, p.point(c), p.point(c1)) {
			return false
		}
		c = c1
		if c == p.anchor {
			return true
		}
	}
}

// Is the segment between vertices a and b a proper internal diagonal?
func (p *Polygon) IsDiagonal(a, b int) bool {
	return p.InCone(a, b) && p.InCone(b, a) && p.Diagonalie(a, b)
}
