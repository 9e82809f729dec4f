package advanced

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Twice the signed area of a triangle given by labels, resolved against the
// polygon the labels came from.
func (p *Polygon) TriangleArea2(t Triangle) (int, bool) {
	a, okA := p.Lookup(t.A)
	b, okB := p.Lookup(t.B)
	c, okC := p.Lookup(t.C)
	if !okA || !okB || !okC {
		return 0, false
	}
	return Area2(a, b, c), true
}

// Resolve every triangle's labels to coordinates. This requires the intact
// polygon the list was computed from, since clipping destroys the working
// ring.
func (tl TriangleList) Resolve(p *Polygon) ([][3]Point, bool) {
	index := make(map[int]Point, p.Len())
	p.Walk(func(_ int, v *Vertex) {
		index[v.Label] = v.Point
	})
	result := make([][3]Point, 0, len(tl))
	for _, t := range tl {
		var tri [3]Point
		for i, label := range t.Labels() {
			point, ok := index[label]
			if !ok {
				return nil, false
			}
			tri[i] = point
		}
		result = append(result, tri)
	}
	return result, true
}
