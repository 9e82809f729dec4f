package advanced

import (
	"io"
	"log"
)

// Ear clipping triangulation of a simple polygon whose vertices wind
// counterclockwise.
//
// A vertex is an ear when the segment joining its two neighbors is a proper
// internal diagonal, so cutting the vertex off leaves a simple polygon. Each
// step clips the first ear found scanning from the anchor, emits the clipped
// triangle, and recomputes the ear flags of only the two vertices that gained
// a new edge. Every other vertex keeps its flag. The loop runs n-3 times and
// each ear test walks the ring, so the worst case is O(n²).

// Engine holds the options for a triangulation. The zero value is ready to
// use. An Engine holds no state between calls, so one can be shared by
// concurrent callers.
type Engine struct {
	// Receives a trace line for every clipped ear. Nil discards.
	Logger *log.Logger
}

var discardLogger = log.New(io.Discard, "", 0)

func (e *Engine) logger() *log.Logger {
	if e == nil || e.Logger == nil {
		return discardLogger
	}
	return e.Logger
}

// Triangulate with a zero Engine.
func Triangulate(polygon *Polygon) (TriangleList, error) {
	var e Engine
	return e.Triangulate(polygon)
}

// Triangulate a polygon into Len()-2 triangles. The polygon is cloned first,
// and only the clone is consumed, so the caller's polygon is left intact and
// can be used to resolve the returned labels.
//
// If the ring runs out of ears before three vertices remain, the input was not
// a simple counterclockwise polygon, and the error wraps ErrNoEar. No partial
// result is returned in that case.
func (e *Engine) Triangulate(polygon *Polygon) (result TriangleList, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return e.clipEars(polygon.Clone()), nil
}

// Set the ear flag of every vertex in the ring.
func (p *Polygon) InitEars() {
	p.Walk(func(h int, v *Vertex) {
		v.Ear = p.IsDiagonal(v.prev, v.next)
	})
}

// Find the first ear scanning from the anchor. Returns -1 if there is none.
func (p *Polygon) findEar() int {
	found := -1
	p.Walk(func(h int, v *Vertex) {
		if found < 0 && v.Ear {
			found = h
		}
	})
	return found
}

// Destructively triangulate the ring. On return the ring has three vertices
// left and every clipped vertex has been unlinked. The ear flags of the new
// diagonal's endpoints are recomputed after the ear is unlinked rather than
// before, which can change the clip order on some inputs.
func (e *Engine) clipEars(p *Polygon) TriangleList {
	if p.Len() < 3 {
		fatal(ErrDegenerate, "cannot triangulate %d vertices", p.Len())
	}
	logger := e.logger()

	triangles := make(TriangleList, 0, p.Len()-2)
	p.InitEars()

	for p.Len() > 3 {
		v2 := p.findEar()
		if v2 < 0 {
			fatal(ErrNoEar, "%d vertices remain after %d triangles", p.Len(), len(triangles))
		}
		v1 := p.Prev(v2)
		v3 := p.Next(v2)
		v0 := p.Prev(v1)
		v4 := p.Next(v3)

		// v1-v3 is the new diagonal
		tri := Triangle{p.Vertex(v1).Label, p.Vertex(v2).Label, p.Vertex(v3).Label}
		triangles = append(triangles, tri)
		logger.Printf("clipped ear %d as %s, %d vertices left", tri.B, tri, p.Len()-1)

		// Cut the ear off. From here on v2's links are stale.
		p.remove(v2)

		// Only the diagonal's endpoints can have changed ear status
		p.Vertex(v1).Ear = p.IsDiagonal(v0, v3)
		p.Vertex(v3).Ear = p.IsDiagonal(v1, v4)
	}

	v2 := p.Anchor()
	tri := Triangle{p.Vertex(p.Prev(v2)).Label, p.Vertex(v2).Label, p.Vertex(p.Next(v2)).Label}
	triangles = append(triangles, tri)
	logger.Printf("final triangle %s", tri)
	return triangles
}
