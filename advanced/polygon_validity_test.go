package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. There are exactly n-2 triangles.
// 2. Each triangle has three distinct labels, all from the polygon, and the set
// of labels used equals the set of labels in the polygon.
// 3. The edges of the polygon are a subset of the edges of the triangles.
// 4. Every triangle is counterclockwise with non-zero area.
// 5. The sum of the areas of all triangles is equal to the area of the polygon.
func AssertValidTriangulation(t *testing.T, polygon *Polygon, triangles TriangleList) {
	t.Helper()
	require.True(t, polygon.IsCCW(), "polygon is not counterclockwise")
	require.Len(t, triangles, polygon.Len()-2)

	polyLabels := make(map[int]struct{})
	for _, label := range polygon.Labels() {
		polyLabels[label] = struct{}{}
	}
	triangleLabels := make(map[int]struct{})
	triangleEdges := make(labelEdgeSet)
	triangleArea := 0
	for _, tri := range triangles {
		require.NotEqual(t, tri.A, tri.B, "repeated label in %s", tri)
		require.NotEqual(t, tri.B, tri.C, "repeated label in %s", tri)
		require.NotEqual(t, tri.A, tri.C, "repeated label in %s", tri)
		for _, label := range tri.Labels() {
			_, ok := polyLabels[label]
			require.True(t, ok, "label %d of %s is not in the polygon", label, tri)
			triangleLabels[label] = struct{}{}
		}

		area, ok := polygon.TriangleArea2(tri)
		require.True(t, ok)
		require.Greater(t, area, 0, "triangle %s is not strictly counterclockwise", tri)
		triangleArea += area

		triangleEdges.add(tri.A, tri.B)
		triangleEdges.add(tri.B, tri.C)
		triangleEdges.add(tri.C, tri.A)
	}
	require.Equal(t, polyLabels, triangleLabels, "set of labels in the triangles must equal the set of labels in the polygon")

	polygon.Walk(func(h int, v *Vertex) {
		next := polygon.Vertex(polygon.Next(h)).Label
		require.True(t, triangleEdges.contains(v.Label, next), "polygon edge %d-%d is not a triangle edge", v.Label, next)
	})

	require.Equal(t, polygon.SignedArea2(), triangleArea, "sum of the areas of the triangles must equal the area of the polygon")
}

// Edges keyed by label, with the smaller label first
type labelEdge struct {
	lower, upper int
}

type labelEdgeSet map[labelEdge]struct{}

func newLabelEdge(a, b int) labelEdge {
	if a < b {
		return labelEdge{a, b}
	}
	return labelEdge{b, a}
}

func (set labelEdgeSet) add(a, b int) {
	set[newLabelEdge(a, b)] = struct{}{}
}

func (set labelEdgeSet) contains(a, b int) bool {
	_, ok := set[newLabelEdge(a, b)]
	return ok
}

// Sample a grid over the bounding box and check that every sample inside the
// polygon is inside exactly one triangle, and every sample outside it is in
// none. Samples too close to a triangle edge are skipped.
func validateTriangulationBySampling(t *testing.T, polygon *Polygon, triangles TriangleList) {
	t.Helper()
	resolved, ok := triangles.Resolve(polygon)
	require.True(t, ok, "triangles reference labels missing from the polygon")

	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range polygon.Points() {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50

	for y := minY + step/2; y <= maxY; y += step {
		for x := minX + step/2; x <= maxX; x += step {
			if onBoundary(resolved, x, y) {
				continue
			}
			hits := 0
			for _, tri := range resolved {
				if triangleContains(tri, x, y) {
					hits++
				}
			}
			if polygon.ContainsPointByEvenOdd(x, y) {
				assert.Equal(t, 1, hits, "point (%v, %v) should be in exactly one triangle", x, y)
			} else {
				assert.Equal(t, 0, hits, "point (%v, %v) should not be in any triangle", x, y)
			}
		}
	}
}

func sideOf(a, b [2]float64, x, y float64) float64 {
	return (b[0]-a[0])*(y-a[1]) - (x-a[0])*(b[1]-a[1])
}

func corners(tri [3]Point) [3][2]float64 {
	var result [3][2]float64
	for i, p := range tri {
		result[i] = [2]float64{float64(p.X), float64(p.Y)}
	}
	return result
}

func triangleContains(tri [3]Point, x, y float64) bool {
	c := corners(tri)
	return sideOf(c[0], c[1], x, y) > 0 && sideOf(c[1], c[2], x, y) > 0 && sideOf(c[2], c[0], x, y) > 0
}

// Too close to a triangle edge to classify reliably
func onBoundary(resolved [][3]Point, x, y float64) bool {
	for _, tri := range resolved {
		c := corners(tri)
		for i := 0; i < 3; i++ {
			a, b := c[i], c[(i+1)%3]
			length := math.Hypot(b[0]-a[0], b[1]-a[1])
			if math.Abs(sideOf(a, b, x, y))/length < 1e-6 {
				return true
			}
		}
	}
	return false
}
