// Ear clipping triangulation for Go.
//
// This package converts a simple polygon, given as integer points in
// counterclockwise order, into triangles whose corners are the original
// points. Triangles are reported as the 1-based positions of their corners in
// the input.
//
// The polygon must be simple and wind counterclockwise. Neither is validated
// up front; a polygon that breaks either rule fails with an error wrapping
// advanced.ErrNoEar. See the advanced package to drive the vertex ring
// directly.
package earclip

import "github.com/osuushi/earclip/advanced"

type Point = advanced.Point
type Triangle = advanced.Triangle
type Polygon = advanced.Polygon

// Take a list of points and convert it into len(points)-2 triangles.
func Triangulate(points []Point) ([]Triangle, error) {
	triangles, err := advanced.Triangulate(advanced.NewPolygon(points))
	if err != nil {
		return nil, err
	}
	return []Triangle(triangles), nil
}

// Build a polygon labelled by 1-based position, for callers that want to keep
// the ring around to resolve labels after triangulating.
func NewPolygon(points []Point) *Polygon {
	return advanced.NewPolygon(points)
}

func ClonePolygon(polygon *Polygon) *Polygon {
	return advanced.ClonePolygon(polygon)
}
