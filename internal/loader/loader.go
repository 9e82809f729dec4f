// Package loader turns point lists from files into polygons for the
// triangulation engine. It is responsible for everything the engine assumes
// but does not check: parseable input, at least three distinct points, and
// (optionally) counterclockwise winding.
package loader

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/earclip/advanced"
	"github.com/pkg/errors"
)

var (
	ErrMalformed    = errors.New("malformed input")
	ErrTooFewPoints = errors.New("fewer than 3 distinct points")
)

type Options struct {
	// Reverse clockwise rings instead of handing them to the engine as is.
	Reorient bool
}

// A polygon read from a source, with a name for reporting.
type Shape struct {
	Name    string
	Polygon *advanced.Polygon
}

// Remove repeated points, keeping the first occurrence of each.
func Dedup(points []advanced.Point) []advanced.Point {
	seen := make(map[advanced.Point]struct{}, len(points))
	result := make([]advanced.Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}

// Build a polygon from raw points. Duplicates are removed before labels are
// assigned, so labels are 1-based positions in the deduplicated list.
func Build(points []advanced.Point, opts Options) (*advanced.Polygon, error) {
	points = Dedup(points)
	if len(points) < 3 {
		return nil, errors.Wrapf(ErrTooFewPoints, "%d distinct points", len(points))
	}
	polygon := advanced.NewPolygon(points)
	if opts.Reorient && !polygon.IsCCW() {
		polygon = polygon.Reverse()
	}
	if err := polygon.Validate(); err != nil {
		return nil, errors.Wrap(err, "building polygon")
	}
	return polygon, nil
}

// Load every polygon in a file. The format is picked by extension: .svg,
// .geojson and .json are parsed as such, anything else is the plain text
// format.
func LoadFile(path string, opts Options) ([]Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	var rings [][]advanced.Point
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		rings, err = ReadSVG(f)
	case ".geojson", ".json":
		rings, err = ReadGeoJSON(f)
	default:
		var ring []advanced.Point
		ring, err = ReadText(f)
		rings = [][]advanced.Point{ring}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	shapes := make([]Shape, 0, len(rings))
	for i, ring := range rings {
		name := path
		if len(rings) > 1 {
			name = path + "#" + strconv.Itoa(i+1)
		}
		polygon, err := Build(ring, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", name)
		}
		shapes = append(shapes, Shape{Name: name, Polygon: polygon})
	}
	return shapes, nil
}
