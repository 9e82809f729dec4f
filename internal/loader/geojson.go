package loader

import (
	"io"
	"math"

	"github.com/goccy/go-json"
	"github.com/osuushi/earclip/advanced"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Read the outer rings of every polygon in a GeoJSON document. The document
// may be a bare geometry, a Feature or a FeatureCollection; Polygon and
// MultiPolygon geometries contribute rings, and anything else is an error.
// Holes are ignored. Coordinates must be whole numbers.
func ReadGeoJSON(r io.Reader) ([][]advanced.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading geojson")
	}

	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "geojson: %v", err)
	}

	var geometries []orb.Geometry
	switch header.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "geojson: %v", err)
		}
		for _, feature := range fc.Features {
			geometries = append(geometries, feature.Geometry)
		}
	case "Feature":
		feature, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "geojson: %v", err)
		}
		geometries = append(geometries, feature.Geometry)
	default:
		geometry, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "geojson: %v", err)
		}
		geometries = append(geometries, geometry.Geometry())
	}

	var rings [][]advanced.Point
	for _, geometry := range geometries {
		switch g := geometry.(type) {
		case orb.Polygon:
			ring, err := outerRing(g)
			if err != nil {
				return nil, err
			}
			rings = append(rings, ring)
		case orb.MultiPolygon:
			for _, polygon := range g {
				ring, err := outerRing(polygon)
				if err != nil {
					return nil, err
				}
				rings = append(rings, ring)
			}
		default:
			return nil, errors.Wrapf(ErrMalformed, "unsupported geometry %T", geometry)
		}
	}
	if len(rings) == 0 {
		return nil, errors.Wrap(ErrMalformed, "no polygons in geojson")
	}
	return rings, nil
}

func outerRing(polygon orb.Polygon) ([]advanced.Point, error) {
	if len(polygon) == 0 {
		return nil, errors.Wrap(ErrMalformed, "polygon without rings")
	}
	ring := polygon[0]
	// GeoJSON rings repeat the first point at the end
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	points := make([]advanced.Point, 0, len(ring))
	for _, p := range ring {
		x, okX := toInt(p.X())
		y, okY := toInt(p.Y())
		if !okX || !okY {
			return nil, errors.Wrapf(ErrMalformed, "coordinate %v is not an integer in range", p)
		}
		points = append(points, advanced.Point{X: x, Y: y})
	}
	return points, nil
}

// Convert a whole number that fits in an int. The upper bound is exclusive
// because float64(math.MaxInt) rounds up to 2^63.
func toInt(v float64) (int, bool) {
	if v != math.Trunc(v) || v < math.MinInt || v >= -float64(math.MinInt) {
		return 0, false
	}
	return int(v), true
}
