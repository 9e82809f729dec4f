package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It finds whatever the first polygon is, then
// converts that into a CCW *Polygon. If anything goes wrong, it fails hard.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	points := []Point{}
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.Atoi(coords[0])
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.Atoi(coords[1])
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}
	result := NewPolygon(points)

	// Ensure that the polygon is CCW
	if !result.IsCCW() {
		result = result.Reverse()
	}
	return result
}

// Some ad hoc fixtures

func Square() *Polygon {
	return NewPolygon([]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
}

func SimpleStar() *Polygon {
	var points []Point
	const outerRadius = 50
	const innerRadius = 20
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{
			X: int(math.Round(radius * math.Cos(angle))),
			Y: int(math.Round(radius * math.Sin(angle))),
		})
	}
	return NewPolygon(points)
}

// A convex polygon with n vertices on a circle of radius 1000, snapped to the
// integer grid.
func RoundPolygon(n int) *Polygon {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{
			X: int(math.Round(1000 * math.Cos(angle))),
			Y: int(math.Round(1000 * math.Sin(angle))),
		}
	}
	return NewPolygon(points)
}

// Rectangle with an extra vertex in the middle of every side.
func CollinearRectangle() *Polygon {
	return NewPolygon([]Point{{0, 0}, {5, 0}, {10, 0}, {10, 5}, {10, 10}, {5, 10}, {0, 10}, {0, 5}})
}

func LShape() *Polygon {
	return NewPolygon([]Point{{0, 0}, {20, 0}, {20, 10}, {10, 10}, {10, 20}, {0, 20}})
}
