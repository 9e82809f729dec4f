package loader

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/earclip/advanced"
	"github.com/pkg/errors"
)

// Read the points attribute of every <polygon> element in an SVG document.
// Coordinates are taken as is, so a polygon that is counterclockwise on
// screen (y down) is clockwise here.
func ReadSVG(r io.Reader) ([][]advanced.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "svg: %v", err)
	}

	elements := root.FindAll("polygon")
	if len(elements) == 0 {
		return nil, errors.Wrap(ErrMalformed, "no polygons in svg")
	}

	rings := make([][]advanced.Point, 0, len(elements))
	for _, element := range elements {
		ring, err := parsePointList(element.Attributes["points"])
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// SVG point lists separate numbers with commas and/or whitespace.
func parsePointList(s string) ([]advanced.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Wrapf(ErrMalformed, "odd number of coordinates in %q", s)
	}
	points := make([]advanced.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "x value %q", fields[i])
		}
		y, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "y value %q", fields[i+1])
		}
		points = append(points, advanced.Point{X: x, Y: y})
	}
	return points, nil
}
