package loader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/earclip/advanced"
	"github.com/pkg/errors"
)

// Read the plain text format: the first line is the number of points n, and
// each of the following n lines is a point "[x,y]" with integer coordinates.
// Blank lines are ignored.
func ReadText(r io.Reader) ([]advanced.Point, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning points")
	}
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrMalformed, "missing point count")
	}

	n, err := strconv.Atoi(lines[0])
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "point count %q", lines[0])
	}
	lines = lines[1:]
	if n != len(lines) {
		return nil, errors.Wrapf(ErrMalformed, "expected %d points, found %d", n, len(lines))
	}

	points := make([]advanced.Point, 0, n)
	for i, line := range lines {
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+2)
		}
		points = append(points, point)
	}
	return points, nil
}

func parsePoint(line string) (advanced.Point, error) {
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return advanced.Point{}, errors.Wrapf(ErrMalformed, "point %q is not bracketed", line)
	}
	parts := strings.Split(line[1:len(line)-1], ",")
	if len(parts) != 2 {
		return advanced.Point{}, errors.Wrapf(ErrMalformed, "point %q needs two coordinates", line)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return advanced.Point{}, errors.Wrapf(ErrMalformed, "x value %q", parts[0])
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return advanced.Point{}, errors.Wrapf(ErrMalformed, "y value %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}
