// Package render draws a polygon and its triangulation to an image.
package render

import (
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/earclip/advanced"
	"github.com/pkg/errors"
)

type Options struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Padding float64 `yaml:"padding"`
	// Stroke widths in pixels
	EdgeWidth     float64 `yaml:"edge_width"`
	TriangleWidth float64 `yaml:"triangle_width"`
	VertexRadius  float64 `yaml:"vertex_radius"`
	Labels        bool    `yaml:"labels"`
}

func DefaultOptions() Options {
	return Options{
		Width:         1280,
		Height:        720,
		Padding:       10,
		EdgeWidth:     3,
		TriangleWidth: 1,
		VertexRadius:  4,
		Labels:        true,
	}
}

// Draw the polygon with its triangles filled underneath. Triangle labels are
// resolved against the polygon, which must be the intact ring that was
// triangulated. The polygon is not modified; all fitting happens in the
// context's transform.
func Draw(polygon *advanced.Polygon, triangles advanced.TriangleList, opts Options) (*gg.Context, error) {
	if polygon == nil || polygon.Len() == 0 {
		return nil, errors.New("nothing to draw")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("invalid canvas %dx%d", opts.Width, opts.Height)
	}
	corners, ok := triangles.Resolve(polygon)
	if !ok {
		return nil, errors.New("triangle refers to a label not in the polygon")
	}

	points := polygon.Points()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}

	width, height := float64(opts.Width), float64(opts.Height)
	scale := math.Min(
		axisScale(width-2*opts.Padding, maxX-minX),
		axisScale(height-2*opts.Padding, maxY-minY),
	)
	if math.IsInf(scale, 1) || scale <= 0 {
		scale = 1
	}

	c := gg.NewContext(opts.Width, opts.Height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, width, height)
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, height)
	c.Scale(1, -1)
	c.Translate(opts.Padding, opts.Padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Line widths are in pixels, so undo the scale
	for i, tri := range corners {
		c.MoveTo(float64(tri[0].X), float64(tri[0].Y))
		c.LineTo(float64(tri[1].X), float64(tri[1].Y))
		c.LineTo(float64(tri[2].X), float64(tri[2].Y))
		c.ClosePath()
		fill := colorful.Hsv(360*float64(i)/float64(len(corners)), 0.6, 0.9)
		c.SetRGBA(fill.R, fill.G, fill.B, 0.8)
		c.FillPreserve()
		c.SetRGB(0.1, 0.1, 0.1)
		c.SetLineWidth(opts.TriangleWidth / scale)
		c.Stroke()
	}

	c.MoveTo(float64(points[0].X), float64(points[0].Y))
	for _, p := range points[1:] {
		c.LineTo(float64(p.X), float64(p.Y))
	}
	c.ClosePath()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(opts.EdgeWidth / scale)
	c.Stroke()

	labels := polygon.Labels()
	for i, p := range points {
		// Text and dots are drawn in device space so they don't scale or flip
		x, y := c.TransformPoint(float64(p.X), float64(p.Y))
		c.Push()
		c.Identity()
		c.SetRGB(1, 1, 1)
		c.DrawCircle(x, y, opts.VertexRadius)
		c.Fill()
		if opts.Labels {
			c.DrawStringAnchored(strconv.Itoa(labels[i]), x+opts.VertexRadius, y-opts.VertexRadius, 0, 0)
		}
		c.Pop()
	}
	return c, nil
}

func axisScale(available, span float64) float64 {
	if span == 0 {
		return math.Inf(1)
	}
	return available / span
}

// Draw and write a PNG file.
func SavePNG(path string, polygon *advanced.Polygon, triangles advanced.TriangleList, opts Options) error {
	c, err := Draw(polygon, triangles, opts)
	if err != nil {
		return err
	}
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Print a PNG file to an iTerm compatible terminal.
func Preview(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "previewing %s", path)
}
