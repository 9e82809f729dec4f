// Package format writes triangulations for people and programs.
package format

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earclip/advanced"
	"github.com/pkg/errors"
)

const (
	Text = "text"
	JSON = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// The JSON shape of a triangulation.
type Document struct {
	Name      string   `json:"name,omitempty"`
	Count     int      `json:"count"`
	Triangles [][3]int `json:"triangles"`
	Error     string   `json:"error,omitempty"`
}

func NewDocument(triangles advanced.TriangleList) Document {
	doc := Document{
		Count:     len(triangles),
		Triangles: make([][3]int, 0, len(triangles)),
	}
	for _, t := range triangles {
		doc.Triangles = append(doc.Triangles, t.Labels())
	}
	return doc
}

// Write the triangle count, then one "[a,b,c]" line per triangle. There is no
// trailing newline. With color off the output is plain ASCII.
func WriteText(w io.Writer, triangles advanced.TriangleList, color bool) error {
	au := aurora.NewAurora(color)
	if _, err := fmt.Fprintf(w, "%v", au.Bold(len(triangles))); err != nil {
		return errors.Wrap(err, "writing triangle count")
	}
	for _, t := range triangles {
		_, err := fmt.Fprintf(w, "\n[%v,%v,%v]",
			au.Cyan(t.A), au.Cyan(t.B), au.Cyan(t.C))
		if err != nil {
			return errors.Wrap(err, "writing triangle")
		}
	}
	return nil
}

// Write a single indented Document.
func WriteJSON(w io.Writer, triangles advanced.TriangleList) error {
	return writeJSON(w, NewDocument(triangles))
}

// Write a list of documents as one JSON array.
func WriteJSONDocuments(w io.Writer, docs []Document) error {
	return writeJSON(w, docs)
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding json")
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "writing json")
	}
	return nil
}

// Dispatch on a format name.
func Write(w io.Writer, name string, triangles advanced.TriangleList, color bool) error {
	switch name {
	case Text, "":
		return WriteText(w, triangles, color)
	case JSON:
		return WriteJSON(w, triangles)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// Report a failure in the same register as WriteText.
func WriteFailure(w io.Writer, name string, err error, color bool) error {
	au := aurora.NewAurora(color)
	_, werr := fmt.Fprintf(w, "%s: %v", name, au.Red(err.Error()))
	return errors.Wrap(werr, "writing failure")
}
