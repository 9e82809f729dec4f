package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/earclip/advanced"
	"github.com/osuushi/earclip/internal/batch"
	"github.com/osuushi/earclip/internal/config"
	"github.com/osuushi/earclip/internal/format"
	"github.com/osuushi/earclip/internal/loader"
	"github.com/osuushi/earclip/internal/render"
	"github.com/pkg/errors"
)

// Load every file, triangulate every polygon found, and write the results.
// Returns the process exit code: 1 if any file or polygon failed.
func triangulateFiles(ctx context.Context, inv *invocation, cfg config.Config, stdout, stderr io.Writer) int {
	color := cfg.Output.Color
	failed := false
	fail := func(name string, err error) {
		failed = true
		format.WriteFailure(stderr, name, err, color)
		fmt.Fprintln(stderr)
	}

	var jobs []batch.Job
	for _, path := range inv.files {
		shapes, err := loader.LoadFile(path, loader.Options{Reorient: cfg.Loader.Reorient})
		if errors.Is(err, loader.ErrTooFewPoints) {
			runtimeLogger.Printf("%v", err)
			fmt.Fprintln(stdout, "No triangulations to output")
			continue
		}
		if err != nil {
			fail(path, err)
			continue
		}
		for _, shape := range shapes {
			jobs = append(jobs, batch.Job{Name: shape.Name, Polygon: shape.Polygon})
		}
	}
	if len(jobs) == 0 {
		return exitCode(failed)
	}

	runner := batch.Runner{
		Engine:  &advanced.Engine{Logger: runtimeLogger},
		Workers: cfg.Batch.Workers,
		Logger:  runtimeLogger,
	}
	results, err := runner.Run(ctx, jobs)
	if err != nil {
		fail("earclip", err)
		return 1
	}

	if err := writeResults(stdout, cfg.Output, results, fail); err != nil {
		fail("earclip", err)
		return 1
	}

	if inv.png != "" || inv.imgcat {
		if err := renderResults(inv, cfg.Render, results, stdout); err != nil {
			fail("earclip", err)
		}
	}
	return exitCode(failed)
}

// A single polygon is written bare. Several are labelled with their names, or
// written as a JSON array.
func writeResults(w io.Writer, out config.Output, results []batch.Result, fail func(string, error)) error {
	if out.Format == format.JSON {
		defer fmt.Fprintln(w)
		if len(results) == 1 && results[0].Err == nil {
			return format.WriteJSON(w, results[0].Triangles)
		}
		docs := make([]format.Document, 0, len(results))
		for _, result := range results {
			doc := format.NewDocument(result.Triangles)
			doc.Name = result.Name
			if result.Err != nil {
				doc.Error = result.Err.Error()
				fail(result.Name, result.Err)
			}
			docs = append(docs, doc)
		}
		return format.WriteJSONDocuments(w, docs)
	}

	for _, result := range results {
		if result.Err != nil {
			fail(result.Name, result.Err)
			continue
		}
		if len(results) > 1 {
			fmt.Fprintf(w, "%s:\n", result.Name)
		}
		if err := format.WriteText(w, result.Triangles, out.Color); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

func renderResults(inv *invocation, opts render.Options, results []batch.Result, stdout io.Writer) error {
	for i, result := range results {
		if result.Err != nil {
			continue
		}
		path := inv.png
		if path == "" {
			f, err := os.CreateTemp("", "earclip-*.png")
			if err != nil {
				return errors.Wrap(err, "creating preview file")
			}
			f.Close()
			path = f.Name()
			defer os.Remove(path)
		} else {
			path = numberedPath(path, i, len(results))
		}

		if err := render.SavePNG(path, result.Polygon, result.Triangles, opts); err != nil {
			return err
		}
		runtimeLogger.Printf("rendered %s to %s", result.Name, path)
		if inv.imgcat {
			if err := render.Preview(path, stdout); err != nil {
				return err
			}
		}
	}
	return nil
}

// out.png becomes out-1.png, out-2.png... when there are several images.
func numberedPath(path string, i, total int) string {
	if total <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i+1, ext)
}

func exitCode(failed bool) int {
	if failed {
		return 1
	}
	return 0
}
