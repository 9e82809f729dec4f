// Package batch triangulates many independent polygons concurrently.
package batch

import (
	"context"
	"io"
	"log"

	"github.com/osuushi/earclip/advanced"
	"github.com/osuushi/earclip/dbg"
	"golang.org/x/sync/errgroup"
)

type Job struct {
	// Used in results and log lines. A readable name is made up when empty.
	Name    string
	Polygon *advanced.Polygon
}

// The outcome of one job. Exactly one of Triangles and Err is set.
type Result struct {
	Name      string
	Polygon   *advanced.Polygon
	Triangles advanced.TriangleList
	Err       error
}

type Runner struct {
	Engine  *advanced.Engine
	Workers int
	Logger  *log.Logger
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return r.Logger
}

// Run every job and return results in job order. A failing polygon records
// its error in its own result and does not stop the others. If ctx is
// cancelled, jobs not yet started are given the context's error, and that
// error is also returned.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	logger := r.logger()
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(jobs))
	for i, job := range jobs {
		results[i] = Result{Name: job.Name, Polygon: job.Polygon}
		if results[i].Name == "" {
			results[i].Name = dbg.Name(job.Polygon)
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := range jobs {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(jobs); j++ {
				results[j].Err = err
			}
			break
		}
		result := &results[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				result.Err = err
				return nil
			}
			result.Triangles, result.Err = r.Engine.Triangulate(result.Polygon)
			if result.Err != nil {
				logger.Printf("%s failed: %v", result.Name, result.Err)
			} else {
				logger.Printf("%s: %d triangles", result.Name, len(result.Triangles))
			}
			return nil
		})
	}
	// Workers record failures in their results and never return an error
	_ = g.Wait()
	return results, ctx.Err()
}

// Triangulate polygons with a default engine.
func Triangulate(ctx context.Context, polygons []*advanced.Polygon, workers int) ([]Result, error) {
	jobs := make([]Job, len(polygons))
	for i, polygon := range polygons {
		jobs[i] = Job{Polygon: polygon}
	}
	runner := Runner{Engine: &advanced.Engine{}, Workers: workers}
	return runner.Run(ctx, jobs)
}
