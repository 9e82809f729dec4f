// Package server exposes triangulation over HTTP.
package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/osuushi/earclip/advanced"
	"github.com/osuushi/earclip/internal/batch"
	"github.com/osuushi/earclip/internal/format"
	"github.com/osuushi/earclip/internal/loader"
	"github.com/pkg/errors"
)

const requestIDHeader = "X-Request-Id"

type Handler struct {
	Engine      *advanced.Engine
	Workers     int
	MaxPoints   int
	MaxPolygons int
	Loader      loader.Options
	Logger      *log.Logger
}

type triangulateRequest struct {
	Points [][]int `json:"points"`
}

type batchRequest struct {
	Polygons [][][]int `json:"polygons"`
}

type triangulateResponse struct {
	ID string `json:"id"`
	format.Document
}

type batchResponse struct {
	ID      string            `json:"id"`
	Results []format.Document `json:"results"`
}

type errorResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

func (h *Handler) logger() *log.Logger {
	if h.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return h.Logger
}

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID())

	r.GET("/healthz", h.Health)
	v1 := r.Group("/v1")
	{
		v1.POST("/triangulate", h.Triangulate)
		v1.POST("/triangulate/batch", h.TriangulateBatch)
	}
	return r
}

// Tag every request with an ID, reusing the caller's if it sent one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *Handler) Triangulate(c *gin.Context) {
	id := c.GetString("request_id")
	var req triangulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{ID: id, Error: err.Error()})
		return
	}

	polygon, err := h.build(req.Points)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{ID: id, Error: err.Error()})
		return
	}

	triangles, err := h.Engine.Triangulate(polygon)
	if err != nil {
		h.logger().Printf("%s: %v", id, err)
		c.JSON(statusFor(err), errorResponse{ID: id, Error: err.Error()})
		return
	}
	h.logger().Printf("%s: %d triangles", id, len(triangles))
	c.JSON(http.StatusOK, triangulateResponse{ID: id, Document: format.NewDocument(triangles)})
}

// Every polygon gets an entry in the response, in request order. Bad
// polygons carry their error and do not fail the request.
func (h *Handler) TriangulateBatch(c *gin.Context) {
	id := c.GetString("request_id")
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{ID: id, Error: err.Error()})
		return
	}
	if h.MaxPolygons > 0 && len(req.Polygons) > h.MaxPolygons {
		msg := fmt.Sprintf("%d polygons exceeds the limit of %d", len(req.Polygons), h.MaxPolygons)
		c.JSON(http.StatusBadRequest, errorResponse{ID: id, Error: msg})
		return
	}

	docs := make([]format.Document, len(req.Polygons))
	var jobs []batch.Job
	var slots []int
	for i, points := range req.Polygons {
		polygon, err := h.build(points)
		if err != nil {
			docs[i] = format.Document{Error: err.Error()}
			continue
		}
		jobs = append(jobs, batch.Job{Name: id + "#" + strconv.Itoa(i+1), Polygon: polygon})
		slots = append(slots, i)
	}

	runner := batch.Runner{Engine: h.Engine, Workers: h.Workers, Logger: h.Logger}
	results, err := runner.Run(c.Request.Context(), jobs)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse{ID: id, Error: err.Error()})
		return
	}
	for j, result := range results {
		if result.Err != nil {
			docs[slots[j]] = format.Document{Error: result.Err.Error()}
		} else {
			docs[slots[j]] = format.NewDocument(result.Triangles)
		}
	}
	c.JSON(http.StatusOK, batchResponse{ID: id, Results: docs})
}

func (h *Handler) build(raw [][]int) (*advanced.Polygon, error) {
	if h.MaxPoints > 0 && len(raw) > h.MaxPoints {
		return nil, errors.Errorf("%d points exceeds the limit of %d", len(raw), h.MaxPoints)
	}
	points := make([]advanced.Point, 0, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return nil, errors.Wrapf(loader.ErrMalformed, "point %d has %d coordinates", i, len(pair))
		}
		points = append(points, advanced.Point{X: pair[0], Y: pair[1]})
	}
	return loader.Build(points, h.Loader)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, advanced.ErrNoEar):
		return http.StatusUnprocessableEntity
	case errors.Is(err, advanced.ErrDegenerate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Serve until ctx is cancelled, then shut down gracefully.
func Run(ctx context.Context, addr string, h *Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()
	h.logger().Printf("listening on %s", addr)

	select {
	case err := <-errs:
		return errors.Wrap(err, "serving")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.Wrap(srv.Shutdown(shutdownCtx), "shutting down")
}
