// Package config holds the settings shared by the CLI and the server.
package config

import (
	"io"
	"os"

	"github.com/osuushi/earclip/internal/format"
	"github.com/osuushi/earclip/internal/render"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Render render.Options `yaml:"render"`
	Output Output         `yaml:"output"`
	Loader Loader         `yaml:"loader"`
	Batch  Batch          `yaml:"batch"`
	Server Server         `yaml:"server"`
}

type Output struct {
	Format string `yaml:"format"`
	Color  bool   `yaml:"color"`
}

type Loader struct {
	// Reverse clockwise input rings. Off by default, so clockwise input fails
	// the way the engine reports it.
	Reorient bool `yaml:"reorient"`
}

type Batch struct {
	Workers int `yaml:"workers"`
}

type Server struct {
	Addr string `yaml:"addr"`
	// Largest ring accepted by a single request
	MaxPoints int `yaml:"max_points"`
	// Most polygons accepted by one batch request
	MaxPolygons int `yaml:"max_polygons"`
}

func Default() Config {
	return Config{
		Render: render.DefaultOptions(),
		Output: Output{Format: format.Text, Color: true},
		Batch:  Batch{Workers: 4},
		Server: Server{Addr: ":8080", MaxPoints: 10000, MaxPolygons: 1000},
	}
}

// Read a YAML file over the defaults. Keys missing from the file keep their
// default values; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "opening config")
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	// An empty file decodes to io.EOF and leaves the defaults
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Output.Format {
	case format.Text, format.JSON:
	default:
		return errors.Wrapf(format.ErrUnknownFormat, "%q", c.Output.Format)
	}
	if c.Batch.Workers < 1 {
		return errors.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.Errorf("render canvas must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Server.MaxPoints < 3 {
		return errors.Errorf("server.max_points must be at least 3, got %d", c.Server.MaxPoints)
	}
	if c.Server.MaxPolygons < 1 {
		return errors.Errorf("server.max_polygons must be at least 1, got %d", c.Server.MaxPolygons)
	}
	return nil
}
