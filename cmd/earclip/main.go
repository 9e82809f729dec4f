package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/earclip/internal/config"
	"github.com/osuushi/earclip/internal/format"
)

const logFlags = log.Ltime | log.Lshortfile

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	log.SetFlags(logFlags)

	if os.Getenv("EARCLIP_DEBUG") == "1" {
		runtimeLogger = newVerboseLogger(os.Stderr)
	}
}

func newVerboseLogger(w io.Writer) *log.Logger {
	return log.New(w, "[earclip] ", log.Ltime|log.Lmsgprefix)
}

// Everything the command line asked for. Zero values mean "use the config".
type invocation struct {
	command    string
	configPath string
	verbose    bool
	noColor    bool

	format   string
	png      string
	imgcat   bool
	reorient bool
	workers  int
	files    []string

	addr string
}

func newApp() (*kingpin.Application, *invocation) {
	inv := &invocation{}
	app := kingpin.New("earclip", "Ear clipping triangulation of simple counterclockwise polygons.")
	app.Flag("config", "YAML configuration file.").StringVar(&inv.configPath)
	app.Flag("verbose", "Trace every clipped ear. Same as EARCLIP_DEBUG=1.").Short('v').BoolVar(&inv.verbose)
	app.Flag("no-color", "Disable colored output.").BoolVar(&inv.noColor)

	triangulate := app.Command("triangulate", "Triangulate polygons read from files.").Default()
	triangulate.Flag("format", "Output format.").EnumVar(&inv.format, format.Text, format.JSON)
	triangulate.Flag("png", "Render the triangulation to this PNG file.").StringVar(&inv.png)
	triangulate.Flag("imgcat", "Print the rendering to an iTerm compatible terminal.").BoolVar(&inv.imgcat)
	triangulate.Flag("reorient", "Reverse clockwise input instead of failing on it.").BoolVar(&inv.reorient)
	triangulate.Flag("workers", "Polygons triangulated at once.").IntVar(&inv.workers)
	triangulate.Arg("files", "Text, SVG or GeoJSON input files.").Default("input.txt").StringsVar(&inv.files)

	serve := app.Command("serve", "Serve triangulation over HTTP.")
	serve.Flag("addr", "Listen address.").StringVar(&inv.addr)
	return app, inv
}

// Load the config file, if any, and let flags override it.
func (inv *invocation) config() (config.Config, error) {
	cfg := config.Default()
	if inv.configPath != "" {
		var err error
		if cfg, err = config.Load(inv.configPath); err != nil {
			return cfg, err
		}
	}
	if inv.noColor {
		cfg.Output.Color = false
	}
	if inv.format != "" {
		cfg.Output.Format = inv.format
	}
	if inv.reorient {
		cfg.Loader.Reorient = true
	}
	if inv.workers > 0 {
		cfg.Batch.Workers = inv.workers
	}
	if inv.addr != "" {
		cfg.Server.Addr = inv.addr
	}
	return cfg, cfg.Validate()
}

func main() {
	app, inv := newApp()
	command, err := app.Parse(os.Args[1:])
	app.FatalIfError(err, "")
	inv.command = command

	if inv.verbose {
		runtimeLogger = newVerboseLogger(os.Stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, inv, os.Stdout, os.Stderr))
}

func run(ctx context.Context, inv *invocation, stdout, stderr io.Writer) int {
	cfg, err := inv.config()
	if err != nil {
		fmt.Fprintf(stderr, "earclip: %v\n", err)
		return 2
	}

	switch inv.command {
	case "serve":
		if err := serve(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "earclip: %v\n", err)
			return 1
		}
		return 0
	default:
		return triangulateFiles(ctx, inv, cfg, stdout, stderr)
	}
}
