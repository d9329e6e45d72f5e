// Demo of the enclosing triangle construction. Reads a point set, builds the
// super-triangle that seeds a Delaunay triangulation, and prints it.
//
// Input on stdin (or --input) is newline separated points in the form "x y",
// or an SVG document with --format=svg. --fixture uses one of the built in
// sample point sets instead.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/dbg"
	"github.com/osuushi/delaunay/internal/input"
	"github.com/osuushi/delaunay/internal/logging"
	"github.com/osuushi/delaunay/internal/render"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	input     string
	format    string
	fixture   string
	render    string
	scale     float64
	show      bool
	color     bool
	logFormat string
	logLevel  string
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func newApp(opts *options, stderr io.Writer) *kingpin.Application {
	app := kingpin.New("supertri", "Build the super-triangle enclosing a point set.")
	app.ErrorWriter(stderr)
	app.UsageWriter(stderr)

	app.Flag("input", "Read points from this file instead of stdin.").Short('i').StringVar(&opts.input)
	app.Flag("format", "Input format.").Default(string(input.FormatText)).EnumVar(&opts.format, input.Formats...)
	app.Flag("fixture", "Use a built in point set instead of reading input.").EnumVar(&opts.fixture, input.FixtureNames()...)
	app.Flag("render", "Draw the triangle and points to this PNG file.").Short('o').StringVar(&opts.render)
	app.Flag("scale", "Pixels per unit when rendering.").Default("10").Float64Var(&opts.scale)
	app.Flag("show", "Print the rendered image inline (iTerm only).").BoolVar(&opts.show)
	app.Flag("color", "Colorize output.").Default("true").BoolVar(&opts.color)
	app.Flag("log-format", "Log format.").Default("text").EnumVar(&opts.logFormat, "text", "json")
	app.Flag("log-level", "Log level.").Default("info").StringVar(&opts.logLevel)
	app.Flag("verbose", "Dump the full triangle.").Short('v').BoolVar(&opts.verbose)
	return app
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	app := newApp(&opts, stderr)
	exited := false
	app.Terminate(func(int) { exited = true })
	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(stderr, "supertri: %v\n", err)
		return 2
	}
	if exited {
		// --help
		return 0
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "supertri: %v\n", err)
		return 2
	}
	logger := logging.NewLogger(stderr, level, opts.logFormat == "json")

	points, source, err := readPoints(opts, stdin)
	if err != nil {
		logging.LogError(logger, "failed to read points", err, slog.String("source", source))
		return 1
	}
	logger.Debug("read points", slog.String("source", source), slog.Int("count", len(points)))

	start := time.Now()
	triangle, err := delaunay.EnclosingTriangle(points...)
	if err != nil {
		logging.LogError(logger, "failed to build enclosing triangle", err, slog.String("source", source))
		return 1
	}
	logging.LogOperation(logger, "enclosing_triangle", start,
		slog.String("source", source),
		slog.Int("points", len(points)),
	)

	printTriangle(stdout, aurora.NewAurora(opts.color), triangle, len(points))
	if opts.verbose {
		fmt.Fprint(stdout, dbg.Dump(triangle))
	}

	if opts.render != "" {
		start := time.Now()
		renderOpts := render.DefaultOptions()
		renderOpts.Scale = opts.scale
		if err := render.SavePNG(opts.render, *triangle, points, renderOpts); err != nil {
			logging.LogError(logger, "failed to render", err, slog.String("path", opts.render))
			return 1
		}
		logging.LogOperation(logger, "render", start, slog.String("path", opts.render))
		if opts.show {
			render.Show(opts.render, stdout)
		}
	}
	return 0
}

func readPoints(opts options, stdin io.Reader) ([]delaunay.Point, string, error) {
	if opts.fixture != "" {
		points, err := input.LoadFixture(opts.fixture)
		return points, "fixture:" + opts.fixture, err
	}

	if opts.input == "" {
		points, err := input.Read(stdin, input.Format(opts.format))
		return points, "stdin", err
	}

	f, err := os.Open(opts.input)
	if err != nil {
		return nil, opts.input, err
	}
	defer f.Close()
	points, err := input.Read(f, input.Format(opts.format))
	return points, opts.input, err
}

func printTriangle(w io.Writer, au aurora.Aurora, triangle *delaunay.Triangle, pointCount int) {
	fmt.Fprintf(w, "%s enclosing %d points\n", au.Bold("Triangle"), au.Cyan(pointCount))
	for _, v := range triangle.Vertices {
		fmt.Fprintf(w, "  vertex       %s %s\n", au.Green(formatPoint(v)), au.Faint(dbg.Name(v)))
	}
	fmt.Fprintf(w, "  circumcenter %s\n", au.Yellow(formatPoint(triangle.Circumcenter())))
	fmt.Fprintf(w, "  circumradius %s\n", au.Yellow(fmt.Sprintf("%g", triangle.Circumradius())))
}

func formatPoint(p delaunay.Point) string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
