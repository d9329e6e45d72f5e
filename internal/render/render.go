// Package render draws triangles and point sets for debugging.
package render

import (
	"image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/dbg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Padding around the drawing in pixels, so the circumcircle isn't clipped
// right at the edge.
const Padding = 20

// Largest width or height of the canvas in pixels. Drawings that would be
// bigger at the requested scale are scaled down to fit.
const MaxDimension = 4096

type Options struct {
	// Pixels per unit. Reduced if the drawing would exceed MaxDimension.
	Scale float64
	// Draw the triangle's circumcircle
	Circumcircle bool
	// Label the triangle vertices with readable names
	Labels bool
}

func DefaultOptions() Options {
	return Options{Scale: 10, Circumcircle: true, Labels: true}
}

// Draw the triangle, optionally its circumcircle, and the points. The origin
// is at the bottom left, and the canvas is sized to fit everything.
func Draw(triangle advanced.Triangle, points []advanced.Point, opts Options) (image.Image, error) {
	if !(opts.Scale > 0) {
		return nil, errors.Errorf("invalid scale %v", opts.Scale)
	}
	if triangle.IsDegenerate() {
		return nil, errors.Wrap(advanced.ErrDegenerateTriangle, "cannot draw triangle")
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	for _, v := range triangle.Vertices {
		extend(v.X, v.Y)
	}
	for _, p := range points {
		extend(p.X, p.Y)
	}
	center := triangle.Circumcenter()
	radius := triangle.Circumradius()
	if opts.Circumcircle {
		extend(center.X-radius, center.Y-radius)
		extend(center.X+radius, center.Y+radius)
	}

	spanX, spanY := maxX-minX, maxY-minY
	if math.IsNaN(spanX) || math.IsNaN(spanY) || math.IsInf(spanX, 0) || math.IsInf(spanY, 0) {
		return nil, errors.Errorf("cannot draw non-finite extent %v x %v", spanX, spanY)
	}
	scale := opts.Scale
	const maxSpan = MaxDimension - Padding*2
	if span := math.Max(spanX, spanY); scale*span > maxSpan {
		scale = maxSpan / span
	}

	// Set up the context
	width := min(int(math.Ceil(scale*spanX)), maxSpan) + Padding*2
	height := min(int(math.Ceil(scale*spanY)), maxSpan) + Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(Padding, Padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	if opts.Circumcircle {
		c.DrawCircle(center.X, center.Y, radius)
		c.SetRGBA(1, 1, 0, 0.6)
		c.SetLineWidth(1)
		c.Stroke()
	}

	vertices := triangle.Vertices
	c.MoveTo(vertices[0].X, vertices[0].Y)
	c.LineTo(vertices[1].X, vertices[1].Y)
	c.LineTo(vertices[2].X, vertices[2].Y)
	c.ClosePath()
	c.SetRGBA(0.3, 0.2, 1, 0.5)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2)
	c.Stroke()

	// Points are drawn at a fixed pixel size regardless of scale
	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}

	if opts.Labels {
		c.SetFontFace(basicfont.Face7x13)
		for _, v := range vertices {
			// Text has to be drawn without the flip, so go back to pixel coordinates
			x, y := c.TransformPoint(v.X, v.Y)
			c.Push()
			c.Identity()
			c.DrawStringAnchored(dbg.Name(v), x, y, 0.5, 0.5)
			c.Pop()
		}
	}

	return c.Image(), nil
}

// Draw and save as a PNG file, creating the parent directory if needed.
func SavePNG(path string, triangle advanced.Triangle, points []advanced.Point, opts Options) error {
	img, err := Draw(triangle, points, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if err := gg.SavePNG(path, img); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

// Print a saved PNG inline in the terminal (iTerm only).
func Show(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
