// Package input reads point sets for the demo command and for test fixtures.
package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

type Format string

const (
	FormatText Format = "text"
	FormatSVG  Format = "svg"
)

var Formats = []string{string(FormatText), string(FormatSVG)}

func Read(r io.Reader, format Format) ([]advanced.Point, error) {
	switch format {
	case FormatText:
		return ReadPoints(r)
	case FormatSVG:
		return ReadSVGPoints(r)
	}
	return nil, errors.Errorf("unknown input format %q", format)
}

// Read newline separated points in the form "x y". Blank lines and lines
// starting with # are skipped.
func ReadPoints(r io.Reader) ([]advanced.Point, error) {
	var points []advanced.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read points")
	}
	return points, nil
}

func parsePoint(fields []string) (advanced.Point, error) {
	if len(fields) != 2 {
		return advanced.Point{}, errors.Errorf("expected 2 coordinates, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x value %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y value %q", fields[1])
	}
	return advanced.NewPoint(x, y), nil
}
