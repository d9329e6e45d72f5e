package input

import (
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg reader. It collects the vertices of
// every <polygon> and <polyline>, and the center of every <circle>, in document
// order. Transforms are ignored.
func ReadSVGPoints(r io.Reader) ([]advanced.Point, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	var points []advanced.Point
	err = walk(rootEl, func(el *svgparser.Element) error {
		switch el.Name {
		case "polygon", "polyline":
			elPoints, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "%s points", el.Name)
			}
			points = append(points, elPoints...)
		case "circle":
			point, err := parsePoint([]string{attr(el, "cx"), attr(el, "cy")})
			if err != nil {
				return errors.Wrap(err, "circle center")
			}
			points = append(points, point)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, errors.New("no points found in svg")
	}
	return points, nil
}

func walk(el *svgparser.Element, fn func(*svgparser.Element) error) error {
	if err := fn(el); err != nil {
		return err
	}
	for _, child := range el.Children {
		if err := walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// Points attributes separate coordinates with any mix of commas and
// whitespace, e.g. "0,0 10,0" or "0 0, 10 0".
func parsePointList(s string) ([]advanced.Point, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}
	points := make([]advanced.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		point, err := parsePoint(fields[i : i+2])
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

// Missing coordinate attributes default to zero, as in SVG.
func attr(el *svgparser.Element, name string) string {
	if v, ok := el.Attributes[name]; ok && v != "" {
		return v
	}
	return "0"
}
