package pointio

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/calipers/geom"
	"github.com/pkg/errors"
)

// ReadSVG reads the points of every polygon and polyline in document order,
// one set each, followed by a set of all circle centers if there are any.
// Transforms are ignored, and so is every other kind of element.
func ReadSVG(r io.Reader) ([]geom.PointSet, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var sets []geom.PointSet
	var centers []geom.Vector
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "polygon", "polyline":
			points, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "in <%s>", el.Name)
			}
			if len(points) > 0 {
				sets = append(sets, geom.NewPointSet(points...))
			}
		case "circle":
			center, err := parseCenter(el)
			if err != nil {
				return err
			}
			centers = append(centers, center)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}

	if len(centers) > 0 {
		sets = append(sets, geom.NewPointSet(centers...))
	}
	return sets, nil
}

// The points attribute is a flat list of numbers, separated by whitespace
// and/or commas, taken two at a time.
func parsePointList(attr string) ([]geom.Vector, error) {
	fields := strings.Fields(strings.ReplaceAll(attr, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attr)
	}
	points := make([]geom.Vector, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		point, err := ParsePoint(fields[i] + " " + fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

func parseCenter(el *svgparser.Element) (geom.Vector, error) {
	var coords [2]float64
	for i, name := range []string{"cx", "cy"} {
		value, ok := el.Attributes[name]
		if !ok {
			// Missing coordinates default to zero, as in SVG
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return geom.Vector{}, errors.Wrapf(err, "invalid circle %s %q", name, value)
		}
		coords[i] = f
	}
	return geom.Vector{X: coords[0], Y: coords[1]}, nil
}
