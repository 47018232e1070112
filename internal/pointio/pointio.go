// Package pointio reads point sets from files. Two formats are understood:
// plain text with one "x y" point per line, where a blank line starts a new
// set, and SVG, where every polygon or polyline is a set and loose circle
// centers make one more.
package pointio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/calipers/geom"
	"github.com/pkg/errors"
)

// ReadFile picks the format by extension: .svg is SVG, anything else is text.
func ReadFile(path string) ([]geom.PointSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		sets, err := ReadSVG(f)
		return sets, errors.Wrapf(err, "reading %s", path)
	}
	sets, err := ReadText(f)
	return sets, errors.Wrapf(err, "reading %s", path)
}

// ReadText reads newline separated points. Lines starting with # are
// comments. Sets with no points are dropped.
func ReadText(r io.Reader) ([]geom.PointSet, error) {
	var sets []geom.PointSet
	var points []geom.Vector
	flush := func() {
		if len(points) > 0 {
			sets = append(sets, geom.NewPointSet(points...))
			points = nil
		}
	}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the current set
		if line == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		point, err := ParsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	// Trailing set, if any
	flush()
	return sets, nil
}

// ParsePoint accepts "x y", "x,y" or "x, y".
func ParsePoint(s string) (geom.Vector, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 2 {
		return geom.Vector{}, errors.Errorf("expected two coordinates in %q", s)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geom.Vector{}, errors.Wrapf(err, "invalid x value %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Vector{}, errors.Wrapf(err, "invalid y value %q", fields[1])
	}
	return geom.Vector{X: x, Y: y}, nil
}
