package geom

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into point lists. This is not a full (or
// even correct) svg parser. It finds whatever the first polygon is, and returns
// its points in document order. If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Vector {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []Vector
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Vector{x, y})
	}
	return points
}

// Some ad hoc fixtures

func RegularPolygon(n int, radius float64, center Vector) []Vector {
	points := make([]Vector, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = center.Add(Vector{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	return points
}

func Square() []Vector {
	return []Vector{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
}

// Integer coordinates keep the predicates exact, so collinear cases really
// are collinear.
func RandomPoints(seed int64, n int) []Vector {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Vector, n)
	for i := range points {
		points[i] = Vector{float64(rng.Intn(200) - 100), float64(rng.Intn(200) - 100)}
	}
	return points
}
