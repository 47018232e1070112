// Command calipers finds convex hulls and walks rotating calipers around them.
//
// Point files hold newline separated points in the form "x y", with each point
// set separated by an extra newline, or they are SVG files, whose polygons and
// circles supply the points.
//
//	calipers hull points.txt --add 3,4
//	calipers run diameter shape.svg --interval 500ms --imgcat
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/osuushi/calipers/geom"
	"github.com/osuushi/calipers/internal/pointio"
	"github.com/osuushi/calipers/player"
	"github.com/osuushi/calipers/render"
	"github.com/osuushi/calipers/report"
	"github.com/osuushi/calipers/rotating"
	"github.com/osuushi/calipers/scenario"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("calipers", "Rotating calipers over the convex hull of a point set.")

	logFormat   = app.Flag("log", "Report format.").Envar("CALIPERS_LOG").Default("console").Enum("console", "zap")
	logFile     = app.Flag("log-file", "Also write JSON reports to this file, rotated.").Envar("CALIPERS_LOG_FILE").String()
	minSeverity = app.Flag("min-severity", "Hide reports below this severity.").Default("Info").Enum("Info", "Success", "Warning", "Error")
	color       = app.Flag("color", "Color console reports.").Default("true").Bool()

	hullCmd    = app.Command("hull", "Print the convex hull of each point set in a file.")
	hullFile   = hullCmd.Arg("file", "Point file (text or SVG).").Required().ExistingFile()
	hullAdd    = hullCmd.Flag("add", "Merge a point (x,y) into every hull. Repeatable.").Strings()
	hullStrict = hullCmd.Flag("strict", "Drop vertices in the middle of straight edges.").Bool()

	runCmd      = app.Command("run", "Walk the calipers around the hull of the first point set.")
	runScenario = runCmd.Arg("scenario", "pairs or diameter.").Required().Enum("pairs", "diameter")
	runFile     = runCmd.Arg("file", "Point file (text or SVG).").Required().ExistingFile()
	interval    = runCmd.Flag("interval", "Time between steps.").Envar("CALIPERS_INTERVAL").Default("0s").Duration()
	manual      = runCmd.Flag("manual", "Step on each line read from stdin.").Bool()
	freeRun     = runCmd.Flag("free-run", "Keep going around until interrupted or out of steps.").Bool()
	maxSteps    = runCmd.Flag("max-steps", "Stop after this many steps. 0 for no limit.").Default("0").Int()
	framesDir   = runCmd.Flag("frames-dir", "Write numbered PNG frames to this directory.").String()
	framesPer   = runCmd.Flag("frames-per-step", "Animation frames rendered per step.").Default("1").Int()
	size        = runCmd.Flag("size", "Frame size in pixels.").Default(fmt.Sprint(player.DefaultSize)).Int()
	imgcat      = runCmd.Flag("imgcat", "Print each step in the terminal (iTerm only).").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	reporter, sync, err := makeReporter()
	app.FatalIfError(err, "")
	defer sync()

	switch command {
	case hullCmd.FullCommand():
		err = printHulls(os.Stdout, *hullFile, *hullAdd, *hullStrict)
	case runCmd.FullCommand():
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = run(ctx, reporter)
	}
	if err != nil {
		sync()
		app.Fatalf("%v", err)
	}
}

func makeReporter() (report.Reporter, func(), error) {
	severity, err := report.ParseSeverity(*minSeverity)
	if err != nil {
		return nil, nil, err
	}

	var reporters []report.Reporter
	var loggers []*report.Zap
	switch *logFormat {
	case "zap":
		logger, err := zap.NewProduction()
		if err != nil {
			return nil, nil, errors.Wrap(err, "creating logger")
		}
		loggers = append(loggers, report.NewZap(logger))
	default:
		reporters = append(reporters, report.NewConsole(os.Stderr, *color))
	}
	if *logFile != "" {
		loggers = append(loggers, report.NewZap(report.FileLogger(*logFile, 10)))
	}
	for _, logger := range loggers {
		reporters = append(reporters, logger)
	}

	sync := func() {
		for _, logger := range loggers {
			logger.Sync()
		}
	}
	return report.MinSeverity(report.Multi(reporters...), severity), sync, nil
}

// Hull of every set in the file, with the extra points merged in
func readHulls(path string, add []string, strict bool) ([]geom.Polygon, error) {
	sets, err := pointio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, errors.Errorf("no points in %s", path)
	}

	extra := make([]geom.Vector, len(add))
	for i, s := range add {
		if extra[i], err = pointio.ParsePoint(s); err != nil {
			return nil, errors.Wrap(err, "--add")
		}
	}

	hulls := make([]geom.Polygon, 0, len(sets))
	for i, set := range sets {
		hull, err := set.ConvexHull()
		if err != nil {
			return nil, errors.Wrapf(err, "point set %d", i+1)
		}
		for _, point := range extra {
			if hull, err = hull.MergeWithPoint(point); err != nil {
				return nil, errors.Wrapf(err, "point set %d, adding %v", i+1, point)
			}
		}
		if strict {
			hull = hull.StrictlyConvex()
		}
		hulls = append(hulls, hull)
	}
	return hulls, nil
}

// Prints in the same format the text reader takes
func printHulls(out io.Writer, path string, add []string, strict bool) error {
	hulls, err := readHulls(path, add, strict)
	if err != nil {
		return err
	}
	for i, hull := range hulls {
		if i > 0 {
			fmt.Fprintln(out)
		}
		for _, v := range hull.Vertices {
			fmt.Fprintf(out, "%v %v\n", v.X, v.Y)
		}
	}
	return nil
}

func run(ctx context.Context, reporter report.Reporter) error {
	variant, err := scenario.ParseVariant(*runScenario)
	if err != nil {
		return err
	}
	// The calipers need strictly convex input
	hulls, err := readHulls(*runFile, nil, true)
	if err != nil {
		return err
	}

	config := player.Config{
		Polygons:      hulls,
		Reporter:      reporter,
		Interval:      *interval,
		MaxSteps:      *maxSteps,
		FramesPerStep: *framesPer,
		Size:          *size,
	}
	if *manual {
		config.Manual = player.StepsFromLines(ctx, os.Stdin)
	}
	if *framesDir != "" {
		config.Frames = &render.FrameWriter{Dir: *framesDir}
	}
	if *imgcat {
		config.Terminal = &render.Terminal{Out: os.Stdout}
	}

	var opts []rotating.Option
	if *freeRun {
		opts = append(opts, rotating.WithMode(rotating.FreeRun))
	}

	start := time.Now()
	p := player.New(config)
	result, err := p.Play(ctx, variant, opts...)
	// A free run can only end by being stopped, so that is not a failure
	stopped := errors.Is(err, context.Canceled) || errors.Is(err, player.ErrStepLimit)
	if err != nil && !(*freeRun && stopped) {
		return err
	}
	reporter.Report(fmt.Sprintf("%d pairs in %d steps, %v", len(result.Pairs), p.Steps(), time.Since(start).Round(time.Millisecond)), report.Info)
	return nil
}
