package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"github.com/phil-mansfield/splinecurve/curve"
	"github.com/phil-mansfield/splinecurve/io"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		sampleStr, exampleConfig string
		plotFile                 string
	)
	vars := map[string]*string{
		"Sample":        &sampleStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&sampleStr, "Sample", "",
		"Configuration file for [Curve] mode, which samples a 3D spline "+
			"curve and writes it to the configured Output file.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example file of the specified type to stdout. Accepted "+
			"arguments are 'Curve' and 'Knots'.",
	)
	flag.StringVar(
		&plotFile, "Plot", "",
		"Optional image file which a plot of the sampled curve is written "+
			"to in [Curve] mode. Requires python and matplotlib.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Sample":
		wrap, err := io.ReadCurveConfig(sampleStr)
		if err != nil {
			log.Fatal(err.Error())
		}
		sampleMain(wrap, plotFile)

	case "ExampleConfig":
		switch exampleConfig {
		case "Curve":
			fmt.Println(io.ExampleCurveFile)
		case "Knots":
			ts, axes := io.BuiltinKnots()
			if err := io.WriteKnots(os.Stdout, ts, axes); err != nil {
				log.Fatal(err.Error())
			}
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Curve' and 'Knots'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but splinecurve "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// sampleMain builds the curve described by the configuration, samples it, and
// writes the samples to the output file.
func sampleMain(wrap *io.CurveWrapper, plotFile string) {
	con := &wrap.Curve
	fg := setupFiles(&con.SharedConfig)
	defer fg.Close()

	start := time.Now()

	ts, axes := io.BuiltinKnots()
	if con.ValidInput() {
		var err error
		ts, axes, err = io.ReadKnots(con.Input)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Read %d knots from %s", len(ts), con.Input)
	} else {
		log.Printf("Using the %d built-in knots", len(ts))
	}

	opts, err := wrap.Options()
	if err != nil {
		log.Fatal(err.Error())
	}
	c, err := curve.New(ts, axes, opts...)
	if err != nil {
		log.Fatal(err.Error())
	}

	intervals := curve.Intervals(len(ts), con.SamplesPerSegment)
	points, err := c.Sample(intervals)
	if err != nil {
		log.Fatal(err.Error())
	}

	format, err := con.OutputFormat()
	if err != nil {
		log.Fatal(err.Error())
	}
	size, err := io.WritePoints(con.Output, format, points)
	if err != nil {
		log.Fatal(err.Error())
	}

	log.Printf(
		"Wrote %d %s samples to %s as %s (%s) in %s",
		len(points), c.Method(), con.Output, format,
		humanize.Bytes(uint64(size)),
		durafmt.Parse(time.Since(start)).LimitFirstN(2).String(),
	)

	if plotFile != "" {
		plotCurve(plotFile, ts, axes, points)
		log.Printf("Plotted curve to %s", plotFile)
	}
}

// setupFiles sets up the log and profile files requested in the
// configuration.
func setupFiles(con *io.SharedConfig) *FileGroup {
	var err error
	fg := new(FileGroup)

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}
