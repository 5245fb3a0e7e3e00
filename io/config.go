package io

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/splinecurve/curve"
	"github.com/phil-mansfield/splinecurve/math/interpolate"
)

const (
	ExampleCurveFile = `[Curve]

#######################
# Required Parameters #
#######################

# File which the sampled curve will be written to. Files ending in .gz or
# .zst are compressed with gzip or zstd respectively.
Output = spline.json

#######################
# Optional Parameters #
#######################

# Whitespace-separated table with the columns t x y z, one knot per line.
# The knots must be strictly increasing in t. If Input is not set, a built-in
# 15 knot curve is used.
# Input = path/to/knots.txt

# Output format, one of [ JSON | YAML ]. By default this is guessed from the
# extension of Output and falls back to JSON.
# Format = JSON

# Interpolation method, one of [ Cubic | Linear ]. Default is Cubic.
# Method = Cubic

# Number of samples per knot. The curve is sampled at
# Knots*SamplesPerSegment uniformly spaced parameter values running from the
# first knot to the last. Default is 50.
# SamplesPerSegment = 50

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out

# Each axis can be given its own boundary conditions through an [Axis]
# section named "x", "y", or "z". Axes without a section use NotAKnot at both
# ends. Boundary kinds are one of
# [ NotAKnot | Free | Clamped | SecondDerivative ]. LeftValue and RightValue
# give the first derivative for Clamped ends and the second derivative for
# SecondDerivative ends, and are ignored otherwise. Boundaries have no effect
# when Method = Linear.

# [Axis "z"]
# LeftBoundary = Clamped
# LeftValue = 0
# RightBoundary = Free`
)

type SharedConfig struct {
	// Required
	Output string
	// Optional
	Input, LogFile, ProfileFile string
}

func (con *SharedConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type CurveConfig struct {
	SharedConfig

	// Optional
	Format, Method    string
	SamplesPerSegment int
}

func (con *CurveConfig) ValidFormat() bool {
	if con.Format == "" {
		return true
	}
	_, err := ParseFormat(con.Format)
	return err == nil
}

func (con *CurveConfig) ValidMethod() bool {
	_, err := curve.ParseMethod(con.Method)
	return err == nil
}

func (con *CurveConfig) ValidSamplesPerSegment() bool {
	return con.SamplesPerSegment > 0
}

// OutputFormat returns the configured format, or the format implied by the
// name of the output file if none was given.
func (con *CurveConfig) OutputFormat() (Format, error) {
	if con.Format == "" {
		return FormatFromName(con.Output), nil
	}
	return ParseFormat(con.Format)
}

type AxisConfig struct {
	// Optional
	LeftBoundary, RightBoundary string
	LeftValue, RightValue       float64
}

// CheckInit validates the axis and converts it to the boundary conditions
// used by curve.Curve.
func (ax *AxisConfig) CheckInit(name string) (curve.Bounds, error) {
	b := curve.Bounds{}

	if curve.AxisIndex(name) == -1 {
		return b, fmt.Errorf(
			"Axis '%s' not recognized. Must be one of [%s].",
			name, strings.Join(curve.AxisNames[:], " | "),
		)
	}

	var err error
	if ax.LeftBoundary != "" {
		b.Left.Kind, err = interpolate.ParseBoundaryKind(ax.LeftBoundary)
		if err != nil {
			return b, fmt.Errorf("LeftBoundary of Axis '%s': %s", name, err)
		}
	}
	if ax.RightBoundary != "" {
		b.Right.Kind, err = interpolate.ParseBoundaryKind(ax.RightBoundary)
		if err != nil {
			return b, fmt.Errorf("RightBoundary of Axis '%s': %s", name, err)
		}
	}
	b.Left.Value, b.Right.Value = ax.LeftValue, ax.RightValue

	return b, nil
}

type CurveWrapper struct {
	Curve CurveConfig
	Axis  map[string]*AxisConfig
}

func DefaultCurveWrapper() *CurveWrapper {
	con := CurveConfig{}
	con.Method = curve.Cubic.String()
	con.SamplesPerSegment = 50
	return &CurveWrapper{Curve: con}
}

// CheckInit validates every parameter in the configuration.
func (wrap *CurveWrapper) CheckInit() error {
	con := &wrap.Curve

	if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidFormat() {
		return fmt.Errorf(
			"'Format' value '%s' not recognized. Must be one of [%s].",
			con.Format, strings.Join(formatNames[:], " | "),
		)
	} else if !con.ValidMethod() {
		return fmt.Errorf(
			"'Method' value '%s' not recognized. Must be one of [Cubic | Linear].",
			con.Method,
		)
	} else if !con.ValidSamplesPerSegment() {
		return fmt.Errorf(
			"'SamplesPerSegment' must be positive, but is %d.",
			con.SamplesPerSegment,
		)
	}

	names := make([]string, 0, len(wrap.Axis))
	for name := range wrap.Axis {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := map[int]string{}
	for _, name := range names {
		if _, err := wrap.Axis[name].CheckInit(name); err != nil {
			return err
		}
		idx := curve.AxisIndex(name)
		if prev, ok := seen[idx]; ok {
			return fmt.Errorf(
				"Axis sections '%s' and '%s' both describe the %s axis.",
				prev, name, curve.AxisNames[idx],
			)
		}
		seen[idx] = name
	}

	return nil
}

// Options converts the configuration into options for curve.New. CheckInit
// must have succeeded first.
func (wrap *CurveWrapper) Options() ([]curve.Option, error) {
	method, err := curve.ParseMethod(wrap.Curve.Method)
	if err != nil {
		return nil, err
	}

	opts := []curve.Option{curve.WithMethod(method)}
	for name, ax := range wrap.Axis {
		b, err := ax.CheckInit(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, curve.WithBounds(curve.AxisIndex(name), b))
	}
	return opts, nil
}

// ReadCurveConfig reads and validates a [Curve] configuration file.
func ReadCurveConfig(fname string) (*CurveWrapper, error) {
	wrap := DefaultCurveWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, err
	}
	return wrap, nil
}

// ParseCurveConfig is identical to ReadCurveConfig, but reads the
// configuration from a string.
func ParseCurveConfig(text string) (*CurveWrapper, error) {
	wrap := DefaultCurveWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, err
	}
	return wrap, nil
}
