package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/splinecurve/curve"
)

// Format is the text format used for sampled curves.
type Format int

const (
	JSON Format = iota
	YAML
	EndFormat
)

var formatNames = [EndFormat]string{"JSON", "YAML"}

func (f Format) String() string {
	if f < 0 || f >= EndFormat {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat converts a case-insensitive format name into a Format.
func ParseFormat(s string) (Format, error) {
	name := strings.TrimSpace(s)
	for f := Format(0); f < EndFormat; f++ {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("Format '%s' not recognized.", s)
}

// Compression is the compression applied to an output file.
type Compression int

const (
	NoCompression Compression = iota
	Gzip
	Zstd
)

// CompressionFromName returns the compression implied by a file's extension.
func CompressionFromName(fname string) Compression {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".gz":
		return Gzip
	case ".zst":
		return Zstd
	default:
		return NoCompression
	}
}

// FormatFromName returns the format implied by a file's extension, ignoring
// any compression extension. Unrecognized extensions are JSON.
func FormatFromName(fname string) Format {
	if CompressionFromName(fname) != NoCompression {
		fname = strings.TrimSuffix(fname, filepath.Ext(fname))
	}
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// EncodePoints writes points to w as a list of {t, xyz} records.
func EncodePoints(w io.Writer, format Format, points []curve.Point) error {
	if points == nil {
		points = []curve.Point{}
	}

	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(points)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(4)
		if err := enc.Encode(points); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("Cannot encode points in unknown format %s.", format)
	}
}

// DecodePoints reads points written by EncodePoints.
func DecodePoints(r io.Reader, format Format) ([]curve.Point, error) {
	points := []curve.Point{}
	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&points); err != nil {
			return nil, err
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&points); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("Cannot decode points in unknown format %s.", format)
	}
	return points, nil
}

// WritePoints writes points to the file fname, compressing them according to
// its extension. It returns the size of the file.
func WritePoints(
	fname string, format Format, points []curve.Point,
) (size int64, err error) {
	f, err := os.Create(fname)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.WriteCloser
	switch CompressionFromName(fname) {
	case Gzip:
		w = gzip.NewWriter(f)
	case Zstd:
		if w, err = zstd.NewWriter(f); err != nil {
			return 0, err
		}
	default:
		w = nopWriteCloser{f}
	}

	if err = EncodePoints(w, format, points); err != nil {
		w.Close()
		return 0, err
	}
	if err = w.Close(); err != nil {
		return 0, err
	}

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// ReadPoints reads a file written by WritePoints.
func ReadPoints(fname string, format Format) ([]curve.Point, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	switch CompressionFromName(fname) {
	case Gzip:
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		r = gr
	case Zstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}

	return DecodePoints(r, format)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
