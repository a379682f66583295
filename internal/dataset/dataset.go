// Package dataset produces the sample series glplot draws: generated
// sine waves, CSV columns and WAV channels.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/wav"

	"github.com/cellux/glplot"
	"github.com/cellux/glplot/internal/config"
)

// Sine samples sin(x) at n evenly spaced points of domain, both ends
// included.
func Sine(domain glplot.Interval, n int) []glplot.Vertex {
	if n <= 0 {
		return nil
	}
	points := make([]glplot.Vertex, n)
	step := 0.0
	if n > 1 {
		step = float64(domain.Span) / float64(n-1)
	}
	for i := range points {
		x := float64(domain.Lower) + float64(i)*step
		points[i] = glplot.V(float32(x), float32(math.Sin(x)))
	}
	return points
}

// ReadCSV reads one point per record, x from column xcol and y from
// column ycol. A negative xcol numbers the points 0, 1, 2, ... instead.
func ReadCSV(r io.Reader, xcol, ycol int, header bool) ([]glplot.Vertex, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	var points []glplot.Vertex
	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header && line == 1 {
			continue
		}
		y, err := column(record, ycol)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		x := float32(len(points))
		if xcol >= 0 {
			x, err = column(record, xcol)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		points = append(points, glplot.V(x, y))
	}
	return points, nil
}

func column(record []string, col int) (float32, error) {
	if col < 0 || col >= len(record) {
		return 0, fmt.Errorf("no column %d in record of %d fields", col, len(record))
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 32)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("column %d: %q is not a finite number", col, record[col])
	}
	return float32(v), nil
}

// ReadWAV decodes one channel of a PCM WAV stream. Points have the time in
// seconds on x and the amplitude normalized to [-1, 1) on y.
func ReadWAV(r io.ReadSeeker, channel int) ([]glplot.Vertex, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, errors.New("not a valid WAV file")
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	nchannels := buf.Format.NumChannels
	if channel < 0 || channel >= nchannels {
		return nil, fmt.Errorf("no channel %d in WAV file with %d channels", channel, nchannels)
	}
	sampleRate := float64(buf.Format.SampleRate)
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %v", sampleRate)
	}
	bitDepth := int(d.BitDepth)
	full := math.Ldexp(1, bitDepth-1)
	offset := 0.0
	if bitDepth == 8 {
		// 8 bit PCM is unsigned
		offset = full
	}
	nframes := len(buf.Data) / nchannels
	points := make([]glplot.Vertex, nframes)
	for i := range points {
		smp := float64(buf.Data[i*nchannels+channel])
		points[i] = glplot.V(float32(float64(i)/sampleRate), float32((smp-offset)/full))
	}
	return points, nil
}

// Load produces the series described by ds.
func Load(ds config.Dataset) ([]glplot.Vertex, error) {
	var points []glplot.Vertex
	switch ds.Kind {
	case "sine":
		points = Sine(glplot.NewInterval(ds.Domain[0], ds.Domain[1]), ds.Samples)
	case "csv":
		f, err := os.Open(ds.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		points, err = ReadCSV(f, ds.XColumn, ds.YColumn, ds.Header)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ds.Path, err)
		}
	case "wav":
		f, err := os.Open(ds.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		points, err = ReadWAV(f, ds.Channel)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ds.Path, err)
		}
	default:
		return nil, fmt.Errorf("unknown dataset kind %q", ds.Kind)
	}
	if ds.MaxPoints > 0 && len(points) > ds.MaxPoints {
		return Decimate(points, ds.MaxPoints, ds.Converter)
	}
	return points, nil
}
