// Package catalog loads the galaxy samples shown by the viewer.
//
// A sample is three equal-length columns (right ascension and declination in
// degrees, redshift) read from a whitespace separated text table. Samples are
// never modified after loading.
package catalog

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Axis identifies one of the three sample columns.
type Axis int

const (
	AxisRA Axis = iota
	AxisDec
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisRA:
		return "R.A."
	case AxisDec:
		return "Dec."
	case AxisZ:
		return "z"
	}
	return "unknown"
}

// Sample is one galaxy catalog.
type Sample struct {
	Name string
	RA   []float64 // degrees
	Dec  []float64 // degrees
	Z    []float64
}

// Len returns the number of objects in the sample.
func (s *Sample) Len() int {
	return len(s.Z)
}

// Column returns the values along axis.
func (s *Sample) Column(axis Axis) []float64 {
	switch axis {
	case AxisRA:
		return s.RA
	case AxisDec:
		return s.Dec
	default:
		return s.Z
	}
}

// Load reads a sample from path. The sample is named after the file.
func Load(path string) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening catalog %s", path)
	}
	defer f.Close()

	s, err := Read(f, filepath.Base(path))
	if err != nil {
		return nil, errors.Wrapf(err, "reading catalog %s", path)
	}
	return s, nil
}

// Read parses a sample table. Blank lines and lines starting with '#' are
// skipped, columns past the third are ignored.
func Read(r io.Reader, name string) (*Sample, error) {
	s := &Sample{Name: name}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, errors.Errorf("line %d: expected at least 3 columns, got %d", lineNo, len(fields))
		}

		var vals [3]float64
		for i := range vals {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %d", lineNo, i+1)
			}
			vals[i] = v
		}

		s.RA = append(s.RA, vals[0])
		s.Dec = append(s.Dec, vals[1])
		s.Z = append(s.Z, vals[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "after line %d", lineNo)
	}

	logrus.Debugf("catalog %s: %d objects", name, s.Len())
	return s, nil
}
