// Package ingest loads vibration waveforms from the supported on-disk
// formats. CSV files contribute their first numeric column; plain-text files
// are whitespace-separated samples.
package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrUnsupportedFormat is returned for file extensions outside the
// csv/txt allow-list.
var ErrUnsupportedFormat = errors.New("ingest: unsupported file format")

// ErrNoSamples is returned when a supported file contains no numeric data.
var ErrNoSamples = errors.New("ingest: no samples found")

// LoadError wraps a parse failure with its source location.
type LoadError struct {
	Name string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("ingest: %s line %d: %v", e.Name, e.Line, e.Err)
	}
	return fmt.Sprintf("ingest: %s: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Supported reports whether the extension (with or without a leading dot)
// names a loadable format.
func Supported(ext string) bool {
	switch normalizeExt(ext) {
	case ".csv", ".txt":
		return true
	}
	return false
}

// Load reads a waveform from path, choosing the parser from the file
// extension.
func Load(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	return Read(f, filepath.Ext(path))
}

// Read parses a waveform from r in the format named by ext.
func Read(r io.Reader, ext string) ([]float64, error) {
	switch normalizeExt(ext) {
	case ".csv":
		return readCSV(r)
	case ".txt":
		return readText(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// readCSV extracts the first column. A single non-numeric leading row is
// treated as a header; any later non-numeric cell is an error.
func readCSV(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []float64
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Name: "csv", Line: line + 1, Err: err}
		}
		line++

		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			if line == 1 {
				// Header row.
				continue
			}
			return nil, &LoadError{Name: "csv", Line: line, Err: err}
		}
		out = append(out, v)
	}

	if len(out) == 0 {
		return nil, ErrNoSamples
	}
	return out, nil
}

// readText parses whitespace-separated samples, one or more per line.
func readText(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		for _, field := range strings.Fields(sc.Text()) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &LoadError{Name: "txt", Line: line, Err: err}
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Name: "txt", Line: line, Err: err}
	}

	if len(out) == 0 {
		return nil, ErrNoSamples
	}
	return out, nil
}
