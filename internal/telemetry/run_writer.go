// Package telemetry records a fitting run's progress and outcome to disk:
// a per-generation CSV trace and a final JSON summary.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/g960059/circleheart/internal/optimize"
)

// RunWriter handles a single fitting run's output directory, writing
// generations.csv incrementally as progress callbacks arrive and
// summary.json once at the end. A nil *RunWriter disables output, matching
// OutputManager's nil-receiver-is-a-no-op convention.
type RunWriter struct {
	dir               string
	generationsFile   *os.File
	generationsHeader bool
}

// NewRunWriter creates dir if needed and opens generations.csv. Passing an
// empty dir disables output and returns a nil *RunWriter.
func NewRunWriter(dir string) (*RunWriter, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "generations.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating generations.csv: %w", err)
	}

	return &RunWriter{dir: dir, generationsFile: f}, nil
}

// WriteGeneration appends one GenerationRecord to generations.csv, writing
// the header on the first call.
func (rw *RunWriter) WriteGeneration(rec optimize.GenerationRecord) error {
	if rw == nil {
		return nil
	}

	records := []optimize.GenerationRecord{rec}
	if !rw.generationsHeader {
		if err := gocsv.Marshal(records, rw.generationsFile); err != nil {
			return fmt.Errorf("writing generation record: %w", err)
		}
		rw.generationsHeader = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, rw.generationsFile); err != nil {
		return fmt.Errorf("writing generation record: %w", err)
	}
	return nil
}

// RunSummary is the final outcome of a fitting run.
type RunSummary struct {
	BestFitness float64            `json:"best_fitness"`
	BestParams  map[string]float64 `json:"best_parameters"`
	Restarts    int                `json:"restarts"`
	Elapsed     time.Duration      `json:"elapsed_ns"`
}

// WriteSummary writes summary.json.
func (rw *RunWriter) WriteSummary(summary RunSummary) error {
	if rw == nil {
		return nil
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling run summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(rw.dir, "summary.json"), data, 0644); err != nil {
		return fmt.Errorf("writing summary.json: %w", err)
	}
	return nil
}

// Dir returns the output directory, or "" for a disabled writer.
func (rw *RunWriter) Dir() string {
	if rw == nil {
		return ""
	}
	return rw.dir
}

// Close closes generations.csv.
func (rw *RunWriter) Close() error {
	if rw == nil || rw.generationsFile == nil {
		return nil
	}
	return rw.generationsFile.Close()
}
