// Package output serializes the three run artifacts: raw events, daily
// rollups and the validation report. Every artifact is always written,
// whatever the validation outcome, so failures stay diagnosable.
package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/telesynth/telesynth-cli/internal/models"
)

// Default artifact file names.
const (
	RawEventsFile        = "raw_events.json"
	DailyRollupsFile     = "daily_rollups.json"
	ValidationReportFile = "validation_report.json"
)

// Writer writes run artifacts into one directory.
type Writer struct {
	dir    string
	format string // "json" or "ndjson" for the events collection
}

// NewWriter creates the output directory if needed.
func NewWriter(dir, format string) (*Writer, error) {
	if format != "json" && format != "ndjson" {
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Writer{dir: dir, format: format}, nil
}

// WriteRawEvents writes the events collection. The ndjson format streams one
// record per line; json writes a single pretty-printed array.
func (w *Writer) WriteRawEvents(events []models.RawEvent) error {
	path := filepath.Join(w.dir, RawEventsFile)
	if w.format == "ndjson" {
		return writeNDJSON(path, events)
	}
	return writeJSON(path, events)
}

// WriteRollups writes the daily rollups collection.
func (w *Writer) WriteRollups(rollups []models.DailyRollup) error {
	return writeJSON(filepath.Join(w.dir, DailyRollupsFile), rollups)
}

// WriteReport writes the validation report.
func (w *Writer) WriteReport(report *models.ValidationResult) error {
	return writeJSON(filepath.Join(w.dir, ValidationReportFile), report)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeNDJSON[T any](path string, records []T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	enc := json.NewEncoder(buf)
	for i := range records {
		if err := enc.Encode(records[i]); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", filepath.Base(path), err)
	}
	return file.Close()
}

// ReadRawEvents loads an events collection previously written by WriteRawEvents.
// Both the array and ndjson layouts are accepted.
func ReadRawEvents(path string) ([]models.RawEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var events []models.RawEvent
	if err := json.Unmarshal(data, &events); err == nil {
		return events, nil
	}

	// Fall back to ndjson.
	dec := json.NewDecoder(bytes.NewReader(data))
	events = events[:0]
	for dec.More() {
		var e models.RawEvent
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		events = append(events, e)
	}
	return events, nil
}

// ReadRollups loads a rollups collection.
func ReadRollups(path string) ([]models.DailyRollup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var rollups []models.DailyRollup
	if err := json.Unmarshal(data, &rollups); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rollups, nil
}
