// Package csvsink implements the append-and-flush-per-row CSV writer
// shared by both CLI drivers (spec §5: "opened with append semantics and
// flushed after each configuration so crashes preserve prior results").
package csvsink

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Sink appends rows to a CSV file, flushing after every row so a crash
// mid-sweep never loses a completed configuration's result.
type Sink struct {
	file   *os.File
	writer *csv.Writer
}

// Open opens path for appending, writing header if the file is new or
// empty. It fails with IOFailure semantics surfaced as a wrapped error.
func Open(path string, header []string) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("csvsink: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csvsink: stat %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("csvsink: write header %s: %w", path, err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("csvsink: flush header %s: %w", path, err)
		}
	}

	return &Sink{file: f, writer: w}, nil
}

// WriteRow appends one row and flushes immediately.
func (s *Sink) WriteRow(fields []string) error {
	if err := s.writer.Write(fields); err != nil {
		return fmt.Errorf("csvsink: write row: %w", err)
	}
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return fmt.Errorf("csvsink: flush row: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (s *Sink) Close() error {
	return s.file.Close()
}
