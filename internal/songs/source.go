package songs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMissingColumns is returned when the dataset lacks the required year
// and lyrics columns.
var ErrMissingColumns = errors.New("missing required columns")

// Source yields dataset rows in file order.
type Source interface {
	// Next returns the next row. It returns io.EOF when the dataset is
	// exhausted and a *RowError for a malformed record that should be
	// skipped; any other error is fatal to the batch.
	Next() (Row, error)
}

// CSVSource reads song rows from a CSV file with a header line. The year
// and lyrics columns are required; title, artist, tag and language are
// picked up when present.
type CSVSource struct {
	f    *os.File
	r    *csv.Reader
	cols map[string]int
	row  int

	yearCounts map[int]int
}

// OpenCSV opens path and consumes the header. A missing file or a header
// without the required columns is a batch-level failure.
func OpenCSV(path string) (*CSVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	var missing []string
	for _, name := range []string{"year", "lyrics"} {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return &CSVSource{
		f:          f,
		r:          r,
		cols:       cols,
		yearCounts: make(map[int]int),
	}, nil
}

// Next implements Source.
func (s *CSVSource) Next() (Row, error) {
	rec, err := s.r.Read()
	if err == io.EOF {
		return Row{}, io.EOF
	}
	s.row++
	if err != nil {
		return Row{}, &RowError{Index: s.row, Err: err}
	}

	field := func(name string) string {
		i, ok := s.cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	row := Row{
		Title:    field("title"),
		Artist:   field("artist"),
		Tag:      field("tag"),
		Language: field("language"),
		Year:     parseYear(field("year")),
		Lyrics:   field("lyrics"),
	}
	if row.Year != 0 {
		s.yearCounts[row.Year]++
	}
	return row, nil
}

// RowsRead returns the number of data rows consumed so far, malformed rows
// included.
func (s *CSVSource) RowsRead() int {
	return s.row
}

// YearDistribution returns the per-year row counts observed so far.
func (s *CSVSource) YearDistribution() map[int]int {
	return s.yearCounts
}

// Close releases the underlying file.
func (s *CSVSource) Close() error {
	return s.f.Close()
}
