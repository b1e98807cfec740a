// Package songs reads and filters song datasets stored as CSV. The reader
// surfaces one row at a time with the fields the analyzers need; the filter
// streams full records between CSV files applying predicate options.
package songs

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one song record reduced to the analysis fields. Year is 0 when the
// source value is missing or unparseable; analyzers treat that as "no year"
// and skip the row.
type Row struct {
	Title    string
	Artist   string
	Tag      string
	Language string
	Year     int
	Lyrics   string
}

// RowError reports a malformed record. It is recoverable: callers log it
// and continue with the next row.
type RowError struct {
	Index int // 1-based data row number, header excluded
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Index, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// parseYear converts a year field to an int, returning 0 for anything that
// is not a usable year. Datasets exported from dataframe tooling often
// carry years as floats ("2019.0"), so a float form is accepted too.
func parseYear(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if y, err := strconv.Atoi(s); err == nil {
		return y
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
