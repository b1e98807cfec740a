package songs

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

// RapHipHopPattern matches the tags the dataset uses for rap and hip-hop
// songs, in either script.
var RapHipHopPattern = regexp.MustCompile(`(?i)(rap|hip.?hop|hiphop|嘻哈|说唱|饶舌)`)

// FilterOptions selects the subset of songs to keep. Zero values disable
// the corresponding filter.
type FilterOptions struct {
	Language     string         // exact match on the language column
	YearStart    int            // inclusive lower bound on year
	YearEnd      int            // inclusive upper bound on year
	MinLyricsLen int            // minimum lyrics length in runes
	Contains     string         // case-insensitive substring of lyrics
	TagPattern   *regexp.Regexp // pattern over the tag column
}

// FilterSummary reports how many rows survived each filter stage.
type FilterSummary struct {
	TotalRows  int
	Matched    int
	Skipped    int // malformed rows
	YearCounts map[int]int
}

// FilterCSV streams rows from inPath to outPath, keeping those that pass
// every enabled filter. All input columns are preserved. Malformed rows are
// logged and skipped; a missing input file or a header without the columns
// a requested filter needs is fatal.
func FilterCSV(inPath, outPath string, opts FilterOptions) (FilterSummary, error) {
	summary := FilterSummary{YearCounts: make(map[int]int)}

	in, err := os.Open(inPath)
	if err != nil {
		return summary, fmt.Errorf("open dataset: %w", err)
	}
	defer in.Close()

	r := csv.NewReader(in)
	header, err := r.Read()
	if err != nil {
		return summary, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if err := checkFilterColumns(cols, opts); err != nil {
		return summary, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return summary, fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return summary, fmt.Errorf("write header: %w", err)
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		summary.TotalRows++
		if err != nil {
			summary.Skipped++
			slog.Warn("skipping unreadable row", "row", summary.TotalRows, "err", err)
			continue
		}

		if !matches(rec, cols, opts) {
			continue
		}
		if err := w.Write(rec); err != nil {
			return summary, fmt.Errorf("write row: %w", err)
		}
		summary.Matched++
		if i, ok := cols["year"]; ok && i < len(rec) {
			if y := parseYear(rec[i]); y != 0 {
				summary.YearCounts[y]++
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return summary, fmt.Errorf("flush output: %w", err)
	}
	return summary, nil
}

func checkFilterColumns(cols map[string]int, opts FilterOptions) error {
	var missing []string
	need := func(name string, enabled bool) {
		if !enabled {
			return
		}
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	need("language", opts.Language != "")
	need("year", opts.YearStart != 0 || opts.YearEnd != 0)
	need("lyrics", opts.MinLyricsLen > 0 || opts.Contains != "")
	need("tag", opts.TagPattern != nil)
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}

func matches(rec []string, cols map[string]int, opts FilterOptions) bool {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	if opts.Language != "" && field("language") != opts.Language {
		return false
	}
	if opts.YearStart != 0 || opts.YearEnd != 0 {
		y := parseYear(field("year"))
		if y == 0 {
			return false
		}
		if opts.YearStart != 0 && y < opts.YearStart {
			return false
		}
		if opts.YearEnd != 0 && y > opts.YearEnd {
			return false
		}
	}
	if opts.MinLyricsLen > 0 && utf8.RuneCountInString(field("lyrics")) < opts.MinLyricsLen {
		return false
	}
	if opts.Contains != "" &&
		!strings.Contains(strings.ToLower(field("lyrics")), strings.ToLower(opts.Contains)) {
		return false
	}
	if opts.TagPattern != nil && !opts.TagPattern.MatchString(field("tag")) {
		return false
	}
	return true
}
