// Package analyzer aggregates extracted vocabulary into per-year frequency
// tables. VocabularyAnalyzer counts every word; KeywordAnalyzer tracks a
// closed keyword set. Both consume rows sequentially from a songs.Source
// and own their tables exclusively for the duration of one batch.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/example/lyricfreq/internal/songs"
	"github.com/example/lyricfreq/internal/vocab"
)

// DefaultProgressInterval is the row interval for progress log entries.
const DefaultProgressInterval = 10000

// WordCount is one ranked word with its occurrence count.
type WordCount struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// YearRange is an inclusive span of years with data.
type YearRange struct {
	Start int
	End   int
}

// VocabularyStats summarizes a full-vocabulary analysis run.
type VocabularyStats struct {
	TotalYears           int
	TotalUniqueWords     int
	TotalWordOccurrences int
	SongsProcessed       int
	YearRange            *YearRange // nil when no data was aggregated
}

// VocabularyAnalyzer accumulates per-year word frequencies across a batch
// of songs. Not safe for concurrent use; one instance serves one batch.
type VocabularyAnalyzer struct {
	extractor *vocab.Extractor
	byYear    map[int]*counter

	songsProcessed  int
	totalVocabCount int

	// ProgressInterval overrides the progress logging interval when > 0.
	ProgressInterval int
}

// NewVocabularyAnalyzer returns a fresh analyzer with empty tables.
func NewVocabularyAnalyzer(extractor *vocab.Extractor) *VocabularyAnalyzer {
	return &VocabularyAnalyzer{
		extractor: extractor,
		byYear:    make(map[int]*counter),
	}
}

// Analyze consumes src to exhaustion, aggregating word counts by year.
// Rows without a usable year or with empty lyrics are skipped without
// touching any counter; malformed rows are logged and skipped. Cancelling
// ctx aborts the batch and leaves the partial state to be discarded.
func (a *VocabularyAnalyzer) Analyze(ctx context.Context, src songs.Source) error {
	if err := consumeRows(ctx, src, a.ProgressInterval, a.processRow); err != nil {
		return err
	}
	slog.Info("vocabulary analysis complete",
		"songs_processed", a.songsProcessed,
		"total_vocabulary", a.totalVocabCount,
		"years", len(a.byYear))
	return nil
}

// consumeRows drives a batch: rows are processed strictly sequentially,
// malformed rows are logged and skipped, any other source error aborts.
func consumeRows(ctx context.Context, src songs.Source, interval int, process func(songs.Row)) error {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	rows := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		rows++
		var rowErr *songs.RowError
		if errors.As(err, &rowErr) {
			slog.Warn("skipping row", "row", rowErr.Index, "err", rowErr.Err)
			continue
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}

		process(row)
		if rows%interval == 0 {
			slog.Info("progress", "rows", rows)
		}
	}
}

func (a *VocabularyAnalyzer) processRow(row songs.Row) {
	if row.Year == 0 || row.Lyrics == "" {
		return
	}
	words := a.extractor.Extract(row.Lyrics)
	if len(words) == 0 {
		return
	}

	c := a.byYear[row.Year]
	if c == nil {
		c = newCounter()
		a.byYear[row.Year] = c
	}
	for _, w := range words {
		c.add(w)
		a.totalVocabCount++
	}
	a.songsProcessed++
}

// GenerateRankings returns the topN words per year. Equal counts rank in
// first-seen order, which makes rankings reproducible for identical input
// order.
func (a *VocabularyAnalyzer) GenerateRankings(topN int) map[int][]WordCount {
	rankings := make(map[int][]WordCount, len(a.byYear))
	for year, c := range a.byYear {
		rankings[year] = c.topN(topN)
	}
	return rankings
}

// Years returns the years with data, ascending.
func (a *VocabularyAnalyzer) Years() []int {
	years := make([]int, 0, len(a.byYear))
	for y := range a.byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// SongsProcessed returns the number of songs that yielded at least one word.
func (a *VocabularyAnalyzer) SongsProcessed() int {
	return a.songsProcessed
}

// TotalVocabCount returns the total number of counted word occurrences.
func (a *VocabularyAnalyzer) TotalVocabCount() int {
	return a.totalVocabCount
}

// Stats summarizes the aggregated tables.
func (a *VocabularyAnalyzer) Stats() VocabularyStats {
	stats := VocabularyStats{
		TotalYears:     len(a.byYear),
		SongsProcessed: a.songsProcessed,
	}
	for _, c := range a.byYear {
		stats.TotalUniqueWords += len(c.counts)
		stats.TotalWordOccurrences += c.total()
	}
	if years := a.Years(); len(years) > 0 {
		stats.YearRange = &YearRange{Start: years[0], End: years[len(years)-1]}
	}
	return stats
}
