package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/example/lyricfreq/internal/songs"
	"github.com/example/lyricfreq/internal/vocab"
)

// YearCount is one point of a keyword's frequency series. It serializes as
// a [year, count] pair.
type YearCount struct {
	Year  int
	Count int
}

// MarshalJSON renders the pair as a two-element array.
func (yc YearCount) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d]", yc.Year, yc.Count)), nil
}

// KeywordDetail carries per-keyword summary statistics.
type KeywordDetail struct {
	TotalFrequency int
	YearsActive    int
	AveragePerYear float64 // per active year, rounded to 2 decimals
	YearRange      YearRange
}

// KeywordStats summarizes a fixed-keyword analysis run.
type KeywordStats struct {
	TotalKeywords    int // keywords that matched at least once
	KeywordsWithData int
	TotalMatches     int
	SongsProcessed   int
	Details          map[string]KeywordDetail
}

// KeywordAnalyzer counts occurrences of a closed keyword set per year.
// Matching is case-insensitive exact equality against extracted words,
// never substring. Not safe for concurrent use.
type KeywordAnalyzer struct {
	extractor *vocab.Extractor
	keywords  []string
	freqs     map[string]map[int]int

	songsProcessed int
	totalMatches   int

	// ProgressInterval overrides the progress logging interval when > 0.
	ProgressInterval int
}

// NewKeywordAnalyzer returns a fresh analyzer tracking keywords.
func NewKeywordAnalyzer(extractor *vocab.Extractor, keywords []string) *KeywordAnalyzer {
	return &KeywordAnalyzer{
		extractor: extractor,
		keywords:  keywords,
		freqs:     make(map[string]map[int]int),
	}
}

// Keywords returns the keyword list supplied at construction.
func (a *KeywordAnalyzer) Keywords() []string {
	return a.keywords
}

// Analyze consumes src to exhaustion, counting keyword matches by year.
// The skip rules match VocabularyAnalyzer: no usable year or empty lyrics
// leaves every counter untouched, and a song counts as processed only when
// extraction yielded at least one word.
func (a *KeywordAnalyzer) Analyze(ctx context.Context, src songs.Source) error {
	if err := consumeRows(ctx, src, a.ProgressInterval, a.processRow); err != nil {
		return err
	}
	slog.Info("keyword analysis complete",
		"songs_processed", a.songsProcessed,
		"total_matches", a.totalMatches,
		"keywords", len(a.keywords))
	return nil
}

func (a *KeywordAnalyzer) processRow(row songs.Row) {
	if row.Year == 0 || row.Lyrics == "" {
		return
	}
	words := a.extractor.Extract(row.Lyrics)
	if len(words) == 0 {
		return
	}

	for _, keyword := range a.keywords {
		lower := strings.ToLower(keyword)
		matches := 0
		for _, w := range words {
			if strings.ToLower(w) == lower {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		byYear := a.freqs[keyword]
		if byYear == nil {
			byYear = make(map[int]int)
			a.freqs[keyword] = byYear
		}
		byYear[row.Year] += matches
		a.totalMatches += matches
	}
	a.songsProcessed++
}

// FrequencySeries returns, per keyword with data, the (year, count) pairs
// sorted ascending by year. Years with zero count never enter the table.
func (a *KeywordAnalyzer) FrequencySeries() map[string][]YearCount {
	series := make(map[string][]YearCount, len(a.freqs))
	for keyword, byYear := range a.freqs {
		points := make([]YearCount, 0, len(byYear))
		for year, count := range byYear {
			points = append(points, YearCount{Year: year, Count: count})
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
		series[keyword] = points
	}
	return series
}

// YearsCovered returns the number of distinct years that have at least one
// keyword match.
func (a *KeywordAnalyzer) YearsCovered() int {
	years := make(map[int]struct{})
	for _, byYear := range a.freqs {
		for year := range byYear {
			years[year] = struct{}{}
		}
	}
	return len(years)
}

// SongsProcessed returns the number of songs that yielded at least one word.
func (a *KeywordAnalyzer) SongsProcessed() int {
	return a.songsProcessed
}

// TotalMatches returns the total keyword match count across all years.
func (a *KeywordAnalyzer) TotalMatches() int {
	return a.totalMatches
}

// Stats summarizes the aggregated keyword tables.
func (a *KeywordAnalyzer) Stats() KeywordStats {
	series := a.FrequencySeries()
	stats := KeywordStats{
		TotalKeywords:    len(series),
		KeywordsWithData: len(series),
		TotalMatches:     a.totalMatches,
		SongsProcessed:   a.songsProcessed,
		Details:          make(map[string]KeywordDetail, len(series)),
	}
	for keyword, points := range series {
		if len(points) == 0 {
			continue
		}
		total := 0
		for _, p := range points {
			total += p.Count
		}
		avg := float64(total) / float64(len(points))
		stats.Details[keyword] = KeywordDetail{
			TotalFrequency: total,
			YearsActive:    len(points),
			AveragePerYear: math.Round(avg*100) / 100,
			YearRange: YearRange{
				Start: points[0].Year,
				End:   points[len(points)-1].Year,
			},
		}
	}
	return stats
}
