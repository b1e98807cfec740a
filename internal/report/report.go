// Package report shapes analysis results into the persisted JSON records
// and the human-readable console summaries. Chinese text is written
// unescaped.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/example/lyricfreq/internal/analyzer"
)

// VocabularyReport is the persisted record of a full-vocabulary run.
type VocabularyReport struct {
	AnalysisInfo VocabularyInfo                  `json:"analysis_info"`
	Rankings     map[string][]analyzer.WordCount `json:"yearly_rankings"`
	Statistics   VocabularyStatistics            `json:"statistics"`
}

// VocabularyInfo describes the run that produced the rankings.
type VocabularyInfo struct {
	TotalSongsProcessed  int    `json:"total_songs_processed"`
	TotalVocabularyCount int    `json:"total_vocabulary_count"`
	YearsAnalyzed        int    `json:"years_analyzed"`
	AnalysisDate         string `json:"analysis_date"`
	TopWordsPerYear      int    `json:"top_words_per_year"`
}

// VocabularyStatistics is the statistics section of a vocabulary report.
type VocabularyStatistics struct {
	TotalUniqueWords int           `json:"total_unique_words"`
	YearRange        YearRangeJSON `json:"year_range"`
}

// YearRangeJSON serializes an optional year span; both bounds are null
// when no data was aggregated.
type YearRangeJSON struct {
	Start *int `json:"start"`
	End   *int `json:"end"`
}

// NewVocabularyReport builds the persisted record from an analyzer that
// has completed a batch.
func NewVocabularyReport(a *analyzer.VocabularyAnalyzer, topN int, now time.Time) VocabularyReport {
	stats := a.Stats()

	rankings := make(map[string][]analyzer.WordCount, stats.TotalYears)
	for year, words := range a.GenerateRankings(topN) {
		rankings[strconv.Itoa(year)] = words
	}

	var yearRange YearRangeJSON
	if stats.YearRange != nil {
		start, end := stats.YearRange.Start, stats.YearRange.End
		yearRange = YearRangeJSON{Start: &start, End: &end}
	}

	return VocabularyReport{
		AnalysisInfo: VocabularyInfo{
			TotalSongsProcessed:  stats.SongsProcessed,
			TotalVocabularyCount: a.TotalVocabCount(),
			YearsAnalyzed:        stats.TotalYears,
			AnalysisDate:         now.Format(time.RFC3339),
			TopWordsPerYear:      topN,
		},
		Rankings: rankings,
		Statistics: VocabularyStatistics{
			TotalUniqueWords: stats.TotalUniqueWords,
			YearRange:        yearRange,
		},
	}
}

// KeywordReport is the persisted record of a fixed-keyword run.
type KeywordReport struct {
	AnalysisInfo KeywordInfo                     `json:"analysis_info"`
	Frequencies  map[string][]analyzer.YearCount `json:"keyword_frequencies"`
	Statistics   KeywordStatistics               `json:"statistics"`
}

// KeywordInfo describes the run that produced the frequency series.
type KeywordInfo struct {
	TotalSongsProcessed int      `json:"total_songs_processed"`
	TotalKeywordMatches int      `json:"total_keyword_matches"`
	KeywordsAnalyzed    []string `json:"keywords_analyzed"`
	AnalysisDate        string   `json:"analysis_date"`
	YearsCovered        int      `json:"years_covered"`
}

// KeywordStatistics is the statistics section of a keyword report.
type KeywordStatistics struct {
	TotalUniqueYears int `json:"total_unique_years"`
	KeywordsWithData int `json:"keywords_with_data"`
}

// NewKeywordReport builds the persisted record from an analyzer that has
// completed a batch.
func NewKeywordReport(a *analyzer.KeywordAnalyzer, now time.Time) KeywordReport {
	series := a.FrequencySeries()
	return KeywordReport{
		AnalysisInfo: KeywordInfo{
			TotalSongsProcessed: a.SongsProcessed(),
			TotalKeywordMatches: a.TotalMatches(),
			KeywordsAnalyzed:    a.Keywords(),
			AnalysisDate:        now.Format(time.RFC3339),
			YearsCovered:        a.YearsCovered(),
		},
		Frequencies: series,
		Statistics: KeywordStatistics{
			TotalUniqueYears: a.YearsCovered(),
			KeywordsWithData: len(series),
		},
	}
}

// WriteJSON writes v to path as indented JSON with non-ASCII text left
// unescaped. The in-memory results stay valid when the write fails.
func WriteJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("encode results: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close results file: %w", err)
	}
	return nil
}
