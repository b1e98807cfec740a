package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/example/lyricfreq/internal/analyzer"
)

const rule = "============================================================"

// PrintVocabularySummary writes the per-year top-N summary of a completed
// full-vocabulary run to w.
func PrintVocabularySummary(w io.Writer, a *analyzer.VocabularyAnalyzer, topN int) {
	stats := a.Stats()

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Vocabulary Analysis Summary")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Songs processed: %d\n", stats.SongsProcessed)
	fmt.Fprintf(w, "Total vocabulary count: %d\n", a.TotalVocabCount())
	fmt.Fprintf(w, "Years analyzed: %d\n", stats.TotalYears)
	if stats.YearRange != nil {
		fmt.Fprintf(w, "Year range: %d - %d\n", stats.YearRange.Start, stats.YearRange.End)
	}

	rankings := a.GenerateRankings(topN)
	for _, year := range a.Years() {
		fmt.Fprintf(w, "\n%d - top %d words:\n", year, topN)
		fmt.Fprintln(w, strings.Repeat("-", 40))
		for i, wc := range rankings[year] {
			fmt.Fprintf(w, "%2d. %-15s (frequency: %d)\n", i+1, wc.Word, wc.Frequency)
		}
	}
}

// PrintKeywordSummary writes the per-keyword frequency series and stats of
// a completed fixed-keyword run to w. Keywords are reported in the order
// they were supplied, including those without matches.
func PrintKeywordSummary(w io.Writer, a *analyzer.KeywordAnalyzer) {
	stats := a.Stats()
	series := a.FrequencySeries()

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Keyword Frequency Analysis Summary")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Songs processed: %d\n", stats.SongsProcessed)
	fmt.Fprintf(w, "Total keyword matches: %d\n", stats.TotalMatches)
	fmt.Fprintf(w, "Keywords analyzed: %d\n", len(a.Keywords()))

	for _, keyword := range a.Keywords() {
		points, ok := series[keyword]
		if !ok || len(points) == 0 {
			fmt.Fprintf(w, "\n%s - no occurrences found\n", keyword)
			continue
		}

		fmt.Fprintf(w, "\n%s - frequency by year:\n", keyword)
		fmt.Fprintln(w, strings.Repeat("-", 40))
		for _, p := range points {
			fmt.Fprintf(w, "  %d: %d occurrences\n", p.Year, p.Count)
		}
		if detail, ok := stats.Details[keyword]; ok {
			fmt.Fprintf(w, "  Total: %d occurrences over %d years (avg %.2f/year)\n",
				detail.TotalFrequency, detail.YearsActive, detail.AveragePerYear)
		}
	}
}
