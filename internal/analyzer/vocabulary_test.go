package analyzer

import (
	"context"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/example/lyricfreq/internal/songs"
	"github.com/example/lyricfreq/internal/vocab"
)

// stubSegmenter returns canned segmentations; unknown input comes back as
// a single segment.
type stubSegmenter struct {
	segments map[string][]string
}

func (s stubSegmenter) Segment(text string) []string {
	if segs, ok := s.segments[text]; ok {
		return segs
	}
	return []string{text}
}

// stubSource replays a fixed sequence of rows and errors.
type stubSource struct {
	events []stubEvent
	i      int
}

type stubEvent struct {
	row songs.Row
	err error
}

func (s *stubSource) Next() (songs.Row, error) {
	if s.i >= len(s.events) {
		return songs.Row{}, io.EOF
	}
	ev := s.events[s.i]
	s.i++
	return ev.row, ev.err
}

func testExtractor() *vocab.Extractor {
	return vocab.NewExtractor(stubSegmenter{segments: map[string][]string{
		"我爱你":  {"我", "爱你"},
		"说唱音乐": {"说唱", "音乐"},
	}})
}

func rowSource(rows ...songs.Row) *stubSource {
	src := &stubSource{}
	for _, r := range rows {
		src.events = append(src.events, stubEvent{row: r})
	}
	return src
}

func TestVocabularyAnalyzerAggregates(t *testing.T) {
	a := NewVocabularyAnalyzer(testExtractor())
	src := rowSource(
		songs.Row{Year: 2019, Lyrics: "rap rap music"},
		songs.Row{Year: 2019, Lyrics: "说唱音乐 rap"},
		songs.Row{Year: 2020, Lyrics: "我爱你"},
		songs.Row{Year: 0, Lyrics: "should be skipped"},
		songs.Row{Year: 2021, Lyrics: ""},
		songs.Row{Year: 2021, Lyrics: "。。。"}, // yields no words
	)

	if err := a.Analyze(context.Background(), src); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if got := a.SongsProcessed(); got != 3 {
		t.Errorf("SongsProcessed() = %d, want 3", got)
	}
	// 2019: rap, rap, music, 说唱, 音乐, rap; 2020: 爱你.
	if got := a.TotalVocabCount(); got != 7 {
		t.Errorf("TotalVocabCount() = %d, want 7", got)
	}

	rankings := a.GenerateRankings(10)
	want2019 := []WordCount{
		{Word: "rap", Frequency: 3},
		{Word: "music", Frequency: 1},
		{Word: "说唱", Frequency: 1},
		{Word: "音乐", Frequency: 1},
	}
	if got := rankings[2019]; !reflect.DeepEqual(got, want2019) {
		t.Errorf("rankings[2019] = %v, want %v", got, want2019)
	}
	want2020 := []WordCount{{Word: "爱你", Frequency: 1}}
	if got := rankings[2020]; !reflect.DeepEqual(got, want2020) {
		t.Errorf("rankings[2020] = %v, want %v", got, want2020)
	}
	if _, ok := rankings[2021]; ok {
		t.Error("rankings contains 2021, want no entry for years without words")
	}

	if got, want := a.Years(), []int{2019, 2020}; !reflect.DeepEqual(got, want) {
		t.Errorf("Years() = %v, want %v", got, want)
	}
}

func TestVocabularyAnalyzerTopNTieBreak(t *testing.T) {
	a := NewVocabularyAnalyzer(testExtractor())
	// All words occur once; ranking must keep first-seen order.
	src := rowSource(songs.Row{Year: 2019, Lyrics: "delta alpha charlie bravo"})

	if err := a.Analyze(context.Background(), src); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	want := []WordCount{
		{Word: "delta", Frequency: 1},
		{Word: "alpha", Frequency: 1},
	}
	if got := a.GenerateRankings(2)[2019]; !reflect.DeepEqual(got, want) {
		t.Errorf("top-2 = %v, want %v", got, want)
	}
}

func TestVocabularyAnalyzerDeterministicRankings(t *testing.T) {
	run := func() map[int][]WordCount {
		a := NewVocabularyAnalyzer(testExtractor())
		src := rowSource(
			songs.Row{Year: 2019, Lyrics: "one two two three three"},
			songs.Row{Year: 2019, Lyrics: "four one three"},
		)
		if err := a.Analyze(context.Background(), src); err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		return a.GenerateRankings(10)
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical input produced different rankings: %v vs %v", first, second)
	}
}

func TestVocabularyAnalyzerSkipsMalformedRows(t *testing.T) {
	a := NewVocabularyAnalyzer(testExtractor())
	src := &stubSource{events: []stubEvent{
		{row: songs.Row{Year: 2019, Lyrics: "rap music"}},
		{err: &songs.RowError{Index: 2, Err: errors.New("bad record")}},
		{row: songs.Row{Year: 2019, Lyrics: "more rap"}},
	}}

	if err := a.Analyze(context.Background(), src); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got := a.SongsProcessed(); got != 2 {
		t.Errorf("SongsProcessed() = %d, want 2", got)
	}
}

func TestVocabularyAnalyzerFatalSourceError(t *testing.T) {
	a := NewVocabularyAnalyzer(testExtractor())
	fatal := errors.New("disk gone")
	src := &stubSource{events: []stubEvent{
		{row: songs.Row{Year: 2019, Lyrics: "rap music"}},
		{err: fatal},
	}}

	err := a.Analyze(context.Background(), src)
	if !errors.Is(err, fatal) {
		t.Fatalf("Analyze error = %v, want wrapped %v", err, fatal)
	}
}

func TestVocabularyAnalyzerContextCancel(t *testing.T) {
	a := NewVocabularyAnalyzer(testExtractor())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Analyze(ctx, rowSource(songs.Row{Year: 2019, Lyrics: "rap"}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Analyze error = %v, want context.Canceled", err)
	}
	if got := a.SongsProcessed(); got != 0 {
		t.Errorf("SongsProcessed() after cancel = %d, want 0", got)
	}
}

func TestVocabularyAnalyzerStats(t *testing.T) {
	a := NewVocabularyAnalyzer(testExtractor())
	src := rowSource(
		songs.Row{Year: 2018, Lyrics: "rap music"},
		songs.Row{Year: 2021, Lyrics: "rap rap"},
	)
	if err := a.Analyze(context.Background(), src); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	stats := a.Stats()
	if stats.TotalYears != 2 {
		t.Errorf("TotalYears = %d, want 2", stats.TotalYears)
	}
	// 2018: rap, music (2 unique); 2021: rap (1 unique).
	if stats.TotalUniqueWords != 3 {
		t.Errorf("TotalUniqueWords = %d, want 3", stats.TotalUniqueWords)
	}
	if stats.TotalWordOccurrences != 4 {
		t.Errorf("TotalWordOccurrences = %d, want 4", stats.TotalWordOccurrences)
	}
	if stats.YearRange == nil || stats.YearRange.Start != 2018 || stats.YearRange.End != 2021 {
		t.Errorf("YearRange = %+v, want 2018-2021", stats.YearRange)
	}
}

func TestVocabularyAnalyzerEmptyStats(t *testing.T) {
	a := NewVocabularyAnalyzer(testExtractor())

	stats := a.Stats()
	if stats.YearRange != nil {
		t.Errorf("YearRange = %+v, want nil for empty analyzer", stats.YearRange)
	}
	if stats.TotalYears != 0 || stats.SongsProcessed != 0 {
		t.Errorf("empty analyzer stats = %+v, want zeros", stats)
	}
}
