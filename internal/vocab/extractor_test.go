package vocab

import (
	"slices"
	"testing"
)

// fakeSegmenter returns canned segmentations so expectations stay
// deterministic; unknown input comes back as a single segment.
type fakeSegmenter struct {
	segments map[string][]string
}

func (f fakeSegmenter) Segment(text string) []string {
	if segs, ok := f.segments[text]; ok {
		return segs
	}
	return []string{text}
}

func newTestExtractor() *Extractor {
	return NewExtractor(fakeSegmenter{segments: map[string][]string{
		"我爱你":  {"我", "爱你"},
		"嘻哈文化": {"嘻哈", "文化"},
		"说唱音乐": {"说唱", "音乐"},
		"年":    {"年"},
		"爱":    {"爱"},
	}})
}

func TestExtract(t *testing.T) {
	ex := newTestExtractor()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "  \t\n  ",
			want:  nil,
		},
		{
			name:  "pure english words",
			input: "Love Music Forever",
			want:  []string{"love", "music", "forever"},
		},
		{
			name:  "short english tokens dropped",
			input: "I a ok GO",
			want:  []string{"ok", "go"},
		},
		{
			name:  "edge punctuation stripped from english tokens",
			input: `"hello!" world... yeah:`,
			want:  []string{"hello", "world", "yeah"},
		},
		{
			name:  "interior hyphen preserved",
			input: "hip-hop forever",
			want:  []string{"hip-hop", "forever"},
		},
		{
			name:  "pure chinese token segmented with short segments dropped",
			input: "我爱你",
			want:  []string{"爱你"},
		},
		{
			name:  "mixed english and chinese tokens",
			input: "I love you 我爱你 rap music",
			want:  []string{"love", "you", "爱你", "rap", "music"},
		},
		{
			name:  "english then chinese",
			input: "hip-hop 嘻哈文化",
			want:  []string{"hip-hop", "嘻哈", "文化"},
		},
		{
			name:  "mixed token splits at script boundary",
			input: "rap说唱音乐time",
			want:  []string{"说唱", "音乐", "raptime"},
		},
		{
			name:  "mixed token with short chinese part keeps english side",
			input: "2019年",
			want:  []string{"2019"},
		},
		{
			name:  "mixed token lower-cases english side without length check at split",
			input: "Rap爱",
			want:  []string{"rap"},
		},
		{
			name:  "tokens of other characters produce nothing",
			input: "。。。 ，， 🎤",
			want:  nil,
		},
		{
			name:  "cjk punctuation excluded from chinese part",
			input: "我爱你。ok",
			want:  []string{"爱你", "ok"},
		},
		{
			name:  "digits are latin eligible",
			input: "808 trap",
			want:  []string{"808", "trap"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ex.Extract(tc.input)
			if !slices.Equal(got, tc.want) {
				t.Errorf("Extract(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestExtractIsPure(t *testing.T) {
	ex := newTestExtractor()
	input := "I love you 我爱你 rap music"

	first := ex.Extract(input)
	second := ex.Extract(input)
	if !slices.Equal(first, second) {
		t.Errorf("repeated Extract differs: %q vs %q", first, second)
	}
}

func TestExtractMixedTokenSplitCoversAllEligibleRunes(t *testing.T) {
	// The chinese and latin parts of a mixed token must together account
	// for every classified rune of the original token.
	seg := fakeSegmenter{}
	ex := NewExtractor(seg)

	token := "mc说唱2024王"
	got := ex.Extract(token)

	// fakeSegmenter echoes the chinese part back as one segment.
	wantChinese := "说唱王"
	wantLatin := "mc2024"
	if !slices.Contains(got, wantChinese) {
		t.Errorf("Extract(%q) = %q, missing chinese part %q", token, got, wantChinese)
	}
	if !slices.Contains(got, wantLatin) {
		t.Errorf("Extract(%q) = %q, missing latin part %q", token, got, wantLatin)
	}
}
