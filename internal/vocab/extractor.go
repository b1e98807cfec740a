// Package vocab turns raw mixed Chinese/English text into normalized
// vocabulary words. Chinese runs are handed to an injected segmenter;
// Latin runs are lower-cased and punctuation-trimmed. The extraction rules
// mirror the behavior of the upstream lyrics dataset tooling.
package vocab

import (
	"strings"
	"unicode/utf8"

	"github.com/example/lyricfreq/internal/script"
	"github.com/example/lyricfreq/internal/segment"
)

// minWordLength is the minimum length, in runes, of a counted word.
const minWordLength = 2

// retainedPunct are the punctuation marks kept inside English units and
// stripped from their edges.
const retainedPunct = `'".!?-:;`

// Extractor extracts vocabulary words from text using a Chinese segmenter
// for ideograph runs. It is stateless apart from the segmenter and safe to
// reuse across calls.
type Extractor struct {
	seg segment.Segmenter
}

// NewExtractor returns an Extractor backed by seg.
func NewExtractor(seg segment.Segmenter) *Extractor {
	return &Extractor{seg: seg}
}

// Extract splits text on whitespace and resolves each token into zero or
// more vocabulary words, in input order:
//
//   - a token mixing Chinese and Latin-eligible runes is split by script
//     class; the Chinese part is segmented, the Latin part lower-cased and
//     kept whole;
//   - a pure Chinese token is segmented;
//   - a pure Latin token is trimmed of edge punctuation and lower-cased;
//   - a token with neither class yields nothing.
//
// The result has already passed Filter. Extract is pure: identical input
// yields identical output.
func (e *Extractor) Extract(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var units []string
	for _, token := range strings.Fields(text) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		units = e.appendTokenUnits(units, token)
	}

	return Filter(units)
}

func (e *Extractor) appendTokenUnits(units []string, token string) []string {
	hasChinese := false
	hasLatin := false
	for _, r := range token {
		switch script.Classify(r) {
		case script.Chinese:
			hasChinese = true
		case script.LatinEligible:
			hasLatin = true
		}
	}

	switch {
	case hasChinese && hasLatin:
		// Mixed token: split by script class, preserving rune order
		// within each part.
		var chinese, latin strings.Builder
		for _, r := range token {
			switch script.Classify(r) {
			case script.Chinese:
				chinese.WriteRune(r)
			case script.LatinEligible:
				latin.WriteRune(r)
			}
		}
		units = e.appendSegments(units, chinese.String())
		if latin.Len() > 0 {
			units = append(units, strings.ToLower(latin.String()))
		}
	case hasChinese:
		units = e.appendSegments(units, token)
	case hasLatin:
		cleaned := strings.ToLower(strings.Trim(token, retainedPunct))
		if utf8.RuneCountInString(cleaned) >= minWordLength {
			units = append(units, cleaned)
		}
	}
	// Neither class: the token is dropped.

	return units
}

// appendSegments segments a Chinese run and appends the segments that meet
// the minimum length, in segmenter order.
func (e *Extractor) appendSegments(units []string, text string) []string {
	if text == "" {
		return units
	}
	for _, seg := range e.seg.Segment(text) {
		if utf8.RuneCountInString(seg) >= minWordLength {
			units = append(units, seg)
		}
	}
	return units
}
