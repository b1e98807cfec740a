// Package script classifies runes into the script classes the vocabulary
// extractor cares about: CJK Unified Ideographs, Latin-eligible characters
// (alphanumerics plus a small punctuation set), and everything else.
package script

import "unicode"

// Class is the script class of a single rune.
type Class int

const (
	// Other covers whitespace, emoji, CJK punctuation and anything else
	// that never enters vocabulary.
	Other Class = iota
	// Chinese is a code point in the CJK Unified Ideographs block.
	Chinese
	// LatinEligible is an alphanumeric rune or one of the retained
	// punctuation marks '".!?-:;
	LatinEligible
)

// Classify returns the script class of r. The Chinese check takes
// precedence: a CJK ideograph is never LatinEligible even though it
// passes the Unicode alphanumeric test.
func Classify(r rune) Class {
	if IsChinese(r) {
		return Chinese
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) || IsRetainedPunct(r) {
		return LatinEligible
	}
	return Other
}

// IsChinese reports whether r is in the CJK Unified Ideographs block
// (U+4E00 through U+9FFF inclusive).
func IsChinese(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// IsRetainedPunct reports whether r is one of the punctuation marks kept
// inside English vocabulary units.
func IsRetainedPunct(r rune) bool {
	switch r {
	case '\'', '"', '.', '!', '?', '-', ':', ';':
		return true
	}
	return false
}
