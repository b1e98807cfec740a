package vocab

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/example/lyricfreq/internal/script"
)

// englishWord matches units built entirely from ASCII alphanumerics and the
// retained punctuation marks.
var englishWord = regexp.MustCompile(`^[a-zA-Z0-9'".!?\-:;]+$`)

// Filter applies the acceptance rules to candidate vocabulary units and
// returns the surviving words in order. A unit survives when, after
// whitespace trimming, it is at least two runes long and either fully
// matches the English word pattern or starts with a Chinese rune. Anything
// else (unexpected segmenter output included) is rejected.
func Filter(units []string) []string {
	words := make([]string, 0, len(units))
	for _, unit := range units {
		unit = strings.TrimSpace(unit)
		if utf8.RuneCountInString(unit) < minWordLength {
			continue
		}
		if englishWord.MatchString(unit) || startsWithChinese(unit) {
			words = append(words, unit)
		}
	}
	return words
}

func startsWithChinese(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return script.IsChinese(r)
}
