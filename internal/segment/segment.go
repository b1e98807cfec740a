// Package segment provides Chinese word segmentation for the vocabulary
// extractor. The production implementation wraps the gse segmenter; callers
// depend only on the Segmenter interface so tests can substitute a
// deterministic fake.
package segment

// Segmenter splits a run of unsegmented Chinese text into words.
type Segmenter interface {
	// Segment returns the word segments of text in order of appearance.
	Segment(text string) []string
}
