package segment

import (
	"fmt"

	"github.com/go-ego/gse"
)

// GSESegmenter segments Chinese text using the gse dictionary/HMM model.
type GSESegmenter struct {
	seg gse.Segmenter
}

// NewGSESegmenter loads the embedded simplified-Chinese dictionary and
// returns a ready segmenter. Loading the dictionary is the expensive step;
// construct once per process and reuse.
func NewGSESegmenter() (*GSESegmenter, error) {
	s := &GSESegmenter{}
	s.seg.AlphaNum = true
	if err := s.seg.LoadDictEmbed("zh"); err != nil {
		return nil, fmt.Errorf("load zh dictionary: %w", err)
	}
	return s, nil
}

// Segment splits text into words using HMM-assisted cut, the closest
// equivalent of jieba's default mode.
func (s *GSESegmenter) Segment(text string) []string {
	return s.seg.Cut(text, true)
}
