package analyzer

import "sort"

// counter is a frequency table that remembers first-occurrence order so
// equal counts rank deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(word string) {
	if _, seen := c.counts[word]; !seen {
		c.order = append(c.order, word)
	}
	c.counts[word]++
}

func (c *counter) total() int {
	sum := 0
	for _, n := range c.counts {
		sum += n
	}
	return sum
}

// topN returns the n most frequent words. Ties keep first-seen order; the
// stable sort over the insertion-order slice guarantees it.
func (c *counter) topN(n int) []WordCount {
	ranked := make([]WordCount, 0, len(c.order))
	for _, w := range c.order {
		ranked = append(ranked, WordCount{Word: w, Frequency: c.counts[w]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Frequency > ranked[j].Frequency
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
