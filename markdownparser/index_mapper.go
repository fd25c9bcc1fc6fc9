package markdownparser

import "sort"

// lineIndex maps byte offsets of a document to zero-based line numbers
type lineIndex struct {
	starts []int
}

func newLineIndex(content []byte) *lineIndex {
	starts := []int{0}

	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}

	return &lineIndex{starts: starts}
}

func (m *lineIndex) lineOf(offset int) int {
	if offset <= 0 {
		return 0
	}

	// first line starting after offset; the one before it holds offset
	return sort.Search(len(m.starts), func(i int) bool {
		return m.starts[i] > offset
	}) - 1
}
