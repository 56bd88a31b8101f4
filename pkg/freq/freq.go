// Package freq implements the word-frequency accumulator the classifier is
// trained on: a mapping from canonical word segments to occurrence counts,
// built from raw text and combined additively across training documents.
package freq

import "fmt"

// Map accumulates occurrence counts per canonical word. Keys are uppercase
// UAX #29 word segments; a key is either absent or has a strictly positive
// count. Maps are built from text, then merged; Merge consumes its argument,
// so a Map has exactly one owner at any time and no locking is needed.
type Map struct {
	counts map[string]int64
	total  int64
}

// New returns an empty frequency map. It is the identity element for Merge.
func New() *Map {
	return &Map{counts: make(map[string]int64)}
}

// FromText builds a frequency map from a single text blob.
func FromText(text string) *Map {
	m := New()
	for _, token := range Tokenize(text) {
		m.counts[token]++
		m.total++
	}
	return m
}

// FromCounts reconstructs a frequency map from raw word counts, typically
// read back from a persisted model. Counts that violate the map invariants
// are rejected rather than silently repaired.
func FromCounts(counts map[string]int64) (*Map, error) {
	m := New()
	for word, count := range counts {
		if word == "" {
			return nil, fmt.Errorf("empty word key")
		}
		if count < 1 {
			return nil, fmt.Errorf("non-positive count %d for word %q", count, word)
		}
		m.counts[word] = count
		m.total += count
	}
	return m, nil
}

// Merge folds other into m and returns m. Counts of words present in both
// maps add up. The operation is commutative and associative with New() as
// identity, so per-document maps may be combined in any order, sequentially
// or pairwise in parallel, with identical results. other is consumed and
// must not be used afterwards.
func (m *Map) Merge(other *Map) *Map {
	if other == nil {
		return m
	}
	for word, count := range other.counts {
		m.counts[word] += count
	}
	m.total += other.total
	return m
}

// TotalCount returns the sum of all counts; zero for an empty map.
func (m *Map) TotalCount() int64 {
	return m.total
}

// Len returns the number of distinct words in the map.
func (m *Map) Len() int {
	return len(m.counts)
}

// Count returns the stored count for a canonical key, zero when absent.
func (m *Map) Count(word string) int64 {
	return m.counts[word]
}

// WordFrequency returns the relative frequency of a single word in the map,
// always within [0,1]. The second result is false when the input is not
// exactly one word segment, the word is unknown, or the map is empty; the
// caller is expected to skip the word, not treat it as zero. The input is
// canonicalized with the same rules used during construction.
func (m *Map) WordFrequency(word string) (float64, bool) {
	tokens := Tokenize(word)
	if len(tokens) != 1 {
		return 0, false
	}

	count, ok := m.counts[tokens[0]]
	if !ok || m.total == 0 {
		return 0, false
	}
	return float64(count) / float64(m.total), true
}

// Counts returns a copy of the word counts, e.g. for persistence. The copy
// is never nil.
func (m *Map) Counts() map[string]int64 {
	counts := make(map[string]int64, len(m.counts))
	for word, count := range m.counts {
		counts[word] = count
	}
	return counts
}

// Each calls fn for every word/count pair in unspecified order.
func (m *Map) Each(fn func(word string, count int64)) {
	for word, count := range m.counts {
		fn(word, count)
	}
}
