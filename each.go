package conform

import (
	"slices"
	"strings"
)

// Each validates every element of a sequence at its own indexed path, in
// element order. An element whose identity already appears on the path is
// skipped without a message.
func Each[E any](s *Scope, items []E, fn func(i int, e E, es *Scope)) {
	for i, e := range items {
		child, ok := s.at(elementSegment(i), e)
		if !ok {
			continue
		}
		fn(i, e, child)
	}
}

// Entries validates every value of a map at its own keyed path. Entries
// are visited in rendered-key order, making message order deterministic
// across runs. A value whose identity already appears on the path is
// skipped without a message.
func Entries[K comparable, V any](s *Scope, m map[K]V, fn func(k K, v V, es *Scope)) {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		return strings.Compare(entrySegment(a), entrySegment(b))
	})

	for _, k := range keys {
		child, ok := s.at(entrySegment(k), m[k])
		if !ok {
			continue
		}
		fn(k, m[k], child)
	}
}
