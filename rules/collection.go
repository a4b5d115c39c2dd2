package rules

import (
	"fmt"

	"github.com/dmitrymomot/conform"
)

// NotEmpty rejects sequences with no elements.
func NotEmpty[E any](items []E) conform.Constraint {
	return conform.Constraint{
		ID:    "collection.not_empty",
		Input: items,
		Test: func() bool {
			return len(items) > 0
		},
		Text: func() string {
			return "must not be empty"
		},
	}
}

// NotEmptyMap rejects maps with no entries.
func NotEmptyMap[K comparable, V any](m map[K]V) conform.Constraint {
	return conform.Constraint{
		ID:    "collection.not_empty",
		Input: m,
		Test: func() bool {
			return len(m) > 0
		},
		Text: func() string {
			return "must not be empty"
		},
	}
}

// MinItems rejects sequences with fewer than min elements.
func MinItems[E any](items []E, min int) conform.Constraint {
	return conform.Constraint{
		ID:    "collection.min_items",
		Input: items,
		Args:  []any{min},
		Test: func() bool {
			return len(items) >= min
		},
		Text: func() string {
			return fmt.Sprintf("must contain at least %d items", min)
		},
	}
}

// MaxItems rejects sequences with more than max elements.
func MaxItems[E any](items []E, max int) conform.Constraint {
	return conform.Constraint{
		ID:    "collection.max_items",
		Input: items,
		Args:  []any{max},
		Test: func() bool {
			return len(items) <= max
		},
		Text: func() string {
			return fmt.Sprintf("must contain at most %d items", max)
		},
	}
}

// Unique rejects sequences containing the same element twice.
func Unique[E comparable](items []E) conform.Constraint {
	return conform.Constraint{
		ID:    "collection.unique",
		Input: items,
		Test: func() bool {
			seen := make(map[E]bool, len(items))
			for _, e := range items {
				if seen[e] {
					return false
				}
				seen[e] = true
			}
			return true
		},
		Text: func() string {
			return "must not contain duplicates"
		},
	}
}
