package rules

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/conform"
)

// NotZero rejects the zero value of T.
func NotZero[T comparable](value T) conform.Constraint {
	return conform.Constraint{
		ID:    "value.not_zero",
		Input: value,
		Test: func() bool {
			var zero T
			return value != zero
		},
		Text: func() string {
			return "must be set"
		},
	}
}

// Equal rejects values different from want.
func Equal[T comparable](value, want T) conform.Constraint {
	return conform.Constraint{
		ID:    "value.equal",
		Input: value,
		Args:  []any{want},
		Test: func() bool {
			return value == want
		},
		Text: func() string {
			return fmt.Sprintf("must equal %v", want)
		},
	}
}

// OneOf rejects values outside the allowed set.
func OneOf[T comparable](value T, allowed ...T) conform.Constraint {
	args := make([]any, len(allowed))
	for i, a := range allowed {
		args[i] = a
	}
	return conform.Constraint{
		ID:    "choice.one_of",
		Input: value,
		Args:  args,
		Test: func() bool {
			return slices.Contains(allowed, value)
		},
		Text: func() string {
			return fmt.Sprintf("must be one of %v", allowed)
		},
	}
}

// NoneOf rejects values inside the forbidden set.
func NoneOf[T comparable](value T, forbidden ...T) conform.Constraint {
	args := make([]any, len(forbidden))
	for i, f := range forbidden {
		args[i] = f
	}
	return conform.Constraint{
		ID:    "choice.none_of",
		Input: value,
		Args:  args,
		Test: func() bool {
			return !slices.Contains(forbidden, value)
		},
		Text: func() string {
			return fmt.Sprintf("must not be one of %v", forbidden)
		},
	}
}
