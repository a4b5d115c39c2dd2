package rules

import (
	"fmt"

	"github.com/dmitrymomot/conform"
)

// Numeric covers the built-in number types accepted by the numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min rejects values below min.
func Min[T Numeric](value, min T) conform.Constraint {
	return conform.Constraint{
		ID:    "number.min",
		Input: value,
		Args:  []any{min},
		Test: func() bool {
			return value >= min
		},
		Text: func() string {
			return fmt.Sprintf("must be at least %v", min)
		},
	}
}

// Max rejects values above max.
func Max[T Numeric](value, max T) conform.Constraint {
	return conform.Constraint{
		ID:    "number.max",
		Input: value,
		Args:  []any{max},
		Test: func() bool {
			return value <= max
		},
		Text: func() string {
			return fmt.Sprintf("must be at most %v", max)
		},
	}
}

// Between rejects values outside the inclusive range [lo, hi].
func Between[T Numeric](value, lo, hi T) conform.Constraint {
	return conform.Constraint{
		ID:    "number.between",
		Input: value,
		Args:  []any{lo, hi},
		Test: func() bool {
			return value >= lo && value <= hi
		},
		Text: func() string {
			return fmt.Sprintf("must be between %v and %v", lo, hi)
		},
	}
}

// Positive rejects zero and negative values.
func Positive[T Numeric](value T) conform.Constraint {
	return conform.Constraint{
		ID:    "number.positive",
		Input: value,
		Test: func() bool {
			return value > 0
		},
		Text: func() string {
			return "must be positive"
		},
	}
}
