package rules

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/conform"
)

// Past rejects instants not strictly before now. Pass the scope's clock
// reading as now to keep the rule deterministic under test.
func Past(value, now time.Time) conform.Constraint {
	return conform.Constraint{
		ID:    "time.past",
		Input: value,
		Test: func() bool {
			return value.Before(now)
		},
		Text: func() string {
			return "must be in the past"
		},
	}
}

// Future rejects instants not strictly after now.
func Future(value, now time.Time) conform.Constraint {
	return conform.Constraint{
		ID:    "time.future",
		Input: value,
		Test: func() bool {
			return value.After(now)
		},
		Text: func() string {
			return "must be in the future"
		},
	}
}

// Before rejects instants at or after the limit.
func Before(value, limit time.Time) conform.Constraint {
	return conform.Constraint{
		ID:    "time.before",
		Input: value,
		Args:  []any{limit},
		Test: func() bool {
			return value.Before(limit)
		},
		Text: func() string {
			return fmt.Sprintf("must be before %s", limit.Format(time.RFC3339))
		},
	}
}

// After rejects instants at or before the limit.
func After(value, limit time.Time) conform.Constraint {
	return conform.Constraint{
		ID:    "time.after",
		Input: value,
		Args:  []any{limit},
		Test: func() bool {
			return value.After(limit)
		},
		Text: func() string {
			return fmt.Sprintf("must be after %s", limit.Format(time.RFC3339))
		},
	}
}

// BetweenTimes rejects instants outside the inclusive range [lo, hi].
func BetweenTimes(value, lo, hi time.Time) conform.Constraint {
	return conform.Constraint{
		ID:    "time.between",
		Input: value,
		Args:  []any{lo, hi},
		Test: func() bool {
			return !value.Before(lo) && !value.After(hi)
		},
		Text: func() string {
			return fmt.Sprintf("must be between %s and %s", lo.Format(time.RFC3339), hi.Format(time.RFC3339))
		},
	}
}
