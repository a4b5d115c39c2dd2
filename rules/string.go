package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/conform"
)

// NotBlank rejects strings that are empty after trimming whitespace.
func NotBlank(value string) conform.Constraint {
	return conform.Constraint{
		ID:    "string.not_blank",
		Input: value,
		Test: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Text: func() string {
			return "must not be blank"
		},
	}
}

// MinLength rejects strings shorter than min bytes.
func MinLength(value string, min int) conform.Constraint {
	return conform.Constraint{
		ID:    "string.min_length",
		Input: value,
		Args:  []any{min},
		Test: func() bool {
			return len(value) >= min
		},
		Text: func() string {
			return fmt.Sprintf("must be at least %d characters long", min)
		},
	}
}

// MaxLength rejects strings longer than max bytes.
func MaxLength(value string, max int) conform.Constraint {
	return conform.Constraint{
		ID:    "string.max_length",
		Input: value,
		Args:  []any{max},
		Test: func() bool {
			return len(value) <= max
		},
		Text: func() string {
			return fmt.Sprintf("must be at most %d characters long", max)
		},
	}
}

// ExactLength rejects strings whose byte length differs from exact.
func ExactLength(value string, exact int) conform.Constraint {
	return conform.Constraint{
		ID:    "string.exact_length",
		Input: value,
		Args:  []any{exact},
		Test: func() bool {
			return len(value) == exact
		},
		Text: func() string {
			return fmt.Sprintf("must be exactly %d characters long", exact)
		},
	}
}

// Pattern rejects strings not matching the given expression. Compile the
// expression once and reuse it across rule constructions.
func Pattern(value string, re *regexp.Regexp) conform.Constraint {
	return conform.Constraint{
		ID:    "string.pattern",
		Input: value,
		Args:  []any{re.String()},
		Test: func() bool {
			return re.MatchString(value)
		},
		Text: func() string {
			return fmt.Sprintf("must match pattern %s", re.String())
		},
	}
}

// HasPrefix rejects strings not starting with the given prefix.
func HasPrefix(value, prefix string) conform.Constraint {
	return conform.Constraint{
		ID:    "string.has_prefix",
		Input: value,
		Args:  []any{prefix},
		Test: func() bool {
			return strings.HasPrefix(value, prefix)
		},
		Text: func() string {
			return fmt.Sprintf("must start with %q", prefix)
		},
	}
}
