package conform

import (
	"errors"
	"fmt"
	"strings"
)

// Message describes a single recorded failure: which constraint rejected,
// where in the object graph, what input it saw, and any nested sub-failures
// a composite operator collected under it.
type Message struct {
	// ConstraintID identifies the violated constraint, including any prefix
	// added by an enclosing Constrain block.
	ConstraintID string

	// Text is the human-readable description, built lazily on failure.
	Text string

	// Root is the type name set by the first top-level scope of the run.
	Root string

	// Path is the dotted location of the failure within the validated value,
	// e.g. "fullName.first" or "tags.[0]<iterable element>".
	Path string

	// Input is the value the predicate rejected.
	Input any

	// Args holds the constraint's positional arguments, if any.
	Args []any

	// Descendants holds sub-messages when a composite operator summarized
	// multiple inner failures under this one message.
	Descendants []Message
}

// Violations is an ordered list of failure messages satisfying the error
// interface, so a whole run's outcome travels as one error value.
type Violations []Message

// Error implements the error interface.
func (v Violations) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(v))
	for _, m := range v {
		if m.Path == "" {
			parts = append(parts, m.Text)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", m.Path, m.Text))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports true for ErrValidationFailed, making every Violations value
// detectable through errors.Is without unwrapping.
func (v Violations) Is(target error) bool {
	return target == ErrValidationFailed
}

// Has reports whether any message was recorded at the given path.
func (v Violations) Has(path string) bool {
	for _, m := range v {
		if m.Path == path {
			return true
		}
	}
	return false
}

// Get returns the texts of all messages recorded at the given path.
func (v Violations) Get(path string) []string {
	var texts []string
	for _, m := range v {
		if m.Path == path {
			texts = append(texts, m.Text)
		}
	}
	return texts
}

// Paths returns the distinct message paths in first-recorded order.
func (v Violations) Paths() []string {
	var paths []string
	seen := make(map[string]bool, len(v))
	for _, m := range v {
		if !seen[m.Path] {
			paths = append(paths, m.Path)
			seen[m.Path] = true
		}
	}
	return paths
}

// IsEmpty reports whether no failures were recorded.
func (v Violations) IsEmpty() bool {
	return len(v) == 0
}

// ExtractViolations unwraps a Violations value from err, or returns nil when
// err carries no validation messages.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var v Violations
	if errors.As(err, &v) {
		return v
	}
	return nil
}

// IsViolation reports whether err carries validation messages.
func IsViolation(err error) bool {
	if err == nil {
		return false
	}

	var v Violations
	return errors.As(err, &v)
}
