package conform

// Constraint couples a predicate with the metadata needed to describe its
// failure. Predicates close over the value under test, so the engine can run
// them without knowing anything about concrete data types. The message text
// is built lazily: Text runs at most once, and only after Test rejected.
//
// Constraints are supplied by callers; the rules package ships a stock set.
type Constraint struct {
	// ID names the constraint, e.g. "string.min_length". An enclosing
	// Constrain block prefixes it on recorded messages.
	ID string

	// Args holds the constraint's positional arguments, recorded on the
	// failure message for formatters downstream.
	Args []any

	// Input is the value under test, recorded on the failure message.
	Input any

	// Test reports whether the constraint holds. Required; a nil Test is a
	// programming error and panics.
	Test func() bool

	// Text builds the failure description. Optional; a missing Text yields
	// an empty message text.
	Text func() string
}
