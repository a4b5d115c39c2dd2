package conform

// Result is the outcome of validating a value: either the value itself, or
// the ordered messages explaining why it was rejected. A result carrying any
// message never exposes the value, even when one was produced along the way.
type Result[T any] struct {
	value    T
	ok       bool
	messages Violations
}

// Success wraps a value that passed every constraint.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure builds a rejected result from the given messages. The carried
// value is always the zero value of T.
func Failure[T any](messages ...Message) Result[T] {
	return Result[T]{messages: Violations(messages)}
}

// Ok reports whether the validated value passed.
func (r Result[T]) Ok() bool {
	return r.ok
}

// Value returns the validated value. For a failed result it returns the
// zero value of T; check Ok before use.
func (r Result[T]) Value() T {
	return r.value
}

// Messages returns the recorded failures in the order they were produced.
// It is empty for a successful result.
func (r Result[T]) Messages() []Message {
	return r.messages
}

// Err returns nil for a successful result, or the messages as a single
// error value compatible with errors.Is(err, ErrValidationFailed) and
// ExtractViolations.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return r.messages
}
