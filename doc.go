// Package conform is an execution engine for declarative validation: it
// walks a value, evaluates constraints at named locations, and collects the
// failures into structured messages that say which constraint rejected,
// where in the object graph, and with what input.
//
// Validation logic is written as plain Go closures receiving a Scope. The
// scope tracks the dotted path walked so far, detects reference cycles so
// self-referential values terminate, and owns the region collecting
// messages. Runs either gather every failure or, with WithFailFast, stop at
// the first one; the same validation code serves both modes unchanged.
//
// # Architecture
//
// One Run owns a session (configuration, run id, root type name) and a tree
// of scopes. Descending into a field copies the scope with an extended
// path, so sibling validations never observe each other's positions. Every
// composite block (Schema, Constrain, Capture, Summarize, the Or/OrElse
// alternation) opens a recoverable region: messages recorded inside are
// merged into the enclosing region when the block finishes, and a
// fail-fast stop raised inside is absorbed at the region boundary before
// propagating outward.
//
// Core building blocks:
//   - Constraint: a predicate closed over its input, plus message metadata
//   - Scope: a location in the traversal; evaluates and descends
//   - Message: one recorded failure, possibly with nested descendants
//   - Result: the outcome of Validate, a value or its messages
//   - Violations: messages as a single error value
//
// # Usage
//
//	result := conform.Validate("User", u, func(s *conform.Scope) {
//	    s.Named("name", func(s *conform.Scope) {
//	        s.Check(rules.NotBlank(u.Name), rules.MaxLength(u.Name, 64))
//	    })
//	    s.Named("age", func(s *conform.Scope) {
//	        s.Check(rules.Min(u.Age, 0))
//	    })
//	})
//	if !result.Ok() {
//	    for _, m := range result.Messages() {
//	        // m.Path is "name" or "age", m.Text explains the failure
//	    }
//	}
//
// Sequences and maps are traversed with Each and Entries, which give every
// element its own indexed path segment. Alternatives are expressed with
// Or/OrElse: the second branch runs only when the first fails, and only a
// decided outcome contributes messages.
//
// # Error Handling
//
// Result.Err returns the messages as a Violations value satisfying the
// error interface. Violations supports errors.Is against
// ErrValidationFailed and errors.As extraction via ExtractViolations, so
// callers can branch on validation failures without losing the structured
// messages.
//
// # Observability
//
// WithEvents registers a sink receiving one event per evaluated
// constraint, satisfied or violated, correlated by run id. WithLogger
// adapts a *slog.Logger into such a sink. Alternatives buffer their events
// until the alternation is decided, so sinks never see work from a branch
// that a later branch superseded.
//
// # Deferred Construction
//
// The companion construct package builds values from validated parts: it
// queues named bindings, runs them all so every failure is reported, and
// calls the constructor only when each part passed.
package conform
