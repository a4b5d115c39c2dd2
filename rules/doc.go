// Package rules provides ready-made constraints for common data shapes:
// strings, numbers, comparable values, collections, instants, and string
// formats such as email addresses, URLs, and UUIDs.
//
// Every rule constructs a conform.Constraint closed over its input, with
// the message text built lazily on failure. Rules hold no state and are
// safe for concurrent use; evaluation happens only when a Scope checks
// them, so building a rule is free of side effects.
//
// Temporal rules take the reference instant as an argument instead of
// reading the wall clock, which keeps them deterministic:
//
//	s.Check(rules.Past(createdAt, s.Now()))
//
// Constraint identifiers are dotted and stable ("string.not_blank",
// "number.min", "format.email"), so callers can match on them across
// releases and translate messages downstream.
package rules
