package conform

import (
	"log/slog"

	"github.com/google/uuid"
)

// EventKind classifies a constraint evaluation outcome.
type EventKind int

const (
	// EventSatisfied marks a predicate that accepted its input.
	EventSatisfied EventKind = iota + 1
	// EventViolated marks a predicate that rejected its input.
	EventViolated
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventSatisfied:
		return "satisfied"
	case EventViolated:
		return "violated"
	default:
		return "unknown"
	}
}

// Event reports one constraint evaluation. Message is set only for
// violations.
type Event struct {
	Kind         EventKind
	Run          uuid.UUID
	ConstraintID string
	Path         string
	Message      *Message
}

// EventFunc receives evaluation events during a run. Implementations must
// not retain the Message pointer beyond the call.
type EventFunc func(Event)

// SlogEvents adapts a structured logger into an event sink. Satisfied
// constraints log at debug level, violations at info. A nil logger yields
// a nil sink.
func SlogEvents(log *slog.Logger) EventFunc {
	if log == nil {
		return nil
	}

	return func(e Event) {
		attrs := []any{
			slog.String("run_id", e.Run.String()),
			slog.String("constraint_id", e.ConstraintID),
			slog.String("path", e.Path),
		}
		switch e.Kind {
		case EventViolated:
			if e.Message != nil {
				attrs = append(attrs, slog.String("message", e.Message.Text))
			}
			log.Info("constraint violated", attrs...)
		default:
			log.Debug("constraint satisfied", attrs...)
		}
	}
}

// recorder routes events to the configured sink. Branch recorders buffer
// until the run decides whether the branch's work counts, so sinks never
// see events from a discarded alternative. All methods are nil-safe.
type recorder struct {
	fn       EventFunc
	parent   *recorder
	buf      []Event
	buffered bool
}

func (r *recorder) emit(e Event) {
	if r == nil {
		return
	}
	if r.buffered {
		r.buf = append(r.buf, e)
		return
	}
	r.deliver(e)
}

func (r *recorder) deliver(e Event) {
	if r.parent != nil {
		r.parent.emit(e)
		return
	}
	if r.fn != nil {
		r.fn(e)
	}
}

// flush releases buffered events to the enclosing recorder.
func (r *recorder) flush() {
	if r == nil {
		return
	}
	for _, e := range r.buf {
		r.deliver(e)
	}
	r.buf = nil
}

// discard drops buffered events without delivery.
func (r *recorder) discard() {
	if r == nil {
		return
	}
	r.buf = nil
}
