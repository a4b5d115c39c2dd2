package conform

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scope is a location within a validation run: the path walked so far, the
// region collecting messages, and the shared run state. Scopes are created
// by Run and handed to callbacks; descending returns a new scope and never
// mutates the parent.
type Scope struct {
	ses      *session
	path     *pathNode
	sink     *sink
	rec      *recorder
	idPrefix string
}

// Root returns the run's root type name, fixed by the first schema.
func (s *Scope) Root() string {
	return s.ses.root
}

// Path renders the dotted path of the current location.
func (s *Scope) Path() string {
	return s.path.fullName()
}

// RunID returns the identifier correlating all events of this run.
func (s *Scope) RunID() uuid.UUID {
	return s.ses.run
}

// Clock returns the run's time source.
func (s *Scope) Clock() Clock {
	return s.ses.cfg.clock
}

// Now returns the current instant per the run's clock.
func (s *Scope) Now() time.Time {
	return s.ses.cfg.clock.Now()
}

// at descends one path segment. ok is false when the subject's identity
// already appears on the path, meaning the traversal would cycle.
func (s *Scope) at(segment string, subject any) (*Scope, bool) {
	node := s.path.extend(segment, subject)
	if node == nil {
		return nil, false
	}
	child := *s
	child.path = node
	return &child, true
}

// recoverable runs fn against a fresh message region and returns whatever
// it accumulated. An abort owned by the region is absorbed here; aborts
// belonging to enclosing regions keep unwinding.
func (s *Scope) recoverable(fn func(*Scope)) (msgs []Message) {
	child := *s
	child.sink = &sink{
		token:    s.ses.mintToken(),
		failFast: s.ses.cfg.failFast,
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		sig, ok := r.(abortSignal)
		if !ok || sig.token != child.sink.token {
			panic(r)
		}
		msgs = child.sink.buf
	}()

	fn(&child)
	return child.sink.buf
}

// merge lifts a finished region's messages into the current one. Under
// fail-fast a non-empty merge stops the current region as well.
func (s *Scope) merge(msgs []Message) {
	s.sink.accumulate(msgs...)
}

// qualify applies the enclosing Constrain prefixes to a constraint id.
func (s *Scope) qualify(id string) string {
	if s.idPrefix == "" {
		return id
	}
	if id == "" {
		return s.idPrefix
	}
	return s.idPrefix + "." + id
}

// Check evaluates constraints in declaration order against the current
// location. Under fail-fast the first violation stops the run; otherwise
// every violation is recorded and evaluation continues.
func (s *Scope) Check(cs ...Constraint) {
	for _, c := range cs {
		s.evaluate(c)
	}
}

func (s *Scope) evaluate(c Constraint) {
	if c.Test == nil {
		panic(fmt.Sprintf("conform: constraint %q has no Test predicate", c.ID))
	}

	id := s.qualify(c.ID)
	if c.Test() {
		s.rec.emit(Event{Kind: EventSatisfied, Run: s.ses.run, ConstraintID: id, Path: s.Path()})
		return
	}

	m := Message{
		ConstraintID: id,
		Root:         s.ses.root,
		Path:         s.Path(),
		Input:        c.Input,
		Args:         c.Args,
	}
	if c.Text != nil {
		m.Text = c.Text()
	}
	s.rec.emit(Event{Kind: EventViolated, Run: s.ses.run, ConstraintID: id, Path: m.Path, Message: &m})
	s.sink.accumulate(m)
}

// Field descends into a named member carrying the given subject and runs
// fn there. When the subject is a reference already being traversed on
// this path, fn is skipped entirely and nothing is recorded.
func (s *Scope) Field(name string, subject any, fn func(*Scope)) {
	child, ok := s.at(name, subject)
	if !ok {
		return
	}
	fn(child)
}

// Named descends into a named member that carries no referential identity.
func (s *Scope) Named(name string, fn func(*Scope)) {
	s.Field(name, nil, fn)
}

// Schema opens a validation block for a named type. The first schema of a
// run fixes the root name reported by every message; nested schemas keep
// the original. The block is recoverable, so under fail-fast its stop
// propagates to the enclosing region after the merge.
func (s *Scope) Schema(typeName string, fn func(*Scope)) {
	s.ses.setRoot(typeName)
	s.merge(s.recoverable(fn))
}

// Constrain groups constraints under an identifier prefix: ids recorded
// inside fn take the form "prefix.leaf". The block is recoverable.
func (s *Scope) Constrain(id string, fn func(*Scope)) {
	child := *s
	child.idPrefix = s.qualify(id)
	s.merge(child.recoverable(fn))
}

// Capture descends into a named member, runs fn in its own region, merges
// whatever it recorded, and reports whether the region stayed clean.
// Factories use the report to decide whether a produced part is usable.
func (s *Scope) Capture(name string, fn func(*Scope)) bool {
	child, _ := s.at(name, nil)
	msgs := child.recoverable(fn)
	s.merge(msgs)
	return len(msgs) == 0
}

// Summarize runs fn in its own region and collapses everything it
// recorded into a single composite message, with the inner messages as
// descendants in recorded order.
func (s *Scope) Summarize(id, text string, fn func(*Scope)) {
	msgs := s.recoverable(fn)
	if len(msgs) == 0 {
		return
	}

	qid := s.qualify(id)
	m := Message{
		ConstraintID: qid,
		Text:         text,
		Root:         s.ses.root,
		Path:         s.Path(),
		Descendants:  msgs,
	}
	s.rec.emit(Event{Kind: EventViolated, Run: s.ses.run, ConstraintID: qid, Path: m.Path, Message: &m})
	s.sink.accumulate(m)
}
