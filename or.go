package conform

// Alt is an alternation started by Or and completed by OrElse.
type Alt struct {
	s     *Scope
	first func(*Scope)
}

// Or begins a two-way alternation at the current location. Nothing runs
// until OrElse supplies the second alternative.
func (s *Scope) Or(first func(*Scope)) *Alt {
	return &Alt{s: s, first: first}
}

// OrElse completes the alternation and decides the outcome:
//
//   - the first alternative succeeds: the second never runs;
//   - the first fails and the second succeeds: the first's messages are
//     discarded and the location counts as satisfied;
//   - both fail: a single composite message is recorded, carrying both
//     alternatives' messages as descendants, the first's before the
//     second's.
func (a *Alt) OrElse(second func(*Scope)) {
	s := a.s

	firstMsgs, firstRec := s.attempt(a.first)
	if len(firstMsgs) == 0 {
		firstRec.flush()
		return
	}

	secondMsgs, secondRec := s.attempt(second)
	if len(secondMsgs) == 0 {
		firstRec.discard()
		secondRec.flush()
		return
	}

	firstRec.flush()
	secondRec.flush()

	qid := s.qualify("or")
	m := Message{
		ConstraintID: qid,
		Text:         "no alternative satisfied",
		Root:         s.ses.root,
		Path:         s.Path(),
		Descendants:  append(append(make([]Message, 0, len(firstMsgs)+len(secondMsgs)), firstMsgs...), secondMsgs...),
	}
	s.rec.emit(Event{Kind: EventViolated, Run: s.ses.run, ConstraintID: qid, Path: m.Path, Message: &m})
	s.sink.accumulate(m)
}

// attempt runs one alternative in its own region. Its events are buffered
// so they can be dropped when a later alternative supersedes it, unless
// the run opted into receiving discarded-branch events.
func (s *Scope) attempt(fn func(*Scope)) ([]Message, *recorder) {
	if s.rec == nil || s.ses.cfg.discardedBranchEvents {
		return s.recoverable(fn), s.rec
	}

	branch := &recorder{parent: s.rec, buffered: true}
	child := *s
	child.rec = branch
	return child.recoverable(fn), branch
}
