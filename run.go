package conform

// Run executes body against subject and returns every message it recorded,
// in recording order. name becomes the run's root type name unless a
// schema already claimed it, and subject's identity seeds cycle detection
// for the whole traversal. An empty return means subject passed.
func Run(name string, subject any, body func(*Scope), opts ...Option) []Message {
	ses := newSession(opts)
	ses.setRoot(name)

	root := &Scope{
		ses:  ses,
		path: &pathNode{subject: identityOf(subject)},
	}
	if ses.cfg.events != nil {
		root.rec = &recorder{fn: ses.cfg.events}
	}
	return root.recoverable(body)
}

// Validate runs body against v and folds the outcome into a Result: the
// value when nothing was recorded, the messages otherwise. A body that
// records messages never yields the value, even when it computed one.
func Validate[T any](name string, v T, body func(*Scope), opts ...Option) Result[T] {
	msgs := Run(name, v, body, opts...)
	if len(msgs) > 0 {
		return Failure[T](msgs...)
	}
	return Success(v)
}
