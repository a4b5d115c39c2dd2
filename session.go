package conform

import "github.com/google/uuid"

// session is the state shared by every scope of one validation run.
type session struct {
	cfg       settings
	run       uuid.UUID
	root      string
	rootSet   bool
	nextToken uint64
}

func newSession(opts []Option) *session {
	return &session{
		cfg: newSettings(opts),
		run: uuid.New(),
	}
}

// setRoot records the run's root type name. Only the first non-empty name
// sticks; nested schemas keep reporting the original root.
func (ses *session) setRoot(name string) {
	if ses.rootSet || name == "" {
		return
	}
	ses.root = name
	ses.rootSet = true
}

// mintToken issues a fresh abort token. A token ties an abort to the one
// recoverable region that owns it; any other region re-raises.
func (ses *session) mintToken() uint64 {
	ses.nextToken++
	return ses.nextToken
}

// abortSignal is the panic payload that unwinds a fail-fast run up to the
// recoverable region owning the token.
type abortSignal struct {
	token uint64
}

// sink accumulates the messages of one recoverable region.
type sink struct {
	buf      []Message
	token    uint64
	failFast bool
}

// accumulate appends messages and, under fail-fast, unwinds to the owning
// region. Messages are recorded before the unwind, so the region observes
// everything accumulated up to the stop.
func (k *sink) accumulate(ms ...Message) {
	if len(ms) == 0 {
		return
	}
	k.buf = append(k.buf, ms...)
	if k.failFast {
		panic(abortSignal{token: k.token})
	}
}
