package conform

import "log/slog"

// settings carries the per-run configuration assembled from options.
type settings struct {
	failFast              bool
	clock                 Clock
	events                EventFunc
	discardedBranchEvents bool
}

// Option configures a validation run.
type Option func(*settings)

func defaultSettings() settings {
	return settings{clock: SystemClock()}
}

func newSettings(opts []Option) settings {
	cfg := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithFailFast stops the run at the first violation instead of collecting
// every message.
func WithFailFast() Option {
	return func(cfg *settings) {
		cfg.failFast = true
	}
}

// WithClock substitutes the time source exposed to temporal predicates.
// A nil clock is ignored.
func WithClock(clock Clock) Option {
	return func(cfg *settings) {
		if clock != nil {
			cfg.clock = clock
		}
	}
}

// WithEvents registers a sink receiving one event per evaluated constraint.
func WithEvents(fn EventFunc) Option {
	return func(cfg *settings) {
		cfg.events = fn
	}
}

// WithLogger registers a structured logger as the event sink. A nil logger
// is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(cfg *settings) {
		if fn := SlogEvents(log); fn != nil {
			cfg.events = fn
		}
	}
}

// WithDiscardedBranchEvents forwards events recorded inside a failed
// alternative even when a later alternative succeeds. By default such
// events are dropped, so sinks only see work that counted toward the
// outcome.
func WithDiscardedBranchEvents() Option {
	return func(cfg *settings) {
		cfg.discardedBranchEvents = true
	}
}
