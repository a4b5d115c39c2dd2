package conform_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conform"
	"github.com/dmitrymomot/conform/rules"
)

func TestEvents(t *testing.T) {
	t.Parallel()

	t.Run("reports one event per evaluated constraint in order", func(t *testing.T) {
		t.Parallel()
		var events []conform.Event
		msgs := conform.Run("User", nil, func(s *conform.Scope) {
			s.Named("name", func(s *conform.Scope) {
				s.Check(rules.NotBlank("Ada"))
			})
			s.Named("age", func(s *conform.Scope) {
				s.Check(rules.Min(-1, 0))
			})
		}, conform.WithEvents(func(e conform.Event) {
			events = append(events, e)
		}))

		require.Len(t, msgs, 1)
		require.Len(t, events, 2)

		assert.Equal(t, conform.EventSatisfied, events[0].Kind)
		assert.Equal(t, "string.not_blank", events[0].ConstraintID)
		assert.Equal(t, "name", events[0].Path)
		assert.Nil(t, events[0].Message)

		assert.Equal(t, conform.EventViolated, events[1].Kind)
		assert.Equal(t, "number.min", events[1].ConstraintID)
		require.NotNil(t, events[1].Message)
		assert.Equal(t, "must be at least 0", events[1].Message.Text)

		assert.NotEqual(t, uuid.Nil, events[0].Run)
		assert.Equal(t, events[0].Run, events[1].Run)
	})

	t.Run("fail fast still reports the violated event before stopping", func(t *testing.T) {
		t.Parallel()
		var kinds []conform.EventKind
		conform.Run("User", nil, func(s *conform.Scope) {
			s.Check(rules.NotBlank(""), rules.MinLength("", 2))
		}, conform.WithFailFast(), conform.WithEvents(func(e conform.Event) {
			kinds = append(kinds, e.Kind)
		}))

		assert.Equal(t, []conform.EventKind{conform.EventViolated}, kinds)
	})

	t.Run("run ids differ between runs", func(t *testing.T) {
		t.Parallel()
		collect := func() uuid.UUID {
			var id uuid.UUID
			conform.Run("User", nil, func(s *conform.Scope) {
				s.Check(rules.NotBlank("x"))
			}, conform.WithEvents(func(e conform.Event) { id = e.Run }))
			return id
		}
		assert.NotEqual(t, collect(), collect())
	})
}

func TestEvents_LazyText(t *testing.T) {
	t.Parallel()

	t.Run("text is never built for satisfied constraints", func(t *testing.T) {
		t.Parallel()
		var built int
		conform.Run("X", nil, func(s *conform.Scope) {
			s.Check(conform.Constraint{
				ID:   "custom.check",
				Test: func() bool { return true },
				Text: func() string { built++; return "boom" },
			})
		})
		assert.Zero(t, built)
	})

	t.Run("text is built exactly once on failure", func(t *testing.T) {
		t.Parallel()
		var built int
		msgs := conform.Run("X", nil, func(s *conform.Scope) {
			s.Check(conform.Constraint{
				ID:   "custom.check",
				Test: func() bool { return false },
				Text: func() string { built++; return "boom" },
			})
		})
		require.Len(t, msgs, 1)
		assert.Equal(t, "boom", msgs[0].Text)
		assert.Equal(t, 1, built)
	})

	t.Run("missing text builder leaves the text empty", func(t *testing.T) {
		t.Parallel()
		msgs := conform.Run("X", nil, func(s *conform.Scope) {
			s.Check(conform.Constraint{
				ID:   "custom.check",
				Test: func() bool { return false },
			})
		})
		require.Len(t, msgs, 1)
		assert.Equal(t, "", msgs[0].Text)
	})
}

func TestEvents_Alternatives(t *testing.T) {
	t.Parallel()

	record := func(into *[]string) conform.EventFunc {
		return func(e conform.Event) {
			*into = append(*into, fmt.Sprintf("%s:%s", e.Kind, e.ConstraintID))
		}
	}

	t.Run("discarded branch events are suppressed by default", func(t *testing.T) {
		t.Parallel()
		var got []string
		conform.Run("Contact", nil, func(s *conform.Scope) {
			s.Or(func(s *conform.Scope) {
				s.Check(rules.Email("nope"))
			}).OrElse(func(s *conform.Scope) {
				s.Check(rules.Pattern("+15551234567", phoneRe))
			})
		}, conform.WithEvents(record(&got)))

		assert.Equal(t, []string{"satisfied:string.pattern"}, got)
	})

	t.Run("winning first branch flushes its events", func(t *testing.T) {
		t.Parallel()
		var got []string
		conform.Run("Contact", nil, func(s *conform.Scope) {
			s.Or(func(s *conform.Scope) {
				s.Check(rules.Email("ada@example.com"))
			}).OrElse(func(s *conform.Scope) {
				s.Check(rules.Pattern("nope", phoneRe))
			})
		}, conform.WithEvents(record(&got)))

		assert.Equal(t, []string{"satisfied:format.email"}, got)
	})

	t.Run("both branches failing reports everything plus the composite", func(t *testing.T) {
		t.Parallel()
		var got []string
		conform.Run("Contact", nil, func(s *conform.Scope) {
			s.Or(func(s *conform.Scope) {
				s.Check(rules.Email("nope"))
			}).OrElse(func(s *conform.Scope) {
				s.Check(rules.Pattern("nope", phoneRe))
			})
		}, conform.WithEvents(record(&got)))

		assert.Equal(t, []string{
			"violated:format.email",
			"violated:string.pattern",
			"violated:or",
		}, got)
	})

	t.Run("opting in streams discarded branch events", func(t *testing.T) {
		t.Parallel()
		var got []string
		conform.Run("Contact", nil, func(s *conform.Scope) {
			s.Or(func(s *conform.Scope) {
				s.Check(rules.Email("nope"))
			}).OrElse(func(s *conform.Scope) {
				s.Check(rules.Pattern("+15551234567", phoneRe))
			})
		}, conform.WithEvents(record(&got)), conform.WithDiscardedBranchEvents())

		assert.Equal(t, []string{"violated:format.email", "satisfied:string.pattern"}, got)
	})
}

func TestSlogEvents(t *testing.T) {
	t.Parallel()

	t.Run("writes satisfied and violated entries", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		conform.Run("User", nil, func(s *conform.Scope) {
			s.Named("name", func(s *conform.Scope) {
				s.Check(rules.NotBlank(""))
			})
			s.Named("age", func(s *conform.Scope) {
				s.Check(rules.Min(1, 0))
			})
		}, conform.WithLogger(logger))

		out := buf.String()
		assert.Contains(t, out, "constraint violated")
		assert.Contains(t, out, "constraint_id=string.not_blank")
		assert.Contains(t, out, "path=name")
		assert.Contains(t, out, "constraint satisfied")
		assert.Contains(t, out, "constraint_id=number.min")
	})

	t.Run("nil logger is ignored", func(t *testing.T) {
		t.Parallel()
		msgs := conform.Run("User", nil, func(s *conform.Scope) {
			s.Check(rules.NotBlank(""))
		}, conform.WithLogger(nil))
		require.Len(t, msgs, 1)
	})

	t.Run("violated entries carry the message text", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		conform.Run("User", nil, func(s *conform.Scope) {
			s.Check(rules.NotBlank(""))
		}, conform.WithLogger(logger))

		assert.Contains(t, buf.String(), "must not be blank")
	})
}
