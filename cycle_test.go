package conform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conform"
	"github.com/dmitrymomot/conform/rules"
)

type node struct {
	Name string
	Next *node
}

func checkNode(n *node) func(*conform.Scope) {
	return func(s *conform.Scope) {
		s.Named("name", func(s *conform.Scope) {
			s.Check(rules.NotBlank(n.Name))
		})
		if n.Next != nil {
			s.Field("next", n.Next, checkNode(n.Next))
		}
	}
}

func TestCycleDetection(t *testing.T) {
	t.Parallel()

	t.Run("self-referential value terminates", func(t *testing.T) {
		t.Parallel()
		a := &node{Name: ""}
		a.Next = a

		msgs := conform.Run("Node", a, checkNode(a))

		require.Len(t, msgs, 1)
		assert.Equal(t, "name", msgs[0].Path)
	})

	t.Run("revisiting an ancestor records no message", func(t *testing.T) {
		t.Parallel()
		a := &node{Name: "head"}
		a.Next = a

		msgs := conform.Run("Node", a, checkNode(a))
		assert.Empty(t, msgs)
	})

	t.Run("two-node cycle validates each node once", func(t *testing.T) {
		t.Parallel()
		a := &node{Name: ""}
		b := &node{Name: ""}
		a.Next = b
		b.Next = a

		msgs := conform.Run("Node", a, checkNode(a))

		require.Len(t, msgs, 2)
		assert.Equal(t, "name", msgs[0].Path)
		assert.Equal(t, "next.name", msgs[1].Path)
	})

	t.Run("equal content under different identity is not a cycle", func(t *testing.T) {
		t.Parallel()
		b := &node{Name: "x"}
		a := &node{Name: "x", Next: b}

		var visited int
		conform.Run("Node", a, func(s *conform.Scope) {
			visited++
			s.Field("next", a.Next, func(s *conform.Scope) {
				visited++
			})
		})
		assert.Equal(t, 2, visited)
	})

	t.Run("shared reference across siblings is validated on both paths", func(t *testing.T) {
		t.Parallel()
		shared := &node{Name: ""}

		msgs := conform.Run("Pair", nil, func(s *conform.Scope) {
			s.Field("left", shared, checkNode(shared))
			s.Field("right", shared, checkNode(shared))
		})

		require.Len(t, msgs, 2)
		assert.Equal(t, "left.name", msgs[0].Path)
		assert.Equal(t, "right.name", msgs[1].Path)
	})

	t.Run("slice containing itself terminates", func(t *testing.T) {
		t.Parallel()
		l := make([]any, 1)
		l[0] = l

		var visits int
		msgs := conform.Run("List", l, func(s *conform.Scope) {
			conform.Each(s, l, func(i int, e any, s *conform.Scope) {
				visits++
			})
		})

		assert.Empty(t, msgs)
		assert.Zero(t, visits)
	})

	t.Run("map containing itself terminates", func(t *testing.T) {
		t.Parallel()
		m := map[string]any{}
		m["self"] = m

		var visits int
		msgs := conform.Run("Map", m, func(s *conform.Scope) {
			conform.Entries(s, m, func(k string, v any, s *conform.Scope) {
				visits++
			})
		})

		assert.Empty(t, msgs)
		assert.Zero(t, visits)
	})
}
