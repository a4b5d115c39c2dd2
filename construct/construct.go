package construct

import (
	"fmt"

	"github.com/dmitrymomot/conform"
)

// Group collects named bindings for one value under construction. Bindings
// are queued in registration order and only run when the group finalizes,
// so every part is validated even when an earlier part fails.
type Group struct {
	scope    *conform.Scope
	queued   []func() bool
	sealed   bool
	resolved bool
}

// Ref is the future result of a binding. Its value becomes readable only
// after the owning group has run every binding.
type Ref[T any] struct {
	g    *Group
	name string
	val  T
}

// Value returns the bound value. It panics when called before the owning
// group resolved all bindings, since the value would not exist yet.
func (r *Ref[T]) Value() T {
	if !r.g.resolved {
		panic(fmt.Sprintf("construct: ref %q read before all bindings resolved", r.name))
	}
	return r.val
}

// Bind registers a named binding on the group and returns a Ref to its
// future value. The binding runs inside its own capture region at the
// given name, so its messages carry the part's path. Bind panics when the
// group already finalized.
func Bind[T any](g *Group, name string, fn func(*conform.Scope) T) *Ref[T] {
	if g.sealed {
		panic(fmt.Sprintf("construct: bind %q after factory finalized", name))
	}

	ref := &Ref[T]{g: g, name: name}
	g.queued = append(g.queued, func() bool {
		return g.scope.Capture(name, func(s *conform.Scope) {
			ref.val = fn(s)
		})
	})
	return ref
}

// finalize runs every queued binding in registration order and reports
// whether all of them stayed clean. After finalize the group's refs are
// readable and further binds panic.
func (g *Group) finalize() bool {
	g.sealed = true
	clean := true
	for _, run := range g.queued {
		if !run() {
			clean = false
		}
	}
	g.resolved = true
	return clean
}

// Make validates the named parts of a value and constructs it only when
// every part passed. build registers the bindings; mk assembles the value
// from their refs. A failed part yields a Result carrying the messages and
// never the value.
func Make[T any](name string, build func(*Group), mk func() T, opts ...conform.Option) conform.Result[T] {
	var out T
	msgs := conform.Run(name, nil, func(s *conform.Scope) {
		g := &Group{scope: s}
		build(g)
		if g.finalize() {
			out = mk()
		}
	}, opts...)

	if len(msgs) > 0 {
		return conform.Failure[T](msgs...)
	}
	return conform.Success(out)
}

// MakeChecked is Make with a whole-value check that runs after
// construction. Messages recorded by check reject the already-built value,
// so the result still carries only messages.
func MakeChecked[T any](name string, build func(*Group), mk func() T, check func(*conform.Scope, T), opts ...conform.Option) conform.Result[T] {
	var out T
	msgs := conform.Run(name, nil, func(s *conform.Scope) {
		g := &Group{scope: s}
		build(g)
		if !g.finalize() {
			return
		}
		out = mk()
		if check != nil {
			check(s, out)
		}
	}, opts...)

	if len(msgs) > 0 {
		return conform.Failure[T](msgs...)
	}
	return conform.Success(out)
}

// Nested builds a sub-value inside an enclosing binding. Messages from the
// inner bindings keep the enclosing part's path as a prefix, and a failed
// inner part returns the zero value, which the enclosing capture already
// marked unusable.
func Nested[T any](s *conform.Scope, typeName string, build func(*Group), mk func() T) T {
	var out T
	s.Schema(typeName, func(ss *conform.Scope) {
		g := &Group{scope: ss}
		build(g)
		if g.finalize() {
			out = mk()
		}
	})
	return out
}
