package conform

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// ident is the referential identity of a traversed subject. Only reference
// kinds carry one; values without identity never match each other.
type ident struct {
	ptr uintptr
	len int
	ok  bool
}

// identityOf extracts a comparable identity from reference-kind subjects.
// Slices pair the backing pointer with the length, so a slice and its
// sub-slices stay distinct. Nil and empty references carry no identity.
func identityOf(subject any) ident {
	if subject == nil {
		return ident{}
	}

	v := reflect.ValueOf(subject)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if v.IsNil() {
			return ident{}
		}
		return ident{ptr: v.Pointer(), len: -1, ok: true}
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 {
			return ident{}
		}
		return ident{ptr: v.Pointer(), len: v.Len(), ok: true}
	default:
		return ident{}
	}
}

// pathNode is one traversal step. Nodes form a chain back to the run root,
// so extending a path never mutates shared state.
type pathNode struct {
	segment string
	subject ident
	parent  *pathNode
}

// extend returns a child node for the given segment, or nil when the
// subject's identity already appears on the chain. A nil return means the
// traversal found a cycle and the caller must skip descending.
func (n *pathNode) extend(segment string, subject any) *pathNode {
	id := identityOf(subject)
	if id.ok {
		for a := n; a != nil; a = a.parent {
			if a.subject == id {
				return nil
			}
		}
	}
	return &pathNode{segment: segment, subject: id, parent: n}
}

// fullName renders the chain as a dotted path, skipping unnamed nodes.
func (n *pathNode) fullName() string {
	var segments []string
	for a := n; a != nil; a = a.parent {
		if a.segment != "" {
			segments = append(segments, a.segment)
		}
	}
	slices.Reverse(segments)
	return strings.Join(segments, ".")
}

// elementSegment renders the path segment for the i-th element of a
// sequence.
func elementSegment(i int) string {
	return fmt.Sprintf("[%d]<iterable element>", i)
}

// entrySegment renders the path segment for the value stored under a map
// key.
func entrySegment(key any) string {
	return fmt.Sprintf("[%v]<map value>", key)
}
