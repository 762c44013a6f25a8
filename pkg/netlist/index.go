// Package netlist imports KiCad netlist exports into the circuit graph:
// part templates extracted from the libparts section, part instances
// matched against them, and nets with physical-to-logical pin
// deduplication.
package netlist

import (
	"github.com/Infinite-Blue-1042/pcbdl/pkg/sexp"
)

// Index is a name-keyed view over a tagged s-expression list. Positional
// access is unchanged from the underlying list; tag lookups scan the
// immediate children that are themselves tagged lists.
type Index struct {
	list *sexp.List
}

// NewIndex wraps a list node
func NewIndex(l *sexp.List) Index {
	return Index{list: l}
}

// Len returns the number of elements, the leading tag included
func (x Index) Len() int {
	if x.list == nil {
		return 0
	}
	return x.list.Len()
}

// At returns the element at the given position, or nil if out of range
func (x Index) At(index int) *sexp.Node {
	if x.list == nil {
		return nil
	}
	return x.list.At(index)
}

// Tag returns the name of the wrapped list
func (x Index) Tag() string {
	if x.list == nil {
		return ""
	}
	return x.list.Tag()
}

// Text returns the atom text at the given position ("" for lists and
// out-of-range positions).
func (x Index) Text(index int) string {
	node := x.At(index)
	if node == nil {
		return ""
	}
	return node.Text()
}

// Value returns the text immediately after the tag, the payload of the
// common (tag value) shape.
func (x Index) Value() string {
	return x.Text(1)
}

// Get finds the single immediate child tagged with the given key. It
// fails with KeyNotFoundError when no child matches and with
// AmbiguousKeyError when more than one does.
func (x Index) Get(key string) (Index, error) {
	matches := x.FindAll(key)
	switch len(matches) {
	case 0:
		return Index{}, &KeyNotFoundError{Key: key}
	case 1:
		return matches[0], nil
	}
	return Index{}, &AmbiguousKeyError{Key: key, Count: len(matches)}
}

// FindAll returns every immediate child tagged with the given key, in
// declaration order. Used where the schema legitimately repeats a tag.
func (x Index) FindAll(key string) []Index {
	var matches []Index
	if x.list == nil {
		return matches
	}
	for _, item := range x.list.Items {
		if item.IsList() && item.List.Tag() == key {
			matches = append(matches, Index{list: item.List})
		}
	}
	return matches
}
