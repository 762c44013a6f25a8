// Package sexp parses KiCad s-expression files into a generic tagged tree
// of atoms and nested lists. Higher layers navigate the tree themselves;
// this package knows nothing about netlist schemas.
package sexp

import (
	"strconv"
	"strings"
)

// Node is one element of the parsed tree: either an atom (quoted string
// or bare symbol) or a nested list.
type Node struct {
	Str  *string `parser:"  @String"`
	Sym  *string `parser:"| @Symbol"`
	List *List   `parser:"| @@"`
}

// List is an ordered sequence of nodes. A list whose first element is an
// atom is a tagged list; the atom names the list's role (e.g. "comp").
type List struct {
	Items []*Node `parser:"LParen @@* RParen"`
}

// IsAtom returns true if the node is a string or symbol leaf
func (n *Node) IsAtom() bool {
	return n.List == nil
}

// IsList returns true if the node is a nested list
func (n *Node) IsList() bool {
	return n.List != nil
}

// Quoted returns true if the node was a quoted string in the source
func (n *Node) Quoted() bool {
	return n.Str != nil
}

// Text returns the atom's text (unquoted for strings). Lists return "".
func (n *Node) Text() string {
	switch {
	case n.Str != nil:
		return *n.Str
	case n.Sym != nil:
		return *n.Sym
	}
	return ""
}

// Float parses the atom as a float64
func (n *Node) Float() (float64, error) {
	return strconv.ParseFloat(n.Text(), 64)
}

// Int parses the atom as an int
func (n *Node) Int() (int, error) {
	return strconv.Atoi(n.Text())
}

// String renders the node back to s-expression form. Atoms that were
// quoted in the source are re-quoted.
func (n *Node) String() string {
	switch {
	case n.Str != nil:
		return strconv.Quote(*n.Str)
	case n.Sym != nil:
		return *n.Sym
	case n.List != nil:
		return n.List.String()
	}
	return ""
}

// Len returns the number of elements in the list
func (l *List) Len() int {
	return len(l.Items)
}

// At returns the element at the given index, or nil if out of range
func (l *List) At(index int) *Node {
	if index < 0 || index >= len(l.Items) {
		return nil
	}
	return l.Items[index]
}

// Tag returns the text of the list's first element when it is an atom.
// Untagged lists return "".
func (l *List) Tag() string {
	if len(l.Items) == 0 {
		return ""
	}
	if first := l.Items[0]; first.IsAtom() {
		return first.Text()
	}
	return ""
}

// String renders the list back to s-expression form
func (l *List) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, item := range l.Items {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(item.String())
	}
	sb.WriteString(")")
	return sb.String()
}
