package sexp

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// document is the grammar root: a single top-level node
type document struct {
	Root *Node `parser:"@@"`
}

var parser = participle.MustBuild[document](
	participle.Lexer(NetlistLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)

// Parse reads a single s-expression tree from r
func Parse(r io.Reader) (*Node, error) {
	doc, err := parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return doc.Root, nil
}

// ParseString parses a single s-expression tree from a string
func ParseString(input string) (*Node, error) {
	return Parse(strings.NewReader(input))
}

// ParseFile reads and parses an s-expression file
func ParseFile(filename string) (*Node, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}
