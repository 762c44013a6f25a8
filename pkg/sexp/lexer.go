package sexp

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// NetlistLexer defines the lexical structure of KiCad s-expression exports.
// The token set is deliberately small: parentheses, quoted strings, and
// everything else as bare symbols (numbers included).
var NetlistLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Whitespace between tokens
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// List delimiters
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},

	// Quoted string literals with escape sequences
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},

	// Bare atoms: symbols, identifiers, and numbers
	// Anything that is not whitespace, a paren, or a quote
	{Name: "Symbol", Pattern: `[^()"\s]+`},
})
