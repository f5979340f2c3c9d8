/*
File    : gomix-script/internal/srcloc/srcloc.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package srcloc holds the one type every stage of the pipeline shares:
// a source Location. It exists on its own so the lexer, parser, value
// model and error types can all refer to it without an import cycle.
package srcloc

import "fmt"

// Location is a 1-indexed line, 1-indexed column pair (the lexer starts
// every line at column 1), carried by every Token and every AST node for
// error reporting (spec.md §3).
type Location struct {
	Line   int
	Column int
}

func (loc Location) String() string {
	return fmt.Sprintf("%d:%d", loc.Line, loc.Column)
}
