package lisp

import (
	"fmt"
	"strings"

	lisptype "github.com/ian-bird/lispy/lisp_type"
)

// printed for values that carry no usable data
const noResult = "No result returned"

// converts a value to the text the repl shows for it
func Print(v lisptype.Value) string {
	switch v.Type {
	case lisptype.Number:
		return fmt.Sprintf("%v", v.Number)
	case lisptype.Procedure:
		return "#<procedure>"
	default:
		return noResult
	}
}

// converts a syntax tree back to source text recursively,
// representing lists by wrapping them with parenthesis
func PrintAst(n lisptype.AstNode) string {
	switch n.Type {
	case lisptype.SymbolNode:
		return n.Symbol
	case lisptype.NumberNode:
		return fmt.Sprintf("%v", n.Number)
	case lisptype.ListNode:
		parts := make([]string, 0, len(n.List))
		for _, element := range n.List {
			parts = append(parts, PrintAst(element))
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return "?"
	}
}
