package lisp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	lisptype "github.com/ian-bird/lispy/lisp_type"
)

// splits source text into tokens.
// parens always become their own token, everything else
// is separated by whitespace
func Tokenize(s string) []string {
	s = strings.ReplaceAll(s, "(", " ( ")
	s = strings.ReplaceAll(s, ")", " ) ")
	return strings.Fields(s)
}

// numbers become numbers, every other token is a symbol.
// literals too large for a float64 read as infinity
func readAtom(token string) lisptype.AstNode {
	if n, err := strconv.ParseFloat(token, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return lisptype.NewNumberNode(n)
	}
	return lisptype.NewSymbol(token)
}

// reads one complete form off the front of tokens.
// the tokens consumed are removed from the slice, so
// calling it again reads the next form
func ReadFromTokens(tokens *[]string) (lisptype.AstNode, error) {
	if len(*tokens) == 0 {
		return lisptype.AstNode{}, fmt.Errorf("read: %w", lisptype.ErrUnexpectedEndOfInput)
	}
	token := (*tokens)[0]
	*tokens = (*tokens)[1:]

	switch token {
	case "(":
		elements := make([]lisptype.AstNode, 0)
		for {
			// ran out before finding the closing parens
			if len(*tokens) == 0 {
				return lisptype.AstNode{}, fmt.Errorf("read: could not find matching closing parens: %w", lisptype.ErrUnexpectedEndOfInput)
			}
			if (*tokens)[0] == ")" {
				*tokens = (*tokens)[1:]
				return lisptype.NewList(elements...), nil
			}
			element, err := ReadFromTokens(tokens)
			if err != nil {
				return lisptype.AstNode{}, err
			}
			elements = append(elements, element)
		}
	case ")":
		return lisptype.AstNode{}, fmt.Errorf("read: unexpected ')': %w", lisptype.ErrUnexpectedToken)
	default:
		return readAtom(token), nil
	}
}

// reads every form in s, in order
func ReadAll(s string) ([]lisptype.AstNode, error) {
	tokens := Tokenize(s)
	forms := make([]lisptype.AstNode, 0)
	for len(tokens) > 0 {
		form, err := ReadFromTokens(&tokens)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

// reads the first form in s.
// anything after it still has to be well formed, so
// stray closing parens are reported rather than dropped
func Parse(s string) (lisptype.AstNode, error) {
	forms, err := ReadAll(s)
	if err != nil {
		return lisptype.AstNode{}, err
	}
	if len(forms) == 0 {
		return lisptype.AstNode{}, fmt.Errorf("read: %w", lisptype.ErrUnexpectedEndOfInput)
	}
	return forms[0], nil
}
