package lisp

import (
	"fmt"

	lisptype "github.com/ian-bird/lispy/lisp_type"
)

// define and set! have no real result, callers get this instead
var definedValue = lisptype.NewNumber(1)

// evaluates a syntax tree against a frame and returns its result
func Eval(toEvaluate lisptype.AstNode, frame *lisptype.Frame) (lisptype.Value, error) {
	emptyValue := lisptype.EmptyValue()
	passUpError := func(err error) error {
		return fmt.Errorf("eval %v: %w", PrintAst(toEvaluate), err)
	}
	newError := func(kind error, format string, args ...any) error {
		return passUpError(fmt.Errorf("%v: %w", fmt.Sprintf(format, args...), kind))
	}

	switch toEvaluate.Type {
	// symbols evaluate to their binding, unbound symbols are an error
	case lisptype.SymbolNode:
		return frame.Find(toEvaluate.Symbol)
	case lisptype.NumberNode:
		return lisptype.NewNumber(toEvaluate.Number), nil
	// lists are special forms or procedure calls
	case lisptype.ListNode:
	default:
		return emptyValue, newError(lisptype.ErrTypeMismatch, "unknown node type %d", toEvaluate.Type)
	}

	if len(toEvaluate.List) == 0 {
		return emptyValue, passUpError(lisptype.ErrEmptyApplication)
	}
	first := toEvaluate.List[0]
	arguments := toEvaluate.List[1:]

	if first.Type == lisptype.SymbolNode {
		switch first.Symbol {
		// (quote exp) evaluates exp
		case "quote":
			if len(arguments) != 1 {
				return emptyValue, newError(lisptype.ErrMalformedSpecialForm, "quote must be in the form (quote exp)")
			}
			result, err := Eval(arguments[0], frame)
			if err != nil {
				return emptyValue, passUpError(err)
			}
			return result, nil
		// (if test conseq alt), only the chosen branch is evaluated
		case "if":
			if len(arguments) != 3 {
				return emptyValue, newError(lisptype.ErrMalformedSpecialForm, "if must be in the form (if test conseq alt)")
			}
			test, err := Eval(arguments[0], frame)
			if err != nil {
				return emptyValue, passUpError(err)
			}
			if test.Type != lisptype.Number {
				return emptyValue, newError(lisptype.ErrTypeMismatch, "if test must be a number, got %v", test.Type)
			}
			branch := arguments[2]
			if test.Truthy() {
				branch = arguments[1]
			}
			result, err := Eval(branch, frame)
			if err != nil {
				return emptyValue, passUpError(err)
			}
			return result, nil
		// (define var exp) binds in the current frame.
		// (set! var exp) rebinds wherever var is already bound
		case "define", "set!":
			if len(arguments) != 2 {
				return emptyValue, newError(lisptype.ErrMalformedSpecialForm, "%v must be in the form (%v var exp)", first.Symbol, first.Symbol)
			}
			if arguments[0].Type != lisptype.SymbolNode {
				return emptyValue, newError(lisptype.ErrMalformedSpecialForm, "%v expected identifier", first.Symbol)
			}
			name := arguments[0].Symbol
			value, err := Eval(arguments[1], frame)
			if err != nil {
				return emptyValue, passUpError(err)
			}
			if first.Symbol == "define" {
				frame.Set(name, value)
				return definedValue, nil
			}
			if err := frame.FindAndSet(name, value); err != nil {
				return emptyValue, passUpError(err)
			}
			return definedValue, nil
		}
	}

	// (proc arg...)
	proc, err := Eval(first, frame)
	if err != nil {
		return emptyValue, passUpError(err)
	}
	if proc.Type != lisptype.Procedure {
		return emptyValue, newError(lisptype.ErrNotCallable, "first element of a call must be a procedure, got %v", proc.Type)
	}
	evaluatedArgs := make([]lisptype.Value, 0, len(arguments))
	for _, arg := range arguments {
		evaluatedArg, err := Eval(arg, frame)
		if err != nil {
			return emptyValue, passUpError(err)
		}
		evaluatedArgs = append(evaluatedArgs, evaluatedArg)
	}
	result, err := proc.Procedure(evaluatedArgs)
	if err != nil {
		return emptyValue, passUpError(err)
	}
	return result, nil
}
