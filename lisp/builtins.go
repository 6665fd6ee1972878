package lisp

import (
	"fmt"
	"math"

	lisptype "github.com/ian-bird/lispy/lisp_type"
)

// checks there is at least one argument and that every argument is a number,
// returning the numbers in order
func numericArgs(name string, args []lisptype.Value) ([]float64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%v needs at least one number: %w", name, lisptype.ErrArityError)
	}
	numbers := make([]float64, len(args))
	for i, arg := range args {
		if arg.Type != lisptype.Number {
			return nil, fmt.Errorf("%v: argument %d is a %v, not a number: %w", name, i+1, arg.Type, lisptype.ErrTypeMismatch)
		}
		numbers[i] = arg.Number
	}
	return numbers, nil
}

// left fold with the first argument as the seed.
// a single argument comes back unchanged, so (- 5) is 5
func arithmetic(name string, op func(acc, n float64) float64) lisptype.Value {
	return lisptype.NewProcedure(func(args []lisptype.Value) (lisptype.Value, error) {
		numbers, err := numericArgs(name, args)
		if err != nil {
			return lisptype.EmptyValue(), err
		}
		result := numbers[0]
		for _, n := range numbers[1:] {
			result = op(result, n)
		}
		return lisptype.NewNumber(result), nil
	})
}

// true only if every adjacent pair satisfies the relation.
// stops at the first pair that doesn't
func comparison(name string, holds func(previous, n float64) bool) lisptype.Value {
	return lisptype.NewProcedure(func(args []lisptype.Value) (lisptype.Value, error) {
		numbers, err := numericArgs(name, args)
		if err != nil {
			return lisptype.EmptyValue(), err
		}
		previous := numbers[0]
		for _, n := range numbers[1:] {
			if !holds(previous, n) {
				return lisptype.Bool(false), nil
			}
			previous = n
		}
		return lisptype.Bool(true), nil
	})
}

// true when none of the arguments are truthy.
// every argument has to be a number
func not(args []lisptype.Value) (lisptype.Value, error) {
	numbers, err := numericArgs("not", args)
	if err != nil {
		return lisptype.EmptyValue(), err
	}
	for _, n := range numbers {
		if n != 0 {
			return lisptype.Bool(false), nil
		}
	}
	return lisptype.Bool(true), nil
}

// creates a new top level frame holding pi and the builtin procedures
func NewTopLevelFrame() *lisptype.Frame {
	return &lisptype.Frame{
		Parent: nil,
		Bindings: map[string]lisptype.Value{
			"pi": lisptype.NewNumber(math.Pi),

			"+":   arithmetic("+", func(acc, n float64) float64 { return acc + n }),
			"-":   arithmetic("-", func(acc, n float64) float64 { return acc - n }),
			"*":   arithmetic("*", func(acc, n float64) float64 { return acc * n }),
			"/":   arithmetic("/", func(acc, n float64) float64 { return acc / n }), // no zero check, inf and nan propagate
			"max": arithmetic("max", func(acc, n float64) float64 { return pick(n > acc, n, acc) }),
			"min": arithmetic("min", func(acc, n float64) float64 { return pick(n < acc, n, acc) }),

			"=":  comparison("=", func(previous, n float64) bool { return previous == n }),
			"<":  comparison("<", func(previous, n float64) bool { return previous < n }),
			"<=": comparison("<=", func(previous, n float64) bool { return previous <= n }),
			">":  comparison(">", func(previous, n float64) bool { return previous > n }),
			">=": comparison(">=", func(previous, n float64) bool { return previous >= n }),

			"not": lisptype.NewProcedure(not),
		},
	}
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
