package lisptype

import "errors"

// every failure the reader or the evaluator can produce wraps one of these,
// so callers can tell them apart with errors.Is
var (
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrMalformedSpecialForm = errors.New("malformed special form")
	ErrUnboundVariable      = errors.New("unbound variable")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrArityError           = errors.New("wrong number of arguments")
	ErrEmptyApplication     = errors.New("cannot evaluate empty list")

	// applying something that is not a procedure.
	// also matches ErrTypeMismatch
	ErrNotCallable error = notCallable{}
)

type notCallable struct{}

func (notCallable) Error() string { return "not callable" }

func (notCallable) Is(target error) bool {
	return target == ErrTypeMismatch
}
