package lisptype

// this is the type enum for values
type ValueType int

// these are all the valid types for a value
const (
	Empty     ValueType = iota // the result of something that produces no data
	Number                     // a float64
	Procedure                  // a native callable
)

// a native procedure takes its already evaluated arguments
// in order and produces a single value
type ProcedureFunc func(args []Value) (Value, error)

// this is a value struct.
// only the field matching Type is meaningful,
// the rest are left at their zero values
type Value struct {
	Type      ValueType     // the type of this value
	Number    float64       // payload for Number
	Procedure ProcedureFunc // payload for Procedure
}

// creates a new number value
func NewNumber(n float64) Value {
	return Value{
		Type:   Number,
		Number: n,
	}
}

// creates a new procedure value wrapping a native function
func NewProcedure(fn ProcedureFunc) Value {
	return Value{
		Type:      Procedure,
		Procedure: fn,
	}
}

// the empty value, carries nothing
func EmptyValue() Value {
	return Value{Type: Empty}
}

// encodes a go bool in the truthy convention, 1 for true and 0 for false
func Bool(b bool) Value {
	if b {
		return NewNumber(1)
	}
	return NewNumber(0)
}

// zero is falsy, every other number is truthy.
// only meaningful for numbers
func (v Value) Truthy() bool {
	return v.Number != 0
}

func (t ValueType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Number:
		return "number"
	case Procedure:
		return "procedure"
	default:
		return "unknown"
	}
}
