package lisptype

import "fmt"

// a frame contains bindings that associate
// names with values
type Frame struct {
	Parent   *Frame           // the frame above this one, nil for the top level
	Bindings map[string]Value // its bindings
}

// creates a new frame with no bindings under the given parent
func NewFrame(parent *Frame) *Frame {
	return &Frame{
		Parent:   parent,
		Bindings: make(map[string]Value),
	}
}

// creates a new nested scope whose parent is this frame
func (f *Frame) Child() *Frame {
	return NewFrame(f)
}

// binds name in this frame only, replacing any binding it already had here.
// frames above are never touched
func (f *Frame) Set(name string, value Value) {
	if f.Bindings == nil {
		f.Bindings = make(map[string]Value)
	}
	f.Bindings[name] = value
}

// looks up the value bound to name, starting here and walking
// up through the parents
func (f *Frame) Find(name string) (Value, error) {
	for current := f; current != nil; current = current.Parent {
		if v, ok := current.Bindings[name]; ok {
			return v, nil
		}
	}
	return EmptyValue(), fmt.Errorf("lookup: no binding found for symbol '%v': %w", name, ErrUnboundVariable)
}

// replaces an existing binding for name in the nearest frame that has one.
// it never creates a binding
func (f *Frame) FindAndSet(name string, value Value) error {
	for current := f; current != nil; current = current.Parent {
		if _, ok := current.Bindings[name]; ok {
			current.Bindings[name] = value
			return nil
		}
	}
	return fmt.Errorf("set!: no binding found for symbol '%v': %w", name, ErrUnboundVariable)
}

// returns true if name is bound anywhere in the chain
func (f *Frame) Bound(name string) bool {
	_, err := f.Find(name)
	return err == nil
}
