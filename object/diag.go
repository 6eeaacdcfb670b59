package object

import "fmt"

// ArgError reports a fixed-arity mismatch. It is plain comparable data,
// safe to keep past the lifetime of the call that produced it.
type ArgError struct {
	Expect uint16
	Actual uint16
	Name   string
}

// NewArgError builds an arity mismatch for the named function.
func NewArgError(expect, actual uint16, name string) *ArgError {
	return &ArgError{Expect: expect, Actual: actual, Name: name}
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("Expected %d argument(s) for `%s', but found %d", e.Expect, e.Name, e.Actual)
}

// TypeError reports a tag mismatch at the conversion boundary. Print is
// captured eagerly at construction because the offending value may be
// reclaimed or mutated before the error is displayed.
type TypeError struct {
	Expect Type
	Actual Type
	Print  string
}

// NewTypeError builds a type mismatch from the offending value.
func NewTypeError(expect Type, v Value) *TypeError {
	return &TypeError{Expect: expect, Actual: v.Type(), Print: v.String()}
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("expected %s, found %s: %s", e.Expect, e.Actual, e.Print)
}
