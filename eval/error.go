package eval

import (
	"fmt"
	"strings"

	"github.com/wippyai/lisp-runtime/object"
)

// Cause is the three-way failure taxonomy. It is a sealed sum: every
// handler type-switches over Thrown, Signaled, and Wrapped, and nothing
// else can implement it.
type Cause interface {
	isCause()
}

// Thrown is a non-local exit keyed by a catch tag. ID indexes the owning
// environment's exception table; it is meaningless in any other Env.
type Thrown struct {
	ID uint32
}

// Signaled is a condition-style error carrying a condition symbol and data,
// registered with the owning environment under ID.
type Signaled struct {
	ID uint32
}

// Wrapped is a generic host failure with no language-visible identity,
// including type and arity diagnostics from the conversion boundary.
type Wrapped struct {
	Err error
}

func (Thrown) isCause()   {}
func (Signaled) isCause() {}
func (Wrapped) isCause()  {}

// Error is the unified failure value for every native operation. It is
// terminal for the operation that produced it: nothing retries, and only a
// condition handler, a catch form, or the top-level reporter resolves it.
// As it crosses each native call boundary it gains one backtrace frame.
type Error struct {
	backtrace []string
	Cause     Cause
}

// Wrap converts any error into an *Error with an empty backtrace. An
// *Error passes through unchanged, so fallible code can return type and
// arity diagnostics (or any host error) wherever an *Error is expected.
func Wrap(err error) *Error {
	if ev, ok := err.(*Error); ok {
		return ev
	}
	return &Error{Cause: Wrapped{Err: err}}
}

// New builds an error from a plain message.
func New(msg string) *Error {
	return &Error{Cause: Wrapped{Err: fmt.Errorf("%s", msg)}}
}

// Errorf builds an error from a formatted message.
func Errorf(format string, args ...any) *Error {
	return &Error{Cause: Wrapped{Err: fmt.Errorf(format, args...)}}
}

// Signal registers a (condition symbol, data) pair with env and returns an
// error an enclosing condition handler can recognize by id. Requires
// exclusive access to env for the duration of the call.
func Signal(sym, data object.Value, env *Env) *Error {
	return &Error{Cause: Signaled{ID: env.RegisterException(sym, data)}}
}

// Throw registers a (catch tag, value) pair with env and returns the
// non-local exit the nearest matching catch form intercepts.
func Throw(tag, value object.Value, env *Env) *Error {
	return &Error{Cause: Thrown{ID: env.RegisterException(tag, value)}}
}

// WithTrace wraps err with an initial backtrace frame already attached.
func WithTrace(err error, name string, args []object.Value) *Error {
	return Wrap(err).AddTrace(name, args)
}

// AddTrace appends one frame as the error propagates out of a nested
// native call. The frame text is formatted now: args may be reclaimed or
// mutated before the error is displayed.
func (e *Error) AddTrace(name string, args []object.Value) *Error {
	e.backtrace = append(e.backtrace, name+" "+object.FormatSlice(args))
	return e
}

// Backtrace returns the accumulated frames, innermost first.
func (e *Error) Backtrace() []string {
	out := make([]string, len(e.backtrace))
	copy(out, e.backtrace)
	return out
}

// Unwrap exposes the wrapped cause so errors.Is and errors.As see through
// the eval boundary. Thrown and Signaled have no wrapped cause.
func (e *Error) Unwrap() error {
	if w, ok := e.Cause.(Wrapped); ok {
		return w.Err
	}
	return nil
}

// Error renders the cause line, each backtrace frame on its own line, and
// the sentinel the tooling uses to delimit the block.
func (e *Error) Error() string {
	var b strings.Builder
	switch c := e.Cause.(type) {
	case Wrapped:
		b.WriteString(c.Err.Error())
	case Thrown:
		b.WriteString("No catch for throw")
	case Signaled:
		b.WriteString("Signal")
	}
	b.WriteByte('\n')
	for _, frame := range e.backtrace {
		b.WriteString(frame)
		b.WriteByte('\n')
	}
	b.WriteString("END_BACKTRACE")
	return b.String()
}
