package eval

import "github.com/wippyai/lisp-runtime/object"

// Condition symbol names. These are stable API for programmatic error
// classification by handlers and tooling.
const (
	CondError                  = "error"
	CondWrongTypeArgument      = "wrong-type-argument"
	CondWrongNumberOfArguments = "wrong-number-of-arguments"
	CondArgsOutOfRange         = "args-out-of-range"
	CondVoidFunction           = "void-function"
	CondVoidVariable           = "void-variable"
	CondNoCatch                = "no-catch"
	CondQuit                   = "quit"
)

// SignalError signals the base error condition with a message payload, the
// form the language-level `error` builtin produces.
func SignalError(env *Env, msg string) *Error {
	return Signal(object.Intern(CondError), object.List(object.NewString(msg)), env)
}
