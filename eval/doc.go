// Package eval provides the unified evaluation error and the environment
// exception registry.
//
// Every native function reports failure through *Error, whose Cause is one
// of three kinds: Wrapped (a generic host failure, including type and arity
// diagnostics from the conversion boundary), Signaled (a condition-style
// error interceptable by a matching handler anywhere up the dynamic call
// chain), and Thrown (a non-local exit intercepted by the nearest matching
// catch form). A throw/catch pair is also the cancellation mechanism; there
// is no separate token or timeout in this core.
//
// Signals and throws do not carry their values. Registration stores the
// (tag, data) pair in the Env's exception table and the error carries only
// the slot id, keeping *Error free of any collector lifetime binding.
//
// As an error unwinds through nested native calls it accumulates one
// formatted backtrace frame per boundary. Rendering an error yields the
// cause line, the frames innermost first, and a literal END_BACKTRACE
// sentinel line that delimits the block in mixed output.
package eval
