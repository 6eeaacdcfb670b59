// Package lispruntime is an embeddable Lisp-like interpreter runtime core.
//
// This library provides the pieces every native builtin of the interpreter
// touches: the uniformly tagged value representation, the safety-checked
// conversion boundary between tagged values and native Go types, and the
// unified evaluation error model with backtrace accumulation.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	lisp-runtime/
//	├── object/          Tagged values, type classifier, printer, and the
//	│                    conversion boundary used by builtin argument parsing
//	├── eval/            Unified eval error (generic/signal/throw), backtrace
//	│                    accumulation, and the environment exception registry
//	├── reader/          Minimal datum reader used by tooling and the REPL
//	└── cmd/repl/        Interactive REPL exercising the boundary
//
// # Quick Start
//
// A native builtin parses its tagged arguments through the object package
// and reports failures through the eval package:
//
//	func substring(args []object.Value, env *eval.Env) (object.Value, error) {
//	    s, err := object.AsString(args[0])
//	    if err != nil {
//	        return object.Value{}, eval.WithTrace(err, "substring", args)
//	    }
//	    ...
//	}
//
// Unhandled errors render with their full backtrace, terminated by an
// END_BACKTRACE sentinel line so host tooling can delimit the block in
// mixed output.
package lispruntime
