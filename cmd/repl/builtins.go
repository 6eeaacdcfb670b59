package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wippyai/lisp-runtime/eval"
	"github.com/wippyai/lisp-runtime/object"
)

// builtin is a native function with a fixed arity. The table lives in the
// command: builtin dispatch is not part of the library core.
type builtin struct {
	name  string
	arity int
	fn    func(args []object.Value, env *eval.Env) (object.Value, error)
}

var builtins = map[string]builtin{}

func register(name string, arity int, fn func([]object.Value, *eval.Env) (object.Value, error)) {
	builtins[name] = builtin{name: name, arity: arity, fn: fn}
}

func init() {
	register("length", 1, func(args []object.Value, env *eval.Env) (object.Value, error) {
		n, err := object.Length(args[0])
		if err != nil {
			return object.Nil, err
		}
		return object.Int(int64(n)), nil
	})

	register("not", 1, func(args []object.Value, env *eval.Env) (object.Value, error) {
		return object.FromBool(!object.Truthy(args[0])), nil
	})

	register("1+", 1, func(args []object.Value, env *eval.Env) (object.Value, error) {
		n, err := object.AsInt(args[0])
		if err != nil {
			return object.Nil, err
		}
		return object.Int(n + 1), nil
	})

	register("concat", 2, func(args []object.Value, env *eval.Env) (object.Value, error) {
		a, err := object.AsString(args[0])
		if err != nil {
			return object.Nil, err
		}
		b, err := object.AsString(args[1])
		if err != nil {
			return object.Nil, err
		}
		return object.NewString(a + b), nil
	})

	register("substring", 3, func(args []object.Value, env *eval.Env) (object.Value, error) {
		s, err := object.AsString(args[0])
		if err != nil {
			return object.Nil, err
		}
		from, err := object.AsOptionalUint(args[1])
		if err != nil {
			return object.Nil, err
		}
		to, err := object.AsOptionalUint(args[2])
		if err != nil {
			return object.Nil, err
		}
		runes := []rune(s)
		lo, hi := uint64(0), uint64(len(runes))
		if from != nil {
			lo = *from
		}
		if to != nil {
			hi = *to
		}
		if lo > hi || hi > uint64(len(runes)) {
			return object.Nil, eval.Signal(
				object.Intern(eval.CondArgsOutOfRange),
				object.List(args...), env)
		}
		return object.NewString(string(runes[lo:hi])), nil
	})

	register("elt", 2, func(args []object.Value, env *eval.Env) (object.Value, error) {
		idx, err := object.AsUint(args[1])
		if err != nil {
			return object.Nil, err
		}
		n, err := object.Length(args[0])
		if err != nil {
			return object.Nil, err
		}
		if idx >= uint64(n) {
			return object.Nil, eval.Signal(
				object.Intern(eval.CondArgsOutOfRange),
				object.List(args...), env)
		}
		switch args[0].Type() {
		case object.TypeString:
			s, _ := object.AsString(args[0])
			return object.Int(int64([]rune(s)[idx])), nil
		case object.TypeVec:
			vec, _ := object.AsVec(args[0])
			return vec.Items[idx], nil
		default:
			items, err := object.AsList(args[0])
			if err != nil {
				return object.Nil, err
			}
			return items[idx], nil
		}
	})

	// sum-ints narrows a whole vector in place before summing.
	register("sum-ints", 1, func(args []object.Value, env *eval.Env) (object.Value, error) {
		vec, err := object.AsVec(args[0])
		if err != nil {
			return object.Nil, err
		}
		ints, err := object.CastSlice[object.IntValue](vec.Items)
		if err != nil {
			return object.Nil, err
		}
		var sum int64
		for _, n := range ints {
			sum += n.Int()
		}
		return object.Int(sum), nil
	})

	register("throw", 2, func(args []object.Value, env *eval.Env) (object.Value, error) {
		return object.Nil, eval.Throw(args[0], args[1], env)
	})

	register("signal", 2, func(args []object.Value, env *eval.Env) (object.Value, error) {
		sym, err := object.AsSymbol(args[0])
		if err != nil {
			return object.Nil, err
		}
		return object.Nil, eval.Signal(object.Intern(sym.Name), args[1], env)
	})

	register("error", 1, func(args []object.Value, env *eval.Env) (object.Value, error) {
		msg, err := object.AsString(args[0])
		if err != nil {
			return object.Nil, err
		}
		return object.Nil, eval.SignalError(env, msg)
	})
}

// evalForm treats atoms as themselves and a list as a builtin invocation,
// evaluating argument subforms first. Each failing boundary adds one
// backtrace frame.
func evalForm(form object.Value, env *eval.Env) (object.Value, error) {
	if form.Type() != object.TypeCons {
		return form, nil
	}
	cells, err := object.AsList(form)
	if err != nil {
		return object.Nil, eval.Wrap(err)
	}
	head, err := object.AsSymbol(cells[0])
	if err != nil {
		return object.Nil, eval.Wrap(err)
	}
	if head.Name == "quote" {
		if len(cells) != 2 {
			return object.Nil, eval.Wrap(object.NewArgError(1, uint16(len(cells)-1), "quote"))
		}
		return cells[1], nil
	}

	b, ok := builtins[head.Name]
	if !ok {
		return object.Nil, eval.Signal(
			object.Intern(eval.CondVoidFunction),
			object.List(cells[0]), env)
	}

	args := make([]object.Value, len(cells)-1)
	for i, sub := range cells[1:] {
		v, err := evalForm(sub, env)
		if err != nil {
			return object.Nil, eval.Wrap(err).AddTrace(b.name, args[:i])
		}
		args[i] = v
	}

	if len(args) != b.arity {
		mismatch := object.NewArgError(uint16(b.arity), uint16(len(args)), b.name)
		return object.Nil, eval.WithTrace(mismatch, b.name, args)
	}

	res, err := b.fn(args, env)
	if err != nil {
		return object.Nil, eval.Wrap(err).AddTrace(b.name, args)
	}
	return res, nil
}

func builtinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func describeBuiltins() string {
	var b strings.Builder
	for _, name := range builtinNames() {
		fmt.Fprintf(&b, "  %-10s arity %d\n", name, builtins[name].arity)
	}
	return b.String()
}
