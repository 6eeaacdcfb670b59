package object

import (
	"math"
	"unsafe"
)

// Narrowed wrapper types over Value. Each is a defined type whose underlying
// type is Value, so the memory layout is identical by construction (not by
// inference) — the precondition CastSlice relies on.
type (
	IntValue    Value
	FloatValue  Value
	StringValue Value
	SymbolValue Value
	ConsValue   Value
	VecValue    Value
)

// Int returns the integer payload. Valid only for values produced by a
// checked conversion.
func (v IntValue) Int() int64 { return int64(Value(v).num) }

// Float returns the float payload.
func (v FloatValue) Float() float64 { return math.Float64frombits(Value(v).num) }

// Str returns the string payload.
func (v StringValue) Str() string { return *Value(v).ref.(*string) }

// Symbol returns the symbol payload.
func (v SymbolValue) Symbol() *Symbol { return Value(v).ref.(*Symbol) }

// Cons returns the cons payload.
func (v ConsValue) Cons() *Cons { return Value(v).ref.(*Cons) }

// Vec returns the vector payload.
func (v VecValue) Vec() *Vec { return Value(v).ref.(*Vec) }

// Value returns the general tagged form.
func (v IntValue) Value() Value    { return Value(v) }
func (v FloatValue) Value() Value  { return Value(v) }
func (v StringValue) Value() Value { return Value(v) }
func (v SymbolValue) Value() Value { return Value(v) }
func (v ConsValue) Value() Value   { return Value(v) }
func (v VecValue) Value() Value    { return Value(v) }

// Narrow is the set of wrapper types CastSlice can produce.
type Narrow interface {
	IntValue | FloatValue | StringValue | SymbolValue | ConsValue | VecValue
}

func narrowTag[T Narrow]() Type {
	var z T
	switch any(z).(type) {
	case IntValue:
		return TypeInt
	case FloatValue:
		return TypeFloat
	case StringValue:
		return TypeString
	case SymbolValue:
		return TypeSymbol
	case ConsValue:
		return TypeCons
	case VecValue:
		return TypeVec
	}
	panic("object: narrow type without a tag")
}

// CastSlice validates every element of vals against T's tag and, only if
// all pass, returns a view of the same backing array as []T without
// allocating or copying. A wrongly tagged element fails with exactly the
// TypeError the single-element conversion would produce.
//
// The reinterpretation is sound because (1) every element already passed
// the identical per-element tag check, and (2) each Narrow type has Value
// as its underlying type, so the layouts match by construction. The unsafe
// step grants nothing the validation pass did not already prove; it must
// never run without it.
func CastSlice[T Narrow](vals []Value) ([]T, error) {
	want := narrowTag[T]()
	for _, v := range vals {
		if v.tag != want {
			return nil, NewTypeError(want, v)
		}
	}
	data := unsafe.SliceData(vals)
	return unsafe.Slice((*T)(unsafe.Pointer(data)), len(vals)), nil
}
