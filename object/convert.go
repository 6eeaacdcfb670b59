package object

import (
	"fmt"
	"math"
)

// Conversions between tagged values and native Go types. Every builtin
// parses its arguments through these; the failure policy is uniform:
// a wrong tag is a *TypeError, a right tag with an out-of-range payload is
// a contextual range error naming the value. Nothing truncates, coerces,
// or substitutes a default.

// AsString converts a tagged string to its content.
func AsString(v Value) (string, error) {
	if v.tag != TypeString {
		return "", NewTypeError(TypeString, v)
	}
	return *v.ref.(*string), nil
}

// AsOptionalString converts nil to an absent string and a tagged string to
// its content. Any other tag is a type error.
func AsOptionalString(v Value) (*string, error) {
	if v.IsNil() {
		return nil, nil
	}
	if v.tag != TypeString {
		return nil, NewTypeError(TypeString, v)
	}
	return v.ref.(*string), nil
}

// AsInt converts a tagged integer to int64.
func AsInt(v Value) (int64, error) {
	if v.tag != TypeInt {
		return 0, NewTypeError(TypeInt, v)
	}
	return int64(v.num), nil
}

// AsUint converts a non-negative tagged integer to uint64. A negative
// integer is a range error, not a type error.
func AsUint(v Value) (uint64, error) {
	n, err := AsInt(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("integer must be positive, but was %d", n)
	}
	return uint64(n), nil
}

// AsOptionalUint converts nil to an absent integer, otherwise as AsUint.
func AsOptionalUint(v Value) (*uint64, error) {
	if v.IsNil() {
		return nil, nil
	}
	u, err := AsUint(v)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Truthy reports the boolean reading of any value: everything except the
// canonical nil object is true. It never fails.
func Truthy(v Value) bool {
	return !v.IsNil()
}

// Provided is the presence flag for optional arguments: false only for the
// canonical nil object. It never fails. Truthy and Provided compute the
// same thing; call sites mean different things by them.
func Provided(v Value) bool {
	return !v.IsNil()
}

// FromBool maps a native bool onto the canonical true/false singletons.
func FromBool(b bool) Value {
	if b {
		return True
	}
	return Nil
}

// FromOptionalString maps an absent string to nil, a present one to a
// tagged string.
func FromOptionalString(s *string) Value {
	if s == nil {
		return Nil
	}
	return NewString(*s)
}

// FromOptionalInt maps an absent integer to nil, a present one to a tagged
// integer.
func FromOptionalInt(n *int64) Value {
	if n == nil {
		return Nil
	}
	return Int(*n)
}

// AsFloat converts a tagged float to float64.
func AsFloat(v Value) (float64, error) {
	if v.tag != TypeFloat {
		return 0, NewTypeError(TypeFloat, v)
	}
	return math.Float64frombits(v.num), nil
}

// AsNumber converts a tagged integer or float to float64.
func AsNumber(v Value) (float64, error) {
	switch v.tag {
	case TypeInt:
		return float64(int64(v.num)), nil
	case TypeFloat:
		return math.Float64frombits(v.num), nil
	}
	return 0, NewTypeError(TypeNumber, v)
}

// AsCons converts a tagged cons cell to its pair.
func AsCons(v Value) (*Cons, error) {
	if v.tag != TypeCons {
		return nil, NewTypeError(TypeCons, v)
	}
	return v.ref.(*Cons), nil
}

// AsSymbol converts a tagged symbol to its interned form.
func AsSymbol(v Value) (*Symbol, error) {
	if v.tag != TypeSymbol {
		return nil, NewTypeError(TypeSymbol, v)
	}
	return v.ref.(*Symbol), nil
}

// AsVec converts a tagged vector to its payload.
func AsVec(v Value) (*Vec, error) {
	if v.tag != TypeVec {
		return nil, NewTypeError(TypeVec, v)
	}
	return v.ref.(*Vec), nil
}

// AsHashTable converts a tagged hash table to its payload.
func AsHashTable(v Value) (*HashTable, error) {
	if v.tag != TypeHashTable {
		return nil, NewTypeError(TypeHashTable, v)
	}
	return v.ref.(*HashTable), nil
}

// AsRecord converts a tagged record to its payload.
func AsRecord(v Value) (*Record, error) {
	if v.tag != TypeRecord {
		return nil, NewTypeError(TypeRecord, v)
	}
	return v.ref.(*Record), nil
}

// AsBuffer converts a tagged buffer to its payload.
func AsBuffer(v Value) (*Buffer, error) {
	if v.tag != TypeBuffer {
		return nil, NewTypeError(TypeBuffer, v)
	}
	return v.ref.(*Buffer), nil
}

// AsFunc converts a tagged builtin to its payload.
func AsFunc(v Value) (*Func, error) {
	if v.tag != TypeFunc {
		return nil, NewTypeError(TypeFunc, v)
	}
	return v.ref.(*Func), nil
}

// AsList converts a proper list (or nil) to a slice of its elements.
// A dotted tail or any non-list value is a type error.
func AsList(v Value) ([]Value, error) {
	var out []Value
	cur := v
	for cur.tag == TypeCons {
		cell := cur.ref.(*Cons)
		out = append(out, cell.Car)
		cur = cell.Cdr
	}
	if !cur.IsNil() {
		return nil, NewTypeError(TypeList, v)
	}
	return out, nil
}
