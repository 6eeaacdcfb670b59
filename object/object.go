package object

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// Value is the uniformly sized tagged handle over every runtime value.
// Immediate payloads (Int, Float) live in num; everything else is a pointer
// held in ref, so Value is comparable and comparison gives eq semantics.
//
// The concrete shape is deliberately opaque: native code goes through the
// conversion functions in this package, never through the fields.
type Value struct {
	tag Type
	num uint64
	ref any
}

// Type returns the dynamic type tag of the value.
func (v Value) Type() Type {
	return v.tag
}

// Symbol is an interned name. Two symbols with the same name are the same
// pointer, so Value comparison on symbols is name equality.
type Symbol struct {
	Name string
}

// Cons is a mutable car/cdr pair.
type Cons struct {
	Car Value
	Cdr Value
}

// Vec is a mutable fixed-length vector of values.
type Vec struct {
	Items []Value
}

// HashTable maps values to values with eq semantics.
type HashTable struct {
	data map[Value]Value
}

// Record is a named tuple of fields.
type Record struct {
	Name   string
	Fields []Value
}

// Buffer holds editable byte content with a name.
type Buffer struct {
	Name    string
	Content []byte
}

// NativeFn is the signature of a builtin implemented in Go.
type NativeFn func(args []Value) (Value, error)

// Func is a builtin function object.
type Func struct {
	Name string
	Fn   NativeFn
}

var (
	internMu sync.Mutex
	interned = make(map[string]*Symbol)
)

// Intern returns the symbol value for name, creating it on first use.
func Intern(name string) Value {
	internMu.Lock()
	defer internMu.Unlock()
	sym, ok := interned[name]
	if !ok {
		sym = &Symbol{Name: name}
		interned[name] = sym
	}
	return Value{tag: TypeSymbol, ref: sym}
}

// Canonical singletons. Treat as constants.
var (
	Nil  = Intern("nil")
	True = Intern("t")
)

// IsNil reports whether v is the canonical nil object.
func (v Value) IsNil() bool {
	return v == Nil
}

// Int returns a tagged integer.
func Int(n int64) Value {
	return Value{tag: TypeInt, num: uint64(n)}
}

// Float returns a tagged float.
func Float(f float64) Value {
	return Value{tag: TypeFloat, num: math.Float64bits(f)}
}

// NewString returns a tagged string.
func NewString(s string) Value {
	return Value{tag: TypeString, ref: &s}
}

// NewCons returns a tagged cons cell.
func NewCons(car, cdr Value) Value {
	return Value{tag: TypeCons, ref: &Cons{Car: car, Cdr: cdr}}
}

// NewVec returns a tagged vector over items. The slice is not copied.
func NewVec(items []Value) Value {
	return Value{tag: TypeVec, ref: &Vec{Items: items}}
}

// NewHashTable returns an empty tagged hash table.
func NewHashTable() Value {
	return Value{tag: TypeHashTable, ref: &HashTable{data: make(map[Value]Value)}}
}

// NewRecord returns a tagged record.
func NewRecord(name string, fields ...Value) Value {
	return Value{tag: TypeRecord, ref: &Record{Name: name, Fields: fields}}
}

// NewBuffer returns a tagged buffer.
func NewBuffer(name string, content []byte) Value {
	return Value{tag: TypeBuffer, ref: &Buffer{Name: name, Content: content}}
}

// NewFunc returns a tagged builtin function object.
func NewFunc(name string, fn NativeFn) Value {
	return Value{tag: TypeFunc, ref: &Func{Name: name, Fn: fn}}
}

// List builds a proper list from items, innermost cdr nil.
func List(items ...Value) Value {
	out := Nil
	for i := len(items) - 1; i >= 0; i-- {
		out = NewCons(items[i], out)
	}
	return out
}

// Get returns the value stored under key.
func (h *HashTable) Get(key Value) (Value, bool) {
	v, ok := h.data[key]
	return v, ok
}

// Put stores value under key.
func (h *HashTable) Put(key, value Value) {
	h.data[key] = value
}

// Count returns the number of entries.
func (h *HashTable) Count() int {
	return len(h.data)
}

// Length returns the number of elements in a sequence: list cells, vector
// slots, string characters, or buffer bytes. Nil is the empty list.
func Length(v Value) (int, error) {
	switch v.tag {
	case TypeString:
		return utf8.RuneCountInString(*v.ref.(*string)), nil
	case TypeVec:
		return len(v.ref.(*Vec).Items), nil
	case TypeBuffer:
		return len(v.ref.(*Buffer).Content), nil
	case TypeCons:
		n := 0
		for cur := v; cur.tag == TypeCons; cur = cur.ref.(*Cons).Cdr {
			n++
		}
		return n, nil
	case TypeSymbol:
		if v.IsNil() {
			return 0, nil
		}
	}
	return 0, NewTypeError(TypeSequence, v)
}

// String renders the value in read syntax where one exists.
func (v Value) String() string {
	switch v.tag {
	case TypeInt:
		return strconv.FormatInt(int64(v.num), 10)
	case TypeFloat:
		return formatFloat(math.Float64frombits(v.num))
	case TypeString:
		return strconv.Quote(*v.ref.(*string))
	case TypeSymbol:
		return v.ref.(*Symbol).Name
	case TypeCons:
		return formatList(v)
	case TypeVec:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range v.ref.(*Vec).Items {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(item.String())
		}
		b.WriteByte(']')
		return b.String()
	case TypeHashTable:
		return "#s(hash-table count " + strconv.Itoa(v.ref.(*HashTable).Count()) + ")"
	case TypeRecord:
		rec := v.ref.(*Record)
		var b strings.Builder
		b.WriteString("#s(")
		b.WriteString(rec.Name)
		for _, f := range rec.Fields {
			b.WriteByte(' ')
			b.WriteString(f.String())
		}
		b.WriteByte(')')
		return b.String()
	case TypeBuffer:
		return "#<buffer " + v.ref.(*Buffer).Name + ">"
	case TypeFunc:
		return "#<subr " + v.ref.(*Func).Name + ">"
	}
	return "#<unknown>"
}

func formatList(v Value) string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	cur := v
	for cur.tag == TypeCons {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		cell := cur.ref.(*Cons)
		b.WriteString(cell.Car.String())
		cur = cell.Cdr
	}
	if !cur.IsNil() {
		b.WriteString(" . ")
		b.WriteString(cur.String())
	}
	b.WriteByte(')')
	return b.String()
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(f, 0) && !math.IsNaN(f) {
		s += ".0"
	}
	return s
}

// FormatSlice renders values space-separated, the form used for backtrace
// frames. The text is a snapshot: it stays valid after the values are
// reclaimed or mutated.
func FormatSlice(vals []Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}
