package object

// Type classifies a tagged value, or names the shape a conversion expected.
//
// The first block are concrete tags a live value can carry. Sequence,
// Number, and List are expectation-only categories: no value is tagged with
// them, but a conversion can require one (a List is a Cons chain or nil, a
// Number is an Int or a Float, a Sequence is anything with a length).
type Type uint8

const (
	TypeInt Type = iota
	TypeCons
	TypeVec
	TypeRecord
	TypeHashTable
	TypeString
	TypeSymbol
	TypeFloat
	TypeFunc
	TypeBuffer

	TypeSequence
	TypeNumber
	TypeList
)

var typeNames = [...]string{
	TypeInt:       "Int",
	TypeCons:      "Cons",
	TypeVec:       "Vec",
	TypeRecord:    "Record",
	TypeHashTable: "HashTable",
	TypeString:    "String",
	TypeSymbol:    "Symbol",
	TypeFloat:     "Float",
	TypeFunc:      "Func",
	TypeBuffer:    "Buffer",
	TypeSequence:  "Sequence",
	TypeNumber:    "Number",
	TypeList:      "List",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}
