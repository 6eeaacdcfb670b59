package object

import "testing"

func TestArgErrorRender(t *testing.T) {
	tests := []struct {
		name string
		err  *ArgError
		want string
	}{
		{
			name: "two expected three found",
			err:  NewArgError(2, 3, "my-fn"),
			want: "Expected 2 argument(s) for `my-fn', but found 3",
		},
		{
			name: "zero expected",
			err:  NewArgError(0, 1, "barf"),
			want: "Expected 0 argument(s) for `barf', but found 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeErrorRender(t *testing.T) {
	tests := []struct {
		name   string
		expect Type
		value  Value
		want   string
	}{
		{
			name:   "int against cons",
			expect: TypeInt,
			value:  NewCons(Int(1), Int(2)),
			want:   "expected Int, found Cons: (1 . 2)",
		},
		{
			name:   "string against int",
			expect: TypeString,
			value:  Int(7),
			want:   "expected String, found Int: 7",
		},
		{
			name:   "sequence against float",
			expect: TypeSequence,
			value:  Float(1.5),
			want:   "expected Sequence, found Float: 1.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewTypeError(tt.expect, tt.value).Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeErrorComparable(t *testing.T) {
	a := NewTypeError(TypeInt, NewString("x"))
	b := NewTypeError(TypeInt, NewString("x"))
	if *a != *b {
		t.Errorf("equal diagnostics compare unequal: %+v vs %+v", a, b)
	}
}

func TestTypeErrorSnapshotImmutable(t *testing.T) {
	items := []Value{Int(1), Int(2)}
	vec := NewVec(items)
	e := NewTypeError(TypeString, vec)
	items[0] = Int(99)
	if e.Print != "[1 2]" {
		t.Errorf("printed snapshot changed after mutation: %q", e.Print)
	}
}
