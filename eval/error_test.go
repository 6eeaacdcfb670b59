package eval

import (
	"errors"
	"strings"
	"testing"

	"github.com/wippyai/lisp-runtime/object"
)

func TestBacktraceOrder(t *testing.T) {
	err := Wrap(errors.New("boom")).
		AddTrace("f", []object.Value{object.Int(1)}).
		AddTrace("g", []object.Value{object.Int(2)})

	frames := err.Backtrace()
	if len(frames) != 2 {
		t.Fatalf("frames = %v", frames)
	}
	if frames[0] != "f 1" || frames[1] != "g 2" {
		t.Errorf("frames out of unwind order: %v", frames)
	}
}

func TestWithTracePreservesExistingFrames(t *testing.T) {
	err := WithTrace(errors.New("boom"), "inner", nil)
	err = err.AddTrace("outer", nil)
	frames := err.Backtrace()
	if len(frames) != 2 || !strings.HasPrefix(frames[0], "inner") || !strings.HasPrefix(frames[1], "outer") {
		t.Errorf("frames = %v", frames)
	}
}

func TestFrameFormat(t *testing.T) {
	err := Wrap(errors.New("x")).AddTrace("substring", []object.Value{
		object.NewString("hello"),
		object.Int(1),
		object.Nil,
	})
	want := `substring "hello" 1 nil`
	if got := err.Backtrace()[0]; got != want {
		t.Errorf("frame = %q, want %q", got, want)
	}
}

func TestFrameCapturedEagerly(t *testing.T) {
	items := []object.Value{object.Int(1)}
	err := Wrap(errors.New("x")).AddTrace("f", []object.Value{object.NewVec(items)})
	items[0] = object.Int(42)
	if got := err.Backtrace()[0]; got != "f [1]" {
		t.Errorf("frame changed after argument mutation: %q", got)
	}
}

func TestRender(t *testing.T) {
	env := NewEnv()
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "generic with frames",
			err: Wrap(errors.New("boom")).
				AddTrace("f", []object.Value{object.Int(1), object.Int(2)}),
			want: "boom\nf 1 2\nEND_BACKTRACE",
		},
		{
			name: "generic no frames",
			err:  New("plain"),
			want: "plain\nEND_BACKTRACE",
		},
		{
			name: "throw",
			err:  Throw(object.Intern("tag"), object.Int(1), env),
			want: "No catch for throw\nEND_BACKTRACE",
		},
		{
			name: "signal",
			err:  Signal(object.Intern("error"), object.Nil, env),
			want: "Signal\nEND_BACKTRACE",
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

func TestRenderEndsWithSentinel(t *testing.T) {
	env := NewEnv()
	errs := []*Error{
		New("a"),
		Errorf("b %d", 1),
		Throw(object.Nil, object.Nil, env).AddTrace("f", nil),
		Signal(object.Nil, object.Nil, env),
		Wrap(object.NewArgError(1, 2, "g")),
	}
	for _, e := range errs {
		lines := strings.Split(e.Error(), "\n")
		if lines[len(lines)-1] != "END_BACKTRACE" {
			t.Errorf("rendering does not end with sentinel: %q", e.Error())
		}
	}
}

func TestWrapPassthrough(t *testing.T) {
	inner := New("once")
	if Wrap(inner) != inner {
		t.Error("Wrap re-wrapped an existing *Error")
	}
}

func TestDiagnosticsConvert(t *testing.T) {
	te := object.NewTypeError(object.TypeInt, object.NewString("s"))
	err := Wrap(te)
	if len(err.Backtrace()) != 0 {
		t.Error("converted diagnostic has a non-empty backtrace")
	}

	var got *object.TypeError
	if !errors.As(err, &got) {
		t.Fatal("errors.As could not recover the TypeError through the eval boundary")
	}
	if *got != *te {
		t.Errorf("recovered diagnostic differs: %+v", got)
	}

	ae := object.NewArgError(2, 3, "my-fn")
	var gotArg *object.ArgError
	if !errors.As(Wrap(ae), &gotArg) {
		t.Fatal("errors.As could not recover the ArgError")
	}
}

func TestCauseTaxonomy(t *testing.T) {
	env := NewEnv()
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"generic", New("x"), "error"},
		{"throw", Throw(object.Nil, object.Nil, env), "throw"},
		{"signal", Signal(object.Nil, object.Nil, env), "signal"},
	}
	for _, tt := range tests {
		if got := causeName(tt.err.Cause); got != tt.want {
			t.Errorf("%s: causeName = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestThrowSignalCarryNoValues(t *testing.T) {
	env := NewEnv()
	err := Throw(object.Intern("tag"), object.NewString("payload"), env)

	c, ok := err.Cause.(Thrown)
	if !ok {
		t.Fatalf("cause = %T, want Thrown", err.Cause)
	}
	exc, ok := env.Exception(c.ID)
	if !ok {
		t.Fatal("thrown exception not registered with env")
	}
	if exc.Tag != object.Intern("tag") {
		t.Errorf("tag = %v", exc.Tag)
	}
	if s, _ := object.AsString(exc.Data); s != "payload" {
		t.Errorf("data = %v", exc.Data)
	}
	if err.Unwrap() != nil {
		t.Error("throw has a wrapped cause")
	}
}
