package eval

import (
	"testing"

	"github.com/wippyai/lisp-runtime/object"
)

func TestRegisterAndTake(t *testing.T) {
	env := NewEnv()
	id := env.RegisterException(object.Intern("tag"), object.Int(7))

	exc, ok := env.Exception(id)
	if !ok {
		t.Fatal("Exception() did not find a live registration")
	}
	if exc.Tag != object.Intern("tag") || exc.Data != object.Int(7) {
		t.Errorf("exception = %+v", exc)
	}

	taken, ok := env.TakeException(id)
	if !ok || taken != exc {
		t.Errorf("TakeException = %+v, %v", taken, ok)
	}
	if _, ok := env.Exception(id); ok {
		t.Error("slot still live after TakeException")
	}
	if _, ok := env.TakeException(id); ok {
		t.Error("TakeException succeeded twice for the same id")
	}
}

func TestSlotReuse(t *testing.T) {
	env := NewEnv()
	a := env.RegisterException(object.Intern("a"), object.Nil)
	b := env.RegisterException(object.Intern("b"), object.Nil)
	if a == b {
		t.Fatal("live registrations share an id")
	}

	env.TakeException(a)
	c := env.RegisterException(object.Intern("c"), object.Nil)
	if c != a {
		t.Errorf("freed slot not reused: got %d, want %d", c, a)
	}

	exc, ok := env.Exception(c)
	if !ok || exc.Tag != object.Intern("c") {
		t.Errorf("reused slot holds %+v", exc)
	}
	if exc, ok := env.Exception(b); !ok || exc.Tag != object.Intern("b") {
		t.Errorf("unrelated slot disturbed: %+v, %v", exc, ok)
	}
}

func TestPending(t *testing.T) {
	env := NewEnv()
	if env.Pending() != 0 {
		t.Fatalf("fresh env has %d pending", env.Pending())
	}
	a := env.RegisterException(object.Nil, object.Nil)
	env.RegisterException(object.Nil, object.Nil)
	if env.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", env.Pending())
	}
	env.TakeException(a)
	if env.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", env.Pending())
	}
}

func TestBogusIDs(t *testing.T) {
	env := NewEnv()
	if _, ok := env.Exception(0); ok {
		t.Error("Exception on empty env reported ok")
	}
	env.RegisterException(object.Nil, object.Nil)
	if _, ok := env.Exception(5); ok {
		t.Error("Exception on out-of-range id reported ok")
	}
}

func TestSignalErrorCondition(t *testing.T) {
	env := NewEnv()
	err := SignalError(env, "it broke")

	c, ok := err.Cause.(Signaled)
	if !ok {
		t.Fatalf("cause = %T, want Signaled", err.Cause)
	}
	exc, ok := env.TakeException(c.ID)
	if !ok {
		t.Fatal("signaled exception not registered")
	}
	if exc.Tag != object.Intern(CondError) {
		t.Errorf("condition symbol = %v", exc.Tag)
	}
	data, err2 := object.AsList(exc.Data)
	if err2 != nil || len(data) != 1 {
		t.Fatalf("data = %v, %v", exc.Data, err2)
	}
	if s, _ := object.AsString(data[0]); s != "it broke" {
		t.Errorf("message = %v", data[0])
	}
}
