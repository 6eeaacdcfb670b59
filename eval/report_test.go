package eval

import (
	"errors"
	"strings"
	"testing"

	"github.com/wippyai/lisp-runtime/object"
)

func TestReportEvalError(t *testing.T) {
	var buf strings.Builder
	err := Wrap(errors.New("boom")).AddTrace("f", []object.Value{object.Int(1)})
	Report(&buf, err)

	want := "boom\nf 1\nEND_BACKTRACE\n"
	if buf.String() != want {
		t.Errorf("Report wrote %q, want %q", buf.String(), want)
	}
}

func TestReportPlainError(t *testing.T) {
	var buf strings.Builder
	Report(&buf, errors.New("host failure"))

	out := buf.String()
	if !strings.HasPrefix(out, "host failure\n") {
		t.Errorf("missing cause line: %q", out)
	}
	if !strings.HasSuffix(out, "END_BACKTRACE\n") {
		t.Errorf("missing sentinel: %q", out)
	}
}
