package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/lisp-runtime/object"
)

// Reader scans datums out of a source string.
type Reader struct {
	src string
	pos int
}

// New returns a reader over src.
func New(src string) *Reader {
	return &Reader{src: src}
}

// Read parses the first datum in src.
func Read(src string) (object.Value, error) {
	return New(src).Next()
}

// ReadAll parses every datum in src.
func ReadAll(src string) ([]object.Value, error) {
	r := New(src)
	var out []object.Value
	for {
		r.skipSpace()
		if r.eof() {
			return out, nil
		}
		v, err := r.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// Next parses the next datum.
func (r *Reader) Next() (object.Value, error) {
	r.skipSpace()
	if r.eof() {
		return object.Nil, fmt.Errorf("unexpected end of input")
	}
	switch c := r.src[r.pos]; c {
	case '(':
		r.pos++
		return r.readList()
	case '[':
		r.pos++
		return r.readVector()
	case '"':
		r.pos++
		return r.readString()
	case '\'':
		r.pos++
		v, err := r.Next()
		if err != nil {
			return object.Nil, err
		}
		return object.List(object.Intern("quote"), v), nil
	case ')', ']':
		return object.Nil, fmt.Errorf("unexpected %q at offset %d", c, r.pos)
	default:
		return r.readAtom()
	}
}

func (r *Reader) readList() (object.Value, error) {
	var items []object.Value
	tail := object.Nil
	for {
		r.skipSpace()
		if r.eof() {
			return object.Nil, fmt.Errorf("unterminated list")
		}
		if r.src[r.pos] == ')' {
			r.pos++
			break
		}
		if r.src[r.pos] == '.' && r.delimitedAt(r.pos+1) {
			if len(items) == 0 {
				return object.Nil, fmt.Errorf("dotted list with no head at offset %d", r.pos)
			}
			r.pos++
			v, err := r.Next()
			if err != nil {
				return object.Nil, err
			}
			tail = v
			r.skipSpace()
			if r.eof() || r.src[r.pos] != ')' {
				return object.Nil, fmt.Errorf("expected ) after dotted tail at offset %d", r.pos)
			}
			r.pos++
			break
		}
		v, err := r.Next()
		if err != nil {
			return object.Nil, err
		}
		items = append(items, v)
	}
	out := tail
	for i := len(items) - 1; i >= 0; i-- {
		out = object.NewCons(items[i], out)
	}
	return out, nil
}

func (r *Reader) readVector() (object.Value, error) {
	var items []object.Value
	for {
		r.skipSpace()
		if r.eof() {
			return object.Nil, fmt.Errorf("unterminated vector")
		}
		if r.src[r.pos] == ']' {
			r.pos++
			return object.NewVec(items), nil
		}
		v, err := r.Next()
		if err != nil {
			return object.Nil, err
		}
		items = append(items, v)
	}
}

func (r *Reader) readString() (object.Value, error) {
	var b strings.Builder
	for !r.eof() {
		c := r.src[r.pos]
		r.pos++
		switch c {
		case '"':
			return object.NewString(b.String()), nil
		case '\\':
			if r.eof() {
				return object.Nil, fmt.Errorf("unterminated escape in string")
			}
			e := r.src[r.pos]
			r.pos++
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\', '"':
				b.WriteByte(e)
			default:
				return object.Nil, fmt.Errorf("unknown escape \\%c in string", e)
			}
		default:
			b.WriteByte(c)
		}
	}
	return object.Nil, fmt.Errorf("unterminated string")
}

func (r *Reader) readAtom() (object.Value, error) {
	start := r.pos
	for !r.eof() && !r.delimitedAt(r.pos) {
		r.pos++
	}
	text := r.src[start:r.pos]
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return object.Int(n), nil
	}
	if strings.ContainsAny(text, ".eE") {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return object.Float(f), nil
		}
	}
	return object.Intern(text), nil
}

func (r *Reader) skipSpace() {
	for !r.eof() {
		c := r.src[r.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			r.pos++
		case c == ';':
			for !r.eof() && r.src[r.pos] != '\n' {
				r.pos++
			}
		default:
			return
		}
	}
}

func (r *Reader) eof() bool {
	return r.pos >= len(r.src)
}

// delimitedAt reports whether offset i ends an atom.
func (r *Reader) delimitedAt(i int) bool {
	if i >= len(r.src) {
		return true
	}
	switch r.src[i] {
	case ' ', '\t', '\n', '\r', '(', ')', '[', ']', '"', ';', '\'':
		return true
	}
	return false
}
