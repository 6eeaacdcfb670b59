// Package object provides the tagged value representation and the checked
// conversion boundary between tagged values and native Go types.
//
// Every runtime value travels as a Value, a uniformly sized handle carrying
// a dynamic type tag. Native builtins never inspect the handle directly:
// they parse arguments through the As* conversions, which fail with a
// *TypeError on a tag mismatch or a contextual range error when the tag is
// right but the payload is out of range. The three conversions documented
// as infallible (Truthy, Provided, FromBool) never fail.
//
// CastSlice is the performance-sensitive variant: it validates a whole
// argument slice element-wise and reinterprets the same backing memory as a
// slice of a narrowed wrapper type, with no per-element copy. It is the one
// place in the library that uses unsafe, and the aliasing is only performed
// after the full validation pass.
package object
