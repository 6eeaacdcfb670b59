// Package reader parses textual datums into tagged values: integers,
// floats, strings, symbols, quoted forms, proper and dotted lists, and
// vectors. It exists for tooling and the REPL; it is not a committed
// language surface.
package reader
