// Package roman converts between Roman numeral strings and their decimal
// values.
//
// Parse validates a numeral string and returns a Numeral whose decimal value
// is computed on first use. Encode goes the other way, composing a numeral
// greedily from the encoding table and passing the result back through the
// same validator. Both directions share the package's immutable symbol and
// encoding tables, so every function here is safe for concurrent use.
package roman
