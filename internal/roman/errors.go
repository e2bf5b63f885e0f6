package roman

import (
	"errors"
	"fmt"
)

// Sentinel errors for the rules a numeral or a value can break. Match them
// with errors.Is.
var (
	ErrIllegalSymbol           = errors.New("illegal symbol")
	ErrSubtractionChainTooLong = errors.New("subtraction notation can only be applied to two symbols")
	ErrIllegalSubtractionPair  = errors.New("illegal subtraction notation")
	ErrNegativeValue           = errors.New("value must not be negative")
	ErrValueTooLarge           = errors.New("value exceeds the largest encodable value")
)

// ValidationError reports why a numeral string was rejected. It is a user
// input error: callers may show it and ask for another numeral.
type ValidationError struct {
	Numeral  string // normalized input
	Position int    // rune index of the first offending symbol
	Symbols  string // offending symbol, or pair of symbols
	Err      error  // one of the rule sentinels
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrIllegalSymbol):
		return fmt.Sprintf("invalid Roman numeral %q: illegal symbol '%s'", e.Numeral, e.Symbols)
	case errors.Is(e.Err, ErrIllegalSubtractionPair):
		return fmt.Sprintf("invalid Roman numeral %q: illegal subtraction notation %q", e.Numeral, e.Symbols)
	default:
		return fmt.Sprintf("invalid Roman numeral %q: %v (%q)", e.Numeral, e.Err, e.Symbols)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// RangeError reports a decimal value the encoder does not accept.
type RangeError struct {
	Value int
	Err   error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cannot encode %d: %v", e.Value, e.Err)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// InternalError is the panic value used when the encoder produces a string
// the validator rejects. It signals a defect in the encoding table, never a
// problem with user input, and is not returned as an error.
type InternalError struct {
	Value   int
	Numeral string
	Err     error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("roman: encoding %d produced invalid numeral %q: %v", e.Value, e.Numeral, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
