package roman

import (
	"math"
	"strings"
)

// MaxValue is the largest value Encode accepts.
const MaxValue = math.MaxInt32

// Encode converts a non-negative integer into a Numeral. Zero encodes to the
// empty numeral. A negative value returns a *RangeError wrapping
// ErrNegativeValue, and a value above MaxValue one wrapping ErrValueTooLarge.
//
// The encoded text goes through the same validation as Parse. If it is
// rejected the encoding table is inconsistent, and Encode panics with an
// *InternalError rather than report it as a user error.
func Encode(value int) (*Numeral, error) {
	if value < 0 {
		return nil, &RangeError{Value: value, Err: ErrNegativeValue}
	}
	if value > MaxValue {
		return nil, &RangeError{Value: value, Err: ErrValueTooLarge}
	}

	text := compose(value)
	n, err := Parse(text)
	if err != nil {
		panic(&InternalError{Value: value, Numeral: text, Err: err})
	}
	return n, nil
}

// MustEncode is like Encode but panics if value cannot be encoded.
func MustEncode(value int) *Numeral {
	n, err := Encode(value)
	if err != nil {
		panic(err)
	}
	return n
}

// compose builds the numeral text greedily: it repeatedly appends the largest
// magnitude that does not overshoot value, restarting from the top of the
// table each time so a magnitude can repeat ("MMM").
func compose(value int) string {
	var sb strings.Builder
	reached := 0
	for reached < value {
		for i := len(magnitudes) - 1; i >= 0; i-- {
			m := magnitudes[i]
			if reached+m.value <= value {
				reached += m.value
				sb.WriteString(m.symbols)
				break
			}
		}
	}
	return sb.String()
}
