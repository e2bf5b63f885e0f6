package shell

import (
	"fmt"
	"strings"
)

// Mode selects the conversion direction.
type Mode int

const (
	// ModeMenu asks the user for a direction before converting.
	ModeMenu Mode = iota
	// ModeDecode converts Roman numerals to decimal.
	ModeDecode
	// ModeEncode converts decimal numbers to Roman numerals.
	ModeEncode
)

// String returns the name ParseMode accepts for m.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return ""
	case ModeDecode:
		return "decode"
	case ModeEncode:
		return "encode"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "decode" and "encode" (any case) to their modes. The empty
// string is ModeMenu.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ModeMenu, nil
	case "decode":
		return ModeDecode, nil
	case "encode":
		return ModeEncode, nil
	default:
		return ModeMenu, fmt.Errorf("invalid mode %q: must be 'decode' or 'encode'", s)
	}
}
