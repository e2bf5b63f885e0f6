package roman

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Numeral is a validated Roman numeral. The zero value is the empty numeral,
// whose value is 0.
//
// A Numeral must not be copied after first use.
type Numeral struct {
	text    string
	symbols []rune

	once  sync.Once
	value int
}

// Parse normalizes raw to uppercase and validates it. On success the
// returned Numeral holds the normalized text; its decimal value is computed
// on the first call to Value. On failure the error is a *ValidationError
// describing the first rule broken.
//
// The empty string is a valid numeral with value 0.
func Parse(raw string) (*Numeral, error) {
	text := cases.Upper(language.Und).String(raw)
	symbols := []rune(text)
	if err := validate(text, symbols); err != nil {
		return nil, err
	}
	return &Numeral{text: text, symbols: symbols}, nil
}

// Text returns the canonical uppercase form of the numeral.
func (n *Numeral) Text() string {
	return n.text
}

// String implements fmt.Stringer.
func (n *Numeral) String() string {
	return n.text
}

// Len returns the number of symbols in the numeral.
func (n *Numeral) Len() int {
	return len(n.symbols)
}

// Value returns the decimal value of the numeral. It is computed once and
// cached, and is safe to call from multiple goroutines.
func (n *Numeral) Value() int {
	n.once.Do(func() {
		n.value = decimalValue(n.symbols)
	})
	return n.value
}
