package roman

// symbolValues maps each valid Roman numeral symbol to its value.
var symbolValues = map[rune]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// magnitude is one entry of the encoding table: a value and the symbol
// sequence the encoder emits for it.
type magnitude struct {
	value   int
	symbols string
}

// magnitudes is the encoding table, sorted ascending by value. It includes
// the subtractive composites, along with the 45 ("VL") and 450 ("LD")
// composites that classical notation writes as "XLV" and "CDL".
var magnitudes = [...]magnitude{
	{1, "I"},
	{4, "IV"},
	{5, "V"},
	{9, "IX"},
	{10, "X"},
	{40, "XL"},
	{45, "VL"},
	{50, "L"},
	{90, "XC"},
	{100, "C"},
	{400, "CD"},
	{450, "LD"},
	{500, "D"},
	{900, "CM"},
	{1000, "M"},
}

// SymbolValue reports the value of a single symbol and whether it is a
// valid Roman numeral symbol. Lowercase symbols are not recognised.
func SymbolValue(symbol rune) (int, bool) {
	v, ok := symbolValues[symbol]
	return v, ok
}
