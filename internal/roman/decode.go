package roman

// validate checks symbols against the notation rules in a single pass and
// returns a *ValidationError for the first position that breaks one.
func validate(text string, symbols []rune) error {
	for i, s := range symbols {
		if _, ok := symbolValues[s]; !ok {
			return &ValidationError{Numeral: text, Position: i, Symbols: string(s), Err: ErrIllegalSymbol}
		}

		// Two ascending pairs may not share a symbol, e.g. "IVX".
		if isSubtractive(symbols, i) && isSubtractive(symbols, i+1) {
			return &ValidationError{Numeral: text, Position: i, Symbols: string(symbols[i : i+3]), Err: ErrSubtractionChainTooLong}
		}

		if i+1 >= len(symbols) {
			continue
		}
		next, ok := symbolValues[symbols[i+1]]
		if !ok {
			// Reported when the loop reaches it.
			continue
		}
		// A symbol may precede at most ten times its value (no "IC") and
		// never exactly twice its value (no "VX", "LC", "DM").
		cur := symbolValues[s]
		if next > 10*cur || next == 2*cur {
			return &ValidationError{Numeral: text, Position: i, Symbols: string(symbols[i : i+2]), Err: ErrIllegalSubtractionPair}
		}
	}
	return nil
}

// isSubtractive reports whether the symbols at i and i+1 form a subtractive
// pair, i.e. both are known symbols and the first is worth less. Out of range
// indexes and unknown symbols never form a pair.
func isSubtractive(symbols []rune, i int) bool {
	if i < 0 || i+1 >= len(symbols) {
		return false
	}
	cur, ok := symbolValues[symbols[i]]
	if !ok {
		return false
	}
	next, ok := symbolValues[symbols[i+1]]
	if !ok {
		return false
	}
	return cur < next
}

// decimalValue sums the symbol values left to right, subtracting a symbol
// when the one after it is worth more. symbols must already be validated.
func decimalValue(symbols []rune) int {
	total := 0
	for i, s := range symbols {
		if isSubtractive(symbols, i) {
			total -= symbolValues[s]
		} else {
			total += symbolValues[s]
		}
	}
	return total
}
