package roman

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Value(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected int
		text     string
	}{
		{name: "one symbol", raw: "V", expected: 5, text: "V"},
		{name: "lower case", raw: "cxvi", expected: 116, text: "CXVI"},
		{name: "mixed case", raw: "mCdIv", expected: 1404, text: "MCDIV"},
		{name: "repeated symbol", raw: "MMMMM", expected: 5000, text: "MMMMM"},
		{name: "descending symbols", raw: "MDCLXVI", expected: 1666, text: "MDCLXVI"},
		{name: "one subtraction", raw: "IV", expected: 4, text: "IV"},
		{name: "multiple subtractions", raw: "MCDIV", expected: 1404, text: "MCDIV"},
		{name: "all subtractive pairs", raw: "MCMXCIX", expected: 1999, text: "MCMXCIX"},
		{name: "non-standard forty-five", raw: "VL", expected: 45, text: "VL"},
		{name: "non-standard four hundred fifty", raw: "LD", expected: 450, text: "LD"},
		{name: "additive repeat before larger", raw: "IIV", expected: 5, text: "IIV"},
		{name: "empty string", raw: "", expected: 0, text: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Parse(tc.raw)
			require.NoError(t, err)
			require.NotNil(t, n)
			assert.Equal(t, tc.text, n.Text())
			assert.Equal(t, tc.text, n.String())
			assert.Equal(t, tc.expected, n.Value())
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		rule     error
		position int
		symbols  string
	}{
		{name: "illegal symbol", raw: "K", rule: ErrIllegalSymbol, position: 0, symbols: "K"},
		{name: "illegal symbol after valid ones", raw: "XIZ", rule: ErrIllegalSymbol, position: 2, symbols: "Z"},
		{name: "illegal symbol after subtraction", raw: "IVK", rule: ErrIllegalSymbol, position: 2, symbols: "K"},
		{name: "whitespace is not a symbol", raw: "X I", rule: ErrIllegalSymbol, position: 1, symbols: " "},
		{name: "chained subtraction", raw: "VXL", rule: ErrSubtractionChainTooLong, position: 0, symbols: "VXL"},
		{name: "chained subtraction after prefix", raw: "MIVX", rule: ErrSubtractionChainTooLong, position: 1, symbols: "IVX"},
		{name: "one hundred times", raw: "IC", rule: ErrIllegalSubtractionPair, position: 0, symbols: "IC"},
		{name: "twice the value", raw: "LC", rule: ErrIllegalSubtractionPair, position: 0, symbols: "LC"},
		{name: "twice the value lower case", raw: "vx", rule: ErrIllegalSubtractionPair, position: 0, symbols: "VX"},
		{name: "D before M", raw: "DM", rule: ErrIllegalSubtractionPair, position: 0, symbols: "DM"},
		{name: "X before M", raw: "MXM", rule: ErrIllegalSubtractionPair, position: 1, symbols: "XM"},
		{name: "I before L", raw: "IL", rule: ErrIllegalSubtractionPair, position: 0, symbols: "IL"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Parse(tc.raw)
			require.Error(t, err)
			assert.Nil(t, n)
			assert.True(t, errors.Is(err, tc.rule), "expected %v, got %v", tc.rule, err)
			assert.True(t, IsValidation(err))

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.position, ve.Position)
			assert.Equal(t, tc.symbols, ve.Symbols)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	_, err := Parse("k")
	require.Error(t, err)
	assert.Equal(t, `invalid Roman numeral "K": illegal symbol 'K'`, err.Error())

	_, err = Parse("IC")
	require.Error(t, err)
	assert.Equal(t, `invalid Roman numeral "IC": illegal subtraction notation "IC"`, err.Error())

	_, err = Parse("IVX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subtraction notation can only be applied to two symbols")
}

func TestNumeral_ValueIsCached(t *testing.T) {
	n, err := Parse("MMXXVI")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = n.Value()
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		assert.Equal(t, 2026, v)
	}
}

func TestNumeral_ZeroValue(t *testing.T) {
	var n Numeral
	assert.Equal(t, "", n.Text())
	assert.Equal(t, 0, n.Len())
	assert.Equal(t, 0, n.Value())
}

func TestNumeral_Idempotent(t *testing.T) {
	for _, raw := range []string{"XIV", "mmmcmxcix", "VLIV", "LDVL", ""} {
		n, err := Parse(raw)
		require.NoError(t, err)

		again, err := Parse(n.Text())
		require.NoError(t, err)
		assert.Equal(t, n.Value(), again.Value(), "numeral %q", raw)
		assert.Equal(t, n.Text(), again.Text())
	}
}

func TestSymbolValue(t *testing.T) {
	v, ok := SymbolValue('M')
	assert.True(t, ok)
	assert.Equal(t, 1000, v)

	_, ok = SymbolValue('m')
	assert.False(t, ok)
}
