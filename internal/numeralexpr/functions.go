package numeralexpr

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/romanconv/internal/roman"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// RomanFunc encodes a whole, non-negative number as a Roman numeral string.
var RomanFunc = function.New(&function.Spec{
	Description: "Encodes a whole, non-negative number as a Roman numeral.",
	Params: []function.Parameter{
		{Name: "number", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		var value int
		if err := gocty.FromCtyValue(args[0], &value); err != nil {
			return cty.UnknownVal(cty.String), function.NewArgError(0, err)
		}
		n, err := roman.Encode(value)
		if err != nil {
			return cty.UnknownVal(cty.String), function.NewArgError(0, err)
		}
		return cty.StringVal(n.Text()), nil
	},
})

// DecimalFunc decodes a Roman numeral string into its decimal value. Input is
// case-insensitive.
var DecimalFunc = function.New(&function.Spec{
	Description: "Decodes a Roman numeral into its decimal value.",
	Params: []function.Parameter{
		{Name: "numeral", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		n, err := roman.Parse(args[0].AsString())
		if err != nil {
			return cty.UnknownVal(cty.Number), function.NewArgError(0, err)
		}
		return cty.NumberIntVal(int64(n.Value())), nil
	},
})

// Functions returns the numeral functions keyed by the names they are called
// by in HCL. A new map is returned on each call.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"roman":   RomanFunc,
		"decimal": DecimalFunc,
	}
}

// EvalContext returns an HCL evaluation context with the numeral functions
// and no variables.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{Functions: Functions()}
}
