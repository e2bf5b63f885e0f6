package numeralexpr

import (
	"errors"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/romanconv/internal/roman"
	"github.com/zclconf/go-cty/cty/function"
)

// RaiseInternal panics with the first *roman.InternalError found in diags.
//
// go-cty recovers panics raised inside a function implementation and HCL turns
// them into an "Error in function call" diagnostic. Callers evaluating
// expressions with these functions pass the resulting diagnostics here so an
// inconsistent encoding table stays a fatal fault.
func RaiseInternal(diags hcl.Diagnostics) {
	for _, diag := range diags {
		extra, ok := hcl.DiagnosticExtra[hclsyntax.FunctionCallDiagExtra](diag)
		if !ok {
			continue
		}
		var panicErr function.PanicError
		if !errors.As(extra.FunctionCallError(), &panicErr) {
			continue
		}
		if internalErr, ok := panicErr.Value.(*roman.InternalError); ok {
			panic(internalErr)
		}
	}
}
