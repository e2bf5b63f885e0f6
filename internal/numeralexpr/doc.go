// Package numeralexpr exposes the Roman numeral converter to HCL expressions
// as cty functions, so configuration files can write values like
// decimal("MMMCMXCIX") or roman(14).
package numeralexpr
