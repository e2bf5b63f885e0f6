// Package config loads romanconv settings from HCL files.
//
// A config path may name a single .hcl file or a directory; every .hcl file
// found is decoded in lexical order and later files override the attributes
// they set. Expressions are evaluated with the numeral functions from
// package numeralexpr, so a file may write max_decimal = decimal("MMMCMXCIX").
package config
