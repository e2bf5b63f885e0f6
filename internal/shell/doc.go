// Package shell implements the interactive prompt loop around the Roman
// numeral converter. It asks which direction to convert, reads a value,
// prints the result and keeps asking until it gets input it can convert.
//
// Validation errors from the converter are shown to the user and the prompt
// repeats. Panics from the converter signal a defect and are left to
// propagate.
package shell
