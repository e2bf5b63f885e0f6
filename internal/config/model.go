package config

// File is the decoded content of one or more config files. A nil field means
// the attribute was not set by any file.
type File struct {
	LogLevel   *string `hcl:"log_level,optional"`
	LogFormat  *string `hcl:"log_format,optional"`
	Mode       *string `hcl:"mode,optional"`
	MaxDecimal *int    `hcl:"max_decimal,optional"`
}

// Merge copies every attribute set in other onto f.
func (f *File) Merge(other *File) {
	if other == nil {
		return
	}
	if other.LogLevel != nil {
		f.LogLevel = other.LogLevel
	}
	if other.LogFormat != nil {
		f.LogFormat = other.LogFormat
	}
	if other.Mode != nil {
		f.Mode = other.Mode
	}
	if other.MaxDecimal != nil {
		f.MaxDecimal = other.MaxDecimal
	}
}
