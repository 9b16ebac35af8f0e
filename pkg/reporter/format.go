package reporter

// Format identifies an output format.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// IsValid returns true for a supported format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string into a Format. Empty input selects the
// text format.
func ParseFormat(s string) (Format, bool) {
	if s == "" {
		return FormatText, true
	}
	f := Format(s)
	return f, f.IsValid()
}
