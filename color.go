package gauge

// Classify maps value to a severity band. With no steps every value is OK.
// A value at or beyond an error threshold is an error, else a value at or
// beyond a warning threshold is a warning.
func Classify(value float64, steps *Steps) Severity {
	if steps == nil {
		return SeverityOK
	}
	if value <= steps.low(0) || value >= steps.high(3) {
		return SeverityError
	}
	if value <= steps.low(1) || value >= steps.high(2) {
		return SeverityWarning
	}
	return SeverityOK
}

// SeverityColor returns the stylesheet color for a severity.
func SeverityColor(s Severity) string {
	switch s {
	case SeverityWarning:
		return ColorWarning
	case SeverityError:
		return ColorError
	default:
		return ColorOK
	}
}

// resolveColor returns the override color when set, otherwise the color of
// the value's severity.
func resolveColor(o Options) (string, Severity) {
	sev := Classify(o.Value, o.Steps)
	if o.Color != "" {
		return o.Color, sev
	}
	return SeverityColor(sev), sev
}
