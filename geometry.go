package gauge

import (
	"math"
	"strconv"
	"strings"
)

// num formats a number the way it is written into attributes: the shortest
// decimal that round-trips, without exponent.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// nums joins numbers with spaces, as used by stroke-dasharray.
func nums(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = num(v)
	}
	return strings.Join(parts, " ")
}

// px formats a CSS pixel length, or "" for zero.
func px(v float64) string {
	if v == 0 {
		return ""
	}
	return num(v) + "px"
}

// round4 rounds to four decimal places.
func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// progress returns the position of value within [min, max] as a fraction.
// It is not clamped.
func progress(value, min, max float64) float64 {
	return (value - min) / (max - min)
}

// dashOffset returns the stroke-dashoffset that reveals the fraction of a
// path of length circumference corresponding to value. The result is
// clamped to [0, circumference] so out-of-range values draw an empty or
// full stroke.
func dashOffset(value, min, max, circumference float64) float64 {
	off := (1 - progress(value, min, max)) * circumference
	return math.Max(0, math.Min(circumference, off))
}

// arcPath returns an SVG path drawing a circular arc of radius r from
// (x1, y) to (x2, y), sweeping clockwise.
func arcPath(x1, y, r float64, largeArc int, x2 float64) string {
	return "M " + num(x1) + " " + num(y) +
		" A " + num(r) + " " + num(r) + " 0 " + strconv.Itoa(largeArc) + " 1 " +
		num(x2) + " " + num(y)
}

// tickLabelText formats a tick value with one decimal, dropping a trailing ".0".
func tickLabelText(v float64) string {
	// Halves round away from zero.
	s := strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	if s == "-0" {
		return "0"
	}
	return s
}

// valueText renders a value with the gauge's formatter, or as a plain
// number when none is set.
func valueText(o Options) string {
	if o.FormatValue != nil {
		return o.FormatValue(o.Value)
	}
	return num(o.Value)
}

// validateCommon checks the options every variant depends on.
func validateCommon(kind Kind, o Options) error {
	if !(o.Size > 0) {
		return newConfigError(kind, FieldSize, o.Size, "must be positive")
	}
	if o.Thickness < 0 {
		return newConfigError(kind, FieldThickness, o.Thickness, "must not be negative")
	}
	if o.Thickness >= o.Size {
		return newConfigError(kind, FieldThickness, o.Thickness, "must be less than size "+num(o.Size))
	}
	if !(o.Max > o.Min) {
		return newConfigError(kind, FieldMax, o.Max, "must be greater than min "+num(o.Min))
	}
	if o.Steps != nil {
		prev := math.Inf(-1)
		for _, t := range o.Steps {
			if math.IsNaN(t) {
				continue
			}
			if t < prev {
				return newConfigError(kind, FieldSteps, *o.Steps, "thresholds must be ascending")
			}
			prev = t
		}
	}
	return nil
}
