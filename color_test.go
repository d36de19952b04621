package gauge

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	steps := NewSteps(1, 3, 7, 9)
	tests := []struct {
		value float64
		want  Severity
	}{
		{-5, SeverityError},
		{1, SeverityError},
		{2, SeverityWarning},
		{3, SeverityWarning},
		{5, SeverityOK},
		{7, SeverityWarning},
		{8.5, SeverityWarning},
		{9, SeverityError},
		{20, SeverityError},
	}
	for _, tt := range tests {
		if got := Classify(tt.value, steps); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestClassifyWithoutSteps(t *testing.T) {
	for _, v := range []float64{-100, 0, 100} {
		if got := Classify(v, nil); got != SeverityOK {
			t.Errorf("Classify(%v, nil) = %s, want ok", v, got)
		}
	}
}

func TestClassifyAbsentThresholds(t *testing.T) {
	// Only an upper error threshold.
	steps := NewSteps(math.NaN(), math.NaN(), math.NaN(), 8)
	if got := Classify(-1000, steps); got != SeverityOK {
		t.Errorf("Classify(-1000) = %s, want ok", got)
	}
	if got := Classify(8, steps); got != SeverityError {
		t.Errorf("Classify(8) = %s, want error", got)
	}
}

func TestSeverityColor(t *testing.T) {
	tests := map[Severity]string{
		SeverityOK:      ColorOK,
		SeverityWarning: ColorWarning,
		SeverityError:   ColorError,
	}
	for sev, want := range tests {
		if got := SeverityColor(sev); got != want {
			t.Errorf("SeverityColor(%s) = %q, want %q", sev, got, want)
		}
	}
}

func TestResolveColorOverride(t *testing.T) {
	o := Options{Value: 9.5, Steps: NewSteps(1, 3, 7, 9), Color: "#abcdef"}
	color, sev := resolveColor(o)
	if color != "#abcdef" {
		t.Errorf("color = %q, want override", color)
	}
	if sev != SeverityError {
		t.Errorf("severity = %s, want error", sev)
	}

	o.Color = ""
	if color, _ := resolveColor(o); color != ColorError {
		t.Errorf("color = %q, want %q", color, ColorError)
	}
}
