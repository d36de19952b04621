package gauge

// Gauge is the behavior shared by every gauge variant.
type Gauge interface {
	// Update merges the given options over the current ones and patches the
	// DOM fragments whose watched fields changed.
	Update(opts ...Option) error
	// Options returns a copy of the current option record.
	Options() Options
	// Root returns the wrapper element appended to the host.
	Root() *Node
	// Dispose detaches the wrapper from its host.
	Dispose()
	// IsDisposed reports whether Dispose has been called.
	IsDisposed() bool
}

// Kind identifies a gauge variant.
type Kind uint8

const (
	KindArc   Kind = iota // half-circle progress arc
	KindRing              // full-circle progress ring
	KindMeter             // dial with ticks and a needle
)

// String returns the lower-case variant name.
func (k Kind) String() string {
	switch k {
	case KindArc:
		return "arc"
	case KindRing:
		return "ring"
	case KindMeter:
		return "meter"
	default:
		return "unknown"
	}
}

// Severity is the band a value falls in relative to its Steps.
type Severity uint8

const (
	SeverityOK      Severity = iota // inside the warning thresholds
	SeverityWarning                 // between a warning and an error threshold
	SeverityError                   // at or beyond an error threshold
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Stylesheet custom properties referenced by the generated markup.
const (
	ColorOK        = "var(--ui-gauge-color__ok)"
	ColorWarning   = "var(--ui-gauge-color__warning)"
	ColorError     = "var(--ui-gauge-color__error)"
	ColorBorder    = "var(--ui-gauge-color__border)"
	GradientTop    = "var(--ui-gauge-gradient__top)"
	GradientBottom = "var(--ui-gauge-gradient__bottom)"
)

// CSS class names applied to gauge elements.
const (
	classGauge  = "ui-gauge"
	classCanvas = "ui-gauge__canvas"
	classTitle  = "ui-gauge__title"
)
