package gauge

import (
	"math"
	"strings"
)

// Field identifies one option key. Hooks watch sets of fields, and partial
// updates report which fields they touch.
type Field uint8

const (
	FieldValue Field = iota
	FieldMin
	FieldMax
	FieldLabel
	FieldSize
	FieldWidth
	FieldHeight
	FieldThickness
	FieldTitle
	FieldColor
	FieldSteps
	FieldID
	FieldHideValue
	FieldFormatValue
	FieldTicks
	FieldSubTicks
	FieldCircle
	FieldTickLabelsInside
	FieldTickLabelOffset

	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldValue:            "value",
	FieldMin:              "min",
	FieldMax:              "max",
	FieldLabel:            "label",
	FieldSize:             "size",
	FieldWidth:            "width",
	FieldHeight:           "height",
	FieldThickness:        "thickness",
	FieldTitle:            "title",
	FieldColor:            "color",
	FieldSteps:            "steps",
	FieldID:               "id",
	FieldHideValue:        "hideValue",
	FieldFormatValue:      "formatValue",
	FieldTicks:            "ticks",
	FieldSubTicks:         "subTicks",
	FieldCircle:           "circle",
	FieldTickLabelsInside: "tickLabelsInside",
	FieldTickLabelOffset:  "tickLabelOffset",
}

// String returns the option key name.
func (f Field) String() string {
	if f >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// FieldSet is a set of Fields stored as a bitmask.
type FieldSet uint32

// Fields builds a FieldSet from the given fields.
func Fields(fs ...Field) FieldSet {
	var s FieldSet
	for _, f := range fs {
		s |= 1 << f
	}
	return s
}

// allFields contains every defined Field.
const allFields = FieldSet(1<<fieldCount - 1)

// commonFields are accepted by every gauge variant.
var commonFields = Fields(
	FieldValue, FieldMin, FieldMax, FieldLabel, FieldSize, FieldWidth,
	FieldHeight, FieldThickness, FieldTitle, FieldColor, FieldSteps, FieldID,
	FieldHideValue, FieldFormatValue,
)

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool {
	return s&(1<<f) != 0
}

// Intersects reports whether s and other share at least one field.
func (s FieldSet) Intersects(other FieldSet) bool {
	return s&other != 0
}

// Union returns the fields present in either set.
func (s FieldSet) Union(other FieldSet) FieldSet {
	return s | other
}

// Empty reports whether the set has no fields.
func (s FieldSet) Empty() bool {
	return s == 0
}

// Fields returns the members in declaration order.
func (s FieldSet) Fields() []Field {
	var out []Field
	for f := Field(0); f < fieldCount; f++ {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// String formats the set as "[value max]".
func (s FieldSet) String() string {
	fs := s.Fields()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

// Steps holds the ascending error-low, warn-low, warn-high and error-high
// thresholds. A NaN entry is an absent threshold and never matches.
type Steps [4]float64

// NewSteps returns a Steps value. Steps are compared by pointer when
// detecting changes, so pass a new pointer to force the dependent
// fragments to redraw.
func NewSteps(errorLow, warnLow, warnHigh, errorHigh float64) *Steps {
	return &Steps{errorLow, warnLow, warnHigh, errorHigh}
}

// low returns threshold i, or -Inf when it is absent.
func (s *Steps) low(i int) float64 {
	if math.IsNaN(s[i]) {
		return math.Inf(-1)
	}
	return s[i]
}

// high returns threshold i, or +Inf when it is absent.
func (s *Steps) high(i int) float64 {
	if math.IsNaN(s[i]) {
		return math.Inf(1)
	}
	return s[i]
}

// Options is the full option record shared by all gauge variants. Fields a
// variant does not use are ignored by it.
type Options struct {
	Value     float64
	Min       float64
	Max       float64
	Label     string
	Size      float64 // side of the square viewport
	Width     float64 // wrapper width in CSS pixels, zero leaves it unset
	Height    float64 // wrapper height in CSS pixels, zero leaves it unset
	Thickness float64 // stroke width
	Title     string
	Color     string // overrides the severity color when set
	Steps     *Steps
	ID        string
	HideValue bool

	// FormatValue renders the value label. Nil prints the plain number.
	FormatValue func(float64) string

	// Meter only.
	Ticks            int
	SubTicks         int
	Circle           float64 // fraction of a revolution the dial sweeps
	TickLabelsInside bool
	TickLabelOffset  float64
}

// Option is one field assignment of a partial update.
type Option struct {
	field Field
	apply func(*Options)
	same  func(*Options) bool
}

// Field returns the option key the assignment targets.
func (o Option) Field() Field {
	return o.field
}

func fieldOption[T comparable](f Field, ptr func(*Options) *T, v T) Option {
	return Option{
		field: f,
		apply: func(o *Options) { *ptr(o) = v },
		same:  func(o *Options) bool { return *ptr(o) == v },
	}
}

// WithValue sets the displayed value. Out-of-range values are allowed.
func WithValue(v float64) Option {
	return fieldOption(FieldValue, func(o *Options) *float64 { return &o.Value }, v)
}

// WithMin sets the lower bound of the scale.
func WithMin(v float64) Option {
	return fieldOption(FieldMin, func(o *Options) *float64 { return &o.Min }, v)
}

// WithMax sets the upper bound of the scale.
func WithMax(v float64) Option {
	return fieldOption(FieldMax, func(o *Options) *float64 { return &o.Max }, v)
}

// WithLabel sets the unit label.
func WithLabel(s string) Option {
	return fieldOption(FieldLabel, func(o *Options) *string { return &o.Label }, s)
}

// WithSize sets the viewport side length.
func WithSize(v float64) Option {
	return fieldOption(FieldSize, func(o *Options) *float64 { return &o.Size }, v)
}

// WithWidth sets the wrapper width in CSS pixels.
func WithWidth(v float64) Option {
	return fieldOption(FieldWidth, func(o *Options) *float64 { return &o.Width }, v)
}

// WithHeight sets the wrapper height in CSS pixels.
func WithHeight(v float64) Option {
	return fieldOption(FieldHeight, func(o *Options) *float64 { return &o.Height }, v)
}

// WithThickness sets the stroke width.
func WithThickness(v float64) Option {
	return fieldOption(FieldThickness, func(o *Options) *float64 { return &o.Thickness }, v)
}

// WithTitle sets the title shown above the gauge. Empty removes it.
func WithTitle(s string) Option {
	return fieldOption(FieldTitle, func(o *Options) *string { return &o.Title }, s)
}

// WithColor overrides the severity color. Empty restores it.
func WithColor(s string) Option {
	return fieldOption(FieldColor, func(o *Options) *string { return &o.Color }, s)
}

// WithSteps sets the severity thresholds. Nil disables classification.
func WithSteps(s *Steps) Option {
	return fieldOption(FieldSteps, func(o *Options) **Steps { return &o.Steps }, s)
}

// WithID sets the identifier used to derive SVG element ids.
func WithID(s string) Option {
	return fieldOption(FieldID, func(o *Options) *string { return &o.ID }, s)
}

// WithHideValue hides the numeric value, leaving only the label.
func WithHideValue(b bool) Option {
	return fieldOption(FieldHideValue, func(o *Options) *bool { return &o.HideValue }, b)
}

// WithFormatValue sets the value formatter. Func values cannot be compared,
// so this option always counts as a change.
func WithFormatValue(fn func(float64) string) Option {
	return Option{
		field: FieldFormatValue,
		apply: func(o *Options) { o.FormatValue = fn },
		same:  func(*Options) bool { return false },
	}
}

// WithTicks sets the number of major ticks on a meter.
func WithTicks(n int) Option {
	return fieldOption(FieldTicks, func(o *Options) *int { return &o.Ticks }, n)
}

// WithSubTicks sets the number of minor ticks between two major ticks.
func WithSubTicks(n int) Option {
	return fieldOption(FieldSubTicks, func(o *Options) *int { return &o.SubTicks }, n)
}

// WithCircle sets the fraction of a full revolution the dial sweeps.
func WithCircle(v float64) Option {
	return fieldOption(FieldCircle, func(o *Options) *float64 { return &o.Circle }, v)
}

// WithTickLabelsInside places tick labels inside the dial.
func WithTickLabelsInside(b bool) Option {
	return fieldOption(FieldTickLabelsInside, func(o *Options) *bool { return &o.TickLabelsInside }, b)
}

// WithTickLabelOffset sets the radial distance of tick labels from the dial.
// Zero selects the size-relative default.
func WithTickLabelOffset(v float64) Option {
	return fieldOption(FieldTickLabelOffset, func(o *Options) *float64 { return &o.TickLabelOffset }, v)
}

// optionFields returns the set of fields the options assign.
func optionFields(opts []Option) FieldSet {
	var s FieldSet
	for _, o := range opts {
		s |= 1 << o.field
	}
	return s
}

// merge applies supplied over defaults over a freshly generated id.
func merge(defaults Options, supplied []Option) Options {
	out := defaults
	if out.ID == "" {
		out.ID = newID()
	}
	for _, o := range supplied {
		o.apply(&out)
	}
	return out
}

// suppliedSize returns the last size assigned by opts, or zero.
func suppliedSize(opts []Option) float64 {
	var probe Options
	for _, o := range opts {
		if o.field == FieldSize {
			o.apply(&probe)
		}
	}
	return probe.Size
}

// numericFields lists the float fields ScaleDefaults may rescale.
var numericFields = []struct {
	field Field
	ptr   func(*Options) *float64
}{
	{FieldValue, func(o *Options) *float64 { return &o.Value }},
	{FieldMin, func(o *Options) *float64 { return &o.Min }},
	{FieldMax, func(o *Options) *float64 { return &o.Max }},
	{FieldSize, func(o *Options) *float64 { return &o.Size }},
	{FieldWidth, func(o *Options) *float64 { return &o.Width }},
	{FieldHeight, func(o *Options) *float64 { return &o.Height }},
	{FieldThickness, func(o *Options) *float64 { return &o.Thickness }},
	{FieldCircle, func(o *Options) *float64 { return &o.Circle }},
	{FieldTickLabelOffset, func(o *Options) *float64 { return &o.TickLabelOffset }},
}

// ScaleDefaults rescales every numeric field of defaults not named in skip
// by size/defaults.Size. It returns defaults unchanged when size is zero,
// defaults.Size is zero, or the two are equal. Integer fields are rounded.
func ScaleDefaults(defaults Options, size float64, skip FieldSet) Options {
	if size == 0 || defaults.Size == 0 || size == defaults.Size {
		return defaults
	}
	out := defaults
	scale := size / defaults.Size
	for _, nf := range numericFields {
		if skip.Has(nf.field) {
			continue
		}
		*nf.ptr(&out) *= scale
	}
	if !skip.Has(FieldTicks) {
		out.Ticks = int(math.Round(float64(out.Ticks) * scale))
	}
	if !skip.Has(FieldSubTicks) {
		out.SubTicks = int(math.Round(float64(out.SubTicks) * scale))
	}
	return out
}
