package gauge

import "math"

var arcDefaults = Options{
	Value:     0,
	Min:       0,
	Max:       10,
	Size:      100,
	Thickness: 20,
}

// ArcData is the derived geometry of an arc gauge.
type ArcData struct {
	Options

	R             float64 // arc radius
	Circumference float64 // length of the half circle
	HT            float64 // half thickness
	HS            float64 // half size
	DashOffset    float64 // clamped to [0, Circumference]
	MaskID        string
	GradientID    string
	ResolvedColor string
	Severity      Severity
}

// Path returns the half-circle path shared by the mask, border, background
// and foreground.
func (d ArcData) Path() string {
	return arcPath(d.HT, d.HS, d.R, 0, d.Size-d.HT)
}

// DeriveArc computes arc geometry from options.
func DeriveArc(o Options) (ArcData, error) {
	if err := validateCommon(KindArc, o); err != nil {
		return ArcData{}, err
	}
	r := (o.Size - o.Thickness - 1) * .5
	circumference := math.Pi * r
	color, sev := resolveColor(o)
	return ArcData{
		Options:       o,
		R:             r,
		Circumference: circumference,
		HT:            o.Thickness * .5,
		HS:            o.Size * .5,
		DashOffset:    dashOffset(o.Value, o.Min, o.Max, circumference),
		MaskID:        maskID(o.ID),
		GradientID:    gradientID(o.ID),
		ResolvedColor: color,
		Severity:      sev,
	}, nil
}

// Arc is a half-circle gauge filled from left to right.
type Arc struct {
	base[ArcData]
}

// NewArc builds an arc gauge, renders it once and appends it to host.
// A nil host leaves the gauge detached.
func NewArc(host *Node, opts ...Option) (*Arc, error) {
	defaults := ScaleDefaults(arcDefaults, suppliedSize(opts), Fields(FieldMin, FieldMax, FieldValue))
	a := &Arc{}
	e := newEngine(KindArc, commonFields, merge(defaults, opts), DeriveArc)
	a.eng = e

	wrapper, canvas := newWrapper(e, "ui-gauge-arc")
	a.wrapper = wrapper

	svg := NewSVGElement("svg")
	canvas.AddChild(svg)
	e.addHook(Fields(FieldSize), func(d ArcData) {
		svg.SetAttr("viewBox", "0 0 "+num(d.Size)+" "+num(d.Size))
	})

	defs := newDefs(e, func(d ArcData) string { return d.GradientID })
	mask := NewSVGElement("mask")
	e.addHook(Fields(FieldID), func(d ArcData) {
		mask.SetAttr("id", d.MaskID)
	})
	maskPath := NewSVGElement("path")
	maskPath.SetAttr("stroke", "#fff")
	maskPath.SetAttr("fill", "none")
	e.addHook(Fields(FieldSize, FieldThickness), func(d ArcData) {
		maskPath.SetAttr("d", d.Path())
		maskPath.SetAttr("stroke-width", num(d.Thickness))
	})
	mask.AddChild(maskPath)
	defs.AddChild(mask)
	svg.AddChild(defs)

	outer := NewSVGElement("g")
	e.addHook(Fields(FieldSize), func(d ArcData) {
		outer.SetAttr("transform", "translate(0 "+num(d.Size*.25)+")")
	})
	svg.AddChild(outer)

	border := NewSVGElement("path")
	border.AddClass("ui-gauge-arc__border")
	outer.AddChild(border)
	e.addHook(Fields(FieldSize, FieldThickness), func(d ArcData) {
		border.SetAttr("d", d.Path())
		border.SetAttr("stroke-width", num(d.Thickness+1))
	})

	borderHead := NewSVGElement("rect")
	borderHead.AddClass("ui-gauge-arc__border-head")
	borderHead.SetAttr("x", "-.5")
	borderHead.SetAttr("height", ".5")
	outer.AddChild(borderHead)
	e.addHook(Fields(FieldSize, FieldThickness), func(d ArcData) {
		borderHead.SetAttr("y", num(d.HS))
		borderHead.SetAttr("width", num(d.Thickness+1))
	})

	borderTail := NewSVGElement("rect")
	borderTail.AddClass("ui-gauge-arc__border-tail")
	borderTail.SetAttr("height", ".5")
	outer.AddChild(borderTail)
	e.addHook(Fields(FieldSize, FieldThickness), func(d ArcData) {
		borderTail.SetAttr("x", num(d.Size-d.Thickness-.5))
		borderTail.SetAttr("y", num(d.HS))
		borderTail.SetAttr("width", num(d.Thickness+1))
	})

	inner := NewSVGElement("g")
	e.addHook(Fields(FieldID), func(d ArcData) {
		inner.SetAttr("mask", url(d.MaskID))
	})
	outer.AddChild(inner)

	rect := NewSVGElement("rect")
	rect.SetAttr("fill", "transparent")
	rect.SetAttr("x", "0")
	rect.SetAttr("y", "0")
	inner.AddChild(rect)
	e.addHook(Fields(FieldSize), func(d ArcData) {
		rect.SetAttr("width", num(d.Size))
		rect.SetAttr("height", num(d.Size))
	})

	bg := NewSVGElement("path")
	bg.AddClass("ui-gauge-arc__bg")
	inner.AddChild(bg)
	e.addHook(Fields(FieldSize, FieldThickness), func(d ArcData) {
		bg.SetAttr("d", d.Path())
		bg.SetAttr("stroke-width", num(d.Thickness+2))
	})
	e.addHook(Fields(FieldID), func(d ArcData) {
		bg.SetAttr("stroke", url(d.GradientID))
	})

	fg := NewSVGElement("path")
	fg.AddClass("ui-gauge-arc__fg")
	inner.AddChild(fg)
	e.addHook(Fields(FieldSize, FieldThickness, FieldValue, FieldMin, FieldMax, FieldColor, FieldSteps), func(d ArcData) {
		fg.SetAttr("d", d.Path())
		fg.SetAttr("stroke", d.ResolvedColor)
		fg.SetAttr("stroke-width", num(d.Thickness+2))
		fg.SetAttr("stroke-dasharray", num(d.Circumference))
		fg.SetAttr("stroke-dashoffset", num(d.DashOffset))
	})

	minText := NewSVGElement("text")
	minText.SetAttr("text-anchor", "middle")
	minText.SetAttr("dominant-baseline", "hanging")
	outer.AddChild(minText)
	e.addHook(Fields(FieldSize, FieldThickness), func(d ArcData) {
		minText.SetAttr("x", num(d.HT))
		minText.SetAttr("y", num(d.HS+4))
	})
	e.addHook(Fields(FieldMin), func(d ArcData) {
		minText.SetText(num(d.Min))
	})

	maxText := NewSVGElement("text")
	maxText.SetAttr("text-anchor", "middle")
	maxText.SetAttr("dominant-baseline", "hanging")
	outer.AddChild(maxText)
	e.addHook(Fields(FieldSize, FieldThickness), func(d ArcData) {
		maxText.SetAttr("x", num(d.Size-d.HT))
		maxText.SetAttr("y", num(d.HS+4))
	})
	e.addHook(Fields(FieldMax), func(d ArcData) {
		maxText.SetText(num(d.Max))
	})

	label := NewElement("div")
	label.AddClass("ui-gauge-arc__label")
	canvas.AddChild(label)
	e.addHook(Fields(FieldValue, FieldLabel, FieldHideValue, FieldFormatValue), func(d ArcData) {
		if d.HideValue {
			label.SetText(d.Label)
			return
		}
		label.SetText(valueText(d.Options) + " " + d.Label)
	})

	if err := a.attach(host); err != nil {
		return nil, err
	}
	return a, nil
}
