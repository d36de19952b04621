package gauge

import "math"

var ringDefaults = Options{
	Value:     0,
	Min:       0,
	Max:       10,
	Size:      100,
	Thickness: 20,
}

// RingData is the derived geometry of a ring gauge.
type RingData struct {
	Options

	R             float64 // ring radius
	Circumference float64 // length of the full circle
	HS            float64 // half size, the ring center
	DashOffset    float64 // clamped to [0, Circumference]
	MaskID        string
	GradientID    string
	ResolvedColor string
	Severity      Severity
}

// DeriveRing computes ring geometry from options.
func DeriveRing(o Options) (RingData, error) {
	if err := validateCommon(KindRing, o); err != nil {
		return RingData{}, err
	}
	r := (o.Size - o.Thickness - 1) * .5
	circumference := 2 * math.Pi * r
	color, sev := resolveColor(o)
	return RingData{
		Options:       o,
		R:             r,
		Circumference: circumference,
		HS:            o.Size * .5,
		DashOffset:    dashOffset(o.Value, o.Min, o.Max, circumference),
		MaskID:        maskID(o.ID),
		GradientID:    gradientID(o.ID),
		ResolvedColor: color,
		Severity:      sev,
	}, nil
}

// Ring is a full-circle gauge filled clockwise from 12 o'clock.
type Ring struct {
	base[RingData]
}

// circleAttrs positions a circle element on the ring.
func circleAttrs(c *Node, d RingData, strokeWidth float64) {
	c.SetAttr("cx", num(d.HS))
	c.SetAttr("cy", num(d.HS))
	c.SetAttr("r", num(d.R))
	c.SetAttr("stroke-width", num(strokeWidth))
}

// NewRing builds a ring gauge, renders it once and appends it to host.
// A nil host leaves the gauge detached.
func NewRing(host *Node, opts ...Option) (*Ring, error) {
	defaults := ScaleDefaults(ringDefaults, suppliedSize(opts), Fields(FieldMin, FieldMax, FieldValue))
	g := &Ring{}
	e := newEngine(KindRing, commonFields, merge(defaults, opts), DeriveRing)
	g.eng = e

	wrapper, canvas := newWrapper(e, "ui-gauge-ring")
	g.wrapper = wrapper

	svg := NewSVGElement("svg")
	canvas.AddChild(svg)
	e.addHook(Fields(FieldSize), func(d RingData) {
		svg.SetAttr("viewBox", "0 0 "+num(d.Size)+" "+num(d.Size))
	})

	defs := newDefs(e, func(d RingData) string { return d.GradientID })
	mask := NewSVGElement("mask")
	e.addHook(Fields(FieldID), func(d RingData) {
		mask.SetAttr("id", d.MaskID)
	})
	maskCircle := NewSVGElement("circle")
	maskCircle.SetAttr("stroke", "#fff")
	maskCircle.SetAttr("fill", "none")
	e.addHook(Fields(FieldSize, FieldThickness), func(d RingData) {
		circleAttrs(maskCircle, d, d.Thickness)
	})
	mask.AddChild(maskCircle)
	defs.AddChild(mask)
	svg.AddChild(defs)

	border := NewSVGElement("circle")
	border.AddClass("ui-gauge-ring__border")
	e.addHook(Fields(FieldSize, FieldThickness), func(d RingData) {
		circleAttrs(border, d, d.Thickness+1)
	})
	svg.AddChild(border)

	group := NewSVGElement("g")
	e.addHook(Fields(FieldID), func(d RingData) {
		group.SetAttr("mask", url(d.MaskID))
	})
	svg.AddChild(group)

	rect := NewSVGElement("rect")
	rect.SetAttr("x", "0")
	rect.SetAttr("y", "0")
	rect.SetAttr("fill", "transparent")
	e.addHook(Fields(FieldSize), func(d RingData) {
		rect.SetAttr("width", num(d.Size))
		rect.SetAttr("height", num(d.Size))
	})
	group.AddChild(rect)

	bg := NewSVGElement("circle")
	bg.AddClass("ui-gauge-ring__bg")
	group.AddChild(bg)
	e.addHook(Fields(FieldSize, FieldThickness), func(d RingData) {
		circleAttrs(bg, d, d.Thickness+2)
	})
	e.addHook(Fields(FieldID), func(d RingData) {
		bg.SetAttr("stroke", url(d.GradientID))
	})

	fg := NewSVGElement("circle")
	fg.AddClass("ui-gauge-ring__fg")
	group.AddChild(fg)
	e.addHook(Fields(FieldSize, FieldThickness, FieldValue, FieldMin, FieldMax, FieldColor, FieldSteps), func(d RingData) {
		circleAttrs(fg, d, d.Thickness+2)
		fg.SetAttr("transform", "rotate(-90 "+num(d.HS)+" "+num(d.HS)+")")
		fg.SetAttr("stroke", d.ResolvedColor)
		fg.SetAttr("stroke-dasharray", num(d.Circumference))
		fg.SetAttr("stroke-dashoffset", num(d.DashOffset))
	})

	label := NewElement("div")
	label.AddClass("ui-gauge-ring__label")
	canvas.AddChild(label)
	e.addHook(Fields(FieldValue, FieldLabel, FieldHideValue, FieldFormatValue), func(d RingData) {
		if d.HideValue {
			label.SetText(d.Label)
			return
		}
		label.SetText(valueText(d.Options) + " " + d.Label)
	})

	if err := g.attach(host); err != nil {
		return nil, err
	}
	return g, nil
}
