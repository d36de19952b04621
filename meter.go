package gauge

import "math"

var meterDefaults = Options{
	Value:            0,
	Min:              0,
	Max:              10,
	Size:             100,
	Thickness:        4,
	Ticks:            5,
	SubTicks:         4,
	Circle:           .25,
	TickLabelsInside: false,
}

// meterFields are the option keys a meter accepts.
var meterFields = commonFields.Union(Fields(
	FieldTicks, FieldSubTicks, FieldCircle, FieldTickLabelsInside, FieldTickLabelOffset,
))

const (
	meterTickSize    = 1.0
	meterSubTickSize = .5
)

// TickLabel is one positioned scale label of a meter.
type TickLabel struct {
	X, Y float64
	Text string
}

// MeterData is the derived geometry of a meter gauge.
type MeterData struct {
	Options

	SizeScale float64 // Size relative to the default of 100
	R         float64 // tick arc radius
	TR        float64 // sub-tick arc radius
	IR        float64 // color band radius
	TLR       float64 // tick label radius
	HS        float64 // half size, the dial center
	HT        float64 // half thickness

	Circumference      float64 // length of the tick arc
	TickCircumference  float64 // length of the sub-tick arc
	InnerCircumference float64 // length of the color band arc

	Inset  float64 // horizontal inset of the tick arc ends
	IInset float64 // same for the band arc
	TInset float64 // same for the sub-tick arc

	Bottom      float64 // y of the tick arc ends
	BottomTicks float64 // y of the sub-tick arc ends
	BottomScale float64 // y of the band arc ends
	TicksHeight float64
	LeftScale   float64 // x of the band arc start
	RightScale  float64 // x of the band arc end
	ArcFlag     int     // SVG large-arc flag, 1 when the dial sweeps half a turn or more

	TickSize       float64
	SubTickSize    float64
	Dasharray      []float64 // major tick pattern
	SubDasharray   []float64 // minor tick pattern, empty without sub-ticks
	NeedleLength   float64
	NeedleRotation float64 // degrees, zero points straight up; not clamped

	TickLabels    []TickLabel
	WarningDash   []float64 // nil without steps
	ErrorDash     []float64 // nil without steps
	ViewBoxHeight float64
	TickShift     float64 // vertical shift leaving room for outside labels

	MaskID        string
	MarkerID      string
	GradientID    string
	ResolvedColor string
	Severity      Severity
}

// TickPath returns the path carrying the major ticks.
func (d MeterData) TickPath() string {
	return arcPath(d.HT+d.Inset, d.Bottom, d.R, d.ArcFlag, d.Size-d.HT-d.Inset)
}

// SubTickPath returns the path carrying the minor ticks.
func (d MeterData) SubTickPath() string {
	q := d.Thickness * .25
	return arcPath(d.HT+d.TInset-q, d.BottomTicks, d.TR, d.ArcFlag, d.Size-d.HT-d.TInset+q)
}

// ScalePath returns the path carrying the color bands.
func (d MeterData) ScalePath() string {
	return arcPath(d.LeftScale, d.BottomScale, d.IR, d.ArcFlag, d.RightScale)
}

// NeedlePath returns the needle outline pointing up from the dial center.
func (d MeterData) NeedlePath() string {
	return "m " + num(d.HS-1.5) + " " + num(d.HS+6) +
		", 1.5 -" + num(d.NeedleLength) + ", 1.5 " + num(d.NeedleLength) + "z"
}

// arcEnd returns the y coordinate of the ends of an arc of radius r whose
// ends are inset horizontally by inset.
func arcEnd(r, inset, circle float64) float64 {
	h := math.Sqrt(r*r - math.Pow(r-inset, 2))
	if circle >= .5 {
		return r + h
	}
	return r - h
}

// DeriveMeter computes meter geometry from options.
func DeriveMeter(o Options) (MeterData, error) {
	if err := validateCommon(KindMeter, o); err != nil {
		return MeterData{}, err
	}
	if o.Ticks < 2 {
		return MeterData{}, newConfigError(KindMeter, FieldTicks, o.Ticks, "must be at least 2")
	}
	if o.SubTicks < 0 {
		return MeterData{}, newConfigError(KindMeter, FieldSubTicks, o.SubTicks, "must not be negative")
	}
	if !(o.Circle > 0 && o.Circle <= 1) {
		return MeterData{}, newConfigError(KindMeter, FieldCircle, o.Circle, "must be in (0, 1]")
	}

	d := MeterData{Options: o}
	d.SizeScale = o.Size / 100
	d.R = (o.Size - o.Thickness) * .5
	d.TR = d.R + o.Thickness*.25
	d.IR = d.R - o.Thickness - 2

	labelOffset := o.TickLabelOffset
	if labelOffset == 0 {
		labelOffset = 5 * d.SizeScale
		if o.TickLabelsInside {
			labelOffset = -10 * d.SizeScale
		}
	}
	d.TLR = d.R + labelOffset

	d.Circumference = 2 * math.Pi * d.R * o.Circle
	d.TickCircumference = 2 * math.Pi * d.TR * o.Circle
	d.InnerCircumference = 2 * math.Pi * d.IR * o.Circle
	d.HT = o.Thickness * .5
	d.HS = o.Size * .5

	sin := 1 - math.Sin(math.Pi*o.Circle)
	d.Inset = sin * d.R
	d.IInset = sin * d.IR
	d.TInset = sin * d.TR

	d.TickSize = meterTickSize
	d.SubTickSize = meterSubTickSize
	d.NeedleLength = d.HS + o.Thickness
	d.NeedleRotation = 360*o.Circle*progress(o.Value, o.Min, o.Max) - 180*o.Circle

	segments := float64(o.Ticks - 1)
	d.Dasharray = []float64{d.TickSize, d.Circumference/segments - d.TickSize}
	d.SubDasharray = []float64{}
	if o.SubTicks > 0 {
		gap := ((d.TickCircumference/segments - d.TickSize) - float64(o.SubTicks)*d.SubTickSize) / float64(o.SubTicks+1)
		d.SubDasharray = append(d.SubDasharray, 0, d.TickSize+gap)
		for i := 0; i < o.SubTicks; i++ {
			d.SubDasharray = append(d.SubDasharray, d.SubTickSize, gap)
		}
	}

	d.Bottom = arcEnd(d.R, d.Inset, o.Circle) + o.Thickness*.5
	d.LeftScale = d.HT + o.Thickness + 2 + d.IInset
	d.RightScale = o.Size - d.HT - o.Thickness - 2 - d.IInset
	d.BottomScale = arcEnd(d.IR, d.IInset, o.Circle) + o.Thickness + o.Thickness*.5 + 2
	d.TicksHeight = math.Sqrt(d.TR*d.TR - math.Pow(d.TR-d.TInset, 2))
	d.BottomTicks = arcEnd(d.TR, d.TInset, o.Circle) + o.Thickness*.25
	if o.Circle >= .5 {
		d.ArcFlag = 1
	}

	d.TickLabels = make([]TickLabel, o.Ticks)
	for i := range d.TickLabels {
		a := float64(i)*math.Pi*2*o.Circle/segments + math.Pi*.5 + (1-o.Circle)*math.Pi
		d.TickLabels[i] = TickLabel{
			X:    round4(d.HS + math.Cos(a)*d.TLR),
			Y:    round4(d.HS + math.Sin(a)*d.TLR),
			Text: tickLabelText(o.Min + float64(i)*(o.Max-o.Min)/segments),
		}
	}

	if s := o.Steps; s != nil {
		span := o.Max - o.Min
		ic := d.InnerCircumference
		band := func(lo, hi float64) []float64 {
			if math.IsNaN(lo) {
				lo = o.Min
			}
			if math.IsNaN(hi) {
				hi = o.Max
			}
			return []float64{ic * (lo - o.Min) / span, ic * (hi - lo) / span, ic}
		}
		d.WarningDash = band(s[1], s[2])
		d.ErrorDash = band(s[0], s[3])
	}

	if !o.TickLabelsInside {
		d.TickShift = 2 * labelOffset
	}
	d.ViewBoxHeight = o.Size
	if o.Circle < .5 {
		// 1.2 leaves room below the arc for the needle hub.
		d.ViewBoxHeight = o.Size*math.Min(1, o.Circle*1.2) + d.TickShift
	}

	d.MaskID = maskID(o.ID)
	d.MarkerID = markerID(o.ID)
	d.GradientID = gradientID(o.ID)
	d.ResolvedColor, d.Severity = resolveColor(o)
	return d, nil
}

// Meter is a dial gauge with major and minor ticks, tick labels, optional
// color bands and a needle.
type Meter struct {
	base[MeterData]
}

// NewMeter builds a meter gauge, renders it once and appends it to host.
// A nil host leaves the gauge detached.
func NewMeter(host *Node, opts ...Option) (*Meter, error) {
	return newMeter(host, opts)
}

func newMeter(host *Node, opts []Option, extraClasses ...string) (*Meter, error) {
	defaults := ScaleDefaults(meterDefaults, suppliedSize(opts),
		Fields(FieldTicks, FieldSubTicks, FieldCircle, FieldMin, FieldMax, FieldValue))
	m := &Meter{}
	e := newEngine(KindMeter, meterFields, merge(defaults, opts), DeriveMeter)
	m.eng = e

	wrapper, canvas := newWrapper(e, "ui-gauge-meter")
	if len(extraClasses) > 0 {
		wrapper.AddClass(extraClasses...)
	}
	m.wrapper = wrapper

	svg := NewSVGElement("svg")
	canvas.AddChild(svg)
	e.addHook(Fields(FieldSize, FieldCircle, FieldTickLabelsInside, FieldTickLabelOffset), func(d MeterData) {
		svg.SetAttr("viewBox", "0 0 "+num(d.Size)+" "+num(d.ViewBoxHeight))
	})

	defs := NewSVGElement("defs")

	marker := NewSVGElement("marker")
	marker.SetAttr("markerUnits", "userSpaceOnUse")
	marker.SetAttr("orient", "auto")
	defs.AddChild(marker)
	e.addHook(Fields(FieldID), func(d MeterData) {
		marker.SetAttr("id", d.MarkerID)
	})
	e.addHook(Fields(FieldThickness), func(d MeterData) {
		marker.SetAttr("viewBox", "0 0 "+num(d.TickSize)+" "+num(d.Thickness))
		marker.SetAttr("refX", num(d.TickSize*.5))
		marker.SetAttr("refY", num(d.Thickness*.5))
		marker.SetAttr("markerWidth", num(d.TickSize))
		marker.SetAttr("markerHeight", num(d.Thickness))
	})
	markerRect := NewSVGElement("rect")
	markerRect.SetAttr("x", "0")
	markerRect.SetAttr("y", "0")
	marker.AddChild(markerRect)
	e.addHook(Fields(FieldThickness), func(d MeterData) {
		markerRect.SetAttr("width", num(d.TickSize))
		markerRect.SetAttr("height", num(d.Thickness))
	})

	gradient := gradientDef()
	e.addHook(Fields(FieldID), func(d MeterData) {
		gradient.SetAttr("id", d.GradientID)
	})
	defs.AddChild(gradient)

	mask := NewSVGElement("mask")
	e.addHook(Fields(FieldID), func(d MeterData) {
		mask.SetAttr("id", d.MaskID)
	})
	maskPath := NewSVGElement("path")
	maskPath.SetAttr("stroke", "#fff")
	maskPath.SetAttr("fill", "none")
	e.addHook(Fields(FieldSize, FieldThickness, FieldCircle), func(d MeterData) {
		maskPath.SetAttr("d", d.ScalePath())
		maskPath.SetAttr("stroke-width", num(d.Thickness-1))
	})
	mask.AddChild(maskPath)
	defs.AddChild(mask)
	svg.AddChild(defs)

	shift := NewSVGElement("g")
	svg.AddChild(shift)
	e.addHook(Fields(FieldTickLabelsInside, FieldTickLabelOffset, FieldSize), func(d MeterData) {
		shift.SetAttr("transform", "translate(0 "+num(d.TickShift)+")")
	})

	bg := NewSVGElement("circle")
	bg.AddClass("ui-gauge-meter__bg")
	bg.SetAttr("stroke-width", ".5")
	bg.SetAttr("stroke", ColorBorder)
	shift.AddChild(bg)
	e.addHook(Fields(FieldSize), func(d MeterData) {
		bg.SetAttr("cx", num(d.HS))
		bg.SetAttr("cy", num(d.HS))
		bg.SetAttr("r", num(d.HS-.25))
	})
	e.addHook(Fields(FieldID), func(d MeterData) {
		bg.SetAttr("fill", url(d.GradientID))
	})
	e.addHook(Fields(FieldCircle), func(d MeterData) {
		setVisible(bg, d.Circle > .5)
	})

	scale := NewSVGElement("g")
	shift.AddChild(scale)
	e.addHook(Fields(FieldID), func(d MeterData) {
		scale.SetAttr("mask", url(d.MaskID))
	})
	e.addHook(Fields(FieldSteps), func(d MeterData) {
		setVisible(scale, d.Steps != nil)
	})

	scaleKeys := Fields(FieldSize, FieldThickness, FieldCircle, FieldSteps, FieldMin, FieldMax)
	scaleOK := NewSVGElement("path")
	scaleOK.AddClass("ui-gauge-meter__scale", "ui-gauge-meter__scale--ok")
	scale.AddChild(scaleOK)
	e.addHook(Fields(FieldSize, FieldThickness, FieldCircle), func(d MeterData) {
		scaleOK.SetAttr("d", d.ScalePath())
		scaleOK.SetAttr("stroke-width", num(d.Thickness))
	})
	for _, band := range []struct {
		class string
		dash  func(MeterData) []float64
	}{
		{"ui-gauge-meter__scale--warning", func(d MeterData) []float64 { return d.WarningDash }},
		{"ui-gauge-meter__scale--error", func(d MeterData) []float64 { return d.ErrorDash }},
	} {
		p := NewSVGElement("path")
		p.AddClass("ui-gauge-meter__scale", band.class)
		scale.AddChild(p)
		dash := band.dash
		e.addHook(scaleKeys, func(d MeterData) {
			ds := dash(d)
			if ds == nil {
				return
			}
			p.SetAttr("d", d.ScalePath())
			p.SetAttr("stroke-width", num(d.Thickness))
			p.SetAttr("stroke-dasharray", nums(ds))
		})
	}

	ticks := NewSVGElement("path")
	ticks.AddClass("ui-gauge-meter__ticks")
	shift.AddChild(ticks)
	e.addHook(Fields(FieldID), func(d MeterData) {
		ticks.SetAttr("marker-start", url(d.MarkerID))
		ticks.SetAttr("marker-end", url(d.MarkerID))
	})
	e.addHook(Fields(FieldSize, FieldThickness, FieldTicks, FieldCircle), func(d MeterData) {
		ticks.SetAttr("d", d.TickPath())
		ticks.SetAttr("stroke-width", num(d.Thickness))
		ticks.SetAttr("stroke-dashoffset", num(d.TickSize*.5))
		ticks.SetAttr("stroke-dasharray", nums(d.Dasharray))
	})

	subTicks := NewSVGElement("path")
	subTicks.AddClass("ui-gauge-meter__subticks")
	shift.AddChild(subTicks)
	e.addHook(Fields(FieldSize, FieldThickness, FieldTicks, FieldSubTicks, FieldCircle), func(d MeterData) {
		subTicks.SetAttr("d", d.SubTickPath())
		subTicks.SetAttr("stroke-width", num(d.HT))
		subTicks.SetAttr("stroke-dashoffset", num(d.TickSize*.5))
		subTicks.SetAttr("stroke-dasharray", nums(d.SubDasharray))
		setVisible(subTicks, len(d.SubDasharray) > 0)
	})

	tickLabels := NewSVGElement("g")
	shift.AddChild(tickLabels)
	e.addHook(Fields(FieldTicks, FieldMin, FieldMax, FieldSize, FieldThickness, FieldCircle,
		FieldTickLabelsInside, FieldTickLabelOffset), func(d MeterData) {
		tickLabels.RemoveChildren()
		for _, tl := range d.TickLabels {
			t := NewSVGElement("text")
			t.AddClass("ui-gauge-meter__ticklabel")
			t.SetAttr("x", num(tl.X))
			t.SetAttr("y", num(tl.Y))
			t.SetText(tl.Text)
			tickLabels.AddChild(t)
		}
	})

	label := NewSVGElement("text")
	label.AddClass("ui-gauge-meter__label")
	shift.AddChild(label)
	e.addHook(Fields(FieldLabel), func(d MeterData) {
		label.SetText(d.Label)
	})
	e.addHook(Fields(FieldSize, FieldCircle), func(d MeterData) {
		label.SetAttr("x", num(d.HS))
		label.SetAttr("y", num(d.Size*math.Min(.4, d.Circle)))
	})

	needleGroup := NewSVGElement("g")
	needleGroup.AddClass("ui-gauge-meter__needle")
	shift.AddChild(needleGroup)
	e.addHook(Fields(FieldSize, FieldValue, FieldMin, FieldMax, FieldCircle), func(d MeterData) {
		needleGroup.SetAttr("style", "transform: rotate("+num(d.NeedleRotation)+"deg); transform-origin: "+
			num(d.HS)+"px "+num(d.HS)+"px;")
	})

	needle := NewSVGElement("path")
	needleGroup.AddChild(needle)
	e.addHook(Fields(FieldSize, FieldThickness), func(d MeterData) {
		needle.SetAttr("d", d.NeedlePath())
	})

	dot := NewSVGElement("circle")
	dot.SetAttr("r", "4")
	needleGroup.AddChild(dot)
	e.addHook(Fields(FieldSize), func(d MeterData) {
		dot.SetAttr("cx", num(d.HS))
		dot.SetAttr("cy", num(d.HS))
	})

	value := NewElement("div")
	value.AddClass("ui-gauge-meter__value")
	canvas.AddChild(value)
	e.addHook(Fields(FieldValue, FieldHideValue, FieldFormatValue), func(d MeterData) {
		if d.HideValue {
			value.SetStyle("visibility", "hidden")
			return
		}
		value.SetStyle()
		value.SetText(valueText(d.Options))
	})

	if err := m.attach(host); err != nil {
		return nil, err
	}
	return m, nil
}

// setVisible clears the visibility attribute, or hides the element.
func setVisible(n *Node, visible bool) {
	if visible {
		n.RemoveAttr("visibility")
		return
	}
	n.SetAttr("visibility", "hidden")
}
