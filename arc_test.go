package gauge

import (
	"errors"
	"math"
	"testing"
)

// --- Derived geometry ---

func TestDeriveArcHalfScale(t *testing.T) {
	d, err := DeriveArc(merge(arcDefaults, []Option{WithValue(5)}))
	if err != nil {
		t.Fatalf("DeriveArc: %v", err)
	}
	if d.R != 39.5 {
		t.Errorf("R = %f, want 39.5", d.R)
	}
	if !approx(d.Circumference, math.Pi*39.5, 1e-9) {
		t.Errorf("Circumference = %f, want ~124.09", d.Circumference)
	}
	if !approx(d.DashOffset, d.Circumference/2, 1e-9) {
		t.Errorf("DashOffset = %f, want ~%f", d.DashOffset, d.Circumference/2)
	}
	if d.HT != 10 || d.HS != 50 {
		t.Errorf("HT, HS = %v, %v, want 10, 50", d.HT, d.HS)
	}
	if got, want := d.Path(), "M 10 50 A 39.5 39.5 0 0 1 90 50"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestDeriveArcClampsOffset(t *testing.T) {
	low, _ := DeriveArc(merge(arcDefaults, []Option{WithValue(-5)}))
	if low.DashOffset != low.Circumference {
		t.Errorf("below min DashOffset = %f, want %f", low.DashOffset, low.Circumference)
	}
	high, _ := DeriveArc(merge(arcDefaults, []Option{WithValue(15)}))
	if high.DashOffset != 0 {
		t.Errorf("above max DashOffset = %f, want 0", high.DashOffset)
	}
}

func TestDeriveArcOffsetDecreasesWithValue(t *testing.T) {
	prev := math.Inf(1)
	for v := 0.0; v <= 10; v += .5 {
		d, err := DeriveArc(merge(arcDefaults, []Option{WithValue(v)}))
		if err != nil {
			t.Fatalf("DeriveArc(%v): %v", v, err)
		}
		if d.DashOffset > prev {
			t.Errorf("DashOffset(%v) = %f, above previous %f", v, d.DashOffset, prev)
		}
		prev = d.DashOffset
	}
}

func TestDeriveArcIDs(t *testing.T) {
	d, _ := DeriveArc(merge(arcDefaults, []Option{WithID("cpu")}))
	if d.MaskID != "mask-cpu" || d.GradientID != "gradient-cpu" {
		t.Errorf("ids = %q, %q", d.MaskID, d.GradientID)
	}
}

// --- DOM ---

func TestNewArcBuildsDOM(t *testing.T) {
	host := NewElement("div")
	a, err := NewArc(host, WithValue(5), WithLabel("km/h"), WithID("speed"))
	if err != nil {
		t.Fatalf("NewArc: %v", err)
	}
	if a.Root().Parent() == nil || a.Root().Parent().HTMLNode() != host.HTMLNode() {
		t.Fatal("wrapper not appended to host")
	}
	if !a.Root().HasClass("ui-gauge") || !a.Root().HasClass("ui-gauge-arc") {
		t.Errorf("wrapper class = %q", a.Root().AttrOr("class", ""))
	}
	if got := attrOf(t, a, "svg", "viewBox"); got != "0 0 100 100" {
		t.Errorf("viewBox = %q, want 0 0 100 100", got)
	}
	if got := attrOf(t, a, "mask", "id"); got != "mask-speed" {
		t.Errorf("mask id = %q, want mask-speed", got)
	}
	if got := attrOf(t, a, "linearGradient", "id"); got != "gradient-speed" {
		t.Errorf("gradient id = %q, want gradient-speed", got)
	}
	if got := attrOf(t, a, ".ui-gauge-arc__bg", "stroke"); got != "url(#gradient-speed)" {
		t.Errorf("bg stroke = %q", got)
	}
	if got := attrOf(t, a, "g g", "mask"); got != "url(#mask-speed)" {
		t.Errorf("inner group mask = %q", got)
	}

	d, _ := a.Derive()
	if got := floatAttr(t, a, ".ui-gauge-arc__fg", "stroke-dashoffset"); !approx(got, d.DashOffset, 1e-9) {
		t.Errorf("fg dashoffset = %f, want %f", got, d.DashOffset)
	}
	if got := attrOf(t, a, ".ui-gauge-arc__fg", "stroke-width"); got != "22" {
		t.Errorf("fg stroke-width = %q, want 22", got)
	}
	if got := attrOf(t, a, ".ui-gauge-arc__fg", "stroke"); got != ColorOK {
		t.Errorf("fg stroke = %q, want %q", got, ColorOK)
	}
	if got := textOf(t, a, ".ui-gauge-arc__label"); got != "5 km/h" {
		t.Errorf("label = %q, want %q", got, "5 km/h")
	}
	if a.Root().Find(".ui-gauge__title").Length() != 0 {
		t.Error("title should be absent without a title option")
	}
}

func TestArcMinMaxText(t *testing.T) {
	a, err := NewArc(nil, WithMin(-20), WithMax(40))
	if err != nil {
		t.Fatalf("NewArc: %v", err)
	}
	texts := a.Root().Find("text")
	if texts.Length() != 2 {
		t.Fatalf("text elements = %d, want 2", texts.Length())
	}
	if got := texts.Eq(0).Text(); got != "-20" {
		t.Errorf("min text = %q, want -20", got)
	}
	if got := texts.Eq(1).Text(); got != "40" {
		t.Errorf("max text = %q, want 40", got)
	}
	if err := a.Update(WithMax(80)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := a.Root().Find("text").Eq(1).Text(); got != "80" {
		t.Errorf("max text after update = %q, want 80", got)
	}
}

func TestArcUpdateValue(t *testing.T) {
	a, _ := NewArc(nil, WithValue(0))
	before := floatAttr(t, a, ".ui-gauge-arc__fg", "stroke-dashoffset")
	if err := a.Update(WithValue(10)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	after := floatAttr(t, a, ".ui-gauge-arc__fg", "stroke-dashoffset")
	if after != 0 {
		t.Errorf("full dashoffset = %f, want 0", after)
	}
	if before <= after {
		t.Errorf("dashoffset did not shrink: %f -> %f", before, after)
	}
	if a.Options().Value != 10 {
		t.Errorf("Options().Value = %v, want 10", a.Options().Value)
	}
}

func TestArcSeverityColor(t *testing.T) {
	a, _ := NewArc(nil, WithValue(9.5), WithSteps(NewSteps(1, 3, 7, 9)))
	if got := attrOf(t, a, ".ui-gauge-arc__fg", "stroke"); got != ColorError {
		t.Errorf("fg stroke = %q, want %q", got, ColorError)
	}
	_ = a.Update(WithValue(5))
	if got := attrOf(t, a, ".ui-gauge-arc__fg", "stroke"); got != ColorOK {
		t.Errorf("fg stroke = %q, want %q", got, ColorOK)
	}
	_ = a.Update(WithColor("#0f0"))
	if got := attrOf(t, a, ".ui-gauge-arc__fg", "stroke"); got != "#0f0" {
		t.Errorf("fg stroke = %q, want override", got)
	}
}

func TestArcLabelFormatting(t *testing.T) {
	a, _ := NewArc(nil, WithValue(3), WithLabel("%"))
	_ = a.Update(WithHideValue(true))
	if got := textOf(t, a, ".ui-gauge-arc__label"); got != "%" {
		t.Errorf("hidden value label = %q, want %%", got)
	}
	_ = a.Update(WithHideValue(false), WithFormatValue(func(v float64) string { return "~" + num(v*10) }))
	if got := textOf(t, a, ".ui-gauge-arc__label"); got != "~30 %" {
		t.Errorf("formatted label = %q, want %q", got, "~30 %")
	}
}

func TestArcTitle(t *testing.T) {
	a, _ := NewArc(nil)
	_ = a.Update(WithTitle("Load"))
	title := a.Root().Find(".ui-gauge__title")
	if title.Length() != 1 || title.Text() != "Load" {
		t.Fatalf("title = %d elements, text %q", title.Length(), title.Text())
	}
	if a.Root().HTMLNode().FirstChild != title.Get(0) {
		t.Error("title should be the wrapper's first child")
	}
	_ = a.Update(WithTitle(""))
	if a.Root().Find(".ui-gauge__title").Length() != 0 {
		t.Error("empty title should remove the element")
	}
}

func TestArcWrapperSize(t *testing.T) {
	a, _ := NewArc(nil, WithWidth(120), WithHeight(80))
	if got := a.Root().AttrOr("style", ""); got != "width: 120px; height: 80px;" {
		t.Errorf("style = %q", got)
	}
	_ = a.Update(WithWidth(0), WithHeight(0))
	if _, ok := a.Root().Attr("style"); ok {
		t.Error("style should be removed when width and height are zero")
	}
}

func TestArcScalesDefaultsWithSize(t *testing.T) {
	a, err := NewArc(nil, WithSize(200))
	if err != nil {
		t.Fatalf("NewArc: %v", err)
	}
	o := a.Options()
	if o.Thickness != 40 {
		t.Errorf("Thickness = %v, want 40", o.Thickness)
	}
	if o.Max != 10 {
		t.Errorf("Max = %v, want 10", o.Max)
	}
	if got := attrOf(t, a, "svg", "viewBox"); got != "0 0 200 200" {
		t.Errorf("viewBox = %q", got)
	}
}

func TestArcExplicitThicknessWinsOverScaling(t *testing.T) {
	a, _ := NewArc(nil, WithSize(200), WithThickness(10))
	if a.Options().Thickness != 10 {
		t.Errorf("Thickness = %v, want 10", a.Options().Thickness)
	}
}

// --- Errors and lifecycle ---

func TestNewArcRejectsInvalidOptions(t *testing.T) {
	host := NewElement("div")
	a, err := NewArc(host, WithMin(5), WithMax(5))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want *ConfigurationError", err)
	}
	if a != nil {
		t.Error("gauge should be nil on error")
	}
	if host.NumChildren() != 0 {
		t.Error("host should be untouched on error")
	}
}

func TestNewArcRejectsThicknessAtLeastSize(t *testing.T) {
	a, err := NewArc(nil, WithValue(5), WithThickness(150))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want *ConfigurationError", err)
	}
	if cfgErr.Field != FieldThickness {
		t.Errorf("Field = %s, want thickness", cfgErr.Field)
	}
	if a != nil {
		t.Error("gauge should be nil on error")
	}
}

func TestArcUpdateRejectsThicknessAtLeastSize(t *testing.T) {
	a, _ := NewArc(nil, WithValue(5))
	before := a.Options().Thickness
	if err := a.Update(WithThickness(100)); err == nil {
		t.Fatal("expected error for thickness equal to size")
	}
	if a.Options().Thickness != before {
		t.Errorf("Thickness = %v, want %v", a.Options().Thickness, before)
	}
	d, _ := a.Derive()
	if d.Circumference <= 0 || d.DashOffset <= 0 {
		t.Errorf("circumference %v, dash offset %v, want both positive", d.Circumference, d.DashOffset)
	}
}

func TestArcRejectsMeterOptions(t *testing.T) {
	a, _ := NewArc(nil)
	err := a.Update(WithCircle(.5))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Field != FieldCircle {
		t.Errorf("error = %v, want circle ConfigurationError", err)
	}
}

func TestArcDispose(t *testing.T) {
	host := NewElement("div")
	a, _ := NewArc(host)
	a.Dispose()
	if host.NumChildren() != 0 {
		t.Error("wrapper still attached after Dispose")
	}
	if !a.IsDisposed() {
		t.Error("IsDisposed = false")
	}
	if err := a.Update(WithValue(1)); !errors.Is(err, ErrDisposed) {
		t.Errorf("Update after Dispose = %v, want ErrDisposed", err)
	}
	a.Dispose() // no-op
}

func TestArcsHaveDistinctIDs(t *testing.T) {
	a, _ := NewArc(nil)
	b, _ := NewArc(nil)
	if attrOf(t, a, "mask", "id") == attrOf(t, b, "mask", "id") {
		t.Error("two arcs share a mask id")
	}
}
