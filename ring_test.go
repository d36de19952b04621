package gauge

import (
	"math"
	"testing"
)

func TestDeriveRingFullCircle(t *testing.T) {
	d, err := DeriveRing(merge(ringDefaults, []Option{WithValue(5)}))
	if err != nil {
		t.Fatalf("DeriveRing: %v", err)
	}
	if d.R != 39.5 {
		t.Errorf("R = %f, want 39.5", d.R)
	}
	if !approx(d.Circumference, 2*math.Pi*39.5, 1e-9) {
		t.Errorf("Circumference = %f, want ~248.19", d.Circumference)
	}
	if !approx(d.DashOffset, d.Circumference/2, 1e-9) {
		t.Errorf("DashOffset = %f, want half the circumference", d.DashOffset)
	}
	if d.HS != 50 {
		t.Errorf("HS = %f, want 50", d.HS)
	}
}

func TestDeriveRingBounds(t *testing.T) {
	empty, _ := DeriveRing(merge(ringDefaults, []Option{WithValue(0)}))
	if empty.DashOffset != empty.Circumference {
		t.Errorf("empty DashOffset = %f, want %f", empty.DashOffset, empty.Circumference)
	}
	full, _ := DeriveRing(merge(ringDefaults, []Option{WithValue(10)}))
	if full.DashOffset != 0 {
		t.Errorf("full DashOffset = %f, want 0", full.DashOffset)
	}
	over, _ := DeriveRing(merge(ringDefaults, []Option{WithValue(1000)}))
	if over.DashOffset != 0 {
		t.Errorf("over DashOffset = %f, want 0", over.DashOffset)
	}
}

func TestNewRingBuildsDOM(t *testing.T) {
	host := NewElement("div")
	r, err := NewRing(host, WithValue(2.5), WithLabel("GB"), WithID("disk"))
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	if host.NumChildren() != 1 {
		t.Fatalf("host children = %d, want 1", host.NumChildren())
	}
	if !r.Root().HasClass("ui-gauge-ring") {
		t.Errorf("wrapper class = %q", r.Root().AttrOr("class", ""))
	}
	if got := attrOf(t, r, ".ui-gauge-ring__fg", "transform"); got != "rotate(-90 50 50)" {
		t.Errorf("fg transform = %q", got)
	}
	if got := attrOf(t, r, ".ui-gauge-ring__border", "stroke-width"); got != "21" {
		t.Errorf("border stroke-width = %q, want 21", got)
	}
	if got := attrOf(t, r, "mask circle", "r"); got != "39.5" {
		t.Errorf("mask r = %q, want 39.5", got)
	}
	if got := attrOf(t, r, "svg > g", "mask"); got != "url(#mask-disk)" {
		t.Errorf("group mask = %q", got)
	}

	d, _ := r.Derive()
	if got := floatAttr(t, r, ".ui-gauge-ring__fg", "stroke-dasharray"); !approx(got, d.Circumference, 1e-9) {
		t.Errorf("fg dasharray = %f, want %f", got, d.Circumference)
	}
	if got := floatAttr(t, r, ".ui-gauge-ring__fg", "stroke-dashoffset"); !approx(got, d.Circumference*.75, 1e-9) {
		t.Errorf("fg dashoffset = %f, want %f", got, d.Circumference*.75)
	}
	if got := textOf(t, r, ".ui-gauge-ring__label"); got != "2.5 GB" {
		t.Errorf("label = %q, want %q", got, "2.5 GB")
	}
}

func TestRingUpdateThickness(t *testing.T) {
	r, _ := NewRing(nil)
	if err := r.Update(WithThickness(10)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := attrOf(t, r, ".ui-gauge-ring__bg", "r"); got != "44.5" {
		t.Errorf("bg r = %q, want 44.5", got)
	}
	if got := attrOf(t, r, ".ui-gauge-ring__fg", "stroke-width"); got != "12" {
		t.Errorf("fg stroke-width = %q, want 12", got)
	}
}

func TestRingStepsRedrawOnNewPointer(t *testing.T) {
	steps := NewSteps(1, 2, 8, 9)
	r, _ := NewRing(nil, WithValue(5), WithSteps(steps))
	if got := attrOf(t, r, ".ui-gauge-ring__fg", "stroke"); got != ColorOK {
		t.Fatalf("fg stroke = %q, want ok", got)
	}

	// Mutating the thresholds in place is not a change.
	steps[2] = 4
	_ = r.Update(WithSteps(steps))
	if got := attrOf(t, r, ".ui-gauge-ring__fg", "stroke"); got != ColorOK {
		t.Errorf("fg stroke = %q, want unchanged ok", got)
	}

	_ = r.Update(WithSteps(NewSteps(1, 2, 4, 9)))
	if got := attrOf(t, r, ".ui-gauge-ring__fg", "stroke"); got != ColorWarning {
		t.Errorf("fg stroke = %q, want warning", got)
	}
}
