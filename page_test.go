package gauge

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewPage(t *testing.T) {
	p := NewPage("Dashboard")
	if p.Body().Tag() != "body" || p.Head().Tag() != "head" {
		t.Fatalf("head/body = %q/%q", p.Head().Tag(), p.Body().Tag())
	}
	if got := p.Find("title").Text(); got != "Dashboard" {
		t.Errorf("title = %q, want Dashboard", got)
	}
}

func TestPageRendersGauges(t *testing.T) {
	p := NewPage("Dashboard")
	p.AddStylesheet("gauge.css")
	if _, err := NewArc(p.Body(), WithValue(3)); err != nil {
		t.Fatalf("NewArc: %v", err)
	}
	if _, err := NewMeter(p.Body(), WithValue(7)); err != nil {
		t.Fatalf("NewMeter: %v", err)
	}
	if got := p.Find(".ui-gauge").Length(); got != 2 {
		t.Errorf("gauges on page = %d, want 2", got)
	}

	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`href="gauge.css"`,
		`class="ui-gauge ui-gauge-arc"`,
		`class="ui-gauge ui-gauge-meter"`,
		"<svg",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestSVGAndRenderNode(t *testing.T) {
	r, err := NewRing(nil, WithID("r1"))
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	svg := SVG(r)
	if svg == nil || svg.Tag() != "svg" {
		t.Fatalf("SVG = %v", svg)
	}
	var buf bytes.Buffer
	if err := RenderNode(&buf, svg); err != nil {
		t.Fatalf("RenderNode: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<svg") {
		t.Errorf("markup starts with %.20q", out)
	}
	if !strings.Contains(out, `id="mask-r1"`) {
		t.Error("markup missing mask id")
	}
}

func TestDisposeRemovesGaugeFromPage(t *testing.T) {
	p := NewPage("")
	r, _ := NewRing(p.Body())
	r.Dispose()
	if got := p.Find(".ui-gauge").Length(); got != 0 {
		t.Errorf("gauges on page = %d after Dispose, want 0", got)
	}
}
