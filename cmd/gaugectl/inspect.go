package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/phanxgames/gauge"
	"github.com/phanxgames/gauge/internal/config"
)

// inspect builds a detached gauge from spec and prints its derived geometry.
func inspect(w io.Writer, spec config.GaugeSpec) error {
	g, err := spec.Build(nil)
	if err != nil {
		return err
	}
	defer g.Dispose()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	row := func(k string, v any) { fmt.Fprintf(tw, "%s\t%v\n", k, v) }

	o := g.Options()
	row("name", spec.Name)
	row("kind", spec.Kind)
	row("value", o.Value)
	row("range", fmt.Sprintf("[%v, %v]", o.Min, o.Max))
	row("size", o.Size)
	row("thickness", o.Thickness)
	if o.Steps != nil {
		row("steps", stepsText(o.Steps))
	}

	switch v := g.(type) {
	case *gauge.Arc:
		d, err := v.Derive()
		if err != nil {
			return err
		}
		row("severity", d.Severity)
		row("color", d.ResolvedColor)
		row("radius", d.R)
		row("circumference", d.Circumference)
		row("dashoffset", d.DashOffset)
		row("path", d.Path())
	case *gauge.Ring:
		d, err := v.Derive()
		if err != nil {
			return err
		}
		row("severity", d.Severity)
		row("color", d.ResolvedColor)
		row("radius", d.R)
		row("circumference", d.Circumference)
		row("dashoffset", d.DashOffset)
	case *gauge.Meter:
		d, err := v.Derive()
		if err != nil {
			return err
		}
		row("severity", d.Severity)
		row("color", d.ResolvedColor)
		row("circle", d.Circle)
		row("ticks", fmt.Sprintf("%d (+%d sub)", d.Ticks, d.SubTicks))
		row("radius", d.R)
		row("ticks height", fmt.Sprintf("%.2f", d.TicksHeight))
		row("needle", fmt.Sprintf("%.2fdeg", d.NeedleRotation))
		row("viewbox", fmt.Sprintf("0 0 %v %v", d.Size, d.ViewBoxHeight))
		labels := make([]string, len(d.TickLabels))
		for i, tl := range d.TickLabels {
			labels[i] = tl.Text
		}
		row("tick labels", strings.Join(labels, " "))
		if d.WarningDash != nil {
			row("warning dash", fmt.Sprintf("%.2f", d.WarningDash))
			row("error dash", fmt.Sprintf("%.2f", d.ErrorDash))
		}
	}
	return tw.Flush()
}

func stepsText(s *gauge.Steps) string {
	parts := make([]string, len(s))
	for i, v := range s {
		if math.IsNaN(v) {
			parts[i] = "-"
			continue
		}
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
