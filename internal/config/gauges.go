package config

import (
	"fmt"

	"github.com/phanxgames/gauge"
)

// Gauge kinds accepted in a GaugeSpec.
const (
	KindArc         = "arc"
	KindRing        = "ring"
	KindMeter       = "meter"
	KindSpeedometer = "speedometer"
)

// GaugeSpec describes one gauge to render. Nil fields keep the variant's
// defaults. Steps takes four thresholds; write .nan for an absent one.
type GaugeSpec struct {
	Name  string `mapstructure:"name"  yaml:"name"`
	Kind  string `mapstructure:"kind"  yaml:"kind"`
	Label string `mapstructure:"label" yaml:"label"`
	Title string `mapstructure:"title" yaml:"title"`
	Color string `mapstructure:"color" yaml:"color"`

	Value     *float64  `mapstructure:"value"     yaml:"value"`
	Min       *float64  `mapstructure:"min"       yaml:"min"`
	Max       *float64  `mapstructure:"max"       yaml:"max"`
	Size      *float64  `mapstructure:"size"      yaml:"size"`
	Thickness *float64  `mapstructure:"thickness" yaml:"thickness"`
	Width     *float64  `mapstructure:"width"     yaml:"width"`
	Height    *float64  `mapstructure:"height"    yaml:"height"`
	Steps     []float64 `mapstructure:"steps"     yaml:"steps"`
	HideValue bool      `mapstructure:"hide_value" yaml:"hide_value"`

	// Meter and speedometer only.
	Ticks            *int     `mapstructure:"ticks"              yaml:"ticks"`
	SubTicks         *int     `mapstructure:"sub_ticks"          yaml:"sub_ticks"`
	Circle           *float64 `mapstructure:"circle"             yaml:"circle"`
	TickLabelsInside *bool    `mapstructure:"tick_labels_inside" yaml:"tick_labels_inside"`
	TickLabelOffset  *float64 `mapstructure:"tick_label_offset"  yaml:"tick_label_offset"`
}

func (g GaugeSpec) isMeter() bool {
	return g.Kind == KindMeter || g.Kind == KindSpeedometer
}

func (g GaugeSpec) validate() error {
	switch g.Kind {
	case KindArc, KindRing, KindMeter, KindSpeedometer:
	default:
		return fmt.Errorf("unknown kind %q", g.Kind)
	}
	if g.Steps != nil && len(g.Steps) != 4 {
		return fmt.Errorf("steps: want 4 thresholds, got %d", len(g.Steps))
	}
	if !g.isMeter() && (g.Ticks != nil || g.SubTicks != nil || g.Circle != nil ||
		g.TickLabelsInside != nil || g.TickLabelOffset != nil) {
		return fmt.Errorf("meter options set on a %s gauge", g.Kind)
	}
	return nil
}

// Options converts the entry into gauge options. The gauge name doubles as
// its id so SVG ids are stable across runs.
func (g GaugeSpec) Options() []gauge.Option {
	opts := []gauge.Option{gauge.WithID(g.Name)}
	if g.Label != "" {
		opts = append(opts, gauge.WithLabel(g.Label))
	}
	if g.Title != "" {
		opts = append(opts, gauge.WithTitle(g.Title))
	}
	if g.Color != "" {
		opts = append(opts, gauge.WithColor(g.Color))
	}
	if g.HideValue {
		opts = append(opts, gauge.WithHideValue(true))
	}
	for _, f := range []struct {
		v  *float64
		fn func(float64) gauge.Option
	}{
		{g.Value, gauge.WithValue},
		{g.Min, gauge.WithMin},
		{g.Max, gauge.WithMax},
		{g.Size, gauge.WithSize},
		{g.Thickness, gauge.WithThickness},
		{g.Width, gauge.WithWidth},
		{g.Height, gauge.WithHeight},
		{g.Circle, gauge.WithCircle},
		{g.TickLabelOffset, gauge.WithTickLabelOffset},
	} {
		if f.v != nil {
			opts = append(opts, f.fn(*f.v))
		}
	}
	if len(g.Steps) == 4 {
		opts = append(opts, gauge.WithSteps(gauge.NewSteps(g.Steps[0], g.Steps[1], g.Steps[2], g.Steps[3])))
	}
	if g.Ticks != nil {
		opts = append(opts, gauge.WithTicks(*g.Ticks))
	}
	if g.SubTicks != nil {
		opts = append(opts, gauge.WithSubTicks(*g.SubTicks))
	}
	if g.TickLabelsInside != nil {
		opts = append(opts, gauge.WithTickLabelsInside(*g.TickLabelsInside))
	}
	return opts
}

// Build constructs the gauge described by the entry and appends it to host.
// A nil host leaves it detached.
func (g GaugeSpec) Build(host *gauge.Node) (gauge.Gauge, error) {
	var (
		built gauge.Gauge
		err   error
	)
	// Each case assigns only on success so a failed build returns a nil
	// interface, not one holding a nil pointer.
	switch g.Kind {
	case KindArc:
		var a *gauge.Arc
		if a, err = gauge.NewArc(host, g.Options()...); err == nil {
			built = a
		}
	case KindRing:
		var r *gauge.Ring
		if r, err = gauge.NewRing(host, g.Options()...); err == nil {
			built = r
		}
	case KindMeter:
		var m *gauge.Meter
		if m, err = gauge.NewMeter(host, g.Options()...); err == nil {
			built = m
		}
	case KindSpeedometer:
		var m *gauge.Meter
		if m, err = gauge.NewSpeedometer(host, g.Options()...); err == nil {
			built = m
		}
	default:
		return nil, fmt.Errorf("gauge %s: unknown kind %q", g.Name, g.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("gauge %s: %w", g.Name, err)
	}
	return built, nil
}
