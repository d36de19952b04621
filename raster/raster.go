// Package raster draws gauges to bitmaps with gogpu/gg, for contexts where
// the SVG markup cannot be shown, such as PNG export and game previews.
//
// The output follows the derived geometry of each variant; stylesheet
// colors are replaced by a [Palette].
package raster

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/phanxgames/gauge"
)

// ErrUnsupported is returned for gauge implementations the package does not
// know how to draw.
var ErrUnsupported = errors.New("raster: unsupported gauge type")

type config struct {
	palette Palette
	scale   float64
}

// Option configures Render.
type Option func(*config)

// WithPalette replaces the default palette.
func WithPalette(p Palette) Option {
	return func(c *config) { c.palette = p }
}

// WithScale sets the pixels per viewport unit. Values <= 0 are ignored.
func WithScale(s float64) Option {
	return func(c *config) {
		if s > 0 {
			c.scale = s
		}
	}
}

// Render draws g into a new context sized to its viewport. The caller owns
// the returned context and should Close it.
func Render(g gauge.Gauge, opts ...Option) (*gg.Context, error) {
	cfg := config{palette: DefaultPalette(), scale: 1}
	for _, o := range opts {
		o(&cfg)
	}

	switch v := g.(type) {
	case *gauge.Arc:
		d, err := v.Derive()
		if err != nil {
			return nil, err
		}
		return drawArc(d, cfg)
	case *gauge.Ring:
		d, err := v.Derive()
		if err != nil {
			return nil, err
		}
		return drawRing(d, cfg)
	case *gauge.Meter:
		d, err := v.Derive()
		if err != nil {
			return nil, err
		}
		return drawMeter(d, cfg)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, g)
	}
}

// EncodePNG renders g and writes it to w as PNG.
func EncodePNG(w io.Writer, g gauge.Gauge, opts ...Option) error {
	dc, err := Render(g, opts...)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// pen wraps a context and applies the output scale. gg transforms only the
// center of an arc, so scaling is done here rather than with the matrix.
type pen struct {
	dc *gg.Context
	s  float64
}

func newPen(w, h float64, cfg config) pen {
	dc := gg.NewContext(int(math.Ceil(w*cfg.scale)), int(math.Ceil(h*cfg.scale)))
	if cfg.palette.Background.A > 0 {
		dc.ClearWithColor(cfg.palette.Background)
	}
	dc.SetLineCap(gg.LineCapButt)
	return pen{dc: dc, s: cfg.scale}
}

func (p pen) color(c gg.RGBA) {
	p.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// arc strokes a circular arc. Angles are in radians, clockwise from +x.
func (p pen) arc(cx, cy, r, a1, a2, width float64, c gg.RGBA) error {
	if a2 <= a1 || width <= 0 {
		return nil
	}
	p.dc.ClearPath()
	p.color(c)
	p.dc.SetLineWidth(width * p.s)
	p.dc.DrawArc(cx*p.s, cy*p.s, r*p.s, a1, a2)
	return p.dc.Stroke()
}

func (p pen) line(x1, y1, x2, y2, width float64, c gg.RGBA) error {
	p.dc.ClearPath()
	p.color(c)
	p.dc.SetLineWidth(width * p.s)
	p.dc.MoveTo(x1*p.s, y1*p.s)
	p.dc.LineTo(x2*p.s, y2*p.s)
	return p.dc.Stroke()
}

func (p pen) disc(cx, cy, r float64, c gg.RGBA) error {
	p.dc.ClearPath()
	p.color(c)
	p.dc.DrawCircle(cx*p.s, cy*p.s, r*p.s)
	return p.dc.Fill()
}

// fraction returns the filled share of a dash-offset stroke.
func fraction(dashOffset, circumference float64) float64 {
	if circumference <= 0 {
		return 0
	}
	return 1 - dashOffset/circumference
}
