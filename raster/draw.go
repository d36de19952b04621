package raster

import (
	"errors"
	"math"

	"github.com/gogpu/gg"
	"github.com/phanxgames/gauge"
)

func drawArc(d gauge.ArcData, cfg config) (*gg.Context, error) {
	p := newPen(d.Size, d.Size, cfg)
	cy := d.HS + d.Size*.25
	fill := fraction(d.DashOffset, d.Circumference)
	fg := cfg.palette.resolve(d.ResolvedColor, d.Severity)

	err := errors.Join(
		p.arc(d.HS, cy, d.R, math.Pi, 2*math.Pi, d.Thickness+1, cfg.palette.Border),
		p.arc(d.HS, cy, d.R, math.Pi, 2*math.Pi, d.Thickness, cfg.palette.Track),
		p.arc(d.HS, cy, d.R, math.Pi, math.Pi+math.Pi*fill, d.Thickness, fg),
	)
	if err != nil {
		p.dc.Close()
		return nil, err
	}
	return p.dc, nil
}

func drawRing(d gauge.RingData, cfg config) (*gg.Context, error) {
	p := newPen(d.Size, d.Size, cfg)
	fill := fraction(d.DashOffset, d.Circumference)
	fg := cfg.palette.resolve(d.ResolvedColor, d.Severity)
	top := -math.Pi / 2

	err := errors.Join(
		p.arc(d.HS, d.HS, d.R, 0, 2*math.Pi, d.Thickness+1, cfg.palette.Border),
		p.arc(d.HS, d.HS, d.R, 0, 2*math.Pi, d.Thickness, cfg.palette.Track),
		p.arc(d.HS, d.HS, d.R, top, top+2*math.Pi*fill, d.Thickness, fg),
	)
	if err != nil {
		p.dc.Close()
		return nil, err
	}
	return p.dc, nil
}

// meterAngle returns the screen angle of fraction t along a dial sweeping
// circle of a revolution, centered on 12 o'clock.
func meterAngle(t, circle float64) float64 {
	return -math.Pi/2 - math.Pi*circle + 2*math.Pi*circle*t
}

func drawMeter(d gauge.MeterData, cfg config) (*gg.Context, error) {
	p := newPen(d.Size, d.ViewBoxHeight, cfg)
	pal := cfg.palette
	cx, cy := d.HS, d.HS+d.TickShift
	start, end := meterAngle(0, d.Circle), meterAngle(1, d.Circle)

	var errs []error
	if d.Circle > .5 {
		errs = append(errs, p.disc(cx, cy, d.HS-.25, pal.Track))
	}

	if s := d.Steps; s != nil {
		span := d.Max - d.Min
		at := func(v float64) float64 {
			return meterAngle((v-d.Min)/span, d.Circle)
		}
		// Bands paint the scale outside their thresholds, so the error band
		// drawn last keeps only the outermost segments.
		errs = append(errs, p.arc(cx, cy, d.IR, start, end, d.Thickness, pal.OK))
		for _, band := range []struct {
			lo, hi float64
			color  gg.RGBA
		}{
			{s[1], s[2], pal.Warning},
			{s[0], s[3], pal.Error},
		} {
			lo, hi := band.lo, band.hi
			if math.IsNaN(lo) {
				lo = d.Min
			}
			if math.IsNaN(hi) {
				hi = d.Max
			}
			errs = append(errs,
				p.arc(cx, cy, d.IR, start, math.Min(at(lo), end), d.Thickness, band.color),
				p.arc(cx, cy, d.IR, math.Max(at(hi), start), end, d.Thickness, band.color),
			)
		}
	}

	segments := float64(d.Ticks - 1)
	for i := 0; i < d.Ticks; i++ {
		a := meterAngle(float64(i)/segments, d.Circle)
		cos, sin := math.Cos(a), math.Sin(a)
		errs = append(errs, p.line(
			cx+cos*(d.R-d.HT), cy+sin*(d.R-d.HT),
			cx+cos*(d.R+d.HT), cy+sin*(d.R+d.HT),
			d.TickSize, pal.Needle,
		))
		if i == d.Ticks-1 {
			break
		}
		for j := 1; j <= d.SubTicks; j++ {
			t := (float64(i) + float64(j)/float64(d.SubTicks+1)) / segments
			a := meterAngle(t, d.Circle)
			cos, sin := math.Cos(a), math.Sin(a)
			errs = append(errs, p.line(
				cx+cos*(d.TR-d.HT*.5), cy+sin*(d.TR-d.HT*.5),
				cx+cos*(d.TR+d.HT*.5), cy+sin*(d.TR+d.HT*.5),
				d.SubTickSize, pal.Border,
			))
		}
	}

	errs = append(errs, drawNeedle(p, d, cx, cy, pal))
	if err := errors.Join(errs...); err != nil {
		p.dc.Close()
		return nil, err
	}
	return p.dc, nil
}

// drawNeedle fills the needle outline rotated about the dial center, then
// the hub.
func drawNeedle(p pen, d gauge.MeterData, cx, cy float64, pal Palette) error {
	s := p.s
	p.dc.Push()
	p.dc.RotateAbout(d.NeedleRotation*math.Pi/180, cx*s, cy*s)
	p.dc.ClearPath()
	p.color(pal.Needle)
	p.dc.MoveTo((cx-1.5)*s, (cy+6)*s)
	p.dc.LineTo(cx*s, (cy+6-d.NeedleLength)*s)
	p.dc.LineTo((cx+1.5)*s, (cy+6)*s)
	p.dc.ClosePath()
	err := p.dc.Fill()
	p.dc.Pop()
	if err != nil {
		return err
	}
	return p.disc(cx, cy, 4, pal.Needle)
}
