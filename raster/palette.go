package raster

import (
	"strings"

	"github.com/gogpu/gg"
	"github.com/phanxgames/gauge"
)

// Palette holds the solid colors that stand in for the stylesheet custom
// properties the markup refers to.
type Palette struct {
	OK         gg.RGBA
	Warning    gg.RGBA
	Error      gg.RGBA
	Border     gg.RGBA
	Track      gg.RGBA // the background gradient, flattened
	Needle     gg.RGBA
	Background gg.RGBA // transparent leaves the image unfilled
}

// DefaultPalette returns the colors of the default light theme.
func DefaultPalette() Palette {
	return Palette{
		OK:         gg.Hex("#2e9e44"),
		Warning:    gg.Hex("#e8a317"),
		Error:      gg.Hex("#d93025"),
		Border:     gg.Hex("#9aa0a6"),
		Track:      gg.Hex("#e8eaed"),
		Needle:     gg.Hex("#202124"),
		Background: gg.Transparent,
	}
}

// Severity returns the palette color for a severity band.
func (p Palette) Severity(s gauge.Severity) gg.RGBA {
	switch s {
	case gauge.SeverityWarning:
		return p.Warning
	case gauge.SeverityError:
		return p.Error
	default:
		return p.OK
	}
}

// resolve maps a resolved gauge color to a raster color. Hex colors are
// used as given; stylesheet references fall back to the severity color.
func (p Palette) resolve(color string, sev gauge.Severity) gg.RGBA {
	if strings.HasPrefix(color, "#") {
		return gg.Hex(color)
	}
	if color != gauge.SeverityColor(sev) {
		gauge.Logger().Debug("raster: color not representable, using severity color",
			"color", color, "severity", sev.String())
	}
	return p.Severity(sev)
}
