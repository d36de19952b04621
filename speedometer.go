package gauge

// speedometerPreset is applied before the caller's options, so each entry
// can be overridden.
var speedometerPreset = []Option{
	WithTicks(11),
	WithSubTicks(3),
	WithCircle(.75),
	WithTickLabelsInside(true),
}

// NewSpeedometer builds a meter preset as a three-quarter dial with eleven
// labelled ticks inside the scale.
func NewSpeedometer(host *Node, opts ...Option) (*Meter, error) {
	all := make([]Option, 0, len(speedometerPreset)+len(opts))
	all = append(all, speedometerPreset...)
	all = append(all, opts...)
	return newMeter(host, all, "ui-gauge-meter--speed")
}
