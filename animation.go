package gauge

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ValueTween animates a gauge's value toward a target. Create one with
// TweenValue and call Update(dt) each frame. Each step goes through the
// gauge's Update, so only fragments watching the value are redrawn. If the
// gauge is disposed, the tween stops immediately.
//
// There is no global animation manager; callers drive Update themselves.
type ValueTween struct {
	tween  *gween.Tween
	target Gauge
	Done   bool
}

// TweenValue creates a ValueTween that moves g's value from its current
// value to `to` over duration seconds using the easing function.
func TweenValue(g Gauge, to float64, duration float32, fn ease.TweenFunc) *ValueTween {
	from := g.Options().Value
	return &ValueTween{
		tween:  gween.New(float32(from), float32(to), duration, fn),
		target: g,
	}
}

// Update advances the tween by dt seconds and pushes the new value to the
// gauge. Errors from the gauge stop the tween and are returned.
func (t *ValueTween) Update(dt float32) error {
	if t.Done {
		return nil
	}
	if t.target.IsDisposed() {
		t.Done = true
		return nil
	}

	val, finished := t.tween.Update(dt)
	if err := t.target.Update(WithValue(float64(val))); err != nil {
		t.Done = true
		return err
	}
	t.Done = finished
	return nil
}

// Reset rewinds the tween to its start without touching the gauge.
func (t *ValueTween) Reset() {
	t.tween.Reset()
	t.Done = false
}
