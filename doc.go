// Package gauge renders numeric values as SVG gauges (arc, ring, meter and
// speedometer) inside an HTML document, and redraws them in place when
// their options change.
//
// # Quick start
//
// Create a host document, then a gauge attached to one of its elements:
//
//	page := gauge.NewPage("Dashboard")
//	rpm, err := gauge.NewArc(page.Body(),
//		gauge.WithValue(5), gauge.WithMax(10), gauge.WithLabel("rpm"))
//	if err != nil {
//		return err
//	}
//	page.Render(os.Stdout)
//
// Later updates are partial; only the named options change:
//
//	rpm.Update(gauge.WithValue(7))
//
// # Redraw model
//
// Every gauge builds its DOM subtree once. While building, it registers one
// hook per fragment together with the option fields that fragment depends
// on. Update merges the partial options over the current ones, computes the
// changed fields by identity, recomputes the derived geometry in full, and
// runs only the hooks whose fields changed. The first update runs every
// hook. Steps are compared by pointer and a FormatValue option always counts
// as changed, so passing a fresh *Steps forces the dependent fragments to
// redraw even when the thresholds are equal.
//
// Options that cannot be drawn (max <= min, descending steps, a meter with
// fewer than two ticks) are rejected with a *ConfigurationError and leave
// the gauge unchanged.
//
// # Other features
//
// [TweenValue] animates a gauge's value with [gween] easing. The raster
// sub-package draws a gauge's geometry to an image with gogpu/gg.
// Logging is silent until [SetLogger] is called.
//
// [gween]: https://github.com/tanema/gween
package gauge
