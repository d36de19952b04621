package gauge

import (
	"context"
	"log/slog"
	"time"
)

// updateStats holds per-update metrics. Only logged when the logger has
// debug enabled.
type updateStats struct {
	changed FieldSet
	first   bool
	fired   int
	derive  time.Duration
}

// debugMaxHooks is the hook count above which a gauge is reported as
// unusually large.
const debugMaxHooks = 64

// logUpdate records one effective update at debug level.
func (e *engine[D]) logUpdate(id string, stats updateStats) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("gauge update",
		"kind", e.kind.String(),
		"id", id,
		"first", stats.first,
		"changed", stats.changed.String(),
		"hooks", len(e.hooks),
		"fired", stats.fired,
		"derive", stats.derive,
	)
	if len(e.hooks) > debugMaxHooks {
		l.Debug("gauge has many hooks", "kind", e.kind.String(), "id", id, "hooks", len(e.hooks), "threshold", debugMaxHooks)
	}
}
