package gauge

import (
	"fmt"
	"time"
)

// hook is a DOM patch that runs when any of its watched fields change.
type hook[D any] struct {
	fn   func(D)
	keys FieldSet
}

// engine is the change-tracking redraw core embedded by every variant. It
// holds the current options, the derivation for the variant, and the hooks
// registered while the variant built its DOM.
//
// On each update the partial options are merged over the current ones, the
// changed fields are computed by identity, derived data is recomputed in
// full, and every hook watching a changed field runs against that one
// snapshot. The first update runs every hook.
type engine[D any] struct {
	kind    Kind
	allowed FieldSet
	derive  func(Options) (D, error)

	opts        Options
	hooks       []hook[D]
	initialized bool
	updating    bool
	disposed    bool
}

func newEngine[D any](kind Kind, allowed FieldSet, opts Options, derive func(Options) (D, error)) *engine[D] {
	return &engine[D]{
		kind:    kind,
		allowed: allowed,
		derive:  derive,
		opts:    opts,
	}
}

// addHook registers fn to run when any field in keys changes. Only called
// while a variant builds its DOM. Panics if keys names a field the variant
// does not accept.
func (e *engine[D]) addHook(keys FieldSet, fn func(D)) {
	if e.initialized {
		panic("gauge: addHook after first update")
	}
	if extra := keys &^ e.allowed; extra != 0 {
		panic(fmt.Sprintf("gauge: %s hook watches unsupported fields %s", e.kind, extra))
	}
	e.hooks = append(e.hooks, hook[D]{fn: fn, keys: keys})
}

// update merges opts and runs the affected hooks. A hook that panics aborts
// the remaining hooks; the merged options are then not committed.
func (e *engine[D]) update(opts []Option) error {
	if e.updating {
		return ErrReentrantUpdate
	}
	if e.disposed {
		return ErrDisposed
	}
	if extra := optionFields(opts) &^ e.allowed; extra != 0 {
		err := newConfigError(e.kind, extra.Fields()[0], nil, "not supported by this gauge")
		Logger().Warn("gauge update rejected", "kind", e.kind.String(), "id", e.opts.ID, "err", err)
		return err
	}

	merged := e.opts
	var changed FieldSet
	for _, o := range opts {
		if !o.same(&e.opts) {
			changed |= 1 << o.field
		}
		o.apply(&merged)
	}

	if !e.initialized || changed != 0 {
		e.updating = true
		defer func() { e.updating = false }()

		start := time.Now()
		data, err := e.derive(merged)
		if err != nil {
			Logger().Warn("gauge update rejected", "kind", e.kind.String(), "id", merged.ID, "err", err)
			return err
		}
		stats := updateStats{changed: changed, first: !e.initialized, derive: time.Since(start)}

		for _, h := range e.hooks {
			if !e.initialized || h.keys.Intersects(changed) {
				h.fn(data)
				stats.fired++
			}
		}
		e.initialized = true
		e.logUpdate(merged.ID, stats)
	}

	e.opts = merged
	return nil
}

// current derives data for the committed options without running hooks.
func (e *engine[D]) current() (D, error) {
	return e.derive(e.opts)
}
