package gauge

// derived is implemented by every DerivedData type through its embedded
// Options.
type derived interface {
	options() Options
}

func (o Options) options() Options { return o }

// base carries the parts every variant shares: the update engine and the
// wrapper element it appends to the host.
type base[D derived] struct {
	eng     *engine[D]
	wrapper *Node
}

// Update merges opts over the current options and redraws the fragments
// that watch a changed field. The first call after construction redraws
// everything.
func (b *base[D]) Update(opts ...Option) error {
	return b.eng.update(opts)
}

// Options returns a copy of the current options.
func (b *base[D]) Options() Options {
	return b.eng.opts
}

// Root returns the wrapper element.
func (b *base[D]) Root() *Node {
	return b.wrapper
}

// Derive recomputes the derived data for the current options.
func (b *base[D]) Derive() (D, error) {
	return b.eng.current()
}

// Dispose detaches the wrapper from its host. Later updates return
// ErrDisposed.
func (b *base[D]) Dispose() {
	if b.eng.disposed {
		return
	}
	b.wrapper.RemoveFromParent()
	b.eng.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (b *base[D]) IsDisposed() bool {
	return b.eng.disposed
}

// attach runs the first update and appends the wrapper to host.
func (b *base[D]) attach(host *Node) error {
	if err := b.eng.update(nil); err != nil {
		return err
	}
	if host != nil {
		host.AddChild(b.wrapper)
	}
	return nil
}

// newWrapper builds the outer div and its canvas, and registers the hooks
// for wrapper size and title that all variants share.
func newWrapper[D derived](e *engine[D], variantClass string) (wrapper, canvas *Node) {
	wrapper = NewElement("div")
	wrapper.AddClass(classGauge, variantClass)
	e.addHook(Fields(FieldWidth, FieldHeight), func(d D) {
		o := d.options()
		wrapper.SetStyle("width", px(o.Width), "height", px(o.Height))
	})

	canvas = NewElement("div")
	canvas.AddClass(classCanvas)
	wrapper.AddChild(canvas)

	title := NewElement("div")
	title.AddClass(classTitle)
	e.addHook(Fields(FieldTitle), func(d D) {
		t := d.options().Title
		title.SetText(t)
		if t != "" {
			wrapper.PrependChild(title)
		} else {
			title.RemoveFromParent()
		}
	})
	return wrapper, canvas
}

// newDefs builds the defs element holding the background gradient, and
// registers the hook keeping the gradient id in sync.
func newDefs[D derived](e *engine[D], gradientID func(D) string) *Node {
	defs := NewSVGElement("defs")
	gradient := gradientDef()
	e.addHook(Fields(FieldID), func(d D) {
		gradient.SetAttr("id", gradientID(d))
	})
	defs.AddChild(gradient)
	return defs
}

// url formats an SVG reference to an element id.
func url(id string) string {
	return "url(#" + id + ")"
}
