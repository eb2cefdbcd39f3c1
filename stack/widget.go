// stack/widget.go

package stack

import (
	"errors"
	"image"

	"github.com/waozixyz/cardstack/deck"
)

// Widget renders an observed deck.Model as an overlapping pile of card
// images. Later items paint over earlier ones, each shifted down by the
// configured vertical gap.
//
// A Widget is single-threaded: every method, and every mutation of the
// observed model, must happen on the host's one UI thread.
type Widget struct {
	model deck.Model
	sub   deck.Subscription
	cache *Cache

	vgap   int
	insets Insets

	pinned     *image.Point
	invalidate func()
}

// New creates a widget observing model and resolving card images through
// p, with the default vertical gap. Both arguments are mandatory.
func New(model deck.Model, p Provider) (*Widget, error) {
	if model == nil {
		return nil, errors.New("stack: model must not be nil")
	}
	if p == nil {
		return nil, errors.New("stack: provider must not be nil")
	}
	w := &Widget{
		model: model,
		cache: NewCache(p),
		vgap:  DefaultVGap,
	}
	w.sub = model.Subscribe(w.onModelEvent)
	return w, nil
}

// SetModel replaces the observed model. The subscription to the previous
// model is released so a discarded model cannot keep invalidating the
// widget. The image cache is keyed by item value, not by model, so it
// survives the swap untouched.
func (w *Widget) SetModel(model deck.Model) error {
	if model == nil {
		return errors.New("stack: model must not be nil")
	}
	w.model.Unsubscribe(w.sub)
	w.model = model
	w.sub = model.Subscribe(w.onModelEvent)
	return nil
}

// VGap returns the current vertical gap.
func (w *Widget) VGap() int { return w.vgap }

// SetVGap sets the vertical gap between stacked cards. A zero or negative
// gap is rejected with ErrInvalidVGap and the previous value stays in
// effect.
func (w *Widget) SetVGap(vgap int) error {
	if vgap <= 0 {
		return ErrInvalidVGap
	}
	w.vgap = vgap
	return nil
}

// Insets returns the host border margins around the content.
func (w *Widget) Insets() Insets { return w.insets }

// SetInsets sets the host border margins around the content.
func (w *Widget) SetInsets(ins Insets) { w.insets = ins }

// OnInvalidate registers fn to run whenever the observed model reports any
// change. Hosts are expected to repaint the whole widget in response; the
// widget never attempts a partial repaint.
func (w *Widget) OnInvalidate(fn func()) { w.invalidate = fn }

func (w *Widget) onModelEvent(deck.Event) {
	if w.invalidate != nil {
		w.invalidate()
	}
}

// Render draws every card bottom to top onto s, so later cards cover
// earlier ones. The widget owns its whole surface exclusively; hosts must
// not composite anything else into its bounds. An unresolvable image
// aborts the pass and the error propagates to the host, which decides
// whether to retry, skip or substitute.
func (w *Widget) Render(s Surface) error {
	for i := 0; i < w.model.Len(); i++ {
		img, err := w.cache.Resolve(w.model.At(i))
		if err != nil {
			return err
		}
		s.DrawImage(img, w.insets.Left, w.insets.Top+offsetOf(i, w.vgap))
	}
	return nil
}

// PreferredSize reports the footprint the widget wants on screen. A size
// pinned with SetPreferredSize wins over the computed one.
func (w *Widget) PreferredSize() (image.Point, error) {
	if w.pinned != nil {
		return *w.pinned, nil
	}
	return bounds(w.model, w.cache, w.vgap, w.insets)
}

// SetPreferredSize pins an explicit size, short-circuiting the computed
// layout entirely.
func (w *Widget) SetPreferredSize(size image.Point) { w.pinned = &size }

// ClearPreferredSize returns the widget to computed sizing.
func (w *Widget) ClearPreferredSize() { w.pinned = nil }

// PreviewAt reports the card under a widget-local pointer position
// together with its image, for the host to display as an inline preview.
// A nil Preview means the pointer is over no card.
func (w *Widget) PreviewAt(p image.Point) (*Preview, error) {
	p.X -= w.insets.Left
	p.Y -= w.insets.Top
	return locate(w.model, w.cache, w.vgap, p)
}
