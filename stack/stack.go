// stack/stack.go

// Package stack implements a widget that displays an ordered collection of
// named cards as a pile of overlapping images. Each card is drawn shifted
// down from the previous one by a fixed vertical gap, so only the top band
// of every covered card stays visible.
//
// The package is rendering-backend agnostic: images come in through a
// Provider, draw instructions go out through a Surface, and the card list
// is any deck.Model. Backends live in subpackages (see stack/raylib).
package stack

import (
	"errors"
	"fmt"
	"image"
)

const (
	// DefaultVGap is the default vertical gap between stacked cards.
	// 55 shows just the name band of a full card image.
	DefaultVGap = 55

	// DisplayWidth is the width every cached image is scaled to.
	DisplayWidth = 150
)

// ErrInvalidVGap reports an attempt to configure a zero or negative
// vertical gap. The gap is validated where it is set, never clamped.
var ErrInvalidVGap = errors.New("stack: vgap must be positive")

// NotFoundError reports that a Provider has no image for a lookup key.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("stack: no image for key %q", e.Key)
}

// Provider supplies raw decoded bitmaps for lookup keys. A key is the
// case-folded card name; where the bitmap comes from (disk, embedded
// assets, ...) is the provider's business. Load returns a *NotFoundError
// when it cannot resolve a key.
type Provider interface {
	Load(key string) (image.Image, error)
}

// Surface receives the draw instructions of one render pass, back to
// front. (x, y) are surface coordinates of the image's top-left corner.
type Surface interface {
	DrawImage(img image.Image, x, y int)
}

// Insets are the host's border margins around the widget content,
// passed through into layout and hit testing unchanged.
type Insets struct {
	Top, Right, Bottom, Left int
}
