// stack/cache.go

package stack

import (
	"image"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/waozixyz/cardstack/deck"
)

// Cache memoizes the display-scaled image of every card it has resolved.
// Entries are keyed by item value and are never evicted or reloaded, so
// memory grows with the number of distinct card names seen. That is fine
// for a closed catalog of cards; the cache is not meant for open-ended,
// user-generated names.
//
// A Cache is not safe for concurrent use; like the widget that owns it,
// it lives on the host's single UI thread.
type Cache struct {
	provider Provider
	images   map[deck.Item]image.Image
}

// NewCache creates an empty cache resolving images through p.
func NewCache(p Provider) *Cache {
	return &Cache{
		provider: p,
		images:   make(map[deck.Item]image.Image),
	}
}

// Resolve returns the display image for an item, loading and scaling it on
// first reference. Repeated calls return the identical image value and do
// not touch the provider. A failed load is not remembered as a negative
// entry; the next Resolve asks the provider again.
func (c *Cache) Resolve(it deck.Item) (image.Image, error) {
	if img, ok := c.images[it]; ok {
		return img, nil
	}
	raw, err := c.provider.Load(Key(it))
	if err != nil {
		return nil, err
	}
	img := scaleToWidth(raw, DisplayWidth)
	c.images[it] = img
	return img, nil
}

// Len reports how many distinct items have been resolved so far.
func (c *Cache) Len() int { return len(c.images) }

// Key derives the provider lookup key for an item: its name, case-folded.
func Key(it deck.Item) string { return strings.ToLower(it.String()) }

// scaleToWidth scales img to the given width preserving its aspect ratio,
// with the height rounded down.
func scaleToWidth(img image.Image, width int) image.Image {
	b := img.Bounds()
	if b.Dx() == width || b.Dx() == 0 {
		return img
	}
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
