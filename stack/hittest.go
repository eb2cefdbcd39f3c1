// stack/hittest.go

package stack

import (
	"image"

	"github.com/waozixyz/cardstack/deck"
)

// Preview is the payload for a successful hit test: the card under the
// pointer and its resolved image, for the host to show as an inline
// preview next to the cursor.
type Preview struct {
	Index int
	Item  deck.Item
	Key   string
	Image image.Image
}

// locate finds the card under a content-local point, or nil when the
// point is over no card.
//
// The candidate index is p.Y/vgap, clamped to the last index: a pointer
// below the last band still targets the top card, whose image extends past
// its own offset. The point is then re-based one band above the candidate's
// nominal top edge before the bounds check. That re-basing keeps the exact
// arithmetic of the original CardList and is pinned by tests; changing it
// shifts every hit boundary by one gap.
func locate(m deck.Model, c *Cache, vgap int, p image.Point) (*Preview, error) {
	n := m.Len()
	if n == 0 {
		// without this guard the clamp below would index at -1
		return nil, nil
	}
	i := p.Y / vgap
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		// pointer more than one band above the content origin
		return nil, nil
	}
	it := m.At(i)
	img, err := c.Resolve(it)
	if err != nil {
		return nil, err
	}
	sz := img.Bounds().Size()
	localY := p.Y - (i-1)*vgap
	if p.X < 0 || p.X >= sz.X || localY < 0 || localY >= sz.Y {
		return nil, nil
	}
	return &Preview{Index: i, Item: it, Key: Key(it), Image: img}, nil
}
