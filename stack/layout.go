// stack/layout.go

package stack

import (
	"image"

	"github.com/waozixyz/cardstack/deck"
)

// offsetOf is the content-local y offset of the card at index i. Index 0
// sits at the content origin, every later card one gap further down.
func offsetOf(i, vgap int) int { return i * vgap }

// bounds computes the footprint the stack needs: the widest image by the
// lowest image bottom edge, plus the host insets on all four sides. Width
// and height maxima are tracked independently; only the height depends on
// the card's position in the stack.
func bounds(m deck.Model, c *Cache, vgap int, ins Insets) (image.Point, error) {
	var maxX, maxY int
	for i := 0; i < m.Len(); i++ {
		img, err := c.Resolve(m.At(i))
		if err != nil {
			return image.Point{}, err
		}
		sz := img.Bounds().Size()
		if sz.X > maxX {
			maxX = sz.X
		}
		if h := sz.Y + offsetOf(i, vgap); h > maxY {
			maxY = h
		}
	}
	return image.Pt(maxX+ins.Left+ins.Right, maxY+ins.Top+ins.Bottom), nil
}
