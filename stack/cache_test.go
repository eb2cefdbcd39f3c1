package stack

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waozixyz/cardstack/deck"
)

// fakeProvider serves bitmaps of configured raw sizes and counts every
// Load call per key. Unknown keys report NotFoundError like a real
// provider would.
type fakeProvider struct {
	sizes map[string]image.Point
	calls map[string]int
}

func newFakeProvider(sizes map[string]image.Point) *fakeProvider {
	return &fakeProvider{sizes: sizes, calls: make(map[string]int)}
}

func (p *fakeProvider) Load(key string) (image.Image, error) {
	p.calls[key]++
	sz, ok := p.sizes[key]
	if !ok {
		return nil, &NotFoundError{Key: key}
	}
	return image.NewRGBA(image.Rect(0, 0, sz.X, sz.Y)), nil
}

// cardSize is the raw size used across tests: already DisplayWidth wide,
// so the cache stores it unscaled and geometry stays easy to read.
var cardSize = image.Pt(DisplayWidth, 200)

func TestResolveLoadsOnceAndIsReferenceStable(t *testing.T) {
	p := newFakeProvider(map[string]image.Point{"festival": cardSize})
	c := NewCache(p)

	first, err := c.Resolve("Festival")
	require.NoError(t, err)
	second, err := c.Resolve("Festival")
	require.NoError(t, err)

	require.Same(t, first, second, "repeated Resolve must return the identical image")
	require.Equal(t, 1, p.calls["festival"], "provider must be hit at most once per item")
	require.Equal(t, 1, c.Len())
}

func TestResolveCaseFoldsLookupKey(t *testing.T) {
	p := newFakeProvider(map[string]image.Point{"pirateship": cardSize})
	c := NewCache(p)

	_, err := c.Resolve("PirateShip")
	require.NoError(t, err)
	require.Equal(t, 1, p.calls["pirateship"])
}

func TestResolveDistinctItemsCachedSeparately(t *testing.T) {
	p := newFakeProvider(map[string]image.Point{
		"bazaar": cardSize,
		"market": cardSize,
	})
	c := NewCache(p)

	a, err := c.Resolve("Bazaar")
	require.NoError(t, err)
	b, err := c.Resolve("Market")
	require.NoError(t, err)

	require.NotSame(t, a, b)
	require.Equal(t, 2, c.Len())
}

func TestResolveScalesToDisplayWidth(t *testing.T) {
	p := newFakeProvider(map[string]image.Point{"bazaar": image.Pt(300, 400)})
	c := NewCache(p)

	img, err := c.Resolve("Bazaar")
	require.NoError(t, err)

	sz := img.Bounds().Size()
	require.Equal(t, DisplayWidth, sz.X)
	require.Equal(t, 200, sz.Y, "aspect ratio must be preserved")
}

func TestResolveKeepsImageAlreadyAtDisplayWidth(t *testing.T) {
	p := newFakeProvider(map[string]image.Point{"bazaar": cardSize})
	c := NewCache(p)

	img, err := c.Resolve("Bazaar")
	require.NoError(t, err)
	require.Equal(t, cardSize, img.Bounds().Size())
}

func TestResolveNotFoundIsNotNegativelyCached(t *testing.T) {
	p := newFakeProvider(nil)
	c := NewCache(p)

	_, err := c.Resolve("Curse")
	require.Error(t, err)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "curse", nf.Key)

	_, err = c.Resolve("Curse")
	require.Error(t, err)
	require.Equal(t, 2, p.calls["curse"], "a miss must retry the provider")
	require.Equal(t, 0, c.Len())
}

func TestResolveCacheSurvivesAnyModelChurn(t *testing.T) {
	// the cache is keyed by item value alone; it does not matter which
	// model an item came from or how often the list was rebuilt
	p := newFakeProvider(map[string]image.Point{"bazaar": cardSize})
	c := NewCache(p)

	for i := 0; i < 5; i++ {
		_, err := c.Resolve(deck.Item("Bazaar"))
		require.NoError(t, err)
	}
	require.Equal(t, 1, p.calls["bazaar"])
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := error(&NotFoundError{Key: "curse"})
	require.Contains(t, err.Error(), `"curse"`)
	require.False(t, errors.Is(err, ErrInvalidVGap))
}
