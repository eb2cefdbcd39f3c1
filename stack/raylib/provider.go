// stack/raylib/provider.go

// Package raylib hosts a stack.Widget in a raylib window: it loads card
// bitmaps from disk, uploads them to the GPU on first use and runs the
// frame loop with mouse-hover previews.
package raylib

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/waozixyz/cardstack/stack"
)

// DirProvider loads card bitmaps from a directory, trying <key>.jpg and
// then <key>.png. One image file per card, named after the card in lower
// case, which is what stack lookup keys already are.
type DirProvider struct {
	Dir string
}

// Load implements stack.Provider.
func (p DirProvider) Load(key string) (image.Image, error) {
	for _, ext := range []string{".jpg", ".png"} {
		path := filepath.Join(p.Dir, key+ext)
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("open card image %s: %w", path, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode card image %s: %w", path, err)
		}
		return img, nil
	}
	return nil, &stack.NotFoundError{Key: key}
}
