// stack/raylib/surface.go

package raylib

import (
	"image"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface implements stack.Surface on an open raylib window. Each image is
// uploaded to the GPU once and the texture reused on every later draw. The
// texture map is keyed by the image value itself; the stack cache hands
// out a stable pointer-backed image per card, so the key holds up.
type Surface struct {
	textures map[image.Image]rl.Texture2D
}

// NewSurface creates a surface with an empty texture cache. The raylib
// window must be initialized before the first DrawImage call.
func NewSurface() *Surface {
	return &Surface{textures: make(map[image.Image]rl.Texture2D)}
}

// DrawImage blits img with its top-left corner at window coordinates (x, y).
func (s *Surface) DrawImage(img image.Image, x, y int) {
	tex := s.texture(img)
	if tex.ID == 0 {
		return
	}
	rl.DrawTexture(tex, int32(x), int32(y), rl.White)
}

func (s *Surface) texture(img image.Image) rl.Texture2D {
	if tex, ok := s.textures[img]; ok {
		return tex
	}
	tex := rl.LoadTextureFromImage(rl.NewImageFromImage(img))
	if tex.ID == 0 {
		log.Printf("ERROR Surface: failed to upload %dx%d image to GPU",
			img.Bounds().Dx(), img.Bounds().Dy())
	}
	s.textures[img] = tex
	return tex
}

// Cleanup releases every uploaded texture. The surface stays usable;
// images are re-uploaded on their next draw.
func (s *Surface) Cleanup() {
	for img, tex := range s.textures {
		if tex.ID > 0 {
			rl.UnloadTexture(tex)
		}
		delete(s.textures, img)
	}
}
