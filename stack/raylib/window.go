// stack/raylib/window.go

package raylib

import (
	"fmt"
	"image"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/waozixyz/cardstack/stack"
)

// WindowConfig holds the window-level settings of a card stack host.
// A zero Width or Height means "fit that dimension to the widget".
type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	Resizable  bool
	Background rl.Color
	TargetFPS  int32
}

// DefaultWindowConfig returns the settings used when the host specifies
// nothing: a fitted, fixed-size window on a dark background.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:      "Card Stack",
		Background: rl.NewColor(30, 30, 30, 255),
		TargetFPS:  60,
	}
}

// Run opens a window and renders w every frame until the window is
// closed, drawing an inline preview of the card under the mouse. Model
// changes refit the window through the widget's invalidate callback.
// Errors from the widget (a card image that cannot be resolved) abort the
// loop and are returned unchanged.
func Run(w *stack.Widget, config WindowConfig) error {
	width, height, err := fittedSize(w, config)
	if err != nil {
		return err
	}

	log.Printf("Run: opening window %dx%d, title %q", width, height, config.Title)
	rl.InitWindow(int32(width), int32(height), config.Title)
	defer rl.CloseWindow()
	if config.Resizable {
		rl.SetWindowState(rl.FlagWindowResizable)
	}
	if config.TargetFPS > 0 {
		rl.SetTargetFPS(config.TargetFPS)
	}
	if !rl.IsWindowReady() {
		return fmt.Errorf("raylib: window failed to initialize")
	}

	surface := NewSurface()
	defer surface.Cleanup()

	refit := false
	w.OnInvalidate(func() { refit = true })
	defer w.OnInvalidate(nil)

	for !rl.WindowShouldClose() {
		if refit {
			refit = false
			width, height, err = fittedSize(w, config)
			if err != nil {
				return err
			}
			rl.SetWindowSize(width, height)
		}

		rl.BeginDrawing()
		rl.ClearBackground(config.Background)

		if err := w.Render(surface); err != nil {
			rl.EndDrawing()
			return err
		}

		mouse := rl.GetMousePosition()
		pv, err := w.PreviewAt(image.Pt(int(mouse.X), int(mouse.Y)))
		if err != nil {
			rl.EndDrawing()
			return err
		}
		if pv != nil {
			drawPreview(surface, pv, int(mouse.X), int(mouse.Y), width, height)
		}

		rl.EndDrawing()
	}

	log.Println("Run: window closed")
	return nil
}

// fittedSize resolves the window size from config, falling back to the
// widget's preferred footprint for any dimension left at zero.
func fittedSize(w *stack.Widget, config WindowConfig) (int, int, error) {
	width, height := config.Width, config.Height
	if width == 0 || height == 0 {
		size, err := w.PreferredSize()
		if err != nil {
			return 0, 0, err
		}
		if width == 0 {
			width = size.X
		}
		if height == 0 {
			height = size.Y
		}
	}
	return width, height, nil
}

// drawPreview draws the full card image beside the cursor, nudged back
// inside the window when it would overflow an edge.
func drawPreview(s *Surface, pv *stack.Preview, x, y, winW, winH int) {
	const gap = 12
	sz := pv.Image.Bounds().Size()
	px := x + gap
	if px+sz.X > winW {
		px = x - gap - sz.X
	}
	py := y
	if py+sz.Y > winH {
		py = winH - sz.Y
	}
	if px < 0 {
		px = 0
	}
	if py < 0 {
		py = 0
	}
	s.DrawImage(pv.Image, px, py)
}
