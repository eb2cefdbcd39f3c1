// internal/app/run.go
package app

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/waozixyz/cardstack/deck"
	"github.com/waozixyz/cardstack/internal/config"
	"github.com/waozixyz/cardstack/stack"
	"github.com/waozixyz/cardstack/stack/raylib"
)

// Run is the shared host logic behind the cardstack binaries: load
// configuration, build the observed model and the widget, hand both to the
// raylib window loop.
func Run() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	imageDir := flag.String("dir", "", "Directory with card images (overrides config)")
	vgap := flag.Int("vgap", 0, "Vertical gap between stacked cards (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("ERROR: Cannot load configuration: %v", err)
	}
	if *imageDir != "" {
		cfg.Images.Dir = *imageDir
	}
	if *vgap != 0 {
		cfg.Stack.VGap = *vgap
	}

	// positional card names beat the configured list
	cards := flag.Args()
	if len(cards) == 0 {
		cards = cfg.Stack.Cards
	}
	if len(cards) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: cardstack-raylib [-dir <image_dir>] [-vgap <px>] <card> [<card> ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	items := make([]deck.Item, len(cards))
	for i, name := range cards {
		items[i] = deck.Item(name)
	}
	model := deck.NewSliceModel(items...)

	widget, err := stack.New(model, raylib.DirProvider{Dir: cfg.Images.Dir})
	if err != nil {
		log.Fatalf("ERROR: Cannot create widget: %v", err)
	}
	if err := widget.SetVGap(cfg.Stack.VGap); err != nil {
		log.Fatalf("ERROR: Bad vgap %d: %v", cfg.Stack.VGap, err)
	}

	wc := raylib.DefaultWindowConfig()
	wc.Title = cfg.Window.Title
	wc.Width = cfg.Window.Width
	wc.Height = cfg.Window.Height

	log.Printf("Displaying %d cards, images from %s", model.Len(), cfg.Images.Dir)
	if err := raylib.Run(widget, wc); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	log.Println("Exiting.")
}
