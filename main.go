package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/olsen/assets"
	"github.com/automoto/olsen/assets/animations"
	"github.com/automoto/olsen/config"
	"github.com/automoto/olsen/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "olsen.yaml", "optional YAML config overlay")
	debug := flag.Bool("debug", false, "show the player state overlay")
	flag.Parse()

	if err := config.LoadFile(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *debug {
		config.Debug.Overlay = true
	}

	logger := log.Default()

	sheets, err := assets.NewEmbeddedSheetLoader(logger)
	if err != nil {
		log.Fatalf("Failed to open assets: %v", err)
	}
	catalog, err := animations.BuildCatalog(config.PlayerAnimations, sheets)
	if err != nil {
		log.Fatalf("Failed to build animation catalog: %v", err)
	}
	log.Printf("Loaded %d player animations", catalog.Len())

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewPlayerScene(sheets, catalog, logger))); err != nil {
		log.Fatal(err)
	}
}
