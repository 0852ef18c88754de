package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/bossfight/assets"
	"github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/fonts"
	"github.com/automoto/bossfight/scenes"
	"github.com/automoto/bossfight/sfx"
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

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(setup *scenes.Setup) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipIntro {
		g.scene = scenes.NewArenaScene(g, setup)
	} else {
		g.scene = scenes.NewIntroScene(g, setup)
	}

	return g
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
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay constants, reloaded on change")
	flag.BoolVar(&config.Debug.ShowBounds, "bounds", false, "draw collision volumes")
	flag.BoolVar(&config.Debug.SkipIntro, "skip-intro", false, "start in the arena")
	flag.Parse()

	setup := &scenes.Setup{}

	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Printf("Warning: %v, using built-in constants", err)
		} else {
			t.Apply()
			w, err := config.WatchTuning(*tuningPath, t)
			if err != nil {
				log.Printf("Warning: could not watch %s: %v", *tuningPath, err)
			} else {
				defer w.Close()
				setup.Tuning = w
			}
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal(err)
	}

	arena, err := assets.LoadArena()
	if err != nil {
		log.Printf("Warning: %v, using the default arena", err)
	} else {
		setup.Arena = arena
	}

	if player, err := sfx.NewPlayer(); err != nil {
		log.Printf("Warning: audio disabled: %v", err)
	} else {
		setup.Audio = player
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Boss Fight")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(setup)); err != nil {
		log.Fatal(err)
	}
}
