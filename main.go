package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/boxcollide/assets"
	"github.com/automoto/boxcollide/config"
	"github.com/automoto/boxcollide/scenes"
	"github.com/automoto/boxcollide/systems"
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

func NewGame(level string, watcher *config.Watcher, configPath string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, level, watcher, configPath)
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
	configPath := flag.String("config", "boxcollide.yaml", "YAML file overriding the built-in configuration")
	level := flag.String("level", assets.DemoLevel, "embedded level to play")
	watch := flag.Bool("watch", true, "reload the config file when it changes")
	flag.Parse()

	if err := config.LoadOverrides(*configPath); err != nil {
		log.Fatalf("[config] %v", err)
	}

	var watcher *config.Watcher
	if *watch {
		w, err := config.Watch(*configPath)
		if err != nil {
			log.Printf("[config] Warning: Could not watch %s: %v", *configPath, err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("[persistence] Warning: Could not initialize persistence: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.Physics.TickRate)

	if err := ebiten.RunGame(NewGame(*level, watcher, *configPath)); err != nil {
		log.Fatal(err)
	}
}
