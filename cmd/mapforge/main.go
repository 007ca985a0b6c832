package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/smasonuk/mapforge"
)

func main() {
	cfg, err := mapforge.ParseConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("parsing flags: %v", err)
	}

	opts := mapforge.PipelineOptions{SideEpsilon: cfg.SideEps, Debug: cfg.Debug}

	game, err := mapforge.NewGame(cfg.MapPath, opts, cfg.LinesOnly)
	if err != nil {
		log.Fatalf("loading %s: %v", cfg.MapPath, err)
	}

	if cfg.DumpJSON != "" {
		if err := mapforge.WriteBSPTree(cfg.DumpJSON, game.RenderData().BSPRoot); err != nil {
			log.Fatalf("writing debug dump: %v", err)
		}
	}

	ebiten.SetWindowSize(640, 480)
	ebiten.SetWindowTitle("mapforge")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("running game: %v", err)
	}
}
