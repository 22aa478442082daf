//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	uni, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Random {
		uni.Randomize(cfg.Seed)
	}

	game := app.New(uni, cfg.Scale, cfg.TPS, cfg.Seed)

	ebiten.SetWindowTitle("lifegrid")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	// Update runs at the maximum simulation rate; the game's fixed-step
	// throttle slows the board down to the configured ticks per second.
	ebiten.SetTPS(240)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
