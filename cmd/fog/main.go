//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"fog-explore/internal/app"
	"fog-explore/internal/explore"
	"fog-explore/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log := logger.FromEnv()

	cfg := explore.DefaultConfig()
	if path := configPath(os.Args[1:]); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			log.WithError(err).Fatal("load config")
		}
	}
	flag.String("config", "", "YAML file applied before the other flags")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := explore.NewSession(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("build session")
	}
	game, err := app.New(session, log)
	if err != nil {
		log.WithError(err).Fatal("build game")
	}

	w, h := game.WindowSize()
	ebiten.SetWindowTitle("fog-explore: " + session.Name())
	ebiten.SetTPS(max(1, cfg.TPS))
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("run")
	}
}
