package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/example/qwerasdf/internal/config"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	path, err := config.Path(os.Getenv("QWERASDF_CONFIG"))
	if err != nil {
		panic(err)
	}
	p, err := config.Load(path)
	if err != nil {
		log.Error("using default config", "err", err)
	}

	game := NewGame(p, path, log)
	defer game.Close()
	if err != nil {
		game.messages.PostError(err.Error())
	}

	ebiten.SetWindowSize(p.Window.Width, p.Window.Height)
	ebiten.SetWindowTitle("qwerasdf")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
