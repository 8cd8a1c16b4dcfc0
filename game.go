package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/example/qwerasdf/internal/config"
	"github.com/example/qwerasdf/internal/hook"
	"github.com/example/qwerasdf/internal/scene"
	"github.com/example/qwerasdf/internal/tools"
)

type Game struct {
	scene    *scene.Scene
	messages *scene.Messages
	log      *slog.Logger

	input   input
	layer   *ebiten.Image
	width   int
	height  int
	cfgPath string
	watcher *config.Watcher
}

func NewGame(p config.Params, cfgPath string, log *slog.Logger) *Game {
	messages := scene.NewMessages(log)
	m := tools.NewMenu()
	m.SetTranslation(p.MenuTranslate[0], p.MenuTranslate[1])
	g := &Game{
		scene:    scene.New(p, m, messages, log),
		messages: messages,
		log:      log,
		width:    p.Window.Width,
		height:   p.Window.Height,
		cfgPath:  cfgPath,
	}
	g.scene.Host = g
	tools.Install(g.scene)
	g.scene.History.Savepoint(g.scene)

	if w, err := config.Watch(cfgPath, log); err != nil {
		log.Warn("config changes will not be picked up", "path", cfgPath, "err", err)
	} else {
		g.watcher = w
	}
	messages.PostInfo("SPACE: menu | Z/X: undo/redo | V: change view")
	return g
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) Update() error {
	events := g.input.poll(g.scene.Prompt != "", g.width, g.height)
	if g.watcher != nil && g.watcher.Changed() {
		events = append(events, hook.Event{Type: hook.Reload, Path: g.cfgPath})
	}
	tools.Pump(g.scene, events)
	g.messages.Tick()
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("close config watcher", "err", err)
		}
	}
}
