// cmd/game/main.go
package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/debug"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/state"
	"go-lane-defense/internal/ui"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := defs.LoadDefinitions(); err != nil {
		log.Fatal(err)
	}
	face, err := ui.LoadFontFace(16)
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(0)
	go debug.ListenAndServe(config.DebugAddr, game)

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, game, face))

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Lane Defense")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
