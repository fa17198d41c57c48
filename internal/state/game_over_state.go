// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lane-defense/internal/config"
)

// GameOverState — терминальный экран: жизни кончились, партия заморожена.
type GameOverState struct {
	sm       *StateMachine
	previous *GameState
}

func NewGameOverState(sm *StateMachine, previous *GameState) *GameOverState {
	return &GameOverState{sm: sm, previous: previous}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		game := s.previous.game
		game.Reset(0)
		s.sm.SetState(NewGameState(s.sm, game, s.previous.face))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	snap := s.previous.game.Snapshot()
	drawCentered(screen, s.previous.face, "GAME OVER", config.ScreenHeight/2-20, config.TextLightColor)
	drawCentered(screen, s.previous.face, fmt.Sprintf("You held out until wave %d", snap.Wave), config.ScreenHeight/2+10, config.TextDimColor)
	drawCentered(screen, s.previous.face, "Press SPACE to try again", config.ScreenHeight/2+40, config.TextDimColor)
}

func (s *GameOverState) Exit() {}
