// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm   *StateMachine
	game *app.Game
	face font.Face
}

func NewMenuState(sm *StateMachine, game *app.Game, face font.Face) *MenuState {
	return &MenuState{sm: sm, game: game, face: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.game.Reset(0)
		m.sm.SetState(NewGameState(m.sm, m.game, m.face))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, m.face, "LANE DEFENSE", config.ScreenHeight/2-20, config.TextLightColor)
	drawCentered(screen, m.face, "Press SPACE to start", config.ScreenHeight/2+20, config.TextDimColor)
}

func (m *MenuState) Exit() {}

func drawCentered(screen *ebiten.Image, face font.Face, s string, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, (config.ScreenWidth-bounds.Dx())/2, y, clr)
}
