// internal/state/game_state.go
package state

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/render"
	"go-lane-defense/internal/ui"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/lanemap"
)

// GameState — состояние игры: тикает симуляцию, транслирует клики в команды
// и рисует сцену по снапшоту.
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	face          font.Face
	renderer      *render.Renderer
	hud           *ui.HUD
	buildMenu     *ui.BuildMenu
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, game *app.Game, face font.Face) *GameState {
	return &GameState{
		sm:        sm,
		game:      game,
		face:      face,
		renderer:  render.New(game.LaneMap),
		hud:       ui.NewHUD(face),
		buildMenu: ui.NewBuildMenu(face),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.game.CycleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Reset(0)
		g.sm.SetState(NewGameState(g.sm, g.game, g.face))
		return
	}

	g.game.Update(deltaTime)

	if !g.game.Running() {
		g.sm.SetState(NewGameOverState(g.sm, g))
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if time.Since(g.lastClickTime) < config.ClickCooldown*time.Millisecond {
			return
		}
		g.lastClickTime = time.Now()
		g.handleClick(ebiten.CursorPosition())
	}
}

// handleClick: открытое меню перехватывает клик; иначе клик по слоту либо
// открывает его, либо начинает стройку, либо апгрейдит стоящую башню.
func (g *GameState) handleClick(x, y int) {
	if g.buildMenu.Visible() {
		if kindID, ok := g.buildMenu.Hit(x, y); ok {
			if _, err := g.game.BuildTower(g.buildMenu.SlotIndex(), kindID); err != nil {
				log.Printf("build %s rejected: %v", kindID, err)
			}
		}
		g.buildMenu.Close()
		return
	}

	col, row, ok := utils.ScreenToCell(float64(x), float64(y))
	if !ok {
		return
	}

	slotIndex, hasSlot := g.game.SlotIndexAt(col, row)
	if !hasSlot {
		return
	}

	switch g.game.Slots[slotIndex].State {
	case lanemap.SlotLocked:
		if _, err := g.game.UnlockSlot(slotIndex); err != nil {
			log.Printf("unlock slot %d rejected: %v", slotIndex, err)
		}
	case lanemap.SlotEmpty:
		g.buildMenu.Open(slotIndex, x, y)
	case lanemap.SlotOccupied:
		if towerID, found := g.game.TowerAt(col, row); found {
			if _, err := g.game.UpgradeTower(towerID); err != nil {
				log.Printf("upgrade tower %d rejected: %v", towerID, err)
			}
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap)
	g.hud.Draw(screen, snap, g.game.SpeedMultiplier())
	g.buildMenu.Draw(screen, snap.Gold)
}

func (g *GameState) Exit() {}
