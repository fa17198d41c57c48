// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
)

// HUD — верхняя панель с показателями партии.
type HUD struct {
	face font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{face: face}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot, speed float64) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.MapOffsetY, config.HudPanelColor, false)

	line := fmt.Sprintf("Gold: %d    Lives: %d    Wave: %d    Speed: x%g", snap.Gold, snap.Lives, snap.Wave, speed)
	text.Draw(screen, line, h.face, 20, 34, config.TextLightColor)

	hint := "LMB: unlock / build / upgrade    S: speed    P: pause    R: restart"
	text.Draw(screen, hint, h.face, 20, 62, config.TextDimColor)

	run := fmt.Sprintf("run %s", snap.RunID[:8])
	bounds := text.BoundString(h.face, run)
	text.Draw(screen, run, h.face, config.ScreenWidth-bounds.Dx()-20, 34, config.TextDimColor)
}
