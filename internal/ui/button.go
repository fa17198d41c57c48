// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-lane-defense/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float32
	Label      string
	Disabled   bool
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(mx, my int) bool {
	x, y := float32(mx), float32(my)
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Draw отрисовывает кнопку с подсветкой под курсором.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	mx, my := ebiten.CursorPosition()
	bg := config.MenuButtonColor
	if b.Disabled {
		bg = config.MenuDisabledColor
	} else if b.Contains(mx, my) {
		bg = config.MenuButtonHoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 1, config.TextLightColor, true)

	var clr color.Color = config.TextLightColor
	if b.Disabled {
		clr = config.TextDimColor
	}
	bounds := text.BoundString(face, b.Label)
	tx := int(b.X) + (int(b.W)-bounds.Dx())/2
	ty := int(b.Y) + int(b.H)/2 + bounds.Dy()/2
	text.Draw(screen, b.Label, face, tx, ty, clr)
}
