// internal/render/renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/lanemap"
)

// Renderer рисует сцену по снапшоту, не заглядывая внутрь симуляции.
// Статическая карта отрисовывается один раз в кэшированную картинку.
type Renderer struct {
	mapImage *ebiten.Image
	keepX    float64
	keepY    float64
}

func New(laneMap *lanemap.Map) *Renderer {
	r := &Renderer{}
	r.keepX, r.keepY = utils.CellCenter(laneMap.KeepCol, laneMap.PathRow)
	r.renderMapImage(laneMap)
	return r
}

func (r *Renderer) renderMapImage(laneMap *lanemap.Map) {
	img := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	img.Fill(config.BackgroundColor)

	for row := 0; row < laneMap.Rows; row++ {
		for col := 0; col < laneMap.Cols; col++ {
			var clr color.RGBA
			switch laneMap.TileAt(col, row) {
			case lanemap.TilePath:
				clr = config.PathColor
			case lanemap.TileKeep:
				clr = config.KeepColor
			case lanemap.TileWall:
				clr = config.WallColor
			default:
				clr = config.GrassColor
			}
			x := float32(col) * config.TileSize
			y := float32(config.MapOffsetY) + float32(row)*config.TileSize
			vector.DrawFilledRect(img, x+1, y+1, config.TileSize-2, config.TileSize-2, clr, false)
		}
	}
	r.mapImage = img
}

// Draw отрисовывает кадр: карта, слоты, башни, враги, снаряды.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.DrawImage(r.mapImage, nil)

	for _, slot := range snap.Slots {
		var clr color.RGBA
		switch slot.State {
		case "empty":
			clr = config.SlotEmptyColor
		case "occupied":
			clr = config.SlotOccupiedColor
		default:
			clr = config.SlotLockedColor
		}
		x := float32(slot.Col)*config.TileSize + 4
		y := float32(config.MapOffsetY) + float32(slot.Row)*config.TileSize + 4
		vector.StrokeRect(screen, x, y, config.TileSize-8, config.TileSize-8, 2, clr, true)
	}

	vector.StrokeCircle(screen, float32(r.keepX), float32(r.keepY), config.TileSize*0.9, 2, config.KeepRingColor, true)

	for _, tower := range snap.Towers {
		def, ok := defs.TowerLibrary[tower.Kind]
		if !ok {
			continue
		}
		cx, cy := utils.CellCenter(tower.Col, tower.Row)
		radius := float32(config.TileSize * def.Visuals.RadiusFactor)
		if def.Visuals.StrokeWidth > 0 {
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius+2, config.TowerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, def.Visuals.Color.RGBA, true)
		// Уровень — точками над башней.
		for i := 0; i < tower.Level && i < 6; i++ {
			px := float32(cx) - radius + float32(i)*6
			py := float32(cy) - radius - 6
			vector.DrawFilledCircle(screen, px, py, 2, config.TextLightColor, true)
		}
	}

	for _, enemy := range snap.Enemies {
		def, ok := defs.EnemyLibrary[enemy.Kind]
		if !ok {
			continue
		}
		// Радиус сжимается вместе с остатком здоровья.
		scale := 1.0
		if enemy.MaxHP > 0 {
			scale = 0.6 + 0.4*float64(enemy.HP)/float64(enemy.MaxHP)
		}
		radius := float32(float64(enemy.Radius) * scale)
		if def.Visuals.StrokeWidth > 0 {
			vector.DrawFilledCircle(screen, float32(enemy.X), float32(enemy.Y), radius+1, config.TowerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(enemy.X), float32(enemy.Y), radius, def.Visuals.Color.RGBA, true)
	}

	for _, proj := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(proj.X), float32(proj.Y), config.ProjectileRadius, config.ProjectileColor, true)
	}
}
