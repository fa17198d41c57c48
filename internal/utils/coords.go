// internal/utils/coords.go
package utils

import "go-lane-defense/internal/config"

// CellCenter переводит клетку карты в экранные координаты её центра.
func CellCenter(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * config.TileSize
	y := config.MapOffsetY + (float64(row)+0.5)*config.TileSize
	return x, y
}

// ScreenToCell переводит экранные координаты в клетку карты.
// ok == false для точек над полосой HUD.
func ScreenToCell(x, y float64) (col, row int, ok bool) {
	if y < config.MapOffsetY {
		return 0, 0, false
	}
	col = int(x / config.TileSize)
	row = int((y - config.MapOffsetY) / config.TileSize)
	return col, row, true
}
