// pkg/lanemap/map.go
package lanemap

// Tile — тип клетки статической карты.
type Tile int

const (
	TileGrass Tile = iota
	TilePath
	TileKeep
	TileWall
)

// Map is the static battlefield: a fixed rectangular grid with a single
// horizontal path row and one keep cell at its center. Tiles are assigned
// once at construction and never change during play.
type Map struct {
	Cols, Rows int
	PathRow    int
	KeepCol    int
	Tiles      [][]Tile
}

// New builds the map: the middle row is the enemy lane, its center cell is
// the keep, the top and bottom border rows are walls, everything else grass.
func New(cols, rows int) *Map {
	m := &Map{
		Cols:    cols,
		Rows:    rows,
		PathRow: rows / 2,
		KeepCol: cols / 2,
	}
	m.Tiles = make([][]Tile, rows)
	for row := 0; row < rows; row++ {
		m.Tiles[row] = make([]Tile, cols)
		for col := 0; col < cols; col++ {
			switch {
			case row == 0 || row == rows-1:
				m.Tiles[row][col] = TileWall
			case row == m.PathRow && col == m.KeepCol:
				m.Tiles[row][col] = TileKeep
			case row == m.PathRow:
				m.Tiles[row][col] = TilePath
			default:
				m.Tiles[row][col] = TileGrass
			}
		}
	}
	return m
}

// Contains reports whether the cell lies inside the grid.
func (m *Map) Contains(col, row int) bool {
	return col >= 0 && col < m.Cols && row >= 0 && row < m.Rows
}

// TileAt returns the tile at the cell; out-of-bounds cells read as walls.
func (m *Map) TileAt(col, row int) Tile {
	if !m.Contains(col, row) {
		return TileWall
	}
	return m.Tiles[row][col]
}

// SpawnCols returns the lane columns enemies enter from (left and right edge).
func (m *Map) SpawnCols() (int, int) {
	return 0, m.Cols - 1
}
