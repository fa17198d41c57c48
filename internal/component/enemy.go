// internal/component/enemy.go
package component

// SpawnSide — с какого края дороги появился враг.
type SpawnSide int

const (
	SideLeft SpawnSide = iota
	SideRight
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID      string // ID из enemies.yaml
	Side       SpawnSide
	Bounty     int  // Золото за убийство, уже с учётом волны
	ReachedEnd bool // Достиг ли враг крепости
}
