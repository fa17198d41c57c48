// internal/component/projectile.go
package component

import (
	"image/color"

	"go-lane-defense/internal/types"
)

// Projectile представляет летящий снаряд. TargetID — слабая ссылка: жива ли
// цель, проверяется по реестру, снаряд не продлевает ей жизнь.
type Projectile struct {
	TargetID types.EntityID
	Speed    float64
	Damage   int
	Color    color.RGBA
}
