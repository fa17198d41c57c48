// internal/component/combat.go
package component

// Combat есть только у стреляющих башен; казармы обходятся без него.
// FireCooldown считается в кадрах (TickRate-единицах), не в секундах.
type Combat struct {
	Damage       int     // Текущий урон, растёт с апгрейдами
	Range        float64 // Радиус в пикселях, не апгрейдится
	FireRate     float64 // Выстрелов в секунду, не апгрейдится
	FireCooldown float64
}
