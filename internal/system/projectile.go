// internal/system/projectile.go
package system

import (
	"math"

	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
// Снаряд самонаводится: каждый тик вектор пересчитывается на текущую
// позицию цели.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.removeProjectile(id)
			continue
		}

		// Слабая ссылка на цель: проверяем существование по реестру.
		// Цель пропала (убита или дошла до крепости) — тихо убираем
		// снаряд, урона нет.
		if _, alive := s.ecs.Enemies[proj.TargetID]; !alive {
			s.removeProjectile(id)
			continue
		}
		targetPos := s.ecs.Positions[proj.TargetID]
		if targetPos == nil {
			s.removeProjectile(id)
			continue
		}

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		dist := math.Hypot(dx, dy)

		// Этот тик довёл бы снаряд до цели — засчитываем попадание.
		if dist <= proj.Speed*deltaTime {
			if health, ok := s.ecs.Healths[proj.TargetID]; ok {
				health.Value -= proj.Damage
				if health.Value < 0 {
					health.Value = 0
				}
			}
			s.removeProjectile(id)
			continue
		}

		pos.X += dx / dist * proj.Speed * deltaTime
		pos.Y += dy / dist * proj.Speed * deltaTime
	}
}

func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Projectiles, id)
	delete(s.ecs.Renderables, id)
}
