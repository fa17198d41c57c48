// internal/system/movement.go
package system

import (
	"math"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/lanemap"
)

// MovementSystem ведёт врагов по прямой к центру крепости. Нарисованная
// дорога — только декорация: враг идёт на крепость с любой точки.
type MovementSystem struct {
	ecs   *entity.ECS
	keepX float64
	keepY float64
}

func NewMovementSystem(ecs *entity.ECS, laneMap *lanemap.Map) *MovementSystem {
	kx, ky := utils.CellCenter(laneMap.KeepCol, laneMap.PathRow)
	return &MovementSystem{ecs: ecs, keepX: kx, keepY: ky}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		if enemy.ReachedEnd {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		dx := s.keepX - pos.X
		dy := s.keepY - pos.Y
		dist := math.Hypot(dx, dy)
		if dist < config.ArrivalThreshold {
			// Терминально для врага: дальше его снимет игровой цикл,
			// списав жизнь.
			enemy.ReachedEnd = true
			continue
		}

		step := vel.Speed * deltaTime
		if step > dist {
			step = dist
		}
		pos.X += dx / dist * step
		pos.Y += dy / dist * step
	}
}
