// internal/system/combat.go
package system

import (
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
)

// CombatSystem управляет прицеливанием и стрельбой башен.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// Update за тик по каждой башне: снять кулдаун (в кадрах, не ниже нуля),
// выбрать ближайшего врага строго в радиусе, при нулевом кулдауне выпустить
// снаряд и взвести кулдаун заново.
func (s *CombatSystem) Update(deltaTime float64) {
	for id, combat := range s.ecs.Combats {
		if _, hasTower := s.ecs.Towers[id]; !hasTower {
			continue
		}
		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime * config.TickRate
			if combat.FireCooldown < 0 {
				combat.FireCooldown = 0
			}
		}

		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		targetID := s.findNearestEnemyInRange(pos, combat.Range)
		if targetID == 0 || combat.FireCooldown > 0 {
			continue
		}

		s.createProjectile(id, targetID, combat)
		combat.FireCooldown = config.TickRate / combat.FireRate
	}
}

// findNearestEnemyInRange — ближайший в радиусе, не первый попавшийся и не
// самый опасный. Равные дистанции разрешаются порядком обхода.
func (s *CombatSystem) findNearestEnemyInRange(towerPos *component.Position, rangePx float64) types.EntityID {
	var nearest types.EntityID
	minDistance := math.MaxFloat64
	for enemyID, enemy := range s.ecs.Enemies {
		if enemy.ReachedEnd {
			continue
		}
		enemyPos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		distance := math.Hypot(enemyPos.X-towerPos.X, enemyPos.Y-towerPos.Y)
		if distance < rangePx && distance < minDistance {
			minDistance = distance
			nearest = enemyID
		}
	}
	return nearest
}

func (s *CombatSystem) createProjectile(towerID, targetID types.EntityID, combat *component.Combat) {
	towerPos := s.ecs.Positions[towerID]

	projColor := config.ProjectileColor
	if tower, ok := s.ecs.Towers[towerID]; ok {
		if def, ok := defs.TowerLibrary[tower.DefID]; ok {
			projColor = def.Visuals.Color.RGBA
		}
	}

	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		TargetID: targetID,
		Speed:    config.ProjectileSpeed,
		Damage:   combat.Damage,
		Color:    projColor,
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  projColor,
		Radius: config.ProjectileRadius,
	}
}
