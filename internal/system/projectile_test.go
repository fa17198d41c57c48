// internal/system/projectile_test.go
package system

import (
	"testing"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
)

func addProjectile(ecs *entity.ECS, x, y float64, target types.EntityID, speed float64, damage int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Projectiles[id] = &component.Projectile{TargetID: target, Speed: speed, Damage: damage}
	return id
}

func TestProjectileStaleTargetCleanup(t *testing.T) {
	ecs := newTestECS()
	ps := NewProjectileSystem(ecs)

	id := addProjectile(ecs, 100, 100, types.EntityID(999), 420, 10)

	ps.Update(1.0 / 60)
	if _, ok := ecs.Projectiles[id]; ok {
		t.Error("projectile with a dead target survived the tick")
	}
	if _, ok := ecs.Positions[id]; ok {
		t.Error("stale projectile left its position component behind")
	}
}

func TestProjectileHit(t *testing.T) {
	ecs := newTestECS()
	ps := NewProjectileSystem(ecs)

	target := addTarget(ecs, 100, 100)
	ecs.Healths[target].Value = 20
	id := addProjectile(ecs, 99, 100, target, 420, 10)

	// За тик снаряд прошёл бы 7px, до цели 1px: попадание.
	ps.Update(1.0 / 60)
	if got := ecs.Healths[target].Value; got != 10 {
		t.Errorf("target health = %d after hit, want 10", got)
	}
	if _, ok := ecs.Projectiles[id]; ok {
		t.Error("projectile survived its own hit")
	}
}

func TestProjectileHitClampsHealth(t *testing.T) {
	ecs := newTestECS()
	ps := NewProjectileSystem(ecs)

	target := addTarget(ecs, 100, 100)
	ecs.Healths[target].Value = 5
	addProjectile(ecs, 99, 100, target, 420, 10)

	ps.Update(1.0 / 60)
	if got := ecs.Healths[target].Value; got != 0 {
		t.Errorf("target health = %d after overkill, want clamped to 0", got)
	}
}

func TestProjectileAdvance(t *testing.T) {
	ecs := newTestECS()
	ps := NewProjectileSystem(ecs)

	target := addTarget(ecs, 1000, 100)
	id := addProjectile(ecs, 0, 100, target, 420, 10)

	ps.Update(1.0 / 60)
	pos, ok := ecs.Positions[id]
	if !ok {
		t.Fatal("projectile disappeared mid-flight")
	}
	if pos.X != 7 || pos.Y != 100 {
		t.Errorf("projectile at (%v, %v), want (7, 100)", pos.X, pos.Y)
	}
	if got := ecs.Healths[target].Value; got != 50 {
		t.Errorf("target health = %d mid-flight, want untouched 50", got)
	}
}

func TestProjectileRehomesOnMovingTarget(t *testing.T) {
	ecs := newTestECS()
	ps := NewProjectileSystem(ecs)

	target := addTarget(ecs, 1000, 100)
	id := addProjectile(ecs, 0, 100, target, 420, 10)

	ps.Update(1.0 / 60)
	// Цель сместилась: вектор снаряда пересчитывается на новую позицию.
	ecs.Positions[target].X = 7
	ecs.Positions[target].Y = 1000

	ps.Update(1.0 / 60)
	pos := ecs.Positions[id]
	if pos.X != 7 || pos.Y != 107 {
		t.Errorf("projectile at (%v, %v), want (7, 107)", pos.X, pos.Y)
	}
}
