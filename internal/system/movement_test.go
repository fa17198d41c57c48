// internal/system/movement_test.go
package system

import (
	"testing"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/lanemap"
)

func addEnemy(ecs *entity.ECS, x, y, speed float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.Enemies[id] = &component.Enemy{DefID: "ENEMY_GRUNT"}
	return id
}

func TestMovementTowardsKeep(t *testing.T) {
	ecs := newTestECS()
	laneMap := lanemap.New(config.MapCols, config.MapRows)
	ms := NewMovementSystem(ecs, laneMap)

	keepX, keepY := utils.CellCenter(laneMap.KeepCol, laneMap.PathRow)
	id := addEnemy(ecs, keepX-100, keepY, 30)

	ms.Update(1.0)
	pos := ecs.Positions[id]
	if pos.X != keepX-70 || pos.Y != keepY {
		t.Errorf("position = (%v, %v), want (%v, %v)", pos.X, pos.Y, keepX-70, keepY)
	}
	if ecs.Enemies[id].ReachedEnd {
		t.Error("enemy 100px out marked as arrived")
	}
}

func TestMovementArrival(t *testing.T) {
	ecs := newTestECS()
	laneMap := lanemap.New(config.MapCols, config.MapRows)
	ms := NewMovementSystem(ecs, laneMap)

	keepX, keepY := utils.CellCenter(laneMap.KeepCol, laneMap.PathRow)
	id := addEnemy(ecs, keepX-config.ArrivalThreshold+2, keepY, 30)

	ms.Update(1.0 / config.TickRate)
	if !ecs.Enemies[id].ReachedEnd {
		t.Error("enemy inside arrival threshold not marked as arrived")
	}
	if pos := ecs.Positions[id]; pos.X != keepX-config.ArrivalThreshold+2 {
		t.Errorf("arrived enemy moved to x=%v", pos.X)
	}
}

func TestMovementStepClamped(t *testing.T) {
	ecs := newTestECS()
	laneMap := lanemap.New(config.MapCols, config.MapRows)
	ms := NewMovementSystem(ecs, laneMap)

	keepX, keepY := utils.CellCenter(laneMap.KeepCol, laneMap.PathRow)
	// Шаг за тик больше оставшейся дистанции: враг не должен проскочить.
	id := addEnemy(ecs, keepX-10, keepY, 50)

	ms.Update(1.0)
	if pos := ecs.Positions[id]; pos.X != keepX {
		t.Errorf("overshooting enemy at x=%v, want clamped to %v", pos.X, keepX)
	}

	ms.Update(1.0)
	if !ecs.Enemies[id].ReachedEnd {
		t.Error("enemy standing on the keep not marked as arrived")
	}
}

func TestMovementSkipsArrived(t *testing.T) {
	ecs := newTestECS()
	laneMap := lanemap.New(config.MapCols, config.MapRows)
	ms := NewMovementSystem(ecs, laneMap)

	keepX, keepY := utils.CellCenter(laneMap.KeepCol, laneMap.PathRow)
	id := addEnemy(ecs, keepX-100, keepY, 30)
	ecs.Enemies[id].ReachedEnd = true

	ms.Update(1.0)
	if pos := ecs.Positions[id]; pos.X != keepX-100 {
		t.Errorf("arrived enemy moved to x=%v", pos.X)
	}
}
