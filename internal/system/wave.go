// internal/system/wave.go
package system

import (
	"log"
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/lanemap"
)

// WaveSystem спавнит врагов. Расписания нет: каждый тик бросается монетка,
// пока живых врагов меньше мягкого предела wave*WaveEnemyCap.
type WaveSystem struct {
	ecs           *entity.ECS
	laneMap       *lanemap.Map
	rng           *utils.PRNGService
	dispatcher    *event.Dispatcher
	activeEnemies int
}

func NewWaveSystem(ecs *entity.ECS, laneMap *lanemap.Map, rng *utils.PRNGService, dispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		ecs:        ecs,
		laneMap:    laneMap,
		rng:        rng,
		dispatcher: dispatcher,
	}
	dispatcher.Subscribe(event.EnemyRemoved, ws)
	return ws
}

func (s *WaveSystem) Update(deltaTime float64) {
	st := s.ecs.Status
	if s.activeEnemies >= st.Wave*config.WaveEnemyCap {
		return
	}
	if !s.rng.Chance(config.SpawnChance) {
		return
	}
	s.spawnEnemy(st.Wave)
}

// ChooseEnemyID выбирает тип врага для волны: базовый тип по порогу волны,
// затем с фиксированной вероятностью откат к более простому типу.
func ChooseEnemyID(wave int, rng *utils.PRNGService) string {
	tier := defs.TierForWave(wave)
	if tier.RevertTo != "" && rng.Chance(tier.RevertChance) {
		return tier.RevertTo
	}
	return tier.EnemyID
}

// EnemyStats считает статы врага для волны по задокументированным формулам.
// Множители быстрого типа применяются после экспоненциального роста HP —
// порядок сохраняется намеренно.
func EnemyStats(def defs.EnemyDefinition, wave int) (speed float64, health int, bounty int) {
	speed = def.Speed + float64(wave)*def.SpeedGrowth
	hp := float64(def.Health) * math.Pow(def.HealthGrowth, float64(wave))
	bounty = def.Bounty + wave
	if m := def.Modifiers; m != nil {
		speed *= m.Speed
		hp *= m.Health
		bounty = int(float64(bounty) * m.Bounty)
	}
	return speed, int(hp), bounty
}

func (s *WaveSystem) spawnEnemy(wave int) {
	defID := ChooseEnemyID(wave, s.rng)
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		log.Printf("Error: enemy definition not found for ID: %s", defID)
		return
	}

	side := component.SideLeft
	leftCol, rightCol := s.laneMap.SpawnCols()
	col := leftCol
	if s.rng.Intn(2) == 1 {
		side = component.SideRight
		col = rightCol
	}
	x, y := utils.CellCenter(col, s.laneMap.PathRow)

	speed, health, bounty := EnemyStats(def, wave)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color.RGBA,
		Radius:    float32(config.TileSize * def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:  defID,
		Side:   side,
		Bounty: bounty,
	}
	s.activeEnemies++
}

// ActiveEnemies — количество живых врагов по данным системы.
func (s *WaveSystem) ActiveEnemies() int {
	return s.activeEnemies
}

// OnEvent реализует event.Listener.
func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyRemoved {
		s.activeEnemies--
	}
}
