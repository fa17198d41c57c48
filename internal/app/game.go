// internal/app/game.go
package app

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/lanemap"
)

// Game holds the main game state and logic. The mutex serializes ticks
// against commands and snapshot readers: the debug HTTP server runs on its
// own goroutine, and the simulation state is one aggregate with exclusive
// access for the duration of a tick.
type Game struct {
	mu sync.Mutex

	LaneMap *lanemap.Map
	Slots   []*lanemap.Slot
	ECS     *entity.ECS

	EconomySystem    *system.EconomySystem
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	EventDispatcher  *event.Dispatcher

	Rng   *utils.PRNGService
	RunID uuid.UUID

	gameTime        float64
	speedMultiplier float64
	speedLevel      int
}

// NewGame initializes a new game instance. Seed 0 means time-based layout;
// a fixed seed reproduces the slot layout and spawn sequence.
func NewGame(seed int64) *Game {
	g := &Game{}
	g.reset(seed)
	return g
}

// Reset пересоздаёт партию: новая карта, новые слоты, свежий ECS, новый RunID.
func (g *Game) Reset(seed int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset(seed)
}

func (g *Game) reset(seed int64) {
	g.Rng = utils.NewPRNGService(seed)
	g.RunID = uuid.New()
	g.LaneMap = lanemap.New(config.MapCols, config.MapRows)
	g.Slots = lanemap.GenerateSlots(g.LaneMap, g.Rng.Rand())

	ecs := entity.NewECS()
	ecs.Status = &component.GameStatus{
		Gold:    config.StartingGold,
		Lives:   config.StartingLives,
		Wave:    1,
		Running: true,
	}
	dispatcher := event.NewDispatcher()

	g.ECS = ecs
	g.EventDispatcher = dispatcher
	g.EconomySystem = system.NewEconomySystem(ecs, dispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, g.LaneMap, g.Rng, dispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, g.LaneMap)
	g.CombatSystem = system.NewCombatSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)

	g.gameTime = 0
	g.speedLevel = 0
	g.speedMultiplier = config.SpeedLevels[0]

	log.Printf("New run %s: %d slots", g.RunID, len(g.Slots))
}

// Update progresses the simulation by one tick. После поражения состояние
// заморожено: тик ничего не меняет.
func (g *Game) Update(deltaTime float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.ECS.Status
	if !st.Running {
		return
	}

	dt := deltaTime * g.speedMultiplier
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.EconomySystem.Update(dt)
	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.removeArrivedEnemies()
	if !st.Running {
		// Последняя жизнь ушла в этом тике.
		return
	}
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.removeDeadEnemies()
}

// removeArrivedEnemies списывает жизни за дошедших до крепости и убирает их
// из реестра до фазы прицеливания.
func (g *Game) removeArrivedEnemies() {
	for id, enemy := range g.ECS.Enemies {
		if !enemy.ReachedEnd {
			continue
		}
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedKeep, Data: id})
		g.removeEnemy(id)
	}
}

// removeDeadEnemies выплачивает награду и убирает убитых. Событие уходит до
// удаления компонентов: подписчики ещё видят врага в реестре.
func (g *Game) removeDeadEnemies() {
	for id := range g.ECS.Enemies {
		health, ok := g.ECS.Healths[id]
		if !ok || health.Value > 0 {
			continue
		}
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
		g.removeEnemy(id)
	}
}

func (g *Game) removeEnemy(id types.EntityID) {
	delete(g.ECS.Positions, id)
	delete(g.ECS.Velocities, id)
	delete(g.ECS.Healths, id)
	delete(g.ECS.Renderables, id)
	delete(g.ECS.Enemies, id)
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyRemoved, Data: id})
}

// SlotIndexAt возвращает индекс слота в клетке, если он там есть.
func (g *Game) SlotIndexAt(col, row int) (int, bool) {
	for i, slot := range g.Slots {
		if slot.Col == col && slot.Row == row {
			return i, true
		}
	}
	return 0, false
}

// TowerAt возвращает башню в клетке, если она там есть.
func (g *Game) TowerAt(col, row int) (types.EntityID, bool) {
	for id, tower := range g.ECS.Towers {
		if tower.Col == col && tower.Row == row {
			return id, true
		}
	}
	return 0, false
}

// CycleSpeed переключает множитель скорости по кругу и возвращает новый.
func (g *Game) CycleSpeed() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.speedLevel = (g.speedLevel + 1) % len(config.SpeedLevels)
	g.speedMultiplier = config.SpeedLevels[g.speedLevel]
	return g.speedMultiplier
}

// Running сообщает, не завершена ли партия.
func (g *Game) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ECS.Status.Running
}

// SpeedMultiplier — текущий множитель скорости.
func (g *Game) SpeedMultiplier() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.speedMultiplier
}

// GameTime — игровое время с учётом множителя скорости.
func (g *Game) GameTime() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gameTime
}
