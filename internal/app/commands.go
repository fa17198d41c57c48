// internal/app/commands.go
package app

import (
	"errors"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/lanemap"
)

// ErrInvalidState возвращается для команды над объектом в неподходящем
// состоянии: стройка на занятом слоте, апгрейд несуществующей башни и т.п.
// Состояние игры при этом не меняется.
var ErrInvalidState = errors.New("invalid state")

// CommandResult сопровождает ответ на каждую команду, чтобы UI мог сразу
// обновить показатели, не дожидаясь следующего снапшота.
type CommandResult struct {
	Gold  int
	Lives int
	Wave  int
}

func (g *Game) commandResult() CommandResult {
	st := g.ECS.Status
	return CommandResult{Gold: st.Gold, Lives: st.Lives, Wave: st.Wave}
}

// UnlockSlot переводит слот Locked -> Empty за фиксированную цену.
// Повторный вызов на уже открытом слоте — no-op с ErrInvalidState.
func (g *Game) UnlockSlot(slotIndex int) (CommandResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ECS.Status.Running {
		return g.commandResult(), ErrInvalidState
	}
	if slotIndex < 0 || slotIndex >= len(g.Slots) {
		return g.commandResult(), ErrInvalidState
	}
	slot := g.Slots[slotIndex]
	if slot.State != lanemap.SlotLocked {
		return g.commandResult(), ErrInvalidState
	}
	if err := g.EconomySystem.TrySpend(config.SlotUnlockCost); err != nil {
		return g.commandResult(), err
	}
	slot.State = lanemap.SlotEmpty
	g.EventDispatcher.Dispatch(event.Event{Type: event.SlotUnlocked, Data: slotIndex})
	return g.commandResult(), nil
}

// BuildTower строит башню указанного вида на пустом слоте. Проверки идут до
// списания золота: при любой ошибке состояние не меняется.
func (g *Game) BuildTower(slotIndex int, kindID string) (CommandResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ECS.Status.Running {
		return g.commandResult(), ErrInvalidState
	}
	if slotIndex < 0 || slotIndex >= len(g.Slots) {
		return g.commandResult(), ErrInvalidState
	}
	slot := g.Slots[slotIndex]
	if slot.State != lanemap.SlotEmpty {
		return g.commandResult(), ErrInvalidState
	}
	def, ok := defs.TowerLibrary[kindID]
	if !ok {
		return g.commandResult(), ErrInvalidState
	}
	if err := g.EconomySystem.TrySpend(def.Cost); err != nil {
		return g.commandResult(), err
	}

	slot.State = lanemap.SlotOccupied

	id := g.ECS.NewEntity()
	x, y := utils.CellCenter(slot.Col, slot.Row)
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{
		DefID: kindID,
		Col:   slot.Col,
		Row:   slot.Row,
		Level: 1,
	}
	// Казармы каталожно существуют без боевых статов: компонента Combat у
	// них нет, и стрелять они не начнут.
	if def.Combat != nil {
		g.ECS.Combats[id] = &component.Combat{
			Damage:   def.Combat.Damage,
			Range:    def.Combat.Range,
			FireRate: def.Combat.FireRate,
		}
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color.RGBA,
		Radius:    float32(config.TileSize * def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return g.commandResult(), nil
}

// UpgradeCost — цена апгрейда с текущего уровня: floor(cost * 0.5 * level).
func UpgradeCost(kindCost, level int) int {
	return int(float64(kindCost) * config.UpgradeCostFactor * float64(level))
}

// UpgradeTower повышает уровень башни и умножает урон. Радиус и скорость
// стрельбы апгрейдом не трогаются.
func (g *Game) UpgradeTower(towerID types.EntityID) (CommandResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ECS.Status.Running {
		return g.commandResult(), ErrInvalidState
	}
	tower, ok := g.ECS.Towers[towerID]
	if !ok {
		return g.commandResult(), ErrInvalidState
	}
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		return g.commandResult(), ErrInvalidState
	}
	if err := g.EconomySystem.TrySpend(UpgradeCost(def.Cost, tower.Level)); err != nil {
		return g.commandResult(), err
	}

	tower.Level++
	if combat, ok := g.ECS.Combats[towerID]; ok {
		combat.Damage = int(float64(combat.Damage) * config.UpgradeDamageFactor)
	}

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: towerID})
	return g.commandResult(), nil
}
