// internal/app/snapshot.go
package app

import "sort"

// Snapshot is a read-only view of the run, enough for a renderer or the
// debug endpoint to draw the whole scene without touching the simulation.
type Snapshot struct {
	RunID   string  `json:"run_id"`
	Gold    int     `json:"gold"`
	Lives   int     `json:"lives"`
	Wave    int     `json:"wave"`
	Running bool    `json:"running"`
	Elapsed float64 `json:"elapsed"`

	Enemies     []EnemyView      `json:"enemies"`
	Towers      []TowerView      `json:"towers"`
	Projectiles []ProjectileView `json:"projectiles"`
	Slots       []SlotView       `json:"slots"`
}

type EnemyView struct {
	ID     uint64  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	HP     int     `json:"hp"`
	MaxHP  int     `json:"max_hp"`
	Kind   string  `json:"kind"`
	Radius float32 `json:"-"`
}

type TowerView struct {
	ID    uint64 `json:"id"`
	Col   int    `json:"col"`
	Row   int    `json:"row"`
	Kind  string `json:"kind"`
	Level int    `json:"level"`
}

type ProjectileView struct {
	ID uint64  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type SlotView struct {
	ID    int    `json:"id"`
	Col   int    `json:"col"`
	Row   int    `json:"row"`
	State string `json:"state"`
}

// Snapshot собирает срез состояния под мьютексом. Списки отсортированы по
// id, чтобы вывод был стабильным между вызовами.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.ECS.Status
	snap := Snapshot{
		RunID:   g.RunID.String(),
		Gold:    st.Gold,
		Lives:   st.Lives,
		Wave:    st.Wave,
		Running: st.Running,
		Elapsed: st.Elapsed,
	}

	for id, enemy := range g.ECS.Enemies {
		pos := g.ECS.Positions[id]
		health := g.ECS.Healths[id]
		if pos == nil || health == nil {
			continue
		}
		view := EnemyView{
			ID:    uint64(id),
			X:     pos.X,
			Y:     pos.Y,
			HP:    health.Value,
			MaxHP: health.Max,
			Kind:  enemy.DefID,
		}
		if r := g.ECS.Renderables[id]; r != nil {
			view.Radius = r.Radius
		}
		snap.Enemies = append(snap.Enemies, view)
	}
	sort.Slice(snap.Enemies, func(i, j int) bool { return snap.Enemies[i].ID < snap.Enemies[j].ID })

	for id, tower := range g.ECS.Towers {
		snap.Towers = append(snap.Towers, TowerView{
			ID:    uint64(id),
			Col:   tower.Col,
			Row:   tower.Row,
			Kind:  tower.DefID,
			Level: tower.Level,
		})
	}
	sort.Slice(snap.Towers, func(i, j int) bool { return snap.Towers[i].ID < snap.Towers[j].ID })

	for id := range g.ECS.Projectiles {
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{ID: uint64(id), X: pos.X, Y: pos.Y})
	}
	sort.Slice(snap.Projectiles, func(i, j int) bool { return snap.Projectiles[i].ID < snap.Projectiles[j].ID })

	for i, slot := range g.Slots {
		snap.Slots = append(snap.Slots, SlotView{
			ID:    i,
			Col:   slot.Col,
			Row:   slot.Row,
			State: slot.State.String(),
		})
	}
	return snap
}
