// pkg/lanemap/slots.go
package lanemap

import "math/rand"

// SlotState — состояние строительного слота.
type SlotState int

const (
	SlotLocked SlotState = iota
	SlotEmpty
	SlotOccupied
)

func (s SlotState) String() string {
	switch s {
	case SlotLocked:
		return "locked"
	case SlotEmpty:
		return "empty"
	case SlotOccupied:
		return "occupied"
	}
	return "unknown"
}

// Slot is a buildable cell. Col/Row never change after creation; State only
// ever moves forward: Locked -> Empty -> Occupied.
type Slot struct {
	Col, Row int
	State    SlotState
}

const (
	// Клетки вплотную к крепости остаются свободными от слотов.
	keepExclusionRadius = 2
	// Слоты в этом радиусе от колонны крепости открыты с самого начала.
	starterRadius = 5
	// Вероятность появления слота во втором ряду от дороги.
	extraRowChance = 0.3
)

// GenerateSlots produces the slot set for one run. For every lane column
// outside the keep exclusion radius it places slots directly above and below
// the path, plus second-row slots with independent 30% probability. Layout
// is randomized per run; pass a seeded rng for reproducible results.
func GenerateSlots(m *Map, rng *rand.Rand) []*Slot {
	var slots []*Slot

	add := func(col, row int) {
		if !m.Contains(col, row) || m.TileAt(col, row) != TileGrass {
			return
		}
		state := SlotLocked
		if abs(col-m.KeepCol) <= starterRadius {
			state = SlotEmpty
		}
		slots = append(slots, &Slot{Col: col, Row: row, State: state})
	}

	for col := 0; col < m.Cols; col++ {
		if abs(col-m.KeepCol) <= keepExclusionRadius {
			continue
		}
		add(col, m.PathRow-1)
		add(col, m.PathRow+1)
		if rng.Float64() < extraRowChance {
			add(col, m.PathRow-2)
		}
		if rng.Float64() < extraRowChance {
			add(col, m.PathRow+2)
		}
	}
	return slots
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
