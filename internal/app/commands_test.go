// internal/app/commands_test.go
package app

import (
	"errors"
	"testing"

	"go-lane-defense/internal/system"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanemap"
)

func TestBuildTower(t *testing.T) {
	g := NewGame(1)
	idx := findSlot(t, g, lanemap.SlotEmpty)
	slot := g.Slots[idx]

	res, err := g.BuildTower(idx, "TOWER_ARCHER")
	if err != nil {
		t.Fatalf("BuildTower failed: %v", err)
	}
	if res.Gold != 250 {
		t.Errorf("gold = %d after building archer, want 250", res.Gold)
	}
	if slot.State != lanemap.SlotOccupied {
		t.Errorf("slot state = %v, want occupied", slot.State)
	}

	id, found := g.TowerAt(slot.Col, slot.Row)
	if !found {
		t.Fatal("no tower at the built cell")
	}
	tower := g.ECS.Towers[id]
	if tower.Level != 1 || tower.DefID != "TOWER_ARCHER" {
		t.Errorf("tower = %+v, want level-1 archer", *tower)
	}
	combat, ok := g.ECS.Combats[id]
	if !ok {
		t.Fatal("archer has no combat component")
	}
	if combat.Damage != 10 || combat.Range != 110 || combat.FireRate != 2.0 {
		t.Errorf("combat = %+v, want damage 10, range 110, fire rate 2.0", *combat)
	}
	if combat.FireCooldown != 0 {
		t.Errorf("fresh tower cooldown = %v, want 0", combat.FireCooldown)
	}
}

func TestBuildTowerRejections(t *testing.T) {
	g := NewGame(1)
	idx := findSlot(t, g, lanemap.SlotEmpty)
	if _, err := g.BuildTower(idx, "TOWER_ARCHER"); err != nil {
		t.Fatalf("setup build failed: %v", err)
	}

	tests := []struct {
		name string
		idx  int
		kind string
	}{
		{"occupied slot", idx, "TOWER_CANNON"},
		{"locked slot", findSlot(t, g, lanemap.SlotLocked), "TOWER_ARCHER"},
		{"unknown kind", findSlot(t, g, lanemap.SlotEmpty), "TOWER_NOPE"},
		{"negative index", -1, "TOWER_ARCHER"},
		{"index past end", len(g.Slots), "TOWER_ARCHER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := g.Snapshot().Gold
			res, err := g.BuildTower(tt.idx, tt.kind)
			if !errors.Is(err, ErrInvalidState) {
				t.Errorf("got %v, want ErrInvalidState", err)
			}
			if res.Gold != before {
				t.Errorf("gold changed from %d to %d on a rejected build", before, res.Gold)
			}
		})
	}
}

func TestBuildTowerInsufficientFunds(t *testing.T) {
	g := NewGame(1)

	// 150 + 100 + 50 выбирают стартовое золото подчистую.
	for _, kind := range []string{"TOWER_MAGE", "TOWER_CANNON", "TOWER_ARCHER"} {
		if _, err := g.BuildTower(findSlot(t, g, lanemap.SlotEmpty), kind); err != nil {
			t.Fatalf("building %s failed: %v", kind, err)
		}
	}
	if got := g.Snapshot().Gold; got != 0 {
		t.Fatalf("gold = %d after three builds, want 0", got)
	}

	idx := findSlot(t, g, lanemap.SlotEmpty)
	_, err := g.BuildTower(idx, "TOWER_ARCHER")
	if !errors.Is(err, system.ErrInsufficientFunds) {
		t.Errorf("got %v, want ErrInsufficientFunds", err)
	}
	if g.Slots[idx].State != lanemap.SlotEmpty {
		t.Error("rejected build changed the slot state")
	}
}

func TestBuildBarracksHasNoCombat(t *testing.T) {
	g := NewGame(1)
	idx := findSlot(t, g, lanemap.SlotEmpty)
	slot := g.Slots[idx]

	if _, err := g.BuildTower(idx, "TOWER_BARRACKS"); err != nil {
		t.Fatalf("BuildTower failed: %v", err)
	}
	id, found := g.TowerAt(slot.Col, slot.Row)
	if !found {
		t.Fatal("no tower at the built cell")
	}
	if _, ok := g.ECS.Combats[id]; ok {
		t.Error("barracks got a combat component and would open fire")
	}
}

func TestUnlockSlot(t *testing.T) {
	g := NewGame(1)
	idx := findSlot(t, g, lanemap.SlotLocked)

	res, err := g.UnlockSlot(idx)
	if err != nil {
		t.Fatalf("UnlockSlot failed: %v", err)
	}
	if res.Gold != 280 {
		t.Errorf("gold = %d after unlock, want 280", res.Gold)
	}
	if g.Slots[idx].State != lanemap.SlotEmpty {
		t.Errorf("slot state = %v after unlock, want empty", g.Slots[idx].State)
	}

	// Повторный разблок того же слота — отказ без списания.
	res, err = g.UnlockSlot(idx)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("second unlock: got %v, want ErrInvalidState", err)
	}
	if res.Gold != 280 {
		t.Errorf("gold = %d after rejected unlock, want 280", res.Gold)
	}
}

func TestUpgradeCost(t *testing.T) {
	tests := []struct {
		cost, level, want int
	}{
		{50, 1, 25},
		{50, 2, 50},
		{100, 3, 150},
		{150, 1, 75},
	}
	for _, tt := range tests {
		if got := UpgradeCost(tt.cost, tt.level); got != tt.want {
			t.Errorf("UpgradeCost(%d, %d) = %d, want %d", tt.cost, tt.level, got, tt.want)
		}
	}
}

func TestUpgradeTower(t *testing.T) {
	g := NewGame(1)
	idx := findSlot(t, g, lanemap.SlotEmpty)
	slot := g.Slots[idx]
	if _, err := g.BuildTower(idx, "TOWER_ARCHER"); err != nil {
		t.Fatalf("BuildTower failed: %v", err)
	}
	id, _ := g.TowerAt(slot.Col, slot.Row)

	res, err := g.UpgradeTower(id)
	if err != nil {
		t.Fatalf("first upgrade failed: %v", err)
	}
	if res.Gold != 225 {
		t.Errorf("gold = %d after first upgrade, want 225", res.Gold)
	}
	if g.ECS.Towers[id].Level != 2 {
		t.Errorf("level = %d, want 2", g.ECS.Towers[id].Level)
	}
	if got := g.ECS.Combats[id].Damage; got != 15 {
		t.Errorf("damage = %d after first upgrade, want 15", got)
	}

	// Цена растёт с уровнем, урон умножается с округлением вниз.
	res, err = g.UpgradeTower(id)
	if err != nil {
		t.Fatalf("second upgrade failed: %v", err)
	}
	if res.Gold != 175 {
		t.Errorf("gold = %d after second upgrade, want 175", res.Gold)
	}
	if g.ECS.Towers[id].Level != 3 {
		t.Errorf("level = %d, want 3", g.ECS.Towers[id].Level)
	}
	if got := g.ECS.Combats[id].Damage; got != 22 {
		t.Errorf("damage = %d after second upgrade, want 22", got)
	}
}

func TestUpgradeUnknownTower(t *testing.T) {
	g := NewGame(1)
	if _, err := g.UpgradeTower(types.EntityID(999)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("got %v, want ErrInvalidState", err)
	}
}
