// internal/defs/loader.go
package defs

import (
	"embed"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

//go:embed data/towers.yaml data/enemies.yaml
var dataFS embed.FS

// LoadDefinitions reads the embedded catalogs and populates TowerLibrary,
// BuildOrder and EnemyLibrary. It also checks that the spawn tier table only
// references existing enemies, so a bad ID fails at startup, not mid-wave.
func LoadDefinitions() error {
	towerData, err := dataFS.ReadFile("data/towers.yaml")
	if err != nil {
		return fmt.Errorf("failed to read tower definitions: %w", err)
	}
	var towerDefs []TowerDefinition
	if err := yaml.Unmarshal(towerData, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[string]TowerDefinition)
	BuildOrder = BuildOrder[:0]
	for _, def := range towerDefs {
		if def.ID == "" || def.Cost <= 0 {
			return fmt.Errorf("tower definition %q: missing id or non-positive cost", def.ID)
		}
		if _, dup := TowerLibrary[def.ID]; dup {
			return fmt.Errorf("duplicate tower definition %q", def.ID)
		}
		if c := def.Combat; c != nil && (c.Damage <= 0 || c.FireRate <= 0 || c.Range <= 0) {
			return fmt.Errorf("tower definition %q: combat stats must be positive", def.ID)
		}
		TowerLibrary[def.ID] = def
		BuildOrder = append(BuildOrder, def.ID)
	}

	enemyData, err := dataFS.ReadFile("data/enemies.yaml")
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions: %w", err)
	}
	var enemyDefs []EnemyDefinition
	if err := yaml.Unmarshal(enemyData, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		if def.ID == "" || def.Health <= 0 || def.Speed <= 0 || def.HealthGrowth <= 0 {
			return fmt.Errorf("enemy definition %q: invalid base stats", def.ID)
		}
		if _, dup := EnemyLibrary[def.ID]; dup {
			return fmt.Errorf("duplicate enemy definition %q", def.ID)
		}
		EnemyLibrary[def.ID] = def
	}

	for _, tier := range SpawnTiers {
		if _, ok := EnemyLibrary[tier.EnemyID]; !ok {
			return fmt.Errorf("spawn tier for wave %d references unknown enemy %q", tier.MinWave, tier.EnemyID)
		}
		if tier.RevertTo != "" {
			if _, ok := EnemyLibrary[tier.RevertTo]; !ok {
				return fmt.Errorf("spawn tier for wave %d reverts to unknown enemy %q", tier.MinWave, tier.RevertTo)
			}
		}
	}

	log.Printf("Loaded %d tower and %d enemy definitions", len(TowerLibrary), len(EnemyLibrary))
	return nil
}
