// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
// Per-wave stats derive from it as:
//
//	speed  = Speed + wave*SpeedGrowth
//	health = Health * HealthGrowth^wave
//	bounty = Bounty + wave
//
// Modifiers, when present, multiply the wave-scaled values afterwards.
type EnemyDefinition struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name"`
	Health       int            `yaml:"health"`
	HealthGrowth float64        `yaml:"health_growth"`
	Speed        float64        `yaml:"speed"`
	SpeedGrowth  float64        `yaml:"speed_growth"`
	Bounty       int            `yaml:"bounty"`
	Modifiers    *StatModifiers `yaml:"modifiers,omitempty"`
	Visuals      Visuals        `yaml:"visuals"`
}

// StatModifiers scale an enemy's wave-derived stats. Applied after the
// exponential health growth; the order is deliberate and load-bearing.
type StatModifiers struct {
	Speed  float64 `yaml:"speed"`
	Health float64 `yaml:"health"`
	Bounty float64 `yaml:"bounty"`
}

// EnemyLibrary is the library of all enemy definitions, keyed by ID.
var EnemyLibrary map[string]EnemyDefinition
