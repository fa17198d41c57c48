// internal/defs/towers.go
package defs

// TowerDefinition holds all the static data for a specific kind of tower.
// The catalog is loaded once and never mutated.
type TowerDefinition struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Cost    int          `yaml:"cost"`
	Combat  *CombatStats `yaml:"combat,omitempty"`
	Visuals Visuals      `yaml:"visuals"`
}

// CombatStats contains parameters related to a tower's combat abilities.
// Kinds without combat stats (the barracks) are buildable but never fire.
type CombatStats struct {
	Damage   int     `yaml:"damage"`
	FireRate float64 `yaml:"fire_rate"` // Shots per second
	Range    float64 `yaml:"range"`     // Pixels
}

// TowerLibrary is the library of all tower definitions, keyed by ID.
var TowerLibrary map[string]TowerDefinition

// BuildOrder is the fixed, closed set of tower kind IDs in catalog order.
// The build menu is constructed from this list, never from free-form keys.
var BuildOrder []string
