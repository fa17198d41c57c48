// internal/defs/waves.go
package defs

// SpawnTier gates an enemy type behind a wave number. The highest tier whose
// MinWave has been reached supplies the base type; RevertChance then gives a
// fixed probability of falling back to the previous, easier type, so the mix
// escalates without becoming strictly monotonic.
type SpawnTier struct {
	MinWave      int
	EnemyID      string
	RevertTo     string
	RevertChance float64
}

// SpawnTiers is ordered by MinWave ascending.
var SpawnTiers = []SpawnTier{
	{MinWave: 1, EnemyID: "ENEMY_GRUNT"},
	{MinWave: 4, EnemyID: "ENEMY_WOLF", RevertTo: "ENEMY_GRUNT", RevertChance: 0.3},
	{MinWave: 6, EnemyID: "ENEMY_IMP", RevertTo: "ENEMY_WOLF", RevertChance: 0.3},
	{MinWave: 8, EnemyID: "ENEMY_TROLL", RevertTo: "ENEMY_IMP", RevertChance: 0.3},
}

// TierForWave returns the spawn tier in effect for the given wave number.
func TierForWave(wave int) SpawnTier {
	tier := SpawnTiers[0]
	for _, t := range SpawnTiers {
		if wave >= t.MinWave {
			tier = t
		}
	}
	return tier
}
