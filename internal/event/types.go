// internal/event/types.go
package event

const (
	EnemyKilled      EventType = "EnemyKilled"      // Data: types.EntityID, до удаления из реестра
	EnemyReachedKeep EventType = "EnemyReachedKeep" // Data: types.EntityID
	EnemyRemoved     EventType = "EnemyRemoved"     // Data: types.EntityID, после удаления
	TowerPlaced      EventType = "TowerPlaced"      // Data: types.EntityID
	TowerUpgraded    EventType = "TowerUpgraded"    // Data: types.EntityID
	SlotUnlocked     EventType = "SlotUnlocked"     // Data: индекс слота
	WaveStarted      EventType = "WaveStarted"      // Data: номер волны
	GameOver         EventType = "GameOver"
)
