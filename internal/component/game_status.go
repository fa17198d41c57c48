// internal/component/game_status.go
package component

// GameStatus — единственный агрегат состояния партии. Живёт на ECS,
// передаётся явно, никаких глобальных переменных.
type GameStatus struct {
	Gold    int
	Lives   int
	Wave    int
	Elapsed float64 // Секунды с начала партии
	Running bool    // false после поражения, тики больше не выполняются
}
