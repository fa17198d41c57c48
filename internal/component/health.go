// internal/component/health.go
package component

// Health — текущее и максимальное здоровье. Value после создания только
// уменьшается.
type Health struct {
	Value int
	Max   int
}
