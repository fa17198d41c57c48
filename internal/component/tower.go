// internal/component/tower.go
package component

// Tower привязана к слоту (Col, Row) и никогда не разрушается после
// постройки. Уровень растёт только командой апгрейда.
type Tower struct {
	DefID    string // ID из towers.yaml
	Col, Row int
	Level    int
}
