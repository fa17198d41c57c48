// internal/ui/build_menu.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
)

const (
	menuEntryW = 170
	menuEntryH = 28
)

type menuEntry struct {
	kindID string
	cost   int
	button Button
}

// BuildMenu — контекстное меню постройки у выбранного слота. Состав
// фиксирован каталогом: записи строятся из defs.BuildOrder, без
// динамических ключей.
type BuildMenu struct {
	face      font.Face
	visible   bool
	slotIndex int
	entries   []menuEntry
}

func NewBuildMenu(face font.Face) *BuildMenu {
	return &BuildMenu{face: face, slotIndex: -1}
}

// Open раскрывает меню рядом с указанной точкой экрана.
func (m *BuildMenu) Open(slotIndex, x, y int) {
	m.visible = true
	m.slotIndex = slotIndex
	m.entries = m.entries[:0]

	px := float32(x)
	py := float32(y)
	if px+menuEntryW > config.ScreenWidth {
		px = config.ScreenWidth - menuEntryW
	}
	for i, kindID := range defs.BuildOrder {
		def := defs.TowerLibrary[kindID]
		m.entries = append(m.entries, menuEntry{
			kindID: kindID,
			cost:   def.Cost,
			button: Button{
				X:     px,
				Y:     py + float32(i)*menuEntryH,
				W:     menuEntryW,
				H:     menuEntryH,
				Label: fmt.Sprintf("%s (%d)", def.Name, def.Cost),
			},
		})
	}
}

func (m *BuildMenu) Close() {
	m.visible = false
	m.slotIndex = -1
}

func (m *BuildMenu) Visible() bool {
	return m.visible
}

// SlotIndex — слот, для которого открыто меню.
func (m *BuildMenu) SlotIndex() int {
	return m.slotIndex
}

// Hit возвращает вид башни под кликом, если клик пришёлся на запись меню.
func (m *BuildMenu) Hit(mx, my int) (string, bool) {
	if !m.visible {
		return "", false
	}
	for _, e := range m.entries {
		if e.button.Contains(mx, my) {
			return e.kindID, true
		}
	}
	return "", false
}

// Draw отрисовывает меню; недоступные по золоту записи приглушены.
func (m *BuildMenu) Draw(screen *ebiten.Image, gold int) {
	if !m.visible {
		return
	}
	for i := range m.entries {
		m.entries[i].button.Disabled = m.entries[i].cost > gold
		m.entries[i].button.Draw(screen, m.face)
	}
}
