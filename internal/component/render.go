// internal/component/render.go
package component

import "image/color"

// Renderable — всё, что нужно отрисовщику: цвет и радиус.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
