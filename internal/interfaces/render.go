// internal/interfaces/render.go
package interfaces

import (
	"image/color"

	"github.com/Blckburn/CORE/internal/assets"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer — всё, что игра и UI рисуют. Конкретная графика спрятана за ним.
type Renderer interface {
	SetCamera(view, projection mgl32.Mat4)
	DrawWireMesh(mesh *assets.Mesh, model mgl32.Mat4, c color.RGBA)
	DrawText(s string, x, y float32, scale float32, c color.RGBA)
	DrawRect(x, y, w, h float32, c color.RGBA, filled bool)
	Width() int
	Height() int
}

// WindowSizer меняет размер окна (экран настроек).
type WindowSizer interface {
	SetWindowSize(width, height int)
}
