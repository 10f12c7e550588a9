// pkg/render/renderer.go
package render

import (
	"image/color"

	"github.com/Blckburn/CORE/internal/assets"
	"github.com/Blckburn/CORE/internal/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const lineWidth = 1.5

// WireRenderer рисует каркасные модели и 2D-интерфейс поверх ebiten.Image.
// Экран задаётся на каждый кадр через SetScreen.
type WireRenderer struct {
	screen   *ebiten.Image
	viewProj mgl32.Mat4

	strokeImg *ebiten.Image
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16

	face *text.GoXFace
}

func NewWireRenderer() *WireRenderer {
	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	return &WireRenderer{
		viewProj:  mgl32.Ident4(),
		strokeImg: strokeImg,
		strokeVs:  make([]ebiten.Vertex, 0, 256),
		strokeIs:  make([]uint16, 0, 384),
		face:      text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetScreen задаёт кадр, в который идёт отрисовка.
func (r *WireRenderer) SetScreen(screen *ebiten.Image) {
	r.screen = screen
}

func (r *WireRenderer) SetCamera(view, projection mgl32.Mat4) {
	r.viewProj = projection.Mul4(view)
}

// ProjectPoint переводит точку мира в пиксели экрана width×height.
// false — точка за камерой.
func ProjectPoint(mvp mgl32.Mat4, p mgl32.Vec3, width, height int) (x, y float32, ok bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = (ndcX*0.5 + 0.5) * float32(width)
	y = (1 - (ndcY*0.5 + 0.5)) * float32(height)
	return x, y, true
}

// DrawWireMesh собирает все рёбра модели в один путь и рисует его одним DrawTriangles.
// Рёбра, у которых хоть один конец за камерой, пропускаются.
func (r *WireRenderer) DrawWireMesh(mesh *assets.Mesh, model mgl32.Mat4, c color.RGBA) {
	if r.screen == nil || mesh == nil {
		return
	}
	mvp := r.viewProj.Mul4(model)
	w, h := r.Width(), r.Height()

	var path vector.Path
	for _, e := range mesh.Edges {
		x0, y0, ok0 := ProjectPoint(mvp, mesh.Vertices[e[0]], w, h)
		x1, y1, ok1 := ProjectPoint(mvp, mesh.Vertices[e[1]], w, h)
		if !ok0 || !ok1 {
			continue
		}
		path.MoveTo(x0, y0)
		path.LineTo(x1, y1)
	}

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: lineWidth,
	})
	if len(r.strokeIs) == 0 {
		return
	}
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(c.R) / 255
		r.strokeVs[i].ColorG = float32(c.G) / 255
		r.strokeVs[i].ColorB = float32(c.B) / 255
		r.strokeVs[i].ColorA = float32(c.A) / 255
	}
	r.screen.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawText пишет строку моноширинным шрифтом 7×13; (x, y) — левый верхний угол.
func (r *WireRenderer) DrawText(s string, x, y float32, scale float32, c color.RGBA) {
	if r.screen == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = config.TextLineHeight
	text.Draw(r.screen, s, r.face, op)
}

func (r *WireRenderer) DrawRect(x, y, w, h float32, c color.RGBA, filled bool) {
	if r.screen == nil {
		return
	}
	if filled {
		vector.DrawFilledRect(r.screen, x, y, w, h, c, false)
		return
	}
	vector.StrokeRect(r.screen, x, y, w, h, 1, c, false)
}

// Width — ширина кадра в пикселях; до первого кадра — размер окна по умолчанию.
func (r *WireRenderer) Width() int {
	if r.screen == nil {
		return config.ScreenWidth
	}
	return r.screen.Bounds().Dx()
}

func (r *WireRenderer) Height() int {
	if r.screen == nil {
		return config.ScreenHeight
	}
	return r.screen.Bounds().Dy()
}
