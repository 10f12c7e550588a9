// internal/ui/menu.go
package ui

import (
	"image/color"

	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/interfaces"
)

const (
	menuItemSpacing = 30
	menuItemHeight  = 26
	menuItemPadding = 12 // рамка наведения шире текста на столько слева
)

// Menu — вертикальный список пунктов, привязанный к центру окна.
type Menu struct {
	Title         string
	Items         []string
	Selected      int
	Wrap          bool // Up/Down по кругу; иначе упор в края
	OffsetX       float32
	OffsetY       float32
	ItemWidth     float32
	SelectedColor color.RGBA
	Hint          string
}

// NewMainMenu — Start Game, Options, Exit.
func NewMainMenu() *Menu {
	return &Menu{
		Title:         "CORE",
		Items:         []string{"START GAME", "OPTIONS", "EXIT"},
		Wrap:          true,
		OffsetX:       -100,
		OffsetY:       -60,
		ItemWidth:     240,
		SelectedColor: color.RGBA{255, 255, 0, 255},
	}
}

// Resolutions — разрешения экрана настроек, в том же порядке, что и пункты.
var Resolutions = [][2]int{
	{1280, 720},
	{1920, 1080},
	{2560, 1440},
	{3840, 2160},
}

// NewOptionsMenu — список разрешений и Back последним пунктом.
func NewOptionsMenu() *Menu {
	return &Menu{
		Title:         "OPTIONS",
		Items:         []string{"1280x720", "1920x1080", "2560x1440", "3840x2160", "BACK"},
		OffsetX:       -140,
		OffsetY:       -90,
		ItemWidth:     300,
		SelectedColor: config.HighlightColor,
		Hint:          "ENTER: APPLY, ESC: BACK",
	}
}

// NewGameOverMenu — Restart и Main Menu под надписью GAME OVER.
func NewGameOverMenu() *Menu {
	return &Menu{
		Title:         "GAME OVER",
		Items:         []string{"RESTART", "MAIN MENU"},
		Wrap:          true,
		OffsetX:       -100,
		OffsetY:       40,
		ItemWidth:     240,
		SelectedColor: color.RGBA{255, 255, 0, 255},
	}
}

func (m *Menu) Next() {
	m.move(1)
}

func (m *Menu) Prev() {
	m.move(-1)
}

func (m *Menu) move(step int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	next := m.Selected + step
	if m.Wrap {
		m.Selected = (next%n + n) % n
		return
	}
	m.Selected = max(0, min(n-1, next))
}

// ItemRect — область наведения пункта i для окна width×height.
func (m *Menu) ItemRect(i, width, height int) Rect {
	return Rect{
		X: float32(width)/2 + m.OffsetX - menuItemPadding,
		Y: float32(height)/2 + m.OffsetY + float32(i*menuItemSpacing) - 6,
		W: m.ItemWidth,
		H: menuItemHeight,
	}
}

// ItemAt возвращает индекс пункта под курсором или -1.
func (m *Menu) ItemAt(x, y float32, width, height int) int {
	for i := range m.Items {
		if m.ItemRect(i, width, height).Contains(x, y) {
			return i
		}
	}
	return -1
}

// Draw рисует затемнение, заголовок и пункты. Выбранный пункт подсвечен рамкой.
func (m *Menu) Draw(r interfaces.Renderer, dim bool) {
	w, h := r.Width(), r.Height()
	if dim {
		r.DrawRect(0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 102}, true)
	}

	x := float32(w)/2 + m.OffsetX
	y := float32(h)/2 + m.OffsetY
	if m.Title != "" {
		titleColor := config.HighlightColor
		if m.Title == "GAME OVER" {
			titleColor = config.WarningColor
		}
		r.DrawText(m.Title, float32(w)/2-TextWidth(m.Title, 2)/2, y-70, 2, titleColor)
	}

	for i, item := range m.Items {
		c := config.TextLightColor
		if i == m.Selected {
			c = m.SelectedColor
			rect := m.ItemRect(i, w, h)
			r.DrawRect(rect.X, rect.Y, rect.W, rect.H, c, false)
		}
		r.DrawText(item, x, y+float32(i*menuItemSpacing), 1, c)
	}

	if m.Hint != "" {
		r.DrawText(m.Hint, x, y+float32(len(m.Items)*menuItemSpacing)+20, 0.8, color.RGBA{255, 255, 0, 255})
	}
}
