// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/interfaces"
)

// Rect — прямоугольник в пикселях окна.
type Rect struct {
	X, Y, W, H float32
}

// Contains проверяет, попадает ли точка в прямоугольник (границы включительно).
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// TextWidth — ширина строки моноширинного шрифта при масштабе scale.
func TextWidth(s string, scale float32) float32 {
	return float32(len(s)) * config.TextCharWidth * scale
}

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       Rect
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(rect Rect, text string) Button {
	return Button{
		Rect:       rect,
		Text:       text,
		TextColor:  config.TextLightColor,
		BgColor:    config.PanelColor,
		HoverColor: color.RGBA{30, 60, 80, 230},
	}
}

// IsHovered — курсор над кнопкой.
func (b Button) IsHovered(x, y float32) bool {
	return b.Rect.Contains(x, y)
}

// Draw отрисовывает кнопку, подпись по центру.
func (b Button) Draw(r interfaces.Renderer, mouseX, mouseY float32) {
	bg := b.BgColor
	if b.IsHovered(mouseX, mouseY) {
		bg = b.HoverColor
	}
	r.DrawRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, bg, true)
	r.DrawRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, config.PanelStrokeColor, false)

	textX := b.Rect.X + (b.Rect.W-TextWidth(b.Text, 1))/2
	textY := b.Rect.Y + (b.Rect.H-config.TextLineHeight)/2
	r.DrawText(b.Text, textX, textY, 1, b.TextColor)
}
