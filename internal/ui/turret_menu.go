// internal/ui/turret_menu.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/Blckburn/CORE/internal/component"
	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/defs"
	"github.com/Blckburn/CORE/internal/interfaces"
)

const (
	panelHeight    = 170
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20

	slotSize    = 60
	slotSpacing = 70

	invCellSize    = 40
	invCellSpacing = 46
	invCols        = 12
	invRows        = 2

	sellWidth  = 120
	sellHeight = 36
)

// TurretMenuHit — что оказалось под курсором в меню турели. -1 — ничего.
type TurretMenuHit struct {
	Slot      int
	Inventory int
	Sell      bool
}

// NoHit — клик мимо всех элементов меню.
var NoHit = TurretMenuHit{Slot: -1, Inventory: -1}

// TurretMenu — выезжающая снизу панель выбранной турели: характеристики,
// три слота, инвентарь и кнопка продажи.
type TurretMenu struct {
	IsVisible bool
	currentY  float64
	targetY   float64
	height    float64 // высота окна, от которой считалась анимация
}

func NewTurretMenu() *TurretMenu {
	return &TurretMenu{currentY: math.Inf(1), targetY: math.Inf(1)}
}

// Open показывает панель; screenHeight нужна для анимации выезда.
func (m *TurretMenu) Open(screenHeight int) {
	h := float64(screenHeight)
	if !m.IsVisible || m.height != h {
		m.currentY = h
	}
	m.height = h
	m.IsVisible = true
	m.targetY = h - panelHeight
}

// Hide убирает панель сразу.
func (m *TurretMenu) Hide() {
	m.IsVisible = false
	m.currentY = m.height
	m.targetY = m.height
}

// Update двигает панель к целевой позиции.
func (m *TurretMenu) Update() {
	if !m.IsVisible || m.currentY == m.targetY {
		return
	}
	diff := m.targetY - m.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		m.currentY = m.targetY
	case diff > 0:
		m.currentY += animationSpeed
	default:
		m.currentY -= animationSpeed
	}
}

func (m *TurretMenu) panelRect(width int) Rect {
	return Rect{
		X: panelMargin,
		Y: float32(m.currentY) + panelMargin,
		W: float32(width) - 2*panelMargin,
		H: panelHeight - 2*panelMargin,
	}
}

// SlotRect — рамка слота i.
func (m *TurretMenu) SlotRect(i, width int) Rect {
	p := m.panelRect(width)
	return Rect{X: p.X + 15 + float32(i*slotSpacing), Y: p.Y + 75, W: slotSize, H: slotSize}
}

// InventoryRect — ячейка i инвентаря. Показываются первые invCols*invRows стопок.
func (m *TurretMenu) InventoryRect(i, width int) Rect {
	p := m.panelRect(width)
	row, col := i/invCols, i%invCols
	return Rect{
		X: p.X + 260 + float32(col*invCellSpacing),
		Y: p.Y + 40 + float32(row*invCellSpacing),
		W: invCellSize,
		H: invCellSize,
	}
}

// SellButton — кнопка продажи в правом нижнем углу панели.
func (m *TurretMenu) SellButton(width int, refund int) Button {
	p := m.panelRect(width)
	b := NewButton(Rect{X: p.X + p.W - sellWidth - 15, Y: p.Y + p.H - sellHeight - 15, W: sellWidth, H: sellHeight}, "SELL +"+strconv.Itoa(refund))
	b.BgColor = color.RGBA{100, 30, 30, 230}
	b.HoverColor = color.RGBA{160, 40, 40, 255}
	return b
}

// Contains — курсор над панелью (клики не должны уходить в мир).
func (m *TurretMenu) Contains(x, y float32, width int) bool {
	return m.IsVisible && m.panelRect(width).Contains(x, y)
}

// HitTest определяет элемент под курсором.
func (m *TurretMenu) HitTest(x, y float32, width, inventoryLen int) TurretMenuHit {
	hit := NoHit
	if !m.Contains(x, y, width) {
		return hit
	}
	for i := range defs.MaxItemSlots {
		if m.SlotRect(i, width).Contains(x, y) {
			hit.Slot = i
			return hit
		}
	}
	for i := range min(inventoryLen, invCols*invRows) {
		if m.InventoryRect(i, width).Contains(x, y) {
			hit.Inventory = i
			return hit
		}
	}
	if m.SellButton(width, 0).IsHovered(x, y) {
		hit.Sell = true
	}
	return hit
}

// Draw рисует панель для турели t. selected — выбранная ячейка инвентаря или -1.
func (m *TurretMenu) Draw(r interfaces.Renderer, t *component.Turret, refund int, inventory []*component.Item, selected int, mouseX, mouseY float32) {
	if !m.IsVisible || t == nil {
		return
	}
	width := r.Width()
	p := m.panelRect(width)
	r.DrawRect(p.X, p.Y, p.W, p.H, config.PanelColor, true)
	r.DrawRect(p.X, p.Y, p.W, p.H, config.PanelStrokeColor, false)

	x, y := p.X+15, p.Y+15
	r.DrawText("TURRET  COST "+strconv.Itoa(t.Cost), x, y, 1, config.TextLightColor)
	y += lineHeight
	r.DrawText(fmt.Sprintf("DMG %.1f  RATE %.2f/s", t.Stats.Damage, t.Stats.FireRate), x, y, 1, config.TextLightColor)
	y += lineHeight
	r.DrawText(fmt.Sprintf("RANGE %.1f", t.Stats.Range), x, y, 1, config.TextLightColor)

	for i, item := range t.Slots {
		rect := m.SlotRect(i, width)
		stroke := config.TextDimColor
		if rect.Contains(mouseX, mouseY) {
			stroke = config.HoverColor
		}
		if item != nil {
			r.DrawRect(rect.X+4, rect.Y+4, rect.W-8, rect.H-8, item.Color(), true)
		}
		r.DrawRect(rect.X, rect.Y, rect.W, rect.H, stroke, false)
	}

	r.DrawText("INVENTORY", p.X+260, p.Y+15, 1, config.TextDimColor)
	var hovered *component.Item
	for i, item := range inventory {
		if i >= invCols*invRows {
			break
		}
		rect := m.InventoryRect(i, width)
		r.DrawRect(rect.X+3, rect.Y+3, rect.W-6, rect.H-6, item.Color(), true)
		stroke := config.TextDimColor
		switch {
		case i == selected:
			stroke = config.SelectedColor
		case rect.Contains(mouseX, mouseY):
			stroke = config.HoverColor
			hovered = item
		}
		r.DrawRect(rect.X, rect.Y, rect.W, rect.H, stroke, false)
		if item.Quantity > 1 {
			r.DrawText(strconv.Itoa(item.Quantity), rect.X+4, rect.Y+4, 0.8, color.RGBA{0, 0, 0, 255})
		}
	}

	m.SellButton(width, refund).Draw(r, mouseX, mouseY)

	if hovered != nil {
		drawItemTooltip(r, hovered, mouseX, mouseY)
	}
}

// drawItemTooltip показывает имя и описание предмета над курсором.
func drawItemTooltip(r interfaces.Renderer, item *component.Item, x, y float32) {
	lines := append([]string{item.Name()}, strings.Split(item.Description(), "\n")...)
	var w float32
	for _, l := range lines {
		w = max(w, TextWidth(l, 1))
	}
	w += 12
	h := float32(len(lines)*lineHeight + 8)
	top := y - h - 8
	r.DrawRect(x, top, w, h, config.PanelColor, true)
	r.DrawRect(x, top, w, h, item.Color(), false)
	for i, l := range lines {
		c := config.TextLightColor
		if i == 0 {
			c = item.Color()
		}
		r.DrawText(l, x+6, top+4+float32(i*lineHeight), 1, c)
	}
}
