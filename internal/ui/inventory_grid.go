// internal/ui/inventory_grid.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/defs"
	"github.com/Blckburn/CORE/internal/interfaces"
	"github.com/Blckburn/CORE/internal/system"
)

const (
	gridStartX    = 130
	gridStartY    = 100
	gridCellSize  = 80
	gridCellSpace = 10
)

var (
	undiscoveredColor = color.RGBA{77, 77, 77, 255}
	gridBorderColor   = color.RGBA{128, 128, 128, 255}
)

// columnNames — подписи строк сетки в порядке system.GridColumn.
var columnNames = [system.GridColumns]string{"Damage", "Fire Rate", "Range", "Special"}

// InventoryGrid отображает окно найденных предметов: редкость по горизонтали,
// характеристика по вертикали.
type InventoryGrid struct {
	IsVisible bool
	X, Y      float32
}

// NewInventoryGrid создает новое окно инвентаря.
func NewInventoryGrid() *InventoryGrid {
	return &InventoryGrid{X: gridStartX, Y: gridStartY}
}

// Toggle переключает видимость окна.
func (g *InventoryGrid) Toggle() {
	g.IsVisible = !g.IsVisible
}

// CellRect — ячейка сетки для редкости row и столбца col.
func (g *InventoryGrid) CellRect(rarity defs.Rarity, col system.GridColumn) Rect {
	return Rect{
		X: g.X + float32(int(rarity)*(gridCellSize+gridCellSpace)),
		Y: g.Y + float32(int(col)*(gridCellSize+gridCellSpace)),
		W: gridCellSize,
		H: gridCellSize,
	}
}

// Draw отрисовывает окно, если оно видимо. grid — ItemDatabase.InventoryGrid().
func (g *InventoryGrid) Draw(r interfaces.Renderer, grid [][]system.GridCell, discovered, total int) {
	if !g.IsVisible {
		return
	}

	cols := len(defs.Rarities)
	width := float32(cols*(gridCellSize+gridCellSpace)) + 140
	height := float32(int(system.GridColumns)*(gridCellSize+gridCellSpace)) + 90
	bgX, bgY := g.X-110, g.Y-60
	r.DrawRect(bgX, bgY, width, height, color.RGBA{20, 20, 30, 230}, true)
	r.DrawRect(bgX, bgY, width, height, color.RGBA{70, 100, 120, 255}, false)

	title := "ITEMS " + strconv.Itoa(discovered) + "/" + strconv.Itoa(total)
	r.DrawText(title, bgX+10, bgY+8, 1, config.TextLightColor)

	for _, rarity := range defs.Rarities {
		pos := g.CellRect(rarity, 0)
		r.DrawText(rarity.String(), pos.X, pos.Y-30, 0.8, rarity.Color())
	}
	for c := range system.GridColumns {
		pos := g.CellRect(0, c)
		r.DrawText(columnNames[c], pos.X-100, pos.Y+gridCellSize/2-6, 0.8, config.TextLightColor)
	}

	for _, row := range grid {
		for _, cell := range row {
			g.drawCell(r, cell)
		}
	}
}

func (g *InventoryGrid) drawCell(r interfaces.Renderer, cell system.GridCell) {
	rect := g.CellRect(cell.Rarity, cell.Column)
	fill := undiscoveredColor
	if cell.Discovered {
		fill = cell.Rarity.Color()
	}
	r.DrawRect(rect.X, rect.Y, rect.W, rect.H, fill, true)
	r.DrawRect(rect.X, rect.Y, rect.W, rect.H, gridBorderColor, false)

	if !cell.Discovered {
		r.DrawText("?", rect.X+rect.W/2-5, rect.Y+rect.H/2-5, 1, gridBorderColor)
		return
	}
	if cell.Quantity > 0 {
		r.DrawText(strconv.Itoa(cell.Quantity), rect.X+5, rect.Y+5, 0.8, color.RGBA{0, 0, 0, 255})
	}
	r.DrawText("+", rect.X+rect.W-15, rect.Y+rect.H-20, 0.8, color.RGBA{0, 255, 0, 255})
}
