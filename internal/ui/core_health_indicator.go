// internal/ui/core_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/interfaces"
)

const (
	HealthCols        = 5
	HealthCellSize    = 16.0
	HealthCellSpacing = 4.0
)

// CoreHealthIndicator отображает здоровье ядра сеткой ячеек.
type CoreHealthIndicator struct {
	X, Y float32
}

func NewCoreHealthIndicator(x, y float32) *CoreHealthIndicator {
	return &CoreHealthIndicator{X: x, Y: y}
}

// CellColor — цвет ячейки j. Пока здоровья больше половины, целые ячейки
// голубые; на половине и ниже все красные. Пустые ячейки тёмные.
func CellColor(j, health, maxHealth int) color.RGBA {
	switch {
	case j >= health:
		return color.RGBA{20, 20, 30, 255}
	case health <= maxHealth/2:
		return config.WarningColor
	default:
		return config.CoreColor
	}
}

// Draw рисует подпись CORE health/max и сетку из maxHealth ячеек.
func (i *CoreHealthIndicator) Draw(r interfaces.Renderer, health, maxHealth int) {
	label := "CORE " + strconv.Itoa(max(health, 0)) + "/" + strconv.Itoa(maxHealth)
	r.DrawText(label, i.X, i.Y, 1, config.CoreColor)

	startY := i.Y + 25
	for j := 0; j < maxHealth; j++ {
		row := j / HealthCols
		col := j % HealthCols
		x := i.X + float32(col)*(HealthCellSize+HealthCellSpacing)
		y := startY + float32(row)*(HealthCellSize+HealthCellSpacing)

		r.DrawRect(x, y, HealthCellSize, HealthCellSize, CellColor(j, health, maxHealth), true)
		r.DrawRect(x, y, HealthCellSize, HealthCellSize, config.TextLightColor, false)
	}
}

// Width — ширина сетки в пикселях.
func (i *CoreHealthIndicator) Width() float32 {
	return HealthCols*(HealthCellSize+HealthCellSpacing) - HealthCellSpacing
}
