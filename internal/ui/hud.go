// internal/ui/hud.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/interfaces"
)

const (
	hudMarginX = 20
	hudMarginY = 20
	hudSpacing = 60
)

// HUDData — снимок состояния игры для одного кадра HUD.
type HUDData struct {
	Wave             int
	Score            int
	Currency         int
	EnemiesRemaining int
	WaveActive       bool
	WaveDelay        float32
	CoreHealth       int
	MaxCoreHealth    int
	GameOver         bool

	PlacementMode     bool
	PlacementDistance float32
	TurretCount       int
	MaxTurrets        int
}

// HUD — левая колонка счётчиков, здоровье ядра справа и статус по центру.
type HUD struct {
	wave *WaveIndicator
	core *CoreHealthIndicator
}

func NewHUD() *HUD {
	return &HUD{
		wave: NewWaveIndicator(hudMarginX, hudMarginY),
		core: NewCoreHealthIndicator(0, hudMarginY),
	}
}

func (h *HUD) Draw(r interfaces.Renderer, d HUDData) {
	w, ht := float32(r.Width()), float32(r.Height())

	h.wave.Draw(r, d.Wave)
	y := float32(hudMarginY + hudSpacing)

	drawCounter(r, "SCORE", d.Score, y, config.AffordableColor)
	y += hudSpacing
	drawCounter(r, "CREDITS", d.Currency, y, config.TextLightColor)
	y += hudSpacing

	if !d.WaveActive && d.WaveDelay > 0 {
		drawCounter(r, "NEXT", int(d.WaveDelay), y, color.RGBA{255, 255, 0, 255})
	} else {
		drawCounter(r, "ENEMIES", d.EnemiesRemaining, y, config.WarningColor)
	}
	y += hudSpacing
	drawCounter(r, "TURRETS", d.TurretCount, y, config.TurretColor)

	h.core.X = w - h.core.Width() - hudMarginX
	h.core.Draw(r, d.CoreHealth, d.MaxCoreHealth)

	switch {
	case d.GameOver:
		r.DrawText("GAME OVER", w/2-60, ht/2-20, 2, config.WarningColor)
	case !d.WaveActive && d.WaveDelay > 0:
		r.DrawText("PREPARING...", w/2-80, ht/2-20, 1.5, color.RGBA{255, 255, 0, 255})
	}

	if d.PlacementMode {
		msg := "PLACEMENT  DIST " + strconv.Itoa(int(d.PlacementDistance)) + "  [+/-]  T: EXIT"
		r.DrawText(msg, w/2-TextWidth(msg, 1)/2, ht-30, 1, config.TurretColor)
	}
}

func drawCounter(r interfaces.Renderer, label string, value int, y float32, c color.RGBA) {
	r.DrawText(label, hudMarginX, y, 1, c)
	r.DrawText(strconv.Itoa(value), hudMarginX, y+25, 1, c)
}

// DrawPausedOverlay затемняет экран и пишет PAUSED по центру.
func DrawPausedOverlay(r interfaces.Renderer) {
	w, h := float32(r.Width()), float32(r.Height())
	r.DrawRect(0, 0, w, h, color.RGBA{0, 0, 0, 128}, true)
	r.DrawText("PAUSED", w/2-80, h/2-20, 1.5, color.RGBA{255, 255, 255, 255})
}

// DrawCostTooltip подписывает цену турели у курсора: зелёным, если хватает денег.
func DrawCostTooltip(r interfaces.Renderer, cost, currency int, mouseX, mouseY float32) {
	c := config.AffordableColor
	if currency < cost {
		c = config.WarningColor
	}
	r.DrawText("COST: "+strconv.Itoa(cost), mouseX+16, mouseY+24, 0.7, c)
}

// GameOverSummary — итоги партии для экрана Game Over.
type GameOverSummary struct {
	Wave          int
	Score         int
	Kills         int64
	TurretsPlaced int64
	ItemsFound    int64
}

// DrawGameOverSummary пишет итоги партии под пунктами меню Game Over.
func DrawGameOverSummary(r interfaces.Renderer, s GameOverSummary) {
	w, h := float32(r.Width()), float32(r.Height())
	lines := []string{
		"REACHED WAVE " + strconv.Itoa(s.Wave) + "  " + toRoman(s.Wave),
		"SCORE " + strconv.Itoa(s.Score),
		"KILLS " + strconv.FormatInt(s.Kills, 10) + "  TURRETS " + strconv.FormatInt(s.TurretsPlaced, 10) + "  ITEMS " + strconv.FormatInt(s.ItemsFound, 10),
	}
	y := h/2 + 130
	for _, line := range lines {
		r.DrawText(line, w/2-TextWidth(line, 1)/2, y, 1, config.TextDimColor)
		y += 22
	}
}
