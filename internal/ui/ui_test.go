package ui

import (
	"image/color"
	"testing"

	"github.com/Blckburn/CORE/internal/assets"
	"github.com/Blckburn/CORE/internal/component"
	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/defs"
	"github.com/Blckburn/CORE/internal/system"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawnText struct {
	s    string
	x, y float32
	c    color.RGBA
}

// recordingRenderer запоминает текст и прямоугольники.
type recordingRenderer struct {
	w, h  int
	texts []drawnText
	rects int
}

func (r *recordingRenderer) SetCamera(_, _ mgl32.Mat4)                               {}
func (r *recordingRenderer) DrawWireMesh(_ *assets.Mesh, _ mgl32.Mat4, _ color.RGBA) {}
func (r *recordingRenderer) DrawText(s string, x, y float32, _ float32, c color.RGBA) {
	r.texts = append(r.texts, drawnText{s: s, x: x, y: y, c: c})
}
func (r *recordingRenderer) DrawRect(_, _, _, _ float32, _ color.RGBA, _ bool) { r.rects++ }
func (r *recordingRenderer) Width() int                                        { return r.w }
func (r *recordingRenderer) Height() int                                       { return r.h }

func (r *recordingRenderer) find(s string) (drawnText, bool) {
	for _, t := range r.texts {
		if t.s == s {
			return t, true
		}
	}
	return drawnText{}, false
}

func newRecorder() *recordingRenderer {
	return &recordingRenderer{w: config.ScreenWidth, h: config.ScreenHeight}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(110, 70))
	assert.False(t, r.Contains(9, 30))
	assert.False(t, r.Contains(50, 71))
}

func TestMenu_WrapAndClamp(t *testing.T) {
	main := NewMainMenu()
	main.Prev()
	assert.Equal(t, 2, main.Selected, "main menu wraps upward")
	main.Next()
	assert.Equal(t, 0, main.Selected)

	opts := NewOptionsMenu()
	opts.Prev()
	assert.Equal(t, 0, opts.Selected, "options clamp at the top")
	for range 10 {
		opts.Next()
	}
	assert.Equal(t, len(opts.Items)-1, opts.Selected)

	over := NewGameOverMenu()
	over.Next()
	over.Next()
	assert.Equal(t, 0, over.Selected)
}

func TestMenu_ItemRectAndHitTest(t *testing.T) {
	m := NewMainMenu()

	r := m.ItemRect(1, 1280, 720)
	assert.Equal(t, Rect{X: 528, Y: 324, W: 240, H: 26}, r)

	assert.Equal(t, 0, m.ItemAt(530, 300, 1280, 720))
	assert.Equal(t, 2, m.ItemAt(600, 360, 1280, 720))
	assert.Equal(t, -1, m.ItemAt(10, 10, 1280, 720))

	over := NewGameOverMenu()
	assert.Equal(t, 1, over.ItemAt(600, 430, 1280, 720))
}

func TestMenu_DrawHighlightsSelected(t *testing.T) {
	r := newRecorder()
	m := NewOptionsMenu()
	m.Selected = 2
	m.Draw(r, true)

	sel, ok := r.find("2560x1440")
	require.True(t, ok)
	assert.Equal(t, config.HighlightColor, sel.c)
	other, ok := r.find("1280x720")
	require.True(t, ok)
	assert.Equal(t, config.TextLightColor, other.c)
	_, ok = r.find("ENTER: APPLY, ESC: BACK")
	assert.True(t, ok)
}

func TestToRoman(t *testing.T) {
	assert.Equal(t, "", toRoman(0))
	assert.Equal(t, "IV", toRoman(4))
	assert.Equal(t, "XII", toRoman(12))
	assert.Equal(t, "MCMXCIV", toRoman(1994))
}

func TestCoreHealthCellColor(t *testing.T) {
	assert.Equal(t, config.CoreColor, CellColor(0, 8, 10))
	assert.Equal(t, config.WarningColor, CellColor(0, 5, 10))
	assert.Equal(t, color.RGBA{20, 20, 30, 255}, CellColor(7, 5, 10))
}

func TestHUD_Draw(t *testing.T) {
	r := newRecorder()
	NewHUD().Draw(r, HUDData{
		Wave:          3,
		Score:         17,
		Currency:      4,
		WaveDelay:     6.5,
		CoreHealth:    9,
		MaxCoreHealth: 10,
	})

	_, ok := r.find("3  III")
	assert.True(t, ok)
	_, ok = r.find("17")
	assert.True(t, ok)
	next, ok := r.find("NEXT")
	assert.True(t, ok)
	_, ok = r.find("6")
	assert.True(t, ok, "countdown is shown in whole seconds")
	assert.Equal(t, float32(hudMarginX), next.x)
	_, ok = r.find("PREPARING...")
	assert.True(t, ok)
	_, ok = r.find("CORE 9/10")
	assert.True(t, ok)
}

func TestHUD_ActiveWaveShowsEnemies(t *testing.T) {
	r := newRecorder()
	NewHUD().Draw(r, HUDData{Wave: 1, WaveActive: true, EnemiesRemaining: 12, CoreHealth: 10, MaxCoreHealth: 10})

	_, ok := r.find("ENEMIES")
	assert.True(t, ok)
	_, ok = r.find("NEXT")
	assert.False(t, ok)
}

func TestCostTooltip(t *testing.T) {
	r := newRecorder()
	DrawCostTooltip(r, 3, 5, 100, 200)
	DrawCostTooltip(r, 7, 5, 100, 200)

	require.Len(t, r.texts, 2)
	assert.Equal(t, "COST: 3", r.texts[0].s)
	assert.Equal(t, config.AffordableColor, r.texts[0].c)
	assert.Equal(t, float32(116), r.texts[0].x)
	assert.Equal(t, float32(224), r.texts[0].y)
	assert.Equal(t, config.WarningColor, r.texts[1].c)
}

func TestPausedOverlay(t *testing.T) {
	r := newRecorder()
	DrawPausedOverlay(r)

	_, ok := r.find("PAUSED")
	assert.True(t, ok)
	assert.Equal(t, 1, r.rects)
}

func settledMenu() *TurretMenu {
	m := NewTurretMenu()
	m.Open(config.ScreenHeight)
	for range 100 {
		m.Update()
	}
	return m
}

func TestGameOverSummary(t *testing.T) {
	r := newRecorder()
	DrawGameOverSummary(r, GameOverSummary{Wave: 12, Score: 340, Kills: 340, TurretsPlaced: 9, ItemsFound: 4})

	require.Len(t, r.texts, 3)
	assert.Equal(t, "REACHED WAVE 12  XII", r.texts[0].s)
	assert.Equal(t, "SCORE 340", r.texts[1].s)
	assert.Equal(t, "KILLS 340  TURRETS 9  ITEMS 4", r.texts[2].s)
	assert.Equal(t, float32(config.ScreenHeight/2+130), r.texts[0].y)
}

func TestTurretMenu_Animation(t *testing.T) {
	m := NewTurretMenu()
	m.Open(720)
	assert.InDelta(t, 720.0, m.currentY, 1e-9)

	m.Update()
	assert.InDelta(t, 710.0, m.currentY, 1e-9)

	m = settledMenu()
	assert.InDelta(t, float64(config.ScreenHeight-panelHeight), m.currentY, 1e-9)

	m.Hide()
	assert.False(t, m.IsVisible)
	assert.False(t, m.Contains(100, float32(config.ScreenHeight-50), config.ScreenWidth))
}

func TestTurretMenu_HitTest(t *testing.T) {
	m := settledMenu()
	w := config.ScreenWidth

	slot := m.SlotRect(1, w)
	hit := m.HitTest(slot.X+5, slot.Y+5, w, 0)
	assert.Equal(t, TurretMenuHit{Slot: 1, Inventory: -1}, hit)

	inv := m.InventoryRect(3, w)
	hit = m.HitTest(inv.X+1, inv.Y+1, w, 5)
	assert.Equal(t, TurretMenuHit{Slot: -1, Inventory: 3}, hit)

	// ячейка за пределами инвентаря не кликается
	hit = m.HitTest(inv.X+1, inv.Y+1, w, 2)
	assert.Equal(t, NoHit, hit)

	sell := m.SellButton(w, 1).Rect
	hit = m.HitTest(sell.X+2, sell.Y+2, w, 0)
	assert.True(t, hit.Sell)

	assert.Equal(t, NoHit, m.HitTest(10, 10, w, 5))
}

func TestTurretMenu_Draw(t *testing.T) {
	m := settledMenu()
	r := newRecorder()
	turret := component.NewTurret(mgl32.Vec3{10, 0, 0}, defs.DefaultTurret, 4)
	item := &component.Item{Rarity: defs.Rare, PrimaryStat: defs.StatDamage, PrimaryBonus: 30, Quantity: 3}

	m.Draw(r, &turret, 2, []*component.Item{item}, 0, 0, 0)

	_, ok := r.find("TURRET  COST 4")
	assert.True(t, ok)
	_, ok = r.find("SELL +2")
	assert.True(t, ok)
	_, ok = r.find("3")
	assert.True(t, ok, "stack size is printed")
}

func TestInventoryGrid(t *testing.T) {
	g := NewInventoryGrid()
	r := newRecorder()
	db := system.NewItemDatabase()

	g.Draw(r, db.InventoryGrid(), 0, db.TotalCount())
	assert.Empty(t, r.texts, "hidden grid draws nothing")

	g.Toggle()
	key := system.TemplateKey{Rarity: defs.Epic, Primary: defs.StatRange, Secondary: defs.StatDamage}
	db.AddToInventory(key, 2)
	g.Draw(r, db.InventoryGrid(), db.DiscoveredCount(), db.TotalCount())

	_, ok := r.find("ITEMS 1/48")
	assert.True(t, ok)
	_, ok = r.find("2")
	assert.True(t, ok)

	cell := g.CellRect(defs.Epic, system.ColumnRange)
	assert.Equal(t, float32(gridStartX+3*90), cell.X)
	assert.Equal(t, float32(gridStartY+2*90), cell.Y)
}
