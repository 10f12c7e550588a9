// internal/app/draw.go
package app

import (
	"image/color"

	"github.com/Blckburn/CORE/internal/assets"
	"github.com/Blckburn/CORE/internal/component"
	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/entity"
	"github.com/Blckburn/CORE/internal/ui"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	hoveredTurretColor = color.RGBA{144, 238, 144, 255}
	rangeRingColor     = color.RGBA{255, 200, 0, 120}
)

// Draw рисует сцену игрового экрана и его интерфейс.
func (g *Game) Draw() {
	r := g.renderer
	r.SetCamera(g.camera.View(), g.camera.Projection())

	g.drawMesh(assets.MeshCore, mgl32.Ident4(), config.CoreColor)
	g.drawEnemies()
	g.drawTurrets()
	g.drawProjectiles()
	g.drawItems()
	if g.placementMode && g.hasPreview {
		c := config.PreviewInvalid
		if g.previewValid {
			c = config.PreviewValid
		}
		g.drawMesh(assets.MeshTurret, mgl32.Translate3D(g.previewPos.Elem()), c)
	}

	g.drawUI()
}

func (g *Game) drawMesh(id string, model mgl32.Mat4, c color.RGBA) {
	mesh, ok := g.Meshes.Get(id)
	if !ok {
		return
	}
	g.renderer.DrawWireMesh(mesh, model, c)
}

func (g *Game) drawEnemies() {
	g.Spawner.Enemies().Each(func(_ entity.Handle, e *component.Enemy) bool {
		if !e.Alive {
			return true
		}
		c := e.Color
		if e.Flash.Active() {
			c = config.HoverColor
		}
		g.drawMesh(assets.MeshEnemy, mgl32.Translate3D(e.Position.Elem()), c)
		return true
	})
}

func (g *Game) drawTurrets() {
	g.TurretManager.Turrets().Each(func(h entity.Handle, t *component.Turret) bool {
		c := t.Color
		switch h {
		case g.selectedTurret:
			c = config.SelectedColor
		case g.hoveredTurret:
			c = hoveredTurretColor
		}
		model := mgl32.Translate3D(t.Position.Elem()).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotation)))
		g.drawMesh(assets.MeshTurret, model, c)
		g.drawMesh(assets.MeshBarrel, model.Mul4(mgl32.Translate3D(0, 0.3, 0.6)), c)

		if h == g.selectedTurret {
			ring := mgl32.Translate3D(t.Position.Elem()).Mul4(mgl32.Scale3D(t.Stats.Range, 1, t.Stats.Range))
			g.drawMesh(assets.MeshRing, ring, rangeRingColor)
		}
		return true
	})
}

func (g *Game) drawProjectiles() {
	for _, p := range g.ProjectileManager.Projectiles() {
		g.drawMesh(assets.MeshProjectile, mgl32.Translate3D(p.Position.Elem()), p.Color)
	}
}

// drawItems рисует лежащие предметы в половину размера; под курсором — ярче.
func (g *Game) drawItems() {
	for _, item := range g.ItemManager.DroppedItems() {
		if !item.Active {
			continue
		}
		c := item.Color()
		if item == g.hoveredItem {
			c = brighten(c)
		}
		model := mgl32.Translate3D(item.Position.Elem()).Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))
		g.drawMesh(assets.MeshItem, model, c)
	}
}

func brighten(c color.RGBA) color.RGBA {
	lift := func(v uint8) uint8 { return uint8(min(255, int(v)+80)) }
	return color.RGBA{lift(c.R), lift(c.G), lift(c.B), c.A}
}

func (g *Game) drawUI() {
	r := g.renderer
	g.hud.Draw(r, g.HUDData())

	mx, my := g.cursor()
	if g.menuOpen {
		if t, ok := g.TurretManager.Get(g.selectedTurret); ok {
			g.turretMenu.Draw(r, t, SellRefund(t.Cost), g.ItemManager.Inventory(), g.selectedSlot, mx, my)
		}
	}
	db := g.ItemDatabase
	g.inventoryGrid.Draw(r, db.InventoryGrid(), db.DiscoveredCount(), db.TotalCount())

	if g.placementMode {
		ui.DrawCostTooltip(r, g.turretCost, g.WaveManager.GetCurrency(), mx, my)
	}
	if g.paused {
		ui.DrawPausedOverlay(r)
	}
}

// HUDData собирает снимок для HUD.
func (g *Game) HUDData() ui.HUDData {
	w := g.WaveManager
	return ui.HUDData{
		Wave:              w.GetCurrentWave(),
		Score:             w.GetScore(),
		Currency:          w.GetCurrency(),
		EnemiesRemaining:  w.GetEnemiesRemaining(),
		WaveActive:        w.IsWaveActive(),
		WaveDelay:         w.GetWaveDelayTimer(),
		CoreHealth:        w.GetCoreHealth(),
		MaxCoreHealth:     g.cfg.Wave.CoreHealth,
		GameOver:          w.IsGameOver(),
		PlacementMode:     g.placementMode,
		PlacementDistance: g.placementDistance,
		TurretCount:       g.TurretManager.Count(),
		MaxTurrets:        g.cfg.Turret.MaxTurrets,
	}
}
