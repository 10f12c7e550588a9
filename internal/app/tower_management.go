// internal/app/tower_management.go
package app

import (
	"github.com/Blckburn/CORE/internal/interfaces"
	"github.com/Blckburn/CORE/internal/logging"
	"github.com/Blckburn/CORE/internal/utils"
)

// TogglePlacementMode включает и выключает режим установки турелей.
// При входе в режим меню турели закрывается.
func (g *Game) TogglePlacementMode() {
	g.placementMode = !g.placementMode
	g.hasPreview = false
	if g.placementMode {
		g.closeTurretMenu()
		g.hoveredItem = nil
	}
	logging.Logger.Debug().Bool("placement", g.placementMode).Msg("Placement mode toggled")
}

// AdjustPlacementDistance сдвигает плоскость установки на delta с ограничением.
func (g *Game) AdjustPlacementDistance(delta float32) {
	g.placementDistance = utils.Clamp(g.placementDistance+delta, g.cfg.Placement.MinDistance, g.cfg.Placement.MaxDistance)
}

// updatePlacement ведёт предпросмотр под курсором и ставит турель по клику.
func (g *Game) updatePlacement(dt float32) {
	step := g.cfg.Placement.AdjustSpeed * dt
	if g.input.IsKeyDown(interfaces.KeyEqual) {
		g.AdjustPlacementDistance(step)
	}
	if g.input.IsKeyDown(interfaces.KeyMinus) {
		g.AdjustPlacementDistance(-step)
	}

	front := g.camera.Front()
	center := g.camera.Position().Add(front.Mul(g.placementDistance))
	x, y := g.cursor()
	if pos, ok := g.rayCaster.ScreenToPlane(x, y, g.camera, g.renderer.Width(), g.renderer.Height(), center, front); ok {
		g.previewPos = pos
		g.previewValid = g.TurretManager.IsValidPlacement(pos)
		g.hasPreview = true
	}

	if g.input.IsMouseButtonPressed(interfaces.MouseLeft) {
		g.TryPlaceTurret()
	}
}

// TryPlaceTurret ставит турель в точку предпросмотра: проверка места и лимита,
// списание текущей цены, установка. Если менеджер отказал, деньги возвращаются.
// После успеха следующая турель стоит на 1 дороже.
func (g *Game) TryPlaceTurret() bool {
	if !g.hasPreview || !g.previewValid {
		logging.Logger.Debug().Msg("Cannot place turret here")
		return false
	}
	if !g.TurretManager.CanPlaceMoreTurrets() {
		logging.Logger.Info().Int("count", g.TurretManager.Count()).Msg("Turret limit reached")
		return false
	}
	cost := g.turretCost
	if !g.WaveManager.SpendCurrency(cost) {
		logging.Logger.Info().Int("cost", cost).Int("currency", g.WaveManager.GetCurrency()).Msg("Not enough currency for turret")
		return false
	}
	if _, ok := g.TurretManager.PlaceTurret(g.previewPos, cost); !ok {
		g.WaveManager.AddCurrency(cost)
		logging.Logger.Warn().Msg("Turret placement rejected, refunded")
		return false
	}
	g.turretCost++
	g.previewValid = g.TurretManager.IsValidPlacement(g.previewPos)
	return true
}

// SellRefund — сколько вернётся за турель стоимостью cost: половина, но не меньше 1.
func SellRefund(cost int) int {
	return max(1, cost/2)
}

// SellSelectedTurret продаёт выбранную турель. Предметы из слотов
// возвращаются в инвентарь.
func (g *Game) SellSelectedTurret() bool {
	if !g.menuOpen {
		return false
	}
	removed, ok := g.TurretManager.RemoveTurretAtPosition(g.menuPos, g.cfg.Turret.SelectRadius)
	if !ok {
		return false
	}
	for _, item := range removed.EquippedItems() {
		g.ItemManager.ReturnToInventory(item)
	}
	refund := SellRefund(removed.Cost)
	g.WaveManager.AddCurrency(refund)
	logging.Logger.Info().Int("cost", removed.Cost).Int("refund", refund).Msg("Turret sold")
	g.closeTurretMenu()
	return true
}

// EquipFromInventory ставит один предмет из стопки index в слот выбранной турели.
// Предмет, который был в слоте, возвращается в инвентарь.
func (g *Game) EquipFromInventory(index, slot int) bool {
	t, ok := g.TurretManager.Get(g.selectedTurret)
	if !ok {
		return false
	}
	item, ok := g.ItemManager.TakeFromInventory(index)
	if !ok {
		return false
	}
	previous, ok := t.EquipItem(item, slot)
	if !ok {
		g.ItemManager.ReturnToInventory(item)
		return false
	}
	g.ItemManager.ReturnToInventory(previous)
	logging.Logger.Info().Str("item", item.Name()).Int("slot", slot).Msg("Item equipped")
	return true
}

// UnequipSlot снимает предмет со слота выбранной турели в инвентарь.
func (g *Game) UnequipSlot(slot int) bool {
	t, ok := g.TurretManager.Get(g.selectedTurret)
	if !ok {
		return false
	}
	item := t.UnequipItem(slot)
	if item == nil {
		return false
	}
	g.ItemManager.ReturnToInventory(item)
	logging.Logger.Info().Str("item", item.Name()).Int("slot", slot).Msg("Item unequipped")
	return true
}
