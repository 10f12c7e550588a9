// internal/app/interaction.go
package app

import (
	"github.com/Blckburn/CORE/internal/component"
	"github.com/Blckburn/CORE/internal/entity"
	"github.com/Blckburn/CORE/internal/interfaces"
	"github.com/Blckburn/CORE/internal/logging"
	"github.com/go-gl/mathgl/mgl32"
)

// updateCamera — вращение клавишами A/D/W/S, зум Q/E и колесом.
func (g *Game) updateCamera(dt float32) {
	if g.input.IsKeyDown(interfaces.KeyA) {
		g.camera.Rotate(-keyRotateYaw, 0)
	}
	if g.input.IsKeyDown(interfaces.KeyD) {
		g.camera.Rotate(keyRotateYaw, 0)
	}
	if g.input.IsKeyDown(interfaces.KeyW) {
		g.camera.Rotate(0, keyRotatePitch)
	}
	if g.input.IsKeyDown(interfaces.KeyS) {
		g.camera.Rotate(0, -keyRotatePitch)
	}
	if g.input.IsKeyDown(interfaces.KeyQ) {
		g.camera.Zoom(keyZoomStep)
	}
	if g.input.IsKeyDown(interfaces.KeyE) {
		g.camera.Zoom(-keyZoomStep)
	}

	if scroll := g.input.ScrollDelta(); scroll != 0 {
		g.camera.Zoom(-scroll * g.cfg.Camera.ScrollZoom)
		g.input.ConsumeScrollDelta()
	}
}

// updateHover ищет предмет и турель под курсором: ближайшее к камере пересечение
// луча со сферой вокруг объекта.
func (g *Game) updateHover() {
	g.hoveredItem = nil
	g.hoveredTurret = entity.Handle{}

	x, y := g.cursor()
	w, h := g.renderer.Width(), g.renderer.Height()
	camPos := g.camera.Position()

	if !g.menuOpen {
		best := float32(-1)
		for _, item := range g.ItemManager.DroppedItems() {
			if !item.Active {
				continue
			}
			hit, ok := g.rayCaster.IntersectSphere(x, y, g.camera, w, h, item.Position, g.cfg.Item.HoverRadius)
			if !ok {
				continue
			}
			if d := hit.Sub(camPos).Len(); best < 0 || d < best {
				best = d
				g.hoveredItem = item
			}
		}
	}

	best := float32(-1)
	g.TurretManager.Turrets().Each(func(handle entity.Handle, t *component.Turret) bool {
		if !t.Active {
			return true
		}
		hit, ok := g.rayCaster.IntersectSphere(x, y, g.camera, w, h, t.Position, g.cfg.Turret.HoverRadius)
		if !ok {
			return true
		}
		if d := hit.Sub(camPos).Len(); best < 0 || d < best {
			best = d
			g.hoveredTurret = handle
		}
		return true
	})
}

// handleLeftClick: клик по меню турели обрабатывается меню, иначе подбираем
// предмет под курсором.
func (g *Game) handleLeftClick() {
	if !g.input.IsMouseButtonPressed(interfaces.MouseLeft) {
		return
	}
	x, y := g.cursor()
	if g.menuOpen && g.turretMenu.Contains(x, y, g.renderer.Width()) {
		g.handleMenuClick(x, y)
		return
	}
	if g.hoveredItem == nil {
		return
	}
	if stack, ok := g.ItemManager.PickupItem(g.hoveredItem); ok {
		logging.Logger.Debug().Str("item", stack.Name()).Int("quantity", stack.Quantity).Msg("Picked up")
	}
	g.hoveredItem = nil
}

// handleMenuClick: ячейка инвентаря выбирается, затем клик по слоту ставит
// предмет. Клик по занятому слоту без выбранного предмета снимает предмет.
func (g *Game) handleMenuClick(x, y float32) {
	hit := g.turretMenu.HitTest(x, y, g.renderer.Width(), len(g.ItemManager.Inventory()))
	switch {
	case hit.Sell:
		g.SellSelectedTurret()
	case hit.Inventory >= 0:
		if g.selectedSlot == hit.Inventory {
			g.selectedSlot = -1
		} else {
			g.selectedSlot = hit.Inventory
		}
	case hit.Slot >= 0 && g.selectedSlot >= 0:
		g.EquipFromInventory(g.selectedSlot, hit.Slot)
		g.selectedSlot = -1
	case hit.Slot >= 0:
		g.UnequipSlot(hit.Slot)
	}
}

// updateRightButton различает короткий клик (выбор турели) и удержание (вращение камеры).
func (g *Game) updateRightButton(dt float32) {
	down := g.input.IsMouseButtonDown(interfaces.MouseRight)
	if down {
		g.rightHold += dt
		if g.rightHold > rightRotateDelay {
			if dx, dy := g.input.CursorDelta(); dx != 0 || dy != 0 {
				g.camera.Rotate(dx, -dy)
			}
		}
	}

	if !down && g.rightWasDown && g.rightHold < rightClickMaxHold {
		if g.hoveredTurret.IsZero() {
			g.closeTurretMenu()
		} else {
			g.SelectTurret(g.hoveredTurret)
		}
	}
	if !down {
		g.rightHold = 0
	}
	g.rightWasDown = down
}

// SelectTurret выбирает турель и открывает её меню.
func (g *Game) SelectTurret(h entity.Handle) bool {
	t, ok := g.TurretManager.Get(h)
	if !ok {
		return false
	}
	if h != g.selectedTurret {
		g.selectedSlot = -1
	}
	g.selectedTurret = h
	g.menuOpen = true
	g.menuPos = t.Position
	g.turretMenu.Open(g.renderer.Height())
	logging.Logger.Debug().Float32("x", t.Position.X()).Float32("y", t.Position.Y()).Float32("z", t.Position.Z()).Msg("Turret selected")
	return true
}

func (g *Game) closeTurretMenu() {
	g.selectedTurret = entity.Handle{}
	g.menuOpen = false
	g.menuPos = mgl32.Vec3{}
	g.selectedSlot = -1
	g.turretMenu.Hide()
}
