// internal/system/turret.go
package system

import (
	"github.com/Blckburn/CORE/internal/component"
	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/defs"
	"github.com/Blckburn/CORE/internal/entity"
	"github.com/Blckburn/CORE/internal/event"
	"github.com/Blckburn/CORE/internal/logging"
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectileSpawner — куда турели отдают выстрелы (ProjectileManager).
type ProjectileSpawner interface {
	CreateProjectile(from mgl32.Vec3, target entity.Handle, targetPos mgl32.Vec3, speed, damage float32) bool
}

// TurretManager владеет турелями: размещение, наведение, стрельба, продажа.
type TurretManager struct {
	turrets         *entity.Arena[component.Turret]
	cfg             config.TurretConfig
	def             defs.TurretDefinition
	projectiles     ProjectileSpawner
	eventDispatcher *event.Dispatcher
}

func NewTurretManager(cfg config.TurretConfig, eventDispatcher *event.Dispatcher) *TurretManager {
	return &TurretManager{
		turrets:         entity.NewArena[component.Turret](),
		cfg:             cfg,
		def:             defs.DefaultTurret,
		eventDispatcher: eventDispatcher,
	}
}

// SetProjectileSpawner подключает менеджер снарядов. Без него турели наводятся, но не стреляют.
func (m *TurretManager) SetProjectileSpawner(p ProjectileSpawner) {
	m.projectiles = p
}

// IsValidPlacement проверяет кольцо [min, max] вокруг ядра (включительно)
// и минимальное расстояние до уже стоящих турелей.
func (m *TurretManager) IsValidPlacement(pos mgl32.Vec3) bool {
	dist := pos.Len()
	if dist < m.cfg.MinDistanceFromCenter || dist > m.cfg.MaxDistanceFromCenter {
		return false
	}

	valid := true
	m.turrets.Each(func(_ entity.Handle, t *component.Turret) bool {
		if t.Position.Sub(pos).Len() < m.cfg.MinDistanceBetween {
			valid = false
			return false
		}
		return true
	})
	return valid
}

// CanPlaceMoreTurrets — не достигнут ли лимит турелей.
func (m *TurretManager) CanPlaceMoreTurrets() bool {
	return m.turrets.Len() < m.cfg.MaxTurrets
}

// PlaceTurret ставит турель, если позиция допустима и лимит не достигнут.
// Оплату списывает вызывающий; при отказе он же возвращает деньги.
func (m *TurretManager) PlaceTurret(pos mgl32.Vec3, cost int) (entity.Handle, bool) {
	if !m.CanPlaceMoreTurrets() || !m.IsValidPlacement(pos) {
		return entity.Handle{}, false
	}

	h := m.turrets.Insert(component.NewTurret(pos, m.def, cost))
	logging.Logger.Info().
		Int("cost", cost).
		Int("count", m.turrets.Len()).
		Msg("Turret placed")
	m.eventDispatcher.Dispatch(event.Event{Type: event.TurretPlaced, Data: event.TurretData{Position: pos, Cost: cost}})
	return h, true
}

// Update наводит, поворачивает и стреляет всеми активными турелями.
func (m *TurretManager) Update(deltaTime float32, enemies *entity.Arena[component.Enemy]) {
	m.turrets.Each(func(_ entity.Handle, t *component.Turret) bool {
		if !t.Active {
			return true
		}

		target, hasTarget := m.updateTarget(t, enemies)
		t.UpdateFireTimer(deltaTime)

		var aim mgl32.Vec3
		if hasTarget {
			aim = target.Position
		}
		t.UpdateRotation(deltaTime, aim, hasTarget)

		if hasTarget && t.CanFire() {
			m.fire(t, target)
		}
		return true
	})
}

// updateTarget сбрасывает устаревшую цель и при необходимости ищет новую.
// Цель не меняется, пока она жива и в радиусе.
func (m *TurretManager) updateTarget(t *component.Turret, enemies *entity.Arena[component.Enemy]) (*component.Enemy, bool) {
	if !t.Target.IsZero() {
		if e, ok := enemies.Get(t.Target); ok && e.Alive && t.InRange(e.Position) {
			return e, true
		}
		t.Target = entity.Handle{}
	}

	var (
		best     *component.Enemy
		bestH    entity.Handle
		bestDist = t.Stats.Range
	)
	enemies.Each(func(h entity.Handle, e *component.Enemy) bool {
		if !e.Alive {
			return true
		}
		if d := e.Position.Sub(t.Position).Len(); d < bestDist {
			best, bestH, bestDist = e, h, d
		}
		return true
	})
	if best == nil {
		return nil, false
	}
	t.Target = bestH
	return best, true
}

func (m *TurretManager) fire(t *component.Turret, target *component.Enemy) {
	if m.projectiles != nil {
		m.projectiles.CreateProjectile(t.Position, t.Target, target.Position, t.ProjectileSpeed, t.Stats.Damage)
	}
	t.ResetFireTimer()
}

// GetTurretAtPosition возвращает ближайшую турель в радиусе radius от pos.
func (m *TurretManager) GetTurretAtPosition(pos mgl32.Vec3, radius float32) (entity.Handle, *component.Turret, bool) {
	var (
		found    *component.Turret
		foundH   entity.Handle
		bestDist = radius
	)
	m.turrets.Each(func(h entity.Handle, t *component.Turret) bool {
		if d := t.Position.Sub(pos).Len(); d <= bestDist {
			found, foundH, bestDist = t, h, d
		}
		return true
	})
	if found == nil {
		return entity.Handle{}, nil, false
	}
	return foundH, found, true
}

// RemoveTurretAtPosition убирает ближайшую турель в радиусе и возвращает её копию.
func (m *TurretManager) RemoveTurretAtPosition(pos mgl32.Vec3, radius float32) (component.Turret, bool) {
	h, _, ok := m.GetTurretAtPosition(pos, radius)
	if !ok {
		return component.Turret{}, false
	}
	return m.Remove(h)
}

// Remove убирает турель по Handle. Предметы из слотов остаются в возвращённой копии.
func (m *TurretManager) Remove(h entity.Handle) (component.Turret, bool) {
	t, ok := m.turrets.Get(h)
	if !ok {
		return component.Turret{}, false
	}
	removed := *t
	m.turrets.Remove(h)

	logging.Logger.Info().Int("cost", removed.Cost).Int("count", m.turrets.Len()).Msg("Turret removed")
	m.eventDispatcher.Dispatch(event.Event{Type: event.TurretSold, Data: event.TurretData{Position: removed.Position, Cost: removed.Cost}})
	return removed, true
}

func (m *TurretManager) Get(h entity.Handle) (*component.Turret, bool) {
	return m.turrets.Get(h)
}

func (m *TurretManager) Turrets() *entity.Arena[component.Turret] {
	return m.turrets
}

func (m *TurretManager) Count() int {
	return m.turrets.Len()
}

// ClearAll удаляет все турели без событий продажи (рестарт).
func (m *TurretManager) ClearAll() {
	m.turrets.Clear()
}
