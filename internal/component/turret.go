// internal/component/turret.go
package component

import (
	"image/color"

	"github.com/Blckburn/CORE/internal/defs"
	"github.com/Blckburn/CORE/internal/entity"
	"github.com/Blckburn/CORE/internal/utils"
	"github.com/go-gl/mathgl/mgl32"
)

// TurretStats — характеристики, на которые влияют предметы.
type TurretStats struct {
	Range    float32
	Damage   float32
	FireRate float32 // выстрелов в секунду
}

// Get возвращает значение характеристики по её идентификатору.
func (s TurretStats) Get(stat defs.Stat) float32 {
	switch stat {
	case defs.StatDamage:
		return s.Damage
	case defs.StatFireRate:
		return s.FireRate
	case defs.StatRange:
		return s.Range
	default:
		return 0
	}
}

// Turret — неподвижная турель с тремя слотами для предметов.
type Turret struct {
	Position mgl32.Vec3
	Base     TurretStats
	Stats    TurretStats // Base с учётом предметов
	Color    color.RGBA
	Active   bool
	Cost     int // Сколько заплатили при постройке

	Slots [defs.MaxItemSlots]*Item

	Target entity.Handle // Не владеющая ссылка на врага

	Rotation        float32 // Градусы, только для отрисовки
	RotationSpeed   float32 // Градусов в секунду
	ProjectileSpeed float32

	lastFireTime float32
	reloadTime   float32
}

// NewTurret создаёт турель из определения.
func NewTurret(position mgl32.Vec3, def defs.TurretDefinition, cost int) Turret {
	base := TurretStats{Range: def.Range, Damage: def.Damage, FireRate: def.FireRate}
	t := Turret{
		Position:        position,
		Base:            base,
		Color:           def.Color,
		Active:          true,
		Cost:            cost,
		RotationSpeed:   def.RotationSpeed,
		ProjectileSpeed: def.ProjectileSpeed,
	}
	t.RecalculateStats()
	return t
}

// RecalculateStats пересчитывает эффективные характеристики:
// base * (1 + сумма бонусов / 100) по всем слотам.
func (t *Turret) RecalculateStats() {
	var bonus [4]int // индекс — defs.Stat
	for _, item := range t.Slots {
		if item == nil {
			continue
		}
		bonus[item.PrimaryStat] += item.PrimaryBonus
		if item.HasSecondary() {
			bonus[item.SecondaryStat] += item.SecondaryBonus
		}
	}
	t.Stats = TurretStats{
		Range:    t.Base.Range * (1 + float32(bonus[defs.StatRange])/100),
		Damage:   t.Base.Damage * (1 + float32(bonus[defs.StatDamage])/100),
		FireRate: t.Base.FireRate * (1 + float32(bonus[defs.StatFireRate])/100),
	}
	if t.Stats.FireRate > 0 {
		t.reloadTime = 1 / t.Stats.FireRate
	}
}

// EquipItem кладёт предмет в слот и возвращает то, что там лежало раньше.
// Неверный номер слота или nil возвращают item обратно без изменений.
func (t *Turret) EquipItem(item *Item, slot int) (previous *Item, ok bool) {
	if item == nil || slot < 0 || slot >= len(t.Slots) {
		return item, false
	}
	previous = t.Slots[slot]
	t.Slots[slot] = item
	t.RecalculateStats()
	return previous, true
}

// UnequipItem освобождает слот и возвращает снятый предмет.
func (t *Turret) UnequipItem(slot int) *Item {
	if slot < 0 || slot >= len(t.Slots) {
		return nil
	}
	item := t.Slots[slot]
	t.Slots[slot] = nil
	t.RecalculateStats()
	return item
}

// EquippedItems возвращает непустые слоты.
func (t *Turret) EquippedItems() []*Item {
	var items []*Item
	for _, item := range t.Slots {
		if item != nil {
			items = append(items, item)
		}
	}
	return items
}

// UpdateFireTimer накапливает время с последнего выстрела.
func (t *Turret) UpdateFireTimer(deltaTime float32) {
	t.lastFireTime += deltaTime
}

// CanFire — прошло ли время перезарядки (1 / скорострельность).
func (t *Turret) CanFire() bool {
	return t.lastFireTime >= t.reloadTime
}

// ResetFireTimer вызывается после выстрела.
func (t *Turret) ResetFireTimer() {
	t.lastFireTime = 0
}

// ReloadTime — текущая перезарядка в секундах.
func (t *Turret) ReloadTime() float32 {
	return t.reloadTime
}

// InRange — находится ли точка в радиусе поражения (включительно).
func (t *Turret) InRange(p mgl32.Vec3) bool {
	return p.Sub(t.Position).Len() <= t.Stats.Range
}

// UpdateRotation поворачивает турель к aim (или к 0°, если цели нет)
// по кратчайшему пути со скоростью RotationSpeed.
func (t *Turret) UpdateRotation(deltaTime float32, aim mgl32.Vec3, hasTarget bool) {
	var targetRotation float32
	if hasTarget {
		targetRotation = utils.HeadingDegrees(aim.Sub(t.Position))
	}
	t.Rotation = utils.StepAngle(t.Rotation, targetRotation, t.RotationSpeed*deltaTime)
}
