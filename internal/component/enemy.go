// internal/component/enemy.go
package component

import (
	"image/color"

	"github.com/Blckburn/CORE/internal/defs"
	"github.com/Blckburn/CORE/internal/utils"
	"github.com/go-gl/mathgl/mgl32"
)

// ArrivalDistance — на таком расстоянии от цели враг считается дошедшим до ядра.
const ArrivalDistance = 1.0

// Enemy представляет врага, летящего к ядру в начале координат.
type Enemy struct {
	Position  mgl32.Vec3
	Target    mgl32.Vec3 // Всегда ядро
	Speed     float32
	Health    float32
	MaxHealth float32
	Color     color.RGBA
	Alive     bool
	Fast      bool // Жёлтый быстрый вариант
	// ReachedCore выставляется, когда враг погиб, дойдя до ядра
	ReachedCore bool
	Flash       DamageFlash
}

// NewEnemy создаёт врага с параметрами варианта def.
func NewEnemy(position mgl32.Vec3, def defs.EnemyDefinition) Enemy {
	return Enemy{
		Position:  position,
		Speed:     def.Speed,
		Health:    def.Health,
		MaxHealth: def.Health,
		Color:     def.Color,
		Alive:     true,
	}
}

// SetHealth задаёт и текущее, и максимальное здоровье.
func (e *Enemy) SetHealth(health float32) {
	e.Health = health
	e.MaxHealth = health
}

// Update двигает врага к цели. Возвращает true, если в этом кадре враг дошёл до ядра.
func (e *Enemy) Update(deltaTime float32) bool {
	if !e.Alive {
		return false
	}
	e.Flash.Update(deltaTime)
	dir, _ := utils.Direction(e.Position, e.Target)
	e.Position = e.Position.Add(dir.Mul(e.Speed * deltaTime))

	if e.DistanceToTarget() < ArrivalDistance {
		e.Alive = false
		e.ReachedCore = true
		return true
	}
	return false
}

// TakeDamage снимает здоровье. Возвращает true, если удар оказался смертельным.
func (e *Enemy) TakeDamage(damage float32) bool {
	if !e.Alive {
		return false
	}
	e.Health -= damage
	if e.Health <= 0 {
		e.Alive = false
		return true
	}
	e.Flash.Trigger(DamageFlashDuration)
	return false
}

func (e *Enemy) DistanceToTarget() float32 {
	return e.Target.Sub(e.Position).Len()
}

// HealthFraction — доля оставшегося здоровья для полоски над врагом.
func (e *Enemy) HealthFraction() float32 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return utils.Clamp(e.Health/e.MaxHealth, 0, 1)
}
