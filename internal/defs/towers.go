// internal/defs/towers.go
package defs

import "image/color"

// TurretDefinition — базовые характеристики турели без предметов.
type TurretDefinition struct {
	Range           float32
	Damage          float32
	FireRate        float32 // выстрелов в секунду
	RotationSpeed   float32 // градусов в секунду
	ProjectileSpeed float32
	Color           color.RGBA
}

// MaxItemSlots — число слотов для предметов у турели.
const MaxItemSlots = 3

// DefaultTurret — единственный тип турели в игре.
var DefaultTurret = TurretDefinition{
	Range:           15,
	Damage:          25,
	FireRate:        2,
	RotationSpeed:   180,
	ProjectileSpeed: 30,
	Color:           color.RGBA{0, 255, 0, 255},
}
