// internal/defs/enemies.go
package defs

import (
	"image/color"
	"math"
)

// EnemyDefinition — базовые параметры варианта врага до масштабирования сложностью.
type EnemyDefinition struct {
	ID     string
	Speed  float32
	Health float32
	Color  color.RGBA
}

var (
	// NormalEnemy — обычный красный враг.
	NormalEnemy = EnemyDefinition{
		ID:     "ENEMY_NORMAL",
		Speed:  5,
		Health: 100,
		Color:  color.RGBA{255, 0, 0, 255},
	}
	// FastEnemy — жёлтый враг: быстрее, но почти без здоровья.
	FastEnemy = EnemyDefinition{
		ID:     "ENEMY_FAST",
		Speed:  6,
		Health: 6,
		Color:  color.RGBA{255, 255, 0, 255},
	}
)

// MaxSpeedScale ограничивает рост скорости врагов.
const MaxSpeedScale = 1.5

// SpeedScale — демпфированный множитель скорости: min(1.5, 1 + (d-1)*0.5).
func SpeedScale(difficulty float32) float32 {
	return float32(math.Min(MaxSpeedScale, float64(1+(difficulty-1)*0.5)))
}

// Scaled возвращает скорость и здоровье варианта для данной сложности.
// Здоровье растёт линейно, скорость — через SpeedScale.
func (d EnemyDefinition) Scaled(difficulty float32) (speed, health float32) {
	return d.Speed * SpeedScale(difficulty), d.Health * difficulty
}
