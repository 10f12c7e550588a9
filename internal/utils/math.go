// internal/utils/math.go
package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp ограничивает v диапазоном [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return mgl32.Clamp(v, lo, hi)
}

// WrapDegrees приводит разницу углов к диапазону [-180, 180]
func WrapDegrees(diff float32) float32 {
	for diff > 180 {
		diff -= 360
	}
	for diff < -180 {
		diff += 360
	}
	return diff
}

// StepAngle поворачивает current к target по кратчайшему пути,
// но не больше чем на maxStep градусов.
func StepAngle(current, target, maxStep float32) float32 {
	diff := WrapDegrees(target - current)
	if float32(math.Abs(float64(diff))) <= maxStep {
		return target
	}
	if diff > 0 {
		return current + maxStep
	}
	return current - maxStep
}

// HeadingDegrees — курс на точку в горизонтальной плоскости: atan2(x, z) в градусах.
// Вертикальная составляющая игнорируется.
func HeadingDegrees(dir mgl32.Vec3) float32 {
	flat := mgl32.Vec3{dir.X(), 0, dir.Z()}
	if flat.Len() <= 0.001 {
		return 0
	}
	return mgl32.RadToDeg(float32(math.Atan2(float64(flat.X()), float64(flat.Z()))))
}

// Direction возвращает единичный вектор от from к to и расстояние между ними.
// Для почти совпадающих точек возвращается нулевой вектор.
func Direction(from, to mgl32.Vec3) (mgl32.Vec3, float32) {
	d := to.Sub(from)
	dist := d.Len()
	if dist <= 0.001 {
		return mgl32.Vec3{}, dist
	}
	return d.Mul(1 / dist), dist
}
