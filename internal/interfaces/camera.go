// internal/interfaces/camera.go
package interfaces

import "github.com/go-gl/mathgl/mgl32"

// CameraView — то, что нужно для проекции и лучей.
type CameraView interface {
	View() mgl32.Mat4
	Projection() mgl32.Mat4
	Position() mgl32.Vec3
}

// Camera — орбитальная камера вокруг ядра.
type Camera interface {
	CameraView
	Target() mgl32.Vec3
	// Front — единичный вектор от камеры к цели.
	Front() mgl32.Vec3
	// Rotate поворачивает камеру; dx, dy в «пикселях», чувствительность применяет камера.
	Rotate(dx, dy float32)
	// Zoom меняет дистанцию на delta с ограничением.
	Zoom(delta float32)
	Distance() float32
	SetAspect(aspect float32)
}

// RayCaster переводит позицию курсора в точку мира.
type RayCaster interface {
	// ScreenToPlane пересекает луч из курсора с плоскостью. false — луч параллелен
	// плоскости или пересечение позади камеры.
	ScreenToPlane(x, y float32, cam CameraView, width, height int, planeCenter, planeNormal mgl32.Vec3) (mgl32.Vec3, bool)
	// IntersectSphere возвращает ближайшую точку пересечения луча со сферой перед камерой.
	IntersectSphere(x, y float32, cam CameraView, width, height int, center mgl32.Vec3, radius float32) (mgl32.Vec3, bool)
}
