// pkg/raycast/raycast.go
package raycast

import (
	"math"

	"github.com/Blckburn/CORE/internal/interfaces"
	"github.com/go-gl/mathgl/mgl32"
)

// parallelEpsilon — луч почти параллелен плоскости, пересечения нет.
const parallelEpsilon = 0.001

// Caster строит лучи из камеры через точку экрана.
type Caster struct{}

func New() *Caster {
	return &Caster{}
}

// Unproject переводит точку экрана (x, y в пикселях, depth 0 — ближняя
// плоскость, 1 — дальняя) в мировые координаты.
func Unproject(x, y, depth float32, view, projection mgl32.Mat4, width, height int) mgl32.Vec3 {
	ndc := mgl32.Vec4{
		2*x/float32(width) - 1,
		1 - 2*y/float32(height),
		2*depth - 1,
		1,
	}
	world := projection.Mul4(view).Inv().Mul4x1(ndc)
	if world.W() != 0 {
		world = world.Mul(1 / world.W())
	}
	return world.Vec3()
}

// Ray возвращает начало (позиция камеры) и единичное направление луча через пиксель (x, y).
func (c *Caster) Ray(x, y float32, cam interfaces.CameraView, width, height int) (origin, dir mgl32.Vec3) {
	near := Unproject(x, y, 0, cam.View(), cam.Projection(), width, height)
	far := Unproject(x, y, 1, cam.View(), cam.Projection(), width, height)
	return cam.Position(), far.Sub(near).Normalize()
}

// ScreenToPlane пересекает луч через курсор с плоскостью (центр, нормаль).
func (c *Caster) ScreenToPlane(x, y float32, cam interfaces.CameraView, width, height int, planeCenter, planeNormal mgl32.Vec3) (mgl32.Vec3, bool) {
	origin, dir := c.Ray(x, y, cam, width, height)
	return IntersectPlane(origin, dir, planeCenter, planeNormal)
}

// IntersectSphere пересекает луч через курсор со сферой.
func (c *Caster) IntersectSphere(x, y float32, cam interfaces.CameraView, width, height int, center mgl32.Vec3, radius float32) (mgl32.Vec3, bool) {
	origin, dir := c.Ray(x, y, cam, width, height)
	return IntersectSphere(origin, dir, center, radius)
}

// IntersectPlane — пересечение луча с плоскостью. Пересечения позади начала луча не считаются.
func IntersectPlane(origin, dir, planeCenter, planeNormal mgl32.Vec3) (mgl32.Vec3, bool) {
	denom := dir.Dot(planeNormal)
	if float32(math.Abs(float64(denom))) < parallelEpsilon {
		return mgl32.Vec3{}, false
	}
	t := planeCenter.Sub(origin).Dot(planeNormal) / denom
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return origin.Add(dir.Mul(t)), true
}

// IntersectSphere — ближайшее пересечение луча со сферой перед началом луча.
// Если начало внутри сферы, возвращается точка выхода.
func IntersectSphere(origin, dir, center mgl32.Vec3, radius float32) (mgl32.Vec3, bool) {
	oc := origin.Sub(center)
	a := dir.Dot(dir)
	b := 2 * oc.Dot(dir)
	cc := oc.Dot(oc) - radius*radius

	disc := b*b - 4*a*cc
	if disc < 0 || a == 0 {
		return mgl32.Vec3{}, false
	}
	sq := float32(math.Sqrt(float64(disc)))
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	t := t2
	if t1 > 0 {
		t = t1
	}
	if t <= 0 {
		return mgl32.Vec3{}, false
	}
	return origin.Add(dir.Mul(t)), true
}
