// pkg/camera/camera.go
package camera

import (
	"math"

	"github.com/Blckburn/CORE/internal/config"
	"github.com/go-gl/mathgl/mgl32"
)

// Orbit — камера, вращающаяся вокруг цели по сфере радиуса zoom.
// Углы в радианах: yaw вокруг оси Y, pitch ограничен ±pitchLimit.
type Orbit struct {
	target mgl32.Vec3
	up     mgl32.Vec3

	position mgl32.Vec3
	zoom     float32
	yaw      float32
	pitch    float32

	minZoom     float32
	maxZoom     float32
	sensitivity float32
	pitchLimit  float32

	fov    float32 // градусы
	aspect float32
	near   float32
	far    float32

	view       mgl32.Mat4
	projection mgl32.Mat4
}

// NewOrbit создаёт камеру, смотрящую на начало координат.
func NewOrbit(cfg config.CameraConfig) *Orbit {
	c := &Orbit{
		up:          mgl32.Vec3{0, 1, 0},
		zoom:        cfg.Distance,
		minZoom:     cfg.MinZoom,
		maxZoom:     cfg.MaxZoom,
		sensitivity: cfg.Sensitivity,
		pitchLimit:  cfg.PitchLimit,
		fov:         cfg.FOV,
		aspect:      float32(config.ScreenWidth) / float32(config.ScreenHeight),
		near:        cfg.Near,
		far:         cfg.Far,
	}
	c.updatePosition()
	c.updateProjection()
	return c
}

// Rotate поворачивает камеру на смещение в «пикселях» мыши или клавиш.
func (c *Orbit) Rotate(dx, dy float32) {
	c.yaw += dx * c.sensitivity
	c.pitch = mgl32.Clamp(c.pitch+dy*c.sensitivity, -c.pitchLimit, c.pitchLimit)
	c.updatePosition()
}

// SetRotation задаёт углы напрямую.
func (c *Orbit) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = mgl32.Clamp(pitch, -c.pitchLimit, c.pitchLimit)
	c.updatePosition()
}

// Zoom меняет дистанцию до цели в пределах [minZoom, maxZoom].
func (c *Orbit) Zoom(delta float32) {
	c.SetZoom(c.zoom + delta)
}

func (c *Orbit) SetZoom(zoom float32) {
	c.zoom = mgl32.Clamp(zoom, c.minZoom, c.maxZoom)
	c.updatePosition()
}

// SetAspect пересчитывает проекцию под новый размер окна.
func (c *Orbit) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
	c.updateProjection()
}

func (c *Orbit) updatePosition() {
	cy := float32(math.Cos(float64(c.pitch)))
	offset := mgl32.Vec3{
		float32(math.Cos(float64(c.yaw))) * cy,
		float32(math.Sin(float64(c.pitch))),
		float32(math.Sin(float64(c.yaw))) * cy,
	}
	c.position = c.target.Add(offset.Mul(c.zoom))
	c.view = mgl32.LookAtV(c.position, c.target, c.up)
}

func (c *Orbit) updateProjection() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
}

func (c *Orbit) View() mgl32.Mat4       { return c.view }
func (c *Orbit) Projection() mgl32.Mat4 { return c.projection }
func (c *Orbit) Position() mgl32.Vec3   { return c.position }
func (c *Orbit) Target() mgl32.Vec3     { return c.target }
func (c *Orbit) Distance() float32      { return c.zoom }
func (c *Orbit) Yaw() float32           { return c.yaw }
func (c *Orbit) Pitch() float32         { return c.pitch }

// Front — единичный вектор взгляда.
func (c *Orbit) Front() mgl32.Vec3 {
	return c.target.Sub(c.position).Normalize()
}
