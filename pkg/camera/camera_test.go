package camera

import (
	"testing"

	"github.com/Blckburn/CORE/internal/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func newTestOrbit() *Orbit {
	return NewOrbit(config.Default().Camera)
}

func TestOrbit_DefaultPosition(t *testing.T) {
	c := newTestOrbit()

	assert.InDelta(t, 25.0, c.Distance(), 1e-6)
	assert.InDelta(t, 25.0, c.Position().X(), 1e-4)
	assert.InDelta(t, 0.0, c.Position().Z(), 1e-4)
	assert.InDelta(t, -1.0, c.Front().X(), 1e-5)
}

func TestOrbit_ZoomClamped(t *testing.T) {
	c := newTestOrbit()

	c.Zoom(100)
	assert.InDelta(t, 40.0, c.Distance(), 1e-6)
	c.Zoom(-100)
	assert.InDelta(t, 15.0, c.Distance(), 1e-6)
	assert.InDelta(t, 15.0, c.Position().Len(), 1e-4)
}

func TestOrbit_RotateAppliesSensitivityAndPitchClamp(t *testing.T) {
	c := newTestOrbit()

	c.Rotate(100, 0)
	assert.InDelta(t, 0.5, c.Yaw(), 1e-6)

	c.Rotate(0, 1000)
	assert.InDelta(t, 1.5, c.Pitch(), 1e-6)
	c.Rotate(0, -2000)
	assert.InDelta(t, -1.5, c.Pitch(), 1e-6)

	// Дистанция до цели не зависит от углов
	assert.InDelta(t, 25.0, c.Position().Len(), 1e-4)
}

func TestOrbit_ViewLooksAtTarget(t *testing.T) {
	c := newTestOrbit()
	c.SetRotation(0.7, 0.3)

	// Цель попадает в центр экрана: в пространстве камеры лежит на оси -Z
	p := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0.0, p.X(), 1e-4)
	assert.InDelta(t, 0.0, p.Y(), 1e-4)
	assert.InDelta(t, -25.0, p.Z(), 1e-3)
}

func TestOrbit_SetAspectIgnoresInvalid(t *testing.T) {
	c := newTestOrbit()
	before := c.Projection()

	c.SetAspect(0)
	assert.Equal(t, before, c.Projection())

	c.SetAspect(1)
	assert.NotEqual(t, before, c.Projection())
}
