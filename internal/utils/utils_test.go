package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPRNGService_Deterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestPRNGService_Float32Range(t *testing.T) {
	p := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := p.Float32Range(-12.5, 12.5)
		assert.GreaterOrEqual(t, v, float32(-12.5))
		assert.Less(t, v, float32(12.5))
	}
}

func TestPRNGService_ChooseWeighted(t *testing.T) {
	p := NewPRNGService(1)
	assert.Equal(t, -1, p.ChooseWeighted(nil))
	assert.Equal(t, -1, p.ChooseWeighted([]int{0, 0}))
	for i := 0; i < 100; i++ {
		assert.Equal(t, 1, p.ChooseWeighted([]int{0, 5, 0}))
	}
}

func TestWrapDegrees(t *testing.T) {
	assert.InDelta(t, -170, WrapDegrees(190), 1e-4)
	assert.InDelta(t, 170, WrapDegrees(-190), 1e-4)
	assert.InDelta(t, 10, WrapDegrees(730), 1e-4)
	assert.InDelta(t, 180, WrapDegrees(180), 1e-4)
}

func TestStepAngle(t *testing.T) {
	// в пределах шага — сразу в цель
	assert.InDelta(t, 30, StepAngle(0, 30, 90), 1e-4)
	// ограничение шагом
	assert.InDelta(t, 90, StepAngle(0, 170, 90), 1e-4)
	// кратчайший путь через ±180
	assert.InDelta(t, 180, StepAngle(170, -170, 10), 1e-4)
	assert.InDelta(t, -10, StepAngle(0, -90, 10), 1e-4)
}

func TestHeadingDegrees(t *testing.T) {
	assert.InDelta(t, 0, HeadingDegrees(mgl32.Vec3{0, 0, 1}), 1e-4)
	assert.InDelta(t, 90, HeadingDegrees(mgl32.Vec3{1, 0, 0}), 1e-4)
	assert.InDelta(t, 180, HeadingDegrees(mgl32.Vec3{0, 5, -1}), 1e-4)
	assert.InDelta(t, 0, HeadingDegrees(mgl32.Vec3{0, 3, 0}), 1e-4)
}

func TestDirection(t *testing.T) {
	dir, dist := Direction(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 4, 0})
	assert.InDelta(t, 5, dist, 1e-5)
	assert.InDelta(t, 0.6, dir.X(), 1e-5)
	assert.InDelta(t, 0.8, dir.Y(), 1e-5)

	dir, _ = Direction(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1})
	assert.Equal(t, mgl32.Vec3{}, dir)
}
