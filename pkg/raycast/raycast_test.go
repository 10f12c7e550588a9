package raycast

import (
	"testing"

	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/pkg/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectPlane(t *testing.T) {
	p, ok := IntersectPlane(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, -1, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, p)

	_, ok = IntersectPlane(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	assert.False(t, ok, "parallel")

	_, ok = IntersectPlane(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	assert.False(t, ok, "behind")
}

func TestIntersectSphere(t *testing.T) {
	p, ok := IntersectSphere(mgl32.Vec3{-10, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, 2)
	require.True(t, ok)
	assert.InDelta(t, -2.0, p.X(), 1e-5)

	// Изнутри сферы берётся точка выхода
	p, ok = IntersectSphere(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, 2)
	require.True(t, ok)
	assert.InDelta(t, 2.0, p.X(), 1e-5)

	_, ok = IntersectSphere(mgl32.Vec3{-10, 5, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, 2)
	assert.False(t, ok, "miss")

	_, ok = IntersectSphere(mgl32.Vec3{10, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, 2)
	assert.False(t, ok, "behind")
}

func TestCaster_CenterRayHitsTarget(t *testing.T) {
	cam := camera.NewOrbit(config.Default().Camera)
	cam.SetRotation(0.4, 0.2)
	c := New()

	origin, dir := c.Ray(640, 360, cam, 1280, 720)
	assert.Equal(t, cam.Position(), origin)
	assert.InDelta(t, 1.0, dir.Dot(cam.Front()), 1e-4)

	p, ok := c.IntersectSphere(640, 360, cam, 1280, 720, mgl32.Vec3{}, 1.5)
	require.True(t, ok)
	assert.InDelta(t, 1.5, p.Len(), 1e-2)

	// Плоскость через ядро, обращённая к камере
	p, ok = c.ScreenToPlane(640, 360, cam, 1280, 720, mgl32.Vec3{}, cam.Front())
	require.True(t, ok)
	assert.InDelta(t, 0.0, p.Len(), 0.1)
}

func TestCaster_OffCenterMissesSmallSphere(t *testing.T) {
	cam := camera.NewOrbit(config.Default().Camera)
	c := New()

	_, ok := c.IntersectSphere(0, 0, cam, 1280, 720, mgl32.Vec3{}, 1.5)
	assert.False(t, ok)
}
