package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshManager_BuiltinMeshes(t *testing.T) {
	m := NewMeshManager()

	for _, id := range []string{MeshCore, MeshTurret, MeshBarrel, MeshEnemy, MeshProjectile, MeshItem, MeshRing} {
		mesh, ok := m.Get(id)
		require.True(t, ok, id)
		for _, e := range mesh.Edges {
			assert.Less(t, e[0], len(mesh.Vertices), id)
			assert.Less(t, e[1], len(mesh.Vertices), id)
		}
	}

	_, ok := m.Get("missing")
	assert.False(t, ok)
}

func TestShapes(t *testing.T) {
	cube := Cube(2)
	assert.Len(t, cube.Vertices, 8)
	assert.Len(t, cube.Edges, 12)
	assert.InDelta(t, 1.0, cube.Vertices[6].X(), 1e-6)

	assert.Len(t, Octahedron(1).Edges, 12)
	assert.Len(t, Pyramid(1, 1).Edges, 8)

	ring := Ring(3, 16)
	assert.Len(t, ring.Edges, 16)
	for _, v := range ring.Vertices {
		assert.InDelta(t, 3.0, v.Len(), 1e-5)
	}
	assert.Equal(t, [2]int{15, 0}, ring.Edges[15])
}
