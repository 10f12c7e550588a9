package assets

import (
	"math"

	"github.com/Blckburn/CORE/internal/logging"
	"github.com/go-gl/mathgl/mgl32"
)

// Идентификаторы встроенных каркасных моделей.
const (
	MeshCore       = "core"
	MeshTurret     = "turret"
	MeshBarrel     = "barrel"
	MeshEnemy      = "enemy"
	MeshProjectile = "projectile"
	MeshItem       = "item"
	MeshRing       = "ring"
)

// Mesh — каркасная модель: вершины в локальных координатах и рёбра между ними.
type Mesh struct {
	Vertices []mgl32.Vec3
	Edges    [][2]int
}

// MeshManager хранит все процедурные модели игры.
type MeshManager struct {
	meshes map[string]*Mesh
}

// NewMeshManager создаёт менеджер и сразу строит встроенные модели.
func NewMeshManager() *MeshManager {
	m := &MeshManager{meshes: make(map[string]*Mesh)}
	m.Register(MeshCore, Octahedron(1.5))
	m.Register(MeshTurret, Cube(1))
	m.Register(MeshBarrel, Box(0.2, 0.2, 1.2))
	m.Register(MeshEnemy, Octahedron(0.6))
	m.Register(MeshProjectile, Cube(0.2))
	m.Register(MeshItem, Pyramid(0.5, 0.8))
	m.Register(MeshRing, Ring(1, 48))
	logging.Logger.Debug().Int("meshes", len(m.meshes)).Msg("Meshes built")
	return m
}

// Register добавляет или заменяет модель.
func (m *MeshManager) Register(id string, mesh *Mesh) {
	m.meshes[id] = mesh
}

// Get возвращает модель по идентификатору.
func (m *MeshManager) Get(id string) (*Mesh, bool) {
	mesh, ok := m.meshes[id]
	return mesh, ok
}

// Cube — куб с ребром size, центр в начале координат.
func Cube(size float32) *Mesh {
	return Box(size, size, size)
}

// Box — параллелепипед w×h×d с центром в начале координат.
func Box(w, h, d float32) *Mesh {
	x, y, z := w/2, h/2, d/2
	return &Mesh{
		Vertices: []mgl32.Vec3{
			{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
			{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	}
}

// Octahedron — восьмигранник с «радиусом» r.
func Octahedron(r float32) *Mesh {
	return &Mesh{
		Vertices: []mgl32.Vec3{
			{r, 0, 0}, {-r, 0, 0}, {0, r, 0}, {0, -r, 0}, {0, 0, r}, {0, 0, -r},
		},
		Edges: [][2]int{
			{0, 2}, {0, 3}, {0, 4}, {0, 5},
			{1, 2}, {1, 3}, {1, 4}, {1, 5},
			{2, 4}, {4, 3}, {3, 5}, {5, 2},
		},
	}
}

// Pyramid — четырёхгранная пирамида с основанием base и высотой height.
func Pyramid(base, height float32) *Mesh {
	b := base / 2
	return &Mesh{
		Vertices: []mgl32.Vec3{
			{-b, 0, -b}, {b, 0, -b}, {b, 0, b}, {-b, 0, b}, {0, height, 0},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{0, 4}, {1, 4}, {2, 4}, {3, 4},
		},
	}
}

// Ring — окружность радиуса r в плоскости XZ из segments отрезков.
func Ring(r float32, segments int) *Mesh {
	mesh := &Mesh{
		Vertices: make([]mgl32.Vec3, segments),
		Edges:    make([][2]int, segments),
	}
	for i := range segments {
		a := 2 * math.Pi * float64(i) / float64(segments)
		mesh.Vertices[i] = mgl32.Vec3{r * float32(math.Cos(a)), 0, r * float32(math.Sin(a))}
		mesh.Edges[i] = [2]int{i, (i + 1) % segments}
	}
	return mesh
}
