// internal/system/spawner.go
package system

import (
	"math"

	"github.com/Blckburn/CORE/internal/component"
	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/defs"
	"github.com/Blckburn/CORE/internal/entity"
	"github.com/Blckburn/CORE/internal/event"
	"github.com/Blckburn/CORE/internal/logging"
	"github.com/Blckburn/CORE/internal/utils"
	"github.com/go-gl/mathgl/mgl32"
)

// DifficultySource отдаёт текущий множитель сложности (WaveManager).
type DifficultySource interface {
	GetDifficultyMultiplier() float32
}

// EnemySpawner владеет всеми врагами. Турели и снаряды держат только Handle.
type EnemySpawner struct {
	enemies         *entity.Arena[component.Enemy]
	radius          float32
	fastChance      float32
	difficulty      DifficultySource
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewEnemySpawner(cfg config.SpawnerConfig, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *EnemySpawner {
	return &EnemySpawner{
		enemies:         entity.NewArena[component.Enemy](),
		radius:          cfg.Radius,
		fastChance:      cfg.FastChance,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

// SetDifficultySource подключает источник сложности. Без него сложность равна 1.
func (s *EnemySpawner) SetDifficultySource(d DifficultySource) {
	s.difficulty = d
}

// GenerateSpawnPosition — случайная точка на кольце радиуса radius:
// угол в [0, 2π), высота в [-r/2, r/2].
func (s *EnemySpawner) GenerateSpawnPosition() mgl32.Vec3 {
	angle := s.rng.Float32Range(0, 2*math.Pi)
	height := s.rng.Float32Range(-s.radius*0.5, s.radius*0.5)
	return mgl32.Vec3{
		s.radius * float32(math.Cos(float64(angle))),
		s.radius * float32(math.Sin(float64(angle))),
		height,
	}
}

// SpawnEnemy создаёт врага на кольце. С вероятностью fastChance это быстрый
// жёлтый вариант, иначе обычный; оба масштабируются сложностью.
func (s *EnemySpawner) SpawnEnemy() entity.Handle {
	pos := s.GenerateSpawnPosition()

	difficulty := float32(1)
	if s.difficulty != nil {
		difficulty = s.difficulty.GetDifficultyMultiplier()
	}

	def := defs.NormalEnemy
	fast := s.rng.Float64() < float64(s.fastChance)
	if fast {
		def = defs.FastEnemy
	}

	enemy := component.NewEnemy(pos, def)
	speed, health := def.Scaled(difficulty)
	enemy.Speed = speed
	enemy.SetHealth(health)
	enemy.Fast = fast

	h := s.enemies.Insert(enemy)

	logging.TraceSample.Debug().
		Bool("fast", fast).
		Float32("health", health).
		Float32("speed", speed).
		Msg("Enemy spawned")
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{Position: pos, Fast: fast}})
	return h
}

// Update двигает живых врагов, сообщает о дошедших до ядра и убирает мёртвых.
func (s *EnemySpawner) Update(deltaTime float32) {
	s.enemies.Each(func(_ entity.Handle, e *component.Enemy) bool {
		if e.Update(deltaTime) {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyReachedCore,
				Data: event.EnemyData{Position: e.Position, Fast: e.Fast},
			})
		}
		return true
	})
	if removed := s.CleanupDeadEnemies(); removed > 0 {
		logging.TraceSample.Debug().Int("removed", removed).Int("left", s.enemies.Len()).Msg("Dead enemies compacted")
	}
}

// CleanupDeadEnemies удаляет погибших врагов из арены. Их Handle становятся недействительными.
func (s *EnemySpawner) CleanupDeadEnemies() int {
	return s.enemies.RemoveIf(func(e *component.Enemy) bool { return !e.Alive })
}

// Enemies — арена врагов для чтения и нанесения урона.
func (s *EnemySpawner) Enemies() *entity.Arena[component.Enemy] {
	return s.enemies
}

// Get возвращает врага по Handle, если он ещё в арене.
func (s *EnemySpawner) Get(h entity.Handle) (*component.Enemy, bool) {
	return s.enemies.Get(h)
}

func (s *EnemySpawner) AliveCount() int {
	count := 0
	s.enemies.Each(func(_ entity.Handle, e *component.Enemy) bool {
		if e.Alive {
			count++
		}
		return true
	})
	return count
}

func (s *EnemySpawner) ClearAll() {
	s.enemies.Clear()
}
