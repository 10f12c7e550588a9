// internal/system/projectile.go
package system

import (
	"github.com/Blckburn/CORE/internal/component"
	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/entity"
	"github.com/Blckburn/CORE/internal/event"
	"github.com/Blckburn/CORE/internal/logging"
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectileManager управляет движением снарядов и нанесением урона
type ProjectileManager struct {
	projectiles     []component.Projectile
	lifetime        float32
	hitRadius       float32
	eventDispatcher *event.Dispatcher
}

func NewProjectileManager(cfg config.ProjectileConfig, eventDispatcher *event.Dispatcher) *ProjectileManager {
	return &ProjectileManager{
		lifetime:        cfg.Lifetime,
		hitRadius:       cfg.HitRadius,
		eventDispatcher: eventDispatcher,
	}
}

// CreateProjectile выпускает снаряд из from в точку targetPos. Возвращает false,
// если направление вырожденное и снаряд не создан.
func (m *ProjectileManager) CreateProjectile(from mgl32.Vec3, target entity.Handle, targetPos mgl32.Vec3, speed, damage float32) bool {
	p := component.NewProjectile(from, targetPos, target, speed, damage)
	if !p.Active {
		return false
	}
	if m.lifetime > 0 {
		p.Lifetime = m.lifetime
	}
	m.projectiles = append(m.projectiles, p)

	logging.TraceSample.Debug().Float32("damage", damage).Msg("Projectile fired")
	m.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.EnemyData{Position: from}})
	return true
}

func (m *ProjectileManager) Update(deltaTime float32, enemies *entity.Arena[component.Enemy]) {
	for i := range m.projectiles {
		p := &m.projectiles[i]
		if !p.Active {
			continue
		}

		// Долетевший в прошлом кадре снаряд наносит урон и исчезает
		if p.Reached {
			m.hitTarget(p, enemies)
			p.Active = false
			continue
		}

		// Полусамонаведение: пока цель жива, точка прицеливания следует за ней
		if e, ok := enemies.Get(p.Target); ok && e.Alive {
			p.Retarget(e.Position)
		}

		p.Advance(deltaTime)
	}
	m.removeInactive()
}

// hitTarget бьёт первого живого врага в радиусе попадания от снаряда.
func (m *ProjectileManager) hitTarget(p *component.Projectile, enemies *entity.Arena[component.Enemy]) {
	enemies.Each(func(_ entity.Handle, e *component.Enemy) bool {
		if !e.Alive || !p.Hits(e.Position, m.hitRadius) {
			return true
		}
		pos := e.Position
		if e.TakeDamage(p.Damage) {
			m.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyData{Position: pos, Fast: e.Fast}})
		}
		return false
	})
}

// removeInactive уплотняет срез без лишних аллокаций.
func (m *ProjectileManager) removeInactive() {
	n := 0
	for _, p := range m.projectiles {
		if p.Active {
			m.projectiles[n] = p
			n++
		}
	}
	clear(m.projectiles[n:])
	m.projectiles = m.projectiles[:n]
}

// Projectiles — активные снаряды для отрисовки.
func (m *ProjectileManager) Projectiles() []component.Projectile {
	return m.projectiles
}

func (m *ProjectileManager) Count() int {
	return len(m.projectiles)
}

func (m *ProjectileManager) ClearAll() {
	m.projectiles = m.projectiles[:0]
}
