// internal/component/projectile.go
package component

import (
	"image/color"

	"github.com/Blckburn/CORE/internal/entity"
	"github.com/Blckburn/CORE/internal/utils"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ProjectileLifetime — через столько секунд снаряд исчезает без попадания
	ProjectileLifetime = 3.0
	// ProjectileReachRadius — снаряд «долетел», когда до точки цели меньше этого
	ProjectileReachRadius = 1.2
)

// Projectile представляет летящий полусамонаводящийся снаряд.
type Projectile struct {
	Position       mgl32.Vec3
	TargetPosition mgl32.Vec3
	Direction      mgl32.Vec3
	Speed          float32
	Damage         float32
	Color          color.RGBA
	Target         entity.Handle // Не владеющая ссылка на врага

	Lifetime        float32
	CurrentLifetime float32
	ReachRadius     float32
	Active          bool
	Reached         bool
}

// NewProjectile создаёт снаряд. При вырожденном направлении (старт совпадает
// с целью) снаряд сразу неактивен.
func NewProjectile(from, to mgl32.Vec3, target entity.Handle, speed, damage float32) Projectile {
	p := Projectile{
		Position:       from,
		TargetPosition: to,
		Speed:          speed,
		Damage:         damage,
		Color:          color.RGBA{0, 255, 255, 255},
		Target:         target,
		Lifetime:       ProjectileLifetime,
		ReachRadius:    ProjectileReachRadius,
		Active:         true,
	}
	dir, _ := utils.Direction(from, to)
	if dir.Len() == 0 {
		p.Active = false
		return p
	}
	p.Direction = dir
	return p
}

// Retarget обновляет точку цели и направление. Если снаряд уже в точке,
// направление не меняется.
func (p *Projectile) Retarget(to mgl32.Vec3) {
	p.TargetPosition = to
	if dir, _ := utils.Direction(p.Position, to); dir.Len() > 0 {
		p.Direction = dir
	}
}

// Advance увеличивает время жизни и двигает снаряд. Возвращает false,
// если снаряд истёк (current >= lifetime) и был деактивирован без движения.
func (p *Projectile) Advance(deltaTime float32) bool {
	if !p.Active {
		return false
	}
	p.CurrentLifetime += deltaTime
	if p.CurrentLifetime >= p.Lifetime {
		p.Active = false
		return false
	}

	p.Position = p.Position.Add(p.Direction.Mul(p.Speed * deltaTime))
	if p.TargetPosition.Sub(p.Position).Len() < p.ReachRadius {
		p.Reached = true
	}
	return true
}

// Hits — находится ли точка в радиусе попадания.
func (p *Projectile) Hits(point mgl32.Vec3, radius float32) bool {
	return point.Sub(p.Position).Len() <= radius
}
