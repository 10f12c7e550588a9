package component

import (
	"testing"

	"github.com/Blckburn/CORE/internal/defs"
	"github.com/Blckburn/CORE/internal/entity"
	"github.com/Blckburn/CORE/internal/utils"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemy_MovesTowardCore(t *testing.T) {
	e := NewEnemy(mgl32.Vec3{10, 0, 0}, defs.NormalEnemy)

	reached := e.Update(1)
	assert.False(t, reached)
	assert.InDelta(t, 5, e.Position.X(), 1e-5)
	assert.True(t, e.Alive)
}

func TestEnemy_ReachesCore(t *testing.T) {
	e := NewEnemy(mgl32.Vec3{3, 0, 0}, defs.NormalEnemy)

	assert.True(t, e.Update(0.5)) // 3 - 2.5 = 0.5 < 1
	assert.False(t, e.Alive)
	assert.True(t, e.ReachedCore)
	// мёртвый враг больше не сообщает о прибытии
	assert.False(t, e.Update(0.5))
}

func TestEnemy_TakeDamage(t *testing.T) {
	e := NewEnemy(mgl32.Vec3{20, 0, 0}, defs.NormalEnemy)

	assert.False(t, e.TakeDamage(60))
	assert.InDelta(t, 0.4, e.HealthFraction(), 1e-6)
	assert.True(t, e.TakeDamage(40))
	assert.False(t, e.Alive)
	assert.False(t, e.TakeDamage(10), "already dead")
}

func TestEnemy_DamageFlash(t *testing.T) {
	e := NewEnemy(mgl32.Vec3{20, 0, 0}, defs.NormalEnemy)
	assert.False(t, e.Flash.Active())

	e.TakeDamage(10)
	assert.True(t, e.Flash.Active())
	e.Update(DamageFlashDuration / 2)
	assert.True(t, e.Flash.Active())
	e.Update(DamageFlashDuration)
	assert.False(t, e.Flash.Active())
	assert.Zero(t, e.Flash.Timer)
}

func TestTurret_Defaults(t *testing.T) {
	tr := NewTurret(mgl32.Vec3{10, 0, 0}, defs.DefaultTurret, 1)

	assert.Equal(t, TurretStats{Range: 15, Damage: 25, FireRate: 2}, tr.Stats)
	assert.InDelta(t, 0.5, tr.ReloadTime(), 1e-6)
	assert.Equal(t, 1, tr.Cost)
	assert.True(t, tr.Active)
}

func TestTurret_EquipAndUnequipRestoresBase(t *testing.T) {
	tr := NewTurret(mgl32.Vec3{10, 0, 0}, defs.DefaultTurret, 1)
	before := tr.Stats

	dmg := &Item{Rarity: defs.Common, PrimaryStat: defs.StatDamage, PrimaryBonus: 10, Quantity: 1}
	prev, ok := tr.EquipItem(dmg, 0)
	require.True(t, ok)
	assert.Nil(t, prev)
	assert.InDelta(t, 25+25*0.10, tr.Stats.Damage, 1e-5)

	epic := &Item{Rarity: defs.Epic, PrimaryStat: defs.StatDamage, PrimaryBonus: 50,
		SecondaryStat: defs.StatFireRate, SecondaryBonus: 30, Quantity: 1}
	_, ok = tr.EquipItem(epic, 1)
	require.True(t, ok)
	// бонусы складываются: 25 * (1 + 0.6)
	assert.InDelta(t, 40, tr.Stats.Damage, 1e-5)
	assert.InDelta(t, 2.6, tr.Stats.FireRate, 1e-5)
	assert.InDelta(t, 1/2.6, tr.ReloadTime(), 1e-5)

	assert.Same(t, dmg, tr.UnequipItem(0))
	assert.Same(t, epic, tr.UnequipItem(1))
	assert.InDelta(t, before.Damage, tr.Stats.Damage, 1e-6)
	assert.InDelta(t, before.FireRate, tr.Stats.FireRate, 1e-6)
	assert.InDelta(t, before.Range, tr.Stats.Range, 1e-6)
}

func TestTurret_EquipReplacesSlot(t *testing.T) {
	tr := NewTurret(mgl32.Vec3{}, defs.DefaultTurret, 1)
	a := &Item{PrimaryStat: defs.StatRange, PrimaryBonus: 10}
	b := &Item{PrimaryStat: defs.StatRange, PrimaryBonus: 20}

	tr.EquipItem(a, 2)
	prev, ok := tr.EquipItem(b, 2)
	require.True(t, ok)
	assert.Same(t, a, prev)
	assert.InDelta(t, 18, tr.Stats.Range, 1e-5)

	back, ok := tr.EquipItem(a, 3)
	assert.False(t, ok)
	assert.Same(t, a, back)
}

func TestTurret_FireTimer(t *testing.T) {
	tr := NewTurret(mgl32.Vec3{}, defs.DefaultTurret, 1)
	assert.False(t, tr.CanFire())

	tr.UpdateFireTimer(0.25)
	assert.False(t, tr.CanFire())
	tr.UpdateFireTimer(0.25)
	assert.True(t, tr.CanFire())

	tr.ResetFireTimer()
	assert.False(t, tr.CanFire())
}

func TestTurret_UpdateRotation(t *testing.T) {
	tr := NewTurret(mgl32.Vec3{}, defs.DefaultTurret, 1)

	// цель справа (+X) — курс 90°, за 0.25 с поворот на 45°
	tr.UpdateRotation(0.25, mgl32.Vec3{5, 3, 0}, true)
	assert.InDelta(t, 45, tr.Rotation, 1e-4)
	tr.UpdateRotation(1, mgl32.Vec3{5, 3, 0}, true)
	assert.InDelta(t, 90, tr.Rotation, 1e-4)

	// без цели возвращается к 0°
	tr.UpdateRotation(0.25, mgl32.Vec3{}, false)
	assert.InDelta(t, 45, tr.Rotation, 1e-4)
}

func TestProjectile_DegenerateDirectionInactive(t *testing.T) {
	p := NewProjectile(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, entity.Handle{}, 30, 25)
	assert.False(t, p.Active)
}

func TestProjectile_ExpiresExactlyAtLifetime(t *testing.T) {
	p := NewProjectile(mgl32.Vec3{}, mgl32.Vec3{1000, 0, 0}, entity.Handle{}, 30, 25)

	for i := 0; i < 5; i++ {
		require.True(t, p.Advance(0.5), "step %d", i)
	}
	assert.InDelta(t, 2.5, p.CurrentLifetime, 1e-6)
	assert.True(t, p.Active)

	assert.False(t, p.Advance(0.5))
	assert.False(t, p.Active)
	assert.False(t, p.Reached)
}

func TestProjectile_ReachesTarget(t *testing.T) {
	p := NewProjectile(mgl32.Vec3{}, mgl32.Vec3{10, 0, 0}, entity.Handle{}, 30, 25)

	require.True(t, p.Advance(0.1)) // x = 3
	assert.False(t, p.Reached)
	require.True(t, p.Advance(0.2)) // x = 9, до цели 1 < 1.2
	assert.True(t, p.Reached)
}

func TestProjectile_Retarget(t *testing.T) {
	p := NewProjectile(mgl32.Vec3{}, mgl32.Vec3{10, 0, 0}, entity.Handle{}, 30, 25)
	p.Retarget(mgl32.Vec3{0, 0, 10})
	assert.InDelta(t, 1, p.Direction.Z(), 1e-6)
	assert.Equal(t, mgl32.Vec3{0, 0, 10}, p.TargetPosition)
}

func TestNewItem_RollsByRarity(t *testing.T) {
	rng := utils.NewPRNGService(3)
	for i := 0; i < 200; i++ {
		common := NewItem(mgl32.Vec3{}, defs.Common, rng)
		assert.Equal(t, 10, common.PrimaryBonus)
		assert.Equal(t, defs.StatNone, common.SecondaryStat)
		assert.Equal(t, defs.EffectNone, common.Effect)

		epic := NewItem(mgl32.Vec3{}, defs.Epic, rng)
		assert.Equal(t, 50, epic.PrimaryBonus)
		assert.Equal(t, 30, epic.SecondaryBonus)
		assert.NotEqual(t, epic.PrimaryStat, epic.SecondaryStat)
		assert.NotEqual(t, defs.StatNone, epic.SecondaryStat)
		assert.Equal(t, defs.EffectNone, epic.Effect)

		legendary := NewItem(mgl32.Vec3{}, defs.Legendary, rng)
		assert.NotEqual(t, defs.EffectNone, legendary.Effect)
		assert.NotEqual(t, legendary.PrimaryStat, legendary.SecondaryStat)
	}
}

func TestItem_IsSameAs(t *testing.T) {
	a := Item{Rarity: defs.Rare, PrimaryStat: defs.StatDamage, PrimaryBonus: 30, SecondaryStat: defs.StatRange, SecondaryBonus: 10}
	b := a
	b.Position = mgl32.Vec3{5, 5, 5}
	b.Quantity = 7
	assert.True(t, a.IsSameAs(&b))

	c := a
	c.SecondaryStat = defs.StatFireRate
	assert.False(t, a.IsSameAs(&c))
	assert.False(t, a.IsSameAs(nil))
}

func TestItem_NameAndColor(t *testing.T) {
	i := Item{Rarity: defs.Uncommon, PrimaryStat: defs.StatFireRate, PrimaryBonus: 20}
	assert.Equal(t, "Uncommon FireRate Mod", i.Name())
	assert.Equal(t, "+20% Fire Rate", i.Description())
	assert.Equal(t, defs.Uncommon.Color(), i.Color())
	assert.Equal(t, 20, i.Bonus(defs.StatFireRate))
	assert.Equal(t, 0, i.Bonus(defs.StatDamage))
}
