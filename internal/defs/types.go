// internal/defs/types.go
package defs

import "image/color"

// Rarity — редкость предмета. Порядок важен: Common < ... < Legendary.
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary
)

// Rarities перечисляет все редкости по возрастанию.
var Rarities = []Rarity{Common, Uncommon, Rare, Epic, Legendary}

func (r Rarity) String() string {
	switch r {
	case Common:
		return "Common"
	case Uncommon:
		return "Uncommon"
	case Rare:
		return "Rare"
	case Epic:
		return "Epic"
	case Legendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// Color — цвет предмета на земле и в инвентаре.
func (r Rarity) Color() color.RGBA {
	switch r {
	case Uncommon:
		return color.RGBA{51, 204, 51, 255}
	case Rare:
		return color.RGBA{77, 128, 255, 255}
	case Epic:
		return color.RGBA{179, 77, 255, 255}
	case Legendary:
		return color.RGBA{255, 77, 0, 255}
	default:
		return color.RGBA{255, 255, 255, 255}
	}
}

// Stat — характеристика турели, которую усиливает предмет.
type Stat int

const (
	StatNone Stat = iota
	StatDamage
	StatFireRate
	StatRange
)

// Stats — характеристики, доступные для бонусов.
var Stats = []Stat{StatDamage, StatFireRate, StatRange}

func (s Stat) String() string {
	switch s {
	case StatDamage:
		return "Damage"
	case StatFireRate:
		return "Fire Rate"
	case StatRange:
		return "Range"
	default:
		return "None"
	}
}

// Name — имя без пробелов для названий предметов ("Rare Damage/FireRate Mod").
func (s Stat) Name() string {
	switch s {
	case StatDamage:
		return "Damage"
	case StatFireRate:
		return "FireRate"
	case StatRange:
		return "Range"
	default:
		return "None"
	}
}

// Effect — особый эффект легендарного предмета. Пока только описание,
// на поведение снарядов не влияет.
type Effect int

const (
	EffectNone Effect = iota
	EffectChainLightning
	EffectSplitShot
	EffectMultishot
	EffectExplosive
	EffectPiercing
)

// Effects — эффекты, из которых выбирает легендарный предмет.
var Effects = []Effect{EffectChainLightning, EffectSplitShot, EffectMultishot, EffectExplosive, EffectPiercing}

func (e Effect) String() string {
	switch e {
	case EffectChainLightning:
		return "Chain Lightning"
	case EffectSplitShot:
		return "Split Shot"
	case EffectMultishot:
		return "Multishot"
	case EffectExplosive:
		return "Explosive"
	case EffectPiercing:
		return "Piercing"
	default:
		return "None"
	}
}

// Description — строка для подсказки предмета.
func (e Effect) Description() string {
	switch e {
	case EffectChainLightning:
		return "Projectiles chain to 2 enemies"
	case EffectSplitShot:
		return "Projectiles split on hit"
	case EffectMultishot:
		return "Fires 3 projectiles"
	case EffectExplosive:
		return "AoE damage on hit"
	case EffectPiercing:
		return "Projectiles pierce enemies"
	default:
		return ""
	}
}
