// internal/component/item.go
package component

import (
	"image/color"

	"github.com/Blckburn/CORE/internal/defs"
	"github.com/go-gl/mathgl/mgl32"
)

// Item — модификатор турели. Лежит на земле (Position, Active) или
// в инвентаре стопкой (Quantity).
type Item struct {
	Rarity         defs.Rarity
	PrimaryStat    defs.Stat
	PrimaryBonus   int // проценты
	SecondaryStat  defs.Stat
	SecondaryBonus int
	Effect         defs.Effect

	Position mgl32.Vec3
	Active   bool
	Quantity int
}

// RandomSource — всё, что нужно для броска характеристик.
type RandomSource interface {
	Intn(n int) int
}

// NewItem создаёт предмет заданной редкости со случайными характеристиками.
// Вторичная характеристика всегда отличается от основной.
func NewItem(position mgl32.Vec3, rarity defs.Rarity, rng RandomSource) Item {
	bonus := defs.BonusTable[rarity]
	item := Item{
		Rarity:       rarity,
		PrimaryStat:  defs.Stats[rng.Intn(len(defs.Stats))],
		PrimaryBonus: bonus.Primary,
		Position:     position,
		Active:       true,
		Quantity:     1,
	}
	if rarity.HasSecondary() {
		others := make([]defs.Stat, 0, len(defs.Stats)-1)
		for _, s := range defs.Stats {
			if s != item.PrimaryStat {
				others = append(others, s)
			}
		}
		item.SecondaryStat = others[rng.Intn(len(others))]
		item.SecondaryBonus = bonus.Secondary
	}
	if rarity.HasEffect() {
		item.Effect = defs.Effects[rng.Intn(len(defs.Effects))]
	}
	return item
}

func (i *Item) HasSecondary() bool {
	return i.SecondaryStat != defs.StatNone && i.SecondaryBonus > 0
}

// IsSameAs — предметы взаимозаменяемы и складываются в одну стопку.
func (i *Item) IsSameAs(other *Item) bool {
	if other == nil {
		return false
	}
	return i.Rarity == other.Rarity &&
		i.PrimaryStat == other.PrimaryStat &&
		i.PrimaryBonus == other.PrimaryBonus &&
		i.SecondaryStat == other.SecondaryStat &&
		i.SecondaryBonus == other.SecondaryBonus &&
		i.Effect == other.Effect
}

// Single возвращает копию одного предмета из стопки.
func (i *Item) Single() *Item {
	c := *i
	c.Quantity = 1
	c.Active = false
	return &c
}

func (i *Item) Name() string {
	return defs.ItemName(i.Rarity, i.PrimaryStat, i.SecondaryStat, i.Effect)
}

func (i *Item) Description() string {
	return defs.ItemDescription(i.PrimaryStat, i.PrimaryBonus, i.SecondaryStat, i.SecondaryBonus, i.Effect)
}

func (i *Item) Color() color.RGBA {
	return i.Rarity.Color()
}

// Bonus — суммарный процент, который предмет даёт характеристике stat.
func (i *Item) Bonus(stat defs.Stat) int {
	total := 0
	if i.PrimaryStat == stat {
		total += i.PrimaryBonus
	}
	if i.HasSecondary() && i.SecondaryStat == stat {
		total += i.SecondaryBonus
	}
	return total
}
