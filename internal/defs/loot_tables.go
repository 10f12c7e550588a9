// internal/defs/loot_tables.go
package defs

// RarityWeight — вес редкости при выпадении предмета.
type RarityWeight struct {
	Rarity Rarity
	Weight int
}

// RarityTable — шансы редкостей в процентах, сумма 100.
var RarityTable = []RarityWeight{
	{Rarity: Common, Weight: 50},
	{Rarity: Uncommon, Weight: 30},
	{Rarity: Rare, Weight: 15},
	{Rarity: Epic, Weight: 4},
	{Rarity: Legendary, Weight: 1},
}

// RarityWeights возвращает веса RarityTable в том же порядке,
// для PRNGService.ChooseWeighted.
func RarityWeights() []int {
	weights := make([]int, len(RarityTable))
	for i, w := range RarityTable {
		weights[i] = w.Weight
	}
	return weights
}

// BonusDefinition — процентные бонусы предмета данной редкости.
type BonusDefinition struct {
	Primary   int
	Secondary int
}

// BonusTable — бонусы по редкости. Вторичный бонус 0 означает,
// что вторичной характеристики нет.
var BonusTable = map[Rarity]BonusDefinition{
	Common:    {Primary: 10, Secondary: 0},
	Uncommon:  {Primary: 20, Secondary: 0},
	Rare:      {Primary: 30, Secondary: 10},
	Epic:      {Primary: 50, Secondary: 30},
	Legendary: {Primary: 100, Secondary: 50},
}

// HasSecondary сообщает, есть ли у редкости вторичная характеристика.
func (r Rarity) HasSecondary() bool {
	return BonusTable[r].Secondary > 0
}

// HasEffect сообщает, получает ли редкость особый эффект.
func (r Rarity) HasEffect() bool {
	return r == Legendary
}
