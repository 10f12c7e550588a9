// internal/system/item_database.go
package system

import (
	"cmp"
	"slices"

	"github.com/Blckburn/CORE/internal/component"
	"github.com/Blckburn/CORE/internal/defs"
	"github.com/Blckburn/CORE/internal/logging"
)

// TemplateKey однозначно определяет вид предмета. У предметов без вторичной
// характеристики Secondary равен defs.StatNone.
type TemplateKey struct {
	Rarity    defs.Rarity
	Primary   defs.Stat
	Secondary defs.Stat
	Effect    defs.Effect
}

// KeyOf возвращает ключ шаблона для конкретного предмета.
func KeyOf(item *component.Item) TemplateKey {
	key := TemplateKey{Rarity: item.Rarity, Primary: item.PrimaryStat, Secondary: defs.StatNone, Effect: item.Effect}
	if item.HasSecondary() {
		key.Secondary = item.SecondaryStat
	}
	return key
}

func compareKeys(a, b TemplateKey) int {
	return cmp.Or(
		cmp.Compare(a.Rarity, b.Rarity),
		cmp.Compare(a.Primary, b.Primary),
		cmp.Compare(a.Secondary, b.Secondary),
		cmp.Compare(a.Effect, b.Effect),
	)
}

// ItemTemplate — запись каталога: описание вида предмета и его учёт у игрока.
type ItemTemplate struct {
	Key            TemplateKey
	PrimaryBonus   int
	SecondaryBonus int
	Name           string
	Description    string
	Discovered     bool
	Quantity       int
}

// GridColumn — столбец сетки инвентаря.
type GridColumn int

const (
	ColumnDamage GridColumn = iota
	ColumnFireRate
	ColumnRange
	ColumnSpecial
	GridColumns
)

// GridCell — ячейка сетки инвентаря (редкость × столбец).
type GridCell struct {
	Rarity     defs.Rarity
	Column     GridColumn
	Discovered bool
	Quantity   int
}

// ItemDatabase — каталог всех возможных предметов с отметками «найден» и количеством.
type ItemDatabase struct {
	templates map[TemplateKey]*ItemTemplate
}

func NewItemDatabase() *ItemDatabase {
	db := &ItemDatabase{templates: make(map[TemplateKey]*ItemTemplate)}
	db.generateTemplates()
	logging.Logger.Debug().Int("templates", db.TotalCount()).Msg("Item database initialized")
	return db
}

// generateTemplates заполняет каталог: Common/Uncommon только с основной
// характеристикой, Rare/Epic со всеми парами, Legendary с парами × эффекты.
func (db *ItemDatabase) generateTemplates() {
	for _, rarity := range defs.Rarities {
		for _, primary := range defs.Stats {
			if !rarity.HasSecondary() {
				db.add(TemplateKey{Rarity: rarity, Primary: primary, Secondary: defs.StatNone})
				continue
			}
			for _, secondary := range defs.Stats {
				if secondary == primary {
					continue
				}
				if !rarity.HasEffect() {
					db.add(TemplateKey{Rarity: rarity, Primary: primary, Secondary: secondary})
					continue
				}
				for _, effect := range defs.Effects {
					db.add(TemplateKey{Rarity: rarity, Primary: primary, Secondary: secondary, Effect: effect})
				}
			}
		}
	}
}

func (db *ItemDatabase) add(key TemplateKey) {
	bonus := defs.BonusTable[key.Rarity]
	t := &ItemTemplate{
		Key:          key,
		PrimaryBonus: bonus.Primary,
		Name:         defs.ItemName(key.Rarity, key.Primary, key.Secondary, key.Effect),
	}
	if key.Secondary != defs.StatNone {
		t.SecondaryBonus = bonus.Secondary
	}
	t.Description = defs.ItemDescription(key.Primary, t.PrimaryBonus, key.Secondary, t.SecondaryBonus, key.Effect)
	db.templates[key] = t
}

// MarkDiscovered отмечает вид предмета найденным. Неизвестные ключи игнорируются.
func (db *ItemDatabase) MarkDiscovered(key TemplateKey) {
	if t, ok := db.templates[key]; ok {
		t.Discovered = true
	}
}

// AddToInventory увеличивает количество и отмечает вид найденным.
func (db *ItemDatabase) AddToInventory(key TemplateKey, quantity int) {
	t, ok := db.templates[key]
	if !ok {
		return
	}
	t.Discovered = true
	t.Quantity += quantity
	logging.TraceSample.Debug().Str("item", t.Name).Int("total", t.Quantity).Msg("Item added to database")
}

// RemoveFromInventory уменьшает количество, не опускаясь ниже нуля.
// На нуле вид снова считается ненайденным.
func (db *ItemDatabase) RemoveFromInventory(key TemplateKey, quantity int) {
	t, ok := db.templates[key]
	if !ok {
		return
	}
	t.Quantity = max(0, t.Quantity-quantity)
	if t.Quantity == 0 {
		t.Discovered = false
	}
}

// UpdateQuantity задаёт количество напрямую; найденным считается всё, чего больше нуля.
func (db *ItemDatabase) UpdateQuantity(key TemplateKey, quantity int) {
	t, ok := db.templates[key]
	if !ok {
		return
	}
	t.Quantity = quantity
	t.Discovered = quantity > 0
}

func (db *ItemDatabase) IsDiscovered(key TemplateKey) bool {
	t, ok := db.templates[key]
	return ok && t.Discovered
}

func (db *ItemDatabase) GetQuantity(key TemplateKey) int {
	if t, ok := db.templates[key]; ok {
		return t.Quantity
	}
	return 0
}

// GetTemplate возвращает копию шаблона.
func (db *ItemDatabase) GetTemplate(key TemplateKey) (ItemTemplate, bool) {
	t, ok := db.templates[key]
	if !ok {
		return ItemTemplate{}, false
	}
	return *t, true
}

func (db *ItemDatabase) GetItemName(key TemplateKey) string {
	if t, ok := db.templates[key]; ok {
		return t.Name
	}
	return "Unknown Item"
}

func (db *ItemDatabase) DiscoveredCount() int {
	count := 0
	for _, t := range db.templates {
		if t.Discovered {
			count++
		}
	}
	return count
}

func (db *ItemDatabase) TotalCount() int {
	return len(db.templates)
}

// ResetDiscoveries снимает отметки «найден», количество не трогает.
func (db *ItemDatabase) ResetDiscoveries() {
	for _, t := range db.templates {
		t.Discovered = false
	}
}

// Entries возвращает копии всех шаблонов в порядке редкость → характеристики → эффект.
func (db *ItemDatabase) Entries() []ItemTemplate {
	entries := make([]ItemTemplate, 0, len(db.templates))
	for _, t := range db.templates {
		entries = append(entries, *t)
	}
	slices.SortFunc(entries, func(a, b ItemTemplate) int { return compareKeys(a.Key, b.Key) })
	return entries
}

// GridColumnFor — в какой столбец сетки попадает вид предмета.
func GridColumnFor(primary, secondary defs.Stat) GridColumn {
	switch {
	case primary == defs.StatDamage || secondary == defs.StatDamage:
		return ColumnDamage
	case primary == defs.StatFireRate || secondary == defs.StatFireRate:
		return ColumnFireRate
	case primary == defs.StatRange || secondary == defs.StatRange:
		return ColumnRange
	default:
		return ColumnSpecial
	}
}

// InventoryGrid сводит найденные предметы в сетку 5 редкостей × 4 столбца.
func (db *ItemDatabase) InventoryGrid() [][]GridCell {
	grid := make([][]GridCell, len(defs.Rarities))
	for r, rarity := range defs.Rarities {
		grid[r] = make([]GridCell, GridColumns)
		for c := range grid[r] {
			grid[r][c] = GridCell{Rarity: rarity, Column: GridColumn(c)}
		}
	}
	for key, t := range db.templates {
		if !t.Discovered || t.Quantity <= 0 {
			continue
		}
		cell := &grid[key.Rarity][GridColumnFor(key.Primary, key.Secondary)]
		cell.Discovered = true
		cell.Quantity += t.Quantity
	}
	return grid
}
