// internal/system/item_manager.go
package system

import (
	"github.com/Blckburn/CORE/internal/component"
	"github.com/Blckburn/CORE/internal/config"
	"github.com/Blckburn/CORE/internal/defs"
	"github.com/Blckburn/CORE/internal/event"
	"github.com/Blckburn/CORE/internal/logging"
	"github.com/Blckburn/CORE/internal/utils"
	"github.com/go-gl/mathgl/mgl32"
)

// ItemManager владеет предметами на земле и стопками в инвентаре игрока.
type ItemManager struct {
	dropped   []*component.Item
	inventory []*component.Item

	maxDropped      int
	database        *ItemDatabase
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	rarityWeights   []int
}

func NewItemManager(cfg config.ItemConfig, database *ItemDatabase, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *ItemManager {
	return &ItemManager{
		maxDropped:      cfg.MaxDropped,
		database:        database,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		rarityWeights:   defs.RarityWeights(),
	}
}

// GenerateRandomRarity бросает редкость по таблице шансов.
func (m *ItemManager) GenerateRandomRarity() defs.Rarity {
	i := m.rng.ChooseWeighted(m.rarityWeights)
	if i < 0 {
		return defs.Common
	}
	return defs.RarityTable[i].Rarity
}

// DropItem создаёт случайный предмет в pos. Сверх лимита выбрасывается самый старый.
func (m *ItemManager) DropItem(pos mgl32.Vec3) *component.Item {
	item := component.NewItem(pos, m.GenerateRandomRarity(), m.rng)
	m.dropped = append(m.dropped, &item)
	if m.maxDropped > 0 && len(m.dropped) > m.maxDropped {
		evicted := len(m.dropped) - m.maxDropped
		clear(m.dropped[:evicted])
		m.dropped = m.dropped[evicted:]
	}

	logging.Logger.Debug().Str("item", item.Name()).Str("rarity", item.Rarity.String()).Msg("Item dropped")
	m.eventDispatcher.Dispatch(event.Event{Type: event.ItemDropped, Data: event.ItemData{
		Position: pos,
		Name:     item.Name(),
		Rarity:   item.Rarity.String(),
	}})
	return &item
}

// GetItemAtPosition возвращает первый лежащий предмет в радиусе radius.
func (m *ItemManager) GetItemAtPosition(pos mgl32.Vec3, radius float32) (*component.Item, bool) {
	i := m.findDropped(pos, radius)
	if i < 0 {
		return nil, false
	}
	return m.dropped[i], true
}

func (m *ItemManager) findDropped(pos mgl32.Vec3, radius float32) int {
	for i, item := range m.dropped {
		if item.Active && item.Position.Sub(pos).Len() <= radius {
			return i
		}
	}
	return -1
}

// PickupItemAtPosition переносит первый предмет в радиусе radius с земли
// в инвентарь, складывая одинаковые в одну стопку. Возвращает стопку,
// в которую он попал.
func (m *ItemManager) PickupItemAtPosition(pos mgl32.Vec3, radius float32) (*component.Item, bool) {
	i := m.findDropped(pos, radius)
	if i < 0 {
		return nil, false
	}
	return m.pickup(i), true
}

// PickupItem подбирает именно этот лежащий предмет. false, если его уже
// нет на земле.
func (m *ItemManager) PickupItem(item *component.Item) (*component.Item, bool) {
	for i, d := range m.dropped {
		if d == item && d.Active {
			return m.pickup(i), true
		}
	}
	return nil, false
}

func (m *ItemManager) pickup(i int) *component.Item {
	item := m.dropped[i]
	m.dropped = append(m.dropped[:i], m.dropped[i+1:]...)
	item.Active = false

	stack := m.addToInventory(item)
	logging.Logger.Info().Str("item", item.Name()).Int("stacks", len(m.inventory)).Msg("Item picked up")
	m.eventDispatcher.Dispatch(event.Event{Type: event.ItemPickedUp, Data: event.ItemData{
		Position: item.Position,
		Name:     item.Name(),
		Rarity:   item.Rarity.String(),
	}})
	return stack
}

func (m *ItemManager) addToInventory(item *component.Item) *component.Item {
	quantity := max(item.Quantity, 1)
	if m.database != nil {
		m.database.AddToInventory(KeyOf(item), quantity)
	}
	for _, stack := range m.inventory {
		if stack.IsSameAs(item) {
			stack.Quantity += quantity
			return stack
		}
	}
	item.Active = false
	item.Quantity = quantity
	m.inventory = append(m.inventory, item)
	return item
}

// TakeFromInventory достаёт один предмет из стопки index (например, чтобы
// поставить в слот турели). Пустая стопка удаляется.
func (m *ItemManager) TakeFromInventory(index int) (*component.Item, bool) {
	if index < 0 || index >= len(m.inventory) {
		return nil, false
	}
	stack := m.inventory[index]
	single := stack.Single()
	stack.Quantity--
	if stack.Quantity <= 0 {
		m.inventory = append(m.inventory[:index], m.inventory[index+1:]...)
	}
	if m.database != nil {
		m.database.RemoveFromInventory(KeyOf(single), 1)
	}
	return single, true
}

// ReturnToInventory возвращает снятый с турели предмет обратно в инвентарь.
func (m *ItemManager) ReturnToInventory(item *component.Item) {
	if item == nil {
		return
	}
	m.addToInventory(item)
}

// RemoveFromInventory удаляет всю стопку index.
func (m *ItemManager) RemoveFromInventory(index int) bool {
	if index < 0 || index >= len(m.inventory) {
		return false
	}
	stack := m.inventory[index]
	m.inventory = append(m.inventory[:index], m.inventory[index+1:]...)
	if m.database != nil {
		m.database.RemoveFromInventory(KeyOf(stack), stack.Quantity)
	}
	return true
}

func (m *ItemManager) Inventory() []*component.Item {
	return m.inventory
}

func (m *ItemManager) DroppedItems() []*component.Item {
	return m.dropped
}

func (m *ItemManager) Database() *ItemDatabase {
	return m.database
}

// ClearAll очищает землю и инвентарь и обнуляет учёт в каталоге.
func (m *ItemManager) ClearAll() {
	if m.database != nil {
		for _, stack := range m.inventory {
			m.database.UpdateQuantity(KeyOf(stack), 0)
		}
	}
	m.dropped = nil
	m.inventory = nil
}
