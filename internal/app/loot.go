// internal/app/loot.go
package app

import (
	"github.com/Blckburn/CORE/internal/event"
	"github.com/Blckburn/CORE/internal/logging"
	"github.com/Blckburn/CORE/internal/utils"
)

// DropPolicy решает, выпадает ли предмет при гибели врага.
type DropPolicy interface {
	ShouldDrop(enemy event.EnemyData) bool
}

// DropPolicyFunc позволяет использовать обычную функцию как DropPolicy.
type DropPolicyFunc func(enemy event.EnemyData) bool

func (f DropPolicyFunc) ShouldDrop(enemy event.EnemyData) bool {
	return f(enemy)
}

// ChanceDropPolicy — выпадение с фиксированной вероятностью.
type ChanceDropPolicy struct {
	Chance float64
	rng    *utils.PRNGService
}

func NewChanceDropPolicy(chance float64, rng *utils.PRNGService) *ChanceDropPolicy {
	return &ChanceDropPolicy{Chance: chance, rng: rng}
}

func (p *ChanceDropPolicy) ShouldDrop(event.EnemyData) bool {
	return p.rng.Chance(p.Chance)
}

// lootListener бросает предмет на месте гибели врага, если политика разрешает.
type lootListener struct {
	game *Game
}

func (l *lootListener) OnEvent(e event.Event) {
	data, ok := e.Data.(event.EnemyData)
	if !ok || l.game.dropPolicy == nil {
		return
	}
	if !l.game.dropPolicy.ShouldDrop(data) {
		return
	}
	item := l.game.ItemManager.DropItem(data.Position)
	logging.TraceSample.Debug().Str("item", item.Name()).Msg("Loot dropped")
}
