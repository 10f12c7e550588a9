// internal/defs/items.go
package defs

import (
	"fmt"
	"strings"
)

// ItemName строит отображаемое имя предмета:
//
//	"Common Damage Mod", "Rare Damage/Range Mod", "Legendary Range/FireRate Piercing"
func ItemName(rarity Rarity, primary, secondary Stat, effect Effect) string {
	var b strings.Builder
	b.WriteString(rarity.String())
	b.WriteString(" ")
	b.WriteString(primary.Name())
	if secondary != StatNone {
		b.WriteString("/")
		b.WriteString(secondary.Name())
	}
	if effect != EffectNone {
		b.WriteString(" ")
		b.WriteString(effect.String())
	} else {
		b.WriteString(" Mod")
	}
	return b.String()
}

// ItemDescription — многострочное описание бонусов для подсказки.
func ItemDescription(primary Stat, primaryBonus int, secondary Stat, secondaryBonus int, effect Effect) string {
	lines := []string{fmt.Sprintf("+%d%% %s", primaryBonus, primary)}
	if secondary != StatNone && secondaryBonus > 0 {
		lines = append(lines, fmt.Sprintf("+%d%% %s", secondaryBonus, secondary))
	}
	if effect != EffectNone {
		lines = append(lines, "", "["+strings.ToUpper(effect.String())+"]", effect.Description())
	}
	return strings.Join(lines, "\n")
}
