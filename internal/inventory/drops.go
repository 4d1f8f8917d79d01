package inventory

import "github.com/ericogr/vex-battles/internal/game"

// Roller is the randomness source for drop rolls, satisfied by the battle
// engine's RNG implementations.
type Roller interface {
	NextBounded(n int) int
}

// RollDrops evaluates each weighted row of a drop table independently: a
// roll below the row's weight (out of 100) yields that item. Multiple rows
// can match in a single kill.
func RollDrops(table []game.DropEntry, rng Roller) []game.ItemKind {
	var out []game.ItemKind
	for _, e := range table {
		if e.Weight <= 0 || !game.IsKnownItemKind(e.Item) {
			continue
		}
		if rng.NextBounded(100) < e.Weight {
			out = append(out, e.Item)
		}
	}
	return out
}
