// Package inventory manages the player's consumable pack: a fixed number of
// stackable slots serialized onto the profile, plus the loot rolls that fill
// it after battles.
package inventory

import (
	"encoding/json"
	"errors"

	"github.com/ericogr/vex-battles/internal/game"
)

const (
	// SlotCount is the pack size; slots are kept compacted to the front.
	SlotCount = 8
	// StackCap is the maximum count a single slot stacks to.
	StackCap = 9
)

var (
	ErrPackFull    = errors.New("no free slot in pack")
	ErrItemMissing = errors.New("item not in pack")
)

// Slot is one pack entry.
type Slot struct {
	Item  game.ItemKind `json:"item"`
	Count int           `json:"count"`
}

// Inventory is the in-memory pack. The zero value is an empty pack.
type Inventory struct {
	Slots []Slot `json:"slots"`
}

// Load decodes a pack from its profile serialization. An empty string is an
// empty pack.
func Load(itemsJSON string) (*Inventory, error) {
	inv := &Inventory{}
	if itemsJSON == "" {
		return inv, nil
	}
	if err := json.Unmarshal([]byte(itemsJSON), inv); err != nil {
		return nil, err
	}
	inv.compact()
	return inv, nil
}

// Encode serializes the pack for storage on the profile.
func (inv *Inventory) Encode() (string, error) {
	inv.compact()
	b, err := json.Marshal(inv)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Add puts one item into the pack, stacking onto an existing slot first.
func (inv *Inventory) Add(item game.ItemKind) error {
	if item == game.ItemNone {
		return nil
	}
	for i := range inv.Slots {
		if inv.Slots[i].Item == item && inv.Slots[i].Count < StackCap {
			inv.Slots[i].Count++
			return nil
		}
	}
	if len(inv.Slots) >= SlotCount {
		return ErrPackFull
	}
	inv.Slots = append(inv.Slots, Slot{Item: item, Count: 1})
	return nil
}

// Remove takes one item out of the pack.
func (inv *Inventory) Remove(item game.ItemKind) error {
	for i := range inv.Slots {
		if inv.Slots[i].Item == item && inv.Slots[i].Count > 0 {
			inv.Slots[i].Count--
			inv.compact()
			return nil
		}
	}
	return ErrItemMissing
}

// Use removes one item and returns its battle effect.
func (inv *Inventory) Use(item game.ItemKind) (game.ItemEffect, error) {
	if err := inv.Remove(item); err != nil {
		return game.ItemEffect{}, err
	}
	return game.EffectOf(item), nil
}

// Count returns how many of an item the pack holds across slots.
func (inv *Inventory) Count(item game.ItemKind) int {
	n := 0
	for _, s := range inv.Slots {
		if s.Item == item {
			n += s.Count
		}
	}
	return n
}

// compact drops emptied slots and keeps the rest in order.
func (inv *Inventory) compact() {
	out := inv.Slots[:0]
	for _, s := range inv.Slots {
		if s.Count > 0 && s.Item != game.ItemNone {
			out = append(out, s)
		}
	}
	inv.Slots = out
}
