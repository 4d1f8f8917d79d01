package game

// ItemKind identifies a consumable carried in a player's pack.
type ItemKind string

const (
	ItemNone         ItemKind = ""
	ItemSmallPotion  ItemKind = "small_potion"
	ItemLargePotion  ItemKind = "large_potion"
	ItemSkillCharge  ItemKind = "skill_charge"
	ItemAttackTonic  ItemKind = "attack_tonic"
	ItemDefenseTonic ItemKind = "defense_tonic"
	ItemFullElixir   ItemKind = "full_elixir"
	ItemAntidote     ItemKind = "antidote"
)

// ItemEffect is the battle-side description of what using an item does.
// Stat tonics last for a fixed number of rounds; FullRestore refills HP and
// the skill pool; CureAll clears every status effect at once.
type ItemEffect struct {
	HealHitPoints int  `json:"heal_hp"`
	RestoreSkill  int  `json:"restore_sp"`
	AttackBonus   int  `json:"attack_bonus"`
	DefenseBonus  int  `json:"defense_bonus"`
	BonusRounds   int  `json:"bonus_rounds"`
	FullRestore   bool `json:"full_restore"`
	CureAll       bool `json:"cure_all"`
}

// EffectOf returns the battle effect for a consumable kind. Unknown kinds
// return a zero effect.
func EffectOf(k ItemKind) ItemEffect {
	switch k {
	case ItemSmallPotion:
		return ItemEffect{HealHitPoints: 30}
	case ItemLargePotion:
		return ItemEffect{HealHitPoints: 80}
	case ItemSkillCharge:
		return ItemEffect{RestoreSkill: 1}
	case ItemAttackTonic:
		return ItemEffect{AttackBonus: 5, BonusRounds: 4}
	case ItemDefenseTonic:
		return ItemEffect{DefenseBonus: 5, BonusRounds: 4}
	case ItemFullElixir:
		return ItemEffect{FullRestore: true}
	case ItemAntidote:
		return ItemEffect{CureAll: true}
	}
	return ItemEffect{}
}

// KnownItemKinds lists every consumable the catalog may reference.
var KnownItemKinds = []ItemKind{
	ItemSmallPotion, ItemLargePotion, ItemSkillCharge,
	ItemAttackTonic, ItemDefenseTonic, ItemFullElixir, ItemAntidote,
}

// IsKnownItemKind reports whether k names a real consumable.
func IsKnownItemKind(k ItemKind) bool {
	for _, kk := range KnownItemKinds {
		if kk == k {
			return true
		}
	}
	return false
}
