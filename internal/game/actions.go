package game

// ActionKind is a string alias representing a combat action. Using a
// dedicated type instead of plain string makes code safer and self-documenting.
type ActionKind string

const (
	ActionNone    ActionKind = ""
	ActionAttack  ActionKind = "attack"
	ActionGuard   ActionKind = "guard"
	ActionSpecial ActionKind = "special"
	ActionItem    ActionKind = "item"
	ActionFlee    ActionKind = "flee"

	// Boss-exclusive kinds.
	ActionHeavy   ActionKind = "heavy"
	ActionMulti   ActionKind = "multi"
	ActionDrain   ActionKind = "drain"
	ActionInflict ActionKind = "inflict"
	ActionCharge  ActionKind = "charge"
	ActionRepair  ActionKind = "repair"
)

// PlayerAllowed reports whether a player may submit this kind.
func (a ActionKind) PlayerAllowed() bool {
	switch a {
	case ActionAttack, ActionGuard, ActionSpecial, ActionItem, ActionFlee:
		return true
	}
	return false
}

// BossOnly reports whether the kind belongs to the boss-exclusive set.
func (a ActionKind) BossOnly() bool {
	switch a {
	case ActionHeavy, ActionMulti, ActionDrain, ActionInflict, ActionCharge, ActionRepair:
		return true
	}
	return false
}

// EnemyPoolAllowed reports whether a configured enemy/boss action pool may
// contain this kind.
func (a ActionKind) EnemyPoolAllowed() bool {
	switch a {
	case ActionAttack, ActionGuard, ActionSpecial:
		return true
	}
	return a.BossOnly()
}

// Intent is the transient description of one chosen action. Item carries the
// resolved consumable effect when Kind is ActionItem; the inventory slot
// bookkeeping happens outside the battle session.
type Intent struct {
	Kind ActionKind  `json:"kind"`
	Item *ItemEffect `json:"item,omitempty"`
}
