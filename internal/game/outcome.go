package game

// OutcomeKind is the terminal result of a battle.
type OutcomeKind string

const (
	OutcomeVictory OutcomeKind = "victory"
	OutcomeDefeat  OutcomeKind = "defeat"
	OutcomeFled    OutcomeKind = "fled"
)

// BattleOutcome is handed to the caller once a battle has exited. DropKind
// names the enemy whose drop table should be rolled; the actual item value
// is resolved by the loot roller outside the battle session.
type BattleOutcome struct {
	Kind     OutcomeKind `json:"kind"`
	XP       int         `json:"xp"`
	Credits  int         `json:"credits"`
	DropKind string      `json:"drop_kind"`
	Turns    int         `json:"turns"`
}
