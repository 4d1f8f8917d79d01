package engine

import "errors"

var (
	// ErrNotPlayerTurn rejects a submission made outside the player's
	// choosing window. The session state is left untouched.
	ErrNotPlayerTurn = errors.New("no player action expected now")
	// ErrActionNotAllowed rejects a kind the player may not use.
	ErrActionNotAllowed = errors.New("action not allowed for this side")
	// ErrBattleStillActive guards the outcome accessor.
	ErrBattleStillActive = errors.New("battle is still active")
	// ErrMalformedDefinition marks an enemy or boss definition that cannot
	// start a battle (missing stats or phase pools).
	ErrMalformedDefinition = errors.New("malformed enemy definition")
)
