package api

import (
	"github.com/ericogr/vex-battles/internal/service"
)

// BattleHandler groups all battle and profile HTTP handlers.
type BattleHandler struct {
	svc *service.Manager
}

// NewBattleHandler creates a BattleHandler backed by the given manager.
func NewBattleHandler(svc *service.Manager) *BattleHandler {
	return &BattleHandler{svc: svc}
}
