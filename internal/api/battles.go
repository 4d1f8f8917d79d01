package api

import (
	"net/http"

	"github.com/ericogr/vex-battles/internal/constants"
	"github.com/ericogr/vex-battles/internal/engine"
	"github.com/ericogr/vex-battles/internal/game"
	"github.com/ericogr/vex-battles/internal/inventory"
	"github.com/ericogr/vex-battles/internal/service"
	"github.com/gin-gonic/gin"
)

type StartBattleRequest struct {
	Enemy string `json:"enemy"`
}

type SubmitActionRequest struct {
	Action string `json:"action"`
	Item   string `json:"item"`
}

type AdvanceRequest struct {
	Ticks int `json:"ticks"`
}

// StartBattle opens a battle against the named enemy or boss for the
// session user.
func (h *BattleHandler) StartBattle(c *gin.Context) {
	email := sessionEmail(c)
	var req StartBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Enemy == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	view, err := h.svc.StartBattle(email, req.Enemy)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// SubmitAction forwards the player's chosen action to the battle.
func (h *BattleHandler) SubmitAction(c *gin.Context) {
	email := sessionEmail(c)
	battleID := c.Param("battleID")
	var req SubmitActionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	view, err := h.svc.SubmitAction(battleID, email, game.ActionKind(req.Action), game.ItemKind(req.Item))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Advance drains elapsed display ticks and returns the updated battle.
func (h *BattleHandler) Advance(c *gin.Context) {
	email := sessionEmail(c)
	battleID := c.Param("battleID")
	var req AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	view, err := h.svc.Advance(battleID, email, req.Ticks)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetBattle returns the current battle view without advancing it.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	email := sessionEmail(c)
	view, err := h.svc.View(c.Param("battleID"), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetOutcome returns the final outcome plus loot for a finished battle.
func (h *BattleHandler) GetOutcome(c *gin.Context) {
	email := sessionEmail(c)
	out, err := h.svc.Outcome(c.Param("battleID"), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func sessionEmail(c *gin.Context) string {
	if v, ok := c.Get("userEmail"); ok {
		if s, _ := v.(string); s != "" {
			return s
		}
	}
	return ""
}

// respondServiceError maps service and engine errors to HTTP status codes.
func respondServiceError(c *gin.Context, err error) {
	switch err {
	case service.ErrBattleNotFound:
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
	case service.ErrNotYourBattle:
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrBattleBelongsToOther})
	case service.ErrBattleInProgress:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleAlreadyActive})
	case service.ErrUnknownEnemy:
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrUnknownEnemy})
	case engine.ErrNotPlayerTurn:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotPlayerTurn})
	case engine.ErrActionNotAllowed:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrActionNotAllowed})
	case engine.ErrBattleStillActive:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleStillActive})
	case inventory.ErrItemMissing:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrItemNotInPack})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
	}
}
