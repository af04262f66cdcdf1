package handlers

import (
	"errors"
	"net/http"

	"bingo_backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type createGameRequest struct {
	GameName *string `json:"game_name" binding:"required"`
}

type registerPlayerRequest struct {
	PlayerName string `json:"player_name"`
}

type markNumberRequest struct {
	Number *int `json:"number" binding:"required"`
}

// RegisterPlayerResponse mirrors the RegisterPlayer operation. On failure
// only Success is set.
type RegisterPlayerResponse struct {
	PlayerID    string `json:"player_id,omitempty"`
	CardNumbers []int  `json:"card_numbers,omitempty"`
	Success     bool   `json:"success"`
}

type DrawNumberResponse struct {
	Number  int  `json:"number,omitempty"`
	Success bool `json:"success"`
}

// CreateGame POST /games
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game_name is required"})
		return
	}

	snap, err := h.Games.CreateGame(c.Request.Context(), *req.GameName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"game_id": snap.ID})
}

// GetGame GET /games/:game_id
func (h *GameHandler) GetGame(c *gin.Context) {
	snap, err := h.Games.GetGame(c.Request.Context(), c.Param("game_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// RegisterPlayer POST /games/:game_id/players
func (h *GameHandler) RegisterPlayer(c *gin.Context) {
	var req registerPlayerRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
	}

	res, err := h.Games.RegisterPlayer(c.Request.Context(), c.Param("game_id"), req.PlayerName)
	if err != nil {
		c.JSON(http.StatusOK, RegisterPlayerResponse{Success: false})
		return
	}

	c.JSON(http.StatusOK, RegisterPlayerResponse{
		PlayerID:    res.PlayerID,
		CardNumbers: res.Card,
		Success:     true,
	})
}

// DrawNumber POST /games/:game_id/draw
func (h *GameHandler) DrawNumber(c *gin.Context) {
	n, err := h.Games.DrawNumber(c.Request.Context(), c.Param("game_id"))
	if err != nil {
		resp := gin.H{"success": false}
		if errors.Is(err, domain.ErrExhausted) {
			resp["error"] = "exhausted"
		} else if errors.Is(err, domain.ErrNotFound) {
			resp["error"] = "game not found"
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	c.JSON(http.StatusOK, DrawNumberResponse{Number: n, Success: true})
}

// MarkNumber POST /games/:game_id/players/:player_id/mark
func (h *GameHandler) MarkNumber(c *gin.Context) {
	var req markNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "number is required"})
		return
	}

	ok, err := h.Games.MarkNumber(c.Request.Context(), c.Param("game_id"), c.Param("player_id"), *req.Number)
	if err != nil {
		ok = false
	}
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

// CheckBingo GET /games/:game_id/bingo?player_id=
func (h *GameHandler) CheckBingo(c *gin.Context) {
	playerID := c.Query("player_id")
	if playerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player_id is required"})
		return
	}

	bingo, err := h.Games.CheckBingo(c.Request.Context(), c.Param("game_id"), playerID)
	if err != nil {
		bingo = false
	}
	c.JSON(http.StatusOK, gin.H{"bingo": bingo})
}

// PlayerCard GET /games/:game_id/players/:player_id/card
func (h *GameHandler) PlayerCard(c *gin.Context) {
	numbers, err := h.Games.GetPlayerCard(c.Request.Context(), c.Param("game_id"), c.Param("player_id"))
	if err != nil {
		numbers = []int{}
	}
	c.JSON(http.StatusOK, gin.H{"card_numbers": numbers})
}
