package handlers

import (
	"net/http"

	"bingo_backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// RegisterCard POST /register-card
func (h *ValidationHandler) RegisterCard(c *gin.Context) {
	var req validation.RegisterCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.Cards.RegisterCard(c.Request.Context(), req.PlayerID, req.CardNumbers)
	c.JSON(http.StatusOK, validation.RegisterCardResponse{Success: true})
}

// ValidateNumber POST /validate-number
func (h *ValidationHandler) ValidateNumber(c *gin.Context) {
	var req validation.ValidateNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.Cards.ValidateNumber(c.Request.Context(), req.PlayerID, req.Number)
	c.JSON(http.StatusOK, validation.ValidateNumberResponse{Success: err == nil})
}

// ValidateBingo POST /validate-bingo
func (h *ValidationHandler) ValidateBingo(c *gin.Context) {
	var req validation.ValidateBingoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	bingo, err := h.Cards.ValidateBingo(c.Request.Context(), req.PlayerID, req.Numbers)
	if err != nil {
		bingo = false
	}
	c.JSON(http.StatusOK, validation.ValidateBingoResponse{Bingo: bingo})
}

// GetCard GET /card/:player_id
func (h *ValidationHandler) GetCard(c *gin.Context) {
	numbers, err := h.Cards.GetCard(c.Request.Context(), c.Param("player_id"))
	if err != nil {
		numbers = []int{}
	}
	c.JSON(http.StatusOK, validation.GetCardResponse{CardNumbers: numbers})
}
