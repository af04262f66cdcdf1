package handlers

import (
	"net/http"
	"os"

	"bingo_backend/internal/logger"
	"bingo_backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Feed GET /games/:game_id/feed upgrades to a websocket that streams the
// game's draws. The first frame is the current draw history.
func (h *GameHandler) Feed(c *gin.Context) {
	gameID := c.Param("game_id")
	if _, err := h.Games.GetGame(c.Request.Context(), gameID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("ws upgrade error", "game_id", gameID, "error", err)
		return
	}

	client := ws.NewClient(gameID, conn, h.Hub)
	// join before reading the snapshot so no draw falls between the two
	h.Hub.Join(client)
	snap, err := h.Games.GetGame(c.Request.Context(), gameID)
	if err != nil {
		h.Hub.Leave(client)
		_ = conn.Close()
		return
	}

	go client.Run(ws.StateMessage(snap))
}
