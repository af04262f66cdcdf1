package handlers

import (
	"bingo_backend/internal/service"
	"bingo_backend/internal/ws"
)

// GameHandler serves the game authority API
type GameHandler struct {
	Games *service.GameService
	Hub   *ws.Hub
}

func NewGameHandler(games *service.GameService, hub *ws.Hub) *GameHandler {
	return &GameHandler{Games: games, Hub: hub}
}

// ValidationHandler serves the validation authority API
type ValidationHandler struct {
	Cards *service.ValidationService
}

func NewValidationHandler(cards *service.ValidationService) *ValidationHandler {
	return &ValidationHandler{Cards: cards}
}
