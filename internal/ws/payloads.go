package ws

import "bingo_backend/internal/domain"

// server → client

// StatePayload is sent once, right after the subscription is accepted.
type StatePayload struct {
	GameID       string `json:"game_id"`
	GameName     string `json:"game_name"`
	DrawnNumbers []int  `json:"drawn_numbers"`
}

type DrawPayload struct {
	GameID string `json:"game_id"`
	Number int    `json:"number"`
	Count  int    `json:"count"`
}

type BingoPayload struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
}

// StateMessage builds the initial frame from a game snapshot.
func StateMessage(snap domain.GameSnapshot) Message {
	return Message{
		Type: MsgState,
		Payload: StatePayload{
			GameID:       snap.ID,
			GameName:     snap.Name,
			DrawnNumbers: snap.Drawn,
		},
	}
}
