package ws

const (
	// client - server
	MsgPing = "ping"

	// server - client
	MsgPong  = "pong"
	MsgState = "state"
	MsgDraw  = "draw"
	MsgBingo = "bingo"
)

// Message is the envelope of every frame on the draw feed.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}
