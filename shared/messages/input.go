package messages

// PlayerInput is sent from client to server each frame with the player's input state.
// Used for server-side movement processing and client-side prediction reconciliation.
type PlayerInput struct {
	Sequence  uint32  // Incrementing ID for reconciliation
	Direction float64 // -1 left, 0 none, 1 right
	Jump      bool    // Jump held
	Timestamp int64   // Client timestamp (Unix ms)
}
