package messages

// JoinRequest is sent by a client after connecting to request joining the game.
type JoinRequest struct {
	Version    string
	PlayerName string
}

// JoinAccepted is sent by the server once the client's body exists. PlayerID
// matches the NetPlayer component of that body.
type JoinAccepted struct {
	PlayerID   string
	ServerName string
	Level      string
	TickRate   int
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
