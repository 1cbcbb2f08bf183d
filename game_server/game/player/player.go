package game_player

import (
	"context"
)

//go:generate mockgen -destination=../../../mocks/mock_player.go -package=mocks github.com/gunnermanx/worldserver/game_server/game/player GamePlayer

// GamePlayer is a single client connection as seen by the game
type GamePlayer interface {
	GetID() string
	GetContext() context.Context
	// Read blocks until the next frame arrives from the client
	Read() ([]byte, error)
	// Send queues an encoded frame for delivery without blocking
	Send([]byte) error
	IsOpen() bool
	CloseConnection()
	CloseConnectionWithError(error)
}
