package game_instance

import (
	player "github.com/gunnermanx/worldserver/game_server/game/player"
)

const (
	PLAYER_JOINED  = 10
	PLAYER_LEFT    = 11
	PLAYER_MESSAGE = 12
)

// GameEvent is anything the game loop reacts to. Events are processed one at
// a time, in the order they were pushed.
type GameEvent struct {
	Code   int
	Player player.GamePlayer
	Data   []byte
}

func NewPlayerJoinedEvent(p player.GamePlayer) GameEvent {
	return GameEvent{
		Code:   PLAYER_JOINED,
		Player: p,
	}
}

func NewPlayerLeftEvent(p player.GamePlayer) GameEvent {
	return GameEvent{
		Code:   PLAYER_LEFT,
		Player: p,
	}
}

func NewPlayerMessageEvent(p player.GamePlayer, data []byte) GameEvent {
	return GameEvent{
		Code:   PLAYER_MESSAGE,
		Player: p,
		Data:   data,
	}
}
