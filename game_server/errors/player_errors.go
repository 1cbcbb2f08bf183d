package game_errors

import (
	"errors"
)

var (
	ErrPlayerConnectionClosed = errors.New("player connection closed")
	ErrPlayerConnectionLost   = errors.New("player connection lost")
	ErrPlayerSendBufferFull   = errors.New("player send buffer full")
	ErrPlayerAlreadyExists    = errors.New("player already exists")
	ErrContextCancelled       = errors.New("context cancelled")
)
