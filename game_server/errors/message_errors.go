package game_errors

import (
	"errors"
)

var (
	ErrMalformedMessage   = errors.New("malformed game message")
	ErrUnknownMessageType = errors.New("unknown game message type")
)
