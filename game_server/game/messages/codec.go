package game_messages

import (
	"encoding/json"

	sgs_errors "github.com/gunnermanx/worldserver/game_server/errors"
	"github.com/pkg/errors"
)

type envelope struct {
	Type string `json:"type"`
}

// Parse converts a raw text frame into one of the Inbound variants.
//
// Frames that are not a JSON object, lack a type, or do not fit the shape
// of their type return an error wrapping ErrMalformedMessage. Well formed
// frames with a type outside the known set return ErrUnknownMessageType.
func Parse(data []byte) (msg Inbound, err error) {
	var env envelope
	if err = json.Unmarshal(data, &env); err != nil {
		err = errors.Wrap(sgs_errors.ErrMalformedMessage, err.Error())
		return
	}
	if env.Type == "" {
		err = errors.Wrap(sgs_errors.ErrMalformedMessage, "missing type")
		return
	}

	switch env.Type {
	case POSITION_UPDATE:
		m := &PositionUpdate{}
		if err = decode(data, m); err != nil {
			return
		}
		if m.ID == "" || m.Position == nil {
			err = errors.Wrap(sgs_errors.ErrMalformedMessage, "position update requires id and position")
			return
		}
		msg = m
	case PLAYER_SPAWN:
		m := &PlayerSpawn{}
		if err = decode(data, m); err != nil {
			return
		}
		if m.ID == "" {
			err = errors.Wrap(sgs_errors.ErrMalformedMessage, "player spawn requires id")
			return
		}
		msg = m
	case SCORE_UPDATE:
		m := &ScoreUpdate{}
		if err = decode(data, m); err != nil {
			return
		}
		if m.ID == "" || m.Score == nil {
			err = errors.Wrap(sgs_errors.ErrMalformedMessage, "score update requires id and score")
			return
		}
		msg = m
	case CHAT_MESSAGE:
		m := &ChatMessage{}
		if err = decode(data, m); err != nil {
			return
		}
		if m.ID == "" || m.Message == nil {
			err = errors.Wrap(sgs_errors.ErrMalformedMessage, "chat message requires id and message")
			return
		}
		msg = m
	case PING:
		m := &Ping{}
		if err = decode(data, m); err != nil {
			return
		}
		msg = m
	default:
		err = errors.Wrap(sgs_errors.ErrUnknownMessageType, env.Type)
	}
	return
}

func decode(data []byte, dst Inbound) (err error) {
	if err = json.Unmarshal(data, dst); err != nil {
		err = errors.Wrapf(sgs_errors.ErrMalformedMessage, "%s: %s", dst.Type(), err.Error())
	}
	return
}

// Encode serializes an outbound message into a text frame
func Encode(msg Outbound) (data []byte, err error) {
	if data, err = json.Marshal(msg); err != nil {
		err = errors.Wrapf(err, "failed encoding %s", msg.MessageType())
	}
	return
}
