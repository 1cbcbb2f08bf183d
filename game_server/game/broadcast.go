package game_instance

import (
	messages "github.com/gunnermanx/worldserver/game_server/game/messages"
	player "github.com/gunnermanx/worldserver/game_server/game/player"
	world "github.com/gunnermanx/worldserver/game_server/game/world"

	"github.com/sirupsen/logrus"
)

// broadcast encodes msg once and queues it on every open connection except
// exclude, which may be nil. A connection that cannot take the frame is skipped.
func (g *Game) broadcast(msg messages.Outbound, exclude player.GamePlayer) {
	data, err := messages.Encode(msg)
	if err != nil {
		g.Logger.WithField("error", err.Error()).Error("failed encoding broadcast")
		return
	}

	for _, p := range g.Players.Connections() {
		if exclude != nil && p == exclude {
			continue
		}
		if !p.IsOpen() {
			continue
		}
		if err = p.Send(data); err != nil {
			g.Logger.WithFields(logrus.Fields{
				"playerID": p.GetID(),
				"type":     msg.MessageType(),
				"error":    err.Error(),
			}).Warn("failed sending broadcast to player")
		}
	}
}

func (g *Game) sendToPlayer(p player.GamePlayer, msg messages.Outbound) {
	data, err := messages.Encode(msg)
	if err == nil {
		err = p.Send(data)
	}
	if err != nil {
		g.Logger.WithFields(logrus.Fields{
			"playerID": p.GetID(),
			"type":     msg.MessageType(),
			"error":    err.Error(),
		}).Warn("failed sending message to player")
	}
}

func toWorldVector(v messages.Vector3) world.Vector3 {
	return world.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func toWireVector(v world.Vector3) messages.Vector3 {
	return messages.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func toPlayerState(p world.Player) messages.PlayerState {
	return messages.PlayerState{
		PlayerName: p.Name,
		Position:   toWireVector(p.Position),
		Velocity:   toWireVector(p.Velocity),
		Score:      p.Score,
		Skin:       p.Skin,
	}
}
