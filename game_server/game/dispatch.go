package game_instance

import (
	messages "github.com/gunnermanx/worldserver/game_server/game/messages"
	player "github.com/gunnermanx/worldserver/game_server/game/player"
	world "github.com/gunnermanx/worldserver/game_server/game/world"

	"github.com/sirupsen/logrus"
)

// onPlayerMessage decodes a frame from p and routes it by type.
// Frames that cannot be used are dropped without a reply.
func (g *Game) onPlayerMessage(p player.GamePlayer, data []byte) {
	msg, err := messages.Parse(data)
	if err != nil {
		g.Logger.WithFields(logrus.Fields{
			"playerID": p.GetID(),
			"error":    err.Error(),
		}).Debug("dropped message")
		return
	}

	if g.Settings.StrictIdentity && msg.Type() != messages.PING && msg.PlayerID() != p.GetID() {
		g.Logger.WithFields(logrus.Fields{
			"playerID":  p.GetID(),
			"claimedID": msg.PlayerID(),
			"type":      msg.Type(),
		}).Warn("dropped message for another player")
		return
	}

	switch m := msg.(type) {
	case *messages.PositionUpdate:
		g.handlePositionUpdate(p, m)
	case *messages.PlayerSpawn:
		g.handlePlayerSpawn(p, m)
	case *messages.ScoreUpdate:
		g.handleScoreUpdate(p, m)
	case *messages.ChatMessage:
		g.handleChatMessage(p, m)
	case *messages.Ping:
		g.handlePing(p, m)
	}
}

func (g *Game) handlePositionUpdate(p player.GamePlayer, m *messages.PositionUpdate) {
	_, exists := g.World.Mutate(m.ID, func(wp *world.Player) {
		wp.Position = toWorldVector(*m.Position)
		if m.Velocity != nil {
			wp.Velocity = toWorldVector(*m.Velocity)
		}
	})
	if !exists {
		g.dropUnknownPlayer(p, m)
		return
	}

	// the sender simulates its own physics, echoing would only cause jitter
	g.broadcast(messages.NewUpdatePositionMessage(m.ID, *m.Position), p)
}

func (g *Game) handlePlayerSpawn(p player.GamePlayer, m *messages.PlayerSpawn) {
	spawned, exists := g.World.Mutate(m.ID, func(wp *world.Player) {
		wp.Name = m.Name
		wp.Skin = m.Skin
		wp.IsSpawned = true
	})
	if !exists {
		g.dropUnknownPlayer(p, m)
		return
	}

	g.broadcast(messages.NewPlayerSpawnedMessage(
		spawned.ID,
		spawned.Name,
		spawned.Skin,
		toWireVector(spawned.Position),
	), nil)

	g.Logger.WithFields(logrus.Fields{
		"playerID": spawned.ID,
		"name":     spawned.Name,
		"skin":     spawned.Skin,
	}).Info("player spawned")
}

func (g *Game) handleScoreUpdate(p player.GamePlayer, m *messages.ScoreUpdate) {
	score := *m.Score
	if _, exists := g.World.Mutate(m.ID, func(wp *world.Player) {
		wp.Score = score
	}); !exists {
		g.dropUnknownPlayer(p, m)
		return
	}

	g.broadcast(messages.NewUpdateScoreMessage(m.ID, score), p)
}

func (g *Game) handleChatMessage(p player.GamePlayer, m *messages.ChatMessage) {
	// the name shown is whatever the server has on record, never what the client claims
	sender, exists := g.World.Get(m.ID)
	if !exists {
		g.dropUnknownPlayer(p, m)
		return
	}

	g.broadcast(messages.NewChatBroadcastMessage(sender.ID, sender.Name, *m.Message), nil)

	g.Logger.WithFields(logrus.Fields{
		"playerID": sender.ID,
		"name":     sender.Name,
	}).Info("chat message")
}

func (g *Game) handlePing(p player.GamePlayer, m *messages.Ping) {
	g.sendToPlayer(p, messages.NewPongMessage())
}

func (g *Game) dropUnknownPlayer(p player.GamePlayer, m messages.Inbound) {
	g.Logger.WithFields(logrus.Fields{
		"playerID":  p.GetID(),
		"claimedID": m.PlayerID(),
		"type":      m.Type(),
	}).Debug("dropped message for unknown player")
}
