package game_instance

import (
	"context"
	"math"
	"sync"

	messages "github.com/gunnermanx/worldserver/game_server/game/messages"
	player "github.com/gunnermanx/worldserver/game_server/game/player"
	registry "github.com/gunnermanx/worldserver/game_server/game/registry"
	world "github.com/gunnermanx/worldserver/game_server/game/world"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	GAME_EVENTS_BUFFER_SIZE = 1024
)

type Settings struct {
	// Handed to every client so they generate the same terrain
	MapSeed int64
	// Drop messages whose id is not the sender's own
	StrictIdentity bool
	// Per connection inbound limit, 0 disables it
	MaxMessagesPerSecond float64
}

// Game owns the shared world: the open connections and the player records.
// Both are only mutated from the Run loop.
type Game struct {
	Logger  *logrus.Entry
	Context context.Context
	Cancel  context.CancelFunc

	ID       string
	Settings Settings

	Players    *registry.Registry
	World      *world.Store
	GameEvents chan GameEvent

	done chan struct{}
}

type Stats struct {
	Players int
	Spawned int
	MapSeed int64
}

func NewGame(
	logger *logrus.Logger,
	settings Settings,
) (game *Game) {
	game = &Game{
		ID:         uuid.New().String(),
		Settings:   settings,
		Players:    registry.New(),
		World:      world.NewStore(),
		GameEvents: make(chan GameEvent, GAME_EVENTS_BUFFER_SIZE),
		done:       make(chan struct{}),
	}
	game.Logger = logger.WithFields(logrus.Fields{
		"gameID": game.ID,
	})
	game.Context, game.Cancel = context.WithCancel(context.Background())
	return
}

// Run processes game events until the game is stopped.
// Every connection still open at that point is closed before Done is signalled.
func (g *Game) Run() {
	defer close(g.done)
	defer g.Cancel()
	defer g.closeConnections()

	g.Logger.WithField("mapSeed", g.Settings.MapSeed).Info("game started")

	for {
		select {
		case <-g.Context.Done():
			return
		case ev := <-g.GameEvents:
			g.handleEvent(ev)
		}
	}
}

func (g *Game) Stop() {
	g.Cancel()
}

// Done is closed once Run has returned
func (g *Game) Done() <-chan struct{} {
	return g.done
}

// closeConnections runs the close handshakes concurrently so one
// unresponsive client does not hold up the rest
func (g *Game) closeConnections() {
	var wg sync.WaitGroup
	for _, p := range g.Players.Connections() {
		wg.Add(1)
		go func(p player.GamePlayer) {
			defer wg.Done()
			p.CloseConnection()
		}(p)
	}
	wg.Wait()
	g.Logger.Info("game completed")
}

func (g *Game) Stats() Stats {
	return Stats{
		Players: g.World.Len(),
		Spawned: len(g.World.Snapshot(world.Spawned)),
		MapSeed: g.Settings.MapSeed,
	}
}

// AddPlayer queues p's registration and starts reading its messages
func (g *Game) AddPlayer(p player.GamePlayer) {
	if !g.pushEvent(NewPlayerJoinedEvent(p)) {
		p.CloseConnection()
		return
	}

	// Listen for game messages from the player
	go g.listenToPlayer(p)

	g.Logger.WithField(
		"playerID", p.GetID(),
	).Debug("player added to game")
}

// RemovePlayer closes p's connection and queues its departure.
// Calling it more than once for the same player is harmless.
func (g *Game) RemovePlayer(p player.GamePlayer) {
	p.CloseConnection()

	g.pushEvent(NewPlayerLeftEvent(p))

	g.Logger.WithField(
		"playerID", p.GetID(),
	).Debug("player removed from game")
}

func (g *Game) pushEvent(ev GameEvent) bool {
	if g.Context.Err() != nil {
		return false
	}
	select {
	case g.GameEvents <- ev:
		return true
	case <-g.Context.Done():
		return false
	}
}

func (g *Game) listenToPlayer(p player.GamePlayer) {
	defer g.RemovePlayer(p)

	logger := g.Logger.WithField("playerID", p.GetID())
	logger.Debug("started reading messages from player")
	defer logger.Debug("stopped reading messages from player")

	limiter := g.newMessageLimiter()

	var err error
	var data []byte
	for {
		select {
		case <-p.GetContext().Done():
			return
		case <-g.Context.Done():
			return
		default:
		}

		if data, err = p.Read(); err != nil {
			logger.WithField("error", err.Error()).Debug("failed reading message from player")
			return
		}
		if limiter != nil && !limiter.Allow() {
			logger.Debug("dropped message over rate limit")
			continue
		}
		if !g.pushEvent(NewPlayerMessageEvent(p, data)) {
			return
		}
	}
}

func (g *Game) newMessageLimiter() *rate.Limiter {
	if g.Settings.MaxMessagesPerSecond <= 0 {
		return nil
	}
	burst := 2 * int(math.Ceil(g.Settings.MaxMessagesPerSecond))
	return rate.NewLimiter(rate.Limit(g.Settings.MaxMessagesPerSecond), burst)
}

func (g *Game) handleEvent(ev GameEvent) {
	defer func() {
		if r := recover(); r != nil {
			g.Logger.WithFields(logrus.Fields{
				"playerID": ev.Player.GetID(),
				"code":     ev.Code,
			}).Errorf("recovered from panic while handling event: %v", r)
		}
	}()

	switch ev.Code {
	case PLAYER_JOINED:
		g.onPlayerJoined(ev.Player)
	case PLAYER_LEFT:
		g.onPlayerLeft(ev.Player)
	case PLAYER_MESSAGE:
		g.onPlayerMessage(ev.Player, ev.Data)
	default:
		g.Logger.WithField("code", ev.Code).Warn("unknown game event")
	}
}

// onPlayerJoined registers the connection, creates its placeholder record and
// tells the client who it is before showing it the world
func (g *Game) onPlayerJoined(p player.GamePlayer) {
	id := p.GetID()
	logger := g.Logger.WithField("playerID", id)

	var err error
	if err = g.Players.Add(p); err != nil {
		logger.WithField("error", err.Error()).Error("failed registering player")
		// the close handshake can block, keep it off the event loop
		go p.CloseConnectionWithError(err)
		return
	}
	if err = g.World.Insert(world.NewPlayer(id)); err != nil {
		logger.WithField("error", err.Error()).Error("failed creating player record")
		g.Players.Remove(p)
		go p.CloseConnectionWithError(err)
		return
	}

	g.sendToPlayer(p, messages.NewRegisterMessage(id, g.Settings.MapSeed))
	g.sendToPlayer(p, messages.NewGameStateMessage(g.spawnedPlayerStates()))

	logger.Info("player connected")
}

// onPlayerLeft runs at most once per connection no matter how many times
// the departure is reported
func (g *Game) onPlayerLeft(p player.GamePlayer) {
	if !g.Players.Remove(p) {
		return
	}
	id := p.GetID()
	g.World.Remove(id)

	g.broadcast(messages.NewPlayerDisconnectMessage(id), nil)

	g.Logger.WithField("playerID", id).Info("player disconnected")
}

func (g *Game) spawnedPlayerStates() map[string]messages.PlayerState {
	states := make(map[string]messages.PlayerState)
	for id, p := range g.World.Snapshot(world.Spawned) {
		states[id] = toPlayerState(p)
	}
	return states
}
