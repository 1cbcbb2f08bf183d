package registry

import (
	"sync"

	sgs_errors "github.com/gunnermanx/worldserver/game_server/errors"
	player "github.com/gunnermanx/worldserver/game_server/game/player"

	"github.com/google/uuid"
)

const PLAYER_ID_PREFIX = "player_"

// NewPlayerID returns a random player id. Ids are v4 uuids so they do not
// collide between concurrently open connections.
func NewPlayerID() string {
	return PLAYER_ID_PREFIX + uuid.New().String()
}

// Registry tracks the open connections by the player id assigned to them
type Registry struct {
	mu      sync.RWMutex
	players map[string]player.GamePlayer
}

func New() *Registry {
	return &Registry{
		players: make(map[string]player.GamePlayer),
	}
}

func (r *Registry) Add(p player.GamePlayer) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[p.GetID()]; exists {
		err = sgs_errors.ErrPlayerAlreadyExists
		return
	}
	r.players[p.GetID()] = p
	return
}

// Remove forgets p and reports whether it was registered. Only the first call
// for a given connection returns true, and a different connection holding the
// same id is left alone.
func (r *Registry) Remove(p player.GamePlayer) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, exists := r.players[p.GetID()]; !exists || current != p {
		return false
	}
	delete(r.players, p.GetID())
	return true
}

// Connections returns a copy of the current connection set, safe to
// iterate while connections come and go
func (r *Registry) Connections() []player.GamePlayer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := make([]player.GamePlayer, 0, len(r.players))
	for _, p := range r.players {
		conns = append(conns, p)
	}
	return conns
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}
