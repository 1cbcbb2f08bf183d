package world

import (
	"sync"

	sgs_errors "github.com/gunnermanx/worldserver/game_server/errors"
)

// Players appear this far above the ground plane until their first position update
const SPAWN_HEIGHT = 50

type Vector3 struct {
	X, Y, Z float64
}

// Player is the server's authoritative record for one connected identity
type Player struct {
	ID        string
	Name      string
	Skin      string
	Position  Vector3
	Velocity  Vector3
	Score     float64
	IsSpawned bool
}

// NewPlayer returns the placeholder record created at connect time
func NewPlayer(id string) Player {
	return Player{
		ID:       id,
		Position: Vector3{Y: SPAWN_HEIGHT},
	}
}

// Spawned is a Snapshot filter matching players visible to others
func Spawned(p Player) bool {
	return p.IsSpawned
}

// Store maps player ids to their records.
// Every accessor copies, callers never hold a reference into the store.
type Store struct {
	mu      sync.RWMutex
	players map[string]*Player
}

func NewStore() *Store {
	return &Store{
		players: make(map[string]*Player),
	}
}

func (s *Store) Insert(p Player) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.players[p.ID]; exists {
		err = sgs_errors.ErrPlayerAlreadyExists
		return
	}
	s.players[p.ID] = &p
	return
}

func (s *Store) Get(id string) (p Player, exists bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stored *Player
	if stored, exists = s.players[id]; exists {
		p = *stored
	}
	return
}

// Mutate applies fn to the record for id and returns the updated copy.
// Unknown ids are ignored and reported through exists.
func (s *Store) Mutate(id string, fn func(*Player)) (p Player, exists bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored *Player
	if stored, exists = s.players[id]; !exists {
		return
	}
	fn(stored)
	// the id is the map key and cannot change
	stored.ID = id
	p = *stored
	return
}

// Remove deletes the record for id, reporting whether one existed
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.players[id]; !exists {
		return false
	}
	delete(s.players, id)
	return true
}

// Snapshot copies every record matching filter. A nil filter matches all.
func (s *Store) Snapshot(filter func(Player) bool) map[string]Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]Player)
	for id, p := range s.players {
		if filter == nil || filter(*p) {
			snapshot[id] = *p
		}
	}
	return snapshot
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
