package game_messages

// Client -> server message types
const (
	POSITION_UPDATE = "POSITION_UPDATE"
	PLAYER_SPAWN    = "PLAYER_SPAWN"
	SCORE_UPDATE    = "SCORE_UPDATE"
	CHAT_MESSAGE    = "CHAT_MESSAGE"
	PING            = "PING"
)

// Server -> client message types
const (
	REGISTER          = "REGISTER"
	GAME_STATE        = "GAME_STATE"
	UPDATE_POSITION   = "UPDATE_POSITION"
	PLAYER_SPAWNED    = "PLAYER_SPAWNED"
	UPDATE_SCORE      = "UPDATE_SCORE"
	PLAYER_DISCONNECT = "PLAYER_DISCONNECT"
	PONG              = "PONG"
)

type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Inbound is one of the messages a client may send.
// The set of implementations is closed to this package.
type Inbound interface {
	Type() string
	// PlayerID is the id the client claims to be acting for
	PlayerID() string
	inbound()
}

type PositionUpdate struct {
	ID       string   `json:"id"`
	Position *Vector3 `json:"position"`
	Velocity *Vector3 `json:"velocity,omitempty"`
}

type PlayerSpawn struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Skin string `json:"skin"`
}

type ScoreUpdate struct {
	ID    string   `json:"id"`
	Score *float64 `json:"score"`
}

type ChatMessage struct {
	ID      string  `json:"id"`
	Message *string `json:"message"`
}

type Ping struct {
	ID string `json:"id,omitempty"`
}

func (m *PositionUpdate) Type() string     { return POSITION_UPDATE }
func (m *PositionUpdate) PlayerID() string { return m.ID }
func (m *PositionUpdate) inbound()         {}

func (m *PlayerSpawn) Type() string     { return PLAYER_SPAWN }
func (m *PlayerSpawn) PlayerID() string { return m.ID }
func (m *PlayerSpawn) inbound()         {}

func (m *ScoreUpdate) Type() string     { return SCORE_UPDATE }
func (m *ScoreUpdate) PlayerID() string { return m.ID }
func (m *ScoreUpdate) inbound()         {}

func (m *ChatMessage) Type() string     { return CHAT_MESSAGE }
func (m *ChatMessage) PlayerID() string { return m.ID }
func (m *ChatMessage) inbound()         {}

func (m *Ping) Type() string     { return PING }
func (m *Ping) PlayerID() string { return m.ID }
func (m *Ping) inbound()         {}

// Outbound is one of the messages the server sends.
type Outbound interface {
	MessageType() string
	outbound()
}

// PlayerState is a spawned player's entry in GAME_STATE
type PlayerState struct {
	PlayerName string  `json:"playerName"`
	Position   Vector3 `json:"position"`
	Velocity   Vector3 `json:"velocity"`
	Score      float64 `json:"score"`
	Skin       string  `json:"skin"`
}

type RegisterMessage struct {
	Type    string `json:"type"`
	ID      string `json:"id"`
	MapSeed int64  `json:"mapSeed"`
}

type GameStateMessage struct {
	Type    string                 `json:"type"`
	Players map[string]PlayerState `json:"players"`
}

type UpdatePositionMessage struct {
	Type     string  `json:"type"`
	ID       string  `json:"id"`
	Position Vector3 `json:"position"`
}

type PlayerSpawnedMessage struct {
	Type     string  `json:"type"`
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Skin     string  `json:"skin"`
	Position Vector3 `json:"position"`
}

type UpdateScoreMessage struct {
	Type  string  `json:"type"`
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

type ChatBroadcastMessage struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	PlayerName string `json:"playerName"`
	Message    string `json:"message"`
}

type PlayerDisconnectMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type PongMessage struct {
	Type string `json:"type"`
}

func (m *RegisterMessage) MessageType() string         { return REGISTER }
func (m *GameStateMessage) MessageType() string        { return GAME_STATE }
func (m *UpdatePositionMessage) MessageType() string   { return UPDATE_POSITION }
func (m *PlayerSpawnedMessage) MessageType() string    { return PLAYER_SPAWNED }
func (m *UpdateScoreMessage) MessageType() string      { return UPDATE_SCORE }
func (m *ChatBroadcastMessage) MessageType() string    { return CHAT_MESSAGE }
func (m *PlayerDisconnectMessage) MessageType() string { return PLAYER_DISCONNECT }
func (m *PongMessage) MessageType() string             { return PONG }

func (m *RegisterMessage) outbound()         {}
func (m *GameStateMessage) outbound()        {}
func (m *UpdatePositionMessage) outbound()   {}
func (m *PlayerSpawnedMessage) outbound()    {}
func (m *UpdateScoreMessage) outbound()      {}
func (m *ChatBroadcastMessage) outbound()    {}
func (m *PlayerDisconnectMessage) outbound() {}
func (m *PongMessage) outbound()             {}

func NewRegisterMessage(playerID string, mapSeed int64) *RegisterMessage {
	return &RegisterMessage{
		Type:    REGISTER,
		ID:      playerID,
		MapSeed: mapSeed,
	}
}

func NewGameStateMessage(players map[string]PlayerState) *GameStateMessage {
	if players == nil {
		players = make(map[string]PlayerState)
	}
	return &GameStateMessage{
		Type:    GAME_STATE,
		Players: players,
	}
}

func NewUpdatePositionMessage(playerID string, position Vector3) *UpdatePositionMessage {
	return &UpdatePositionMessage{
		Type:     UPDATE_POSITION,
		ID:       playerID,
		Position: position,
	}
}

func NewPlayerSpawnedMessage(playerID, name, skin string, position Vector3) *PlayerSpawnedMessage {
	return &PlayerSpawnedMessage{
		Type:     PLAYER_SPAWNED,
		ID:       playerID,
		Name:     name,
		Skin:     skin,
		Position: position,
	}
}

func NewUpdateScoreMessage(playerID string, score float64) *UpdateScoreMessage {
	return &UpdateScoreMessage{
		Type:  UPDATE_SCORE,
		ID:    playerID,
		Score: score,
	}
}

func NewChatBroadcastMessage(playerID, playerName, message string) *ChatBroadcastMessage {
	return &ChatBroadcastMessage{
		Type:       CHAT_MESSAGE,
		ID:         playerID,
		PlayerName: playerName,
		Message:    message,
	}
}

func NewPlayerDisconnectMessage(playerID string) *PlayerDisconnectMessage {
	return &PlayerDisconnectMessage{
		Type: PLAYER_DISCONNECT,
		ID:   playerID,
	}
}

func NewPongMessage() *PongMessage {
	return &PongMessage{
		Type: PONG,
	}
}
