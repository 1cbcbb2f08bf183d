package game_server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gunnermanx/worldserver/common"
	player "github.com/gunnermanx/worldserver/game_server/game/player"
	registry "github.com/gunnermanx/worldserver/game_server/game/registry"
	"github.com/sirupsen/logrus"
)

const (
	CONNECT_PATH = "/"
	STATUS_PATH  = "/status"
)

// Websocket connections outlive the request, so no request timeout is applied here
func (s *WorldServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.serveMux.ServeHTTP(w, r)
}

func (s *WorldServer) setupHandlers() {
	s.serveMux.HandleFunc(CONNECT_PATH, s.connectHandler)
	s.serveMux.HandleFunc(STATUS_PATH, s.statusHandler)
}

// connectHandler upgrades the request and hands the new player to the game
func (s *WorldServer) connectHandler(w http.ResponseWriter, r *http.Request) {
	playerID := registry.NewPlayerID()

	p, err := player.NewSGSGamePlayer(playerID, s.logger, w, r, player.Options{
		SendBufferSize: s.config.SendBufferSize,
		WriteTimeout:   time.Duration(s.config.WriteTimeoutMS) * time.Millisecond,
		MaxFrameBytes:  s.config.MaxFrameBytes,
		OriginPatterns: s.config.AllowedOrigins,
	})
	if err != nil {
		// Accept has already written the http error
		s.logger.WithFields(logrus.Fields{
			"playerID":   playerID,
			"remoteAddr": r.RemoteAddr,
			"error":      err.Error(),
		}).Warn("failed to accept connection")
		return
	}

	s.game.AddPlayer(p)
}

func (s *WorldServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		common.WriteErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stats := s.game.Stats()
	common.WriteResponse(w, http.StatusOK, common.ResponseData{
		"players": strconv.Itoa(stats.Players),
		"spawned": strconv.Itoa(stats.Spawned),
		"mapSeed": strconv.FormatInt(stats.MapSeed, 10),
	})
}
